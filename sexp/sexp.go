// Package sexp renders parse trees to their symbolic text form. It
// only relies on the tree contract: a value is either atomic or a
// sequence of values, at any nesting depth and with no fixed arity.
package sexp

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/midbel/prattle/pratt"
)

// Format returns the canonical parenthesized form of a tree, e.g.
// (+ 1 (* 2 3)).
func Format(expr pratt.Value) string {
	var str strings.Builder
	formatExpr(&str, expr)
	return str.String()
}

// Print writes the canonical form of a tree to w.
func Print(w io.Writer, expr pratt.Value) {
	formatExpr(w, expr)
}

func formatExpr(w io.Writer, expr pratt.Value) {
	switch expr := expr.(type) {
	case nil:
		io.WriteString(w, "()")
	case float64:
		io.WriteString(w, strconv.FormatFloat(expr, 'f', -1, 64))
	case string:
		io.WriteString(w, expr)
	case pratt.List:
		io.WriteString(w, "(")
		for i := range expr {
			if i > 0 {
				io.WriteString(w, " ")
			}
			formatExpr(w, expr[i])
		}
		io.WriteString(w, ")")
	default:
		fmt.Fprintf(w, "%v", expr)
	}
}

// Dump writes a tree one node per line with depth indentation, meant
// for debugging deeply nested results.
func Dump(w io.Writer, expr pratt.Value) {
	dumpExpr(w, expr, 0)
	io.WriteString(w, "\n")
}

func dumpExpr(w io.Writer, expr pratt.Value, depth int) {
	indent := strings.Repeat("  ", depth)
	node, ok := expr.(pratt.List)
	if !ok {
		io.WriteString(w, indent)
		formatExpr(w, expr)
		return
	}
	io.WriteString(w, indent)
	io.WriteString(w, "(")
	if label, ok := node.Label(); ok {
		io.WriteString(w, label)
		node = node[1:]
	}
	for i := range node {
		io.WriteString(w, "\n")
		dumpExpr(w, node[i], depth+1)
	}
	io.WriteString(w, ")")
}
