package sexp

import (
	"strings"
	"testing"

	"github.com/midbel/prattle/pratt"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		Expr pratt.Value
		Want string
	}{
		{
			Expr: 42.0,
			Want: "42",
		},
		{
			Expr: 2.5,
			Want: "2.5",
		},
		{
			Expr: "foo",
			Want: "foo",
		},
		{
			Expr: nil,
			Want: "()",
		},
		{
			Expr: pratt.Node("+", 1.0, 2.0),
			Want: "(+ 1 2)",
		},
		{
			Expr: pratt.Node("+", 1.0, pratt.Node("*", 2.0, 3.0)),
			Want: "(+ 1 (* 2 3))",
		},
		{
			Expr: pratt.Node("sequence", 1.0, 2.0, 3.0),
			Want: "(sequence 1 2 3)",
		},
		{
			Expr: pratt.List{"f", "x"},
			Want: "(f x)",
		},
		{
			Expr: pratt.List{pratt.List{"f", "x"}, 1.0},
			Want: "((f x) 1)",
		},
	}
	for _, c := range tests {
		if got := Format(c.Expr); got != c.Want {
			t.Errorf("trees mismatched! want %s, got %s", c.Want, got)
		}
	}
}

func TestDump(t *testing.T) {
	var (
		str  strings.Builder
		expr = pratt.Node("+", 1.0, pratt.Node("*", 2.0, 3.0))
	)
	Dump(&str, expr)
	want := "(+\n  1\n  (*\n    2\n    3))\n"
	if got := str.String(); got != want {
		t.Errorf("dumps mismatched! want %q, got %q", want, got)
	}
}
