package calc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/midbel/prattle/pratt"
)

// Format renders a calc tree back to infix source text, inserting
// parentheses only where precedence requires them.
func Format(expr pratt.Value) (string, error) {
	var str strings.Builder
	if err := formatExpr(&str, expr, powLowest); err != nil {
		return "", err
	}
	return str.String(), nil
}

func formatExpr(w *strings.Builder, expr pratt.Value, parent int) error {
	switch expr := expr.(type) {
	case float64:
		w.WriteString(strconv.FormatFloat(expr, 'f', -1, 64))
		return nil
	case string:
		w.WriteString(expr)
		return nil
	case pratt.List:
		return formatNode(w, expr, parent)
	default:
		return fmt.Errorf("%w: %v", ErrEval, expr)
	}
}

func formatNode(w *strings.Builder, node pratt.List, parent int) error {
	label, ok := node.Label()
	if !ok {
		return formatPair(w, node, parent)
	}
	switch label {
	case "+", "-":
		if len(node) == 2 {
			return formatUnary(w, label, node[1], parent)
		}
		return formatBinary(w, label, node, powSum, parent)
	case "*", "/":
		return formatBinary(w, label, node, powMul, parent)
	case KindAssign:
		return formatBinary(w, "=", node, powAssign, parent)
	case KindSequence:
		return formatSequence(w, node, parent)
	default:
		if len(node) == 2 {
			return formatPair(w, node, parent)
		}
		return fmt.Errorf("%w: %s can not be formatted", ErrEval, label)
	}
}

func formatUnary(w *strings.Builder, label string, expr pratt.Value, parent int) error {
	if parent >= powUnary {
		w.WriteString("(")
		defer w.WriteString(")")
	}
	w.WriteString(label)
	return formatExpr(w, expr, powUnary)
}

func formatBinary(w *strings.Builder, label string, node pratt.List, pow, parent int) error {
	if len(node) != 3 {
		return fmt.Errorf("%w: %s expects two operands", ErrEval, label)
	}
	if parent >= pow {
		w.WriteString("(")
		defer w.WriteString(")")
	}
	if err := formatExpr(w, node[1], pow-1); err != nil {
		return err
	}
	w.WriteString(" ")
	w.WriteString(label)
	w.WriteString(" ")
	return formatExpr(w, node[2], pow)
}

func formatSequence(w *strings.Builder, node pratt.List, parent int) error {
	if parent >= powSeq {
		w.WriteString("(")
		defer w.WriteString(")")
	}
	for i, expr := range node[1:] {
		if i > 0 {
			w.WriteString("; ")
		}
		if err := formatExpr(w, expr, powSeq); err != nil {
			return err
		}
	}
	return nil
}

func formatPair(w *strings.Builder, node pratt.List, parent int) error {
	if len(node) != 2 {
		return fmt.Errorf("%w: sequence without label", ErrEval)
	}
	if err := formatExpr(w, node[0], powGroup); err != nil {
		return err
	}
	w.WriteString("(")
	if err := formatExpr(w, node[1], powLowest); err != nil {
		return err
	}
	w.WriteString(")")
	return nil
}
