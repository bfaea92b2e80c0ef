package calc

import (
	"errors"
	"fmt"

	"github.com/midbel/prattle/pratt"
)

var (
	ErrEval    = errors.New("unexpected value")
	ErrZero    = errors.New("division by zero")
	ErrDefined = errors.New("undefined variable")
)

// Env stores variable bindings with lexical parent chaining.
type Env struct {
	values map[string]float64
	parent *Env
}

func EmptyEnv() *Env {
	return EnclosedEnv(nil)
}

func EnclosedEnv(parent *Env) *Env {
	return &Env{
		values: make(map[string]float64),
		parent: parent,
	}
}

func (e *Env) Define(ident string, value float64) {
	e.values[ident] = value
}

func (e *Env) Resolve(ident string) (float64, error) {
	value, ok := e.values[ident]
	if ok {
		return value, nil
	}
	if e.parent != nil {
		return e.parent.Resolve(ident)
	}
	return 0, fmt.Errorf("%s: %w", ident, ErrDefined)
}

// Eval walks a tree produced by the calc grammar. Sequences evaluate
// left to right and yield their last value, assignment defines the
// variable in env and yields the assigned value.
func Eval(expr pratt.Value, env *Env) (float64, error) {
	switch expr := expr.(type) {
	case float64:
		return expr, nil
	case string:
		return env.Resolve(expr)
	case pratt.List:
		return evalNode(expr, env)
	default:
		return 0, fmt.Errorf("%w: %v", ErrEval, expr)
	}
}

func evalNode(node pratt.List, env *Env) (float64, error) {
	label, ok := node.Label()
	if !ok {
		return 0, fmt.Errorf("%w: sequence without label", ErrEval)
	}
	switch label {
	case "+", "-":
		if len(node) == 2 {
			return evalUnary(label, node[1], env)
		}
		return evalBinary(label, node, env)
	case "*", "/":
		return evalBinary(label, node, env)
	case KindAssign:
		return evalAssign(node, env)
	case KindSequence:
		return evalSequence(node, env)
	default:
		return 0, fmt.Errorf("%w: %s can not be evaluated", ErrEval, label)
	}
}

func evalUnary(label string, expr pratt.Value, env *Env) (float64, error) {
	value, err := Eval(expr, env)
	if err != nil {
		return 0, err
	}
	if label == "-" {
		value = -value
	}
	return value, nil
}

func evalBinary(label string, node pratt.List, env *Env) (float64, error) {
	if len(node) != 3 {
		return 0, fmt.Errorf("%w: %s expects two operands", ErrEval, label)
	}
	left, err := Eval(node[1], env)
	if err != nil {
		return 0, err
	}
	right, err := Eval(node[2], env)
	if err != nil {
		return 0, err
	}
	switch label {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, ErrZero
		}
		return left / right, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrEval, label)
	}
}

func evalAssign(node pratt.List, env *Env) (float64, error) {
	if len(node) != 3 {
		return 0, fmt.Errorf("%w: assign expects two operands", ErrEval)
	}
	ident, ok := node[1].(string)
	if !ok {
		return 0, fmt.Errorf("%w: can not assign to %v", ErrEval, node[1])
	}
	value, err := Eval(node[2], env)
	if err != nil {
		return 0, err
	}
	env.Define(ident, value)
	return value, nil
}

func evalSequence(node pratt.List, env *Env) (float64, error) {
	var (
		value float64
		err   error
	)
	for _, expr := range node[1:] {
		value, err = Eval(expr, env)
		if err != nil {
			return 0, err
		}
	}
	return value, nil
}
