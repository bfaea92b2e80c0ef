package calc

import (
	"errors"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		Input string
		Want  float64
	}{
		{
			Input: "1 + 2 * 3",
			Want:  7,
		},
		{
			Input: "(1 + 2) * 3",
			Want:  9,
		},
		{
			Input: "10 / 4",
			Want:  2.5,
		},
		{
			Input: "1 - 2 - 3",
			Want:  -4,
		},
		{
			Input: "-2 * 3",
			Want:  -6,
		},
		{
			Input: "1; 2; 3",
			Want:  3,
		},
		{
			Input: "a = 2; a * a + 1",
			Want:  5,
		},
		{
			Input: "a = 2; b = a + 3; b * a",
			Want:  10,
		},
	}
	p := New()
	for _, c := range tests {
		expr, err := p.Parse(c.Input)
		if err != nil {
			t.Errorf("%s: fail to parse: %s", c.Input, err)
			continue
		}
		got, err := Eval(expr, EmptyEnv())
		if err != nil {
			t.Errorf("%s: fail to evaluate: %s", c.Input, err)
			continue
		}
		if got != c.Want {
			t.Errorf("%s: values mismatched! want %g, got %g", c.Input, c.Want, got)
		}
	}
}

func TestEvalError(t *testing.T) {
	tests := []struct {
		Input string
		Want  error
	}{
		{
			Input: "1 / 0",
			Want:  ErrZero,
		},
		{
			Input: "a + 1",
			Want:  ErrDefined,
		},
		{
			Input: "1 = 2",
			Want:  ErrEval,
		},
		{
			Input: "f(1)",
			Want:  ErrEval,
		},
	}
	p := New()
	for _, c := range tests {
		expr, err := p.Parse(c.Input)
		if err != nil {
			t.Errorf("%s: fail to parse: %s", c.Input, err)
			continue
		}
		_, err = Eval(expr, EmptyEnv())
		if err == nil {
			t.Errorf("%s: expected error, got none", c.Input)
			continue
		}
		if !errors.Is(err, c.Want) {
			t.Errorf("%s: errors mismatched! want %s, got %s", c.Input, c.Want, err)
		}
	}
}

func TestEnvChaining(t *testing.T) {
	parent := EmptyEnv()
	parent.Define("a", 1)

	child := EnclosedEnv(parent)
	child.Define("b", 2)

	if v, err := child.Resolve("a"); err != nil || v != 1 {
		t.Errorf("child should resolve a from parent, got %g (%s)", v, err)
	}
	if _, err := parent.Resolve("b"); !errors.Is(err, ErrDefined) {
		t.Errorf("parent should not resolve b, got %s", err)
	}
}
