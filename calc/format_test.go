package calc

import (
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		Input string
		Want  string
	}{
		{
			Input: "1+2*3",
			Want:  "1 + 2 * 3",
		},
		{
			Input: "(1+2)*3",
			Want:  "(1 + 2) * 3",
		},
		{
			Input: "1-(2-3)",
			Want:  "1 - (2 - 3)",
		},
		{
			Input: "1-2-3",
			Want:  "1 - 2 - 3",
		},
		{
			Input: "-2*3",
			Want:  "-2 * 3",
		},
		{
			Input: "a=1; b=a+2",
			Want:  "a = 1; b = a + 2",
		},
		{
			Input: "f(x+1)",
			Want:  "f(x + 1)",
		},
		{
			Input: "f(x)",
			Want:  "f(x)",
		},
		{
			Input: "f(x)*2",
			Want:  "f(x) * 2",
		},
		{
			Input: "f(x)(y)",
			Want:  "f(x)(y)",
		},
	}
	p := New()
	for _, c := range tests {
		expr, err := p.Parse(c.Input)
		if err != nil {
			t.Errorf("%s: fail to parse: %s", c.Input, err)
			continue
		}
		got, err := Format(expr)
		if err != nil {
			t.Errorf("%s: fail to format: %s", c.Input, err)
			continue
		}
		if got != c.Want {
			t.Errorf("%s: sources mismatched! want %q, got %q", c.Input, c.Want, got)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	tests := []string{
		"1 + 2 * 3",
		"(1 + 2) * 3",
		"1 - (2 - 3)",
		"a = 1; b = a + 2; b * b",
		"-x * (y + 1)",
		"f(x) + g(y)",
	}
	p := New()
	for _, c := range tests {
		first, err := p.Parse(c)
		if err != nil {
			t.Errorf("%s: fail to parse: %s", c, err)
			continue
		}
		str, err := Format(first)
		if err != nil {
			t.Errorf("%s: fail to format: %s", c, err)
			continue
		}
		if str != c {
			t.Errorf("%s: sources mismatched! got %q", c, str)
		}
	}
}
