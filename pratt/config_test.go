package pratt

import (
	"errors"
	"strings"
	"testing"
)

const testGrammar = `
[[rule]]
pattern = '\s*(let)'
kind    = "keyword"

[[rule]]
pattern = '\s*(\d+)'
kind    = "number"

[[rule]]
pattern = '\s*([a-z]+)'
kind    = "symbol"

[[rule]]
pattern = '\s*([+*/-])'
kind    = "operator"
`

func testKinds() map[string]Constructor {
	return map[string]Constructor{
		"keyword":  newTestKeyword,
		"number":   newTestLit,
		"symbol":   newTestName,
		"operator": newTestOp,
	}
}

func TestLoad(t *testing.T) {
	p, err := Load(strings.NewReader(testGrammar), testKinds())
	if err != nil {
		t.Fatalf("fail to load grammar: %s", err)
	}
	expr, err := p.Parse("1 + 2 * 3")
	if err != nil {
		t.Fatalf("fail to parse: %s", err)
	}
	if got := render(expr); got != "(+ 1 (* 2 3))" {
		t.Errorf("trees mismatched! want (+ 1 (* 2 3)), got %s", got)
	}
}

func TestLoadOrder(t *testing.T) {
	p, err := Load(strings.NewReader(testGrammar), testKinds())
	if err != nil {
		t.Fatalf("fail to load grammar: %s", err)
	}
	toks, err := p.Tokenize("let foo")
	if err != nil {
		t.Fatalf("fail to tokenize: %s", err)
	}
	if toks[0].Kind() != "keyword" {
		t.Errorf("keyword rule should win over symbol rule, got %s", toks[0].Kind())
	}
}

func TestLoadError(t *testing.T) {
	tests := []struct {
		Name    string
		Grammar string
	}{
		{
			Name:    "empty",
			Grammar: "",
		},
		{
			Name:    "unknown kind",
			Grammar: "[[rule]]\npattern = 'a'\nkind = 'unknown'",
		},
		{
			Name:    "bad pattern",
			Grammar: "[[rule]]\npattern = '('\nkind = 'number'",
		},
		{
			Name:    "not toml",
			Grammar: "rule = [",
		},
	}
	for _, c := range tests {
		_, err := Load(strings.NewReader(c.Grammar), testKinds())
		if err == nil {
			t.Errorf("%s: expected error, got none", c.Name)
			continue
		}
		if !errors.Is(err, ErrGrammar) {
			t.Errorf("%s: errors mismatched! want %s, got %s", c.Name, ErrGrammar, err)
		}
	}
}
