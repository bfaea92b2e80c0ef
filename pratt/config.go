package pratt

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

type ruleDef struct {
	Pattern string `toml:"pattern"`
	Kind    string `toml:"kind"`
}

type grammarDef struct {
	Rules []ruleDef `toml:"rule"`
}

// Load builds a Parser from a TOML grammar document. Rules are declared
// as an array of tables and registered in document order, which is the
// match priority order:
//
//	[[rule]]
//	pattern = '\s*(\d+)'
//	kind    = "number"
//
// Kind names resolve through the given constructor map; an unknown kind
// is a grammar error.
func Load(r io.Reader, kinds map[string]Constructor) (*Parser, error) {
	var def grammarDef
	if _, err := toml.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrGrammar, err)
	}
	if len(def.Rules) == 0 {
		return nil, fmt.Errorf("%w: no rules defined", ErrGrammar)
	}
	p := New()
	for _, r := range def.Rules {
		fn, ok := kinds[r.Kind]
		if !ok {
			return nil, fmt.Errorf("%w: %s: unknown token kind", ErrGrammar, r.Kind)
		}
		if err := p.Register(r.Pattern, fn); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// LoadFile is Load for a grammar stored in a file.
func LoadFile(file string, kinds map[string]Constructor) (*Parser, error) {
	r, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	return Load(r, kinds)
}
