package main

import (
	"strings"

	"github.com/midbel/prattle/calc"
	"github.com/midbel/prattle/pratt"
)

// getParser returns the built-in arithmetic grammar, or the grammar
// loaded from the given rule file with the arithmetic token kinds.
func getParser(file string) (*pratt.Parser, error) {
	if file == "" {
		return calc.New(), nil
	}
	return pratt.LoadFile(file, calc.Kinds())
}

func getInput(args []string) string {
	return strings.Join(args, " ")
}
