package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/midbel/cli"
)

var scanCmd = cli.Command{
	Name:    "scan",
	Summary: "print the token stream of an expression",
	Handler: &ScanCmd{},
}

type ScanCmd struct {
	Grammar string
}

func (c *ScanCmd) Run(args []string) error {
	set := flag.NewFlagSet("scan", flag.ContinueOnError)
	set.StringVar(&c.Grammar, "g", "", "load grammar rules from file")
	if err := set.Parse(args); err != nil {
		return err
	}
	p, err := getParser(c.Grammar)
	if err != nil {
		return err
	}
	toks, err := p.Tokenize(getInput(set.Args()))
	if err != nil {
		return err
	}
	for _, t := range toks {
		fmt.Fprintln(os.Stdout, t)
	}
	return nil
}
