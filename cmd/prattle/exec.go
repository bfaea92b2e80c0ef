package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/midbel/cli"
	"github.com/midbel/prattle/calc"
	"github.com/midbel/prattle/pratt"
	"github.com/midbel/prattle/sexp"
)

var parseCmd = cli.Command{
	Name:    "parse",
	Summary: "parse an expression and print its symbolic form",
	Handler: &ParseCmd{},
}

var evalCmd = cli.Command{
	Name:    "eval",
	Summary: "parse and evaluate an expression",
	Handler: &EvalCmd{},
}

var formatCmd = cli.Command{
	Name:    "format",
	Summary: "parse an expression and regenerate its source form",
	Handler: &FormatCmd{},
}

type ParseCmd struct {
	Grammar string
	Trace   bool
	Dump    bool
}

func (c *ParseCmd) Run(args []string) error {
	set := flag.NewFlagSet("parse", flag.ContinueOnError)
	set.StringVar(&c.Grammar, "g", "", "load grammar rules from file")
	set.BoolVar(&c.Trace, "t", false, "trace the parse on stderr")
	set.BoolVar(&c.Dump, "d", false, "print one node per line")
	if err := set.Parse(args); err != nil {
		return err
	}
	p, err := getParser(c.Grammar)
	if err != nil {
		return err
	}
	if c.Trace {
		p.Tracer = pratt.TraceStderr()
	}
	expr, err := p.Parse(getInput(set.Args()))
	if err != nil {
		return err
	}
	if c.Dump {
		sexp.Dump(os.Stdout, expr)
		return nil
	}
	sexp.Print(os.Stdout, expr)
	fmt.Fprintln(os.Stdout)
	return nil
}

type EvalCmd struct {
	Grammar string
}

func (c *EvalCmd) Run(args []string) error {
	set := flag.NewFlagSet("eval", flag.ContinueOnError)
	set.StringVar(&c.Grammar, "g", "", "load grammar rules from file")
	if err := set.Parse(args); err != nil {
		return err
	}
	p, err := getParser(c.Grammar)
	if err != nil {
		return err
	}
	expr, err := p.Parse(getInput(set.Args()))
	if err != nil {
		return err
	}
	res, err := calc.Eval(expr, calc.EmptyEnv())
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, strconv.FormatFloat(res, 'f', -1, 64))
	return nil
}

type FormatCmd struct {
	Grammar string
}

func (c *FormatCmd) Run(args []string) error {
	set := flag.NewFlagSet("format", flag.ContinueOnError)
	set.StringVar(&c.Grammar, "g", "", "load grammar rules from file")
	if err := set.Parse(args); err != nil {
		return err
	}
	p, err := getParser(c.Grammar)
	if err != nil {
		return err
	}
	expr, err := p.Parse(getInput(set.Args()))
	if err != nil {
		return err
	}
	str, err := calc.Format(expr)
	if err != nil {
		return err
	}
	fmt.Fprintln(os.Stdout, str)
	return nil
}
