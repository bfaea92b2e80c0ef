// Package pratt implements a rule-driven operator-precedence parser.
// A caller registers lexical rules in priority order and supplies token
// kinds whose nud/led hooks build the tree; the engine tokenizes the
// input and runs the binding-power loop, it never decides what the tree
// looks like.
package pratt

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

var (
	ErrSyntax  = errors.New("syntax error")
	ErrScan    = errors.New("unrecognized input")
	ErrGrammar = errors.New("invalid grammar")
)

// Parser holds an ordered rule list and the state of one parse. Rules
// are configuration: register them once, then Parse as many inputs as
// needed. The token stream and lookahead are reset on every call, so a
// Parser serves sequential parses but not concurrent ones.
type Parser struct {
	rules []Rule

	Tracer

	toks []Token
	pos  int
	curr Token
}

func New() *Parser {
	return &Parser{
		Tracer: discardTracer{},
	}
}

// Register appends a rule to the list. Order is priority: rules are
// tried first to last and the first match wins, so a keyword pattern
// must be registered before an identifier pattern that also matches it.
func (p *Parser) Register(pattern string, fn Constructor) error {
	rule, err := NewRule(pattern, fn)
	if err != nil {
		return err
	}
	p.rules = append(p.rules, rule)
	return nil
}

// MustRegister is Register for patterns known valid at compile time.
func (p *Parser) MustRegister(pattern string, fn Constructor) {
	if err := p.Register(pattern, fn); err != nil {
		panic(err)
	}
}

// Parse tokenizes the whole input, primes the lookahead and parses one
// top-level expression. Grammars wanting statement sequencing do it
// with a low-power separator kind, not by calling Parse repeatedly.
func (p *Parser) Parse(input string) (Value, error) {
	toks, err := p.Tokenize(input)
	if err != nil {
		return nil, err
	}
	p.toks = toks
	p.curr = p.toks[0]
	p.pos = 1
	expr, err := p.ParseExpression(powLowest)
	if err != nil {
		if t, ok := err.(traced); ok {
			err = t.error
		}
		return nil, err
	}
	return expr, nil
}

// Tokenize applies the registered rules to input until it is exhausted
// or nothing matches. The returned stream always ends with exactly one
// end marker. An unmatched remainder is a hard error naming the
// offending text; an all-blank tail counts as exhausted.
func (p *Parser) Tokenize(input string) ([]Token, error) {
	if len(p.rules) == 0 {
		return nil, fmt.Errorf("%w: no rules registered", ErrGrammar)
	}
	var toks []Token
	rest := input
	for strings.TrimSpace(rest) != "" {
		tok, size, err := p.scan(rest)
		if err != nil {
			return nil, err
		}
		if tok == nil {
			return nil, fmt.Errorf("%w: %s", ErrScan, snippet(rest))
		}
		toks = append(toks, tok)
		rest = rest[size:]
	}
	return append(toks, endMarker()), nil
}

// ParseExpression consumes the current token, seeds the expression with
// its nud and extends it through the led of every following token whose
// power is strictly above pow. Hooks recurse through this method with
// their own bound; left associativity comes from an infix hook passing
// its own power, tighter grouping from passing a different one.
func (p *Parser) ParseExpression(pow int) (Value, error) {
	p.Enter("expr")
	defer p.Leave("expr")

	tok := p.Advance()
	left, err := tok.Nud(p)
	if err != nil {
		return nil, p.report(tok.Kind(), err)
	}
	for pow < p.curr.Power() {
		tok = p.Advance()
		left, err = tok.Led(p, left)
		if err != nil {
			return nil, p.report(tok.Kind(), err)
		}
	}
	return left, nil
}

// traced marks an error already handed to the tracer, so a failure is
// reported where the hook failed and not again at every enclosing
// recursion level.
type traced struct {
	error
}

func (t traced) Unwrap() error {
	return t.error
}

func (p *Parser) report(kind string, err error) error {
	var t traced
	if errors.As(err, &t) {
		return err
	}
	p.Error(kind, err)
	return traced{error: err}
}

// Advance returns the current token and moves the lookahead to the next
// one, or to a fresh end marker once the stream is exhausted.
func (p *Parser) Advance() Token {
	tok := p.curr
	if p.pos < len(p.toks) {
		p.curr = p.toks[p.pos]
		p.pos++
	} else {
		p.curr = endMarker()
	}
	return tok
}

// Current returns the lookahead token without consuming it.
func (p *Parser) Current() Token {
	return p.curr
}

// Expect consumes the lookahead when it has the wanted kind and fails
// otherwise. Hooks use it for required delimiters such as a closing
// parenthesis.
func (p *Parser) Expect(kind string) (Token, error) {
	if p.curr.Kind() != kind {
		return nil, fmt.Errorf("%w: expected %s, got %s", ErrSyntax, kind, p.curr.Kind())
	}
	return p.Advance(), nil
}

// Done reports whether the lookahead is the end marker.
func (p *Parser) Done() bool {
	return p.curr.Kind() == KindEOF
}

func (p *Parser) scan(input string) (Token, int, error) {
	for _, rule := range p.rules {
		tok, size, err := rule.match(input)
		if err != nil {
			return nil, 0, err
		}
		if tok != nil {
			return tok, size, nil
		}
	}
	return nil, 0, nil
}

const powLowest = 0

const snippetLen = 16

func snippet(str string) string {
	str = strings.TrimSpace(str)
	if len(str) > snippetLen {
		size := snippetLen
		for size > 0 && !utf8.RuneStart(str[size]) {
			size--
		}
		str = str[:size] + "..."
	}
	return fmt.Sprintf("%q", str)
}
