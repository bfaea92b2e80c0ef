package pratt

import (
	"fmt"
	"regexp"
)

// Constructor turns a matched literal into a Token of one kind.
type Constructor func(literal string) Token

// Rule pairs a pattern with the token kind it produces. The pattern is
// matched against the front of the remaining input only; a rule either
// declines or consumes at least one character. Leading insignificant
// characters (blanks) are the pattern's own business, there is no
// central whitespace handling.
type Rule struct {
	pattern *regexp.Regexp
	make    Constructor
}

// NewRule compiles pattern and binds it to the given constructor. The
// pattern is anchored at the start of input; when it contains a capture
// group, the first group becomes the token literal, otherwise the whole
// match does.
func NewRule(pattern string, fn Constructor) (Rule, error) {
	if fn == nil {
		return Rule{}, fmt.Errorf("%w: %s: no constructor given", ErrGrammar, pattern)
	}
	re, err := regexp.Compile("^(?:" + pattern + ")")
	if err != nil {
		return Rule{}, fmt.Errorf("%w: %s", ErrGrammar, err)
	}
	r := Rule{
		pattern: re,
		make:    fn,
	}
	return r, nil
}

// match tries the rule against the front of input. It returns the
// produced token and the number of bytes consumed, or a nil token when
// the rule declines. A match consuming nothing would make tokenization
// loop forever and is reported as a grammar error.
func (r Rule) match(input string) (Token, int, error) {
	ix := r.pattern.FindStringSubmatchIndex(input)
	if ix == nil {
		return nil, 0, nil
	}
	if ix[1] == 0 {
		return nil, 0, fmt.Errorf("%w: %s matches empty input", ErrGrammar, r.pattern)
	}
	literal := input[ix[0]:ix[1]]
	if len(ix) > 2 && ix[2] >= 0 {
		literal = input[ix[2]:ix[3]]
	}
	return r.make(literal), ix[1], nil
}
