package pratt

import "fmt"

// Value is the opaque result built by token hooks. A value is either
// atomic (number, name) or a List whose first element is a label and
// remaining elements are operands, themselves values of the same shape.
type Value = any

// List is the tagged-sequence form of a Value.
type List []Value

// Node builds a tagged sequence from a label and its operands.
func Node(label string, args ...Value) List {
	node := List{label}
	return append(node, args...)
}

// Label returns the tag of a sequence when its first element is a label.
func (i List) Label() (string, bool) {
	if len(i) == 0 {
		return "", false
	}
	label, ok := i[0].(string)
	return label, ok
}

// Token is one lexical unit. Nud is called when the token starts an
// expression, Led when it follows an already parsed left operand. A kind
// used only in one position leaves the other hook to its Term default.
type Token interface {
	Kind() string
	Power() int
	Nud(*Parser) (Value, error)
	Led(*Parser, Value) (Value, error)
}

// KindEOF is the kind of the synthetic end marker appended after the
// last real token. Its power is zero so it always stops the parse loop.
const KindEOF = "eof"

// Term carries the attributes shared by all token kinds: a kind name
// used in diagnostics, the matched literal and a binding power. Its
// hooks report a dispatch failure, concrete kinds override the ones
// they support.
type Term struct {
	Name string
	Text string
	Bind int
}

func (t Term) Kind() string { return t.Name }

func (t Term) Power() int { return t.Bind }

func (t Term) Literal() string { return t.Text }

func (t Term) Nud(_ *Parser) (Value, error) {
	return nil, fmt.Errorf("%w: %s can not start an expression", ErrSyntax, t.describe())
}

func (t Term) Led(_ *Parser, _ Value) (Value, error) {
	return nil, fmt.Errorf("%w: %s can not follow an operand", ErrSyntax, t.describe())
}

func (t Term) String() string {
	if t.Text == "" {
		return fmt.Sprintf("<%s>", t.Name)
	}
	return fmt.Sprintf("%s(%s)", t.Name, t.Text)
}

func (t Term) describe() string {
	if t.Text == "" || t.Text == t.Name {
		return t.Name
	}
	return fmt.Sprintf("%s %q", t.Name, t.Text)
}

func endMarker() Token {
	return Term{Name: KindEOF}
}
