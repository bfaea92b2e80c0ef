// Package calc configures the reference arithmetic grammar: numbers,
// names, the four binary operators, unary plus and minus, assignment,
// expression sequencing and parenthesized grouping. It exists to
// exercise the engine, the engine knows nothing about it.
package calc

import (
	"strconv"

	"github.com/midbel/prattle/pratt"
)

const (
	powLowest = iota * 10
	powSeq
	powAssign
	_
	_
	powSum
	powMul
	powUnary
	powGroup
)

const (
	KindNumber   = "number"
	KindSymbol   = "symbol"
	KindSum      = "sum"
	KindProduct  = "product"
	KindAssign   = "assign"
	KindSequence = "sequence"
	KindOpen     = "open"
	KindClose    = "close"
)

// New returns a parser configured with the arithmetic grammar. The
// number rule comes before the symbol rule, operators follow; none of
// the patterns overlap so only the first two orderings matter.
func New() *pratt.Parser {
	p := pratt.New()
	p.MustRegister(`\s*(\d+(?:\.\d+)?)`, newNumber)
	p.MustRegister(`\s*([A-Za-z_]\w*)`, newSymbol)
	p.MustRegister(`\s*([+-])`, newSum)
	p.MustRegister(`\s*([*/])`, newProduct)
	p.MustRegister(`\s*(=)`, newAssign)
	p.MustRegister(`\s*(;)`, newSequence)
	p.MustRegister(`\s*(\()`, newOpen)
	p.MustRegister(`\s*(\))`, newClose)
	return p
}

// Kinds returns the constructor map used to load this grammar from a
// rule file.
func Kinds() map[string]pratt.Constructor {
	return map[string]pratt.Constructor{
		KindNumber:   newNumber,
		KindSymbol:   newSymbol,
		KindSum:      newSum,
		KindProduct:  newProduct,
		KindAssign:   newAssign,
		KindSequence: newSequence,
		KindOpen:     newOpen,
		KindClose:    newClose,
	}
}

type number struct {
	pratt.Term
}

func newNumber(literal string) pratt.Token {
	return number{
		Term: pratt.Term{Name: KindNumber, Text: literal},
	}
}

func (n number) Nud(_ *pratt.Parser) (pratt.Value, error) {
	return strconv.ParseFloat(n.Text, 64)
}

type symbol struct {
	pratt.Term
}

func newSymbol(literal string) pratt.Token {
	return symbol{
		Term: pratt.Term{Name: KindSymbol, Text: literal},
	}
}

func (s symbol) Nud(_ *pratt.Parser) (pratt.Value, error) {
	return s.Text, nil
}

// sum is + and -, usable both as unary prefix and as left-associative
// binary operator. The prefix recurses above every infix power so that
// -a * b parses as (* (- a) b).
type sum struct {
	pratt.Term
}

func newSum(literal string) pratt.Token {
	return sum{
		Term: pratt.Term{Name: literal, Text: literal, Bind: powSum},
	}
}

func (s sum) Nud(p *pratt.Parser) (pratt.Value, error) {
	expr, err := p.ParseExpression(powUnary)
	if err != nil {
		return nil, err
	}
	return pratt.Node(s.Name, expr), nil
}

func (s sum) Led(p *pratt.Parser, left pratt.Value) (pratt.Value, error) {
	right, err := p.ParseExpression(s.Bind)
	if err != nil {
		return nil, err
	}
	return pratt.Node(s.Name, left, right), nil
}

type product struct {
	pratt.Term
}

func newProduct(literal string) pratt.Token {
	return product{
		Term: pratt.Term{Name: literal, Text: literal, Bind: powMul},
	}
}

func (f product) Led(p *pratt.Parser, left pratt.Value) (pratt.Value, error) {
	right, err := p.ParseExpression(f.Bind)
	if err != nil {
		return nil, err
	}
	return pratt.Node(f.Name, left, right), nil
}

type assign struct {
	pratt.Term
}

func newAssign(literal string) pratt.Token {
	return assign{
		Term: pratt.Term{Name: KindAssign, Text: literal, Bind: powAssign},
	}
}

func (a assign) Led(p *pratt.Parser, left pratt.Value) (pratt.Value, error) {
	right, err := p.ParseExpression(a.Bind)
	if err != nil {
		return nil, err
	}
	return pratt.Node(KindAssign, left, right), nil
}

// sequence separates expressions with ; and flattens: the left side of
// a separator that is already a sequence node absorbs the right side
// instead of nesting.
type sequence struct {
	pratt.Term
}

func newSequence(literal string) pratt.Token {
	return sequence{
		Term: pratt.Term{Name: KindSequence, Text: literal, Bind: powSeq},
	}
}

func (s sequence) Led(p *pratt.Parser, left pratt.Value) (pratt.Value, error) {
	right, err := p.ParseExpression(s.Bind)
	if err != nil {
		return nil, err
	}
	if node, ok := left.(pratt.List); ok {
		if label, _ := node.Label(); label == KindSequence {
			return append(node, right), nil
		}
	}
	return pratt.Node(KindSequence, left, right), nil
}

// open handles ( in both positions: as prefix it groups the inner
// expression, as infix it pairs the left operand with one parenthesized
// operand, a juxtaposition written f(x).
type open struct {
	pratt.Term
}

func newOpen(literal string) pratt.Token {
	return open{
		Term: pratt.Term{Name: KindOpen, Text: literal, Bind: powGroup},
	}
}

func (o open) Nud(p *pratt.Parser) (pratt.Value, error) {
	expr, err := p.ParseExpression(powLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(KindClose); err != nil {
		return nil, err
	}
	return expr, nil
}

func (o open) Led(p *pratt.Parser, left pratt.Value) (pratt.Value, error) {
	inner, err := p.ParseExpression(powLowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.Expect(KindClose); err != nil {
		return nil, err
	}
	return pratt.List{left, inner}, nil
}

// close has no behavior of its own: it only exists to be consumed by
// the matching open handler. Its default hooks make an unmatched )
// a syntax error.
func newClose(literal string) pratt.Token {
	return pratt.Term{Name: KindClose, Text: literal}
}
