package expr

import (
	"fmt"
	"strconv"
)

type Expression interface {
	fmt.Stringer
}

type number struct {
	value float64
}

func (n number) String() string {
	return strconv.FormatFloat(n.value, 'g', -1, 64)
}

type variable struct {
	ident string
	Position
}

func (v variable) String() string {
	return v.ident
}

type call struct {
	ident string
	args  []Expression
	Position
}

func (c call) String() string {
	str := c.ident + "("
	for i, a := range c.args {
		if i > 0 {
			str += ", "
		}
		str += a.String()
	}
	return str + ")"
}

type unary struct {
	op    rune
	right Expression
}

func (u unary) String() string {
	return fmt.Sprintf("(-%s)", u.right)
}

type binary struct {
	op    rune
	left  Expression
	right Expression
}

func (b binary) String() string {
	var op string
	switch b.op {
	case Add:
		op = "+"
	case Sub:
		op = "-"
	case Mul:
		op = "*"
	case Div:
		op = "/"
	case Mod:
		op = "%"
	case Pow:
		op = "^"
	}
	return fmt.Sprintf("(%s %s %s)", b.left, op, b.right)
}

const (
	powLowest = iota
	powAdd    // +, -
	powMul    // *, /, %
	powPrefix // -
	powPow    // ^, **
	powCall   // ()
)

type powerMap map[rune]int

func (p powerMap) Get(r rune) int {
	v, ok := p[r]
	if !ok {
		return powLowest
	}
	return v
}

var powers = powerMap{
	Add:    powAdd,
	Sub:    powAdd,
	Mul:    powMul,
	Div:    powMul,
	Mod:    powMul,
	Pow:    powPow,
	Lparen: powCall,
}

type parser struct {
	scan *Scanner
	curr Token
	peek Token

	prefix map[rune]func() (Expression, error)
	infix  map[rune]func(Expression) (Expression, error)
}

// Parse builds the expression tree of str.
func Parse(str string) (Expression, error) {
	p := parser{
		scan: Scan(str),
	}
	p.prefix = map[rune]func() (Expression, error){
		Sub:    p.parsePrefix,
		Add:    p.parsePrefix,
		Number: p.parsePrefix,
		Ident:  p.parsePrefix,
		Lparen: p.parseGroup,
	}
	p.infix = map[rune]func(Expression) (Expression, error){
		Add:    p.parseInfix,
		Sub:    p.parseInfix,
		Mul:    p.parseInfix,
		Div:    p.parseInfix,
		Mod:    p.parseInfix,
		Pow:    p.parseInfix,
		Lparen: p.parseCall,
	}
	p.next()
	p.next()
	return p.parseAll()
}

func (p *parser) parseAll() (Expression, error) {
	if p.done() {
		return nil, p.syntaxError("empty expression")
	}
	e, err := p.parse(powLowest)
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, p.syntaxError(fmt.Sprintf("unexpected token %s", p.curr))
	}
	return e, nil
}

func (p *parser) parse(pow int) (Expression, error) {
	fn, ok := p.prefix[p.curr.Type]
	if !ok {
		return nil, p.syntaxError(fmt.Sprintf("prefix: %s can not be parsed", p.curr))
	}
	left, err := fn()
	if err != nil {
		return nil, err
	}
	for !p.done() && pow < powers.Get(p.curr.Type) {
		fn, ok := p.infix[p.curr.Type]
		if !ok {
			return nil, p.syntaxError(fmt.Sprintf("infix: %s can not be parsed", p.curr))
		}
		left, err = fn(left)
		if err != nil {
			return nil, err
		}
	}
	return left, nil
}

func (p *parser) parseInfix(left Expression) (Expression, error) {
	expr := binary{
		op:   p.curr.Type,
		left: left,
	}
	pow := powers.Get(p.curr.Type)
	if expr.op == Pow {
		// right associative: 2^3^2 is 2^(3^2)
		pow--
	}
	p.next()
	right, err := p.parse(pow)
	if err != nil {
		return nil, err
	}
	expr.right = right
	return expr, nil
}

func (p *parser) parsePrefix() (Expression, error) {
	var expr Expression
	switch p.curr.Type {
	case Sub, Add:
		op := p.curr.Type
		p.next()

		right, err := p.parse(powPrefix)
		if err != nil {
			return nil, err
		}
		if op == Add {
			return right, nil
		}
		expr = unary{
			op:    op,
			right: right,
		}
	case Number:
		n, err := strconv.ParseFloat(p.curr.Literal, 64)
		if err != nil {
			return nil, p.syntaxError(fmt.Sprintf("%s: invalid number", p.curr.Literal))
		}
		expr = number{
			value: n,
		}
		p.next()
	case Ident:
		expr = variable{
			ident:    p.curr.Literal,
			Position: p.curr.Position,
		}
		p.next()
	default:
		return nil, p.syntaxError(fmt.Sprintf("unsupported token: %s", p.curr))
	}
	return expr, nil
}

func (p *parser) parseCall(expr Expression) (Expression, error) {
	v, ok := expr.(variable)
	if !ok {
		return nil, p.syntaxError("try to call non function")
	}
	fn := call{
		ident:    v.ident,
		Position: v.Position,
	}
	p.next()
	for p.curr.Type != Rparen && !p.done() {
		e, err := p.parse(powLowest)
		if err != nil {
			return nil, err
		}
		fn.args = append(fn.args, e)
		switch p.curr.Type {
		case Comma:
			p.next()
		case Rparen:
		default:
			return nil, p.syntaxError("missing comma")
		}
	}
	if p.curr.Type != Rparen {
		return nil, p.syntaxError("missing closing )")
	}
	p.next()
	return fn, nil
}

func (p *parser) parseGroup() (Expression, error) {
	p.next()
	expr, err := p.parse(powLowest)
	if err != nil {
		return nil, err
	}
	if p.curr.Type != Rparen {
		return nil, p.syntaxError("missing closing )")
	}
	p.next()
	return expr, nil
}

func (p *parser) syntaxError(msg string) error {
	return SyntaxError{
		Message:  msg,
		Position: p.curr.Position,
	}
}

func (p *parser) done() bool {
	return p.curr.Type == EOF
}

func (p *parser) next() {
	p.curr = p.peek
	p.peek = p.scan.Scan()
}
