package expr

import (
	"fmt"
)

const (
	Invalid rune = -(iota + 1)
	Ident
	Number
	Comma
	Lparen
	Rparen
	Add
	Sub
	Mul
	Div
	Mod
	Pow
	EOF
)

type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Literal string
	Type    rune
	Position
}

func (t Token) String() string {
	var prefix string
	switch t.Type {
	default:
		prefix = "unknown"
	case Invalid:
		prefix = "invalid"
	case Number:
		prefix = "number"
	case Ident:
		prefix = "identifier"
	case Comma:
		return "<comma>"
	case EOF:
		return "<eof>"
	case Lparen:
		return "<lparen>"
	case Rparen:
		return "<rparen>"
	case Add:
		return "<add>"
	case Sub:
		return "<subtract>"
	case Mul:
		return "<multiply>"
	case Div:
		return "<divide>"
	case Mod:
		return "<modulo>"
	case Pow:
		return "<power>"
	}
	return fmt.Sprintf("%s(%s)", prefix, t.Literal)
}
