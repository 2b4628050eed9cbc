package expr

import (
	"unicode/utf8"
)

type Scanner struct {
	input []byte
	curr  int
	next  int
	char  rune

	Position
}

func Scan(str string) *Scanner {
	s := Scanner{
		input: []byte(str),
	}
	s.Line = 1
	s.read()
	return &s
}

func (s *Scanner) Scan() Token {
	s.skipBlank()

	var tok Token
	tok.Position = s.Position
	if s.done() {
		tok.Type = EOF
		return tok
	}
	switch {
	case isDigit(s.char) || s.char == dot:
		s.scanNumber(&tok)
	case isLetter(s.char):
		s.scanIdent(&tok)
	default:
		s.scanPunct(&tok)
	}
	return tok
}

func (s *Scanner) scanNumber(tok *Token) {
	pos := s.curr
	for isDigit(s.char) {
		s.read()
	}
	if s.char == dot {
		s.read()
		for isDigit(s.char) {
			s.read()
		}
	}
	if s.char == 'e' || s.char == 'E' {
		if r := s.peek(); isDigit(r) || r == '-' || r == '+' {
			s.read()
			s.read()
			for isDigit(s.char) {
				s.read()
			}
		}
	}
	tok.Type = Number
	tok.Literal = string(s.input[pos:s.curr])
}

func (s *Scanner) scanIdent(tok *Token) {
	pos := s.curr
	for isAlpha(s.char) {
		s.read()
	}
	tok.Type = Ident
	tok.Literal = string(s.input[pos:s.curr])
}

func (s *Scanner) scanPunct(tok *Token) {
	switch s.char {
	case comma:
		tok.Type = Comma
	case lparen:
		tok.Type = Lparen
	case rparen:
		tok.Type = Rparen
	case plus:
		tok.Type = Add
	case minus:
		tok.Type = Sub
	case star:
		tok.Type = Mul
		if s.peek() == star {
			s.read()
			tok.Type = Pow
		}
	case slash:
		tok.Type = Div
	case percent:
		tok.Type = Mod
	case caret:
		tok.Type = Pow
	default:
		tok.Type = Invalid
		tok.Literal = string(s.char)
	}
	s.read()
}

func (s *Scanner) skipBlank() {
	for isBlank(s.char) {
		s.read()
	}
}

func (s *Scanner) done() bool {
	return s.curr >= len(s.input)
}

func (s *Scanner) read() {
	if s.char == nl {
		s.Line++
		s.Column = 0
	}
	if s.next >= len(s.input) {
		s.curr = len(s.input)
		s.char = utf8.RuneError
		return
	}
	r, size := utf8.DecodeRune(s.input[s.next:])
	s.curr = s.next
	s.next += size
	s.char = r
	s.Column++
}

func (s *Scanner) peek() rune {
	r, _ := utf8.DecodeRune(s.input[s.next:])
	return r
}

const (
	space      rune = ' '
	tab             = '\t'
	cr              = '\r'
	nl              = '\n'
	lparen          = '('
	rparen          = ')'
	comma           = ','
	dot             = '.'
	plus            = '+'
	minus           = '-'
	star            = '*'
	slash           = '/'
	percent         = '%'
	caret           = '^'
	underscore      = '_'
)

func isLetter(r rune) bool {
	return isLower(r) || isUpper(r) || r == underscore
}

func isAlpha(r rune) bool {
	return isLetter(r) || isDigit(r)
}

func isLower(r rune) bool {
	return r >= 'a' && r <= 'z'
}

func isUpper(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isBlank(r rune) bool {
	return r == space || r == tab || r == cr || r == nl
}
