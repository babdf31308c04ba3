package lambda

import "math"

// Lexer turns source text into tokens on demand. A Lexer cannot be rewound;
// create a new one to scan the same text again.
type Lexer struct {
	input []rune
	pos   int
}

func NewLexer(input string) *Lexer {
	return &Lexer{input: []rune(input)}
}

// Next returns the next token. Once the input is exhausted it keeps
// returning TokenEnd.
func (l *Lexer) Next() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.input) {
		return Token{Type: TokenEnd, Pos: l.pos}, nil
	}

	start := l.pos
	ch := l.input[l.pos]
	switch {
	case isDigit(ch):
		return l.scanNumber()
	case isLower(ch):
		l.pos++
		if l.pos < len(l.input) && (isDigit(l.input[l.pos]) || isUpper(l.input[l.pos])) {
			return Token{}, &LexError{Pos: l.pos, Msg: "variable must be a single lowercase letter"}
		}
		return Token{Type: TokenLetter, Pos: start, Literal: string(ch)}, nil
	case isUpper(ch):
		return l.scanName()
	}

	l.pos++
	switch ch {
	case '.':
		return Token{Type: TokenDot, Pos: start}, nil
	case '\\', 'λ':
		return Token{Type: TokenLambda, Pos: start}, nil
	case '(':
		return Token{Type: TokenLParen, Pos: start}, nil
	case ')':
		return Token{Type: TokenRParen, Pos: start}, nil
	}
	return Token{}, &LexError{Pos: start, Msg: "invalid token"}
}

func (l *Lexer) scanNumber() (Token, error) {
	start := l.pos
	var value uint64
	for l.pos < len(l.input) && isDigit(l.input[l.pos]) {
		value = value*10 + uint64(l.input[l.pos]-'0')
		if value > math.MaxUint32 {
			return Token{}, &LexError{Pos: l.pos, Msg: "integer literal too large"}
		}
		l.pos++
	}
	if l.pos < len(l.input) && isLetter(l.input[l.pos]) {
		return Token{}, &LexError{Pos: l.pos, Msg: "invalid number"}
	}
	return Token{Type: TokenNumber, Pos: start, Value: uint32(value)}, nil
}

func (l *Lexer) scanName() (Token, error) {
	start := l.pos
	for l.pos < len(l.input) && (isUpper(l.input[l.pos]) || isDigit(l.input[l.pos])) {
		l.pos++
	}
	if l.pos < len(l.input) && isLower(l.input[l.pos]) {
		return Token{}, &LexError{Pos: l.pos, Msg: "names may only contain uppercase letters and digits"}
	}
	return Token{Type: TokenName, Pos: start, Literal: string(l.input[start:l.pos])}, nil
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.input) {
		switch l.input[l.pos] {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			l.pos++
		default:
			return
		}
	}
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isLower(ch rune) bool {
	return ch >= 'a' && ch <= 'z'
}

func isUpper(ch rune) bool {
	return ch >= 'A' && ch <= 'Z'
}

func isLetter(ch rune) bool {
	return isLower(ch) || isUpper(ch)
}
