package lambda

import "fmt"

// LexError reports a malformed token.
type LexError struct {
	Pos int
	Msg string
}

func (e *LexError) Error() string {
	return fmt.Sprintf("lex error at %d: %s", e.Pos, e.Msg)
}

func (e *LexError) Position() int   { return e.Pos }
func (e *LexError) Message() string { return e.Msg }

// ParseError reports an unexpected token.
type ParseError struct {
	Pos int
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d: %s", e.Pos, e.Msg)
}

func (e *ParseError) Position() int   { return e.Pos }
func (e *ParseError) Message() string { return e.Msg }
