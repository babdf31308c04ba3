package lambda

import "fmt"

type TokenType int

const (
	TokenEnd TokenType = iota
	TokenLetter
	TokenName
	TokenNumber
	TokenDot
	TokenLambda
	TokenLParen
	TokenRParen
)

func (t TokenType) String() string {
	switch t {
	case TokenEnd:
		return "end of input"
	case TokenLetter:
		return "letter"
	case TokenName:
		return "name"
	case TokenNumber:
		return "number"
	case TokenDot:
		return "'.'"
	case TokenLambda:
		return "'\\'"
	case TokenLParen:
		return "'('"
	case TokenRParen:
		return "')'"
	default:
		return "unknown"
	}
}

// Token is a lexical unit. Pos is the 0-based character offset of its
// first character in the source.
type Token struct {
	Type    TokenType
	Pos     int
	Literal string
	Value   uint32
}

func (t Token) String() string {
	switch t.Type {
	case TokenLetter, TokenName:
		return fmt.Sprintf("%s %q", t.Type, t.Literal)
	case TokenNumber:
		return fmt.Sprintf("number %d", t.Value)
	default:
		return t.Type.String()
	}
}
