package lambda

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// unitStart lists the tokens that may begin a unit, and so continue an
// application.
var unitStart = []TokenType{TokenLParen, TokenLetter, TokenName, TokenNumber}

// Parser is a recursive-descent parser that resolves lowercase variables to
// binder distances while it builds the tree.
type Parser struct {
	lex     *Lexer
	current Token

	// scope maps a letter to the depth of its innermost live binder;
	// 0 means the letter is not bound.
	scope [26]uint32
	depth uint32
}

func NewParser(input string) *Parser {
	return &Parser{lex: NewLexer(input)}
}

func (p *Parser) next() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.current = tok
	return nil
}

// Parse parses a complete term. Trailing tokens are an error.
func (p *Parser) Parse() (Term, error) {
	if err := p.next(); err != nil {
		return nil, err
	}
	term, err := p.parseNode()
	if err != nil {
		return nil, err
	}
	if p.current.Type != TokenEnd {
		return nil, p.errorf("expected end of input")
	}
	return term, nil
}

// node ::= '\' letter lambdaTail | application
func (p *Parser) parseNode() (Term, error) {
	if p.current.Type == TokenLambda {
		if err := p.next(); err != nil {
			return nil, err
		}
		return p.parseLambdaTail()
	}
	return p.parseApp()
}

// lambdaTail ::= letter ( '.' node | lambdaTail )
func (p *Parser) parseLambdaTail() (Term, error) {
	if p.current.Type != TokenLetter {
		return nil, p.errorf("expected letter")
	}
	slot := p.current.Literal[0] - 'a'
	if err := p.next(); err != nil {
		return nil, err
	}

	p.depth++
	saved := p.scope[slot]
	p.scope[slot] = p.depth
	defer func() {
		p.scope[slot] = saved
		p.depth--
	}()

	switch p.current.Type {
	case TokenLetter:
		body, err := p.parseLambdaTail()
		if err != nil {
			return nil, err
		}
		return Abs{Body: body}, nil
	case TokenDot:
		if err := p.next(); err != nil {
			return nil, err
		}
		body, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		return Abs{Body: body}, nil
	default:
		return nil, p.errorf("expected '.'")
	}
}

// application ::= unit unit*
func (p *Parser) parseApp() (Term, error) {
	left, err := p.parseUnit()
	if err != nil {
		return nil, err
	}
	for slices.Contains(unitStart, p.current.Type) {
		right, err := p.parseUnit()
		if err != nil {
			return nil, err
		}
		left = App{Fun: left, Arg: right}
	}
	return left, nil
}

// unit ::= '(' node ')' | letter | Name | Number
func (p *Parser) parseUnit() (Term, error) {
	tok := p.current
	switch tok.Type {
	case TokenLParen:
		if err := p.next(); err != nil {
			return nil, err
		}
		term, err := p.parseNode()
		if err != nil {
			return nil, err
		}
		if p.current.Type != TokenRParen {
			return nil, p.errorf("expected ')'")
		}
		return term, p.next()
	case TokenLetter:
		var term Term = FreeVar{Name: tok.Literal[0]}
		if bound := p.scope[tok.Literal[0]-'a']; bound != 0 {
			term = BoundVar{Index: p.depth - bound}
		}
		return term, p.next()
	case TokenName:
		return Name{Ident: tok.Literal}, p.next()
	case TokenNumber:
		return Church(tok.Value), p.next()
	case TokenEnd:
		return nil, p.errorf("unexpected end of input")
	default:
		return nil, p.errorf("unexpected %s", tok)
	}
}

func (p *Parser) errorf(format string, args ...any) error {
	return &ParseError{Pos: p.current.Pos, Msg: fmt.Sprintf(format, args...)}
}

// Parse parses a lambda term from a string.
func Parse(input string) (Term, error) {
	return NewParser(input).Parse()
}
