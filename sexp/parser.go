package sexp

import "strconv"

// Parser builds expression trees from tokens.
type Parser struct {
	tokens  []Token
	current int
}

// NewParser creates a new parser for the given tokens.
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens:  tokens,
		current: 0,
	}
}

// Parse parses the tokens and returns the top-level forms.
func (p *Parser) Parse() ([]Node, error) {
	var forms []Node

	for !p.isAtEnd() {
		form, err := p.form()
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}

	return forms, nil
}

// form parses a single node.
func (p *Parser) form() (Node, error) {
	tok := p.advance()

	switch tok.Kind {
	case TokenLeftParen:
		return p.list(TokenRightParen, tok)
	case TokenLeftBracket:
		return p.list(TokenRightBracket, tok)
	case TokenSymbol:
		return Symbol{Name: tok.Lexeme}, nil
	case TokenKeyword:
		return Keyword{Name: tok.Lexeme}, nil
	case TokenBoolLiteral:
		return Bool(tok.Lexeme == "true"), nil
	case TokenIntLiteral:
		v, err := strconv.ParseInt(tok.Lexeme, 10, 32)
		if err != nil {
			return nil, p.errorf(tok, "invalid integer literal %q", tok.Lexeme)
		}
		return Int(int32(v)), nil
	case TokenFloatLiteral:
		v, err := strconv.ParseFloat(tok.Lexeme, 32)
		if err != nil {
			return nil, p.errorf(tok, "invalid float literal %q", tok.Lexeme)
		}
		return Float(float32(v)), nil
	case TokenRightParen, TokenRightBracket:
		return nil, p.errorf(tok, "unexpected %s", tok.Kind)
	default:
		return nil, p.errorf(tok, "unexpected token %s", tok.Kind)
	}
}

// list parses the elements of a form up to the closing delimiter.
// Parens and brackets are interchangeable; brackets are conventional
// for binding lists and declarations.
func (p *Parser) list(closing TokenKind, open Token) (Node, error) {
	var elems []Node

	for {
		if p.isAtEnd() {
			return nil, p.errorf(open, "unclosed %s", open.Kind)
		}
		if p.peek().Kind == closing {
			p.advance()
			break
		}
		if p.peek().Kind == TokenRightParen || p.peek().Kind == TokenRightBracket {
			return nil, p.errorf(p.peek(), "mismatched %s", p.peek().Kind)
		}
		elem, err := p.form()
		if err != nil {
			return nil, err
		}
		elems = append(elems, elem)
	}

	if len(elems) == 0 {
		return Empty{}, nil
	}
	return Call{Op: elems[0], Args: elems[1:]}, nil
}

func (p *Parser) errorf(tok Token, format string, args ...any) error {
	return NewSourceErrorf(tok.Line, tok.Column, format, args...)
}

func (p *Parser) advance() Token {
	tok := p.peek()
	if tok.Kind != TokenEOF {
		p.current++
	}
	return tok
}

func (p *Parser) peek() Token {
	if p.current >= len(p.tokens) {
		return Token{Kind: TokenEOF}
	}
	return p.tokens[p.current]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == TokenEOF
}
