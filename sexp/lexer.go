package sexp

import (
	"unicode"
	"unicode/utf8"
)

// Lexer tokenizes textual shader expressions.
type Lexer struct {
	source string
	pos    int
	line   int
	column int
	start  int
	tokens []Token
}

// NewLexer creates a new lexer for the given source.
func NewLexer(source string) *Lexer {
	// Estimate ~1 token per 4 characters of source.
	estTokens := len(source) / 4
	if estTokens < 16 {
		estTokens = 16
	}
	return &Lexer{
		source: source,
		pos:    0,
		line:   1,
		column: 1,
		tokens: make([]Token, 0, estTokens),
	}
}

// Tokenize returns all tokens from the source.
func (l *Lexer) Tokenize() ([]Token, error) {
	for !l.isAtEnd() {
		l.start = l.pos
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}

	l.tokens = append(l.tokens, Token{
		Kind:   TokenEOF,
		Line:   l.line,
		Column: l.column,
	})

	return l.tokens, nil
}

func (l *Lexer) scanToken() error {
	r := l.advance()

	switch r {
	case '(':
		l.addToken(TokenLeftParen)
	case ')':
		l.addToken(TokenRightParen)
	case '[':
		l.addToken(TokenLeftBracket)
	case ']':
		l.addToken(TokenRightBracket)

	case ';':
		// Line comment
		for l.peek() != '\n' && !l.isAtEnd() {
			l.advance()
		}

	case ':':
		return l.keyword()

	// Whitespace
	case ' ', '\r', '\t', ',':
		// Ignore whitespace; commas are treated as whitespace
	case '\n':
		l.line++
		l.column = 1

	default:
		switch {
		case isDigit(r):
			l.number()
		case r == '-' && isDigit(l.peek()):
			l.number()
		case isSymbolRune(r):
			l.symbol()
		default:
			return l.errorf("unexpected character %q", r)
		}
	}

	return nil
}

// keyword scans a :name form. The leading colon is not part of the lexeme.
func (l *Lexer) keyword() error {
	for isSymbolRune(l.peek()) {
		l.advance()
	}
	if l.pos == l.start+1 {
		return l.errorf("keyword is missing a name")
	}
	l.start++ // drop the colon
	l.addToken(TokenKeyword)
	return nil
}

func (l *Lexer) number() {
	for isDigit(l.peek()) {
		l.advance()
	}

	isFloat := false
	if l.peek() == '.' && isDigit(l.peekNext()) {
		isFloat = true
		l.advance() // consume '.'
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	// Look for exponent
	if l.peek() == 'e' || l.peek() == 'E' {
		isFloat = true
		l.advance()
		if l.peek() == '+' || l.peek() == '-' {
			l.advance()
		}
		for isDigit(l.peek()) {
			l.advance()
		}
	}

	if isFloat {
		l.addToken(TokenFloatLiteral)
	} else {
		l.addToken(TokenIntLiteral)
	}
}

func (l *Lexer) symbol() {
	for isSymbolRune(l.peek()) {
		l.advance()
	}

	text := l.source[l.start:l.pos]
	if text == "true" || text == "false" {
		l.addToken(TokenBoolLiteral)
		return
	}
	l.addToken(TokenSymbol)
}

func (l *Lexer) addToken(kind TokenKind) {
	l.tokens = append(l.tokens, Token{
		Kind:   kind,
		Lexeme: l.source[l.start:l.pos],
		Line:   l.line,
		Column: l.column - (l.pos - l.start),
	})
}

func (l *Lexer) errorf(format string, args ...any) error {
	return NewSourceErrorf(l.line, l.column-(l.pos-l.start), format, args...)
}

func (l *Lexer) advance() rune {
	r, size := utf8.DecodeRuneInString(l.source[l.pos:])
	l.pos += size
	l.column++
	return r
}

func (l *Lexer) peek() rune {
	if l.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.source[l.pos:])
	return r
}

func (l *Lexer) peekNext() rune {
	if l.pos+1 >= len(l.source) {
		return 0
	}
	_, size := utf8.DecodeRuneInString(l.source[l.pos:])
	r, _ := utf8.DecodeRuneInString(l.source[l.pos+size:])
	return r
}

func (l *Lexer) isAtEnd() bool {
	return l.pos >= len(l.source)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// isSymbolRune reports whether r may appear in a symbol. Symbols cover
// identifiers as well as operator names such as ->, set!, .xyz and <=.
func isSymbolRune(r rune) bool {
	if unicode.IsSpace(r) || r == 0 {
		return false
	}
	switch r {
	case '(', ')', '[', ']', ';', ',', ':':
		return false
	}
	return true
}
