package sexp

// TokenKind represents the type of token.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenError

	// Literals
	TokenSymbol
	TokenKeyword
	TokenIntLiteral
	TokenFloatLiteral
	TokenBoolLiteral

	// Delimiters
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBracket  // [
	TokenRightBracket // ]
)

// String returns a human-readable name for the token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "error"
	case TokenSymbol:
		return "symbol"
	case TokenKeyword:
		return "keyword"
	case TokenIntLiteral:
		return "int literal"
	case TokenFloatLiteral:
		return "float literal"
	case TokenBoolLiteral:
		return "bool literal"
	case TokenLeftParen:
		return "'('"
	case TokenRightParen:
		return "')'"
	case TokenLeftBracket:
		return "'['"
	case TokenRightBracket:
		return "']'"
	default:
		return "unknown"
	}
}

// Token represents a lexical token.
type Token struct {
	Kind   TokenKind
	Lexeme string
	Line   int
	Column int
}
