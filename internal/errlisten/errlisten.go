// Package errlisten classifies lexical and syntactic problems into the
// four diagnostic kinds the compiler reports for malformed input. One
// Listener serves both the lexer (through token inspection) and the
// parser (through expectation failures).
package errlisten

import (
	"github.com/lacc-lang/lacc/internal/diagnostics"
	"github.com/lacc-lang/lacc/internal/token"
)

// Listener reports lexical and syntactic diagnostics to a shared
// Collector. It holds no state of its own: every method is a pure
// classification over its argument.
type Listener struct {
	Diagnostics *diagnostics.Collector
}

// New creates a Listener reporting into c.
func New(c *diagnostics.Collector) *Listener {
	return &Listener{Diagnostics: c}
}

// CheckToken inspects a single scanned token and reports a lexical
// diagnostic if it is one of the three error token kinds the lexer
// produces in place of a normal token. It reports whether the token was an
// error token (callers should not feed error tokens to the parser).
func (l *Listener) CheckToken(tok token.Token) bool {
	switch tok.Type {
	case token.UNTERMINATED_STRING:
		l.Diagnostics.AddLine(diagnostics.UnterminatedString, tok.Line)
		return true
	case token.UNTERMINATED_COMMENT:
		l.Diagnostics.AddLine(diagnostics.UnterminatedComment, tok.Line)
		return true
	case token.ILLEGAL:
		l.Diagnostics.AddLine(diagnostics.InvalidChar, tok.Line, tok.Lexeme)
		return true
	default:
		return false
	}
}

// SyntaxError reports a generic parser-level syntax error, naming the
// offending symbol: the literal lexeme of the unexpected token, or "EOF"
// at end of input.
func (l *Listener) SyntaxError(offending token.Token) {
	symbol := offending.Lexeme
	if offending.Type == token.EOF {
		symbol = "EOF"
	}
	l.Diagnostics.AddLine(diagnostics.SyntaxError, offending.Line, symbol)
}
