// Package lexer turns LA source text into a stream of tokens.
package lexer

import (
	"strings"

	"github.com/lacc-lang/lacc/internal/token"
)

// Lexer scans LA source text one byte at a time.
type Lexer struct {
	input        string
	position     int
	readPosition int
	ch           byte
	line         int
	column       int
}

// New creates a Lexer positioned at the start of input.
func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func newToken(t token.Type, ch byte, line, col int) token.Token {
	return token.Token{Type: t, Lexeme: string(ch), Literal: string(ch), Line: line, Column: col}
}

// NextToken scans and returns the next token in the stream.
func (l *Lexer) NextToken() token.Token {
	if unterminated, startLine, startCol := l.skipWhitespaceAndComments(); unterminated {
		return token.Token{Type: token.UNTERMINATED_COMMENT, Lexeme: "{", Line: startLine, Column: startCol}
	}

	line, col := l.line, l.column
	var tok token.Token

	switch {
	case l.ch == 0:
		tok = token.Token{Type: token.EOF, Lexeme: "", Line: line, Column: col}
		return tok
	case l.ch == '<':
		if l.peekChar() == '-' {
			l.readChar()
			tok = token.Token{Type: token.ASSIGN, Lexeme: "<-", Line: line, Column: col}
		} else if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.LTE, Lexeme: "<=", Line: line, Column: col}
		} else if l.peekChar() == '>' {
			l.readChar()
			tok = token.Token{Type: token.NOT_EQ, Lexeme: "<>", Line: line, Column: col}
		} else {
			tok = newToken(token.LT, l.ch, line, col)
		}
	case l.ch == '>':
		if l.peekChar() == '=' {
			l.readChar()
			tok = token.Token{Type: token.GTE, Lexeme: ">=", Line: line, Column: col}
		} else {
			tok = newToken(token.GT, l.ch, line, col)
		}
	case l.ch == '.':
		if l.peekChar() == '.' {
			l.readChar()
			tok = token.Token{Type: token.DOTDOT, Lexeme: "..", Line: line, Column: col}
		} else {
			tok = newToken(token.DOT, l.ch, line, col)
		}
	case l.ch == '=':
		tok = newToken(token.EQ, l.ch, line, col)
	case l.ch == '+':
		tok = newToken(token.PLUS, l.ch, line, col)
	case l.ch == '-':
		tok = newToken(token.MINUS, l.ch, line, col)
	case l.ch == '*':
		tok = newToken(token.ASTERISK, l.ch, line, col)
	case l.ch == '/':
		tok = newToken(token.SLASH, l.ch, line, col)
	case l.ch == '^':
		tok = newToken(token.CARET, l.ch, line, col)
	case l.ch == ',':
		tok = newToken(token.COMMA, l.ch, line, col)
	case l.ch == ':':
		tok = newToken(token.COLON, l.ch, line, col)
	case l.ch == ';':
		tok = newToken(token.SEMICOLON, l.ch, line, col)
	case l.ch == '(':
		tok = newToken(token.LPAREN, l.ch, line, col)
	case l.ch == ')':
		tok = newToken(token.RPAREN, l.ch, line, col)
	case l.ch == '[':
		tok = newToken(token.LBRACKET, l.ch, line, col)
	case l.ch == ']':
		tok = newToken(token.RBRACKET, l.ch, line, col)
	case l.ch == '"':
		return l.readStringToken(line, col)
	case isDigit(l.ch):
		return l.readNumber(line, col)
	case isLetter(l.ch):
		lit := l.readIdentifier()
		return token.Token{Type: token.LookupIdent(strings.ToLower(lit)), Lexeme: lit, Literal: lit, Line: line, Column: col}
	default:
		tok = token.Token{Type: token.ILLEGAL, Lexeme: string(l.ch), Literal: string(l.ch), Line: line, Column: col}
	}

	l.readChar()
	return tok
}

// skipWhitespaceAndComments consumes insignificant input, leaving l.ch on
// the first character of the next token (or 0 at end of input). Braces
// `{ ... }` delimit comments; a comment missing its closing brace is
// reported at the line and column it started on.
func (l *Lexer) skipWhitespaceAndComments() (unterminated bool, startLine, startCol int) {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
			l.readChar()
		}
		if l.ch != '{' {
			return false, 0, 0
		}
		startLine, startCol = l.line, l.column
		l.readChar() // consume '{'
		for l.ch != '}' {
			if l.ch == 0 {
				return true, startLine, startCol
			}
			l.readChar()
		}
		l.readChar() // consume '}'
	}
}

func (l *Lexer) readStringToken(line, col int) token.Token {
	l.readChar() // consume opening quote
	start := l.position
	for l.ch != '"' {
		if l.ch == 0 || l.ch == '\n' {
			return token.Token{Type: token.UNTERMINATED_STRING, Lexeme: l.input[start:l.position], Line: line, Column: col}
		}
		l.readChar()
	}
	content := l.input[start:l.position]
	l.readChar() // consume closing quote
	return token.Token{Type: token.STRING, Lexeme: content, Literal: content, Line: line, Column: col}
}

func (l *Lexer) readNumber(line, col int) token.Token {
	start := l.position
	isReal := false
	for isDigit(l.ch) {
		l.readChar()
	}
	if l.ch == '.' && isDigit(l.peekChar()) {
		isReal = true
		l.readChar()
		for isDigit(l.ch) {
			l.readChar()
		}
	}
	lit := l.input[start:l.position]
	if isReal {
		return token.Token{Type: token.REAL, Lexeme: lit, Literal: lit, Line: line, Column: col}
	}
	return token.Token{Type: token.INT, Lexeme: lit, Literal: lit, Line: line, Column: col}
}

func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) || isDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[start:l.position]
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}
