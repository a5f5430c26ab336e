package parser

import (
	"github.com/lacc-lang/lacc/internal/ast"
	"github.com/lacc-lang/lacc/internal/config"
	"github.com/lacc-lang/lacc/internal/token"
)

// parseVarDecl parses `n1, n2, ... : T [ [size] ] ;`.
func (p *Parser) parseVarDecl() *ast.VarDecl {
	decl := &ast.VarDecl{Token: p.cur}
	decl.Names = append(decl.Names, p.parseIdentifier())
	for p.curIs(token.COMMA) {
		p.next()
		decl.Names = append(decl.Names, p.parseIdentifier())
	}
	p.expect(token.COLON)
	decl.Type = p.parseTypeRef()
	if p.curIs(token.LBRACKET) {
		p.next()
		decl.ArraySize = p.parseExpression()
		p.expect(token.RBRACKET)
	}
	p.expect(token.SEMICOLON)
	return decl
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	tok := p.cur
	name := p.cur.Lexeme
	p.expect(token.IDENT)
	return &ast.Identifier{Token: tok, Name: name}
}

// parseTypeRef parses a primitive tag, a named type, a pointer decoration,
// or an inline record body.
func (p *Parser) parseTypeRef() ast.TypeRef {
	if p.curIs(token.CARET) {
		tok := p.cur
		p.next()
		return &ast.PointerType{Token: tok, Elem: p.parseTypeRef()}
	}
	if p.curIs(token.REGISTRO) {
		return p.parseRecordType()
	}
	switch p.cur.Type {
	case token.INTEIRO, token.REAL_KW, token.LITERAL, token.LOGICO:
		tok := p.cur
		name := primitiveName(p.cur.Type)
		p.next()
		return &ast.PrimitiveType{Token: tok, Name: name}
	case token.IDENT:
		tok := p.cur
		name := p.cur.Lexeme
		p.next()
		return &ast.NamedType{Token: tok, Name: name}
	default:
		p.listener.SyntaxError(p.cur)
		tok := p.cur
		p.next()
		return &ast.PrimitiveType{Token: tok, Name: "desconhecido"}
	}
}

func primitiveName(t token.Type) string {
	switch t {
	case token.INTEIRO:
		return config.Inteiro
	case token.REAL_KW:
		return config.Real
	case token.LITERAL:
		return config.Literal
	case token.LOGICO:
		return config.Logico
	}
	return "desconhecido"
}

// parseRecordType parses `registro field* fim_registro`.
func (p *Parser) parseRecordType() *ast.RecordType {
	rec := &ast.RecordType{Token: p.cur}
	p.expect(token.REGISTRO)
	p.skipSemicolons()
	for !p.curIs(token.FIM_REGISTRO) && !p.curIs(token.EOF) {
		rec.Fields = append(rec.Fields, p.parseField())
		p.skipSemicolons()
	}
	p.expect(token.FIM_REGISTRO)
	return rec
}

func (p *Parser) parseField() *ast.Field {
	f := &ast.Field{}
	f.Names = append(f.Names, p.parseIdentifier())
	for p.curIs(token.COMMA) {
		p.next()
		f.Names = append(f.Names, p.parseIdentifier())
	}
	p.expect(token.COLON)
	f.Type = p.parseTypeRef()
	p.expect(token.SEMICOLON)
	return f
}

// parseTypeDecl parses `tipo N : T ;`.
func (p *Parser) parseTypeDecl() *ast.TypeDecl {
	tok := p.cur
	p.expect(token.TIPO)
	name := p.parseIdentifier()
	p.expect(token.COLON)
	body := p.parseTypeRef()
	p.expect(token.SEMICOLON)
	return &ast.TypeDecl{Token: tok, Name: name, Body: body}
}

// parseConstDecl parses `constante N : T = literal ;`. The declared type
// tag is consumed for grammar symmetry with varDecl; the analyzer infers
// the constant's real type from the literal itself.
func (p *Parser) parseConstDecl() *ast.ConstDecl {
	tok := p.cur
	p.expect(token.CONSTANTE)
	name := p.parseIdentifier()
	p.expect(token.COLON)
	p.parseTypeRef()
	p.expect(token.EQ)
	value := p.parseExpression()
	p.expect(token.SEMICOLON)
	return &ast.ConstDecl{Token: tok, Name: name, Value: value}
}

func (p *Parser) parseParams() []*ast.Param {
	var params []*ast.Param
	p.expect(token.LPAREN)
	if !p.curIs(token.RPAREN) {
		params = append(params, p.parseParam())
		for p.curIs(token.COMMA) {
			p.next()
			params = append(params, p.parseParam())
		}
	}
	p.expect(token.RPAREN)
	return params
}

func (p *Parser) parseParam() *ast.Param {
	name := p.parseIdentifier()
	p.expect(token.COLON)
	typ := p.parseTypeRef()
	return &ast.Param{Name: name, Type: typ}
}

// parseLocals parses the zero or more variable declarations that precede
// `inicio` inside a function or procedure body.
func (p *Parser) parseLocals() []*ast.VarDecl {
	var locals []*ast.VarDecl
	p.skipSemicolons()
	for p.curIs(token.IDENT) {
		locals = append(locals, p.parseVarDecl())
		p.skipSemicolons()
	}
	return locals
}

func (p *Parser) parseFunctionDecl() *ast.FunctionDecl {
	tok := p.cur
	p.expect(token.FUNCAO)
	name := p.parseIdentifier()
	params := p.parseParams()
	p.expect(token.COLON)
	ret := p.parseTypeRef()
	p.expect(token.SEMICOLON)
	locals := p.parseLocals()
	p.expect(token.INICIO)
	p.skipSemicolons()
	body := p.parseStatementsUntil(token.FIM_FUNCAO)
	p.expect(token.FIM_FUNCAO)
	return &ast.FunctionDecl{Token: tok, Name: name, Params: params, ReturnType: ret, Locals: locals, Body: body}
}

func (p *Parser) parseProcedureDecl() *ast.ProcedureDecl {
	tok := p.cur
	p.expect(token.PROCEDIMENTO)
	name := p.parseIdentifier()
	params := p.parseParams()
	p.expect(token.SEMICOLON)
	locals := p.parseLocals()
	p.expect(token.INICIO)
	p.skipSemicolons()
	body := p.parseStatementsUntil(token.FIM_PROCEDIMENTO)
	p.expect(token.FIM_PROCEDIMENTO)
	return &ast.ProcedureDecl{Token: tok, Name: name, Params: params, Locals: locals, Body: body}
}
