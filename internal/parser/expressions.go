package parser

import (
	"github.com/lacc-lang/lacc/internal/ast"
	"github.com/lacc-lang/lacc/internal/token"
)

// parseExpression is the grammar's top production:
//
//	expressao           := expressao_ou
//	expressao_ou        := expressao_e ( OU expressao_e )*
//	expressao_e         := expressao_relacional ( E expressao_relacional )*
//	expressao_relacional:= expressao_aritmetica ( relop expressao_aritmetica )*
//	expressao_aritmetica:= termo ( (+|-) termo )*
//	termo                := fator ( (*|/) fator )*
//	fator                := INT | REAL | STRING | bool | IDENT call? | ^fator | -fator | nao fator | ( expr )
//
// `ou` binds loosest, then `e`, then the comparisons, each parsed by its
// own function (parseLogicalOr, parseLogicalAnd, parseRelational).
func (p *Parser) parseExpression() ast.Expression {
	return p.parseLogicalOr()
}

func (p *Parser) parseLogicalOr() ast.Expression {
	left := p.parseLogicalAnd()
	for p.curIs(token.OU) {
		tok := p.cur
		p.next()
		right := p.parseLogicalAnd()
		left = &ast.BinaryExpr{Token: tok, Op: "ou", Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	left := p.parseRelational()
	for p.curIs(token.E) {
		tok := p.cur
		p.next()
		right := p.parseRelational()
		left = &ast.BinaryExpr{Token: tok, Op: "e", Left: left, Right: right}
	}
	return left
}

func isRelOp(t token.Type) bool {
	switch t {
	case token.LT, token.LTE, token.GT, token.GTE, token.EQ, token.NOT_EQ:
		return true
	}
	return false
}

func (p *Parser) parseRelational() ast.Expression {
	left := p.parseArithmetic()
	for isRelOp(p.cur.Type) {
		tok := p.cur
		op := string(p.cur.Type)
		p.next()
		right := p.parseArithmetic()
		left = &ast.BinaryExpr{Token: tok, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseArithmetic() ast.Expression {
	left := p.parseTerm()
	for p.curIs(token.PLUS) || p.curIs(token.MINUS) {
		tok := p.cur
		op := string(p.cur.Type)
		p.next()
		right := p.parseTerm()
		left = &ast.BinaryExpr{Token: tok, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseTerm() ast.Expression {
	left := p.parseUnary()
	for p.curIs(token.ASTERISK) || p.curIs(token.SLASH) {
		tok := p.cur
		op := string(p.cur.Type)
		p.next()
		right := p.parseUnary()
		left = &ast.BinaryExpr{Token: tok, Op: op, Left: left, Right: right}
	}
	return left
}

func (p *Parser) parseUnary() ast.Expression {
	switch p.cur.Type {
	case token.MINUS:
		tok := p.cur
		p.next()
		return &ast.UnaryExpr{Token: tok, Op: "-", Right: p.parseUnary()}
	case token.NAO:
		tok := p.cur
		p.next()
		return &ast.UnaryExpr{Token: tok, Op: "nao", Right: p.parseUnary()}
	case token.CARET:
		tok := p.cur
		p.next()
		return &ast.PointerDeref{Token: tok, Operand: p.parseUnary()}
	default:
		return p.parsePostfix()
	}
}

// parsePostfix handles `.field` and `[index]` chaining on a primary
// expression, e.g. `pessoa.endereco.numero` or `matriz[i]`.
func (p *Parser) parsePostfix() ast.Expression {
	expr := p.parsePrimary()
	for {
		switch p.cur.Type {
		case token.DOT:
			tok := p.cur
			p.next()
			field := p.parseIdentifier()
			expr = &ast.FieldAccess{Token: tok, Record: expr, Field: field}
		case token.LBRACKET:
			tok := p.cur
			p.next()
			idx := p.parseExpression()
			p.expect(token.RBRACKET)
			expr = &ast.ArrayAccess{Token: tok, Array: expr, Index: idx}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expression {
	switch p.cur.Type {
	case token.INT:
		tok := p.cur
		p.next()
		return &ast.IntLiteral{Token: tok, Value: tok.Lexeme}
	case token.REAL:
		tok := p.cur
		p.next()
		return &ast.RealLiteral{Token: tok, Value: tok.Lexeme}
	case token.STRING:
		tok := p.cur
		p.next()
		return &ast.StringLiteral{Token: tok, Value: tok.Lexeme}
	case token.VERDADEIRO:
		tok := p.cur
		p.next()
		return &ast.BoolLiteral{Token: tok, Value: true}
	case token.FALSO:
		tok := p.cur
		p.next()
		return &ast.BoolLiteral{Token: tok, Value: false}
	case token.LPAREN:
		tok := p.cur
		p.next()
		inner := p.parseExpression()
		p.expect(token.RPAREN)
		return &ast.ParenExpr{Token: tok, Inner: inner}
	case token.IDENT:
		if p.peekIs(token.LPAREN) {
			return p.parseFuncCall()
		}
		return p.parseIdentifier()
	default:
		p.listener.SyntaxError(p.cur)
		tok := p.cur
		p.next()
		return &ast.Identifier{Token: tok, Name: tok.Lexeme}
	}
}

func (p *Parser) parseFuncCall() *ast.FuncCallExpr {
	tok := p.cur
	name := p.parseIdentifier()
	p.expect(token.LPAREN)
	var args []ast.Expression
	if !p.curIs(token.RPAREN) {
		args = append(args, p.parseExpression())
		for p.curIs(token.COMMA) {
			p.next()
			args = append(args, p.parseExpression())
		}
	}
	p.expect(token.RPAREN)
	return &ast.FuncCallExpr{Token: tok, Name: name, Args: args}
}
