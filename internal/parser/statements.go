package parser

import (
	"strconv"

	"github.com/lacc-lang/lacc/internal/ast"
	"github.com/lacc-lang/lacc/internal/token"
)

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Type {
	case token.LEIA:
		return p.parseReadStmt()
	case token.ESCREVA:
		return p.parseWriteStmt()
	case token.SE:
		return p.parseIfStmt()
	case token.ENQUANTO:
		return p.parseWhileStmt()
	case token.FACA:
		return p.parseDoUntilStmt()
	case token.PARA:
		return p.parseForStmt()
	case token.CASO:
		return p.parseSwitchStmt()
	case token.RETORNE:
		return p.parseReturnStmt()
	case token.CARET, token.IDENT:
		return p.parseAssignOrCallStmt()
	default:
		p.listener.SyntaxError(p.cur)
		p.next()
		return nil
	}
}

func (p *Parser) parseReadStmt() *ast.ReadStmt {
	tok := p.cur
	p.expect(token.LEIA)
	p.expect(token.LPAREN)
	stmt := &ast.ReadStmt{Token: tok}
	if !p.curIs(token.RPAREN) {
		stmt.Targets = append(stmt.Targets, p.parseLvalue())
		for p.curIs(token.COMMA) {
			p.next()
			stmt.Targets = append(stmt.Targets, p.parseLvalue())
		}
	}
	p.expect(token.RPAREN)
	p.expect(token.SEMICOLON)
	return stmt
}

func (p *Parser) parseWriteStmt() *ast.WriteStmt {
	tok := p.cur
	p.expect(token.ESCREVA)
	p.expect(token.LPAREN)
	stmt := &ast.WriteStmt{Token: tok}
	if !p.curIs(token.RPAREN) {
		stmt.Values = append(stmt.Values, p.parseExpression())
		for p.curIs(token.COMMA) {
			p.next()
			stmt.Values = append(stmt.Values, p.parseExpression())
		}
	}
	p.expect(token.RPAREN)
	p.expect(token.SEMICOLON)
	return stmt
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	tok := p.cur
	p.expect(token.SE)
	cond := p.parseExpression()
	p.expect(token.ENTAO)
	p.skipSemicolons()
	then := p.parseStatementsUntil(token.FIM_SE, token.SENAO)
	var els []ast.Statement
	if p.curIs(token.SENAO) {
		p.next()
		p.skipSemicolons()
		els = p.parseStatementsUntil(token.FIM_SE)
	}
	p.expect(token.FIM_SE)
	p.expect(token.SEMICOLON)
	return &ast.IfStmt{Token: tok, Cond: cond, Then: then, Else: els}
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	tok := p.cur
	p.expect(token.ENQUANTO)
	cond := p.parseExpression()
	p.expect(token.FACA)
	p.skipSemicolons()
	body := p.parseStatementsUntil(token.FIM_ENQUANTO)
	p.expect(token.FIM_ENQUANTO)
	p.expect(token.SEMICOLON)
	return &ast.WhileStmt{Token: tok, Cond: cond, Body: body}
}

// parseDoUntilStmt parses `faca ... ate cond ;`. Cond is stored exactly
// as written; the code generator negates it when it emits the C `while`
// guard, so the tree carries the guard in source form rather than a
// rewritten one.
func (p *Parser) parseDoUntilStmt() *ast.DoUntilStmt {
	tok := p.cur
	p.expect(token.FACA)
	p.skipSemicolons()
	body := p.parseStatementsUntil(token.ATE)
	p.expect(token.ATE)
	cond := p.parseExpression()
	p.expect(token.SEMICOLON)
	return &ast.DoUntilStmt{Token: tok, Body: body, Cond: cond}
}

func (p *Parser) parseForStmt() *ast.ForStmt {
	tok := p.cur
	p.expect(token.PARA)
	v := p.parseIdentifier()
	p.expect(token.DE)
	from := p.parseExpression()
	p.expect(token.ATE)
	to := p.parseExpression()
	p.expect(token.FACA)
	p.skipSemicolons()
	body := p.parseStatementsUntil(token.FIM_PARA)
	p.expect(token.FIM_PARA)
	p.expect(token.SEMICOLON)
	return &ast.ForStmt{Token: tok, Var: v, From: from, To: to, Body: body}
}

func (p *Parser) parseSwitchStmt() *ast.SwitchStmt {
	tok := p.cur
	p.expect(token.CASO)
	expr := p.parseExpression()
	p.expect(token.SEJA)
	p.skipSemicolons()
	stmt := &ast.SwitchStmt{Token: tok, Expr: expr}
	for p.curIs(token.INT) {
		stmt.Cases = append(stmt.Cases, p.parseCaseClause())
		p.skipSemicolons()
	}
	if p.curIs(token.SENAO) {
		p.next()
		p.skipSemicolons()
		stmt.Default = p.parseStatementsUntil(token.FIM_CASO)
	}
	p.expect(token.FIM_CASO)
	p.expect(token.SEMICOLON)
	return stmt
}

func (p *Parser) parseCaseClause() *ast.CaseClause {
	clause := &ast.CaseClause{}
	clause.Labels = append(clause.Labels, p.parseCaseLabel())
	for p.curIs(token.COMMA) {
		p.next()
		clause.Labels = append(clause.Labels, p.parseCaseLabel())
	}
	p.expect(token.COLON)
	p.skipSemicolons()
	clause.Body = p.parseStatementsUntil(token.INT, token.SENAO, token.FIM_CASO)
	return clause
}

func (p *Parser) parseCaseLabel() ast.CaseLabel {
	low := p.parseIntLiteralValue()
	high := low
	if p.curIs(token.DOTDOT) {
		p.next()
		high = p.parseIntLiteralValue()
	}
	return ast.CaseLabel{Low: low, High: high}
}

func (p *Parser) parseIntLiteralValue() int {
	tok := p.expect(token.INT)
	n, _ := strconv.Atoi(tok.Lexeme)
	return n
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	tok := p.cur
	p.expect(token.RETORNE)
	var value ast.Expression
	if !p.curIs(token.SEMICOLON) {
		value = p.parseExpression()
	}
	p.expect(token.SEMICOLON)
	return &ast.ReturnStmt{Token: tok, Value: value}
}

// parseAssignOrCallStmt disambiguates `target <- expr ;` from
// `nome ( args ) ;` by looking one token past the identifier.
func (p *Parser) parseAssignOrCallStmt() ast.Statement {
	if p.curIs(token.IDENT) && p.peekIs(token.LPAREN) {
		return p.parseCallStmt()
	}
	target := p.parseLvalue()
	tok := p.cur
	p.expect(token.ASSIGN)
	value := p.parseExpression()
	p.expect(token.SEMICOLON)
	return &ast.AssignStmt{Token: tok, Target: target, Value: value}
}

func (p *Parser) parseCallStmt() *ast.CallStmt {
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
	p.expect(token.SEMICOLON)
	return &ast.CallStmt{Token: tok, Name: name, Args: args}
}

// parseLvalue parses an assignment or read target: `^x`, `id`, `id.f`, or
// `id[e]`, with field/index access chaining.
func (p *Parser) parseLvalue() ast.Expression {
	if p.curIs(token.CARET) {
		tok := p.cur
		p.next()
		return &ast.PointerDeref{Token: tok, Operand: p.parseLvalue()}
	}
	var expr ast.Expression = p.parseIdentifier()
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
