package analyzer

import (
	"github.com/lacc-lang/lacc/internal/ast"
	"github.com/lacc-lang/lacc/internal/diagnostics"
	"github.com/lacc-lang/lacc/internal/latype"
)

func (a *Analyzer) VisitIdentifier(n *ast.Identifier) {
	sym, ok := a.Symbols.Resolve(n.Name)
	if !ok {
		a.Diagnostics.Add(diagnostics.UndeclaredIdentifier, n.Token, n.Name)
		a.lastType = latype.Unknown
		return
	}
	a.lastType = sym.Type
}

func (a *Analyzer) VisitIntLiteral(n *ast.IntLiteral)       { a.lastType = latype.Inteiro }
func (a *Analyzer) VisitRealLiteral(n *ast.RealLiteral)     { a.lastType = latype.RealT }
func (a *Analyzer) VisitStringLiteral(n *ast.StringLiteral) { a.lastType = latype.Literal }
func (a *Analyzer) VisitBoolLiteral(n *ast.BoolLiteral)     { a.lastType = latype.Logico }

func (a *Analyzer) VisitUnaryExpr(n *ast.UnaryExpr) {
	operand := a.typeOf(n.Right)
	if n.Op == "nao" {
		if !latype.IsUnknown(operand) && !operand.Equals(latype.Logico) {
			a.lastType = latype.Unknown
			return
		}
		a.lastType = latype.Logico
		return
	}
	a.lastType = operand
}

func (a *Analyzer) VisitBinaryExpr(n *ast.BinaryExpr) {
	left := a.typeOf(n.Left)
	right := a.typeOf(n.Right)
	if latype.IsUnknown(left) || latype.IsUnknown(right) {
		a.lastType = latype.Unknown
		return
	}

	switch n.Op {
	case "e", "ou":
		if left.Equals(latype.Logico) && right.Equals(latype.Logico) {
			a.lastType = latype.Logico
			return
		}
		a.lastType = latype.Unknown
	case "+", "-", "*", "/":
		a.lastType = arithmeticResult(left, right)
	case "<", "<=", ">", ">=", "=", "<>":
		if isNumeric(left) && isNumeric(right) {
			a.lastType = latype.Logico
			return
		}
		if left.Equals(right) {
			a.lastType = latype.Logico
			return
		}
		a.lastType = latype.Unknown
	default:
		a.lastType = latype.Unknown
	}
}

func isNumeric(t latype.Type) bool {
	return t.Equals(latype.Inteiro) || t.Equals(latype.RealT)
}

// arithmeticResult implements the arithmetic typing rule: real if
// either operand is real, inteiro if both are inteiro, literal if both are
// literal (reserved for string concatenation), else unknown.
func arithmeticResult(left, right latype.Type) latype.Type {
	if left.Equals(latype.Literal) && right.Equals(latype.Literal) {
		return latype.Literal
	}
	if !isNumeric(left) || !isNumeric(right) {
		return latype.Unknown
	}
	if left.Equals(latype.RealT) || right.Equals(latype.RealT) {
		return latype.RealT
	}
	return latype.Inteiro
}

func (a *Analyzer) VisitParenExpr(n *ast.ParenExpr) {
	a.lastType = a.typeOf(n.Inner)
}

func (a *Analyzer) VisitFieldAccess(n *ast.FieldAccess) {
	a.lastType = a.resolveTarget(n)
}

func (a *Analyzer) VisitArrayAccess(n *ast.ArrayAccess) {
	a.lastType = a.resolveTarget(n)
}

func (a *Analyzer) VisitPointerDeref(n *ast.PointerDeref) {
	a.lastType = a.resolveTarget(n)
}

func (a *Analyzer) VisitFuncCallExpr(n *ast.FuncCallExpr) {
	sym, ok := a.Symbols.ResolveGlobal(n.Name.Name)
	if !ok {
		a.Diagnostics.Add(diagnostics.UndeclaredIdentifier, n.Name.Token, n.Name.Name)
		for _, arg := range n.Args {
			a.typeOf(arg)
		}
		a.lastType = latype.Unknown
		return
	}
	if len(sym.Params) != len(n.Args) {
		a.Diagnostics.Add(diagnostics.ArityMismatch, n.Name.Token, n.Name.Name)
	}
	for _, arg := range n.Args {
		a.typeOf(arg)
	}
	a.lastType = sym.Returns
}
