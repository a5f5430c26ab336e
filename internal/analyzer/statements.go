package analyzer

import (
	"github.com/lacc-lang/lacc/internal/ast"
	"github.com/lacc-lang/lacc/internal/diagnostics"
	"github.com/lacc-lang/lacc/internal/latype"
	"github.com/lacc-lang/lacc/internal/symbols"
)

// resolveTarget types an assignment/read target: a bare
// identifier, a pointer dereference, a field access, or an array access.
// Each case reports its own diagnostic on failure and returns Unknown so
// the caller's own checks are suppressed rather than cascading.
func (a *Analyzer) resolveTarget(e ast.Expression) latype.Type {
	switch t := e.(type) {
	case *ast.Identifier:
		sym, ok := a.Symbols.Resolve(t.Name)
		if !ok {
			a.Diagnostics.Add(diagnostics.UndeclaredIdentifier, t.Token, t.Name)
			return latype.Unknown
		}
		return sym.Type
	case *ast.PointerDeref:
		inner := a.resolveTarget(t.Operand)
		if ptr, ok := inner.(*latype.Pointer); ok {
			return ptr.Elem
		}
		return inner
	case *ast.FieldAccess:
		recType := a.resolveTarget(t.Record)
		rec, ok := recType.(*latype.Record)
		if !ok {
			if !latype.IsUnknown(recType) {
				a.Diagnostics.Add(diagnostics.NotARecord, t.Field.Token, recordOperandName(t.Record))
			}
			return latype.Unknown
		}
		ft, ok := rec.FieldType(t.Field.Name)
		if !ok {
			a.Diagnostics.Add(diagnostics.MissingField, t.Field.Token, t.Field.Name, rec.Name)
			return latype.Unknown
		}
		return ft
	case *ast.ArrayAccess:
		arrType := a.resolveTarget(t.Array)
		idxType := a.typeOf(t.Index)
		if !latype.IsUnknown(idxType) && !idxType.Equals(latype.Inteiro) {
			a.Diagnostics.Add(diagnostics.NonIntegerIndex, t.Index.GetToken())
		}
		return arrType
	default:
		return a.typeOf(e)
	}
}

// recordOperandName renders the left operand of a field access for the
// "N nao e do tipo registro" diagnostic.
func recordOperandName(e ast.Expression) string {
	if id, ok := e.(*ast.Identifier); ok {
		return id.Name
	}
	return e.TokenLiteral()
}

func (a *Analyzer) VisitAssignStmt(n *ast.AssignStmt) {
	targetType := a.resolveTarget(n.Target)
	valueType := a.typeOf(n.Value)
	if !latype.AssignableTo(valueType, targetType) {
		a.Diagnostics.Add(diagnostics.IncompatibleAssignment, n.Target.GetToken(), targetName(n.Target))
	}
}

func targetName(e ast.Expression) string {
	switch t := e.(type) {
	case *ast.Identifier:
		return t.Name
	case *ast.PointerDeref:
		return targetName(t.Operand)
	case *ast.FieldAccess:
		return t.Field.Name
	case *ast.ArrayAccess:
		return targetName(t.Array)
	default:
		return e.TokenLiteral()
	}
}

func (a *Analyzer) VisitReadStmt(n *ast.ReadStmt) {
	for _, target := range n.Targets {
		a.resolveTarget(target)
	}
}

func (a *Analyzer) VisitWriteStmt(n *ast.WriteStmt) {
	for _, v := range n.Values {
		a.typeOf(v)
	}
}

func (a *Analyzer) VisitIfStmt(n *ast.IfStmt) {
	a.typeOf(n.Cond)
	for _, stmt := range n.Then {
		stmt.Accept(a)
	}
	for _, stmt := range n.Else {
		stmt.Accept(a)
	}
}

func (a *Analyzer) VisitWhileStmt(n *ast.WhileStmt) {
	a.typeOf(n.Cond)
	for _, stmt := range n.Body {
		stmt.Accept(a)
	}
}

func (a *Analyzer) VisitDoUntilStmt(n *ast.DoUntilStmt) {
	for _, stmt := range n.Body {
		stmt.Accept(a)
	}
	a.typeOf(n.Cond)
}

func (a *Analyzer) VisitForStmt(n *ast.ForStmt) {
	a.typeOf(n.From)
	a.typeOf(n.To)
	a.Symbols.Define(symbols.Symbol{Name: n.Var.Name, Kind: symbols.KindVar, Type: latype.Inteiro})
	for _, stmt := range n.Body {
		stmt.Accept(a)
	}
}

func (a *Analyzer) VisitSwitchStmt(n *ast.SwitchStmt) {
	a.typeOf(n.Expr)
	for _, c := range n.Cases {
		for _, stmt := range c.Body {
			stmt.Accept(a)
		}
	}
	for _, stmt := range n.Default {
		stmt.Accept(a)
	}
}

func (a *Analyzer) VisitCallStmt(n *ast.CallStmt) {
	sym, ok := a.Symbols.ResolveGlobal(n.Name.Name)
	if !ok {
		a.Diagnostics.Add(diagnostics.UndeclaredIdentifier, n.Name.Token, n.Name.Name)
		for _, arg := range n.Args {
			a.typeOf(arg)
		}
		return
	}
	if len(sym.Params) != len(n.Args) {
		a.Diagnostics.Add(diagnostics.ArityMismatch, n.Name.Token, n.Name.Name)
	}
	for _, arg := range n.Args {
		a.typeOf(arg)
	}
}

func (a *Analyzer) VisitReturnStmt(n *ast.ReturnStmt) {
	a.typeOf(n.Value)
}
