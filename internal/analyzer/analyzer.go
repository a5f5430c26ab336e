// Package analyzer implements the semantic analysis pass: declaration
// binding, scope management, and bottom-up expression typing. It walks
// the tree via ast.Visitor (double dispatch), recursing into each node's
// children by explicit calls rather than relying on an automatic
// all-children walk — the same node is therefore visited exactly once per
// pass, with no suppression flag required to avoid double processing.
package analyzer

import (
	"github.com/lacc-lang/lacc/internal/ast"
	"github.com/lacc-lang/lacc/internal/config"
	"github.com/lacc-lang/lacc/internal/diagnostics"
	"github.com/lacc-lang/lacc/internal/latype"
	"github.com/lacc-lang/lacc/internal/symbols"
)

// Analyzer performs a single top-to-bottom pass over a *ast.Program.
type Analyzer struct {
	Symbols     *symbols.Table
	Diagnostics *diagnostics.Collector

	// Types maps a user type name to its resolved Type, populated as type
	// declarations are processed. Record lookups during field-access
	// checking go through here.
	Types map[string]latype.Type

	// currentReturn is the enclosing function's return type; nil inside a
	// procedure or at top level. `retorne` expressions are typed but not
	// checked against it.
	currentReturn latype.Type

	// lastType is the result slot VisitXxx methods for expression nodes
	// write into; typeOf reads it immediately after calling Accept, which
	// is safe because the walk is single-threaded and strictly
	// depth-first.
	lastType latype.Type
}

// New creates an Analyzer with fresh symbol and type tables.
func New(col *diagnostics.Collector) *Analyzer {
	return &Analyzer{
		Symbols:     symbols.New(),
		Diagnostics: col,
		Types:       make(map[string]latype.Type),
	}
}

// Analyze runs the full semantic pass over prog.
func (a *Analyzer) Analyze(prog *ast.Program) {
	prog.Accept(a)
}

func (a *Analyzer) VisitProgram(n *ast.Program) {
	for _, t := range n.Types {
		t.Accept(a)
	}
	for _, c := range n.Constants {
		c.Accept(a)
	}
	for _, v := range n.GlobalVars {
		v.Accept(a)
	}
	for _, f := range n.Functions {
		f.Accept(a)
	}
	for _, pr := range n.Procedures {
		pr.Accept(a)
	}
	for _, stmt := range n.Body {
		stmt.Accept(a)
	}
}

// typeOf computes the type of an expression by visiting it and reading the
// accumulator the Visit method left behind.
func (a *Analyzer) typeOf(e ast.Expression) latype.Type {
	if e == nil {
		return latype.Unknown
	}
	e.Accept(a)
	return a.lastType
}

// resolveTypeRef turns a parsed ast.TypeRef into a latype.Type, registering
// an anonymous record under its position-derived name as a side effect.
func (a *Analyzer) resolveTypeRef(ref ast.TypeRef) latype.Type {
	switch t := ref.(type) {
	case *ast.PrimitiveType:
		switch t.Name {
		case config.Inteiro:
			return latype.Inteiro
		case config.Real:
			return latype.RealT
		case config.Literal:
			return latype.Literal
		case config.Logico:
			return latype.Logico
		}
		return latype.Unknown
	case *ast.NamedType:
		typ, ok := a.Types[t.Name]
		if !ok {
			a.Diagnostics.Add(diagnostics.UndeclaredType, t.Token, t.Name)
			return latype.Unknown
		}
		return typ
	case *ast.PointerType:
		return &latype.Pointer{Elem: a.resolveTypeRef(t.Elem)}
	case *ast.RecordType:
		return a.synthesizeRecord(t, latype.RecordName(t.Token.Line, t.Token.Column))
	}
	return latype.Unknown
}

// synthesizeRecord builds a Record type from a parsed record body, used
// both for named `tipo` declarations and for anonymous inline records.
func (a *Analyzer) synthesizeRecord(body *ast.RecordType, name string) *latype.Record {
	rec := &latype.Record{Name: name}
	for _, f := range body.Fields {
		ft := a.resolveTypeRef(f.Type)
		for _, id := range f.Names {
			rec.Fields = append(rec.Fields, latype.Field{Name: id.Name, Type: ft})
		}
	}
	return rec
}

func (a *Analyzer) VisitTypeDecl(n *ast.TypeDecl) {
	if _, exists := a.Types[n.Name.Name]; exists {
		a.Diagnostics.Add(diagnostics.DuplicateType, n.Name.Token, n.Name.Name)
		return
	}
	if rec, ok := n.Body.(*ast.RecordType); ok {
		a.Types[n.Name.Name] = a.synthesizeRecord(rec, n.Name.Name)
		return
	}
	a.Types[n.Name.Name] = a.resolveTypeRef(n.Body)
}

func (a *Analyzer) VisitConstDecl(n *ast.ConstDecl) {
	typ := a.typeOf(n.Value)
	sym := symbols.Symbol{Name: n.Name.Name, Kind: symbols.KindConst, Type: typ}
	if !a.Symbols.Define(sym) {
		a.Diagnostics.Add(diagnostics.DuplicateIdentifier, n.Name.Token, n.Name.Name)
	}
}

func (a *Analyzer) VisitVarDecl(n *ast.VarDecl) {
	var typ latype.Type
	if rec, ok := n.Type.(*ast.RecordType); ok {
		typ = a.synthesizeRecord(rec, latype.RecordName(rec.Token.Line, rec.Token.Column))
	} else {
		typ = a.resolveTypeRef(n.Type)
	}
	if n.ArraySize != nil {
		a.typeOf(n.ArraySize)
	}
	for _, name := range n.Names {
		sym := symbols.Symbol{Name: name.Name, Kind: symbols.KindVar, Type: typ}
		if !a.Symbols.Define(sym) {
			a.Diagnostics.Add(diagnostics.DuplicateIdentifier, name.Token, name.Name)
		}
	}
}

func paramTypes(a *Analyzer, params []*ast.Param) []latype.Type {
	types := make([]latype.Type, len(params))
	for i, p := range params {
		types[i] = a.resolveTypeRef(p.Type)
	}
	return types
}

func (a *Analyzer) VisitFunctionDecl(n *ast.FunctionDecl) {
	ret := a.resolveTypeRef(n.ReturnType)
	ptypes := paramTypes(a, n.Params)
	sym := symbols.Symbol{Name: n.Name.Name, Kind: symbols.KindFunction, Type: ret, Params: ptypes, Returns: ret}
	if !a.Symbols.DefineGlobal(sym) {
		a.Diagnostics.Add(diagnostics.DuplicateIdentifier, n.Name.Token, n.Name.Name)
	}

	a.Symbols.EnterLocal()
	prevReturn := a.currentReturn
	a.currentReturn = ret
	for i, p := range n.Params {
		a.Symbols.Define(symbols.Symbol{Name: p.Name.Name, Kind: symbols.KindVar, Type: ptypes[i]})
	}
	for _, local := range n.Locals {
		local.Accept(a)
	}
	for _, stmt := range n.Body {
		stmt.Accept(a)
	}
	a.currentReturn = prevReturn
	a.Symbols.ExitLocal()
}

func (a *Analyzer) VisitProcedureDecl(n *ast.ProcedureDecl) {
	ptypes := paramTypes(a, n.Params)
	sym := symbols.Symbol{Name: n.Name.Name, Kind: symbols.KindProcedure, Params: ptypes}
	if !a.Symbols.DefineGlobal(sym) {
		a.Diagnostics.Add(diagnostics.DuplicateIdentifier, n.Name.Token, n.Name.Name)
	}

	a.Symbols.EnterLocal()
	prevReturn := a.currentReturn
	a.currentReturn = nil
	for i, p := range n.Params {
		a.Symbols.Define(symbols.Symbol{Name: p.Name.Name, Kind: symbols.KindVar, Type: ptypes[i]})
	}
	for _, local := range n.Locals {
		local.Accept(a)
	}
	for _, stmt := range n.Body {
		stmt.Accept(a)
	}
	a.currentReturn = prevReturn
	a.Symbols.ExitLocal()
}
