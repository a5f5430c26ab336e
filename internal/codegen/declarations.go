package codegen

import (
	"fmt"
	"strings"

	"github.com/lacc-lang/lacc/internal/ast"
	"github.com/lacc-lang/lacc/internal/config"
	"github.com/lacc-lang/lacc/internal/latype"
	"github.com/lacc-lang/lacc/internal/symbols"
)

// cVarType renders a declared C type name for a variable or parameter.
// isString distinguishes `literal`'s fixed-size
// buffer form so callers can append the `[N]` declarator correctly. An
// anonymous inline record emits its typedef as a side effect and is named
// by its position-derived synthetic name.
func (g *Generator) cVarType(ref ast.TypeRef, isParam bool) (ctype string, isString bool) {
	switch t := ref.(type) {
	case *ast.PrimitiveType:
		return config.CType(t.Name, isParam)
	case *ast.NamedType:
		return t.Name, false
	case *ast.PointerType:
		base, baseIsString := g.cVarType(t.Elem, isParam)
		if baseIsString {
			if isParam {
				return "char**", false
			}
			return "char*", false
		}
		return base + "*", false
	case *ast.RecordType:
		name := latype.RecordName(t.Token.Line, t.Token.Column)
		g.ensureRecordTypedef(name, t)
		return name, false
	}
	return "int", false
}

// declLine renders one variable declaration in C, covering the `literal`
// buffer form, fixed-size arrays, and inline records.
func (g *Generator) declLine(v *ast.VarDecl) string {
	ctype, isString := g.cVarType(v.Type, false)
	names := make([]string, len(v.Names))
	for i, n := range v.Names {
		switch {
		case isString:
			names[i] = fmt.Sprintf("%s[%d]", n.Name, config.StringBufferSize)
		case v.ArraySize != nil:
			names[i] = fmt.Sprintf("%s[%s]", n.Name, g.genExpr(v.ArraySize))
		default:
			names[i] = n.Name
		}
	}
	return ctype + " " + strings.Join(names, ", ") + ";"
}

func (g *Generator) cParam(p *ast.Param) string {
	ctype, _ := g.cVarType(p.Type, true)
	return fmt.Sprintf("%s %s", ctype, p.Name.Name)
}

// resolveType maps a parsed type reference back to the latype the analyzer
// would have produced for it, so subroutine locals and parameters can be
// bound into the symbol table for format selection during body emission.
func (g *Generator) resolveType(ref ast.TypeRef) latype.Type {
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
	case *ast.NamedType:
		if typ, ok := g.Types[t.Name]; ok {
			return typ
		}
	case *ast.PointerType:
		return &latype.Pointer{Elem: g.resolveType(t.Elem)}
	}
	return latype.Unknown
}

// enterSubroutine opens a local scope holding params and locals, mirroring
// the scope the analyzer used when it checked the same body.
func (g *Generator) enterSubroutine(params []*ast.Param, locals []*ast.VarDecl) {
	g.Symbols.EnterLocal()
	for _, p := range params {
		g.Symbols.Define(symbols.Symbol{Name: p.Name.Name, Kind: symbols.KindVar, Type: g.resolveType(p.Type)})
	}
	for _, l := range locals {
		typ := g.resolveType(l.Type)
		for _, n := range l.Names {
			g.Symbols.Define(symbols.Symbol{Name: n.Name, Kind: symbols.KindVar, Type: typ})
		}
	}
}

func (g *Generator) genFunctionDecl(f *ast.FunctionDecl) {
	prevTarget := g.target
	g.target = TargetFunction
	g.enterSubroutine(f.Params, f.Locals)

	retType, _ := g.cVarType(f.ReturnType, false)
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = g.cParam(p)
	}
	g.emit(fmt.Sprintf("%s %s(%s) {", retType, f.Name.Name, strings.Join(params, ", ")))
	g.indent++
	for _, local := range f.Locals {
		g.emit(g.declLine(local))
	}
	for _, stmt := range f.Body {
		g.genStatement(stmt)
	}
	g.indent--
	g.emit("}")

	g.functions = append(g.functions, strings.Join(g.scratch, "\n"))
	g.scratch = nil
	g.Symbols.ExitLocal()
	g.target = prevTarget
}

func (g *Generator) genProcedureDecl(p *ast.ProcedureDecl) {
	prevTarget := g.target
	g.target = TargetProcedure
	g.enterSubroutine(p.Params, p.Locals)

	params := make([]string, len(p.Params))
	for i, param := range p.Params {
		params[i] = g.cParam(param)
	}
	g.emit(fmt.Sprintf("void %s(%s) {", p.Name.Name, strings.Join(params, ", ")))
	g.indent++
	for _, local := range p.Locals {
		g.emit(g.declLine(local))
	}
	for _, stmt := range p.Body {
		g.genStatement(stmt)
	}
	g.indent--
	g.emit("}")

	g.procedures = append(g.procedures, strings.Join(g.scratch, "\n"))
	g.scratch = nil
	g.Symbols.ExitLocal()
	g.target = prevTarget
}
