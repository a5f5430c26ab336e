// Package codegen translates an analyzed *ast.Program into a single C
// translation unit. It is invoked only once the analyzer has produced no
// diagnostics. Like the analyzer, it recurses into control-flow bodies by
// hand, so each statement is emitted exactly once in depth-first source
// order. The "am I inside a function/procedure" state is a Target enum
// selected once per subroutine rather than a pair of booleans flipped and
// restored around every nested call.
package codegen

import (
	"fmt"
	"strings"

	"github.com/lacc-lang/lacc/internal/ast"
	"github.com/lacc-lang/lacc/internal/config"
	"github.com/lacc-lang/lacc/internal/latype"
	"github.com/lacc-lang/lacc/internal/symbols"
)

// Target names which segmented buffer Generator.emit appends to.
type Target int

const (
	TargetMain Target = iota
	TargetFunction
	TargetProcedure
)

// Generator accumulates the translation unit as a set of segmented
// buffers, concatenated into one file only at the end (assemble), mirroring
// the reference generator's defines/typedefs/funcoes/procedimentos/codigo
// split.
type Generator struct {
	Symbols *symbols.Table
	Types   map[string]latype.Type

	defines    []string
	typedefs   []string
	functions  []string // one element per function, already joined
	procedures []string // one element per procedure, already joined
	mainLocals []string
	mainBody   []string

	// scratch holds the current subroutine's lines while target is
	// TargetFunction/TargetProcedure; the finished body is joined into a
	// single functions/procedures element so assemble can put exactly one
	// blank line between subroutines.
	scratch []string

	constants   map[string]string // name -> literal C text, for substitution
	emittedRecs map[string]bool   // anonymous record typedefs already emitted
	target      Target
	indent      int
}

// New creates a Generator sharing the symbol and type tables the analyzer
// populated for the same program.
func New(syms *symbols.Table, types map[string]latype.Type) *Generator {
	return &Generator{
		Symbols:     syms,
		Types:       types,
		constants:   make(map[string]string),
		emittedRecs: make(map[string]bool),
	}
}

func (g *Generator) buffer() *[]string {
	switch g.target {
	case TargetFunction, TargetProcedure:
		return &g.scratch
	default:
		return &g.mainBody
	}
}

func (g *Generator) emit(line string) {
	buf := g.buffer()
	*buf = append(*buf, strings.Repeat("\t", g.indent)+line)
}

func (g *Generator) emitLocal(line string) {
	g.mainLocals = append(g.mainLocals, "\t"+line)
}

// Generate runs code generation over prog and returns the assembled C
// source text.
func (g *Generator) Generate(prog *ast.Program) string {
	for _, c := range prog.Constants {
		g.genConstDecl(c)
	}
	for _, t := range prog.Types {
		g.genTypeDecl(t)
	}
	for _, f := range prog.Functions {
		g.genFunctionDecl(f)
	}
	for _, p := range prog.Procedures {
		g.genProcedureDecl(p)
	}

	g.target = TargetMain
	for _, v := range prog.GlobalVars {
		g.emitLocal(g.declLine(v))
	}
	for _, stmt := range prog.Body {
		g.genStatement(stmt)
	}

	return g.assemble()
}

func (g *Generator) assemble() string {
	var out []string
	out = append(out, "#include <stdio.h>", "#include <stdlib.h>", "#include <string.h>", "")

	if len(g.defines) > 0 {
		out = append(out, g.defines...)
		out = append(out, "")
	}
	if len(g.typedefs) > 0 {
		for _, td := range g.typedefs {
			out = append(out, td, "")
		}
	}
	for _, fn := range g.functions {
		out = append(out, fn, "")
	}
	for _, pr := range g.procedures {
		out = append(out, pr, "")
	}

	out = append(out, "int main() {")
	out = append(out, g.mainLocals...)
	for _, line := range g.mainBody {
		out = append(out, "\t"+line)
	}
	out = append(out, "\treturn 0;", "}")

	return strings.Join(out, "\n") + "\n"
}

func (g *Generator) genConstDecl(c *ast.ConstDecl) {
	lit := g.literalText(c.Value)
	g.constants[c.Name.Name] = lit
	g.defines = append(g.defines, fmt.Sprintf("#define %s %s", c.Name.Name, lit))
}

// literalText renders a constant's compile-time value for #define
// substitution.
func (g *Generator) literalText(e ast.Expression) string {
	switch v := e.(type) {
	case *ast.IntLiteral:
		return v.Value
	case *ast.RealLiteral:
		return v.Value
	case *ast.StringLiteral:
		return fmt.Sprintf("%q", v.Value)
	case *ast.BoolLiteral:
		if v.Value {
			return "1"
		}
		return "0"
	default:
		return g.genExpr(e)
	}
}

func (g *Generator) genTypeDecl(t *ast.TypeDecl) {
	if rec, ok := t.Body.(*ast.RecordType); ok {
		g.typedefs = append(g.typedefs, g.recordTypedef(t.Name.Name, rec))
		return
	}
	ctype, isString := g.cVarType(t.Body, false)
	if isString {
		g.typedefs = append(g.typedefs, fmt.Sprintf("typedef %s %s[%d];", ctype, t.Name.Name, config.StringBufferSize))
		return
	}
	g.typedefs = append(g.typedefs, fmt.Sprintf("typedef %s %s;", ctype, t.Name.Name))
}

// ensureRecordTypedef emits the typedef for an anonymous inline record the
// first time its position-derived name is needed, so two variables sharing
// one inline declarator share one struct.
func (g *Generator) ensureRecordTypedef(name string, rec *ast.RecordType) {
	if g.emittedRecs[name] {
		return
	}
	g.emittedRecs[name] = true
	g.typedefs = append(g.typedefs, g.recordTypedef(name, rec))
}

func (g *Generator) recordTypedef(name string, rec *ast.RecordType) string {
	var b strings.Builder
	fmt.Fprintf(&b, "typedef struct {\n")
	for _, f := range rec.Fields {
		ctype, isString := cFieldType(f.Type)
		for _, id := range f.Names {
			if isString {
				fmt.Fprintf(&b, "\t%s %s[%d];\n", ctype, id.Name, config.StringBufferSize)
			} else {
				fmt.Fprintf(&b, "\t%s %s;\n", ctype, id.Name)
			}
		}
	}
	fmt.Fprintf(&b, "} %s;", name)
	return b.String()
}

func cFieldType(ref ast.TypeRef) (ctype string, isString bool) {
	switch t := ref.(type) {
	case *ast.PrimitiveType:
		return config.CType(t.Name, false)
	case *ast.NamedType:
		return t.Name, false
	}
	return "int", false
}

