package codegen

import (
	"fmt"

	"github.com/lacc-lang/lacc/internal/ast"
	"github.com/lacc-lang/lacc/internal/config"
)

func (g *Generator) genStatement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.AssignStmt:
		g.genAssign(s)
	case *ast.ReadStmt:
		g.genRead(s)
	case *ast.WriteStmt:
		g.genWrite(s)
	case *ast.IfStmt:
		g.genIf(s)
	case *ast.WhileStmt:
		g.genWhile(s)
	case *ast.DoUntilStmt:
		g.genDoUntil(s)
	case *ast.ForStmt:
		g.genFor(s)
	case *ast.SwitchStmt:
		g.genSwitch(s)
	case *ast.CallStmt:
		g.genCall(s)
	case *ast.ReturnStmt:
		g.genReturn(s)
	}
}

// isStringFieldLiteralAssign reports whether a string literal is assigned
// to a field access target that names a `literal` field (by the field-name
// heuristic), the only case where assignment uses strcpy instead of `=`.
func (g *Generator) isStringFieldLiteralAssign(target ast.Expression, value ast.Expression) bool {
	fa, ok := target.(*ast.FieldAccess)
	if !ok {
		return false
	}
	_, isStringLit := value.(*ast.StringLiteral)
	if !isStringLit {
		return false
	}
	return fieldLooksLikeString(fa.Field.Name)
}

func (g *Generator) genAssign(s *ast.AssignStmt) {
	target := g.genExpr(s.Target)
	if g.isStringFieldLiteralAssign(s.Target, s.Value) {
		g.emit(fmt.Sprintf("strcpy(%s, %s);", target, g.genExpr(s.Value)))
		return
	}
	if deref, ok := s.Target.(*ast.PointerDeref); ok {
		g.emit(fmt.Sprintf("*%s = %s;", g.genExpr(deref.Operand), g.genExpr(s.Value)))
		return
	}
	g.emit(fmt.Sprintf("%s = %s;", target, g.genExpr(s.Value)))
}

func (g *Generator) genRead(s *ast.ReadStmt) {
	for _, target := range s.Targets {
		if g.isStringTarget(target) {
			name := g.genExpr(target)
			g.emit(fmt.Sprintf("fgets(%s, %d, stdin);", name, config.StringBufferSize))
			g.emit(fmt.Sprintf("%s[strcspn(%s, \"\\n\")] = '\\0';", name, name))
			continue
		}
		format := g.formatFor(target)
		g.emit(fmt.Sprintf("scanf(\"%s\", &%s);", format, g.genExpr(target)))
	}
}

// genWrite builds one printf per escreva: the format string concatenates
// each value's conversion and every value, string literals included,
// becomes an argument. Splicing a literal's text into the format itself
// would let a `%` or `"` in the literal corrupt the generated C.
func (g *Generator) genWrite(s *ast.WriteStmt) {
	var format string
	var args []string
	for _, v := range s.Values {
		format += g.formatFor(v)
		args = append(args, g.genExpr(v))
	}
	line := fmt.Sprintf("printf(\"%s\"", format)
	for _, a := range args {
		line += ", " + a
	}
	line += ");"
	g.emit(line)
}

func (g *Generator) genIf(s *ast.IfStmt) {
	g.emit(fmt.Sprintf("if (%s) {", g.genExpr(s.Cond)))
	g.indent++
	for _, stmt := range s.Then {
		g.genStatement(stmt)
	}
	g.indent--
	if len(s.Else) > 0 {
		g.emit("} else {")
		g.indent++
		for _, stmt := range s.Else {
			g.genStatement(stmt)
		}
		g.indent--
	}
	g.emit("}")
}

func (g *Generator) genWhile(s *ast.WhileStmt) {
	g.emit(fmt.Sprintf("while (%s) {", g.genExpr(s.Cond)))
	g.indent++
	for _, stmt := range s.Body {
		g.genStatement(stmt)
	}
	g.indent--
	g.emit("}")
}

// genDoUntil emits `do { … } while (!(cond));`: LA's `ate` guard is the
// stop condition, so the C `while` keeps looping on its negation.
func (g *Generator) genDoUntil(s *ast.DoUntilStmt) {
	g.emit("do {")
	g.indent++
	for _, stmt := range s.Body {
		g.genStatement(stmt)
	}
	g.indent--
	g.emit(fmt.Sprintf("} while (!(%s));", g.genExpr(s.Cond)))
}

func (g *Generator) genFor(s *ast.ForStmt) {
	v := s.Var.Name
	g.emit(fmt.Sprintf("for (%s = %s; %s <= %s; %s++) {", v, g.genExpr(s.From), v, g.genExpr(s.To), v))
	g.indent++
	for _, stmt := range s.Body {
		g.genStatement(stmt)
	}
	g.indent--
	g.emit("}")
}

func (g *Generator) genSwitch(s *ast.SwitchStmt) {
	g.emit(fmt.Sprintf("switch (%s) {", g.genExpr(s.Expr)))
	g.indent++
	for _, c := range s.Cases {
		for _, lbl := range c.Labels {
			for n := lbl.Low; n <= lbl.High; n++ {
				g.emit(fmt.Sprintf("case %d:", n))
			}
		}
		g.indent++
		for _, stmt := range c.Body {
			g.genStatement(stmt)
		}
		g.emit("break;")
		g.indent--
	}
	if len(s.Default) > 0 {
		g.emit("default:")
		g.indent++
		for _, stmt := range s.Default {
			g.genStatement(stmt)
		}
		g.emit("break;")
		g.indent--
	}
	g.indent--
	g.emit("}")
}

func (g *Generator) genCall(s *ast.CallStmt) {
	g.emit(fmt.Sprintf("%s(%s);", s.Name.Name, g.genArgs(s.Args)))
}

func (g *Generator) genReturn(s *ast.ReturnStmt) {
	if s.Value == nil {
		g.emit("return;")
		return
	}
	g.emit(fmt.Sprintf("return %s;", g.genExpr(s.Value)))
}

func (g *Generator) genArgs(args []ast.Expression) string {
	out := ""
	for i, a := range args {
		if i > 0 {
			out += ", "
		}
		out += g.genExpr(a)
	}
	return out
}
