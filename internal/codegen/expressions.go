package codegen

import (
	"fmt"
	"strings"

	"github.com/lacc-lang/lacc/internal/ast"
	"github.com/lacc-lang/lacc/internal/config"
)

// genExpr renders an expression as C source text via direct operator-node
// translation, not textual substitution over the original source slice —
// each node already carries its own operator, so there is nothing to
// regex out of a reconstructed string.
func (g *Generator) genExpr(e ast.Expression) string {
	switch n := e.(type) {
	case *ast.Identifier:
		if lit, ok := g.constants[n.Name]; ok {
			return lit
		}
		return n.Name
	case *ast.IntLiteral:
		return n.Value
	case *ast.RealLiteral:
		return n.Value
	case *ast.StringLiteral:
		return fmt.Sprintf("%q", n.Value)
	case *ast.BoolLiteral:
		if n.Value {
			return "1"
		}
		return "0"
	case *ast.UnaryExpr:
		if n.Op == "nao" {
			return "!" + g.genExpr(n.Right)
		}
		return "-" + g.genExpr(n.Right)
	case *ast.BinaryExpr:
		return g.genExpr(n.Left) + " " + cOperator(n.Op) + " " + g.genExpr(n.Right)
	case *ast.ParenExpr:
		return "(" + g.genExpr(n.Inner) + ")"
	case *ast.FieldAccess:
		return g.genExpr(n.Record) + "." + n.Field.Name
	case *ast.ArrayAccess:
		return g.genExpr(n.Array) + "[" + g.genExpr(n.Index) + "]"
	case *ast.PointerDeref:
		return "*" + g.genExpr(n.Operand)
	case *ast.FuncCallExpr:
		return n.Name.Name + "(" + g.genArgs(n.Args) + ")"
	default:
		return ""
	}
}

func cOperator(op string) string {
	switch op {
	case "e":
		return "&&"
	case "ou":
		return "||"
	case "=":
		return "=="
	case "<>":
		return "!="
	default:
		return op
	}
}

// fieldLooksLikeString and fieldLooksLikeInteger implement the
// field-name heuristic (config.StringFieldSubstrings/IntegerFieldSubstrings)
// for choosing a printf/scanf format: it consults the field's name rather
// than its declared type, which is a known source of wrong output (e.g. a
// `real` field named "valor" prints as `%d`) preserved here for behavioral
// parity rather than fixed.
func fieldLooksLikeString(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range config.StringFieldSubstrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

func fieldLooksLikeInteger(name string) bool {
	lower := strings.ToLower(name)
	for _, s := range config.IntegerFieldSubstrings {
		if strings.Contains(lower, s) {
			return true
		}
	}
	return false
}

// isStringTarget reports whether a read target is a `literal`-typed
// variable (needing fgets) rather than a scanf-formatted scalar. Field
// accesses use the same name heuristic formatFor relies on elsewhere.
func (g *Generator) isStringTarget(target ast.Expression) bool {
	switch t := target.(type) {
	case *ast.Identifier:
		sym, ok := g.Symbols.Resolve(t.Name)
		if !ok {
			return false
		}
		return sym.Type != nil && sym.Type.String() == config.Literal
	case *ast.FieldAccess:
		return fieldLooksLikeString(t.Field.Name)
	default:
		return false
	}
}

// formatFor selects the printf/scanf conversion for an expression:
// identifiers consult the symbol table's declared type, field
// accesses fall back to the field-name heuristic, and composite
// arithmetic expressions scan their identifiers for any `real` operand.
func (g *Generator) formatFor(e ast.Expression) string {
	switch n := e.(type) {
	case *ast.Identifier:
		if sym, ok := g.Symbols.Resolve(n.Name); ok && sym.Type != nil {
			return config.FormatFor(sym.Type.String())
		}
		return "%d"
	case *ast.FieldAccess:
		if fieldLooksLikeString(n.Field.Name) {
			return "%s"
		}
		if fieldLooksLikeInteger(n.Field.Name) {
			return "%d"
		}
		return "%s"
	case *ast.StringLiteral:
		return "%s"
	case *ast.RealLiteral:
		return "%f"
	case *ast.IntLiteral, *ast.BoolLiteral:
		return "%d"
	case *ast.ParenExpr:
		return g.formatFor(n.Inner)
	case *ast.BinaryExpr, *ast.UnaryExpr:
		if g.expressionHasRealOperand(e) {
			return "%f"
		}
		return "%d"
	default:
		return "%d"
	}
}

// expressionHasRealOperand scans an arithmetic expression's leaf
// identifiers for any that resolve to a `real` type.
func (g *Generator) expressionHasRealOperand(e ast.Expression) bool {
	switch n := e.(type) {
	case *ast.Identifier:
		sym, ok := g.Symbols.Resolve(n.Name)
		return ok && sym.Type != nil && sym.Type.String() == config.Real
	case *ast.RealLiteral:
		return true
	case *ast.BinaryExpr:
		return g.expressionHasRealOperand(n.Left) || g.expressionHasRealOperand(n.Right)
	case *ast.UnaryExpr:
		return g.expressionHasRealOperand(n.Right)
	case *ast.ParenExpr:
		return g.expressionHasRealOperand(n.Inner)
	default:
		return false
	}
}
