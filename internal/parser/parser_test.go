package parser_test

import (
	"testing"

	"github.com/lacc-lang/lacc/internal/ast"
	"github.com/lacc-lang/lacc/internal/diagnostics"
	"github.com/lacc-lang/lacc/internal/errlisten"
	"github.com/lacc-lang/lacc/internal/lexer"
	"github.com/lacc-lang/lacc/internal/parser"
)

func parseProgram(t *testing.T, src string) (*ast.Program, *diagnostics.Collector) {
	t.Helper()
	col := diagnostics.New()
	list := errlisten.New(col)
	l := lexer.New(src)
	p := parser.New(l, list)
	prog := p.ParseProgram()
	return prog, col
}

func TestParseSimpleProgram(t *testing.T) {
	src := `algoritmo "soma"
declare
x: inteiro;
y: inteiro;
inicio
leia(x, y);
escreva(x + y);
fim_algoritmo`

	prog, col := parseProgram(t, src)
	if !col.Empty() {
		t.Fatalf("expected no diagnostics, got %s", col.String())
	}
	if len(prog.GlobalVars) != 2 {
		t.Fatalf("expected 2 global var decls, got %d", len(prog.GlobalVars))
	}
	if len(prog.Body) != 2 {
		t.Fatalf("expected 2 body statements, got %d", len(prog.Body))
	}
	if _, ok := prog.Body[0].(*ast.ReadStmt); !ok {
		t.Fatalf("expected first statement to be a read, got %T", prog.Body[0])
	}
	if _, ok := prog.Body[1].(*ast.WriteStmt); !ok {
		t.Fatalf("expected second statement to be a write, got %T", prog.Body[1])
	}
}

func TestParseRecordAndFieldAccess(t *testing.T) {
	src := `algoritmo "registro"
declare
tipo Pessoa: registro
nome: literal;
idade: inteiro;
fim_registro;
p: Pessoa;
inicio
p.idade <- 10;
escreva(p.nome);
fim_algoritmo`

	prog, col := parseProgram(t, src)
	if !col.Empty() {
		t.Fatalf("expected no diagnostics, got %s", col.String())
	}
	if len(prog.Types) != 1 {
		t.Fatalf("expected 1 type decl, got %d", len(prog.Types))
	}
	assign, ok := prog.Body[0].(*ast.AssignStmt)
	if !ok {
		t.Fatalf("expected assignment, got %T", prog.Body[0])
	}
	if _, ok := assign.Target.(*ast.FieldAccess); !ok {
		t.Fatalf("expected field access target, got %T", assign.Target)
	}
}

func TestParseControlFlow(t *testing.T) {
	src := `algoritmo "ctrl"
declare
x: inteiro;
inicio
se x > 0 entao
escreva(x);
senao
escreva(0);
fim_se;
enquanto x > 0 faca
x <- x - 1;
fim_enquanto;
para i de 1 ate 10 faca
escreva(i);
fim_para;
faca
x <- x + 1;
ate x > 10;
fim_algoritmo`

	prog, col := parseProgram(t, src)
	if !col.Empty() {
		t.Fatalf("expected no diagnostics, got %s", col.String())
	}
	if len(prog.Body) != 4 {
		t.Fatalf("expected 4 statements, got %d", len(prog.Body))
	}
	if _, ok := prog.Body[0].(*ast.IfStmt); !ok {
		t.Fatalf("expected if statement, got %T", prog.Body[0])
	}
	if _, ok := prog.Body[1].(*ast.WhileStmt); !ok {
		t.Fatalf("expected while statement, got %T", prog.Body[1])
	}
	if _, ok := prog.Body[2].(*ast.ForStmt); !ok {
		t.Fatalf("expected for statement, got %T", prog.Body[2])
	}
	if _, ok := prog.Body[3].(*ast.DoUntilStmt); !ok {
		t.Fatalf("expected do-until statement, got %T", prog.Body[3])
	}
}

func TestParseSwitchWithRange(t *testing.T) {
	src := `algoritmo "switch"
declare
x: inteiro;
inicio
caso x seja
1, 2..5:
escreva(1);
senao
escreva(0);
fim_caso;
fim_algoritmo`

	prog, col := parseProgram(t, src)
	if !col.Empty() {
		t.Fatalf("expected no diagnostics, got %s", col.String())
	}
	sw, ok := prog.Body[0].(*ast.SwitchStmt)
	if !ok {
		t.Fatalf("expected switch statement, got %T", prog.Body[0])
	}
	if len(sw.Cases) != 1 || len(sw.Cases[0].Labels) != 2 {
		t.Fatalf("expected 1 case clause with 2 labels, got %+v", sw.Cases)
	}
	if sw.Cases[0].Labels[1].Low != 2 || sw.Cases[0].Labels[1].High != 5 {
		t.Fatalf("expected range label 2..5, got %+v", sw.Cases[0].Labels[1])
	}
}

func TestParseFunctionAndCall(t *testing.T) {
	src := `algoritmo "func"
declare
funcao dobro(n: inteiro): inteiro;
inicio
retorne n * 2;
fim_funcao;
x: inteiro;
inicio
x <- dobro(21);
escreva(x);
fim_algoritmo`

	prog, col := parseProgram(t, src)
	if !col.Empty() {
		t.Fatalf("expected no diagnostics, got %s", col.String())
	}
	if len(prog.Functions) != 1 {
		t.Fatalf("expected 1 function decl, got %d", len(prog.Functions))
	}
	assign := prog.Body[0].(*ast.AssignStmt)
	if _, ok := assign.Value.(*ast.FuncCallExpr); !ok {
		t.Fatalf("expected func call expression, got %T", assign.Value)
	}
}

func TestParseSyntaxErrorReported(t *testing.T) {
	src := `algoritmo "bad"
declare
x: inteiro;
inicio
x <- ;
fim_algoritmo`

	_, col := parseProgram(t, src)
	if col.Empty() {
		t.Fatal("expected a syntax error diagnostic")
	}
}
