package analyzer_test

import (
	"testing"

	"github.com/lacc-lang/lacc/internal/analyzer"
	"github.com/lacc-lang/lacc/internal/diagnostics"
	"github.com/lacc-lang/lacc/internal/errlisten"
	"github.com/lacc-lang/lacc/internal/lexer"
	"github.com/lacc-lang/lacc/internal/parser"
)

func analyze(t *testing.T, src string) *diagnostics.Collector {
	t.Helper()
	col := diagnostics.New()
	list := errlisten.New(col)
	l := lexer.New(src)
	p := parser.New(l, list)
	prog := p.ParseProgram()
	if !col.Empty() {
		t.Fatalf("unexpected parse diagnostics: %s", col.String())
	}
	a := analyzer.New(col)
	a.Analyze(prog)
	return col
}

func TestValidProgramHasNoDiagnostics(t *testing.T) {
	src := `algoritmo "ok"
declare
x: inteiro;
y: real;
inicio
x <- 10;
y <- x;
escreva(x, y);
fim_algoritmo`

	col := analyze(t, src)
	if !col.Empty() {
		t.Fatalf("expected no diagnostics, got %s", col.String())
	}
}

func TestUndeclaredIdentifier(t *testing.T) {
	src := `algoritmo "bad"
declare
x: inteiro;
inicio
x <- y;
fim_algoritmo`

	col := analyze(t, src)
	all := col.All()
	if len(all) != 1 || all[0].Code != diagnostics.UndeclaredIdentifier {
		t.Fatalf("expected 1 undeclared-identifier diagnostic, got %+v", all)
	}
}

func TestDuplicateIdentifier(t *testing.T) {
	src := `algoritmo "dup"
declare
x: inteiro;
x: real;
inicio
fim_algoritmo`

	col := analyze(t, src)
	all := col.All()
	if len(all) != 1 || all[0].Code != diagnostics.DuplicateIdentifier {
		t.Fatalf("expected 1 duplicate-identifier diagnostic, got %+v", all)
	}
}

func TestIncompatibleAssignment(t *testing.T) {
	src := `algoritmo "incompat"
declare
x: inteiro;
y: literal;
inicio
x <- y;
fim_algoritmo`

	col := analyze(t, src)
	all := col.All()
	if len(all) != 1 || all[0].Code != diagnostics.IncompatibleAssignment {
		t.Fatalf("expected 1 incompatible-assignment diagnostic, got %+v", all)
	}
}

func TestWideningIsAllowed(t *testing.T) {
	src := `algoritmo "widen"
declare
x: inteiro;
y: real;
inicio
y <- x;
fim_algoritmo`

	col := analyze(t, src)
	if !col.Empty() {
		t.Fatalf("expected widening inteiro->real to be allowed, got %s", col.String())
	}
}

func TestRecordFieldAccess(t *testing.T) {
	src := `algoritmo "rec"
declare
tipo Pessoa: registro
nome: literal;
idade: inteiro;
fim_registro;
p: Pessoa;
inicio
p.idade <- 20;
escreva(p.nome);
fim_algoritmo`

	col := analyze(t, src)
	if !col.Empty() {
		t.Fatalf("expected no diagnostics, got %s", col.String())
	}
}

func TestMissingFieldDiagnostic(t *testing.T) {
	src := `algoritmo "rec2"
declare
tipo Pessoa: registro
nome: literal;
fim_registro;
p: Pessoa;
inicio
p.idade <- 20;
fim_algoritmo`

	col := analyze(t, src)
	all := col.All()
	if len(all) != 1 || all[0].Code != diagnostics.MissingField {
		t.Fatalf("expected 1 missing-field diagnostic, got %+v", all)
	}
}

func TestArityMismatchOnProcedureCall(t *testing.T) {
	src := `algoritmo "arity"
declare
procedimento saudacao(nome: literal);
inicio
escreva(nome);
fim_procedimento;
inicio
saudacao();
fim_algoritmo`

	col := analyze(t, src)
	all := col.All()
	if len(all) != 1 || all[0].Code != diagnostics.ArityMismatch {
		t.Fatalf("expected 1 arity-mismatch diagnostic, got %+v", all)
	}
}

func TestUndeclaredTypeDiagnostic(t *testing.T) {
	src := `algoritmo "badtype"
declare
x: Inexistente;
inicio
fim_algoritmo`

	col := analyze(t, src)
	all := col.All()
	if len(all) != 1 || all[0].Code != diagnostics.UndeclaredType {
		t.Fatalf("expected 1 undeclared-type diagnostic, got %+v", all)
	}
}

func TestLocalScopeShadowsAndIsDiscarded(t *testing.T) {
	src := `algoritmo "scope"
declare
x: inteiro;
funcao dobro(x: inteiro): inteiro;
inicio
retorne x * 2;
fim_funcao;
inicio
x <- dobro(x);
fim_algoritmo`

	col := analyze(t, src)
	if !col.Empty() {
		t.Fatalf("expected no diagnostics, got %s", col.String())
	}
}
