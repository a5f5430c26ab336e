package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// compile drives the full driver on src and returns the output file's
// contents.
func compile(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "prog.la")
	out := filepath.Join(dir, "prog.c")
	if err := os.WriteFile(in, []byte(src), 0o644); err != nil {
		t.Fatalf("writing input: %v", err)
	}
	if code := run([]string{"-no-cc", in, out}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	return string(data)
}

func TestCompileReadWriteProgram(t *testing.T) {
	out := compile(t, `algoritmo "x"
declare
x: inteiro;
inicio
leia(x);
escreva(x);
fim_algoritmo`)

	for _, want := range []string{"int x;", "scanf(\"%d\", &x);", "printf(\"%d\", x);"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Linha") {
		t.Fatalf("expected no diagnostics, got:\n%s", out)
	}
}

func TestUndeclaredIdentifierReportsLineAndTerminator(t *testing.T) {
	out := compile(t, `algoritmo "x"
declare
x: inteiro;
inicio
x <- y;
fim_algoritmo`)

	if !strings.HasPrefix(out, "Linha 5: identificador y nao declarado") {
		t.Fatalf("expected undeclared-identifier diagnostic first, got:\n%s", out)
	}
	assertDiagnosticsOnly(t, out)
}

func TestDuplicateIdentifierInOneDeclarator(t *testing.T) {
	out := compile(t, `algoritmo "x"
declare
a, a: inteiro;
inicio
fim_algoritmo`)

	if !strings.Contains(out, "Linha 3: identificador a ja declarado") {
		t.Fatalf("expected duplicate-identifier diagnostic, got:\n%s", out)
	}
	assertDiagnosticsOnly(t, out)
}

func TestIncompatibleAssignmentDiagnostic(t *testing.T) {
	out := compile(t, `algoritmo "x"
declare
n: inteiro;
s: literal;
inicio
n <- s;
fim_algoritmo`)

	if !strings.Contains(out, "Linha 6: atribuicao nao compativel para n") {
		t.Fatalf("expected incompatible-assignment diagnostic, got:\n%s", out)
	}
	assertDiagnosticsOnly(t, out)
}

func TestUnterminatedStringHaltsAtDiagnostics(t *testing.T) {
	out := compile(t, `algoritmo "x"
declare
s: literal;
inicio
s <- "aberta
fim_algoritmo`)

	if !strings.Contains(out, "Linha 5: cadeia literal nao fechada") {
		t.Fatalf("expected unterminated-string diagnostic, got:\n%s", out)
	}
	assertDiagnosticsOnly(t, out)
}

func TestSwitchRangeExpandsToConsecutiveCases(t *testing.T) {
	out := compile(t, `algoritmo "x"
declare
v: inteiro;
inicio
caso v seja
1..3:
escreva(v);
fim_caso;
fim_algoritmo`)

	idx1 := strings.Index(out, "case 1:")
	idx2 := strings.Index(out, "case 2:")
	idx3 := strings.Index(out, "case 3:")
	if idx1 < 0 || idx2 < idx1 || idx3 < idx2 {
		t.Fatalf("expected consecutive case labels for range 1..3, got:\n%s", out)
	}
	if !strings.Contains(out, "break;") {
		t.Fatalf("expected break after shared case body, got:\n%s", out)
	}
}

func TestWrongArgumentCountExitsOne(t *testing.T) {
	if code := run([]string{"only-one-arg"}); code != 1 {
		t.Fatalf("expected exit code 1 for wrong argument count, got %d", code)
	}
}

func TestMissingInputWritesInternalError(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "prog.c")
	if code := run([]string{filepath.Join(dir, "nao-existe.la"), out}); code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	content := string(data)
	if !strings.HasPrefix(content, "Erro durante a compilacao: ") {
		t.Fatalf("expected internal-error line, got:\n%s", content)
	}
	if !strings.HasSuffix(strings.TrimRight(content, "\n"), "Fim da compilacao") {
		t.Fatalf("expected terminator, got:\n%s", content)
	}
}

// assertDiagnosticsOnly checks the diagnostic-path contract: no generated C
// and the terminator as the final line.
func assertDiagnosticsOnly(t *testing.T, out string) {
	t.Helper()
	if strings.Contains(out, "#include") {
		t.Fatalf("expected no generated C on the diagnostic path, got:\n%s", out)
	}
	trimmed := strings.TrimRight(out, "\n")
	lines := strings.Split(trimmed, "\n")
	if lines[len(lines)-1] != "Fim da compilacao" {
		t.Fatalf("expected last line to be the terminator, got:\n%s", out)
	}
}
