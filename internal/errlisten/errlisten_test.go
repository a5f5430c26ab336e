package errlisten_test

import (
	"testing"

	"github.com/lacc-lang/lacc/internal/diagnostics"
	"github.com/lacc-lang/lacc/internal/errlisten"
	"github.com/lacc-lang/lacc/internal/token"
)

func TestCheckTokenClassifiesLexicalErrors(t *testing.T) {
	cases := []struct {
		name string
		tok  token.Token
		want diagnostics.Code
	}{
		{"unterminated string", token.Token{Type: token.UNTERMINATED_STRING, Line: 4}, diagnostics.UnterminatedString},
		{"unterminated comment", token.Token{Type: token.UNTERMINATED_COMMENT, Line: 9}, diagnostics.UnterminatedComment},
		{"invalid char", token.Token{Type: token.ILLEGAL, Lexeme: "@", Line: 2}, diagnostics.InvalidChar},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			col := diagnostics.New()
			l := errlisten.New(col)
			if !l.CheckToken(c.tok) {
				t.Fatalf("expected CheckToken to report %v as an error token", c.tok)
			}
			all := col.All()
			if len(all) != 1 {
				t.Fatalf("want 1 diagnostic, got %d", len(all))
			}
			if all[0].Code != c.want {
				t.Errorf("want code %v, got %v", c.want, all[0].Code)
			}
		})
	}
}

func TestCheckTokenIgnoresOrdinaryTokens(t *testing.T) {
	col := diagnostics.New()
	l := errlisten.New(col)
	if l.CheckToken(token.Token{Type: token.IDENT, Lexeme: "x"}) {
		t.Fatal("expected ordinary token to not be classified as an error")
	}
	if !col.Empty() {
		t.Fatal("expected no diagnostics for an ordinary token")
	}
}

func TestSyntaxErrorNamesOffendingSymbol(t *testing.T) {
	col := diagnostics.New()
	l := errlisten.New(col)
	l.SyntaxError(token.Token{Type: token.FIM_SE, Lexeme: "fim_se", Line: 12})

	all := col.All()
	if len(all) != 1 || all[0].Code != diagnostics.SyntaxError {
		t.Fatalf("expected a syntax error diagnostic, got %+v", all)
	}
	want := "Linha 12: erro sintatico proximo a fim_se"
	if got := all[0].Error(); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}

func TestSyntaxErrorAtEOF(t *testing.T) {
	col := diagnostics.New()
	l := errlisten.New(col)
	l.SyntaxError(token.Token{Type: token.EOF, Line: 30})

	want := "Linha 30: erro sintatico proximo a EOF"
	if got := col.All()[0].Error(); got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}
