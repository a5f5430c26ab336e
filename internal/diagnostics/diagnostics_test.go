package diagnostics_test

import (
	"testing"

	"github.com/lacc-lang/lacc/internal/diagnostics"
	"github.com/lacc-lang/lacc/internal/token"
)

func TestErrorRendering(t *testing.T) {
	cases := []struct {
		code diagnostics.Code
		args []interface{}
		line int
		want string
	}{
		{diagnostics.UnterminatedString, nil, 3, "Linha 3: cadeia literal nao fechada"},
		{diagnostics.InvalidChar, []interface{}{"@"}, 1, "Linha 1: @ - simbolo nao identificado"},
		{diagnostics.UndeclaredIdentifier, []interface{}{"x"}, 5, "Linha 5: identificador x nao declarado"},
		{diagnostics.ArityMismatch, []interface{}{"soma"}, 9, "Linha 9: incompatibilidade de parametros na chamada de soma"},
	}

	for _, c := range cases {
		d := diagnostics.Diagnostic{Code: c.code, Line: c.line, Args: c.args}
		if got := d.Error(); got != c.want {
			t.Errorf("want %q, got %q", c.want, got)
		}
	}
}

func TestCollectorAccumulatesInOrder(t *testing.T) {
	c := diagnostics.New()
	if !c.Empty() {
		t.Fatal("expected new collector to be empty")
	}
	c.Add(diagnostics.UndeclaredIdentifier, token.Token{Line: 2}, "foo")
	c.Add(diagnostics.DuplicateType, token.Token{Line: 7}, "Pessoa")

	all := c.All()
	if len(all) != 2 {
		t.Fatalf("want 2 diagnostics, got %d", len(all))
	}
	if all[0].Line != 2 || all[1].Line != 7 {
		t.Fatalf("diagnostics out of order: %+v", all)
	}
	if c.Empty() {
		t.Fatal("expected non-empty collector after Add")
	}
}
