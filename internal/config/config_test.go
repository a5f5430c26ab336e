package config

import "testing"

func TestCType(t *testing.T) {
	cases := []struct {
		tag        string
		isParam    bool
		wantCType  string
		wantString bool
	}{
		{Inteiro, false, "int", false},
		{Real, false, "float", false},
		{Logico, false, "int", false},
		{Literal, false, "char", true},
		{Literal, true, "char*", false},
		{"desconhecido", false, "int", false},
	}

	for _, c := range cases {
		ctype, isString := CType(c.tag, c.isParam)
		if ctype != c.wantCType || isString != c.wantString {
			t.Errorf("CType(%q, %v) = (%q, %v), want (%q, %v)",
				c.tag, c.isParam, ctype, isString, c.wantCType, c.wantString)
		}
	}
}

func TestFormatFor(t *testing.T) {
	cases := []struct {
		tag  string
		want string
	}{
		{Inteiro, "%d"},
		{Real, "%f"},
		{Literal, "%s"},
		{Logico, "%d"},
		{"desconhecido", "%d"},
	}

	for _, c := range cases {
		if got := FormatFor(c.tag); got != c.want {
			t.Errorf("FormatFor(%q) = %q, want %q", c.tag, got, c.want)
		}
	}
}

func TestFieldHeuristicTablesAreDisjoint(t *testing.T) {
	for _, s := range StringFieldSubstrings {
		for _, n := range IntegerFieldSubstrings {
			if s == n {
				t.Errorf("substring %q appears in both heuristic tables", s)
			}
		}
	}
}
