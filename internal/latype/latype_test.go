package latype_test

import (
	"testing"

	"github.com/lacc-lang/lacc/internal/latype"
)

func TestPrimitiveEquals(t *testing.T) {
	if !latype.Inteiro.Equals(latype.Inteiro) {
		t.Fatal("inteiro should equal itself")
	}
	if latype.Inteiro.Equals(latype.RealT) {
		t.Fatal("inteiro should not equal real")
	}
}

func TestAssignableToWidensIntToReal(t *testing.T) {
	if !latype.AssignableTo(latype.Inteiro, latype.RealT) {
		t.Fatal("inteiro should be assignable to real")
	}
	if latype.AssignableTo(latype.RealT, latype.Inteiro) {
		t.Fatal("real should not be assignable to inteiro")
	}
}

func TestAssignableToUnknownAlwaysSucceeds(t *testing.T) {
	if !latype.AssignableTo(latype.Unknown, latype.Logico) {
		t.Fatal("unknown should suppress further diagnostics")
	}
	if !latype.AssignableTo(latype.Literal, latype.Unknown) {
		t.Fatal("unknown target should suppress further diagnostics")
	}
}

func TestRecordFieldLookup(t *testing.T) {
	r := &latype.Record{
		Name: "Pessoa",
		Fields: []latype.Field{
			{Name: "nome", Type: latype.Literal},
			{Name: "idade", Type: latype.Inteiro},
		},
	}
	typ, ok := r.FieldType("idade")
	if !ok || !typ.Equals(latype.Inteiro) {
		t.Fatalf("expected idade to be inteiro, got %v, ok=%v", typ, ok)
	}
	if _, ok := r.FieldType("endereco"); ok {
		t.Fatal("expected endereco to be absent")
	}
}

func TestRecordNameIsDeterministic(t *testing.T) {
	a := latype.RecordName(10, 3)
	b := latype.RecordName(10, 3)
	if a != b {
		t.Fatalf("expected deterministic naming, got %q and %q", a, b)
	}
	if latype.RecordName(10, 3) == latype.RecordName(11, 3) {
		t.Fatal("expected distinct positions to produce distinct names")
	}
}

func TestPointerEquals(t *testing.T) {
	p1 := &latype.Pointer{Elem: latype.Inteiro}
	p2 := &latype.Pointer{Elem: latype.Inteiro}
	p3 := &latype.Pointer{Elem: latype.RealT}
	if !p1.Equals(p2) {
		t.Fatal("pointers to the same element type should be equal")
	}
	if p1.Equals(p3) {
		t.Fatal("pointers to different element types should not be equal")
	}
}
