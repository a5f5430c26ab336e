// Package latype implements the closed type model for LA: primitives,
// named aliases, records, and pointers. There is no unification and no
// type variables — every type is fully known once declarations have been
// processed, so Type only needs identity comparison and a display name.
package latype

import (
	"fmt"

	"github.com/lacc-lang/lacc/internal/config"
)

// Type is any LA type value the analyzer can assign to an expression or a
// declaration.
type Type interface {
	String() string
	Equals(other Type) bool
}

// Primitive is one of the four built-in scalar types.
type Primitive struct {
	Name string
}

var (
	Inteiro = &Primitive{Name: config.Inteiro}
	RealT   = &Primitive{Name: config.Real}
	Literal = &Primitive{Name: config.Literal}
	Logico  = &Primitive{Name: config.Logico}

	// Unknown is the cascade-suppression sentinel: once an expression's
	// type cannot be determined (because a sub-expression already failed
	// to type), every enclosing expression also types to Unknown without
	// generating a further diagnostic of its own.
	Unknown = &Primitive{Name: "desconhecido"}
)

func (p *Primitive) String() string { return p.Name }

func (p *Primitive) Equals(other Type) bool {
	o, ok := other.(*Primitive)
	return ok && o.Name == p.Name
}

// IsUnknown reports whether t is the cascade-suppression sentinel.
func IsUnknown(t Type) bool {
	return t == Unknown
}

// Field is one named member of a Record, in declaration order.
type Field struct {
	Name string
	Type Type
}

// Record is a structured type with named fields, used for both
// user-declared `tipo N: registro ...` types and anonymous inline records
// synthesized from a variable declaration's inline body.
type Record struct {
	Name   string
	Fields []Field
}

func (r *Record) String() string { return r.Name }

func (r *Record) Equals(other Type) bool {
	o, ok := other.(*Record)
	return ok && o.Name == r.Name
}

// FieldType returns the type of the named field and whether it exists.
func (r *Record) FieldType(name string) (Type, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Type, true
		}
	}
	return nil, false
}

// Named is a type identified by name over a Base type. The analyzer does
// not construct it: an alias declaration `tipo N: T` binds N to the
// resolved T itself, and record declarations get a Record.
type Named struct {
	Name string
	Base Type
}

func (n *Named) String() string { return n.Name }

func (n *Named) Equals(other Type) bool {
	o, ok := other.(*Named)
	return ok && o.Name == n.Name
}

// Pointer is `^T`.
type Pointer struct {
	Elem Type
}

func (p *Pointer) String() string { return "^" + p.Elem.String() }

func (p *Pointer) Equals(other Type) bool {
	o, ok := other.(*Pointer)
	return ok && p.Elem.Equals(o.Elem)
}

// AssignableTo reports whether a value of type from may be assigned to a
// target of type to. LA widens inteiro to real on assignment; every other
// pairing requires identical types.
func AssignableTo(from, to Type) bool {
	if IsUnknown(from) || IsUnknown(to) {
		return true
	}
	if from.Equals(to) {
		return true
	}
	if from.Equals(Inteiro) && to.Equals(RealT) {
		return true
	}
	return false
}

// RecordName builds the deterministic name for an anonymous inline record,
// derived from the position of its declaring `registro` keyword so that
// two compilations of identical source always synthesize the same name.
func RecordName(line, col int) string {
	return fmt.Sprintf("__rec_L%dC%d", line, col)
}
