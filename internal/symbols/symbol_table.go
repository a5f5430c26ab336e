// Package symbols implements LA's two-level scope model: one global scope
// holding program-wide variables, types, constants, functions, and
// procedures, plus at most one active local scope that is fully replaced
// on every subroutine entry and discarded on exit. LA has no nested blocks
// and no closures, so unlike a general-purpose language's arbitrary-depth
// scope chain, there is never more than one local scope alive at a time.
package symbols

import "github.com/lacc-lang/lacc/internal/latype"

// Kind classifies what a Symbol names.
type Kind int

const (
	KindVar Kind = iota
	KindConst
	KindType
	KindFunction
	KindProcedure
)

// Symbol is one entry in a scope: a name bound to a type and, for
// subroutines, its signature.
type Symbol struct {
	Name    string
	Kind    Kind
	Type    latype.Type
	Params  []latype.Type // parameter types, for KindFunction/KindProcedure
	Returns latype.Type   // return type, for KindFunction only
}

// Table is LA's symbol table: one persistent global scope and one local
// scope that subroutine entry/exit swaps in and out wholesale.
type Table struct {
	global map[string]Symbol
	local  map[string]Symbol
}

// New returns an empty Table with no active local scope.
func New() *Table {
	return &Table{global: make(map[string]Symbol)}
}

// EnterLocal installs a fresh, empty local scope, replacing any previous
// one. Parameters are typically Defined into it immediately afterward.
func (t *Table) EnterLocal() {
	t.local = make(map[string]Symbol)
}

// ExitLocal discards the active local scope, returning lookups to
// global-only.
func (t *Table) ExitLocal() {
	t.local = nil
}

// InLocalScope reports whether a local scope is currently active.
func (t *Table) InLocalScope() bool {
	return t.local != nil
}

// DefineGlobal binds name in the global scope. It reports false if name is
// already bound there (the caller reports a duplicate-identifier
// diagnostic).
func (t *Table) DefineGlobal(sym Symbol) bool {
	if _, exists := t.global[sym.Name]; exists {
		return false
	}
	t.global[sym.Name] = sym
	return true
}

// Define binds name in the active local scope if one is open, otherwise in
// the global scope. It reports false if name is already bound in that
// scope.
func (t *Table) Define(sym Symbol) bool {
	if t.local != nil {
		if _, exists := t.local[sym.Name]; exists {
			return false
		}
		t.local[sym.Name] = sym
		return true
	}
	return t.DefineGlobal(sym)
}

// Resolve looks up name, preferring the active local scope over global.
func (t *Table) Resolve(name string) (Symbol, bool) {
	if t.local != nil {
		if sym, ok := t.local[name]; ok {
			return sym, true
		}
	}
	sym, ok := t.global[name]
	return sym, ok
}

// ResolveGlobal looks up name in the global scope only, ignoring any
// active local scope. Subroutine declarations and type names always live
// globally, so callers resolving a call target or a type name use this
// instead of Resolve.
func (t *Table) ResolveGlobal(name string) (Symbol, bool) {
	sym, ok := t.global[name]
	return sym, ok
}
