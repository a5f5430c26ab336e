package symbols_test

import (
	"testing"

	"github.com/lacc-lang/lacc/internal/latype"
	"github.com/lacc-lang/lacc/internal/symbols"
)

func TestDefineAndResolveGlobal(t *testing.T) {
	tab := symbols.New()
	if !tab.DefineGlobal(symbols.Symbol{Name: "x", Kind: symbols.KindVar, Type: latype.Inteiro}) {
		t.Fatal("expected first definition of x to succeed")
	}
	if tab.DefineGlobal(symbols.Symbol{Name: "x", Kind: symbols.KindVar, Type: latype.Inteiro}) {
		t.Fatal("expected redefinition of x to fail")
	}
	sym, ok := tab.Resolve("x")
	if !ok || !sym.Type.Equals(latype.Inteiro) {
		t.Fatalf("expected to resolve x as inteiro, got %+v, ok=%v", sym, ok)
	}
}

func TestLocalScopeShadowsGlobal(t *testing.T) {
	tab := symbols.New()
	tab.DefineGlobal(symbols.Symbol{Name: "x", Kind: symbols.KindVar, Type: latype.Inteiro})

	tab.EnterLocal()
	if !tab.Define(symbols.Symbol{Name: "x", Kind: symbols.KindVar, Type: latype.RealT}) {
		t.Fatal("expected local x to be definable even though global x exists")
	}
	sym, _ := tab.Resolve("x")
	if !sym.Type.Equals(latype.RealT) {
		t.Fatalf("expected local x (real) to shadow global x, got %v", sym.Type)
	}

	tab.ExitLocal()
	sym, _ = tab.Resolve("x")
	if !sym.Type.Equals(latype.Inteiro) {
		t.Fatalf("expected global x (inteiro) after exiting local scope, got %v", sym.Type)
	}
}

func TestLocalScopeIsFullyReplacedOnReentry(t *testing.T) {
	tab := symbols.New()
	tab.EnterLocal()
	tab.Define(symbols.Symbol{Name: "a", Kind: symbols.KindVar, Type: latype.Inteiro})

	tab.EnterLocal()
	if _, ok := tab.Resolve("a"); ok {
		t.Fatal("expected previous local scope's symbols to be gone after re-entering")
	}
}

func TestResolveGlobalIgnoresLocalScope(t *testing.T) {
	tab := symbols.New()
	tab.DefineGlobal(symbols.Symbol{Name: "soma", Kind: symbols.KindFunction, Type: latype.Inteiro})
	tab.EnterLocal()
	tab.Define(symbols.Symbol{Name: "soma", Kind: symbols.KindVar, Type: latype.Literal})

	sym, ok := tab.ResolveGlobal("soma")
	if !ok || sym.Kind != symbols.KindFunction {
		t.Fatalf("expected ResolveGlobal to see the function, not local shadow, got %+v", sym)
	}
}

func TestInLocalScope(t *testing.T) {
	tab := symbols.New()
	if tab.InLocalScope() {
		t.Fatal("expected no local scope initially")
	}
	tab.EnterLocal()
	if !tab.InLocalScope() {
		t.Fatal("expected local scope after EnterLocal")
	}
	tab.ExitLocal()
	if tab.InLocalScope() {
		t.Fatal("expected no local scope after ExitLocal")
	}
}
