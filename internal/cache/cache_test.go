package cache_test

import (
	"path/filepath"
	"testing"

	"github.com/lacc-lang/lacc/internal/cache"
)

func TestKeyIsDeterministic(t *testing.T) {
	a := cache.Key("algoritmo \"x\"")
	b := cache.Key("algoritmo \"x\"")
	if a != b {
		t.Fatalf("expected identical source to hash identically, got %q and %q", a, b)
	}
	if cache.Key("algoritmo \"y\"") == a {
		t.Fatal("expected distinct source to hash differently")
	}
}

func TestStoreAndLookupRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	store, err := cache.Open(path)
	if err != nil {
		t.Fatalf("unexpected error opening cache: %v", err)
	}
	defer store.Close()

	key := cache.Key("algoritmo \"x\"")
	if _, ok, err := store.Lookup(key); err != nil || ok {
		t.Fatalf("expected no entry yet, ok=%v err=%v", ok, err)
	}

	want := cache.Result{RunID: "run-1", Output: "int main() { return 0; }\n", IsError: false}
	if err := store.Store(key, want); err != nil {
		t.Fatalf("unexpected error storing result: %v", err)
	}

	got, ok, err := store.Lookup(key)
	if err != nil || !ok {
		t.Fatalf("expected a cached entry, ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("want %+v, got %+v", want, got)
	}
}

func TestStoreOverwritesPriorEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.db")
	store, err := cache.Open(path)
	if err != nil {
		t.Fatalf("unexpected error opening cache: %v", err)
	}
	defer store.Close()

	key := cache.Key("algoritmo \"x\"")
	store.Store(key, cache.Result{RunID: "run-1", Output: "first"})
	store.Store(key, cache.Result{RunID: "run-2", Output: "second"})

	got, _, _ := store.Lookup(key)
	if got.Output != "second" || got.RunID != "run-2" {
		t.Fatalf("expected overwritten entry, got %+v", got)
	}
}
