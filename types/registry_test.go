package types

import (
	"sync"
	"testing"

	"github.com/dotmeta/dotmeta/metadata"
)

func TestRegistry_CreateAndLookup(t *testing.T) {
	reg := NewRegistry()
	td := reg.Create(tok(1), "System", "Object", 0)

	got, ok := reg.Lookup(tok(1))
	if !ok || got != td {
		t.Fatalf("Lookup returned %v, %v", got, ok)
	}

	if _, ok := reg.Lookup(tok(99)); ok {
		t.Error("lookup of a never-inserted token must report not found")
	}
}

func TestRegistry_CanonicalIdentity(t *testing.T) {
	reg := NewRegistry()
	first := reg.Create(tok(1), "System", "Object", 0)
	second := reg.Create(tok(1), "Other", "Name", AttrInterface)

	if first != second {
		t.Error("a token must map to exactly one canonical entity")
	}
	if second.Name() != "Object" {
		t.Errorf("second Create must not overwrite identity, got %q", second.Name())
	}
}

func TestRegistry_LookupName(t *testing.T) {
	reg := NewRegistry()
	reg.Create(tok(1), "System", "String", 0)
	reg.Create(tok(2), "", "Program", 0)

	if td, ok := reg.LookupName("System", "String"); !ok || td.Token() != tok(1) {
		t.Errorf("LookupName(System, String) = %v, %v", td, ok)
	}
	if td, ok := reg.LookupName("", "Program"); !ok || td.Token() != tok(2) {
		t.Errorf("LookupName(, Program) = %v, %v", td, ok)
	}
	if _, ok := reg.LookupName("System", "Missing"); ok {
		t.Error("LookupName of unknown type must report not found")
	}
}

func TestRegistry_NameCollisionFirstWins(t *testing.T) {
	reg := NewRegistry()
	reg.Create(tok(1), "System", "String", 0)
	reg.Create(metadata.NewToken(metadata.TableTypeRef, 1), "System", "String", 0)

	td, ok := reg.LookupName("System", "String")
	if !ok || td.Token() != tok(1) {
		t.Errorf("LookupName = %v, %v; want the first insertion", td, ok)
	}
	if reg.Len() != 2 {
		t.Errorf("Len() = %d, want both entities registered", reg.Len())
	}
}

func TestRegistry_ConcurrentInsertAndLookup(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 1; i <= 100; i++ {
				rid := uint32(w*100 + i)
				reg.Create(tok(rid), "Ns", "T", 0)
				if _, ok := reg.Lookup(tok(rid)); !ok {
					t.Errorf("entity %d missing immediately after insert", rid)
				}
			}
		}(w)
	}
	wg.Wait()

	if reg.Len() != 800 {
		t.Errorf("Len() = %d, want 800", reg.Len())
	}
}

func TestRegistry_All(t *testing.T) {
	reg := NewRegistry()
	reg.Create(tok(1), "A", "X", 0)
	reg.Create(tok(2), "A", "Y", 0)

	if got := len(reg.All()); got != 2 {
		t.Errorf("All() = %d entities", got)
	}
}
