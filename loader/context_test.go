package loader

import (
	"testing"

	"github.com/dotmeta/dotmeta/heaps"
	"github.com/dotmeta/dotmeta/metadata"
	"github.com/dotmeta/dotmeta/types"
)

func resolverContext(t *testing.T) *Context {
	t.Helper()
	ctx := NewContext(&metadata.TableStream{}, heaps.NewSet(nil, nil, nil, nil))
	for i := 1; i <= 3; i++ {
		tok := metadata.NewToken(metadata.TableTypeDef, uint32(i))
		ctx.TypeDefs.Append(ctx.Types.Create(tok, "Demo", "T", 0))
	}
	return ctx
}

func TestResolveHit(t *testing.T) {
	ctx := resolverContext(t)

	ref := ctx.Resolve(metadata.CodedIndex{Table: metadata.TableTypeDef, Row: 2})
	if ref.IsNil() {
		t.Fatal("existing row resolved to NoRef")
	}
	if ref.Kind != RefTypeDef {
		t.Fatalf("ref kind = %v, want %v", ref.Kind, RefTypeDef)
	}
	td, ok := ref.Type()
	if !ok || td.Token() != metadata.NewToken(metadata.TableTypeDef, 2) {
		t.Fatalf("resolved wrong entity: %v, %v", td, ok)
	}
}

func TestResolveRowPastTableEnd(t *testing.T) {
	ctx := resolverContext(t)

	// Row 5 of a 3-row table is dangling. The resolver yields NoRef and
	// never panics; the caller decides whether that is an error.
	ref := ctx.Resolve(metadata.CodedIndex{Table: metadata.TableTypeDef, Row: 5})
	if !ref.IsNil() {
		t.Fatalf("dangling row resolved to %v, want NoRef", ref)
	}
}

func TestResolveNilIndex(t *testing.T) {
	ctx := resolverContext(t)

	if ref := ctx.Resolve(metadata.CodedIndex{}); !ref.IsNil() {
		t.Fatalf("nil index resolved to %v, want NoRef", ref)
	}
}

func TestResolveSingletonTables(t *testing.T) {
	ctx := resolverContext(t)

	ci := metadata.CodedIndex{Table: metadata.TableModule, Row: 1}
	if ref := ctx.Resolve(ci); !ref.IsNil() {
		t.Fatal("module resolved before its unit ran")
	}

	ctx.Module.Set(&Module{Token: metadata.NewToken(metadata.TableModule, 1), Name: "m"})
	ref := ctx.Resolve(ci)
	if ref.IsNil() || ref.Kind != RefModule {
		t.Fatalf("module did not resolve after Set: %v", ref)
	}

	// Only row 1 of a singleton table exists.
	if ref := ctx.Resolve(metadata.CodedIndex{Table: metadata.TableModule, Row: 2}); !ref.IsNil() {
		t.Fatalf("module row 2 resolved to %v, want NoRef", ref)
	}
}

func TestResolveFieldAccessor(t *testing.T) {
	ctx := resolverContext(t)
	f := &types.Field{Token: metadata.NewToken(metadata.TableField, 1), Name: "x"}
	ctx.Fields.Append(f)

	ref := ctx.Resolve(metadata.CodedIndex{Table: metadata.TableField, Row: 1})
	got, ok := ref.Field()
	if !ok || got != f {
		t.Fatalf("Field() = %v, %v; want the appended field", got, ok)
	}
	if _, ok := ref.Type(); ok {
		t.Error("Type() succeeded on a field ref")
	}
}
