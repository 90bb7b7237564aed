package types

import (
	"sync"
	"testing"

	"github.com/dotmeta/dotmeta/metadata"
)

func newTestRegistry() *Registry {
	return NewRegistry()
}

func tok(rid uint32) metadata.Token {
	return metadata.NewToken(metadata.TableTypeDef, rid)
}

func TestKind_InterfaceFlagWins(t *testing.T) {
	reg := newTestRegistry()
	// The interface flag beats every name heuristic, including "Enum".
	td := reg.Create(tok(1), "My.Ns", "ColorEnum", AttrInterface)

	if got := td.Kind(); got != KindInterface {
		t.Errorf("Kind() = %v, want interface", got)
	}
}

func TestKind_SystemNames(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"Boolean", KindValueType},
		{"Char", KindValueType},
		{"SByte", KindValueType},
		{"Byte", KindValueType},
		{"Int16", KindValueType},
		{"UInt16", KindValueType},
		{"Int32", KindValueType},
		{"UInt32", KindValueType},
		{"Int64", KindValueType},
		{"UInt64", KindValueType},
		{"Single", KindValueType},
		{"Double", KindValueType},
		{"IntPtr", KindValueType},
		{"UIntPtr", KindValueType},
		{"Decimal", KindValueType},
		{"ValueType", KindValueType},
		{"Enum", KindValueType},
		{"Object", KindObject},
		{"String", KindString},
		{"Void", KindVoid},
		{"Delegate", KindClass},
		{"MulticastDelegate", KindClass},
		{"Exception", KindClass},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newTestRegistry()
			td := reg.Create(tok(uint32(i+1)), "System", tt.name, 0)
			if got := td.Kind(); got != tt.want {
				t.Errorf("Kind(System.%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestKind_SystemNamespaceOnly(t *testing.T) {
	reg := newTestRegistry()
	// The primitive name table only applies inside the system namespace.
	td := reg.Create(tok(1), "Custom", "Int32", 0)
	if got := td.Kind(); got != KindClass {
		t.Errorf("Kind(Custom.Int32) = %v, want class", got)
	}
}

func TestKind_EnumBaseChain(t *testing.T) {
	reg := newTestRegistry()
	root := reg.Create(tok(1), "System", "Enum", 0)
	colors := reg.Create(tok(2), "My.Ns", "Colors", 0)
	colors.SetBase(root.Token())

	// The base's own Kind was never queried first; classification must
	// still see the enum root through the chain.
	if got := colors.Kind(); got != KindValueType {
		t.Errorf("Kind() = %v, want valuetype", got)
	}
}

func TestKind_ValueTypeThroughCachedBaseKind(t *testing.T) {
	reg := newTestRegistry()
	vt := reg.Create(tok(1), "System", "ValueType", 0)
	point := reg.Create(tok(2), "Geometry", "Point", 0)
	point.SetBase(vt.Token())
	box := reg.Create(tok(3), "Geometry", "Box", 0)
	box.SetBase(point.Token())

	// Force Point's kind, then Box must pick it up via the cached value.
	if got := point.Kind(); got != KindValueType {
		t.Fatalf("Kind(Point) = %v", got)
	}
	if got := box.Kind(); got != KindValueType {
		t.Errorf("Kind(Box) = %v, want valuetype via cached base kind", got)
	}
}

func TestKind_DelegateBase(t *testing.T) {
	reg := newTestRegistry()
	root := reg.Create(tok(1), "System", "MulticastDelegate", 0)
	cb := reg.Create(tok(2), "My.Ns", "Callback", 0)
	cb.SetBase(root.Token())

	if got := cb.Kind(); got != KindClass {
		t.Errorf("Kind() = %v, want class", got)
	}
}

func TestKind_NameFallbacks(t *testing.T) {
	tests := []struct {
		name string
		want Kind
	}{
		{"WeekdayEnum", KindValueType},
		{"GenericPointStruct", KindValueType},
		{"ClickDelegate", KindClass},
		{"Widget", KindClass},
		// "Struct" without the Generic...Struct shape stays a class.
		{"StructHelper", KindClass},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newTestRegistry()
			td := reg.Create(tok(uint32(i+1)), "My.Ns", tt.name, 0)
			if got := td.Kind(); got != tt.want {
				t.Errorf("Kind(%s) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestKind_Idempotent(t *testing.T) {
	reg := newTestRegistry()
	root := reg.Create(tok(1), "System", "Enum", 0)
	td := reg.Create(tok(2), "My.Ns", "State", 0)
	td.SetBase(root.Token())

	first := td.Kind()
	for i := 0; i < 3; i++ {
		if got := td.Kind(); got != first {
			t.Fatalf("Kind() changed between calls: %v then %v", first, got)
		}
	}
}

func TestKind_SelfReferentialBaseTerminates(t *testing.T) {
	reg := newTestRegistry()
	a := reg.Create(tok(1), "My.Ns", "A", 0)
	b := reg.Create(tok(2), "My.Ns", "B", 0)
	a.SetBase(b.Token())
	b.SetBase(a.Token())

	// Malformed data is the validator's problem; classification only has
	// to terminate.
	if got := a.Kind(); got != KindClass {
		t.Errorf("Kind() = %v, want class", got)
	}
}

func TestSetBase_FirstWriteWins(t *testing.T) {
	reg := newTestRegistry()
	td := reg.Create(tok(1), "My.Ns", "A", 0)

	if !td.SetBase(tok(2)) {
		t.Fatal("first SetBase must succeed")
	}
	if td.SetBase(tok(3)) {
		t.Fatal("second SetBase must no-op")
	}

	base, ok := td.BaseToken()
	if !ok || base != tok(2) {
		t.Errorf("BaseToken() = %v, %v", base, ok)
	}
}

func TestSetOrigin_FirstWriteWins(t *testing.T) {
	reg := newTestRegistry()
	td := reg.Create(tok(1), "My.Ns", "A", 0)
	scope := metadata.NewToken(metadata.TableAssemblyRef, 1)
	other := metadata.NewToken(metadata.TableAssemblyRef, 2)

	td.SetOrigin(scope)
	td.SetOrigin(other)

	got, ok := td.Origin()
	if !ok || got != scope {
		t.Errorf("Origin() = %v, %v", got, ok)
	}
}

func TestLayout(t *testing.T) {
	reg := newTestRegistry()
	td := reg.Create(tok(1), "My.Ns", "Packed", 0)

	if _, ok := td.Layout(); ok {
		t.Fatal("fresh entity must have no layout")
	}
	td.SetLayout(Layout{PackingSize: 4, ClassSize: 24})

	l, ok := td.Layout()
	if !ok || l.PackingSize != 4 || l.ClassSize != 24 {
		t.Errorf("Layout() = %+v, %v", l, ok)
	}
}

func TestChildren_AppendOnly(t *testing.T) {
	reg := newTestRegistry()
	td := reg.Create(tok(1), "My.Ns", "A", 0)

	td.AddField(&Field{Name: "x"})
	td.AddField(&Field{Name: "y"})
	td.AddMethod(&Method{Name: "Run"})
	td.AddInterface(tok(9))
	td.AddNested(tok(10))

	if got := len(td.Fields()); got != 2 {
		t.Errorf("Fields() = %d entries", got)
	}
	if got := len(td.Methods()); got != 1 {
		t.Errorf("Methods() = %d entries", got)
	}
	if got := td.Interfaces(); len(got) != 1 || got[0] != tok(9) {
		t.Errorf("Interfaces() = %v", got)
	}
	if got := td.Nested(); len(got) != 1 || got[0] != tok(10) {
		t.Errorf("Nested() = %v", got)
	}
}

func TestChildren_ConcurrentAppend(t *testing.T) {
	reg := newTestRegistry()
	td := reg.Create(tok(1), "My.Ns", "A", 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				td.AddField(&Field{Name: "f"})
			}
		}()
	}
	wg.Wait()

	if got := len(td.Fields()); got != 400 {
		t.Errorf("Fields() = %d entries, want 400", got)
	}
}

func TestField_Constant(t *testing.T) {
	f := &Field{Name: "MaxRetries"}

	if _, ok := f.Constant(); ok {
		t.Fatal("fresh field must have no constant")
	}
	f.SetConstant(Constant{Type: ElemI4, Value: []byte{5, 0, 0, 0}})
	f.SetConstant(Constant{Type: ElemI8})

	c, ok := f.Constant()
	if !ok || c.Type != ElemI4 {
		t.Errorf("Constant() = %+v, %v", c, ok)
	}
}

func TestFullName(t *testing.T) {
	reg := newTestRegistry()
	with := reg.Create(tok(1), "System", "String", 0)
	without := reg.Create(tok(2), "", "Program", 0)

	if got := with.FullName(); got != "System.String" {
		t.Errorf("FullName() = %q", got)
	}
	if got := without.FullName(); got != "Program" {
		t.Errorf("FullName() = %q", got)
	}
}
