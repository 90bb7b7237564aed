package types

import "testing"

func TestIsCompatibleWith_Reflexive(t *testing.T) {
	reg := NewRegistry()
	td := reg.Create(tok(1), "My.Ns", "Widget", 0)

	if !td.IsCompatibleWith(td) {
		t.Error("a type must be compatible with itself")
	}
}

func TestIsCompatibleWith_NameIdentity(t *testing.T) {
	reg := NewRegistry()
	// Same full name under different tokens: a local definition and an
	// external reference to the same type.
	a := reg.Create(tok(1), "System", "Uri", 0)
	b := reg.Create(tok(2), "System", "Uri", 0)

	if !a.IsCompatibleWith(b) {
		t.Error("exact namespace+name match must be compatible")
	}
}

func TestIsCompatibleWith_TransitiveSubtyping(t *testing.T) {
	reg := NewRegistry()
	c := reg.Create(tok(1), "My.Ns", "C", 0)
	b := reg.Create(tok(2), "My.Ns", "B", 0)
	a := reg.Create(tok(3), "My.Ns", "A", 0)
	b.SetBase(c.Token())
	a.SetBase(b.Token())

	if !a.IsCompatibleWith(b) {
		t.Error("direct subtype must be compatible")
	}
	if !a.IsCompatibleWith(c) {
		t.Error("transitive subtype must be compatible")
	}
	if c.IsCompatibleWith(a) {
		t.Error("supertype must not be compatible with its subtype")
	}
}

func TestIsCompatibleWith_ObjectRoot(t *testing.T) {
	reg := NewRegistry()
	object := reg.Create(tok(1), "System", "Object", 0)
	widget := reg.Create(tok(2), "My.Ns", "Widget", 0)
	iface := reg.Create(tok(3), "My.Ns", "IRun", AttrInterface)

	enumRoot := reg.Create(tok(4), "System", "Enum", 0)
	color := reg.Create(tok(5), "My.Ns", "Color", 0)
	color.SetBase(enumRoot.Token())

	if !widget.IsCompatibleWith(object) {
		t.Error("a class must be assignable to the object root")
	}
	if !iface.IsCompatibleWith(object) {
		t.Error("an interface must be assignable to the object root")
	}
	if color.IsCompatibleWith(object) {
		t.Error("a value type is not directly assignable to the object root")
	}
}

func TestIsCompatibleWith_PrimitiveWidening(t *testing.T) {
	reg := NewRegistry()
	i1 := reg.Create(tok(1), "System", "SByte", 0)
	i4 := reg.Create(tok(2), "System", "Int32", 0)
	u4 := reg.Create(tok(3), "System", "UInt32", 0)
	r8 := reg.Create(tok(4), "System", "Double", 0)

	if !i1.IsCompatibleWith(i4) {
		t.Error("SByte must widen to Int32")
	}
	if !i4.IsCompatibleWith(r8) {
		t.Error("Int32 must widen to Double")
	}
	if i1.IsCompatibleWith(u4) {
		t.Error("SByte must not widen to UInt32")
	}
	if i4.IsCompatibleWith(i1) {
		t.Error("narrowing must not be compatible")
	}
}

func TestIsCompatibleWith_InterfaceWalk(t *testing.T) {
	reg := NewRegistry()
	iRun := reg.Create(tok(1), "My.Ns", "IRun", AttrInterface)
	iFast := reg.Create(tok(2), "My.Ns", "IFast", AttrInterface)
	iFast.AddInterface(iRun.Token())

	base := reg.Create(tok(3), "My.Ns", "Animal", 0)
	base.AddInterface(iFast.Token())

	dog := reg.Create(tok(4), "My.Ns", "Dog", 0)
	dog.SetBase(base.Token())

	if !base.IsCompatibleWith(iFast) {
		t.Error("directly implemented interface must be compatible")
	}
	if !base.IsCompatibleWith(iRun) {
		t.Error("interface inherited through another interface must be compatible")
	}
	if !dog.IsCompatibleWith(iRun) {
		t.Error("interface implemented by the base type must be compatible")
	}
}

func TestIsCompatibleWith_CyclicInterfaceGraphTerminates(t *testing.T) {
	reg := NewRegistry()
	a := reg.Create(tok(1), "My.Ns", "IA", AttrInterface)
	b := reg.Create(tok(2), "My.Ns", "IB", AttrInterface)
	a.AddInterface(b.Token())
	b.AddInterface(a.Token())
	other := reg.Create(tok(3), "My.Ns", "IOther", AttrInterface)

	if a.IsCompatibleWith(other) {
		t.Error("unrelated interface must not be compatible")
	}
}

func TestIsCompatibleWith_Nil(t *testing.T) {
	reg := NewRegistry()
	td := reg.Create(tok(1), "My.Ns", "A", 0)
	if td.IsCompatibleWith(nil) {
		t.Error("nil target must not be compatible")
	}
}

func TestAcceptsConstant(t *testing.T) {
	reg := NewRegistry()
	i4 := reg.Create(tok(1), "System", "Int32", 0)
	i8 := reg.Create(tok(2), "System", "Int64", 0)
	str := reg.Create(tok(3), "System", "String", 0)
	widget := reg.Create(tok(4), "My.Ns", "Widget", 0)

	enumRoot := reg.Create(tok(5), "System", "Enum", 0)
	color := reg.Create(tok(6), "My.Ns", "Color", 0)
	color.SetBase(enumRoot.Token())

	tests := []struct {
		name   string
		target *TypeDef
		c      Constant
		want   bool
	}{
		{"i4 into i4", i4, Constant{Type: ElemI4}, true},
		{"i4 into i8", i8, Constant{Type: ElemI4}, true},
		{"i8 into i4", i4, Constant{Type: ElemI8}, false},
		{"string into string", str, Constant{Type: ElemString}, true},
		{"string into class", widget, Constant{Type: ElemString}, false},
		{"null into class", widget, Constant{Type: ElemClass}, true},
		{"i4 into enum", color, Constant{Type: ElemI4}, true},
		{"string into enum", color, Constant{Type: ElemString}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.target.AcceptsConstant(tt.c); got != tt.want {
				t.Errorf("AcceptsConstant(%v) = %v, want %v", tt.c.Type, got, tt.want)
			}
		})
	}
}
