package types

import "github.com/dotmeta/dotmeta/metadata"

// elementType returns the element-type code when the type is one of the
// system namespace's primitives with a code of its own.
func (t *TypeDef) elementType() (ElementType, bool) {
	if t.namespace != SystemNamespace {
		return ElemEnd, false
	}
	et, ok := primitiveElems[t.name]
	if !ok || et == ElemEnd {
		return ElemEnd, false
	}
	return et, true
}

// IsCompatibleWith reports whether a value of this type may occupy a slot
// of the target type: exact token or full-name identity, primitive
// widening, assignability to the object root, base-chain subtyping, or
// interface implementation.
func (t *TypeDef) IsCompatibleWith(target *TypeDef) bool {
	if target == nil {
		return false
	}
	if t.token == target.token {
		return true
	}
	if t.namespace == target.namespace && t.name == target.name {
		return true
	}
	return t.assignableTo(target)
}

func (t *TypeDef) assignableTo(target *TypeDef) bool {
	// Primitive to primitive: widening rules.
	if from, ok := t.elementType(); ok {
		if to, ok := target.elementType(); ok {
			return widensTo(from, to)
		}
	}

	// Any reference-kind type is assignable to the object root.
	if target.namespace == SystemNamespace && target.name == "Object" {
		if t.Kind().IsReference() {
			return true
		}
	}

	// Walk the base chain for a subtype match.
	seen := map[metadata.Token]bool{t.token: true}
	for base, ok := t.Base(); ok; base, ok = base.Base() {
		if seen[base.token] {
			break
		}
		seen[base.token] = true

		if base.token == target.token {
			return true
		}
		if base.namespace == target.namespace && base.name == target.name {
			return true
		}
	}

	// Walk the implemented-interface set for an interface match.
	if target.Kind() == KindInterface {
		return t.implementsInterface(target, map[metadata.Token]bool{})
	}

	return false
}

// implementsInterface searches the type's interface list, recursing into
// interface entities and the base type's interfaces. The visited set
// terminates a search through a graph that may contain mutual references.
func (t *TypeDef) implementsInterface(target *TypeDef, visited map[metadata.Token]bool) bool {
	if visited[t.token] {
		return false
	}
	visited[t.token] = true

	for _, tok := range t.Interfaces() {
		if tok == target.token {
			return true
		}
		iface, ok := t.reg.Lookup(tok)
		if !ok {
			continue
		}
		if iface.namespace == target.namespace && iface.name == target.name {
			return true
		}
		if iface.implementsInterface(target, visited) {
			return true
		}
	}

	if base, ok := t.Base(); ok {
		return base.implementsInterface(target, visited)
	}
	return false
}

// AcceptsConstant reports whether a constant of the given element type
// may initialize a slot of this type. The constant is mapped to its own
// kind and the kind-to-kind compatibility rule is reused.
func (t *TypeDef) AcceptsConstant(c Constant) bool {
	switch c.Type {
	case ElemString:
		return t.Kind() == KindString ||
			(t.namespace == SystemNamespace && t.name == "Object")
	case ElemClass, ElemObject:
		// Null reference constants: any reference kind accepts them.
		return t.Kind().IsReference()
	}

	if to, ok := t.elementType(); ok {
		return widensTo(c.Type, to)
	}

	// Enums accept constants of their underlying primitive width.
	if t.Kind() == KindValueType {
		switch c.Type {
		case ElemBoolean, ElemChar, ElemI1, ElemU1, ElemI2, ElemU2,
			ElemI4, ElemU4, ElemI8, ElemU8:
			return true
		}
	}

	return false
}
