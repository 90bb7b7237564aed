package loader

import (
	"github.com/dotmeta/dotmeta/metadata"
	"github.com/dotmeta/dotmeta/types"
)

// RefKind tags the table a resolved reference points into.
type RefKind uint8

const (
	RefNone RefKind = iota
	RefTypeDef
	RefTypeRef
	RefTypeSpec
	RefMethodDef
	RefMemberRef
	RefField
	RefParam
	RefProperty
	RefEvent
	RefInterfaceImpl
	RefModule
	RefModuleRef
	RefAssembly
	RefAssemblyRef
	RefFile
	RefExportedType
	RefGenericParam
	RefGenericParamConstraint
	RefMethodSpec
	RefDeclSecurity
	RefStandAloneSig
)

var refKindNames = [...]string{
	RefNone:                   "none",
	RefTypeDef:                "typedef",
	RefTypeRef:                "typeref",
	RefTypeSpec:               "typespec",
	RefMethodDef:              "method",
	RefMemberRef:              "memberref",
	RefField:                  "field",
	RefParam:                  "param",
	RefProperty:               "property",
	RefEvent:                  "event",
	RefInterfaceImpl:          "interfaceimpl",
	RefModule:                 "module",
	RefModuleRef:              "moduleref",
	RefAssembly:               "assembly",
	RefAssemblyRef:            "assemblyref",
	RefFile:                   "file",
	RefExportedType:           "exportedtype",
	RefGenericParam:           "genericparam",
	RefGenericParamConstraint: "genericparamconstraint",
	RefMethodSpec:             "methodspec",
	RefDeclSecurity:           "declsecurity",
	RefStandAloneSig:          "standalonesig",
}

func (k RefKind) String() string {
	if int(k) < len(refKindNames) {
		return refKindNames[k]
	}
	return "unknown"
}

// Ref is a uniform tagged reference produced by resolution. The zero Ref
// is NoRef, the explicit "no reference" value: whether an absent
// reference is tolerable is the calling unit's decision, never the
// resolver's.
type Ref struct {
	Kind  RefKind
	Token metadata.Token
	Value any
}

// NoRef is the explicit absent reference.
var NoRef = Ref{}

// IsNil reports whether the reference resolved to nothing.
func (r Ref) IsNil() bool {
	return r.Kind == RefNone
}

// Type returns the referenced type entity for the three type-shaped
// reference kinds (local definition, external reference, instantiation,
// and re-export).
func (r Ref) Type() (*types.TypeDef, bool) {
	switch r.Kind {
	case RefTypeDef, RefTypeRef, RefTypeSpec, RefExportedType:
		td, ok := r.Value.(*types.TypeDef)
		return td, ok
	default:
		return nil, false
	}
}

// Method returns the referenced method entity.
func (r Ref) Method() (*types.Method, bool) {
	m, ok := r.Value.(*types.Method)
	return m, ok
}

// Field returns the referenced field entity.
func (r Ref) Field() (*types.Field, bool) {
	f, ok := r.Value.(*types.Field)
	return f, ok
}

// Member returns the referenced member-reference entry.
func (r Ref) Member() (*MemberRef, bool) {
	m, ok := r.Value.(*MemberRef)
	return m, ok
}
