package loader

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/dotmeta/dotmeta/metadata"
	"github.com/dotmeta/dotmeta/types"
)

// Resolved entities for the tables that do not feed the type registry.
// All are immutable after their owning unit's level completes.

// Version is the 4-part version number of an assembly.
type Version struct {
	Major    uint16
	Minor    uint16
	Build    uint16
	Revision uint16
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Build, v.Revision)
}

// Module is the resolved one-and-only module row.
type Module struct {
	Token      metadata.Token
	Generation uint16
	Name       string
	Mvid       uuid.UUID
}

// Assembly is the resolved manifest row of the assembly.
type Assembly struct {
	Token     metadata.Token
	Name      string
	Culture   string
	Version   Version
	Flags     uint32
	HashAlgID uint32
	PublicKey []byte

	// Security is appended by the declarative-security pass, which runs
	// in a level after the assembly unit.
	Security []types.SecurityDecl
}

// AssemblyRef is a resolved reference to another assembly.
type AssemblyRef struct {
	Token            metadata.Token
	Name             string
	Culture          string
	Version          Version
	Flags            uint32
	PublicKeyOrToken []byte
	Hash             []byte
}

// ModuleRef is a resolved reference to another module.
type ModuleRef struct {
	Token metadata.Token
	Name  string
}

// File is a resolved file reference of the assembly.
type File struct {
	Token metadata.Token
	Name  string
	Flags uint32
	Hash  []byte
}

// MemberRef is a resolved reference to a field or method of another type.
type MemberRef struct {
	Token     metadata.Token
	Class     metadata.CodedIndex
	Name      string
	Signature []byte
}

// InterfaceImpl records that a type implements an interface.
type InterfaceImpl struct {
	Token     metadata.Token
	Class     metadata.Token
	Interface metadata.Token
}

// ConstantInfo is a constant attached to a field, parameter, or property.
type ConstantInfo struct {
	Token  metadata.Token
	Parent metadata.Token
	Value  types.Constant
}

// CustomAttribute attaches an encoded attribute blob to a parent entity.
type CustomAttribute struct {
	Token  metadata.Token
	Parent metadata.Token
	Ctor   metadata.Token
	Value  []byte
}

// FieldMarshal attaches marshalling info to a field or parameter.
type FieldMarshal struct {
	Token      metadata.Token
	Parent     metadata.Token
	NativeType []byte
}

// DeclSecurity is a declarative-security permission set with its parent.
type DeclSecurity struct {
	Token         metadata.Token
	Parent        metadata.Token
	Action        uint16
	PermissionSet []byte
}

// FieldLayout fixes the byte offset of a field.
type FieldLayout struct {
	Field  metadata.Token
	Offset uint32
}

// MethodSemantics associates an accessor method with an event or property.
type MethodSemantics struct {
	Token       metadata.Token
	Semantics   uint16
	Method      metadata.Token
	Association metadata.Token
}

// MethodImpl overrides an inherited method slot.
type MethodImpl struct {
	Token       metadata.Token
	Class       metadata.Token
	Body        metadata.Token
	Declaration metadata.Token
}

// ImplMap binds a method to an unmanaged import.
type ImplMap struct {
	Token      metadata.Token
	Flags      uint16
	Forwarded  metadata.Token
	ImportName string
	Scope      metadata.Token
}

// FieldRVA gives a field a mapped initial-value location.
type FieldRVA struct {
	Field metadata.Token
	RVA   uint32
}

// MethodSpec is a generic-method instantiation.
type MethodSpec struct {
	Token         metadata.Token
	Method        metadata.Token
	Instantiation []byte
}

// StandAloneSig is a signature not attached to any other entity.
type StandAloneSig struct {
	Token     metadata.Token
	Signature []byte
}

// ManifestResource names a resource of the assembly.
type ManifestResource struct {
	Token          metadata.Token
	Name           string
	Offset         uint32
	Flags          uint32
	Implementation metadata.Token
}

// ExportedType entities live in the type registry; the container simply
// indexes them by row id, like the TypeDef and TypeRef containers.

// GenericParamConstraint constrains a generic parameter.
type GenericParamConstraint struct {
	Token      metadata.Token
	Owner      metadata.Token
	Constraint metadata.Token
}
