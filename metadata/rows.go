package metadata

import "github.com/google/uuid"

// Row structures for every metadata table. Rows arrive from the physical
// parser with fixed-target references already widened to 1-based row ids,
// ambiguous references decoded to CodedIndex, and heap-valued columns as
// offsets into the owning heap.

// ModuleRow is the one-and-only row of the Module table.
type ModuleRow struct {
	Generation uint16
	Name       uint32 // strings heap
	Mvid       uint32 // GUID heap, 1-based
	EncID      uint32 // GUID heap
	EncBaseID  uint32 // GUID heap
}

// TypeRefRow references a type defined in another scope.
type TypeRefRow struct {
	ResolutionScope CodedIndex
	Name            uint32 // strings heap
	Namespace       uint32 // strings heap
}

// TypeDefRow defines a type in this module. FieldList and MethodList are
// the starts of the owned ranges; the range ends at the next row's start
// (or the end of the target table for the last row).
type TypeDefRow struct {
	Flags      uint32
	Name       uint32 // strings heap
	Namespace  uint32 // strings heap
	Extends    CodedIndex
	FieldList  uint32
	MethodList uint32
}

// FieldPtrRow indirects field ordering in edit-and-continue images.
type FieldPtrRow struct {
	Field uint32
}

// FieldRow defines a field of a type.
type FieldRow struct {
	Flags     uint16
	Name      uint32 // strings heap
	Signature uint32 // blob heap
}

// MethodPtrRow indirects method ordering in edit-and-continue images.
type MethodPtrRow struct {
	Method uint32
}

// MethodDefRow defines a method of a type. ParamList follows the same
// range convention as TypeDefRow.
type MethodDefRow struct {
	RVA       uint32
	ImplFlags uint16
	Flags     uint16
	Name      uint32 // strings heap
	Signature uint32 // blob heap
	ParamList uint32
}

// ParamPtrRow indirects parameter ordering in edit-and-continue images.
type ParamPtrRow struct {
	Param uint32
}

// ParamRow defines a parameter of a method.
type ParamRow struct {
	Flags    uint16
	Sequence uint16
	Name     uint32 // strings heap
}

// InterfaceImplRow records that a type implements an interface.
type InterfaceImplRow struct {
	Class     uint32 // TypeDef rid
	Interface CodedIndex
}

// MemberRefRow references a field or method of another type.
type MemberRefRow struct {
	Class     CodedIndex
	Name      uint32 // strings heap
	Signature uint32 // blob heap
}

// ConstantRow attaches a compile-time constant to a field, parameter, or
// property. Type holds the element-type code of the value.
type ConstantRow struct {
	Type   uint8
	Parent CodedIndex
	Value  uint32 // blob heap
}

// CustomAttributeRow attaches an attribute blob to any metadata entity.
type CustomAttributeRow struct {
	Parent CodedIndex
	Type   CodedIndex
	Value  uint32 // blob heap
}

// FieldMarshalRow attaches marshalling info to a field or parameter.
type FieldMarshalRow struct {
	Parent     CodedIndex
	NativeType uint32 // blob heap
}

// DeclSecurityRow attaches a declarative-security permission set.
type DeclSecurityRow struct {
	Action        uint16
	Parent        CodedIndex
	PermissionSet uint32 // blob heap
}

// ClassLayoutRow fixes the packing and size of a type.
type ClassLayoutRow struct {
	PackingSize uint16
	ClassSize   uint32
	Parent      uint32 // TypeDef rid
}

// FieldLayoutRow fixes the byte offset of a field in an explicit layout.
type FieldLayoutRow struct {
	Offset uint32
	Field  uint32 // Field rid
}

// StandAloneSigRow holds a signature not attached to any other entity.
type StandAloneSigRow struct {
	Signature uint32 // blob heap
}

// EventMapRow maps a type to its range of events.
type EventMapRow struct {
	Parent    uint32 // TypeDef rid
	EventList uint32
}

// EventPtrRow indirects event ordering in edit-and-continue images.
type EventPtrRow struct {
	Event uint32
}

// EventRow defines an event of a type.
type EventRow struct {
	Flags     uint16
	Name      uint32 // strings heap
	EventType CodedIndex
}

// PropertyMapRow maps a type to its range of properties.
type PropertyMapRow struct {
	Parent       uint32 // TypeDef rid
	PropertyList uint32
}

// PropertyPtrRow indirects property ordering in edit-and-continue images.
type PropertyPtrRow struct {
	Property uint32
}

// PropertyRow defines a property of a type.
type PropertyRow struct {
	Flags uint16
	Name  uint32 // strings heap
	Type  uint32 // blob heap
}

// MethodSemanticsRow associates a method with the event or property it
// implements an accessor for.
type MethodSemanticsRow struct {
	Semantics   uint16
	Method      uint32 // MethodDef rid
	Association CodedIndex
}

// MethodImplRow overrides an inherited method slot.
type MethodImplRow struct {
	Class             uint32 // TypeDef rid
	MethodBody        CodedIndex
	MethodDeclaration CodedIndex
}

// ModuleRefRow references another module of this assembly.
type ModuleRefRow struct {
	Name uint32 // strings heap
}

// TypeSpecRow instantiates a type from a signature blob.
type TypeSpecRow struct {
	Signature uint32 // blob heap
}

// ImplMapRow binds a method to an unmanaged import.
type ImplMapRow struct {
	MappingFlags    uint16
	MemberForwarded CodedIndex
	ImportName      uint32 // strings heap
	ImportScope     uint32 // ModuleRef rid
}

// FieldRVARow gives a field a mapped initial-value location.
type FieldRVARow struct {
	RVA   uint32
	Field uint32 // Field rid
}

// ENCLogRow records an edit-and-continue operation.
type ENCLogRow struct {
	Token    uint32
	FuncCode uint32
}

// ENCMapRow remaps a token after edit-and-continue.
type ENCMapRow struct {
	Token uint32
}

// AssemblyRow is the one-and-only manifest row of the assembly.
type AssemblyRow struct {
	HashAlgID      uint32
	MajorVersion   uint16
	MinorVersion   uint16
	BuildNumber    uint16
	RevisionNumber uint16
	Flags          uint32
	PublicKey      uint32 // blob heap
	Name           uint32 // strings heap
	Culture        uint32 // strings heap
}

// AssemblyProcessorRow is retained by the format but always ignored.
type AssemblyProcessorRow struct {
	Processor uint32
}

// AssemblyOSRow is retained by the format but always ignored.
type AssemblyOSRow struct {
	OSPlatformID   uint32
	OSMajorVersion uint32
	OSMinorVersion uint32
}

// AssemblyRefRow references another assembly.
type AssemblyRefRow struct {
	MajorVersion     uint16
	MinorVersion     uint16
	BuildNumber      uint16
	RevisionNumber   uint16
	Flags            uint32
	PublicKeyOrToken uint32 // blob heap
	Name             uint32 // strings heap
	Culture          uint32 // strings heap
	HashValue        uint32 // blob heap
}

// AssemblyRefProcessorRow is retained by the format but always ignored.
type AssemblyRefProcessorRow struct {
	Processor   uint32
	AssemblyRef uint32
}

// AssemblyRefOSRow is retained by the format but always ignored.
type AssemblyRefOSRow struct {
	OSPlatformID   uint32
	OSMajorVersion uint32
	OSMinorVersion uint32
	AssemblyRef    uint32
}

// FileRow references a file of this assembly.
type FileRow struct {
	Flags     uint32
	Name      uint32 // strings heap
	HashValue uint32 // blob heap
}

// ExportedTypeRow re-exports a type defined in another module or assembly.
type ExportedTypeRow struct {
	Flags          uint32
	TypeDefID      uint32
	TypeName       uint32 // strings heap
	TypeNamespace  uint32 // strings heap
	Implementation CodedIndex
}

// ManifestResourceRow names a resource of this assembly.
type ManifestResourceRow struct {
	Offset         uint32
	Flags          uint32
	Name           uint32 // strings heap
	Implementation CodedIndex
}

// NestedClassRow records that one type is nested inside another.
type NestedClassRow struct {
	NestedClass    uint32 // TypeDef rid
	EnclosingClass uint32 // TypeDef rid
}

// GenericParamRow defines a generic parameter of a type or method.
type GenericParamRow struct {
	Number uint16
	Flags  uint16
	Owner  CodedIndex
	Name   uint32 // strings heap
}

// MethodSpecRow instantiates a generic method.
type MethodSpecRow struct {
	Method        CodedIndex
	Instantiation uint32 // blob heap
}

// GenericParamConstraintRow constrains a generic parameter.
type GenericParamConstraintRow struct {
	Owner      uint32 // GenericParam rid
	Constraint CodedIndex
}

// Portable debug tables.

// DocumentRow names a source document in the portable debug stream.
type DocumentRow struct {
	Name          uint32 // blob heap
	HashAlgorithm uuid.UUID
	Hash          uint32 // blob heap
	Language      uuid.UUID
}

// MethodDebugInformationRow carries sequence points for a method.
type MethodDebugInformationRow struct {
	Document       uint32 // Document rid
	SequencePoints uint32 // blob heap
}

// LocalScopeRow delimits a lexical scope of a method body.
type LocalScopeRow struct {
	Method         uint32 // MethodDef rid
	ImportScope    uint32 // ImportScope rid
	VariableList   uint32
	ConstantList   uint32
	StartOffset    uint32
	Length         uint32
}

// LocalVariableRow defines a local variable of a scope.
type LocalVariableRow struct {
	Attributes uint16
	Index      uint16
	Name       uint32 // strings heap
}

// LocalConstantRow defines a local constant of a scope.
type LocalConstantRow struct {
	Name      uint32 // strings heap
	Signature uint32 // blob heap
}

// ImportScopeRow chains namespace imports visible in a scope.
type ImportScopeRow struct {
	Parent  uint32 // ImportScope rid
	Imports uint32 // blob heap
}

// StateMachineMethodRow links a state-machine MoveNext to its kickoff.
type StateMachineMethodRow struct {
	MoveNextMethod uint32 // MethodDef rid
	KickoffMethod  uint32 // MethodDef rid
}

// CustomDebugInformationRow attaches custom debug blobs to any entity.
type CustomDebugInformationRow struct {
	Parent CodedIndex
	Kind   uuid.UUID
	Value  uint32 // blob heap
}
