package metadata

// CodedIndex is a decoded cross-table reference: a field that the format
// allows to point into one of several tables, disambiguated by an encoded
// tag. The zero CodedIndex (row 0) is the nil reference.
type CodedIndex struct {
	Table TableID
	Row   uint32
}

// IsNil reports whether the index refers to no row.
func (c CodedIndex) IsNil() bool {
	return c.Row == 0
}

// Token converts the index into a token.
func (c CodedIndex) Token() Token {
	return NewToken(c.Table, c.Row)
}

// CodedIndexKind names one of the coded-index encodings defined by the
// format. Each kind fixes the set of target tables and the number of tag
// bits stolen from the low end of the encoded value.
type CodedIndexKind uint8

const (
	TypeDefOrRef CodedIndexKind = iota
	HasConstant
	HasCustomAttribute
	HasFieldMarshal
	HasDeclSecurity
	MemberRefParent
	HasSemantics
	MethodDefOrRef
	MemberForwarded
	Implementation
	CustomAttributeType
	ResolutionScope
	TypeOrMethodDef
)

// codedTables maps each kind to its target tables, indexed by tag value.
// TableNone marks tag values the format reserves but does not assign.
var codedTables = [...][]TableID{
	TypeDefOrRef:    {TableTypeDef, TableTypeRef, TableTypeSpec},
	HasConstant:     {TableField, TableParam, TableProperty},
	HasCustomAttribute: {
		TableMethodDef, TableField, TableTypeRef, TableTypeDef, TableParam,
		TableInterfaceImpl, TableMemberRef, TableModule, TableDeclSecurity,
		TableProperty, TableEvent, TableStandAloneSig, TableModuleRef,
		TableTypeSpec, TableAssembly, TableAssemblyRef, TableFile,
		TableExportedType, TableManifestResource, TableGenericParam,
		TableGenericParamConstraint, TableMethodSpec,
	},
	HasFieldMarshal: {TableField, TableParam},
	HasDeclSecurity: {TableTypeDef, TableMethodDef, TableAssembly},
	MemberRefParent: {TableTypeDef, TableTypeRef, TableModuleRef, TableMethodDef, TableTypeSpec},
	HasSemantics:    {TableEvent, TableProperty},
	MethodDefOrRef:  {TableMethodDef, TableMemberRef},
	MemberForwarded: {TableField, TableMethodDef},
	Implementation:  {TableFile, TableAssemblyRef, TableExportedType},
	CustomAttributeType: {
		TableNone, TableNone, TableMethodDef, TableMemberRef, TableNone,
	},
	ResolutionScope: {TableModule, TableModuleRef, TableAssemblyRef, TableTypeRef},
	TypeOrMethodDef: {TableTypeDef, TableMethodDef},
}

// tagBits returns the number of low bits the encoding steals for the tag.
func (k CodedIndexKind) tagBits() uint {
	n := len(codedTables[k])
	bits := uint(0)
	for 1<<bits < n {
		bits++
	}
	return bits
}

// Tables returns the target tables of the kind, indexed by tag value.
func (k CodedIndexKind) Tables() []TableID {
	return codedTables[k]
}

// Decode splits a raw encoded value into its target table and row id.
// A reserved tag or a zero row decodes to the nil CodedIndex.
func (k CodedIndexKind) Decode(raw uint32) CodedIndex {
	tables := codedTables[k]
	bits := k.tagBits()
	tag := raw & (1<<bits - 1)
	row := raw >> bits

	if int(tag) >= len(tables) || tables[tag] == TableNone || row == 0 {
		return CodedIndex{}
	}
	return CodedIndex{Table: tables[tag], Row: row}
}
