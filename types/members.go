package types

import "github.com/dotmeta/dotmeta/metadata"

// Member model attached to TypeDef entities by the loader's enrichment
// passes. Members are immutable after attachment except for the small
// write-once links noted per field.

// Field is one field of a type.
type Field struct {
	Token     metadata.Token
	Name      string
	Flags     uint16
	Signature []byte

	constant cell[Constant]
}

// SetConstant attaches the field's compile-time constant. First write wins.
func (f *Field) SetConstant(c Constant) bool {
	return f.constant.Set(c)
}

// Constant returns the field's constant, if any.
func (f *Field) Constant() (Constant, bool) {
	return f.constant.Get()
}

// Constant is a compile-time constant value with its element type.
type Constant struct {
	Type  ElementType
	Value []byte
}

// Method is one method of a type.
type Method struct {
	Token     metadata.Token
	Name      string
	Flags     uint16
	ImplFlags uint16
	RVA       uint32
	Signature []byte
	Params    []Param
}

// Param is one parameter of a method.
type Param struct {
	Token    metadata.Token
	Name     string
	Flags    uint16
	Sequence uint16
}

// Property is one property of a type.
type Property struct {
	Token metadata.Token
	Name  string
	Flags uint16
	Type  []byte
}

// Event is one event of a type.
type Event struct {
	Token     metadata.Token
	Name      string
	Flags     uint16
	EventType metadata.Token
}

// GenericParam is one generic parameter of a type.
type GenericParam struct {
	Token       metadata.Token
	Name        string
	Number      uint16
	Flags       uint16
	Constraints []metadata.Token
}

// SecurityDecl is one declarative-security permission set of a type.
type SecurityDecl struct {
	Action        uint16
	PermissionSet []byte
}

// Layout is the explicit layout of a type from its class-layout row.
type Layout struct {
	PackingSize uint16
	ClassSize   uint32
}
