package loader

import (
	"github.com/dotmeta/dotmeta/heaps"
	"github.com/dotmeta/dotmeta/metadata"
	"github.com/dotmeta/dotmeta/types"
)

// Context is the shared mutable state every unit visits: the read-only
// input stream and heaps, one container per output table, and the type
// registry. Each unit writes only the container for its own table (and
// registers entities); it may read any container whose owning unit
// completed in an earlier level.
type Context struct {
	Stream *metadata.TableStream
	Heaps  *heaps.Set
	Types  *types.Registry

	Module   Cell[*Module]
	Assembly Cell[*Assembly]

	TypeDefs      *Table[*types.TypeDef]
	TypeRefs      *Table[*types.TypeDef]
	TypeSpecs     *Table[*types.TypeDef]
	ExportedTypes *Table[*types.TypeDef]

	Fields     *Table[*types.Field]
	Methods    *Table[*types.Method]
	Params     *Table[*types.Param]
	Properties *Table[*types.Property]
	Events     *Table[*types.Event]

	InterfaceImpls          *Table[*InterfaceImpl]
	MemberRefs              *Table[*MemberRef]
	Constants               *Table[*ConstantInfo]
	CustomAttributes        *Table[*CustomAttribute]
	FieldMarshals           *Table[*FieldMarshal]
	DeclSecurities          *Table[*DeclSecurity]
	FieldLayouts            *Table[*FieldLayout]
	StandAloneSigs          *Table[*StandAloneSig]
	MethodSemantics         *Table[*MethodSemantics]
	MethodImpls             *Table[*MethodImpl]
	ModuleRefs              *Table[*ModuleRef]
	ImplMaps                *Table[*ImplMap]
	FieldRVAs               *Table[*FieldRVA]
	AssemblyRefs            *Table[*AssemblyRef]
	Files                   *Table[*File]
	ManifestResources       *Table[*ManifestResource]
	GenericParams           *Table[*types.GenericParam]
	MethodSpecs             *Table[*MethodSpec]
	GenericParamConstraints *Table[*GenericParamConstraint]
}

// NewContext creates a load context over a stream and its heaps, with
// containers sized from the stream's row counts.
func NewContext(stream *metadata.TableStream, hs *heaps.Set) *Context {
	return &Context{
		Stream: stream,
		Heaps:  hs,
		Types:  types.NewRegistry(),

		TypeDefs:      NewTable[*types.TypeDef](len(stream.TypeDef)),
		TypeRefs:      NewTable[*types.TypeDef](len(stream.TypeRef)),
		TypeSpecs:     NewTable[*types.TypeDef](len(stream.TypeSpec)),
		ExportedTypes: NewTable[*types.TypeDef](len(stream.ExportedType)),

		Fields:     NewTable[*types.Field](len(stream.Field)),
		Methods:    NewTable[*types.Method](len(stream.MethodDef)),
		Params:     NewTable[*types.Param](len(stream.Param)),
		Properties: NewTable[*types.Property](len(stream.Property)),
		Events:     NewTable[*types.Event](len(stream.Event)),

		InterfaceImpls:          NewTable[*InterfaceImpl](len(stream.InterfaceImpl)),
		MemberRefs:              NewTable[*MemberRef](len(stream.MemberRef)),
		Constants:               NewTable[*ConstantInfo](len(stream.Constant)),
		CustomAttributes:        NewTable[*CustomAttribute](len(stream.CustomAttribute)),
		FieldMarshals:           NewTable[*FieldMarshal](len(stream.FieldMarshal)),
		DeclSecurities:          NewTable[*DeclSecurity](len(stream.DeclSecurity)),
		FieldLayouts:            NewTable[*FieldLayout](len(stream.FieldLayout)),
		StandAloneSigs:          NewTable[*StandAloneSig](len(stream.StandAloneSig)),
		MethodSemantics:         NewTable[*MethodSemantics](len(stream.MethodSemantics)),
		MethodImpls:             NewTable[*MethodImpl](len(stream.MethodImpl)),
		ModuleRefs:              NewTable[*ModuleRef](len(stream.ModuleRef)),
		ImplMaps:                NewTable[*ImplMap](len(stream.ImplMap)),
		FieldRVAs:               NewTable[*FieldRVA](len(stream.FieldRVA)),
		AssemblyRefs:            NewTable[*AssemblyRef](len(stream.AssemblyRef)),
		Files:                   NewTable[*File](len(stream.File)),
		ManifestResources:       NewTable[*ManifestResource](len(stream.ManifestResource)),
		GenericParams:           NewTable[*types.GenericParam](len(stream.GenericParam)),
		MethodSpecs:             NewTable[*MethodSpec](len(stream.MethodSpec)),
		GenericParamConstraints: NewTable[*GenericParamConstraint](len(stream.GenericParamConstraint)),
	}
}

// Resolve dispatches a coded index to the matching container and wraps
// the row in a tagged reference. An unrecognized table or a row absent
// from the target container yields NoRef, never an error: some
// references are legitimately optional and only the caller can judge.
func (c *Context) Resolve(ci metadata.CodedIndex) Ref {
	if ci.IsNil() {
		return NoRef
	}
	token := ci.Token()

	switch ci.Table {
	case metadata.TableTypeDef:
		if td, ok := c.TypeDefs.Get(ci.Row); ok {
			return Ref{Kind: RefTypeDef, Token: token, Value: td}
		}
	case metadata.TableTypeRef:
		if td, ok := c.TypeRefs.Get(ci.Row); ok {
			return Ref{Kind: RefTypeRef, Token: token, Value: td}
		}
	case metadata.TableTypeSpec:
		if td, ok := c.TypeSpecs.Get(ci.Row); ok {
			return Ref{Kind: RefTypeSpec, Token: token, Value: td}
		}
	case metadata.TableExportedType:
		if td, ok := c.ExportedTypes.Get(ci.Row); ok {
			return Ref{Kind: RefExportedType, Token: token, Value: td}
		}
	case metadata.TableMethodDef:
		if m, ok := c.Methods.Get(ci.Row); ok {
			return Ref{Kind: RefMethodDef, Token: token, Value: m}
		}
	case metadata.TableMemberRef:
		if m, ok := c.MemberRefs.Get(ci.Row); ok {
			return Ref{Kind: RefMemberRef, Token: token, Value: m}
		}
	case metadata.TableField:
		if f, ok := c.Fields.Get(ci.Row); ok {
			return Ref{Kind: RefField, Token: token, Value: f}
		}
	case metadata.TableParam:
		if p, ok := c.Params.Get(ci.Row); ok {
			return Ref{Kind: RefParam, Token: token, Value: p}
		}
	case metadata.TableProperty:
		if p, ok := c.Properties.Get(ci.Row); ok {
			return Ref{Kind: RefProperty, Token: token, Value: p}
		}
	case metadata.TableEvent:
		if e, ok := c.Events.Get(ci.Row); ok {
			return Ref{Kind: RefEvent, Token: token, Value: e}
		}
	case metadata.TableInterfaceImpl:
		if ii, ok := c.InterfaceImpls.Get(ci.Row); ok {
			return Ref{Kind: RefInterfaceImpl, Token: token, Value: ii}
		}
	case metadata.TableModule:
		if m, ok := c.Module.Get(); ok && ci.Row == 1 {
			return Ref{Kind: RefModule, Token: token, Value: m}
		}
	case metadata.TableModuleRef:
		if m, ok := c.ModuleRefs.Get(ci.Row); ok {
			return Ref{Kind: RefModuleRef, Token: token, Value: m}
		}
	case metadata.TableAssembly:
		if a, ok := c.Assembly.Get(); ok && ci.Row == 1 {
			return Ref{Kind: RefAssembly, Token: token, Value: a}
		}
	case metadata.TableAssemblyRef:
		if a, ok := c.AssemblyRefs.Get(ci.Row); ok {
			return Ref{Kind: RefAssemblyRef, Token: token, Value: a}
		}
	case metadata.TableFile:
		if f, ok := c.Files.Get(ci.Row); ok {
			return Ref{Kind: RefFile, Token: token, Value: f}
		}
	case metadata.TableGenericParam:
		if p, ok := c.GenericParams.Get(ci.Row); ok {
			return Ref{Kind: RefGenericParam, Token: token, Value: p}
		}
	case metadata.TableGenericParamConstraint:
		if gc, ok := c.GenericParamConstraints.Get(ci.Row); ok {
			return Ref{Kind: RefGenericParamConstraint, Token: token, Value: gc}
		}
	case metadata.TableMethodSpec:
		if ms, ok := c.MethodSpecs.Get(ci.Row); ok {
			return Ref{Kind: RefMethodSpec, Token: token, Value: ms}
		}
	case metadata.TableDeclSecurity:
		if ds, ok := c.DeclSecurities.Get(ci.Row); ok {
			return Ref{Kind: RefDeclSecurity, Token: token, Value: ds}
		}
	case metadata.TableStandAloneSig:
		if s, ok := c.StandAloneSigs.Get(ci.Row); ok {
			return Ref{Kind: RefStandAloneSig, Token: token, Value: s}
		}
	}

	return NoRef
}
