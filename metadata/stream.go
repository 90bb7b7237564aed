package metadata

// TableStream is the parsed table-stream view handed to the loader by the
// physical parser. Each slice holds the already-decoded rows of one table
// in row order (index 0 is row id 1). The loader treats the stream as
// read-only.
type TableStream struct {
	Module                 []ModuleRow
	TypeRef                []TypeRefRow
	TypeDef                []TypeDefRow
	FieldPtr               []FieldPtrRow
	Field                  []FieldRow
	MethodPtr              []MethodPtrRow
	MethodDef              []MethodDefRow
	ParamPtr               []ParamPtrRow
	Param                  []ParamRow
	InterfaceImpl          []InterfaceImplRow
	MemberRef              []MemberRefRow
	Constant               []ConstantRow
	CustomAttribute        []CustomAttributeRow
	FieldMarshal           []FieldMarshalRow
	DeclSecurity           []DeclSecurityRow
	ClassLayout            []ClassLayoutRow
	FieldLayout            []FieldLayoutRow
	StandAloneSig          []StandAloneSigRow
	EventMap               []EventMapRow
	EventPtr               []EventPtrRow
	Event                  []EventRow
	PropertyMap            []PropertyMapRow
	PropertyPtr            []PropertyPtrRow
	Property               []PropertyRow
	MethodSemantics        []MethodSemanticsRow
	MethodImpl             []MethodImplRow
	ModuleRef              []ModuleRefRow
	TypeSpec               []TypeSpecRow
	ImplMap                []ImplMapRow
	FieldRVA               []FieldRVARow
	ENCLog                 []ENCLogRow
	ENCMap                 []ENCMapRow
	Assembly               []AssemblyRow
	AssemblyProcessor      []AssemblyProcessorRow
	AssemblyOS             []AssemblyOSRow
	AssemblyRef            []AssemblyRefRow
	AssemblyRefProcessor   []AssemblyRefProcessorRow
	AssemblyRefOS          []AssemblyRefOSRow
	File                   []FileRow
	ExportedType           []ExportedTypeRow
	ManifestResource       []ManifestResourceRow
	NestedClass            []NestedClassRow
	GenericParam           []GenericParamRow
	MethodSpec             []MethodSpecRow
	GenericParamConstraint []GenericParamConstraintRow
	Document               []DocumentRow
	MethodDebugInformation []MethodDebugInformationRow
	LocalScope             []LocalScopeRow
	LocalVariable          []LocalVariableRow
	LocalConstant          []LocalConstantRow
	ImportScope            []ImportScopeRow
	StateMachineMethod     []StateMachineMethodRow
	CustomDebugInformation []CustomDebugInformationRow
}

// RowCount returns the number of rows the stream carries for a table.
func (s *TableStream) RowCount(table TableID) int {
	switch table {
	case TableModule:
		return len(s.Module)
	case TableTypeRef:
		return len(s.TypeRef)
	case TableTypeDef:
		return len(s.TypeDef)
	case TableFieldPtr:
		return len(s.FieldPtr)
	case TableField:
		return len(s.Field)
	case TableMethodPtr:
		return len(s.MethodPtr)
	case TableMethodDef:
		return len(s.MethodDef)
	case TableParamPtr:
		return len(s.ParamPtr)
	case TableParam:
		return len(s.Param)
	case TableInterfaceImpl:
		return len(s.InterfaceImpl)
	case TableMemberRef:
		return len(s.MemberRef)
	case TableConstant:
		return len(s.Constant)
	case TableCustomAttribute:
		return len(s.CustomAttribute)
	case TableFieldMarshal:
		return len(s.FieldMarshal)
	case TableDeclSecurity:
		return len(s.DeclSecurity)
	case TableClassLayout:
		return len(s.ClassLayout)
	case TableFieldLayout:
		return len(s.FieldLayout)
	case TableStandAloneSig:
		return len(s.StandAloneSig)
	case TableEventMap:
		return len(s.EventMap)
	case TableEventPtr:
		return len(s.EventPtr)
	case TableEvent:
		return len(s.Event)
	case TablePropertyMap:
		return len(s.PropertyMap)
	case TablePropertyPtr:
		return len(s.PropertyPtr)
	case TableProperty:
		return len(s.Property)
	case TableMethodSemantics:
		return len(s.MethodSemantics)
	case TableMethodImpl:
		return len(s.MethodImpl)
	case TableModuleRef:
		return len(s.ModuleRef)
	case TableTypeSpec:
		return len(s.TypeSpec)
	case TableImplMap:
		return len(s.ImplMap)
	case TableFieldRVA:
		return len(s.FieldRVA)
	case TableENCLog:
		return len(s.ENCLog)
	case TableENCMap:
		return len(s.ENCMap)
	case TableAssembly:
		return len(s.Assembly)
	case TableAssemblyProcessor:
		return len(s.AssemblyProcessor)
	case TableAssemblyOS:
		return len(s.AssemblyOS)
	case TableAssemblyRef:
		return len(s.AssemblyRef)
	case TableAssemblyRefProcessor:
		return len(s.AssemblyRefProcessor)
	case TableAssemblyRefOS:
		return len(s.AssemblyRefOS)
	case TableFile:
		return len(s.File)
	case TableExportedType:
		return len(s.ExportedType)
	case TableManifestResource:
		return len(s.ManifestResource)
	case TableNestedClass:
		return len(s.NestedClass)
	case TableGenericParam:
		return len(s.GenericParam)
	case TableMethodSpec:
		return len(s.MethodSpec)
	case TableGenericParamConstraint:
		return len(s.GenericParamConstraint)
	case TableDocument:
		return len(s.Document)
	case TableMethodDebugInformation:
		return len(s.MethodDebugInformation)
	case TableLocalScope:
		return len(s.LocalScope)
	case TableLocalVariable:
		return len(s.LocalVariable)
	case TableLocalConstant:
		return len(s.LocalConstant)
	case TableImportScope:
		return len(s.ImportScope)
	case TableStateMachineMethod:
		return len(s.StateMachineMethod)
	case TableCustomDebugInformation:
		return len(s.CustomDebugInformation)
	default:
		return 0
	}
}
