package loader

import (
	dmerrors "github.com/dotmeta/dotmeta/errors"
	"github.com/dotmeta/dotmeta/metadata"
)

// Units for the portable debug tables. Debug rows are validated for
// referential integrity but not materialized into entities: sequence
// points and scope decoding belong to a symbol reader layered above
// this package.

type documentUnit struct{}

func (documentUnit) Table() metadata.TableID          { return metadata.TableDocument }
func (documentUnit) Dependencies() []metadata.TableID { return noDeps }
func (documentUnit) Load(*Context) error              { return nil }

type methodDebugInformationUnit struct{}

func (methodDebugInformationUnit) Table() metadata.TableID {
	return metadata.TableMethodDebugInformation
}
func (methodDebugInformationUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableDocument, metadata.TableMethodDef}
}

func (methodDebugInformationUnit) Load(ctx *Context) error {
	docs := uint32(len(ctx.Stream.Document))
	for i, row := range ctx.Stream.MethodDebugInformation {
		// A zero document means the sequence points span multiple
		// documents, named inside the blob instead.
		if row.Document != 0 && row.Document > docs {
			return dmerrors.InvalidRow("MethodDebugInformation", uint32(i+1), "document out of range")
		}
	}
	return nil
}

type localScopeUnit struct{}

func (localScopeUnit) Table() metadata.TableID { return metadata.TableLocalScope }
func (localScopeUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{
		metadata.TableMethodDef, metadata.TableImportScope,
		metadata.TableLocalVariable, metadata.TableLocalConstant,
	}
}

func (localScopeUnit) Load(ctx *Context) error {
	vars := uint32(len(ctx.Stream.LocalVariable))
	consts := uint32(len(ctx.Stream.LocalConstant))
	imports := uint32(len(ctx.Stream.ImportScope))
	for i, row := range ctx.Stream.LocalScope {
		rid := uint32(i + 1)
		if _, ok := ctx.Methods.Get(row.Method); !ok {
			return dmerrors.InvalidRow("LocalScope", rid, "method out of range")
		}
		if row.ImportScope != 0 && row.ImportScope > imports {
			return dmerrors.InvalidRow("LocalScope", rid, "import scope out of range")
		}
		if row.VariableList > vars+1 {
			return dmerrors.OutOfRange("LocalScope", rid, "variable list start past table end")
		}
		if row.ConstantList > consts+1 {
			return dmerrors.OutOfRange("LocalScope", rid, "constant list start past table end")
		}
	}
	return nil
}

type localVariableUnit struct{}

func (localVariableUnit) Table() metadata.TableID          { return metadata.TableLocalVariable }
func (localVariableUnit) Dependencies() []metadata.TableID { return noDeps }
func (localVariableUnit) Load(*Context) error              { return nil }

type localConstantUnit struct{}

func (localConstantUnit) Table() metadata.TableID          { return metadata.TableLocalConstant }
func (localConstantUnit) Dependencies() []metadata.TableID { return noDeps }
func (localConstantUnit) Load(*Context) error              { return nil }

type importScopeUnit struct{}

func (importScopeUnit) Table() metadata.TableID          { return metadata.TableImportScope }
func (importScopeUnit) Dependencies() []metadata.TableID { return noDeps }
func (importScopeUnit) Load(*Context) error              { return nil }

type stateMachineMethodUnit struct{}

func (stateMachineMethodUnit) Table() metadata.TableID { return metadata.TableStateMachineMethod }
func (stateMachineMethodUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableMethodDef}
}

func (stateMachineMethodUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.StateMachineMethod {
		rid := uint32(i + 1)
		if _, ok := ctx.Methods.Get(row.MoveNextMethod); !ok {
			return dmerrors.InvalidRow("StateMachineMethod", rid, "move-next method out of range")
		}
		if _, ok := ctx.Methods.Get(row.KickoffMethod); !ok {
			return dmerrors.InvalidRow("StateMachineMethod", rid, "kickoff method out of range")
		}
	}
	return nil
}

type customDebugInformationUnit struct{}

func (customDebugInformationUnit) Table() metadata.TableID {
	return metadata.TableCustomDebugInformation
}
func (customDebugInformationUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableDocument}
}
func (customDebugInformationUnit) Load(*Context) error { return nil }
