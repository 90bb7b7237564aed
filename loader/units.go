package loader

import (
	dmerrors "github.com/dotmeta/dotmeta/errors"
	"github.com/dotmeta/dotmeta/metadata"
)

// allUnits returns the static unit registry in registration order, one
// unit per metadata table. The order is the table-number order of the
// format; error reporting within a level follows it.
func allUnits() []Unit {
	return []Unit{
		moduleUnit{},
		typeRefUnit{},
		typeDefUnit{},
		fieldPtrUnit{},
		fieldUnit{},
		methodPtrUnit{},
		methodDefUnit{},
		paramPtrUnit{},
		paramUnit{},
		interfaceImplUnit{},
		memberRefUnit{},
		constantUnit{},
		customAttributeUnit{},
		fieldMarshalUnit{},
		declSecurityUnit{},
		classLayoutUnit{},
		fieldLayoutUnit{},
		standAloneSigUnit{},
		eventMapUnit{},
		eventPtrUnit{},
		eventUnit{},
		propertyMapUnit{},
		propertyPtrUnit{},
		propertyUnit{},
		methodSemanticsUnit{},
		methodImplUnit{},
		moduleRefUnit{},
		typeSpecUnit{},
		implMapUnit{},
		fieldRVAUnit{},
		encLogUnit{},
		encMapUnit{},
		assemblyUnit{},
		assemblyProcessorUnit{},
		assemblyOSUnit{},
		assemblyRefUnit{},
		assemblyRefProcessorUnit{},
		assemblyRefOSUnit{},
		fileUnit{},
		exportedTypeUnit{},
		manifestResourceUnit{},
		nestedClassUnit{},
		genericParamUnit{},
		methodSpecUnit{},
		genericParamConstraintUnit{},
		documentUnit{},
		methodDebugInformationUnit{},
		localScopeUnit{},
		localVariableUnit{},
		localConstantUnit{},
		importScopeUnit{},
		stateMachineMethodUnit{},
		customDebugInformationUnit{},
	}
}

// noDeps is shared by units at level zero.
var noDeps []metadata.TableID

// resolveRange validates the [start, end) slice a list column claims of
// its target table. start 0 means an absent list; end 0 means the owner
// is the last row and the range runs to the end of the target table.
func resolveRange(owner string, rid, start, end, total uint32) (uint32, uint32, error) {
	if start == 0 {
		return 0, 0, nil
	}
	if end == 0 || end > total+1 {
		end = total + 1
	}
	if start > total+1 {
		return 0, 0, dmerrors.New(dmerrors.PhaseLoad, dmerrors.KindOutOfRange).
			Table(owner).
			Row(rid).
			Detail("list start %d exceeds table size %d", start, total).
			Build()
	}
	if end < start {
		return 0, 0, dmerrors.OutOfRange(owner, rid, "list range inverted")
	}
	return start, end, nil
}
