package loader

import (
	dmerrors "github.com/dotmeta/dotmeta/errors"
	"github.com/dotmeta/dotmeta/metadata"
	"github.com/dotmeta/dotmeta/types"
)

// Units for generics: parameters, constraints, and method instantiations.

type genericParamUnit struct{}

func (genericParamUnit) Table() metadata.TableID { return metadata.TableGenericParam }
func (genericParamUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableTypeDef, metadata.TableMethodDef}
}

func (genericParamUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.GenericParam {
		rid := uint32(i + 1)
		owner := ctx.Resolve(row.Owner)
		if owner.IsNil() {
			return dmerrors.UnresolvedRef("GenericParam", rid, "owner")
		}

		gp := &types.GenericParam{
			Token:  metadata.NewToken(metadata.TableGenericParam, rid),
			Name:   ctx.Heaps.Strings.Lookup(row.Name),
			Number: row.Number,
			Flags:  row.Flags,
		}
		if td, ok := owner.Type(); ok {
			td.AddGenericParam(gp)
		}
		ctx.GenericParams.Append(gp)
	}
	return nil
}

type methodSpecUnit struct{}

func (methodSpecUnit) Table() metadata.TableID { return metadata.TableMethodSpec }
func (methodSpecUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableMethodDef, metadata.TableMemberRef}
}

func (methodSpecUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.MethodSpec {
		rid := uint32(i + 1)
		method := ctx.Resolve(row.Method)
		if method.IsNil() {
			return dmerrors.UnresolvedRef("MethodSpec", rid, "method")
		}
		ctx.MethodSpecs.Append(&MethodSpec{
			Token:         metadata.NewToken(metadata.TableMethodSpec, rid),
			Method:        method.Token,
			Instantiation: ctx.Heaps.Blobs.Lookup(row.Instantiation),
		})
	}
	return nil
}

type genericParamConstraintUnit struct{}

func (genericParamConstraintUnit) Table() metadata.TableID {
	return metadata.TableGenericParamConstraint
}
func (genericParamConstraintUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{
		metadata.TableGenericParam,
		metadata.TableTypeDef, metadata.TableTypeRef, metadata.TableTypeSpec,
	}
}

func (genericParamConstraintUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.GenericParamConstraint {
		rid := uint32(i + 1)
		gp, ok := ctx.GenericParams.Get(row.Owner)
		if !ok {
			return dmerrors.InvalidRow("GenericParamConstraint", rid, "owner out of range")
		}
		constraint := ctx.Resolve(row.Constraint)
		if constraint.IsNil() {
			return dmerrors.UnresolvedRef("GenericParamConstraint", rid, "constraint")
		}

		// Constraints attach single-threaded: this unit is the sole
		// writer of GenericParam.Constraints.
		gp.Constraints = append(gp.Constraints, constraint.Token)
		ctx.GenericParamConstraints.Append(&GenericParamConstraint{
			Token:      metadata.NewToken(metadata.TableGenericParamConstraint, rid),
			Owner:      metadata.NewToken(metadata.TableGenericParam, row.Owner),
			Constraint: constraint.Token,
		})
	}
	return nil
}
