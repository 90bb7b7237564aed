package loader

import (
	dmerrors "github.com/dotmeta/dotmeta/errors"
	"github.com/dotmeta/dotmeta/metadata"
	"github.com/dotmeta/dotmeta/types"
)

// Units for the module and the core type-system tables.

type moduleUnit struct{}

func (moduleUnit) Table() metadata.TableID          { return metadata.TableModule }
func (moduleUnit) Dependencies() []metadata.TableID { return noDeps }

func (moduleUnit) Load(ctx *Context) error {
	rows := ctx.Stream.Module
	if len(rows) == 0 {
		return nil
	}
	if len(rows) > 1 {
		return dmerrors.DuplicateRow("Module", 2)
	}

	row := rows[0]
	ctx.Module.Set(&Module{
		Token:      metadata.NewToken(metadata.TableModule, 1),
		Generation: row.Generation,
		Name:       ctx.Heaps.Strings.Lookup(row.Name),
		Mvid:       ctx.Heaps.GUIDs.Lookup(row.Mvid),
	})
	return nil
}

type typeRefUnit struct{}

func (typeRefUnit) Table() metadata.TableID { return metadata.TableTypeRef }
func (typeRefUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableModule, metadata.TableModuleRef, metadata.TableAssemblyRef}
}

func (typeRefUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.TypeRef {
		tok := metadata.NewToken(metadata.TableTypeRef, uint32(i+1))
		td := ctx.Types.Create(tok,
			ctx.Heaps.Strings.Lookup(row.Namespace),
			ctx.Heaps.Strings.Lookup(row.Name),
			0)
		if !row.ResolutionScope.IsNil() {
			td.SetOrigin(row.ResolutionScope.Token())
		}
		ctx.TypeRefs.Append(td)
	}
	return nil
}

type typeDefUnit struct{}

func (typeDefUnit) Table() metadata.TableID { return metadata.TableTypeDef }
func (typeDefUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableModule}
}

func (typeDefUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.TypeDef {
		tok := metadata.NewToken(metadata.TableTypeDef, uint32(i+1))
		td := ctx.Types.Create(tok,
			ctx.Heaps.Strings.Lookup(row.Namespace),
			ctx.Heaps.Strings.Lookup(row.Name),
			row.Flags)
		// The base is recorded as a token, not resolved: the target may
		// be a TypeSpec whose unit runs in a later level. The registry
		// resolves it on demand once the pipeline completes.
		if !row.Extends.IsNil() {
			td.SetBase(row.Extends.Token())
		}
		ctx.TypeDefs.Append(td)
	}
	return nil
}

type typeSpecUnit struct{}

func (typeSpecUnit) Table() metadata.TableID { return metadata.TableTypeSpec }
func (typeSpecUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableModule}
}

func (typeSpecUnit) Load(ctx *Context) error {
	// Instantiated types carry their shape in a signature blob; the
	// entity exists so tokens referencing the instantiation resolve to a
	// canonical identity.
	for i := range ctx.Stream.TypeSpec {
		tok := metadata.NewToken(metadata.TableTypeSpec, uint32(i+1))
		td := ctx.Types.Create(tok, "", "", 0)
		ctx.TypeSpecs.Append(td)
	}
	return nil
}

type fieldPtrUnit struct{}

func (fieldPtrUnit) Table() metadata.TableID          { return metadata.TableFieldPtr }
func (fieldPtrUnit) Dependencies() []metadata.TableID { return noDeps }
func (fieldPtrUnit) Load(*Context) error              { return nil }

type fieldUnit struct{}

func (fieldUnit) Table() metadata.TableID { return metadata.TableField }
func (fieldUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableTypeDef, metadata.TableFieldPtr}
}

func (fieldUnit) Load(ctx *Context) error {
	stream := ctx.Stream
	fields := make([]*types.Field, len(stream.Field))
	for i, row := range stream.Field {
		f := &types.Field{
			Token:     metadata.NewToken(metadata.TableField, uint32(i+1)),
			Name:      ctx.Heaps.Strings.Lookup(row.Name),
			Flags:     row.Flags,
			Signature: ctx.Heaps.Blobs.Lookup(row.Signature),
		}
		fields[i] = f
		ctx.Fields.Append(f)
	}

	total := uint32(len(stream.Field))
	for ti, trow := range stream.TypeDef {
		var next uint32
		if ti+1 < len(stream.TypeDef) {
			next = stream.TypeDef[ti+1].FieldList
		}
		start, end, err := resolveRange("TypeDef", uint32(ti+1), trow.FieldList, next, total)
		if err != nil {
			return err
		}

		owner, ok := ctx.TypeDefs.Get(uint32(ti + 1))
		if !ok {
			continue
		}
		for rid := start; rid < end; rid++ {
			frid := rid
			if n := len(stream.FieldPtr); n > 0 {
				if int(rid) > n {
					return dmerrors.OutOfRange("FieldPtr", rid, "indirection past table end")
				}
				frid = stream.FieldPtr[rid-1].Field
			}
			if frid == 0 || int(frid) > len(fields) {
				return dmerrors.OutOfRange("TypeDef", uint32(ti+1), "field list entry out of range")
			}
			owner.AddField(fields[frid-1])
		}
	}
	return nil
}

type methodPtrUnit struct{}

func (methodPtrUnit) Table() metadata.TableID          { return metadata.TableMethodPtr }
func (methodPtrUnit) Dependencies() []metadata.TableID { return noDeps }
func (methodPtrUnit) Load(*Context) error              { return nil }

type methodDefUnit struct{}

func (methodDefUnit) Table() metadata.TableID { return metadata.TableMethodDef }
func (methodDefUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableTypeDef, metadata.TableMethodPtr}
}

func (methodDefUnit) Load(ctx *Context) error {
	stream := ctx.Stream
	methods := make([]*types.Method, len(stream.MethodDef))
	for i, row := range stream.MethodDef {
		m := &types.Method{
			Token:     metadata.NewToken(metadata.TableMethodDef, uint32(i+1)),
			Name:      ctx.Heaps.Strings.Lookup(row.Name),
			Flags:     row.Flags,
			ImplFlags: row.ImplFlags,
			RVA:       row.RVA,
			Signature: ctx.Heaps.Blobs.Lookup(row.Signature),
		}
		methods[i] = m
		ctx.Methods.Append(m)
	}

	total := uint32(len(stream.MethodDef))
	for ti, trow := range stream.TypeDef {
		var next uint32
		if ti+1 < len(stream.TypeDef) {
			next = stream.TypeDef[ti+1].MethodList
		}
		start, end, err := resolveRange("TypeDef", uint32(ti+1), trow.MethodList, next, total)
		if err != nil {
			return err
		}

		owner, ok := ctx.TypeDefs.Get(uint32(ti + 1))
		if !ok {
			continue
		}
		for rid := start; rid < end; rid++ {
			mrid := rid
			if n := len(stream.MethodPtr); n > 0 {
				if int(rid) > n {
					return dmerrors.OutOfRange("MethodPtr", rid, "indirection past table end")
				}
				mrid = stream.MethodPtr[rid-1].Method
			}
			if mrid == 0 || int(mrid) > len(methods) {
				return dmerrors.OutOfRange("TypeDef", uint32(ti+1), "method list entry out of range")
			}
			owner.AddMethod(methods[mrid-1])
		}
	}
	return nil
}

type paramPtrUnit struct{}

func (paramPtrUnit) Table() metadata.TableID          { return metadata.TableParamPtr }
func (paramPtrUnit) Dependencies() []metadata.TableID { return noDeps }
func (paramPtrUnit) Load(*Context) error              { return nil }

type paramUnit struct{}

func (paramUnit) Table() metadata.TableID { return metadata.TableParam }
func (paramUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableMethodDef, metadata.TableParamPtr}
}

func (paramUnit) Load(ctx *Context) error {
	stream := ctx.Stream
	params := make([]*types.Param, len(stream.Param))
	for i, row := range stream.Param {
		p := &types.Param{
			Token:    metadata.NewToken(metadata.TableParam, uint32(i+1)),
			Name:     ctx.Heaps.Strings.Lookup(row.Name),
			Flags:    row.Flags,
			Sequence: row.Sequence,
		}
		params[i] = p
		ctx.Params.Append(p)
	}

	total := uint32(len(stream.Param))
	for mi, mrow := range stream.MethodDef {
		var next uint32
		if mi+1 < len(stream.MethodDef) {
			next = stream.MethodDef[mi+1].ParamList
		}
		start, end, err := resolveRange("MethodDef", uint32(mi+1), mrow.ParamList, next, total)
		if err != nil {
			return err
		}

		owner, ok := ctx.Methods.Get(uint32(mi + 1))
		if !ok {
			continue
		}
		for rid := start; rid < end; rid++ {
			prid := rid
			if n := len(stream.ParamPtr); n > 0 {
				if int(rid) > n {
					return dmerrors.OutOfRange("ParamPtr", rid, "indirection past table end")
				}
				prid = stream.ParamPtr[rid-1].Param
			}
			if prid == 0 || int(prid) > len(params) {
				return dmerrors.OutOfRange("MethodDef", uint32(mi+1), "param list entry out of range")
			}
			owner.Params = append(owner.Params, *params[prid-1])
		}
	}
	return nil
}

type interfaceImplUnit struct{}

func (interfaceImplUnit) Table() metadata.TableID { return metadata.TableInterfaceImpl }
func (interfaceImplUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableTypeDef, metadata.TableTypeRef, metadata.TableTypeSpec}
}

func (interfaceImplUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.InterfaceImpl {
		rid := uint32(i + 1)
		td, ok := ctx.TypeDefs.Get(row.Class)
		if !ok {
			return dmerrors.InvalidRow("InterfaceImpl", rid, "class reference out of range")
		}
		if ref := ctx.Resolve(row.Interface); ref.IsNil() {
			return dmerrors.UnresolvedRef("InterfaceImpl", rid, "interface")
		}
		td.AddInterface(row.Interface.Token())
		ctx.InterfaceImpls.Append(&InterfaceImpl{
			Token:     metadata.NewToken(metadata.TableInterfaceImpl, rid),
			Class:     metadata.NewToken(metadata.TableTypeDef, row.Class),
			Interface: row.Interface.Token(),
		})
	}
	return nil
}

type nestedClassUnit struct{}

func (nestedClassUnit) Table() metadata.TableID { return metadata.TableNestedClass }
func (nestedClassUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableTypeDef}
}

func (nestedClassUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.NestedClass {
		rid := uint32(i + 1)
		nested, ok := ctx.TypeDefs.Get(row.NestedClass)
		if !ok {
			return dmerrors.InvalidRow("NestedClass", rid, "nested class out of range")
		}
		enclosing, ok := ctx.TypeDefs.Get(row.EnclosingClass)
		if !ok {
			return dmerrors.InvalidRow("NestedClass", rid, "enclosing class out of range")
		}
		enclosing.AddNested(nested.Token())
		nested.SetEnclosing(enclosing.Token())
	}
	return nil
}

type classLayoutUnit struct{}

func (classLayoutUnit) Table() metadata.TableID { return metadata.TableClassLayout }
func (classLayoutUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableTypeDef}
}

func (classLayoutUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.ClassLayout {
		td, ok := ctx.TypeDefs.Get(row.Parent)
		if !ok {
			return dmerrors.InvalidRow("ClassLayout", uint32(i+1), "parent out of range")
		}
		td.SetLayout(types.Layout{
			PackingSize: row.PackingSize,
			ClassSize:   row.ClassSize,
		})
	}
	return nil
}

type fieldLayoutUnit struct{}

func (fieldLayoutUnit) Table() metadata.TableID { return metadata.TableFieldLayout }
func (fieldLayoutUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableField}
}

func (fieldLayoutUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.FieldLayout {
		if _, ok := ctx.Fields.Get(row.Field); !ok {
			return dmerrors.InvalidRow("FieldLayout", uint32(i+1), "field out of range")
		}
		ctx.FieldLayouts.Append(&FieldLayout{
			Field:  metadata.NewToken(metadata.TableField, row.Field),
			Offset: row.Offset,
		})
	}
	return nil
}
