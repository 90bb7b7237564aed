package loader

import (
	dmerrors "github.com/dotmeta/dotmeta/errors"
	"github.com/dotmeta/dotmeta/metadata"
	"github.com/dotmeta/dotmeta/types"
)

// Units for member references, constants, attributes, and the
// event/property machinery.

type memberRefUnit struct{}

func (memberRefUnit) Table() metadata.TableID { return metadata.TableMemberRef }
func (memberRefUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{
		metadata.TableTypeDef, metadata.TableTypeRef, metadata.TableTypeSpec,
		metadata.TableMethodDef, metadata.TableModuleRef,
	}
}

func (memberRefUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.MemberRef {
		rid := uint32(i + 1)
		if ref := ctx.Resolve(row.Class); ref.IsNil() {
			return dmerrors.UnresolvedRef("MemberRef", rid, "class")
		}
		ctx.MemberRefs.Append(&MemberRef{
			Token:     metadata.NewToken(metadata.TableMemberRef, rid),
			Class:     row.Class,
			Name:      ctx.Heaps.Strings.Lookup(row.Name),
			Signature: ctx.Heaps.Blobs.Lookup(row.Signature),
		})
	}
	return nil
}

type constantUnit struct{}

func (constantUnit) Table() metadata.TableID { return metadata.TableConstant }
func (constantUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableField, metadata.TableParam, metadata.TableProperty}
}

func (constantUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.Constant {
		rid := uint32(i + 1)
		ref := ctx.Resolve(row.Parent)
		if ref.IsNil() {
			return dmerrors.UnresolvedRef("Constant", rid, "parent")
		}

		value := types.Constant{
			Type:  types.ElementType(row.Type),
			Value: ctx.Heaps.Blobs.Lookup(row.Value),
		}
		if f, ok := ref.Field(); ok {
			f.SetConstant(value)
		}
		ctx.Constants.Append(&ConstantInfo{
			Token:  metadata.NewToken(metadata.TableConstant, rid),
			Parent: ref.Token,
			Value:  value,
		})
	}
	return nil
}

type customAttributeUnit struct{}

func (customAttributeUnit) Table() metadata.TableID { return metadata.TableCustomAttribute }
func (customAttributeUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableMethodDef, metadata.TableMemberRef}
}

func (customAttributeUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.CustomAttribute {
		rid := uint32(i + 1)
		ctor := ctx.Resolve(row.Type)
		if ctor.IsNil() {
			return dmerrors.UnresolvedRef("CustomAttribute", rid, "constructor")
		}
		// The parent may sit in any table; it stays a token and is
		// resolved by whoever consumes the attribute.
		ctx.CustomAttributes.Append(&CustomAttribute{
			Token:  metadata.NewToken(metadata.TableCustomAttribute, rid),
			Parent: row.Parent.Token(),
			Ctor:   ctor.Token,
			Value:  ctx.Heaps.Blobs.Lookup(row.Value),
		})
	}
	return nil
}

type fieldMarshalUnit struct{}

func (fieldMarshalUnit) Table() metadata.TableID { return metadata.TableFieldMarshal }
func (fieldMarshalUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableField, metadata.TableParam}
}

func (fieldMarshalUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.FieldMarshal {
		rid := uint32(i + 1)
		ref := ctx.Resolve(row.Parent)
		if ref.IsNil() {
			return dmerrors.UnresolvedRef("FieldMarshal", rid, "parent")
		}
		ctx.FieldMarshals.Append(&FieldMarshal{
			Token:      metadata.NewToken(metadata.TableFieldMarshal, rid),
			Parent:     ref.Token,
			NativeType: ctx.Heaps.Blobs.Lookup(row.NativeType),
		})
	}
	return nil
}

type declSecurityUnit struct{}

func (declSecurityUnit) Table() metadata.TableID { return metadata.TableDeclSecurity }
func (declSecurityUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableTypeDef, metadata.TableMethodDef, metadata.TableAssembly}
}

func (declSecurityUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.DeclSecurity {
		rid := uint32(i + 1)
		decl := types.SecurityDecl{
			Action:        row.Action,
			PermissionSet: ctx.Heaps.Blobs.Lookup(row.PermissionSet),
		}

		switch row.Parent.Table {
		case metadata.TableTypeDef:
			td, ok := ctx.TypeDefs.Get(row.Parent.Row)
			if !ok {
				return dmerrors.InvalidRow("DeclSecurity", rid, "type parent out of range")
			}
			td.AddSecurity(decl)
		case metadata.TableAssembly:
			if asm, ok := ctx.Assembly.Get(); ok {
				asm.Security = append(asm.Security, decl)
			}
		}

		ctx.DeclSecurities.Append(&DeclSecurity{
			Token:         metadata.NewToken(metadata.TableDeclSecurity, rid),
			Parent:        row.Parent.Token(),
			Action:        row.Action,
			PermissionSet: decl.PermissionSet,
		})
	}
	return nil
}

type standAloneSigUnit struct{}

func (standAloneSigUnit) Table() metadata.TableID          { return metadata.TableStandAloneSig }
func (standAloneSigUnit) Dependencies() []metadata.TableID { return noDeps }

func (standAloneSigUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.StandAloneSig {
		ctx.StandAloneSigs.Append(&StandAloneSig{
			Token:     metadata.NewToken(metadata.TableStandAloneSig, uint32(i+1)),
			Signature: ctx.Heaps.Blobs.Lookup(row.Signature),
		})
	}
	return nil
}

type eventMapUnit struct{}

func (eventMapUnit) Table() metadata.TableID { return metadata.TableEventMap }
func (eventMapUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableTypeDef}
}

func (eventMapUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.EventMap {
		if _, ok := ctx.TypeDefs.Get(row.Parent); !ok {
			return dmerrors.InvalidRow("EventMap", uint32(i+1), "parent out of range")
		}
	}
	return nil
}

type eventPtrUnit struct{}

func (eventPtrUnit) Table() metadata.TableID          { return metadata.TableEventPtr }
func (eventPtrUnit) Dependencies() []metadata.TableID { return noDeps }
func (eventPtrUnit) Load(*Context) error              { return nil }

type eventUnit struct{}

func (eventUnit) Table() metadata.TableID { return metadata.TableEvent }
func (eventUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableTypeDef, metadata.TableEventMap, metadata.TableEventPtr}
}

func (eventUnit) Load(ctx *Context) error {
	stream := ctx.Stream
	events := make([]*types.Event, len(stream.Event))
	for i, row := range stream.Event {
		e := &types.Event{
			Token:     metadata.NewToken(metadata.TableEvent, uint32(i+1)),
			Name:      ctx.Heaps.Strings.Lookup(row.Name),
			Flags:     row.Flags,
			EventType: row.EventType.Token(),
		}
		events[i] = e
		ctx.Events.Append(e)
	}

	total := uint32(len(stream.Event))
	for mi, mrow := range stream.EventMap {
		var next uint32
		if mi+1 < len(stream.EventMap) {
			next = stream.EventMap[mi+1].EventList
		}
		start, end, err := resolveRange("EventMap", uint32(mi+1), mrow.EventList, next, total)
		if err != nil {
			return err
		}

		owner, ok := ctx.TypeDefs.Get(mrow.Parent)
		if !ok {
			continue
		}
		for rid := start; rid < end; rid++ {
			erid := rid
			if n := len(stream.EventPtr); n > 0 {
				if int(rid) > n {
					return dmerrors.OutOfRange("EventPtr", rid, "indirection past table end")
				}
				erid = stream.EventPtr[rid-1].Event
			}
			if erid == 0 || int(erid) > len(events) {
				return dmerrors.OutOfRange("EventMap", uint32(mi+1), "event list entry out of range")
			}
			owner.AddEvent(events[erid-1])
		}
	}
	return nil
}

type propertyMapUnit struct{}

func (propertyMapUnit) Table() metadata.TableID { return metadata.TablePropertyMap }
func (propertyMapUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableTypeDef}
}

func (propertyMapUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.PropertyMap {
		if _, ok := ctx.TypeDefs.Get(row.Parent); !ok {
			return dmerrors.InvalidRow("PropertyMap", uint32(i+1), "parent out of range")
		}
	}
	return nil
}

type propertyPtrUnit struct{}

func (propertyPtrUnit) Table() metadata.TableID          { return metadata.TablePropertyPtr }
func (propertyPtrUnit) Dependencies() []metadata.TableID { return noDeps }
func (propertyPtrUnit) Load(*Context) error              { return nil }

type propertyUnit struct{}

func (propertyUnit) Table() metadata.TableID { return metadata.TableProperty }
func (propertyUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableTypeDef, metadata.TablePropertyMap, metadata.TablePropertyPtr}
}

func (propertyUnit) Load(ctx *Context) error {
	stream := ctx.Stream
	props := make([]*types.Property, len(stream.Property))
	for i, row := range stream.Property {
		p := &types.Property{
			Token: metadata.NewToken(metadata.TableProperty, uint32(i+1)),
			Name:  ctx.Heaps.Strings.Lookup(row.Name),
			Flags: row.Flags,
			Type:  ctx.Heaps.Blobs.Lookup(row.Type),
		}
		props[i] = p
		ctx.Properties.Append(p)
	}

	total := uint32(len(stream.Property))
	for mi, mrow := range stream.PropertyMap {
		var next uint32
		if mi+1 < len(stream.PropertyMap) {
			next = stream.PropertyMap[mi+1].PropertyList
		}
		start, end, err := resolveRange("PropertyMap", uint32(mi+1), mrow.PropertyList, next, total)
		if err != nil {
			return err
		}

		owner, ok := ctx.TypeDefs.Get(mrow.Parent)
		if !ok {
			continue
		}
		for rid := start; rid < end; rid++ {
			prid := rid
			if n := len(stream.PropertyPtr); n > 0 {
				if int(rid) > n {
					return dmerrors.OutOfRange("PropertyPtr", rid, "indirection past table end")
				}
				prid = stream.PropertyPtr[rid-1].Property
			}
			if prid == 0 || int(prid) > len(props) {
				return dmerrors.OutOfRange("PropertyMap", uint32(mi+1), "property list entry out of range")
			}
			owner.AddProperty(props[prid-1])
		}
	}
	return nil
}

type methodSemanticsUnit struct{}

func (methodSemanticsUnit) Table() metadata.TableID { return metadata.TableMethodSemantics }
func (methodSemanticsUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableMethodDef, metadata.TableEvent, metadata.TableProperty}
}

func (methodSemanticsUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.MethodSemantics {
		rid := uint32(i + 1)
		if _, ok := ctx.Methods.Get(row.Method); !ok {
			return dmerrors.InvalidRow("MethodSemantics", rid, "method out of range")
		}
		assoc := ctx.Resolve(row.Association)
		if assoc.IsNil() {
			return dmerrors.UnresolvedRef("MethodSemantics", rid, "association")
		}
		ctx.MethodSemantics.Append(&MethodSemantics{
			Token:       metadata.NewToken(metadata.TableMethodSemantics, rid),
			Semantics:   row.Semantics,
			Method:      metadata.NewToken(metadata.TableMethodDef, row.Method),
			Association: assoc.Token,
		})
	}
	return nil
}

type methodImplUnit struct{}

func (methodImplUnit) Table() metadata.TableID { return metadata.TableMethodImpl }
func (methodImplUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableTypeDef, metadata.TableMethodDef, metadata.TableMemberRef}
}

func (methodImplUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.MethodImpl {
		rid := uint32(i + 1)
		if _, ok := ctx.TypeDefs.Get(row.Class); !ok {
			return dmerrors.InvalidRow("MethodImpl", rid, "class out of range")
		}
		body := ctx.Resolve(row.MethodBody)
		if body.IsNil() {
			return dmerrors.UnresolvedRef("MethodImpl", rid, "body")
		}
		decl := ctx.Resolve(row.MethodDeclaration)
		if decl.IsNil() {
			return dmerrors.UnresolvedRef("MethodImpl", rid, "declaration")
		}
		ctx.MethodImpls.Append(&MethodImpl{
			Token:       metadata.NewToken(metadata.TableMethodImpl, rid),
			Class:       metadata.NewToken(metadata.TableTypeDef, row.Class),
			Body:        body.Token,
			Declaration: decl.Token,
		})
	}
	return nil
}

type implMapUnit struct{}

func (implMapUnit) Table() metadata.TableID { return metadata.TableImplMap }
func (implMapUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableField, metadata.TableMethodDef, metadata.TableModuleRef}
}

func (implMapUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.ImplMap {
		rid := uint32(i + 1)
		forwarded := ctx.Resolve(row.MemberForwarded)
		if forwarded.IsNil() {
			return dmerrors.UnresolvedRef("ImplMap", rid, "member forwarded")
		}
		if _, ok := ctx.ModuleRefs.Get(row.ImportScope); !ok {
			return dmerrors.InvalidRow("ImplMap", rid, "import scope out of range")
		}
		ctx.ImplMaps.Append(&ImplMap{
			Token:      metadata.NewToken(metadata.TableImplMap, rid),
			Flags:      row.MappingFlags,
			Forwarded:  forwarded.Token,
			ImportName: ctx.Heaps.Strings.Lookup(row.ImportName),
			Scope:      metadata.NewToken(metadata.TableModuleRef, row.ImportScope),
		})
	}
	return nil
}

type fieldRVAUnit struct{}

func (fieldRVAUnit) Table() metadata.TableID { return metadata.TableFieldRVA }
func (fieldRVAUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableField}
}

func (fieldRVAUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.FieldRVA {
		if _, ok := ctx.Fields.Get(row.Field); !ok {
			return dmerrors.InvalidRow("FieldRVA", uint32(i+1), "field out of range")
		}
		ctx.FieldRVAs.Append(&FieldRVA{
			Field: metadata.NewToken(metadata.TableField, row.Field),
			RVA:   row.RVA,
		})
	}
	return nil
}

type encLogUnit struct{}

func (encLogUnit) Table() metadata.TableID          { return metadata.TableENCLog }
func (encLogUnit) Dependencies() []metadata.TableID { return noDeps }
func (encLogUnit) Load(*Context) error              { return nil }

type encMapUnit struct{}

func (encMapUnit) Table() metadata.TableID          { return metadata.TableENCMap }
func (encMapUnit) Dependencies() []metadata.TableID { return noDeps }
func (encMapUnit) Load(*Context) error              { return nil }
