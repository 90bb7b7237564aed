package loader

import (
	dmerrors "github.com/dotmeta/dotmeta/errors"
	"github.com/dotmeta/dotmeta/metadata"
)

// Units for the assembly manifest and cross-module references.

type moduleRefUnit struct{}

func (moduleRefUnit) Table() metadata.TableID          { return metadata.TableModuleRef }
func (moduleRefUnit) Dependencies() []metadata.TableID { return noDeps }

func (moduleRefUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.ModuleRef {
		ctx.ModuleRefs.Append(&ModuleRef{
			Token: metadata.NewToken(metadata.TableModuleRef, uint32(i+1)),
			Name:  ctx.Heaps.Strings.Lookup(row.Name),
		})
	}
	return nil
}

type assemblyUnit struct{}

func (assemblyUnit) Table() metadata.TableID          { return metadata.TableAssembly }
func (assemblyUnit) Dependencies() []metadata.TableID { return noDeps }

func (assemblyUnit) Load(ctx *Context) error {
	rows := ctx.Stream.Assembly
	if len(rows) == 0 {
		return nil
	}
	if len(rows) > 1 {
		return dmerrors.DuplicateRow("Assembly", 2)
	}

	row := rows[0]
	ctx.Assembly.Set(&Assembly{
		Token:     metadata.NewToken(metadata.TableAssembly, 1),
		Name:      ctx.Heaps.Strings.Lookup(row.Name),
		Culture:   ctx.Heaps.Strings.Lookup(row.Culture),
		Version:   Version{row.MajorVersion, row.MinorVersion, row.BuildNumber, row.RevisionNumber},
		Flags:     row.Flags,
		HashAlgID: row.HashAlgID,
		PublicKey: ctx.Heaps.Blobs.Lookup(row.PublicKey),
	})
	return nil
}

// The processor and OS tables are retained by the format but carry no
// information a reader acts on. Their units only check referential
// integrity where a row points at another table.

type assemblyProcessorUnit struct{}

func (assemblyProcessorUnit) Table() metadata.TableID          { return metadata.TableAssemblyProcessor }
func (assemblyProcessorUnit) Dependencies() []metadata.TableID { return noDeps }
func (assemblyProcessorUnit) Load(*Context) error              { return nil }

type assemblyOSUnit struct{}

func (assemblyOSUnit) Table() metadata.TableID          { return metadata.TableAssemblyOS }
func (assemblyOSUnit) Dependencies() []metadata.TableID { return noDeps }
func (assemblyOSUnit) Load(*Context) error              { return nil }

type assemblyRefUnit struct{}

func (assemblyRefUnit) Table() metadata.TableID          { return metadata.TableAssemblyRef }
func (assemblyRefUnit) Dependencies() []metadata.TableID { return noDeps }

func (assemblyRefUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.AssemblyRef {
		ctx.AssemblyRefs.Append(&AssemblyRef{
			Token:            metadata.NewToken(metadata.TableAssemblyRef, uint32(i+1)),
			Name:             ctx.Heaps.Strings.Lookup(row.Name),
			Culture:          ctx.Heaps.Strings.Lookup(row.Culture),
			Version:          Version{row.MajorVersion, row.MinorVersion, row.BuildNumber, row.RevisionNumber},
			Flags:            row.Flags,
			PublicKeyOrToken: ctx.Heaps.Blobs.Lookup(row.PublicKeyOrToken),
			Hash:             ctx.Heaps.Blobs.Lookup(row.HashValue),
		})
	}
	return nil
}

type assemblyRefProcessorUnit struct{}

func (assemblyRefProcessorUnit) Table() metadata.TableID {
	return metadata.TableAssemblyRefProcessor
}
func (assemblyRefProcessorUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableAssemblyRef}
}

func (assemblyRefProcessorUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.AssemblyRefProcessor {
		if _, ok := ctx.AssemblyRefs.Get(row.AssemblyRef); !ok {
			return dmerrors.InvalidRow("AssemblyRefProcessor", uint32(i+1), "assembly ref out of range")
		}
	}
	return nil
}

type assemblyRefOSUnit struct{}

func (assemblyRefOSUnit) Table() metadata.TableID { return metadata.TableAssemblyRefOS }
func (assemblyRefOSUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableAssemblyRef}
}

func (assemblyRefOSUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.AssemblyRefOS {
		if _, ok := ctx.AssemblyRefs.Get(row.AssemblyRef); !ok {
			return dmerrors.InvalidRow("AssemblyRefOS", uint32(i+1), "assembly ref out of range")
		}
	}
	return nil
}

type fileUnit struct{}

func (fileUnit) Table() metadata.TableID          { return metadata.TableFile }
func (fileUnit) Dependencies() []metadata.TableID { return noDeps }

func (fileUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.File {
		ctx.Files.Append(&File{
			Token: metadata.NewToken(metadata.TableFile, uint32(i+1)),
			Name:  ctx.Heaps.Strings.Lookup(row.Name),
			Flags: row.Flags,
			Hash:  ctx.Heaps.Blobs.Lookup(row.HashValue),
		})
	}
	return nil
}

type exportedTypeUnit struct{}

func (exportedTypeUnit) Table() metadata.TableID { return metadata.TableExportedType }
func (exportedTypeUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableFile, metadata.TableAssemblyRef}
}

func (exportedTypeUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.ExportedType {
		rid := uint32(i + 1)
		// Implementation may point at ExportedType itself for nested
		// exported types; those rows resolve within this same table and
		// cannot be checked through the resolver mid-load.
		if t := row.Implementation.Table; t == metadata.TableFile || t == metadata.TableAssemblyRef {
			if ref := ctx.Resolve(row.Implementation); ref.IsNil() {
				return dmerrors.UnresolvedRef("ExportedType", rid, "implementation")
			}
		}

		token := metadata.NewToken(metadata.TableExportedType, rid)
		td := ctx.Types.Create(token,
			ctx.Heaps.Strings.Lookup(row.TypeNamespace),
			ctx.Heaps.Strings.Lookup(row.TypeName),
			row.Flags)
		td.SetOrigin(row.Implementation.Token())
		ctx.ExportedTypes.Append(td)
	}
	return nil
}

type manifestResourceUnit struct{}

func (manifestResourceUnit) Table() metadata.TableID { return metadata.TableManifestResource }
func (manifestResourceUnit) Dependencies() []metadata.TableID {
	return []metadata.TableID{metadata.TableFile, metadata.TableAssemblyRef}
}

func (manifestResourceUnit) Load(ctx *Context) error {
	for i, row := range ctx.Stream.ManifestResource {
		rid := uint32(i + 1)
		// A nil implementation means the resource is embedded in this
		// module at Offset.
		if !row.Implementation.IsNil() {
			if ref := ctx.Resolve(row.Implementation); ref.IsNil() {
				return dmerrors.UnresolvedRef("ManifestResource", rid, "implementation")
			}
		}
		ctx.ManifestResources.Append(&ManifestResource{
			Token:          metadata.NewToken(metadata.TableManifestResource, rid),
			Name:           ctx.Heaps.Strings.Lookup(row.Name),
			Offset:         row.Offset,
			Flags:          row.Flags,
			Implementation: row.Implementation.Token(),
		})
	}
	return nil
}
