package loader

import (
	"runtime"

	"go.uber.org/zap"

	"github.com/dotmeta/dotmeta/heaps"
	"github.com/dotmeta/dotmeta/metadata"
	"github.com/dotmeta/dotmeta/types"
)

// Option configures a load.
type Option func(*loadConfig)

type loadConfig struct {
	workers int
	logger  *zap.Logger
}

// WithWorkers sets the worker-pool size. The default is GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *loadConfig) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithLogger sets the logger for one load. The default is the package
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *loadConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// Result is the resolved object model handed to the caller once the
// pipeline completes: the type registry plus every populated per-table
// container. It is read-only from this point on.
type Result struct {
	Module   *Module
	Assembly *Assembly
	Types    *types.Registry

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

// Load runs the full pipeline over a parsed table stream: the memoized
// level plan executes level by level on a shared worker pool, and the
// populated containers plus the type registry are handed back. A data
// error in any unit aborts the load with no partial result.
func Load(stream *metadata.TableStream, hs *heaps.Set, opts ...Option) (*Result, error) {
	cfg := loadConfig{workers: runtime.GOMAXPROCS(0), logger: Logger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	plan, err := executionPlan()
	if err != nil {
		return nil, err
	}

	ctx := NewContext(stream, hs)
	log := cfg.logger

	p := newPool(cfg.workers, log)
	defer p.close()

	for i, level := range plan {
		log.Debug("level start",
			zap.Int("level", i),
			zap.Int("units", len(level)))
		if err := p.runLevel(ctx, level); err != nil {
			return nil, err
		}
	}
	log.Debug("load complete", zap.Int("types", ctx.Types.Len()))

	module, _ := ctx.Module.Get()
	assembly, _ := ctx.Assembly.Get()

	return &Result{
		Module:   module,
		Assembly: assembly,
		Types:    ctx.Types,

		TypeDefs:      ctx.TypeDefs,
		TypeRefs:      ctx.TypeRefs,
		TypeSpecs:     ctx.TypeSpecs,
		ExportedTypes: ctx.ExportedTypes,

		Fields:     ctx.Fields,
		Methods:    ctx.Methods,
		Params:     ctx.Params,
		Properties: ctx.Properties,
		Events:     ctx.Events,

		InterfaceImpls:          ctx.InterfaceImpls,
		MemberRefs:              ctx.MemberRefs,
		Constants:               ctx.Constants,
		CustomAttributes:        ctx.CustomAttributes,
		FieldMarshals:           ctx.FieldMarshals,
		DeclSecurities:          ctx.DeclSecurities,
		FieldLayouts:            ctx.FieldLayouts,
		StandAloneSigs:          ctx.StandAloneSigs,
		MethodSemantics:         ctx.MethodSemantics,
		MethodImpls:             ctx.MethodImpls,
		ModuleRefs:              ctx.ModuleRefs,
		ImplMaps:                ctx.ImplMaps,
		FieldRVAs:               ctx.FieldRVAs,
		AssemblyRefs:            ctx.AssemblyRefs,
		Files:                   ctx.Files,
		ManifestResources:       ctx.ManifestResources,
		GenericParams:           ctx.GenericParams,
		MethodSpecs:             ctx.MethodSpecs,
		GenericParamConstraints: ctx.GenericParamConstraints,
	}, nil
}
