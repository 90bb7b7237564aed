package types

import (
	"strings"
	"sync"

	"github.com/dotmeta/dotmeta/metadata"
)

// Type attribute flags from the format's flags column. Only the bits the
// classifier needs are named here; Flags() exposes the raw mask.
const (
	AttrInterface      uint32 = 0x00000020
	AttrAbstract       uint32 = 0x00000080
	AttrSealed         uint32 = 0x00000100
	AttrExplicitLayout uint32 = 0x00000010
)

// TypeDef is one resolved type entity. Identity is the token: the
// registry guarantees one canonical entity per token. An entity is
// created with minimal identity, enriched by later loader passes, and
// read-only once the load completes.
type TypeDef struct {
	token     metadata.Token
	namespace string
	name      string
	flags     uint32
	reg       *Registry

	kind      cell[Kind]
	base      cell[metadata.Token]
	origin    cell[metadata.Token]
	enclosing cell[metadata.Token]
	layout    cell[Layout]

	mu            sync.Mutex
	fields        []*Field
	methods       []*Method
	properties    []*Property
	events        []*Event
	interfaces    []metadata.Token
	nested        []metadata.Token
	genericParams []*GenericParam
	genericArgs   []metadata.Token
	security      []SecurityDecl
}

// Token returns the entity's identity.
func (t *TypeDef) Token() metadata.Token { return t.token }

// Namespace returns the declaring namespace, possibly empty.
func (t *TypeDef) Namespace() string { return t.namespace }

// Name returns the simple type name.
func (t *TypeDef) Name() string { return t.name }

// Flags returns the raw attribute-flags bitmask.
func (t *TypeDef) Flags() uint32 { return t.flags }

// FullName returns "namespace.name", or just the name when the namespace
// is empty.
func (t *TypeDef) FullName() string {
	if t.namespace == "" {
		return t.name
	}
	return t.namespace + "." + t.name
}

// SetBase records the base-type link. The first successful write wins;
// later writers silently no-op.
func (t *TypeDef) SetBase(base metadata.Token) bool {
	return t.base.Set(base)
}

// BaseToken returns the recorded base-type token, if any.
func (t *TypeDef) BaseToken() (metadata.Token, bool) {
	return t.base.Get()
}

// Base resolves the base-type entity through the registry. It reports
// false when no base was recorded or the base token has no entity.
func (t *TypeDef) Base() (*TypeDef, bool) {
	tok, ok := t.base.Get()
	if !ok || tok.IsNil() {
		return nil, false
	}
	return t.reg.Lookup(tok)
}

// SetOrigin records which assembly, module, or file actually defines the
// type. Set at most once; later writers silently no-op.
func (t *TypeDef) SetOrigin(scope metadata.Token) bool {
	return t.origin.Set(scope)
}

// Origin returns the recorded external origin, if any.
func (t *TypeDef) Origin() (metadata.Token, bool) {
	return t.origin.Get()
}

// SetEnclosing records the type this one is nested inside. Set at most
// once; later writers silently no-op.
func (t *TypeDef) SetEnclosing(enclosing metadata.Token) bool {
	return t.enclosing.Set(enclosing)
}

// Enclosing returns the enclosing type's token, if the type is nested.
func (t *TypeDef) Enclosing() (metadata.Token, bool) {
	return t.enclosing.Get()
}

// SetLayout records the type's explicit layout. First write wins.
func (t *TypeDef) SetLayout(l Layout) bool {
	return t.layout.Set(l)
}

// Layout returns the recorded layout, if any.
func (t *TypeDef) Layout() (Layout, bool) {
	return t.layout.Get()
}

// AddField appends a field. Child collections are append-only.
func (t *TypeDef) AddField(f *Field) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.fields = append(t.fields, f)
}

// AddMethod appends a method.
func (t *TypeDef) AddMethod(m *Method) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.methods = append(t.methods, m)
}

// AddProperty appends a property.
func (t *TypeDef) AddProperty(p *Property) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.properties = append(t.properties, p)
}

// AddEvent appends an event.
func (t *TypeDef) AddEvent(e *Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, e)
}

// AddInterface appends an implemented-interface reference.
func (t *TypeDef) AddInterface(iface metadata.Token) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.interfaces = append(t.interfaces, iface)
}

// AddNested appends a nested-type reference.
func (t *TypeDef) AddNested(nested metadata.Token) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nested = append(t.nested, nested)
}

// AddGenericParam appends a generic parameter.
func (t *TypeDef) AddGenericParam(p *GenericParam) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.genericParams = append(t.genericParams, p)
}

// AddGenericArg appends a generic argument of an instantiation.
func (t *TypeDef) AddGenericArg(arg metadata.Token) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.genericArgs = append(t.genericArgs, arg)
}

// AddSecurity appends a declarative-security permission set.
func (t *TypeDef) AddSecurity(s SecurityDecl) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.security = append(t.security, s)
}

// Fields returns a snapshot of the field list.
func (t *TypeDef) Fields() []*Field {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Field, len(t.fields))
	copy(out, t.fields)
	return out
}

// Methods returns a snapshot of the method list.
func (t *TypeDef) Methods() []*Method {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Method, len(t.methods))
	copy(out, t.methods)
	return out
}

// Properties returns a snapshot of the property list.
func (t *TypeDef) Properties() []*Property {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Property, len(t.properties))
	copy(out, t.properties)
	return out
}

// Events returns a snapshot of the event list.
func (t *TypeDef) Events() []*Event {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*Event, len(t.events))
	copy(out, t.events)
	return out
}

// Interfaces returns a snapshot of the implemented-interface tokens.
func (t *TypeDef) Interfaces() []metadata.Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]metadata.Token, len(t.interfaces))
	copy(out, t.interfaces)
	return out
}

// Nested returns a snapshot of the nested-type tokens.
func (t *TypeDef) Nested() []metadata.Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]metadata.Token, len(t.nested))
	copy(out, t.nested)
	return out
}

// GenericParams returns a snapshot of the generic parameters.
func (t *TypeDef) GenericParams() []*GenericParam {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*GenericParam, len(t.genericParams))
	copy(out, t.genericParams)
	return out
}

// GenericArgs returns a snapshot of the generic arguments.
func (t *TypeDef) GenericArgs() []metadata.Token {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]metadata.Token, len(t.genericArgs))
	copy(out, t.genericArgs)
	return out
}

// Security returns a snapshot of the declarative-security sets.
func (t *TypeDef) Security() []SecurityDecl {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]SecurityDecl, len(t.security))
	copy(out, t.security)
	return out
}

// Kind returns the derived classification of the type. The result is
// computed on first call and cached; concurrent first callers race
// benignly on the write-once cache.
func (t *TypeDef) Kind() Kind {
	if k, ok := t.kind.Get(); ok {
		return k
	}
	t.kind.Set(t.classify())
	k, _ := t.kind.Get()
	return k
}

// computedKind peeks at the cached kind without forcing a computation.
// Used while walking base chains that may still be mid-construction.
func (t *TypeDef) computedKind() (Kind, bool) {
	return t.kind.Get()
}

func (t *TypeDef) classify() Kind {
	// The interface flag takes priority over everything else.
	if t.flags&AttrInterface != 0 {
		return KindInterface
	}

	if t.namespace == SystemNamespace {
		if IsPrimitiveName(t.name) {
			return KindValueType
		}
		switch t.name {
		case "ValueType", "Enum":
			return KindValueType
		case "Object":
			return KindObject
		case "String":
			return KindString
		case "Void":
			return KindVoid
		case "Delegate", "MulticastDelegate":
			return KindClass
		}
	}

	// Walk the base chain. Only already-computed kinds are consulted,
	// never forced: the graph may still be mid-construction.
	seen := map[metadata.Token]bool{t.token: true}
	for base, ok := t.Base(); ok; base, ok = base.Base() {
		if seen[base.token] {
			break
		}
		seen[base.token] = true

		switch base.FullName() {
		case "System.ValueType", "System.Enum":
			return KindValueType
		case "System.Delegate", "System.MulticastDelegate":
			return KindClass
		}
		if k, computed := base.computedKind(); computed && k == KindValueType {
			return KindValueType
		}
	}

	// Name-pattern fallbacks for cases where inheritance is not yet
	// resolvable. Heuristics, kept in this exact order.
	switch {
	case strings.HasSuffix(t.name, "Enum"):
		return KindValueType
	case strings.Contains(t.name, "Struct") &&
		strings.HasPrefix(t.name, "Generic") && strings.HasSuffix(t.name, "Struct"):
		return KindValueType
	case strings.Contains(t.name, "Delegate"):
		return KindClass
	}

	return KindClass
}
