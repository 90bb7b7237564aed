package types

import (
	"sync"

	"github.com/dotmeta/dotmeta/metadata"
)

// Registry is the concurrent store of resolved type entities, keyed by
// token. It accepts inserts from any loader pass and lookups at any
// time; identity is by token, never by structural equality.
type Registry struct {
	mu      sync.RWMutex
	byToken map[metadata.Token]*TypeDef
	byName  map[string]*TypeDef
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byToken: make(map[metadata.Token]*TypeDef, 256),
		byName:  make(map[string]*TypeDef, 256),
	}
}

// Create inserts a new entity for the token and returns it. If the token
// already has an entity, the existing canonical entity is returned and
// the arguments are ignored.
func (r *Registry) Create(token metadata.Token, namespace, name string, flags uint32) *TypeDef {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byToken[token]; ok {
		return existing
	}

	td := &TypeDef{
		token:     token,
		namespace: namespace,
		name:      name,
		flags:     flags,
		reg:       r,
	}
	r.byToken[token] = td

	full := td.FullName()
	if _, taken := r.byName[full]; !taken && full != "" {
		r.byName[full] = td
	}
	return td
}

// Lookup returns the entity for a token, if one was inserted.
func (r *Registry) Lookup(token metadata.Token) (*TypeDef, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	td, ok := r.byToken[token]
	return td, ok
}

// LookupName returns the entity registered under namespace and name.
// When several scopes define the same full name, the first insertion
// wins.
func (r *Registry) LookupName(namespace, name string) (*TypeDef, bool) {
	full := name
	if namespace != "" {
		full = namespace + "." + name
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	td, ok := r.byName[full]
	return td, ok
}

// Len returns the number of registered entities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byToken)
}

// All returns a snapshot of every registered entity in unspecified order.
func (r *Registry) All() []*TypeDef {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*TypeDef, 0, len(r.byToken))
	for _, td := range r.byToken {
		out = append(out, td)
	}
	return out
}
