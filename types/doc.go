// Package types holds the resolved type model produced by the loader.
//
// TypeDef represents one resolved type: locally defined, externally
// referenced, or a generic instantiation. Entities are created with
// minimal identity early in the load, enriched (members attached, base
// and origin links set) by later passes, and become read-only once the
// pipeline finishes.
//
// Derived properties are computed lazily and cached: Kind classification,
// layout, and the base-type link all use write-once semantics so that
// concurrent passes can race benignly. Cross-type links are stored as
// tokens and resolved through the Registry on demand, never as owning
// pointers, so the type graph may contain mutual references freely.
//
// # Key Types
//
//   - Registry: concurrent token → TypeDef store with name lookup
//   - TypeDef: one resolved type with lazy classification
//   - Kind: the derived flavor of a type (class, interface, value type, ...)
//
// This package performs no loading itself; the loader package populates it.
package types
