// Package dotmeta provides a loading core for managed-code metadata.
//
// The library ingests the pre-parsed metadata tables of a managed-code
// binary (the Module/TypeDef/MethodDef/... table set) and produces a
// fully resolved, cross-referenced object model: typed per-table
// containers plus a concurrent type registry whose entries carry
// lazily-computed classification, inheritance, and layout information.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	dotmeta/
//	├── metadata/    Tokens, table ids, coded indexes, row structures,
//	│                and the TableStream input view
//	├── heaps/       Readers for the four binary heaps (strings, blobs,
//	│                GUIDs, user strings)
//	├── types/       Type registry and resolved type entities with lazy
//	│                kind classification and compatibility checks
//	├── loader/      Per-table units of work, the shared load context,
//	│                cross-reference resolution, and the parallel
//	│                level-by-level execution engine
//	└── errors/      Structured error types for debugging
//
// # Quick Start
//
// Load a parsed table stream:
//
//	result, err := loader.Load(stream, heaps)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	td, ok := result.Types.LookupName("System", "String")
//	if ok {
//	    fmt.Println(td.Kind())
//	}
//
// The loader plans its ~50 interdependent decoding passes once per
// process: passes are grouped into levels of mutually independent
// units, each level runs concurrently on a worker pool, and a barrier
// separates levels so a pass only ever reads tables that finished in
// an earlier level.
package dotmeta
