// Package metadata defines the data model shared by the loading core:
// tokens, table identities, coded indexes, per-table row structures, and
// the TableStream view the loader consumes.
//
// Rows arrive already parsed from the physical table stream; this package
// carries no byte-level decoding. Heap-valued columns hold heap offsets,
// cross-table columns hold either a plain 1-based row id (when the format
// fixes the target table) or a CodedIndex (when the target is ambiguous).
//
// # Key Types
//
//   - Token: opaque (table, row) identity for a metadata entity
//   - TableID: the closed set of metadata table kinds
//   - CodedIndex: a reference into one of several possible tables
//   - TableStream: the per-table row collections handed to the loader
package metadata
