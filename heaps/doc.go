// Package heaps provides read-only views over the four binary heaps of a
// metadata stream: strings, blobs, GUIDs, and user strings.
//
// Heaps are immutable for the lifetime of a load and are shared between
// all concurrently running loader units without synchronization. Lookups
// never fail hard: an out-of-range or malformed offset yields the zero
// value, matching the loader's policy that a missing reference is the
// caller's judgement call.
package heaps
