// Package loader turns a parsed table stream into the resolved object
// model: populated per-table containers plus the type registry.
//
// Loading is organized as ~50 units of work, one per metadata table.
// Each unit declares the tables it depends on; the static unit set is
// collapsed once per process into a sequence of levels, where units in
// the same level have no dependency relation to each other. Levels run
// in order on a shared worker pool with a barrier between levels, so a
// unit only ever reads tables whose owning units completed in an earlier
// level. A unit writes only its own table's container and the entities
// it registers.
//
// A failing unit does not cancel siblings already running in its level;
// they run to completion and the first error in registration order is
// reported, aborting before the next level starts.
//
// # Quick Start
//
//	result, err := loader.Load(stream, heapSet)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	td, _ := result.Types.LookupName("System", "Object")
package loader
