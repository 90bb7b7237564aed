// Package depgraph builds the dependency graph of the loader's units of
// work and collapses it into an ordered sequence of levels.
//
// The graph is static: it depends only on the registered unit set, never
// on any input file. Construction validates that every declared
// dependency names a registered unit, and leveling fails deterministically
// when the graph contains a cycle. Both failures indicate a defect in the
// unit registry and are fatal.
package depgraph

import (
	dmerrors "github.com/dotmeta/dotmeta/errors"
	"github.com/dotmeta/dotmeta/metadata"
)

// UnitInfo is the declared shape of one unit of work: the table it owns
// and the tables it depends on.
type UnitInfo struct {
	Table metadata.TableID
	Deps  []metadata.TableID
}

// Graph is the validated dependency graph. Reads are safe for concurrent
// use after Build.
type Graph struct {
	units      []UnitInfo
	index      map[metadata.TableID]int
	dependents map[metadata.TableID][]metadata.TableID
}

// Build validates the unit set and constructs the graph. Every declared
// dependency must have a registered unit; a violation yields a
// MissingDependencyError naming the missing table and its dependents.
func Build(units []UnitInfo) (*Graph, error) {
	g := &Graph{
		units:      units,
		index:      make(map[metadata.TableID]int, len(units)),
		dependents: make(map[metadata.TableID][]metadata.TableID, len(units)),
	}

	for i, u := range units {
		if prev, dup := g.index[u.Table]; dup {
			return nil, dmerrors.New(dmerrors.PhaseGraph, dmerrors.KindDuplicateRow).
				Table(u.Table.String()).
				Detail("unit registered twice (positions %d and %d)", prev, i).
				Build()
		}
		g.index[u.Table] = i
	}

	var missing *dmerrors.MissingDependencyError
	for _, u := range units {
		for _, dep := range u.Deps {
			if _, ok := g.index[dep]; !ok {
				// Report the first missing table encountered in
				// registration order, with every unit that wanted it.
				if missing == nil {
					missing = &dmerrors.MissingDependencyError{Missing: dep.String()}
				}
				if missing.Missing == dep.String() {
					missing.Dependents = append(missing.Dependents, u.Table.String())
				}
				continue
			}
			g.dependents[dep] = append(g.dependents[dep], u.Table)
		}
	}
	if missing != nil {
		return nil, missing
	}

	return g, nil
}

// Units returns the registered units in registration order.
func (g *Graph) Units() []UnitInfo {
	return g.units
}

// Dependents returns the tables whose units depend on the given table.
func (g *Graph) Dependents(table metadata.TableID) []metadata.TableID {
	return g.dependents[table]
}

// Levels collapses the graph into an ordered sequence of levels. Level 0
// holds the units with no dependencies; level k holds the units whose
// dependencies all sit in earlier levels, at least one of them in level
// k-1. Units within one level never depend on each other, directly or
// transitively. A pass that places nothing while units remain means the
// graph contains a cycle.
func (g *Graph) Levels() ([][]metadata.TableID, error) {
	placed := make(map[metadata.TableID]bool, len(g.units))
	var levels [][]metadata.TableID

	remaining := len(g.units)
	for remaining > 0 {
		var level []metadata.TableID
		for _, u := range g.units {
			if placed[u.Table] {
				continue
			}
			ready := true
			for _, dep := range u.Deps {
				if !placed[dep] {
					ready = false
					break
				}
			}
			if ready {
				level = append(level, u.Table)
			}
		}

		if len(level) == 0 {
			var unplaced []string
			for _, u := range g.units {
				if !placed[u.Table] {
					unplaced = append(unplaced, u.Table.String())
				}
			}
			return nil, &dmerrors.CycleError{Unplaced: unplaced}
		}

		for _, table := range level {
			placed[table] = true
		}
		remaining -= len(level)
		levels = append(levels, level)
	}

	return levels, nil
}
