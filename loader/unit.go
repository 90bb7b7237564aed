package loader

import (
	"sync"

	"github.com/dotmeta/dotmeta/loader/internal/depgraph"
	"github.com/dotmeta/dotmeta/metadata"
)

// Unit is one per-table decoding and integration step. Implementations
// declare the table they own and the tables they must see completed
// before running. Load is called at most once per pipeline run and may
// only write its own table's container and register entities.
type Unit interface {
	Table() metadata.TableID
	Dependencies() []metadata.TableID
	Load(ctx *Context) error
}

// The execution plan derives entirely from the static unit registry, so
// it is computed once on first use and reused by every subsequent load.
var (
	planOnce   sync.Once
	planLevels [][]Unit
	planErr    error
)

// executionPlan returns the memoized level plan. Graph or planning
// failures indicate a defect in the unit registry and poison every load.
func executionPlan() ([][]Unit, error) {
	planOnce.Do(func() {
		units := allUnits()

		infos := make([]depgraph.UnitInfo, len(units))
		byTable := make(map[metadata.TableID]Unit, len(units))
		for i, u := range units {
			infos[i] = depgraph.UnitInfo{Table: u.Table(), Deps: u.Dependencies()}
			byTable[u.Table()] = u
		}

		graph, err := depgraph.Build(infos)
		if err != nil {
			planErr = err
			return
		}
		levels, err := graph.Levels()
		if err != nil {
			planErr = err
			return
		}

		planLevels = make([][]Unit, len(levels))
		for i, level := range levels {
			planLevels[i] = make([]Unit, 0, len(level))
			for _, table := range level {
				planLevels[i] = append(planLevels[i], byTable[table])
			}
		}
	})
	return planLevels, planErr
}
