package depgraph

import (
	"errors"
	"strings"
	"testing"

	dmerrors "github.com/dotmeta/dotmeta/errors"
	"github.com/dotmeta/dotmeta/metadata"
)

// Short aliases keep the tables readable; any four distinct ids work.
const (
	tA = metadata.TableModule
	tB = metadata.TableTypeRef
	tC = metadata.TableTypeDef
	tD = metadata.TableField
)

func mustBuild(t *testing.T, units []UnitInfo) *Graph {
	t.Helper()
	g, err := Build(units)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return g
}

func TestLevels_DiamondShape(t *testing.T) {
	g := mustBuild(t, []UnitInfo{
		{Table: tA},
		{Table: tB, Deps: []metadata.TableID{tA}},
		{Table: tC, Deps: []metadata.TableID{tA}},
		{Table: tD, Deps: []metadata.TableID{tB, tC}},
	})

	levels, err := g.Levels()
	if err != nil {
		t.Fatalf("Levels failed: %v", err)
	}

	want := [][]metadata.TableID{{tA}, {tB, tC}, {tD}}
	if len(levels) != len(want) {
		t.Fatalf("got %d levels, want %d: %v", len(levels), len(want), levels)
	}
	for i := range want {
		if len(levels[i]) != len(want[i]) {
			t.Fatalf("level %d = %v, want %v", i, levels[i], want[i])
		}
		for j := range want[i] {
			if levels[i][j] != want[i][j] {
				t.Errorf("level %d = %v, want %v", i, levels[i], want[i])
			}
		}
	}
}

func TestLevels_EveryUnitAfterItsDependencies(t *testing.T) {
	g := mustBuild(t, []UnitInfo{
		{Table: tD, Deps: []metadata.TableID{tC}},
		{Table: tC, Deps: []metadata.TableID{tB}},
		{Table: tB, Deps: []metadata.TableID{tA}},
		{Table: tA},
	})

	levels, err := g.Levels()
	if err != nil {
		t.Fatalf("Levels failed: %v", err)
	}

	levelOf := map[metadata.TableID]int{}
	for i, level := range levels {
		for _, table := range level {
			levelOf[table] = i
		}
	}
	for _, u := range g.Units() {
		for _, dep := range u.Deps {
			if levelOf[dep] >= levelOf[u.Table] {
				t.Errorf("%v (level %d) not after its dependency %v (level %d)",
					u.Table, levelOf[u.Table], dep, levelOf[dep])
			}
		}
	}
}

func TestLevels_Cycle(t *testing.T) {
	g := mustBuild(t, []UnitInfo{
		{Table: tA, Deps: []metadata.TableID{tB}},
		{Table: tB, Deps: []metadata.TableID{tA}},
	})

	_, err := g.Levels()
	if err == nil {
		t.Fatal("expected cycle error")
	}
	var cycleErr *dmerrors.CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected CycleError, got %T: %v", err, err)
	}
	if len(cycleErr.Unplaced) != 2 {
		t.Errorf("Unplaced = %v, want both tables", cycleErr.Unplaced)
	}
}

func TestLevels_PartialCycle(t *testing.T) {
	// A root level exists, then the cycle stalls the second pass.
	g := mustBuild(t, []UnitInfo{
		{Table: tA},
		{Table: tB, Deps: []metadata.TableID{tA, tC}},
		{Table: tC, Deps: []metadata.TableID{tB}},
	})

	_, err := g.Levels()
	var cycleErr *dmerrors.CycleError
	if !errors.As(err, &cycleErr) {
		t.Fatalf("expected CycleError, got %v", err)
	}
	if len(cycleErr.Unplaced) != 2 {
		t.Errorf("Unplaced = %v", cycleErr.Unplaced)
	}
}

func TestBuild_MissingDependency(t *testing.T) {
	_, err := Build([]UnitInfo{
		{Table: tA},
		{Table: tB, Deps: []metadata.TableID{tC}},
	})
	if err == nil {
		t.Fatal("expected missing-dependency error")
	}

	var missErr *dmerrors.MissingDependencyError
	if !errors.As(err, &missErr) {
		t.Fatalf("expected MissingDependencyError, got %T: %v", err, err)
	}
	if missErr.Missing != tC.String() {
		t.Errorf("Missing = %q, want %q", missErr.Missing, tC.String())
	}
	if !strings.Contains(err.Error(), tB.String()) {
		t.Errorf("error %q must name the dependent", err)
	}
}

func TestBuild_DuplicateUnit(t *testing.T) {
	_, err := Build([]UnitInfo{
		{Table: tA},
		{Table: tA},
	})
	if err == nil {
		t.Fatal("expected duplicate-unit error")
	}
}

func TestDependents(t *testing.T) {
	g := mustBuild(t, []UnitInfo{
		{Table: tA},
		{Table: tB, Deps: []metadata.TableID{tA}},
		{Table: tC, Deps: []metadata.TableID{tA}},
	})

	deps := g.Dependents(tA)
	if len(deps) != 2 {
		t.Fatalf("Dependents(%v) = %v", tA, deps)
	}
}

func TestLevels_NoIntraLevelDependency(t *testing.T) {
	g := mustBuild(t, []UnitInfo{
		{Table: tA},
		{Table: tB, Deps: []metadata.TableID{tA}},
		{Table: tC, Deps: []metadata.TableID{tA, tB}},
		{Table: tD, Deps: []metadata.TableID{tA}},
	})

	levels, err := g.Levels()
	if err != nil {
		t.Fatalf("Levels failed: %v", err)
	}

	depsOf := map[metadata.TableID][]metadata.TableID{}
	for _, u := range g.Units() {
		depsOf[u.Table] = u.Deps
	}
	for _, level := range levels {
		members := map[metadata.TableID]bool{}
		for _, table := range level {
			members[table] = true
		}
		for _, table := range level {
			for _, dep := range depsOf[table] {
				if members[dep] {
					t.Errorf("%v and its dependency %v share a level", table, dep)
				}
			}
		}
	}
}
