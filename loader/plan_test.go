package loader

import (
	"testing"

	"github.com/dotmeta/dotmeta/metadata"
)

func TestExecutionPlanBuilds(t *testing.T) {
	plan, err := executionPlan()
	if err != nil {
		t.Fatalf("executionPlan failed: %v", err)
	}
	if len(plan) == 0 {
		t.Fatal("plan has no levels")
	}
}

func TestExecutionPlanCoversEveryUnit(t *testing.T) {
	plan, err := executionPlan()
	if err != nil {
		t.Fatalf("executionPlan failed: %v", err)
	}

	seen := make(map[metadata.TableID]int)
	for _, level := range plan {
		for _, u := range level {
			seen[u.Table()]++
		}
	}

	units := allUnits()
	if len(seen) != len(units) {
		t.Fatalf("plan places %d tables, registry has %d units", len(seen), len(units))
	}
	for _, u := range units {
		if n := seen[u.Table()]; n != 1 {
			t.Errorf("table %v placed %d times, want 1", u.Table(), n)
		}
	}
}

func TestExecutionPlanRespectsDependencies(t *testing.T) {
	plan, err := executionPlan()
	if err != nil {
		t.Fatalf("executionPlan failed: %v", err)
	}

	levelOf := make(map[metadata.TableID]int)
	for i, level := range plan {
		for _, u := range level {
			levelOf[u.Table()] = i
		}
	}

	for _, level := range plan {
		for _, u := range level {
			for _, dep := range u.Dependencies() {
				if levelOf[dep] >= levelOf[u.Table()] {
					t.Errorf("unit %v at level %d depends on %v at level %d",
						u.Table(), levelOf[u.Table()], dep, levelOf[dep])
				}
			}
		}
	}
}
