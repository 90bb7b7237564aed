package loader

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/dotmeta/dotmeta/metadata"
)

// stubUnit lets executor tests drive levels with arbitrary behavior.
type stubUnit struct {
	table metadata.TableID
	load  func(*Context) error
}

func (s stubUnit) Table() metadata.TableID          { return s.table }
func (s stubUnit) Dependencies() []metadata.TableID { return nil }
func (s stubUnit) Load(ctx *Context) error          { return s.load(ctx) }

func testContext() *Context {
	return NewContext(&metadata.TableStream{}, nil)
}

func TestRunLevelAllSucceed(t *testing.T) {
	var ran int32
	units := make([]Unit, 5)
	for i := range units {
		units[i] = stubUnit{
			table: metadata.TableID(i),
			load: func(*Context) error {
				atomic.AddInt32(&ran, 1)
				return nil
			},
		}
	}

	p := newPool(2, zap.NewNop())
	defer p.close()

	if err := p.runLevel(testContext(), units); err != nil {
		t.Fatalf("runLevel failed: %v", err)
	}
	if ran != 5 {
		t.Fatalf("%d units ran, want 5", ran)
	}
}

func TestRunLevelReportsFirstRegisteredError(t *testing.T) {
	errEarly := errors.New("early unit")
	errLate := errors.New("late unit")

	// The later-registered unit fails immediately; the earlier one fails
	// after a delay. The reported error must still be the earlier one.
	units := []Unit{
		stubUnit{table: metadata.TableField, load: func(*Context) error {
			time.Sleep(20 * time.Millisecond)
			return errEarly
		}},
		stubUnit{table: metadata.TableParam, load: func(*Context) error {
			return errLate
		}},
	}

	p := newPool(2, zap.NewNop())
	defer p.close()

	err := p.runLevel(testContext(), units)
	if !errors.Is(err, errEarly) {
		t.Fatalf("runLevel returned %v, want the first-registered error %v", err, errEarly)
	}
}

func TestRunLevelSiblingsRunToCompletion(t *testing.T) {
	var completed int32
	boom := errors.New("boom")

	units := []Unit{
		stubUnit{table: metadata.TableField, load: func(*Context) error {
			return boom
		}},
		stubUnit{table: metadata.TableParam, load: func(*Context) error {
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&completed, 1)
			return nil
		}},
		stubUnit{table: metadata.TableEvent, load: func(*Context) error {
			time.Sleep(10 * time.Millisecond)
			atomic.AddInt32(&completed, 1)
			return nil
		}},
	}

	p := newPool(3, zap.NewNop())
	defer p.close()

	err := p.runLevel(testContext(), units)
	if !errors.Is(err, boom) {
		t.Fatalf("runLevel returned %v, want %v", err, boom)
	}
	if completed != 2 {
		t.Fatalf("%d siblings completed after a failure, want 2", completed)
	}
}

func TestRunLevelMoreUnitsThanWorkers(t *testing.T) {
	var ran int32
	units := make([]Unit, 20)
	for i := range units {
		units[i] = stubUnit{
			table: metadata.TableID(i),
			load: func(*Context) error {
				atomic.AddInt32(&ran, 1)
				return nil
			},
		}
	}

	p := newPool(1, zap.NewNop())
	defer p.close()

	if err := p.runLevel(testContext(), units); err != nil {
		t.Fatalf("runLevel failed: %v", err)
	}
	if ran != 20 {
		t.Fatalf("%d units ran, want 20", ran)
	}
}
