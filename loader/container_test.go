package loader

import (
	"sync"
	"testing"
)

func TestTableAppendGet(t *testing.T) {
	tbl := NewTable[string](4)

	if rid := tbl.Append("a"); rid != 1 {
		t.Fatalf("first Append returned rid %d, want 1", rid)
	}
	if rid := tbl.Append("b"); rid != 2 {
		t.Fatalf("second Append returned rid %d, want 2", rid)
	}

	got, ok := tbl.Get(2)
	if !ok || got != "b" {
		t.Fatalf("Get(2) = %q, %v; want \"b\", true", got, ok)
	}
}

func TestTableGetOutOfRange(t *testing.T) {
	tbl := NewTable[int](0)
	tbl.Append(7)

	for _, rid := range []uint32{0, 2, 100} {
		if _, ok := tbl.Get(rid); ok {
			t.Errorf("Get(%d) reported a row in a 1-row table", rid)
		}
	}
}

func TestTableRowsSnapshot(t *testing.T) {
	tbl := NewTable[int](2)
	tbl.Append(1)
	tbl.Append(2)

	rows := tbl.Rows()
	tbl.Append(3)

	if len(rows) != 2 {
		t.Fatalf("snapshot grew with the table: len = %d, want 2", len(rows))
	}
}

func TestTableConcurrentAppend(t *testing.T) {
	const writers = 8
	const perWriter = 100

	tbl := NewTable[int](writers * perWriter)
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				tbl.Append(i)
			}
		}()
	}
	wg.Wait()

	if got := tbl.Len(); got != writers*perWriter {
		t.Fatalf("Len = %d after concurrent appends, want %d", got, writers*perWriter)
	}
}

func TestCellFirstWriteWins(t *testing.T) {
	var c Cell[string]

	if _, ok := c.Get(); ok {
		t.Fatal("empty cell reported a value")
	}
	if !c.Set("first") {
		t.Fatal("first Set reported failure")
	}
	if c.Set("second") {
		t.Fatal("second Set succeeded on an occupied cell")
	}

	got, ok := c.Get()
	if !ok || got != "first" {
		t.Fatalf("Get = %q, %v; want \"first\", true", got, ok)
	}
}

func TestCellConcurrentSet(t *testing.T) {
	var c Cell[int]
	var wins int64
	var mu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			if c.Set(i) {
				mu.Lock()
				wins++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if wins != 1 {
		t.Fatalf("%d writers won the cell, want exactly 1", wins)
	}
}
