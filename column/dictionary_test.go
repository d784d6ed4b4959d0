package column

import (
	"errors"
	"testing"

	"github.com/dot5enko/column-engine/lists"
	"github.com/dot5enko/column-engine/schema"
)

func TestDictionaryDeduplicates(t *testing.T) {

	col := NewDictionary[string]("city")
	col.AppendSlice([]string{"rome", "oslo", "rome", "rome", "oslo"})

	if col.Size() != 5 {
		t.Fatalf("Expected size %d but got %d", 5, col.Size())
	}
	if col.DistinctCount() != 2 {
		t.Errorf("Expected %d distinct but got %d", 2, col.DistinctCount())
	}

	v, err := col.Get(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, _ := v.Text(); s != "rome" {
		t.Errorf("Expected rome but got %s", s)
	}
}

func TestDictionaryUpdateAddsEntries(t *testing.T) {

	col := NewDictionary[int64]("a")
	col.AppendSlice([]int64{1, 1, 2})

	if err := col.Update(0, schema.Int(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if col.DistinctCount() != 2 {
		t.Errorf("Expected %d distinct but got %d", 2, col.DistinctCount())
	}

	if err := col.Update(1, schema.Int(99)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if col.DistinctCount() != 3 {
		t.Errorf("Expected %d distinct but got %d", 3, col.DistinctCount())
	}

	expectValues(t, col, []int64{2, 99, 2})
}

// the value table never shrinks, even when no row references an entry
func TestDictionaryMonotonicGrowth(t *testing.T) {

	col := NewDictionary[int64]("a")

	seen := 0
	mutate := func(step func()) {
		step()
		if col.DistinctCount() < seen {
			t.Fatalf("distinct count fell from %d to %d", seen, col.DistinctCount())
		}
		seen = col.DistinctCount()
	}

	mutate(func() { col.AppendSlice([]int64{1, 2, 3, 2, 1}) })
	mutate(func() { _ = col.Update(0, schema.Int(7)) })
	mutate(func() { _ = col.Remove(4) })
	mutate(func() { _ = col.UpdateMany(lists.PositionList{0, 1, 2, 3}, schema.Int(8)) })
	mutate(func() { _ = col.Remove(0) })

	// every row now holds 8, yet old entries are all retained
	if col.DistinctCount() != 5 {
		t.Errorf("Expected %d distinct but got %d", 5, col.DistinctCount())
	}
}

func TestDictionaryRemoveMany(t *testing.T) {

	col := NewDictionary[int64]("a")
	col.AppendSlice([]int64{0, 1, 2, 3, 4, 5})

	if err := col.RemoveMany(lists.PositionList{1, 3, 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectValues(t, col, []int64{0, 2, 4})

	if col.DistinctCount() != 6 {
		t.Errorf("Expected %d distinct but got %d", 6, col.DistinctCount())
	}
}

func TestDictionaryClearDropsTable(t *testing.T) {

	col := NewDictionary[int64]("a")
	col.AppendSlice([]int64{1, 2, 3})

	col.Clear()

	if col.Size() != 0 {
		t.Errorf("Expected size %d but got %d", 0, col.Size())
	}
	if col.DistinctCount() != 0 {
		t.Errorf("Expected %d distinct but got %d", 0, col.DistinctCount())
	}
}

func TestDictionaryTypeMismatch(t *testing.T) {

	col := NewDictionary[int64]("a")

	if err := col.Insert(schema.Bool(true)); !errors.Is(err, schema.ErrTypeMismatch) {
		t.Errorf("Expected ErrTypeMismatch but got %v", err)
	}
}

func TestDictionaryFootprint(t *testing.T) {

	col := NewDictionary[int64]("a")
	col.AppendSlice([]int64{1, 1, 1, 1, 2})

	// 5 refs of 4 bytes + 2 table entries of 8 bytes
	if got := col.SizeInBytes(); got != 5*4+2*8 {
		t.Errorf("Expected %d but got %d", 5*4+2*8, got)
	}

	if col.Materialized() || !col.Compressed() {
		t.Errorf("dictionary column misclassified")
	}
}
