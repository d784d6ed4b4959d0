package column

import (
	"errors"
	"testing"

	"github.com/dot5enko/column-engine/lists"
	"github.com/dot5enko/column-engine/schema"
)

func expectValues(t *testing.T, col Column, want []int64) {
	t.Helper()

	if col.Size() != len(want) {
		t.Fatalf("Expected size %d but got %d", len(want), col.Size())
	}
	for i, w := range want {
		v, err := col.Get(schema.TID(i))
		if err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
		got, err := v.Int()
		if err != nil {
			t.Fatalf("unexpected error at %d: %v", i, err)
		}
		if got != w {
			t.Errorf("position %d: Expected %d but got %d", i, w, got)
		}
	}
}

func TestMaterializedInsertGet(t *testing.T) {

	col := NewMaterialized[int64]("a")

	for _, v := range []int64{5, 3, 9, 3} {
		if err := col.Insert(schema.Int(v)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	expectValues(t, col, []int64{5, 3, 9, 3})

	if _, err := col.Get(4); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange but got %v", err)
	}
}

func TestMaterializedInsertTypeMismatch(t *testing.T) {

	col := NewMaterialized[int64]("a")

	if err := col.Insert(schema.Text("nope")); !errors.Is(err, schema.ErrTypeMismatch) {
		t.Errorf("Expected ErrTypeMismatch but got %v", err)
	}
	if col.Size() != 0 {
		t.Errorf("Expected size %d but got %d", 0, col.Size())
	}
}

func TestMaterializedUpdate(t *testing.T) {

	col := NewMaterialized[int64]("a")
	col.AppendSlice([]int64{1, 2, 3})

	if err := col.Update(1, schema.Int(20)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectValues(t, col, []int64{1, 20, 3})

	if err := col.Update(3, schema.Int(0)); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange but got %v", err)
	}

	if err := col.UpdateMany(lists.PositionList{0, 2}, schema.Int(7)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectValues(t, col, []int64{7, 20, 7})
}

func TestMaterializedRemove(t *testing.T) {

	col := NewMaterialized[int64]("a")
	col.AppendSlice([]int64{10, 20, 30, 40, 50})

	if err := col.Remove(1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expectValues(t, col, []int64{10, 30, 40, 50})

	if err := col.Remove(9); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("Expected ErrOutOfRange but got %v", err)
	}
}

// the sorted batch must be processed back to front, otherwise the
// later positions would name the wrong rows after the first removal
func TestMaterializedRemoveMany(t *testing.T) {

	col := NewMaterialized[int64]("a")
	col.AppendSlice([]int64{0, 1, 2, 3, 4, 5})

	if err := col.RemoveMany(lists.PositionList{0, 2, 5}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectValues(t, col, []int64{1, 3, 4})
}

func TestMaterializedClearAndCopy(t *testing.T) {

	col := NewMaterialized[string]("names")
	col.AppendSlice([]string{"ada", "grace"})

	clone := col.Copy()
	if !clone.Equal(col) {
		t.Fatalf("copy should equal the original")
	}

	// mutating the clone must not touch the original
	if err := clone.Update(0, schema.Text("linus")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v, _ := col.Get(0)
	if s, _ := v.Text(); s != "ada" {
		t.Errorf("Expected ada but got %s", s)
	}

	col.Clear()
	if col.Size() != 0 {
		t.Errorf("Expected size %d but got %d", 0, col.Size())
	}
	if clone.Size() != 2 {
		t.Errorf("Expected size %d but got %d", 2, clone.Size())
	}
}

func TestMaterializedFootprint(t *testing.T) {

	col := NewMaterialized[string]("names")
	col.AppendSlice([]string{"ab", "cdef"})

	if got := col.SizeInBytes(); got != 6 {
		t.Errorf("Expected %d but got %d", 6, got)
	}

	ints := NewMaterialized[int64]("nums")
	ints.AppendSlice([]int64{1, 2, 3})

	if got := ints.SizeInBytes(); got < 3*8 {
		t.Errorf("Expected at least %d but got %d", 24, got)
	}
}

func TestMaterializedClassification(t *testing.T) {

	col := Create(schema.IntAttribute, "a")

	if !col.Materialized() || col.Compressed() {
		t.Errorf("materialized column misclassified")
	}
	if col.Type() != schema.IntAttribute {
		t.Errorf("Expected %s but got %s", schema.IntAttribute, col.Type())
	}
}
