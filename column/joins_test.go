package column

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/dot5enko/column-engine/lists"
	"github.com/dot5enko/column-engine/schema"
)

func pairSet(t *testing.T, pairs lists.PositionListPair) map[[2]schema.TID]int {
	t.Helper()

	if len(pairs.First) != len(pairs.Second) {
		t.Fatalf("ragged pair lists: %d vs %d", len(pairs.First), len(pairs.Second))
	}

	set := make(map[[2]schema.TID]int, pairs.Len())
	for i := range pairs.First {
		set[[2]schema.TID{pairs.First[i], pairs.Second[i]}]++
	}
	return set
}

func expectSamePairs(t *testing.T, got, want lists.PositionListPair) {
	t.Helper()

	gotSet := pairSet(t, got)
	wantSet := pairSet(t, want)

	if len(gotSet) != len(wantSet) || got.Len() != want.Len() {
		t.Fatalf("pair sets differ: %d/%d pairs vs %d/%d", got.Len(), len(gotSet), want.Len(), len(wantSet))
	}
	for pair, n := range wantSet {
		if gotSet[pair] != n {
			t.Fatalf("pair %v: Expected %d occurrences but got %d", pair, n, gotSet[pair])
		}
	}
}

func TestNestedLoopJoin(t *testing.T) {

	left := NewMaterialized[int64]("l")
	left.AppendSlice([]int64{1, 2, 3, 2})

	right := NewMaterialized[int64]("r")
	right.AppendSlice([]int64{2, 4, 2})

	result, err := left.NestedLoopJoin(right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// outer-then-inner emission order
	expectPositions(t, result.First, lists.PositionList{1, 1, 3, 3})
	expectPositions(t, result.Second, lists.PositionList{0, 2, 0, 2})
}

func TestHashJoinMatchesNestedLoop(t *testing.T) {

	left := NewMaterialized[int64]("l")
	right := NewMaterialized[int64]("r")
	for i := 0; i < 300; i++ {
		left.Append(rand.Int63n(30))
	}
	for i := 0; i < 200; i++ {
		right.Append(rand.Int63n(30))
	}

	hashed, err := left.HashJoin(right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nested, err := left.NestedLoopJoin(right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectSamePairs(t, hashed, nested)
}

func TestSortMergeJoinMatchesNestedLoop(t *testing.T) {

	left := NewMaterialized[int64]("l")
	right := NewMaterialized[int64]("r")
	for i := 0; i < 300; i++ {
		left.Append(rand.Int63n(30))
	}
	for i := 0; i < 200; i++ {
		right.Append(rand.Int63n(30))
	}

	merged, err := left.SortMergeJoin(right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nested, err := left.NestedLoopJoin(right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectSamePairs(t, merged, nested)
}

func TestJoinsAcrossVariants(t *testing.T) {

	// a dictionary column joined against an rle one, same element type
	left := NewDictionary[string]("l")
	left.AppendSlice([]string{"a", "b", "a", "c"})

	right := NewRLE[string]("r")
	right.AppendSlice([]string{"a", "a", "c"})

	hashed, err := left.HashJoin(right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	nested, err := left.NestedLoopJoin(right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expectSamePairs(t, hashed, nested)

	if hashed.Len() != 5 {
		t.Errorf("Expected %d pairs but got %d", 5, hashed.Len())
	}
}

func TestJoinTypeMismatch(t *testing.T) {

	left := NewMaterialized[int64]("l")
	left.Append(1)

	right := NewMaterialized[string]("r")
	right.Append("1")

	if _, err := left.HashJoin(right); !errors.Is(err, schema.ErrTypeMismatch) {
		t.Errorf("Expected ErrTypeMismatch but got %v", err)
	}
	if _, err := left.SortMergeJoin(right); !errors.Is(err, schema.ErrTypeMismatch) {
		t.Errorf("Expected ErrTypeMismatch but got %v", err)
	}
	if _, err := left.NestedLoopJoin(right); !errors.Is(err, schema.ErrTypeMismatch) {
		t.Errorf("Expected ErrTypeMismatch but got %v", err)
	}
}

func TestHashJoinSides(t *testing.T) {

	left := NewMaterialized[int64]("l")
	left.AppendSlice([]int64{7, 8})

	right := NewMaterialized[int64]("r")
	right.AppendSlice([]int64{8, 8, 7})

	result, err := left.HashJoin(right)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// First carries build-side (left) positions, Second probe-side ones
	for i := range result.First {
		lv, _ := left.Get(result.First[i])
		rv, _ := right.Get(result.Second[i])
		l, _ := lv.Int()
		r, _ := rv.Int()
		if l != r {
			t.Errorf("pair %d joins %d with %d", i, l, r)
		}
	}
	if result.Len() != 3 {
		t.Errorf("Expected %d pairs but got %d", 3, result.Len())
	}
}
