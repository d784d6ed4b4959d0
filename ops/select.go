package ops

import (
	"golang.org/x/exp/constraints"

	"github.com/dot5enko/column-engine/schema"
)

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// SelectEqual scans arr and writes the indices of elements equal to cmp
// into out, which must be at least len(arr) long. Returns the number of
// indices written; the written prefix is ascending.
func SelectEqual[T comparable](arr []T, cmp T, out []schema.TID) int {
	n := len(arr)
	filled := 0
	i := 0

	for ; i+7 < n; i += 8 {
		a0, a1 := arr[i], arr[i+1]
		a2, a3 := arr[i+2], arr[i+3]
		a4, a5 := arr[i+4], arr[i+5]
		a6, a7 := arr[i+6], arr[i+7]

		out[filled] = schema.TID(i)
		filled += b2i(a0 == cmp)
		out[filled] = schema.TID(i + 1)
		filled += b2i(a1 == cmp)
		out[filled] = schema.TID(i + 2)
		filled += b2i(a2 == cmp)
		out[filled] = schema.TID(i + 3)
		filled += b2i(a3 == cmp)
		out[filled] = schema.TID(i + 4)
		filled += b2i(a4 == cmp)
		out[filled] = schema.TID(i + 5)
		filled += b2i(a5 == cmp)
		out[filled] = schema.TID(i + 6)
		filled += b2i(a6 == cmp)
		out[filled] = schema.TID(i + 7)
		filled += b2i(a7 == cmp)
	}

	// Tail elements
	for ; i < n; i++ {
		if arr[i] == cmp {
			out[filled] = schema.TID(i)
			filled++
		}
	}
	return filled
}

// SelectLess is SelectEqual for the arr[i] < cmp predicate.
func SelectLess[T constraints.Ordered](arr []T, cmp T, out []schema.TID) int {
	n := len(arr)
	filled := 0
	i := 0

	for ; i+7 < n; i += 8 {
		a0, a1 := arr[i], arr[i+1]
		a2, a3 := arr[i+2], arr[i+3]
		a4, a5 := arr[i+4], arr[i+5]
		a6, a7 := arr[i+6], arr[i+7]

		out[filled] = schema.TID(i)
		filled += b2i(a0 < cmp)
		out[filled] = schema.TID(i + 1)
		filled += b2i(a1 < cmp)
		out[filled] = schema.TID(i + 2)
		filled += b2i(a2 < cmp)
		out[filled] = schema.TID(i + 3)
		filled += b2i(a3 < cmp)
		out[filled] = schema.TID(i + 4)
		filled += b2i(a4 < cmp)
		out[filled] = schema.TID(i + 5)
		filled += b2i(a5 < cmp)
		out[filled] = schema.TID(i + 6)
		filled += b2i(a6 < cmp)
		out[filled] = schema.TID(i + 7)
		filled += b2i(a7 < cmp)
	}

	// Tail elements
	for ; i < n; i++ {
		if arr[i] < cmp {
			out[filled] = schema.TID(i)
			filled++
		}
	}
	return filled
}

// SelectGreater is SelectEqual for the arr[i] > cmp predicate.
func SelectGreater[T constraints.Ordered](arr []T, cmp T, out []schema.TID) int {
	n := len(arr)
	filled := 0
	i := 0

	for ; i+7 < n; i += 8 {
		a0, a1 := arr[i], arr[i+1]
		a2, a3 := arr[i+2], arr[i+3]
		a4, a5 := arr[i+4], arr[i+5]
		a6, a7 := arr[i+6], arr[i+7]

		out[filled] = schema.TID(i)
		filled += b2i(a0 > cmp)
		out[filled] = schema.TID(i + 1)
		filled += b2i(a1 > cmp)
		out[filled] = schema.TID(i + 2)
		filled += b2i(a2 > cmp)
		out[filled] = schema.TID(i + 3)
		filled += b2i(a3 > cmp)
		out[filled] = schema.TID(i + 4)
		filled += b2i(a4 > cmp)
		out[filled] = schema.TID(i + 5)
		filled += b2i(a5 > cmp)
		out[filled] = schema.TID(i + 6)
		filled += b2i(a6 > cmp)
		out[filled] = schema.TID(i + 7)
		filled += b2i(a7 > cmp)
	}

	// Tail elements
	for ; i < n; i++ {
		if arr[i] > cmp {
			out[filled] = schema.TID(i)
			filled++
		}
	}
	return filled
}
