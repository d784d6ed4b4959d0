package column

import (
	"slices"

	"github.com/fatih/color"
	"golang.org/x/sync/errgroup"

	"github.com/dot5enko/column-engine/lists"
	"github.com/dot5enko/column-engine/ops"
	"github.com/dot5enko/column-engine/schema"
)

// Sort returns a permutation of [0, Size()) that orders the column.
// The sort is stable: rows holding equal values keep their original
// relative order.
func (b *typedBase[T]) Sort(order schema.SortOrder) lists.PositionList {
	return sortedPositions(b.self, order)
}

type elemPos[T element] struct {
	value T
	tid   schema.TID
}

func sortedPositions[T element](c body[T], order schema.SortOrder) lists.PositionList {
	n := c.Size()

	pairs := make([]elemPos[T], n)
	for i := 0; i < n; i++ {
		pairs[i] = elemPos[T]{value: c.at(schema.TID(i)), tid: schema.TID(i)}
	}

	slices.SortStableFunc(pairs, func(x, y elemPos[T]) int {
		r := compareElems(x.value, y.value)
		if order == schema.Descending {
			r = -r
		}
		return r
	})

	result := make(lists.PositionList, n)
	for i, p := range pairs {
		result[i] = p.tid
	}
	return result
}

// Selection scans the column and returns, in ascending order, the
// positions whose value relates to v per comp. An unrecognized
// comparator yields an empty result, not an error.
func (b *typedBase[T]) Selection(v schema.Value, comp schema.ValueComparator) (lists.PositionList, error) {
	target, err := valueAs[T](v)
	if err != nil {
		return nil, err
	}

	tracef("%s", color.HiBlackString("serial %s-selection over %d rows of `%s`", comp, b.self.Size(), b.name))

	return b.selectRange(target, comp, 0, b.self.Size()), nil
}

// selectRange runs the serial predicate over positions [lo, hi).
func (b *typedBase[T]) selectRange(target T, comp schema.ValueComparator, lo, hi int) lists.PositionList {
	if lo >= hi {
		return lists.PositionList{}
	}

	values := make([]T, hi-lo)
	for i := lo; i < hi; i++ {
		values[i-lo] = b.self.at(schema.TID(i))
	}

	out := make(lists.PositionList, len(values))
	filled := selectKernel(values, target, comp, out)
	if filled < 0 {
		return lists.PositionList{}
	}

	out = out[:filled]
	if lo > 0 {
		for i := range out {
			out[i] += schema.TID(lo)
		}
	}
	return out
}

// selectKernel dispatches to the dense scan kernels. Returns -1 for an
// unknown comparator.
func selectKernel[T element](values []T, target T, comp schema.ValueComparator, out []schema.TID) int {
	switch comp {
	case schema.Equal:
		return ops.SelectEqual(values, target, out)
	case schema.Lesser:
		switch vs := any(values).(type) {
		case []int64:
			return ops.SelectLess(vs, any(target).(int64), out)
		case []float64:
			return ops.SelectLess(vs, any(target).(float64), out)
		case []string:
			return ops.SelectLess(vs, any(target).(string), out)
		case []bool:
			return selectBool(vs, any(target).(bool), -1, out)
		}
	case schema.Greater:
		switch vs := any(values).(type) {
		case []int64:
			return ops.SelectGreater(vs, any(target).(int64), out)
		case []float64:
			return ops.SelectGreater(vs, any(target).(float64), out)
		case []string:
			return ops.SelectGreater(vs, any(target).(string), out)
		case []bool:
			return selectBool(vs, any(target).(bool), 1, out)
		}
	}
	return -1
}

// selectBool orders booleans as false < true.
func selectBool(values []bool, target bool, sign int, out []schema.TID) int {
	filled := 0
	for i, v := range values {
		match := false
		if sign < 0 {
			match = !v && target
		} else {
			match = v && !target
		}
		if match {
			out[filled] = schema.TID(i)
			filled++
		}
	}
	return filled
}

// ParallelSelection partitions [0, Size()) into threads contiguous
// ranges, runs the serial predicate per partition, and concatenates
// the partials in partition order. The result is identical to
// Selection for any thread budget.
func (b *typedBase[T]) ParallelSelection(v schema.Value, comp schema.ValueComparator, threads int) (lists.PositionList, error) {
	target, err := valueAs[T](v)
	if err != nil {
		return nil, err
	}

	n := b.self.Size()
	if threads > n {
		threads = n
	}
	if threads <= 1 {
		return b.selectRange(target, comp, 0, n), nil
	}

	tracef("%s", color.HiBlackString("parallel %s-selection over %d rows of `%s`, %d partitions", comp, n, b.name, threads))

	chunk := (n + threads - 1) / threads
	parts := make([]lists.PositionList, threads)

	var g errgroup.Group
	for p := 0; p < threads; p++ {
		lo := p * chunk
		hi := min(lo+chunk, n)
		part := p

		g.Go(func() error {
			parts[part] = b.selectRange(target, comp, lo, hi)
			return nil
		})
	}

	// workers only fill their own partition slot, no error path
	_ = g.Wait()

	return lists.Concat(parts...), nil
}
