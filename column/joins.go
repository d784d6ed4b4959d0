package column

import (
	"fmt"

	"github.com/fatih/color"

	"github.com/dot5enko/column-engine/lists"
	"github.com/dot5enko/column-engine/schema"
)

// peer resolves the other side of a binary operation to the same
// element type, or reports a type mismatch.
func (b *typedBase[T]) peer(other Column) (body[T], error) {
	p, ok := other.(body[T])
	if !ok {
		return nil, fmt.Errorf("%w: cannot join column `%s` (%s) with `%s` (%s)",
			schema.ErrTypeMismatch, b.name, b.Type(), other.Name(), other.Type())
	}
	return p, nil
}

// HashJoin builds a multimap over this column and probes it with the
// other one. First holds build-side positions, Second probe-side ones.
// Pair order follows the probe scan; the result is an unordered set.
func (b *typedBase[T]) HashJoin(other Column) (lists.PositionListPair, error) {
	peer, err := b.peer(other)
	if err != nil {
		return lists.PositionListPair{}, err
	}

	n := b.self.Size()
	hashtable := make(map[T][]schema.TID, n)
	for i := 0; i < n; i++ {
		v := b.self.at(schema.TID(i))
		hashtable[v] = append(hashtable[v], schema.TID(i))
	}

	var result lists.PositionListPair

	m := peer.Size()
	for j := 0; j < m; j++ {
		for _, tid := range hashtable[peer.at(schema.TID(j))] {
			result.Push(tid, schema.TID(j))
		}
	}

	tracef("%s", color.HiBlackString("hash join `%s` x `%s`: %d build rows, %d probe rows, %d pairs",
		b.name, other.Name(), n, m, result.Len()))

	return result, nil
}

// SortMergeJoin sorts both sides and co-advances, emitting every
// cross pair of each equal-key region.
func (b *typedBase[T]) SortMergeJoin(other Column) (lists.PositionListPair, error) {
	peer, err := b.peer(other)
	if err != nil {
		return lists.PositionListPair{}, err
	}

	leftPerm := sortedPositions(b.self, schema.Ascending)
	rightPerm := sortedPositions(peer, schema.Ascending)

	var result lists.PositionListPair

	n, m := len(leftPerm), len(rightPerm)
	i, j := 0, 0
	for i < n && j < m {
		lv := b.self.at(leftPerm[i])
		rv := peer.at(rightPerm[j])

		switch c := compareElems(lv, rv); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			iEnd := i + 1
			for iEnd < n && compareElems(b.self.at(leftPerm[iEnd]), lv) == 0 {
				iEnd++
			}
			jEnd := j + 1
			for jEnd < m && compareElems(peer.at(rightPerm[jEnd]), rv) == 0 {
				jEnd++
			}

			for a := i; a < iEnd; a++ {
				for bb := j; bb < jEnd; bb++ {
					result.Push(leftPerm[a], rightPerm[bb])
				}
			}

			i, j = iEnd, jEnd
		}
	}

	return result, nil
}

// NestedLoopJoin is the O(n*m) ground truth, outer-then-inner order.
func (b *typedBase[T]) NestedLoopJoin(other Column) (lists.PositionListPair, error) {
	peer, err := b.peer(other)
	if err != nil {
		return lists.PositionListPair{}, err
	}

	var result lists.PositionListPair

	n := b.self.Size()
	m := peer.Size()
	for i := 0; i < n; i++ {
		v := b.self.at(schema.TID(i))
		for j := 0; j < m; j++ {
			if v == peer.at(schema.TID(j)) {
				result.Push(schema.TID(i), schema.TID(j))
			}
		}
	}

	return result, nil
}
