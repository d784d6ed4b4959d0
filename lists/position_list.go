package lists

import "github.com/dot5enko/column-engine/schema"

// PositionList is an ordered sequence of row identifiers. Query results
// carry no uniqueness guarantee; a join may repeat a position.
type PositionList []schema.TID

// PositionListPair holds two parallel position lists of equal length,
// (First[i], Second[i]) being one matched row pair.
type PositionListPair struct {
	First  PositionList
	Second PositionList
}

func (p *PositionListPair) Push(left, right schema.TID) {
	p.First = append(p.First, left)
	p.Second = append(p.Second, right)
}

func (p PositionListPair) Len() int {
	return len(p.First)
}

// Sequence returns the identity list [0, n).
func Sequence(n int) PositionList {
	result := make(PositionList, n)
	for i := range result {
		result[i] = schema.TID(i)
	}
	return result
}

// Concat glues partial results together preserving part order.
func Concat(parts ...PositionList) PositionList {
	total := 0
	for _, part := range parts {
		total += len(part)
	}

	result := make(PositionList, 0, total)
	for _, part := range parts {
		result = append(result, part...)
	}
	return result
}
