package column

import (
	"slices"

	"github.com/dot5enko/column-engine/bits"
	"github.com/dot5enko/column-engine/schema"
)

// Dictionary deduplicates values into a table in first-seen order and
// stores one uint32 table reference per row. The table only ever
// grows; entries stay even when no row references them any more, an
// accepted space trade-off under churn. Clear drops the table too.
type Dictionary[T element] struct {
	typedBase[T]

	dict []T
	refs []uint32
}

func NewDictionary[T element](name string) *Dictionary[T] {
	c := &Dictionary[T]{
		typedBase: newTypedBase[T](name),
	}
	c.self = c
	return c
}

// lookupOrAdd probes the table linearly, appending on miss. O(distinct
// count) per call.
func (c *Dictionary[T]) lookupOrAdd(v T) uint32 {
	for i, existing := range c.dict {
		if existing == v {
			return uint32(i)
		}
	}

	c.dict = append(c.dict, v)
	return uint32(len(c.dict) - 1)
}

func (c *Dictionary[T]) Append(v T) {
	c.push(v)
}

func (c *Dictionary[T]) AppendSlice(vs []T) {
	for _, v := range vs {
		c.push(v)
	}
}

// DistinctCount reports the value-table size; it never decreases over
// insert/update sequences.
func (c *Dictionary[T]) DistinctCount() int {
	return len(c.dict)
}

func (c *Dictionary[T]) Size() int {
	return len(c.refs)
}

func (c *Dictionary[T]) at(tid schema.TID) T {
	return c.dict[c.refs[tid]]
}

func (c *Dictionary[T]) set(tid schema.TID, v T) {
	c.refs[tid] = c.lookupOrAdd(v)
}

func (c *Dictionary[T]) push(v T) {
	c.refs = append(c.refs, c.lookupOrAdd(v))
}

// removeAt drops only the reference; shrinking the table would shift
// every index after the removed entry.
func (c *Dictionary[T]) removeAt(tid schema.TID) {
	c.refs = slices.Delete(c.refs, int(tid), int(tid)+1)
}

func (c *Dictionary[T]) Clear() {
	c.refs = c.refs[:0]
	c.dict = c.dict[:0]
}

// SizeInBytes ignores table entries no index references any more.
func (c *Dictionary[T]) SizeInBytes() int {
	return len(c.refs)*4 + len(c.dict)*c.Type().Width()
}

func (c *Dictionary[T]) Copy() Column {
	clone := NewDictionary[T](c.name)
	clone.dict = slices.Clone(c.dict)
	clone.refs = slices.Clone(c.refs)
	return clone
}

func (c *Dictionary[T]) Materialized() bool {
	return false
}

func (c *Dictionary[T]) Compressed() bool {
	return true
}

func (c *Dictionary[T]) Store(path string) error {
	w := bits.NewWriter(8+len(c.dict)*8+len(c.refs)*4, byteOrder)

	w.PutU32(uint32(len(c.dict)))
	for _, v := range c.dict {
		writeElem(w, v)
	}

	w.PutU32(uint32(len(c.refs)))
	for _, ref := range c.refs {
		w.PutU32(ref)
	}

	return writeSnapshot(path, c.name, c.uid, variantDictionary, c.Type(), w.Bytes())
}

func (c *Dictionary[T]) Load(path string) error {
	r, uid, err := readSnapshot(path, c.name, variantDictionary, c.Type())
	if err != nil {
		return err
	}

	dictLen, err := r.ReadU32()
	if err != nil {
		return corruptPayload(c.name, err)
	}
	dict := make([]T, 0, dictLen)
	for i := 0; i < int(dictLen); i++ {
		v, err := readElem[T](r)
		if err != nil {
			return corruptPayload(c.name, err)
		}
		dict = append(dict, v)
	}

	refsLen, err := r.ReadU32()
	if err != nil {
		return corruptPayload(c.name, err)
	}
	refs := make([]uint32, 0, refsLen)
	for i := 0; i < int(refsLen); i++ {
		ref, err := r.ReadU32()
		if err != nil {
			return corruptPayload(c.name, err)
		}
		if int(ref) >= len(dict) {
			return corruptPayload(c.name, ErrCorruptSnapshot)
		}
		refs = append(refs, ref)
	}

	c.dict = dict
	c.refs = refs
	c.uid = uid
	return nil
}
