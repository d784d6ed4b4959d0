package column

import (
	"slices"

	"github.com/dot5enko/column-engine/bits"
	"github.com/dot5enko/column-engine/schema"
)

// maxRunLength caps a single run at what one count byte can hold.
const maxRunLength = 255

type runEntry[T element] struct {
	count uint8
	value T
}

// RLE stores maximal runs of consecutive equal values as (count,
// value) pairs. Inserts append only; runs merge at append time when
// the last run matches and has room. Interior updates may leave
// adjacent runs of equal values uncollapsed. Invariants: the counts
// sum to Size() and no run has count 0.
type RLE[T element] struct {
	typedBase[T]

	runs []runEntry[T]
}

func NewRLE[T element](name string) *RLE[T] {
	c := &RLE[T]{
		typedBase: newTypedBase[T](name),
	}
	c.self = c
	return c
}

func (c *RLE[T]) Append(v T) {
	c.push(v)
}

func (c *RLE[T]) AppendSlice(vs []T) {
	for _, v := range vs {
		c.push(v)
	}
}

// RunCount reports the number of stored runs.
func (c *RLE[T]) RunCount() int {
	return len(c.runs)
}

func (c *RLE[T]) Size() int {
	total := 0
	for _, r := range c.runs {
		total += int(r.count)
	}
	return total
}

// locate finds the run holding tid and the offset inside it by a
// prefix-sum scan. tid must be < Size().
func (c *RLE[T]) locate(tid schema.TID) (int, int) {
	remaining := int(tid)
	for i, r := range c.runs {
		if remaining < int(r.count) {
			return i, remaining
		}
		remaining -= int(r.count)
	}
	panic("rle locate past end of column")
}

func (c *RLE[T]) at(tid schema.TID) T {
	idx, _ := c.locate(tid)
	return c.runs[idx].value
}

// set replaces a single logical occurrence. A boundary element is
// replaced by a new singleton run on its own side of the shrunk run;
// an interior element splits the run in three. Zero-length pieces are
// elided.
func (c *RLE[T]) set(tid schema.TID, v T) {
	idx, offset := c.locate(tid)
	entry := &c.runs[idx]

	if entry.value == v {
		return
	}

	switch {
	case entry.count == 1:
		entry.value = v
	case offset == 0:
		entry.count--
		c.runs = slices.Insert(c.runs, idx, runEntry[T]{count: 1, value: v})
	case offset == int(entry.count)-1:
		entry.count--
		c.runs = slices.Insert(c.runs, idx+1, runEntry[T]{count: 1, value: v})
	default:
		prefix := uint8(offset)
		suffix := entry.count - prefix - 1
		old := entry.value

		entry.count = prefix
		pieces := []runEntry[T]{{count: 1, value: v}}
		if suffix > 0 {
			pieces = append(pieces, runEntry[T]{count: suffix, value: old})
		}
		c.runs = slices.Insert(c.runs, idx+1, pieces...)
	}
}

// push merges into the last run when possible, else opens a new
// singleton run. Appending is the only way to grow an RLE column.
func (c *RLE[T]) push(v T) {
	if n := len(c.runs); n > 0 {
		last := &c.runs[n-1]
		if last.value == v && last.count < maxRunLength {
			last.count++
			return
		}
	}

	c.runs = append(c.runs, runEntry[T]{count: 1, value: v})
}

// removeAt shortens the located run by one unit, dropping the run when
// it empties. Which logical occurrence inside the run was meant is
// indistinguishable after compression.
func (c *RLE[T]) removeAt(tid schema.TID) {
	idx, _ := c.locate(tid)

	if c.runs[idx].count == 1 {
		c.runs = slices.Delete(c.runs, idx, idx+1)
		return
	}
	c.runs[idx].count--
}

func (c *RLE[T]) Clear() {
	c.runs = c.runs[:0]
}

func (c *RLE[T]) SizeInBytes() int {
	return len(c.runs) * (1 + c.Type().Width())
}

func (c *RLE[T]) Copy() Column {
	clone := NewRLE[T](c.name)
	clone.runs = slices.Clone(c.runs)
	return clone
}

func (c *RLE[T]) Materialized() bool {
	return false
}

func (c *RLE[T]) Compressed() bool {
	return true
}

func (c *RLE[T]) Store(path string) error {
	w := bits.NewWriter(4+len(c.runs)*9, byteOrder)

	w.PutU32(uint32(len(c.runs)))
	for _, r := range c.runs {
		w.PutU8(r.count)
		writeElem(w, r.value)
	}

	return writeSnapshot(path, c.name, c.uid, variantRLE, c.Type(), w.Bytes())
}

func (c *RLE[T]) Load(path string) error {
	r, uid, err := readSnapshot(path, c.name, variantRLE, c.Type())
	if err != nil {
		return err
	}

	runCount, err := r.ReadU32()
	if err != nil {
		return corruptPayload(c.name, err)
	}

	runs := make([]runEntry[T], 0, runCount)
	for i := 0; i < int(runCount); i++ {
		count, err := r.ReadU8()
		if err != nil {
			return corruptPayload(c.name, err)
		}
		if count == 0 {
			return corruptPayload(c.name, ErrCorruptSnapshot)
		}

		value, err := readElem[T](r)
		if err != nil {
			return corruptPayload(c.name, err)
		}
		runs = append(runs, runEntry[T]{count: count, value: value})
	}

	c.runs = runs
	c.uid = uid
	return nil
}
