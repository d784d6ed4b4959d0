package column

import (
	"slices"

	"github.com/dot5enko/column-engine/bits"
	"github.com/dot5enko/column-engine/schema"
)

// Materialized stores plain values in a dense slice; it is the
// reference implementation of the element-access contract.
type Materialized[T element] struct {
	typedBase[T]

	values []T
}

func NewMaterialized[T element](name string) *Materialized[T] {
	c := &Materialized[T]{
		typedBase: newTypedBase[T](name),
	}
	c.self = c
	return c
}

// Append is the typed fast path around Insert.
func (c *Materialized[T]) Append(v T) {
	c.values = append(c.values, v)
}

func (c *Materialized[T]) AppendSlice(vs []T) {
	c.values = append(c.values, vs...)
}

func (c *Materialized[T]) Size() int {
	return len(c.values)
}

func (c *Materialized[T]) at(tid schema.TID) T {
	return c.values[tid]
}

func (c *Materialized[T]) set(tid schema.TID, v T) {
	c.values[tid] = v
}

func (c *Materialized[T]) push(v T) {
	c.values = append(c.values, v)
}

func (c *Materialized[T]) removeAt(tid schema.TID) {
	c.values = slices.Delete(c.values, int(tid), int(tid)+1)
}

func (c *Materialized[T]) Clear() {
	c.values = c.values[:0]
}

// SizeInBytes is capacity times element width; for text it is the
// summed string length, reflecting actual heap usage.
func (c *Materialized[T]) SizeInBytes() int {
	if texts, ok := any(c.values).([]string); ok {
		total := 0
		for _, s := range texts {
			total += len(s)
		}
		return total
	}
	return cap(c.values) * c.Type().Width()
}

func (c *Materialized[T]) Copy() Column {
	clone := NewMaterialized[T](c.name)
	clone.values = slices.Clone(c.values)
	return clone
}

func (c *Materialized[T]) Materialized() bool {
	return true
}

func (c *Materialized[T]) Compressed() bool {
	return false
}

func (c *Materialized[T]) Store(path string) error {
	w := bits.NewWriter(4+len(c.values)*8, byteOrder)

	w.PutU32(uint32(len(c.values)))
	for _, v := range c.values {
		writeElem(w, v)
	}

	return writeSnapshot(path, c.name, c.uid, variantMaterialized, c.Type(), w.Bytes())
}

func (c *Materialized[T]) Load(path string) error {
	r, uid, err := readSnapshot(path, c.name, variantMaterialized, c.Type())
	if err != nil {
		return err
	}

	count, err := r.ReadU32()
	if err != nil {
		return corruptPayload(c.name, err)
	}

	values := make([]T, 0, count)
	for i := 0; i < int(count); i++ {
		v, err := readElem[T](r)
		if err != nil {
			return corruptPayload(c.name, err)
		}
		values = append(values, v)
	}

	c.values = values
	c.uid = uid
	return nil
}
