package column

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dot5enko/column-engine/lists"
	"github.com/dot5enko/column-engine/schema"
)

// element is the closed set of storable Go types, one per
// schema.AttributeType.
type element interface {
	int64 | float64 | string | bool
}

// body is the element-access contract a variant hands to the shared
// typed engine. set carries the variant's full update semantics
// (dictionary probing, run splitting), push its append semantics.
// Bounds are the caller's job.
type body[T element] interface {
	Size() int
	at(tid schema.TID) T
	set(tid schema.TID, v T)
	push(v T)
	removeAt(tid schema.TID)
}

// typedBase implements every operation that is identical across
// variants. Variants embed it and point self back at themselves.
type typedBase[T element] struct {
	name string
	uid  uuid.UUID
	self body[T]
}

func newTypedBase[T element](name string) typedBase[T] {
	return typedBase[T]{
		name: name,
		uid:  uuid.New(),
	}
}

func (b *typedBase[T]) Name() string {
	return b.name
}

func (b *typedBase[T]) Uid() uuid.UUID {
	return b.uid
}

func (b *typedBase[T]) Type() schema.AttributeType {
	return attributeOf[T]()
}

func (b *typedBase[T]) Insert(v schema.Value) error {
	value, err := valueAs[T](v)
	if err != nil {
		return fmt.Errorf("insert into column `%s`: %w", b.name, err)
	}

	b.self.push(value)
	return nil
}

func (b *typedBase[T]) Update(tid schema.TID, v schema.Value) error {
	value, err := valueAs[T](v)
	if err != nil {
		return fmt.Errorf("update of column `%s`: %w", b.name, err)
	}

	if int(tid) >= b.self.Size() {
		return outOfRange(b.name, tid, b.self.Size())
	}

	b.self.set(tid, value)
	return nil
}

func (b *typedBase[T]) UpdateMany(tids lists.PositionList, v schema.Value) error {
	value, err := valueAs[T](v)
	if err != nil {
		return fmt.Errorf("update of column `%s`: %w", b.name, err)
	}

	for _, tid := range tids {
		if int(tid) >= b.self.Size() {
			return outOfRange(b.name, tid, b.self.Size())
		}
		b.self.set(tid, value)
	}
	return nil
}

func (b *typedBase[T]) Remove(tid schema.TID) error {
	if int(tid) >= b.self.Size() {
		return outOfRange(b.name, tid, b.self.Size())
	}

	b.self.removeAt(tid)
	return nil
}

// RemoveMany expects tids sorted ascending and walks them from the
// back, so removals never shift a position that is still pending.
func (b *typedBase[T]) RemoveMany(tids lists.PositionList) error {
	for i := len(tids) - 1; i >= 0; i-- {
		if err := b.Remove(tids[i]); err != nil {
			return err
		}
	}
	return nil
}

func (b *typedBase[T]) Get(tid schema.TID) (schema.Value, error) {
	if int(tid) >= b.self.Size() {
		return schema.Absent(), outOfRange(b.name, tid, b.self.Size())
	}
	return makeValue(b.self.at(tid)), nil
}

func (b *typedBase[T]) Print() string {
	var sb strings.Builder

	n := b.self.Size()
	fmt.Fprintf(&sb, "%s(%d)\n", b.name, n)
	for i := 0; i < n; i++ {
		fmt.Fprintf(&sb, "\t%v\n", b.self.at(schema.TID(i)))
	}

	return sb.String()
}

func (b *typedBase[T]) Equal(other Column) bool {
	peer, ok := other.(body[T])
	if !ok {
		return false
	}

	n := b.self.Size()
	if peer.Size() != n {
		return false
	}

	for i := 0; i < n; i++ {
		if b.self.at(schema.TID(i)) != peer.at(schema.TID(i)) {
			return false
		}
	}
	return true
}

// attributeOf maps an element type to its attribute tag. An element
// type outside the closed set is a programming error.
func attributeOf[T element]() schema.AttributeType {
	var zero T
	switch any(zero).(type) {
	case int64:
		return schema.IntAttribute
	case float64:
		return schema.FloatAttribute
	case string:
		return schema.TextAttribute
	case bool:
		return schema.BoolAttribute
	}
	panic("element type without attribute mapping")
}

func valueAs[T element](v schema.Value) (T, error) {
	var zero T
	switch any(zero).(type) {
	case int64:
		value, err := v.Int()
		return any(value).(T), err
	case float64:
		value, err := v.Float()
		return any(value).(T), err
	case string:
		value, err := v.Text()
		return any(value).(T), err
	case bool:
		value, err := v.Bool()
		return any(value).(T), err
	}
	panic("element type without attribute mapping")
}

func makeValue[T element](v T) schema.Value {
	switch value := any(v).(type) {
	case int64:
		return schema.Int(value)
	case float64:
		return schema.Float(value)
	case string:
		return schema.Text(value)
	case bool:
		return schema.Bool(value)
	}
	panic("element type without attribute mapping")
}

// compareElems orders two elements; false sorts before true.
func compareElems[T element](a, b T) int {
	switch av := any(a).(type) {
	case int64:
		return cmp.Compare(av, any(b).(int64))
	case float64:
		return cmp.Compare(av, any(b).(float64))
	case string:
		return cmp.Compare(av, any(b).(string))
	case bool:
		bv := any(b).(bool)
		switch {
		case av == bv:
			return 0
		case !av:
			return -1
		default:
			return 1
		}
	}
	panic("element type without attribute mapping")
}
