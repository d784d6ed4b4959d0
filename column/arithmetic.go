package column

import "github.com/dot5enko/column-engine/schema"

type arithOp uint8

const (
	opAdd arithOp = iota
	opMinus
	opMultiply
	opDivide
)

func (b *typedBase[T]) Add(v schema.Value) bool {
	return b.applyScalar(v, opAdd)
}

func (b *typedBase[T]) AddColumn(other Column) bool {
	return b.applyColumn(other, opAdd)
}

func (b *typedBase[T]) Minus(v schema.Value) bool {
	return b.applyScalar(v, opMinus)
}

func (b *typedBase[T]) MinusColumn(other Column) bool {
	return b.applyColumn(other, opMinus)
}

func (b *typedBase[T]) Multiply(v schema.Value) bool {
	return b.applyScalar(v, opMultiply)
}

func (b *typedBase[T]) MultiplyColumn(other Column) bool {
	return b.applyColumn(other, opMultiply)
}

func (b *typedBase[T]) Divide(v schema.Value) bool {
	return b.applyScalar(v, opDivide)
}

func (b *typedBase[T]) DivideColumn(other Column) bool {
	return b.applyColumn(other, opDivide)
}

// applyScalar folds op with a constant operand over every row. All
// failure modes answer false before any row is touched.
func (b *typedBase[T]) applyScalar(v schema.Value, op arithOp) bool {
	if !numericElement[T]() || v.Absent() {
		return false
	}

	operand, err := valueAs[T](v)
	if err != nil {
		return false
	}
	if op == opDivide && isZero(operand) {
		return false
	}

	n := b.self.Size()
	for i := 0; i < n; i++ {
		tid := schema.TID(i)
		result, ok := arith(b.self.at(tid), operand, op)
		if !ok {
			return false
		}
		b.self.set(tid, result)
	}
	return true
}

// applyColumn folds op element-wise with a same-type, same-size
// operand column.
func (b *typedBase[T]) applyColumn(other Column, op arithOp) bool {
	if !numericElement[T]() {
		return false
	}

	peer, ok := other.(body[T])
	if !ok {
		return false
	}

	n := b.self.Size()
	if peer.Size() != n {
		return false
	}

	if op == opDivide {
		for i := 0; i < n; i++ {
			if isZero(peer.at(schema.TID(i))) {
				return false
			}
		}
	}

	for i := 0; i < n; i++ {
		tid := schema.TID(i)
		result, ok := arith(b.self.at(tid), peer.at(tid), op)
		if !ok {
			return false
		}
		b.self.set(tid, result)
	}
	return true
}

func numericElement[T element]() bool {
	switch attributeOf[T]() {
	case schema.IntAttribute, schema.FloatAttribute:
		return true
	default:
		return false
	}
}

func isZero[T element](v T) bool {
	switch value := any(v).(type) {
	case int64:
		return value == 0
	case float64:
		return value == 0
	default:
		return false
	}
}

// arith folds one pair of elements. Non-numeric element types and
// zero divisors report false.
func arith[T element](a, b T, op arithOp) (T, bool) {
	switch av := any(a).(type) {
	case int64:
		bv := any(b).(int64)
		var r int64
		switch op {
		case opAdd:
			r = av + bv
		case opMinus:
			r = av - bv
		case opMultiply:
			r = av * bv
		case opDivide:
			if bv == 0 {
				return a, false
			}
			r = av / bv
		}
		return any(r).(T), true
	case float64:
		bv := any(b).(float64)
		var r float64
		switch op {
		case opAdd:
			r = av + bv
		case opMinus:
			r = av - bv
		case opMultiply:
			r = av * bv
		case opDivide:
			if bv == 0 {
				return a, false
			}
			r = av / bv
		}
		return any(r).(T), true
	default:
		return a, false
	}
}
