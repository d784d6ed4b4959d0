package schema

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrTypeMismatch = errors.New("value type mismatch")

// Value is the tagged union crossing the typed/untyped column boundary.
// The zero Value is absent.
type Value struct {
	tag AttributeType

	i int64
	f float64
	s string
	b bool
}

func Absent() Value {
	return Value{}
}

func Int(v int64) Value {
	return Value{tag: IntAttribute, i: v}
}

func Float(v float64) Value {
	return Value{tag: FloatAttribute, f: v}
}

func Text(v string) Value {
	return Value{tag: TextAttribute, s: v}
}

func Bool(v bool) Value {
	return Value{tag: BoolAttribute, b: v}
}

func (v Value) Tag() AttributeType {
	return v.tag
}

func (v Value) Absent() bool {
	return v.tag == 0
}

func (v Value) Int() (int64, error) {
	if v.tag != IntAttribute {
		return 0, fmt.Errorf("%w: have %s, want Int", ErrTypeMismatch, v.describeTag())
	}
	return v.i, nil
}

func (v Value) Float() (float64, error) {
	if v.tag != FloatAttribute {
		return 0, fmt.Errorf("%w: have %s, want Float", ErrTypeMismatch, v.describeTag())
	}
	return v.f, nil
}

func (v Value) Text() (string, error) {
	if v.tag != TextAttribute {
		return "", fmt.Errorf("%w: have %s, want Text", ErrTypeMismatch, v.describeTag())
	}
	return v.s, nil
}

func (v Value) Bool() (bool, error) {
	if v.tag != BoolAttribute {
		return false, fmt.Errorf("%w: have %s, want Bool", ErrTypeMismatch, v.describeTag())
	}
	return v.b, nil
}

func (v Value) describeTag() string {
	if v.tag == 0 {
		return "absent"
	}
	return v.tag.String()
}

func (v Value) String() string {
	switch v.tag {
	case IntAttribute:
		return strconv.FormatInt(v.i, 10)
	case FloatAttribute:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case TextAttribute:
		return v.s
	case BoolAttribute:
		return strconv.FormatBool(v.b)
	default:
		return "<absent>"
	}
}
