package schema

// TID is the 0-based logical position of a value within a column.
type TID uint32

type AttributeType uint8

const (
	IntAttribute AttributeType = iota + 1
	FloatAttribute
	TextAttribute
	BoolAttribute
)

func (t AttributeType) String() string {
	switch t {
	case IntAttribute:
		return "Int"
	case FloatAttribute:
		return "Float"
	case TextAttribute:
		return "Text"
	case BoolAttribute:
		return "Bool"
	default:
		return ""
	}
}

// Width returns the fixed element width in bytes used for footprint
// accounting. Text uses the string header width, not the payload.
func (t AttributeType) Width() int {
	switch t {
	case IntAttribute, FloatAttribute:
		return 8
	case BoolAttribute:
		return 1
	case TextAttribute:
		return 16
	default:
		panic("unknown attribute type " + t.String())
	}
}

type ValueComparator uint8

const (
	Equal ValueComparator = iota
	Lesser
	Greater
)

func (c ValueComparator) String() string {
	switch c {
	case Equal:
		return "="
	case Lesser:
		return "<"
	case Greater:
		return ">"
	default:
		return "?"
	}
}

type SortOrder uint8

const (
	Ascending SortOrder = iota
	Descending
)
