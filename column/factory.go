package column

import "github.com/dot5enko/column-engine/schema"

// Create builds an empty materialized column of the given attribute
// type. An unknown attribute type is a programming error.
func Create(t schema.AttributeType, name string) Column {
	switch t {
	case schema.IntAttribute:
		return NewMaterialized[int64](name)
	case schema.FloatAttribute:
		return NewMaterialized[float64](name)
	case schema.TextAttribute:
		return NewMaterialized[string](name)
	case schema.BoolAttribute:
		return NewMaterialized[bool](name)
	default:
		panic("unknown attribute type " + t.String())
	}
}

// CreateDictionary builds an empty dictionary-compressed column.
func CreateDictionary(t schema.AttributeType, name string) Column {
	switch t {
	case schema.IntAttribute:
		return NewDictionary[int64](name)
	case schema.FloatAttribute:
		return NewDictionary[float64](name)
	case schema.TextAttribute:
		return NewDictionary[string](name)
	case schema.BoolAttribute:
		return NewDictionary[bool](name)
	default:
		panic("unknown attribute type " + t.String())
	}
}

// CreateRLE builds an empty run-length-compressed column.
func CreateRLE(t schema.AttributeType, name string) Column {
	switch t {
	case schema.IntAttribute:
		return NewRLE[int64](name)
	case schema.FloatAttribute:
		return NewRLE[float64](name)
	case schema.TextAttribute:
		return NewRLE[string](name)
	case schema.BoolAttribute:
		return NewRLE[bool](name)
	default:
		panic("unknown attribute type " + t.String())
	}
}
