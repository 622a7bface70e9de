package ir

import "fmt"

// Type is the one byte type id written before every named tag and at
// the head of every list payload.
type Type uint8

const (
	EndType Type = iota
	ByteType
	ShortType
	IntType
	LongType
	FloatType
	DoubleType
	ByteArrayType
	StringType
	ListType
	CompoundType
	IntArrayType
	LongArrayType
)

var typeNames = [...]string{
	EndType:       "End",
	ByteType:      "Byte",
	ShortType:     "Short",
	IntType:       "Int",
	LongType:      "Long",
	FloatType:     "Float",
	DoubleType:    "Double",
	ByteArrayType: "ByteArray",
	StringType:    "String",
	ListType:      "List",
	CompoundType:  "Compound",
	IntArrayType:  "IntArray",
	LongArrayType: "LongArray",
}

func (t Type) String() string {
	if t.Valid() {
		return typeNames[t]
	}
	return fmt.Sprintf("<unknown type %d>", uint8(t))
}

func (t Type) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownType, uint8(t))
	}
	return []byte(typeNames[t]), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for i, name := range typeNames {
		if name == string(d) {
			*t = Type(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownType, d)
}

// Valid reports whether t is one of the thirteen defined type ids.
func (t Type) Valid() bool {
	return t <= LongArrayType
}

func Types() []Type {
	return []Type{
		EndType,
		ByteType,
		ShortType,
		IntType,
		LongType,
		FloatType,
		DoubleType,
		ByteArrayType,
		StringType,
		ListType,
		CompoundType,
		IntArrayType,
		LongArrayType,
	}
}

func (t Type) IsNumeric() bool {
	switch t {
	case ByteType, ShortType, IntType, LongType, FloatType, DoubleType:
		return true
	default:
		return false
	}
}

func (t Type) IsArray() bool {
	switch t {
	case ByteArrayType, IntArrayType, LongArrayType:
		return true
	default:
		return false
	}
}

func (t Type) IsContainer() bool {
	return t == ListType || t == CompoundType
}
