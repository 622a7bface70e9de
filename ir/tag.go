package ir

import "slices"

// Tag is one node of a document tree. The set of implementations is
// closed: End, Byte, Short, Int, Long, Float, Double, ByteArray,
// String, *List, *Compound, IntArray and LongArray.
type Tag interface {
	Type() Type
	// Clone returns a deep copy which shares no storage with the
	// receiver.
	Clone() Tag

	tag()
}

type (
	End       struct{}
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	String    string
	ByteArray []int8
	IntArray  []int32
	LongArray []int64
)

func (End) Type() Type       { return EndType }
func (Byte) Type() Type      { return ByteType }
func (Short) Type() Type     { return ShortType }
func (Int) Type() Type       { return IntType }
func (Long) Type() Type      { return LongType }
func (Float) Type() Type     { return FloatType }
func (Double) Type() Type    { return DoubleType }
func (String) Type() Type    { return StringType }
func (ByteArray) Type() Type { return ByteArrayType }
func (IntArray) Type() Type  { return IntArrayType }
func (LongArray) Type() Type { return LongArrayType }

func (t End) Clone() Tag       { return t }
func (t Byte) Clone() Tag      { return t }
func (t Short) Clone() Tag     { return t }
func (t Int) Clone() Tag       { return t }
func (t Long) Clone() Tag      { return t }
func (t Float) Clone() Tag     { return t }
func (t Double) Clone() Tag    { return t }
func (t String) Clone() Tag    { return t }
func (t ByteArray) Clone() Tag { return slices.Clone(t) }
func (t IntArray) Clone() Tag  { return slices.Clone(t) }
func (t LongArray) Clone() Tag { return slices.Clone(t) }

func (End) tag()       {}
func (Byte) tag()      {}
func (Short) tag()     {}
func (Int) tag()       {}
func (Long) tag()      {}
func (Float) tag()     {}
func (Double) tag()    {}
func (String) tag()    {}
func (ByteArray) tag() {}
func (IntArray) tag()  {}
func (LongArray) tag() {}
func (*List) tag()     {}
func (*Compound) tag() {}

// Bool returns the Byte used to store a boolean: 1 for true, 0 for
// false.
func Bool(v bool) Byte {
	if v {
		return 1
	}
	return 0
}

// Clone is like t.Clone but accepts nil.
func Clone(t Tag) Tag {
	if t == nil {
		return nil
	}
	return t.Clone()
}

// Zero returns the zero value of the variant identified by t, or nil
// if t is not a valid type.
func Zero(t Type) Tag {
	switch t {
	case EndType:
		return End{}
	case ByteType:
		return Byte(0)
	case ShortType:
		return Short(0)
	case IntType:
		return Int(0)
	case LongType:
		return Long(0)
	case FloatType:
		return Float(0)
	case DoubleType:
		return Double(0)
	case ByteArrayType:
		return ByteArray{}
	case StringType:
		return String("")
	case ListType:
		return NewList(EndType)
	case CompoundType:
		return NewCompound()
	case IntArrayType:
		return IntArray{}
	case LongArrayType:
		return LongArray{}
	default:
		return nil
	}
}
