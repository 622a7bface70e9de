package ir

import "fmt"

// The As functions return the value stored in t when t is exactly the
// requested variant and ErrTypeMismatch otherwise. No numeric widening
// or narrowing is performed; use ToInt64 or ToFloat64 for that.

func AsByte(t Tag) (int8, error) {
	v, ok := t.(Byte)
	if !ok {
		return 0, mismatch(ByteType, typeOf(t))
	}
	return int8(v), nil
}

// AsBool reads a Byte as a boolean. Any non-zero value is true.
func AsBool(t Tag) (bool, error) {
	v, err := AsByte(t)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

func AsShort(t Tag) (int16, error) {
	v, ok := t.(Short)
	if !ok {
		return 0, mismatch(ShortType, typeOf(t))
	}
	return int16(v), nil
}

func AsInt(t Tag) (int32, error) {
	v, ok := t.(Int)
	if !ok {
		return 0, mismatch(IntType, typeOf(t))
	}
	return int32(v), nil
}

func AsLong(t Tag) (int64, error) {
	v, ok := t.(Long)
	if !ok {
		return 0, mismatch(LongType, typeOf(t))
	}
	return int64(v), nil
}

func AsFloat(t Tag) (float32, error) {
	v, ok := t.(Float)
	if !ok {
		return 0, mismatch(FloatType, typeOf(t))
	}
	return float32(v), nil
}

func AsDouble(t Tag) (float64, error) {
	v, ok := t.(Double)
	if !ok {
		return 0, mismatch(DoubleType, typeOf(t))
	}
	return float64(v), nil
}

func AsString(t Tag) (string, error) {
	v, ok := t.(String)
	if !ok {
		return "", mismatch(StringType, typeOf(t))
	}
	return string(v), nil
}

func AsByteArray(t Tag) ([]int8, error) {
	v, ok := t.(ByteArray)
	if !ok {
		return nil, mismatch(ByteArrayType, typeOf(t))
	}
	return v, nil
}

func AsIntArray(t Tag) ([]int32, error) {
	v, ok := t.(IntArray)
	if !ok {
		return nil, mismatch(IntArrayType, typeOf(t))
	}
	return v, nil
}

func AsLongArray(t Tag) ([]int64, error) {
	v, ok := t.(LongArray)
	if !ok {
		return nil, mismatch(LongArrayType, typeOf(t))
	}
	return v, nil
}

func AsList(t Tag) (*List, error) {
	v, ok := t.(*List)
	if !ok || v == nil {
		return nil, mismatch(ListType, typeOf(t))
	}
	return v, nil
}

func AsCompound(t Tag) (*Compound, error) {
	v, ok := t.(*Compound)
	if !ok || v == nil {
		return nil, mismatch(CompoundType, typeOf(t))
	}
	return v, nil
}

// ToInt64 converts any integral tag to int64.
func ToInt64(t Tag) (int64, error) {
	switch x := t.(type) {
	case Byte:
		return int64(x), nil
	case Short:
		return int64(x), nil
	case Int:
		return int64(x), nil
	case Long:
		return int64(x), nil
	default:
		return 0, fmt.Errorf("%w: expected an integer, got %s", ErrTypeMismatch, typeOf(t))
	}
}

// ToFloat64 converts any numeric tag to float64.
func ToFloat64(t Tag) (float64, error) {
	switch x := t.(type) {
	case Float:
		return float64(x), nil
	case Double:
		return float64(x), nil
	}
	i, err := ToInt64(t)
	if err != nil {
		return 0, fmt.Errorf("%w: expected a number, got %s", ErrTypeMismatch, typeOf(t))
	}
	return float64(i), nil
}

// typeOf is t.Type() tolerating nil, which reports as End.
func typeOf(t Tag) Type {
	if t == nil {
		return EndType
	}
	return t.Type()
}
