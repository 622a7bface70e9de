package ir

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// Equal reports whether a and b are structurally equal. Compounds must
// hold the same keys in the same order; lists must have equal elements
// in the same order. The committed element type of two empty lists is
// not compared. Floats compare by bit pattern, so NaN equals NaN.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}
	switch x := a.(type) {
	case End:
		return true
	case Byte, Short, Int, Long, String:
		return a == b
	case Float:
		return math.Float32bits(float32(x)) == math.Float32bits(float32(b.(Float)))
	case Double:
		return math.Float64bits(float64(x)) == math.Float64bits(float64(b.(Double)))
	case ByteArray:
		return slices.Equal(x, b.(ByteArray))
	case IntArray:
		return slices.Equal(x, b.(IntArray))
	case LongArray:
		return slices.Equal(x, b.(LongArray))
	case *List:
		y := b.(*List)
		if x.Len() != y.Len() {
			return false
		}
		for i, v := range x.values {
			if !Equal(v, y.values[i]) {
				return false
			}
		}
		return true
	case *Compound:
		y := b.(*Compound)
		if x.Len() != y.Len() {
			return false
		}
		for i, k := range x.keys {
			if y.keys[i] != k || !Equal(x.values[i], y.values[i]) {
				return false
			}
		}
		return true
	default:
		panic(errInternal)
	}
}

// Compare returns an integer comparing two tags.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
//
// Tags of different types order by type id. Numbers order by value,
// strings and arrays lexicographically, lists element-wise then by
// length, and compounds entry-wise (key then value) then by length.
func Compare(a, b Tag) int {
	if a == nil || b == nil {
		switch {
		case a == nil && b == nil:
			return 0
		case a == nil:
			return -1
		default:
			return 1
		}
	}
	if a.Type() != b.Type() {
		return cmp.Compare(a.Type(), b.Type())
	}

	switch x := a.(type) {
	case End:
		return 0
	case Byte:
		return cmp.Compare(x, b.(Byte))
	case Short:
		return cmp.Compare(x, b.(Short))
	case Int:
		return cmp.Compare(x, b.(Int))
	case Long:
		return cmp.Compare(x, b.(Long))
	case Float:
		return cmp.Compare(x, b.(Float))
	case Double:
		return cmp.Compare(x, b.(Double))
	case String:
		return strings.Compare(string(x), string(b.(String)))
	case ByteArray:
		return slices.Compare(x, b.(ByteArray))
	case IntArray:
		return slices.Compare(x, b.(IntArray))
	case LongArray:
		return slices.Compare(x, b.(LongArray))
	case *List:
		return compareLists(x, b.(*List))
	case *Compound:
		return compareCompounds(x, b.(*Compound))
	default:
		panic(errInternal)
	}
}

func compareLists(a, b *List) int {
	minLen := min(a.Len(), b.Len())
	for i := 0; i < minLen; i++ {
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}

func compareCompounds(a, b *Compound) int {
	minLen := min(a.Len(), b.Len())
	for i := 0; i < minLen; i++ {
		if c := strings.Compare(a.keys[i], b.keys[i]); c != 0 {
			return c
		}
		if c := Compare(a.values[i], b.values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}
