package bridge

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/goccy/go-yaml"
	"github.com/signadot/go-nbt/ir"
)

var ErrConvert = errors.New("cannot convert")

// FromAny converts a plain value back into a tag. Where hint has a tag
// at the same position the result takes its type, failing if the value
// does not fit. Elsewhere integers become Int, or Long when they do not
// fit in 32 bits, other numbers Double, booleans Byte, strings String,
// sequences List and mappings Compound. A list whose elements convert
// to different numeric types is widened to the widest of them.
//
// hint may be nil.
func FromAny(v any, hint ir.Tag) (ir.Tag, error) {
	return fromAny(v, hint, "$")
}

func fromAny(v any, hint ir.Tag, at string) (ir.Tag, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: null at %s", ErrConvert, at)
	case bool:
		return withHint(ir.Bool(x), hint, at)
	case string:
		return withHint(ir.String(x), hint, at)
	case yaml.MapSlice:
		hc, _ := hint.(*ir.Compound)
		c := ir.NewCompound()
		for _, item := range hintOrder(x, hc) {
			k, ok := item.Key.(string)
			if !ok {
				k = fmt.Sprint(item.Key)
			}
			if err := putConverted(c, k, item.Value, hc, at); err != nil {
				return nil, err
			}
		}
		return c, nil
	case map[string]any:
		hc, _ := hint.(*ir.Compound)
		c := ir.NewCompound()
		for _, k := range orderedKeys(x, hc) {
			if err := putConverted(c, k, x[k], hc, at); err != nil {
				return nil, err
			}
		}
		return c, nil
	case []any:
		return fromSlice(x, hint, at)
	case []byte:
		res := make(ir.ByteArray, len(x))
		for i, b := range x {
			res[i] = int8(b)
		}
		return res, nil
	}
	n, ok := number(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T at %s", ErrConvert, v, at)
	}
	return n.tag(hint, at)
}

func putConverted(c *ir.Compound, k string, v any, hc *ir.Compound, at string) error {
	var h ir.Tag
	if hc != nil {
		h, _ = hc.Get(k)
	}
	t, err := fromAny(v, h, ir.PathField(at, k))
	if err != nil {
		return err
	}
	return c.Set(k, t)
}

// hintOrder moves the items of x whose keys appear in hint to the
// front, in the hint's order. The others keep their relative order.
func hintOrder(x yaml.MapSlice, hint *ir.Compound) yaml.MapSlice {
	if hint == nil {
		return x
	}
	res := make(yaml.MapSlice, 0, len(x))
	used := make([]bool, len(x))
	for _, k := range hint.Keys() {
		for i, item := range x {
			if !used[i] && item.Key == k {
				res = append(res, item)
				used[i] = true
				break
			}
		}
	}
	for i, item := range x {
		if !used[i] {
			res = append(res, item)
		}
	}
	return res
}

// orderedKeys lists the keys of m in the hint's order first, then the
// rest sorted.
func orderedKeys(m map[string]any, hint *ir.Compound) []string {
	res := make([]string, 0, len(m))
	seen := map[string]bool{}
	if hint != nil {
		for _, k := range hint.Keys() {
			if _, ok := m[k]; ok {
				res = append(res, k)
				seen[k] = true
			}
		}
	}
	rest := make([]string, 0, len(m)-len(res))
	for k := range m {
		if !seen[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	return append(res, rest...)
}

func withHint(t ir.Tag, hint ir.Tag, at string) (ir.Tag, error) {
	if hint == nil || hint.Type() == t.Type() {
		return t, nil
	}
	if b, ok := t.(ir.Byte); ok && hint.Type().IsNumeric() {
		return num{i: int64(b), isInt: true}.tag(hint, at)
	}
	return nil, fmt.Errorf("%w: %s at %s, expected %s", ErrConvert, t.Type(), at, hint.Type())
}

func fromSlice(x []any, hint ir.Tag, at string) (ir.Tag, error) {
	switch h := hint.(type) {
	case ir.ByteArray, ir.IntArray, ir.LongArray:
		return fromArray(x, h.Type(), at)
	case *ir.List:
		if len(x) == 0 {
			return ir.NewList(h.ElemType()), nil
		}
		return fromList(x, h, at)
	case nil:
		return fromList(x, nil, at)
	default:
		return nil, fmt.Errorf("%w: sequence at %s, expected %s", ErrConvert, at, hint.Type())
	}
}

func fromArray(x []any, t ir.Type, at string) (ir.Tag, error) {
	ints := make([]int64, len(x))
	for i, v := range x {
		n, ok := number(v)
		if !ok || !n.isInt {
			return nil, fmt.Errorf("%w: %v at %s in %s", ErrConvert, v, ir.PathIndex(at, i), t)
		}
		ints[i] = n.i
	}
	switch t {
	case ir.ByteArrayType:
		res := make(ir.ByteArray, len(ints))
		for i, v := range ints {
			if v < math.MinInt8 || v > math.MaxInt8 {
				return nil, fmt.Errorf("%w: %d out of range at %s", ErrConvert, v, ir.PathIndex(at, i))
			}
			res[i] = int8(v)
		}
		return res, nil
	case ir.IntArrayType:
		res := make(ir.IntArray, len(ints))
		for i, v := range ints {
			if v < math.MinInt32 || v > math.MaxInt32 {
				return nil, fmt.Errorf("%w: %d out of range at %s", ErrConvert, v, ir.PathIndex(at, i))
			}
			res[i] = int32(v)
		}
		return res, nil
	default:
		return ir.LongArray(ints), nil
	}
}

func fromList(x []any, hint *ir.List, at string) (ir.Tag, error) {
	elems := make([]ir.Tag, len(x))
	for i, v := range x {
		var h ir.Tag
		if hint != nil && hint.Len() > 0 {
			h, _ = hint.At(min(i, hint.Len()-1))
		}
		t, err := fromAny(v, h, ir.PathIndex(at, i))
		if err != nil {
			return nil, err
		}
		elems[i] = t
	}
	widen(elems)
	l, err := ir.ListOf(elems...)
	if err != nil {
		return nil, fmt.Errorf("%w at %s", err, at)
	}
	return l, nil
}

// widen converts mixed Int, Long and Double elements to the widest
// type present.
func widen(elems []ir.Tag) {
	if len(elems) == 0 {
		return
	}
	widest := elems[0].Type()
	for _, e := range elems {
		switch t := e.Type(); {
		case t == widest:
		case !isWidenable(t) || !isWidenable(widest):
			return
		case t > widest:
			widest = t
		}
	}
	for i, e := range elems {
		if e.Type() == widest {
			continue
		}
		switch widest {
		case ir.LongType:
			v, _ := ir.ToInt64(e)
			elems[i] = ir.Long(v)
		case ir.DoubleType:
			v, _ := ir.ToFloat64(e)
			elems[i] = ir.Double(v)
		}
	}
}

func isWidenable(t ir.Type) bool {
	return t == ir.IntType || t == ir.LongType || t == ir.DoubleType
}

type num struct {
	i     int64
	f     float64
	isInt bool
}

func number(v any) (num, bool) {
	switch x := v.(type) {
	case int:
		return num{i: int64(x), isInt: true}, true
	case int8:
		return num{i: int64(x), isInt: true}, true
	case int16:
		return num{i: int64(x), isInt: true}, true
	case int32:
		return num{i: int64(x), isInt: true}, true
	case int64:
		return num{i: x, isInt: true}, true
	case uint:
		return unsigned(uint64(x))
	case uint8:
		return num{i: int64(x), isInt: true}, true
	case uint16:
		return num{i: int64(x), isInt: true}, true
	case uint32:
		return num{i: int64(x), isInt: true}, true
	case uint64:
		return unsigned(x)
	case float32:
		return num{f: float32To64(x)}, true
	case float64:
		return num{f: x}, true
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return num{i: i, isInt: true}, true
		}
		f, err := x.Float64()
		return num{f: f}, err == nil
	}
	return num{}, false
}

func unsigned(u uint64) (num, bool) {
	if u > math.MaxInt64 {
		return num{}, false
	}
	return num{i: int64(u), isInt: true}, true
}

func (n num) tag(hint ir.Tag, at string) (ir.Tag, error) {
	var t ir.Type
	switch {
	case hint != nil:
		t = hint.Type()
	case !n.isInt:
		t = ir.DoubleType
	case n.i >= math.MinInt32 && n.i <= math.MaxInt32:
		t = ir.IntType
	default:
		t = ir.LongType
	}
	if n.isInt {
		return intTag(n.i, t, at)
	}
	switch t {
	case ir.FloatType:
		return ir.Float(n.f), nil
	case ir.DoubleType:
		return ir.Double(n.f), nil
	}
	if n.f == math.Trunc(n.f) && !math.IsInf(n.f, 0) && math.Abs(n.f) < 1<<63 {
		return intTag(int64(n.f), t, at)
	}
	return nil, fmt.Errorf("%w: %v at %s, expected %s", ErrConvert, n.f, at, t)
}

func intTag(v int64, t ir.Type, at string) (ir.Tag, error) {
	var lo, hi int64
	switch t {
	case ir.ByteType:
		lo, hi = math.MinInt8, math.MaxInt8
	case ir.ShortType:
		lo, hi = math.MinInt16, math.MaxInt16
	case ir.IntType:
		lo, hi = math.MinInt32, math.MaxInt32
	case ir.LongType:
		lo, hi = math.MinInt64, math.MaxInt64
	case ir.FloatType:
		return ir.Float(v), nil
	case ir.DoubleType:
		return ir.Double(v), nil
	default:
		return nil, fmt.Errorf("%w: number at %s, expected %s", ErrConvert, at, t)
	}
	if v < lo || v > hi {
		return nil, fmt.Errorf("%w: %d out of range for %s at %s", ErrConvert, v, t, at)
	}
	switch t {
	case ir.ByteType:
		return ir.Byte(v), nil
	case ir.ShortType:
		return ir.Short(v), nil
	case ir.IntType:
		return ir.Int(v), nil
	default:
		return ir.Long(v), nil
	}
}
