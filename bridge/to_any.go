package bridge

import (
	"math"
	"strconv"

	"github.com/goccy/go-yaml"
	"github.com/signadot/go-nbt/ir"
)

// ToAny returns the plain value of t. Compounds become yaml.MapSlice
// so that key order is kept; integers become int64, floating point
// values float64, strings string, and lists and arrays []any.
func ToAny(t ir.Tag) any {
	return toAny(t, true)
}

// ToPlain is like ToAny but projects compounds to map[string]any.
func ToPlain(t ir.Tag) any {
	return toAny(t, false)
}

func toAny(t ir.Tag, ordered bool) any {
	switch x := t.(type) {
	case ir.Byte:
		return int64(x)
	case ir.Short:
		return int64(x)
	case ir.Int:
		return int64(x)
	case ir.Long:
		return int64(x)
	case ir.Float:
		return float32To64(float32(x))
	case ir.Double:
		return float64(x)
	case ir.String:
		return string(x)
	case ir.ByteArray:
		res := make([]any, len(x))
		for i, v := range x {
			res[i] = int64(v)
		}
		return res
	case ir.IntArray:
		res := make([]any, len(x))
		for i, v := range x {
			res[i] = int64(v)
		}
		return res
	case ir.LongArray:
		res := make([]any, len(x))
		for i, v := range x {
			res[i] = v
		}
		return res
	case *ir.List:
		res := make([]any, 0, x.Len())
		for _, v := range x.All() {
			res = append(res, toAny(v, ordered))
		}
		return res
	case *ir.Compound:
		if !ordered {
			res := make(map[string]any, x.Len())
			for k, v := range x.All() {
				res[k] = toAny(v, ordered)
			}
			return res
		}
		res := make(yaml.MapSlice, 0, x.Len())
		for k, v := range x.All() {
			res = append(res, yaml.MapItem{Key: k, Value: toAny(v, ordered)})
		}
		return res
	default:
		return nil
	}
}

// float32To64 widens v to the float64 with the same shortest decimal
// form, so 0.1f projects as 0.1 rather than 0.10000000149011612.
func float32To64(v float32) float64 {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return float64(v)
	}
	res, err := strconv.ParseFloat(strconv.FormatFloat(float64(v), 'g', -1, 32), 64)
	if err != nil {
		return float64(v)
	}
	return res
}
