package bridge

import (
	"errors"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-nbt/format"
	"github.com/signadot/go-nbt/ir"
	"github.com/signadot/go-nbt/snbt"
)

func doc() *ir.Compound {
	return ir.NewCompound().
		PutString("name", "world").
		PutByte("flag", 1).
		PutShort("short", -2).
		PutLong("long", 1<<40).
		PutFloat("float", 0.1).
		PutDouble("double", 2.5).
		Put("items", ir.MustListOf(ir.Int(1), ir.Int(2), ir.Int(3))).
		Put("bytes", ir.ByteArray{1, -1}).
		Put("longs", ir.LongArray{5}).
		Put("empty", ir.NewList(ir.CompoundType)).
		Put("zeta", ir.NewCompound().PutString("a", "b"))
}

func TestToAny(t *testing.T) {
	got := ToAny(ir.NewCompound().
		PutString("b", "x").
		PutFloat("a", 0.1).
		Put("l", ir.MustListOf(ir.Short(1))))
	want := yaml.MapSlice{
		{Key: "b", Value: "x"},
		{Key: "a", Value: 0.1},
		{Key: "l", Value: []any{int64(1)}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRoundTripWithHint(t *testing.T) {
	for _, f := range []format.Format{format.YAMLFormat, format.JSONFormat, format.CBORFormat, format.SNBTFormat} {
		t.Run(f.String(), func(t *testing.T) {
			d, err := Marshal(doc(), f)
			if err != nil {
				t.Fatal(err)
			}
			got, err := Unmarshal(d, f, doc())
			if err != nil {
				t.Fatal(err)
			}
			if !ir.Equal(got, doc()) {
				t.Errorf("got %s", snbt.MustString(got))
			}
		})
	}
}

func TestFromAnyWithoutHint(t *testing.T) {
	v := yaml.MapSlice{
		{Key: "s", Value: "x"},
		{Key: "i", Value: uint64(3)},
		{Key: "big", Value: int64(1 << 40)},
		{Key: "f", Value: 1.5},
		{Key: "b", Value: true},
		{Key: "mixed", Value: []any{uint64(1), int64(1 << 40)}},
		{Key: "nums", Value: []any{uint64(1), 2.5}},
		{Key: "m", Value: map[string]any{"z": "1", "a": "2"}},
	}
	got, err := FromAny(v, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := ir.NewCompound().
		PutString("s", "x").
		PutInt("i", 3).
		PutLong("big", 1<<40).
		PutDouble("f", 1.5).
		PutBool("b", true).
		Put("mixed", ir.MustListOf(ir.Long(1), ir.Long(1<<40))).
		Put("nums", ir.MustListOf(ir.Double(1), ir.Double(2.5))).
		Put("m", ir.NewCompound().PutString("a", "2").PutString("z", "1"))
	if !ir.Equal(got, want) {
		t.Errorf("got %s\nwant %s", snbt.MustString(got), snbt.MustString(want))
	}
}

func TestFromAnyErrors(t *testing.T) {
	tests := []struct {
		name string
		v    any
		hint ir.Tag
	}{
		{"null", nil, nil},
		{"byte overflow", int64(300), ir.Byte(0)},
		{"string for int", "x", ir.Int(0)},
		{"fraction for int", 1.5, ir.Int(0)},
		{"sequence for compound", []any{}, ir.NewCompound()},
		{"float in int array", []any{1.5}, ir.IntArray{}},
		{"unsupported", struct{}{}, nil},
		{"huge unsigned", uint64(1 << 63), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromAny(tt.v, tt.hint); !errors.Is(err, ErrConvert) {
				t.Errorf("got %v want ErrConvert", err)
			}
		})
	}
	_, err := FromAny([]any{"a", int64(1)}, nil)
	if !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("heterogeneous list: %v", err)
	}
}

func TestFromAnyKeepsHintOrder(t *testing.T) {
	hint := ir.NewCompound().PutInt("z", 0).PutInt("a", 0)
	got, err := FromAny(map[string]any{"a": 1, "z": 2, "m": 3}, hint)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	if diff := cmp.Diff(want, got.(*ir.Compound).Keys()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestMarshalNBTRejected(t *testing.T) {
	if _, err := Marshal(doc(), format.NBTFormat); !errors.Is(err, format.ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}
