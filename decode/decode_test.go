package decode

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/signadot/go-nbt/encode"
	"github.com/signadot/go-nbt/format"
	"github.com/signadot/go-nbt/ir"
)

func everything() *ir.Compound {
	return ir.NewCompound().
		PutByte("byte", -128).
		PutShort("short", math.MaxInt16).
		PutInt("int", math.MinInt32).
		PutLong("long", math.MaxInt64).
		PutFloat("float", float32(math.Inf(-1))).
		PutDouble("double", math.NaN()).
		PutString("string", "héllo wörld").
		PutString("", "empty key").
		Put("bytes", ir.ByteArray{-1, 0, 1}).
		Put("ints", ir.IntArray{math.MinInt32, 0, math.MaxInt32}).
		Put("longs", ir.LongArray{}).
		Put("empty", ir.NewList(ir.EndType)).
		Put("typed empty", ir.NewList(ir.StringType)).
		Put("lists", ir.MustListOf(
			ir.MustListOf(ir.Short(1)),
			ir.MustListOf(ir.String("a"), ir.String("b")),
		)).
		Put("compounds", ir.MustListOf(
			ir.NewCompound().PutInt("x", 1),
			ir.NewCompound(),
		)).
		Put("nested", ir.NewCompound().Put("deeper", ir.NewCompound().PutBool("flag", true)))
}

func TestRoundTrip(t *testing.T) {
	root := everything()
	for _, e := range []format.Endian{format.BigEndian, format.LittleEndian} {
		for _, c := range format.Compressions() {
			t.Run(e.String()+"/"+c.String(), func(t *testing.T) {
				d, err := encode.Marshal(root,
					encode.EncodeEndian(e),
					encode.EncodeCompression(c),
					encode.EncodeRootName("level"))
				if err != nil {
					t.Fatal(err)
				}
				name, got, err := DecodeNamed(d, DecodeEndian(e))
				if err != nil {
					t.Fatal(err)
				}
				if name != "level" {
					t.Errorf("root name %q", name)
				}
				if !ir.Equal(root, got) {
					t.Errorf("round trip mismatch")
				}
				l, _ := got.(*ir.Compound).GetList("typed empty")
				if l.ElemType() != ir.StringType {
					t.Errorf("empty list type %s", l.ElemType())
				}
				again, err := encode.Marshal(got, encode.EncodeEndian(e), encode.EncodeRootName(name))
				if err != nil {
					t.Fatal(err)
				}
				raw, _ := encode.Marshal(root, encode.EncodeEndian(e), encode.EncodeRootName("level"))
				if !bytes.Equal(again, raw) {
					t.Error("re-encoding is not byte identical")
				}
			})
		}
	}
}

func TestNameItems(t *testing.T) {
	root := ir.NewCompound().
		PutString("name", "world").
		Put("items", ir.MustListOf(ir.Int(1), ir.Int(2), ir.Int(3)))
	d := encode.MustBytes(root)
	got, err := Decode(d)
	if err != nil {
		t.Fatal(err)
	}
	if err := ir.Insert(got, "items", 1, ir.Int(9)); err != nil {
		t.Fatal(err)
	}
	back, err := Decode(encode.MustBytes(got))
	if err != nil {
		t.Fatal(err)
	}
	want := ir.MustListOf(ir.Int(1), ir.Int(9), ir.Int(2), ir.Int(3))
	if items, _ := ir.Resolve(back, "items"); !ir.Equal(items, want) {
		t.Errorf("items %v", items)
	}
	if name, _ := back.(*ir.Compound).GetString("name"); name != "world" {
		t.Errorf("name %q", name)
	}
	if err := ir.Insert(back, "items", 0, ir.String("x")); !errors.Is(err, ir.ErrTypeMismatch) {
		t.Errorf("got %v", err)
	}
	if items, _ := ir.Resolve(back, "items"); !ir.Equal(items, want) {
		t.Error("failed insert modified the list")
	}
}

func TestNameItemsSet(t *testing.T) {
	root := ir.NewCompound().
		PutString("name", "world").
		Put("items", ir.MustListOf(ir.Int(1), ir.Int(2), ir.Int(3)))
	got, err := Decode(encode.MustBytes(root))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(root, got) {
		t.Fatalf("round trip: %v", got)
	}
	if v, err := ir.Resolve(got, "items[1]"); err != nil || v != ir.Tag(ir.Int(2)) {
		t.Errorf("items[1]: %v %v", v, err)
	}
	if _, err := ir.Resolve(got, "items[5]"); !errors.Is(err, ir.ErrIndexOutOfBounds) {
		t.Errorf("items[5]: %v", err)
	}
	if err := ir.Set(got, "items[1]", ir.Int(42)); err != nil {
		t.Fatal(err)
	}
	for path, want := range map[string]ir.Tag{
		"items[0]": ir.Int(1),
		"items[1]": ir.Int(42),
		"items[2]": ir.Int(3),
		"name":     ir.String("world"),
	} {
		if v, err := ir.Resolve(got, path); err != nil || v != want {
			t.Errorf("%s: got %v %v want %v", path, v, err, want)
		}
	}
}

func chain(depth int) ir.Tag {
	c := ir.NewCompound().PutInt("leaf", 1)
	for range depth - 1 {
		c = ir.NewCompound().Put("a", c)
	}
	return c
}

func TestDepthLimits(t *testing.T) {
	if DefaultMaxDepth != encode.DefaultMaxDepth {
		t.Fatalf("decoder depth %d encoder depth %d", DefaultMaxDepth, encode.DefaultMaxDepth)
	}
	deepest := chain(DefaultMaxDepth)
	d, err := encode.Marshal(deepest)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(d)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(deepest, got) {
		t.Error("deepest tree did not round trip")
	}

	if _, err := encode.Marshal(chain(600)); !errors.Is(err, ir.ErrEncodingLimit) {
		t.Errorf("600 deep: got %v", err)
	}
	d, err = encode.Marshal(chain(600), encode.EncodeMaxDepth(600))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Decode(d); !errors.Is(err, ErrMaxDepth) {
		t.Errorf("600 deep default decode: got %v", err)
	}
	if _, err := Decode(d, MaxDepth(600)); err != nil {
		t.Errorf("600 deep raised limit: %v", err)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		opts []DecodeOption
		err  error
	}{
		{
			name: "empty",
			data: nil,
			err:  ErrUnexpectedEOF,
		},
		{
			name: "unknown root type",
			data: []byte{0x0d, 0, 0},
			err:  ErrUnknownTagType,
		},
		{
			name: "unknown entry type",
			data: []byte{0x0a, 0, 0, 0x63, 0, 0},
			err:  ErrUnknownTagType,
		},
		{
			name: "truncated int",
			data: []byte{0x0a, 0, 0, 0x03, 0, 1, 'x', 0, 0},
			err:  ErrUnexpectedEOF,
		},
		{
			name: "missing end",
			data: []byte{0x0a, 0, 0, 0x01, 0, 1, 'x', 5},
			err:  ErrUnexpectedEOF,
		},
		{
			name: "list count past buffer",
			data: []byte{0x0a, 0, 0, 0x09, 0, 1, 'l', 0x03, 0x7f, 0xff, 0xff, 0xff, 0},
			err:  ErrMalformedLength,
		},
		{
			name: "negative list count",
			data: []byte{0x0a, 0, 0, 0x09, 0, 1, 'l', 0x03, 0xff, 0xff, 0xff, 0xff, 0},
			err:  ErrMalformedLength,
		},
		{
			name: "list of end with elements",
			data: []byte{0x0a, 0, 0, 0x09, 0, 1, 'l', 0x00, 0, 0, 0, 2, 0},
			err:  ErrMalformedLength,
		},
		{
			name: "array length past buffer",
			data: []byte{0x0a, 0, 0, 0x0c, 0, 1, 'a', 0, 0, 1, 0, 0},
			err:  ErrMalformedLength,
		},
		{
			name: "string length past buffer",
			data: []byte{0x0a, 0, 0, 0x08, 0, 1, 's', 0xff, 0xff, 'x', 0},
			err:  ErrMalformedLength,
		},
		{
			name: "string root rejected",
			data: []byte{0x08, 0, 0, 0, 1, 'x'},
			err:  ir.ErrTypeMismatch,
		},
		{
			name: "end root",
			data: []byte{0x00},
			opts: []DecodeOption{AnyRoot(true)},
			err:  ir.ErrTypeMismatch,
		},
		{
			name: "too deep",
			data: []byte{0x0a, 0, 0, 0x0a, 0, 1, 'a', 0x0a, 0, 1, 'b', 0, 0, 0},
			opts: []DecodeOption{MaxDepth(2)},
			err:  ErrMaxDepth,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data, append(tt.opts, DecodeCompression(format.NoCompression))...)
			if !errors.Is(err, tt.err) {
				t.Errorf("got %v want %v", err, tt.err)
			}
			if got != nil {
				t.Errorf("partial tree returned: %v", got)
			}
		})
	}
}

func TestDecodeOptions(t *testing.T) {
	d := []byte{0x08, 0, 2, 'i', 'd', 0, 1, 'x'}
	name, root, err := DecodeNamed(d, AnyRoot(true))
	if err != nil {
		t.Fatal(err)
	}
	if name != "id" || root != ir.Tag(ir.String("x")) {
		t.Errorf("got %q %v", name, root)
	}

	nested := []byte{0x0a, 0, 0, 0x0a, 0, 1, 'a', 0x0a, 0, 1, 'b', 0, 0, 0}
	if _, err := Decode(nested, MaxDepth(3)); err != nil {
		t.Errorf("depth 3: %v", err)
	}

	trailing := append([]byte{0x0a, 0, 0, 0}, "garbage"...)
	if _, err := Decode(trailing, DecodeCompression(format.NoCompression)); err != nil {
		t.Errorf("trailing bytes: %v", err)
	}

	big := encode.MustBytes(everything(), encode.EncodeCompression(format.GzipCompression))
	if _, err := Decode(big, MaxSize(32)); err == nil {
		t.Error("expected MaxSize to reject the document")
	}
	r, err := DecodeReader(bytes.NewReader(big))
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(r, everything()) {
		t.Error("DecodeReader mismatch")
	}
}
