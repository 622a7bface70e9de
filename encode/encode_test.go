package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-nbt/format"
	"github.com/signadot/go-nbt/ir"
)

func cat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

func str(s string) []byte {
	return append([]byte{0, byte(len(s))}, s...)
}

func TestEncodeBytes(t *testing.T) {
	tests := []struct {
		name string
		root ir.Tag
		opts []EncodeOption
		want []byte
	}{
		{
			name: "empty compound",
			root: ir.NewCompound(),
			want: []byte{0x0a, 0, 0, 0},
		},
		{
			name: "root name",
			root: ir.NewCompound(),
			opts: []EncodeOption{EncodeRootName("hello")},
			want: cat([]byte{0x0a}, str("hello"), []byte{0}),
		},
		{
			name: "name and items",
			root: ir.NewCompound().
				PutString("name", "world").
				Put("items", ir.MustListOf(ir.Int(1), ir.Int(2), ir.Int(3))),
			want: cat(
				[]byte{0x0a, 0, 0},
				[]byte{0x08}, str("name"), str("world"),
				[]byte{0x09}, str("items"), []byte{0x03, 0, 0, 0, 3, 0, 0, 0, 1, 0, 0, 0, 2, 0, 0, 0, 3},
				[]byte{0},
			),
		},
		{
			name: "little endian",
			root: ir.NewCompound().PutShort("s", 0x0102).Put("a", ir.IntArray{1}),
			opts: []EncodeOption{EncodeEndian(format.LittleEndian)},
			want: cat(
				[]byte{0x0a, 0, 0},
				[]byte{0x02, 1, 0, 's', 0x02, 0x01},
				[]byte{0x0b, 1, 0, 'a', 1, 0, 0, 0, 1, 0, 0, 0},
				[]byte{0},
			),
		},
		{
			name: "scalars",
			root: ir.NewCompound().
				PutByte("b", -1).
				PutLong("l", 1).
				PutFloat("f", 1).
				PutDouble("d", -2),
			want: cat(
				[]byte{0x0a, 0, 0},
				[]byte{0x01}, str("b"), []byte{0xff},
				[]byte{0x04}, str("l"), []byte{0, 0, 0, 0, 0, 0, 0, 1},
				[]byte{0x05}, str("f"), []byte{0x3f, 0x80, 0, 0},
				[]byte{0x06}, str("d"), []byte{0xc0, 0, 0, 0, 0, 0, 0, 0},
				[]byte{0},
			),
		},
		{
			name: "empty list default",
			root: ir.NewCompound().Put("l", ir.NewList(ir.EndType)),
			want: cat([]byte{0x0a, 0, 0, 0x09}, str("l"), []byte{0x00, 0, 0, 0, 0}, []byte{0}),
		},
		{
			name: "empty list as byte",
			root: ir.NewCompound().Put("l", ir.NewList(ir.EndType)),
			opts: []EncodeOption{EmptyListType(ir.ByteType)},
			want: cat([]byte{0x0a, 0, 0, 0x09}, str("l"), []byte{0x01, 0, 0, 0, 0}, []byte{0}),
		},
		{
			name: "empty list keeps committed type",
			root: ir.NewCompound().Put("l", ir.NewList(ir.CompoundType)),
			opts: []EncodeOption{EmptyListType(ir.ByteType)},
			want: cat([]byte{0x0a, 0, 0, 0x09}, str("l"), []byte{0x0a, 0, 0, 0, 0}, []byte{0}),
		},
		{
			name: "nested compound",
			root: ir.NewCompound().Put("c", ir.NewCompound().PutBool("ok", true)),
			want: cat([]byte{0x0a, 0, 0, 0x0a}, str("c"), []byte{0x01}, str("ok"), []byte{1, 0, 0}),
		},
		{
			name: "string root",
			root: ir.String("x"),
			want: cat([]byte{0x08, 0, 0}, str("x")),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Marshal(tt.root, tt.opts...)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			n, err := Size(tt.root, tt.opts...)
			if err != nil || n != len(tt.want) {
				t.Errorf("Size %d %v", n, err)
			}
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	long := strings.Repeat("x", 1<<16)
	tests := []struct {
		name string
		root ir.Tag
		opts []EncodeOption
		err  error
	}{
		{"end root", ir.End{}, nil, ir.ErrTypeMismatch},
		{"nil root", nil, nil, ir.ErrTypeMismatch},
		{"long string", ir.NewCompound().PutString("s", long), nil, ir.ErrEncodingLimit},
		{"long key", ir.NewCompound().PutInt(long, 1), nil, ir.ErrEncodingLimit},
		{"long root name", ir.NewCompound(), []EncodeOption{EncodeRootName(long)}, ir.ErrEncodingLimit},
		{"bad empty list type", ir.NewCompound(), []EncodeOption{EmptyListType(ir.Type(40))}, ir.ErrUnknownType},
		{"too deep", ir.NewCompound().Put("a", ir.MustListOf(ir.NewCompound())), []EncodeOption{EncodeMaxDepth(2)}, ir.ErrEncodingLimit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Marshal(tt.root, tt.opts...)
			if !errors.Is(err, tt.err) {
				t.Errorf("got %v want %v", err, tt.err)
			}
		})
	}
	if _, err := Marshal(ir.NewCompound().Put("a", ir.NewCompound()), EncodeMaxDepth(2)); err != nil {
		t.Errorf("depth at limit: %v", err)
	}
	atLimit := ir.NewCompound().PutString("s", long[:1<<16-1])
	if _, err := Marshal(atLimit); err != nil {
		t.Errorf("string at limit: %v", err)
	}
}

func TestEncodeCompressed(t *testing.T) {
	root := ir.NewCompound().PutString("name", "world")
	var buf bytes.Buffer
	if err := Encode(root, &buf, EncodeCompression(format.AutoCompression)); err != nil {
		t.Fatal(err)
	}
	if d := buf.Bytes(); len(d) < 2 || d[0] != 0x1f || d[1] != 0x8b {
		t.Errorf("expected a gzip header, got % x", d[:min(len(d), 4)])
	}
}

func TestMustBytesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustBytes(ir.End{})
}
