package decode

import (
	"fmt"
	"io"
	"math"

	"github.com/signadot/go-nbt/compress"
	"github.com/signadot/go-nbt/debug"
	"github.com/signadot/go-nbt/format"
	"github.com/signadot/go-nbt/ir"
)

type decState struct {
	endian      format.Endian
	order       format.ByteOrder
	compression format.Compression
	anyRoot     bool
	maxDepth    int
	maxSize     int64

	data  []byte
	off   int
	depth int
}

// Decode decodes the document in data and returns its root.
func Decode(data []byte, opts ...DecodeOption) (ir.Tag, error) {
	_, root, err := DecodeNamed(data, opts...)
	return root, err
}

// DecodeReader reads r to the end and decodes it.
func DecodeReader(r io.Reader, opts ...DecodeOption) (ir.Tag, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Decode(data, opts...)
}

// DecodeNamed is like Decode but also returns the root's name. Bytes
// following the root entry are ignored.
func DecodeNamed(data []byte, opts ...DecodeOption) (string, ir.Tag, error) {
	ds := &decState{}
	for _, opt := range opts {
		opt(ds)
	}
	if ds.maxDepth <= 0 {
		ds.maxDepth = DefaultMaxDepth
	}
	ds.order = ds.endian.ByteOrder()
	raw, err := compress.Unwrap(data, ds.compression, ds.maxSize)
	if err != nil {
		return "", nil, err
	}
	ds.data = raw
	name, root, err := ds.root()
	if err != nil {
		return "", nil, err
	}
	if debug.Decode() {
		debug.Logf("decoded %s root %q: %d of %d bytes %s\n", root.Type(), name, ds.off, len(raw), ds.endian)
	}
	return name, root, nil
}

func (ds *decState) root() (string, ir.Tag, error) {
	t, err := ds.tagType()
	if err != nil {
		return "", nil, err
	}
	switch {
	case t == ir.EndType:
		return "", nil, fmt.Errorf("%w: root is End", ir.ErrTypeMismatch)
	case t != ir.CompoundType && !ds.anyRoot:
		return "", nil, fmt.Errorf("%w: root is %s, expected Compound", ir.ErrTypeMismatch, t)
	}
	name, err := ds.string()
	if err != nil {
		return "", nil, err
	}
	root, err := ds.payload(t)
	if err != nil {
		return "", nil, err
	}
	return name, root, nil
}

// errf wraps a sentinel with the current offset.
func (ds *decState) errf(sentinel error, f string, args ...any) error {
	return fmt.Errorf("%w at offset %d: "+f, append([]any{sentinel, ds.off}, args...)...)
}

func (ds *decState) take(n int) ([]byte, error) {
	if len(ds.data)-ds.off < n {
		return nil, ds.errf(ErrUnexpectedEOF, "need %d bytes, have %d", n, len(ds.data)-ds.off)
	}
	res := ds.data[ds.off : ds.off+n]
	ds.off += n
	return res, nil
}

func (ds *decState) tagType() (ir.Type, error) {
	b, err := ds.take(1)
	if err != nil {
		return 0, err
	}
	t := ir.Type(b[0])
	if !t.Valid() {
		ds.off--
		return 0, ds.errf(ErrUnknownTagType, "type id %d", b[0])
	}
	return t, nil
}

func (ds *decState) u16() (uint16, error) {
	b, err := ds.take(2)
	if err != nil {
		return 0, err
	}
	return ds.order.Uint16(b), nil
}

func (ds *decState) u32() (uint32, error) {
	b, err := ds.take(4)
	if err != nil {
		return 0, err
	}
	return ds.order.Uint32(b), nil
}

func (ds *decState) u64() (uint64, error) {
	b, err := ds.take(8)
	if err != nil {
		return 0, err
	}
	return ds.order.Uint64(b), nil
}

// length reads a signed 32 bit count of elements of width bytes each
// and checks that they fit in the remaining input.
func (ds *decState) length(width int) (int, error) {
	u, err := ds.u32()
	if err != nil {
		return 0, err
	}
	n := int32(u)
	if n < 0 {
		return 0, ds.errf(ErrMalformedLength, "negative length %d", n)
	}
	if int64(n)*int64(width) > int64(len(ds.data)-ds.off) {
		return 0, ds.errf(ErrMalformedLength, "%d elements of %d bytes, %d bytes remain", n, width, len(ds.data)-ds.off)
	}
	return int(n), nil
}

func (ds *decState) string() (string, error) {
	n, err := ds.u16()
	if err != nil {
		return "", err
	}
	if int(n) > len(ds.data)-ds.off {
		// both a truncation and a length the input cannot satisfy
		return "", ds.errf(ErrMalformedLength, "%w: string of %d bytes, %d bytes remain", ErrUnexpectedEOF, n, len(ds.data)-ds.off)
	}
	b, _ := ds.take(int(n))
	return string(b), nil
}

// minWidth is the smallest payload size of each type, used to bound
// list counts before allocating.
func minWidth(t ir.Type) int {
	switch t {
	case ir.ByteType:
		return 1
	case ir.ShortType, ir.StringType:
		return 2
	case ir.IntType, ir.FloatType, ir.ByteArrayType, ir.IntArrayType, ir.LongArrayType, ir.ListType:
		return 4
	case ir.LongType, ir.DoubleType:
		return 8
	case ir.CompoundType:
		return 1
	default:
		return 0
	}
}

func (ds *decState) payload(t ir.Type) (ir.Tag, error) {
	switch t {
	case ir.ByteType:
		b, err := ds.take(1)
		if err != nil {
			return nil, err
		}
		return ir.Byte(int8(b[0])), nil
	case ir.ShortType:
		v, err := ds.u16()
		return ir.Short(int16(v)), err
	case ir.IntType:
		v, err := ds.u32()
		return ir.Int(int32(v)), err
	case ir.LongType:
		v, err := ds.u64()
		return ir.Long(int64(v)), err
	case ir.FloatType:
		v, err := ds.u32()
		return ir.Float(math.Float32frombits(v)), err
	case ir.DoubleType:
		v, err := ds.u64()
		return ir.Double(math.Float64frombits(v)), err
	case ir.StringType:
		s, err := ds.string()
		return ir.String(s), err
	case ir.ByteArrayType:
		n, err := ds.length(1)
		if err != nil {
			return nil, err
		}
		b, _ := ds.take(n)
		res := make(ir.ByteArray, n)
		for i := range b {
			res[i] = int8(b[i])
		}
		return res, nil
	case ir.IntArrayType:
		n, err := ds.length(4)
		if err != nil {
			return nil, err
		}
		res := make(ir.IntArray, n)
		for i := range res {
			v, _ := ds.u32()
			res[i] = int32(v)
		}
		return res, nil
	case ir.LongArrayType:
		n, err := ds.length(8)
		if err != nil {
			return nil, err
		}
		res := make(ir.LongArray, n)
		for i := range res {
			v, _ := ds.u64()
			res[i] = int64(v)
		}
		return res, nil
	case ir.ListType:
		return ds.list()
	case ir.CompoundType:
		return ds.compound()
	default:
		return nil, ds.errf(ErrUnknownTagType, "type id %d", uint8(t))
	}
}

func (ds *decState) enter() error {
	ds.depth++
	if ds.depth > ds.maxDepth {
		return ds.errf(ErrMaxDepth, "depth %d", ds.depth)
	}
	return nil
}

func (ds *decState) list() (ir.Tag, error) {
	if err := ds.enter(); err != nil {
		return nil, err
	}
	defer func() { ds.depth-- }()
	elem, err := ds.tagType()
	if err != nil {
		return nil, err
	}
	n, err := ds.length(minWidth(elem))
	if err != nil {
		return nil, err
	}
	if elem == ir.EndType && n > 0 {
		return nil, ds.errf(ErrMalformedLength, "list of End with %d elements", n)
	}
	l := ir.NewList(elem)
	for range n {
		v, err := ds.payload(elem)
		if err != nil {
			return nil, err
		}
		if err := l.Append(v); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (ds *decState) compound() (ir.Tag, error) {
	if err := ds.enter(); err != nil {
		return nil, err
	}
	defer func() { ds.depth-- }()
	c := ir.NewCompound()
	for {
		t, err := ds.tagType()
		if err != nil {
			return nil, err
		}
		if t == ir.EndType {
			return c, nil
		}
		name, err := ds.string()
		if err != nil {
			return nil, err
		}
		v, err := ds.payload(t)
		if err != nil {
			return nil, err
		}
		if err := c.Set(name, v); err != nil {
			return nil, err
		}
	}
}
