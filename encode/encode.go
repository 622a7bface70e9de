package encode

import (
	"fmt"
	"io"
	"math"

	"github.com/signadot/go-nbt/compress"
	"github.com/signadot/go-nbt/debug"
	"github.com/signadot/go-nbt/format"
	"github.com/signadot/go-nbt/ir"
)

type EncState struct {
	endian        format.Endian
	order         format.ByteOrder
	rootName      string
	compression   format.Compression
	level         int
	emptyListType ir.Type
	maxDepth      int

	depth int
	buf   []byte
}

// Encode writes root to w as a single named entry. Any tag but End may
// be the root, though readers of the classic format expect a Compound.
func Encode(root ir.Tag, w io.Writer, opts ...EncodeOption) error {
	d, err := Marshal(root, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Marshal is like Encode but returns the encoded bytes.
func Marshal(root ir.Tag, opts ...EncodeOption) ([]byte, error) {
	es := newEncState(opts)
	if root == nil || root.Type() == ir.EndType {
		return nil, fmt.Errorf("%w: root may not be %s", ir.ErrTypeMismatch, typeName(root))
	}
	if !es.emptyListType.Valid() {
		return nil, fmt.Errorf("%w: empty list type %d", ir.ErrUnknownType, uint8(es.emptyListType))
	}
	if err := es.named(root.Type(), es.rootName); err != nil {
		return nil, err
	}
	if err := es.payload(root, "$"); err != nil {
		return nil, err
	}
	if debug.Encode() {
		debug.Logf("encoded %s root %q: %d bytes %s\n", root.Type(), es.rootName, len(es.buf), es.endian)
	}
	return compress.Wrap(es.buf, es.compression, es.level)
}

func typeName(t ir.Tag) string {
	if t == nil {
		return "nil"
	}
	return t.Type().String()
}

func (es *EncState) named(t ir.Type, name string) error {
	es.buf = append(es.buf, byte(t))
	return es.string(name, "$")
}

func (es *EncState) string(s, at string) error {
	if len(s) > math.MaxUint16 {
		return fmt.Errorf("%w: string of %d bytes at %s", ir.ErrEncodingLimit, len(s), at)
	}
	es.buf = es.order.AppendUint16(es.buf, uint16(len(s)))
	es.buf = append(es.buf, s...)
	return nil
}

func (es *EncState) length(n int, at string) error {
	if n > math.MaxInt32 {
		return fmt.Errorf("%w: %d elements at %s", ir.ErrEncodingLimit, n, at)
	}
	es.buf = es.order.AppendUint32(es.buf, uint32(n))
	return nil
}

func (es *EncState) payload(t ir.Tag, at string) error {
	switch x := t.(type) {
	case ir.Byte:
		es.buf = append(es.buf, byte(x))
	case ir.Short:
		es.buf = es.order.AppendUint16(es.buf, uint16(x))
	case ir.Int:
		es.buf = es.order.AppendUint32(es.buf, uint32(x))
	case ir.Long:
		es.buf = es.order.AppendUint64(es.buf, uint64(x))
	case ir.Float:
		es.buf = es.order.AppendUint32(es.buf, math.Float32bits(float32(x)))
	case ir.Double:
		es.buf = es.order.AppendUint64(es.buf, math.Float64bits(float64(x)))
	case ir.String:
		return es.string(string(x), at)
	case ir.ByteArray:
		if err := es.length(len(x), at); err != nil {
			return err
		}
		for _, v := range x {
			es.buf = append(es.buf, byte(v))
		}
	case ir.IntArray:
		if err := es.length(len(x), at); err != nil {
			return err
		}
		for _, v := range x {
			es.buf = es.order.AppendUint32(es.buf, uint32(v))
		}
	case ir.LongArray:
		if err := es.length(len(x), at); err != nil {
			return err
		}
		for _, v := range x {
			es.buf = es.order.AppendUint64(es.buf, uint64(v))
		}
	case *ir.List:
		if err := es.enter(at); err != nil {
			return err
		}
		defer func() { es.depth-- }()
		return es.list(x, at)
	case *ir.Compound:
		if err := es.enter(at); err != nil {
			return err
		}
		defer func() { es.depth-- }()
		for k, v := range x.All() {
			if err := es.named(v.Type(), k); err != nil {
				return fmt.Errorf("key %q at %s: %w", k, at, err)
			}
			if err := es.payload(v, ir.PathField(at, k)); err != nil {
				return err
			}
		}
		es.buf = append(es.buf, byte(ir.EndType))
	case ir.End:
		return fmt.Errorf("%w: End stored at %s", ir.ErrTypeMismatch, at)
	default:
		return fmt.Errorf("%w: unexpected tag %T at %s", ir.ErrTypeMismatch, t, at)
	}
	return nil
}

func (es *EncState) enter(at string) error {
	es.depth++
	if es.depth > es.maxDepth {
		return fmt.Errorf("%w: depth %d at %s", ir.ErrEncodingLimit, es.depth, at)
	}
	return nil
}

func (es *EncState) list(l *ir.List, at string) error {
	elem := l.ElemType()
	if l.Len() == 0 && elem == ir.EndType {
		elem = es.emptyListType
	}
	es.buf = append(es.buf, byte(elem))
	if err := es.length(l.Len(), at); err != nil {
		return err
	}
	for i, v := range l.All() {
		if v.Type() != elem {
			return fmt.Errorf("%w: %s in list of %s at %s", ir.ErrTypeMismatch, v.Type(), elem, ir.PathIndex(at, i))
		}
		if err := es.payload(v, ir.PathIndex(at, i)); err != nil {
			return err
		}
	}
	return nil
}

// Size returns the length of the uncompressed encoding of root.
func Size(root ir.Tag, opts ...EncodeOption) (int, error) {
	opts = append(opts[:len(opts):len(opts)], EncodeCompression(format.NoCompression))
	d, err := Marshal(root, opts...)
	if err != nil {
		return 0, err
	}
	return len(d), nil
}
