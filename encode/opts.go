package encode

import (
	"github.com/signadot/go-nbt/compress"
	"github.com/signadot/go-nbt/format"
	"github.com/signadot/go-nbt/ir"
)

// DefaultMaxDepth bounds the nesting of lists and compounds. It
// matches the decoder's default so that every encodable tree decodes.
const DefaultMaxDepth = 512

type EncodeOption func(*EncState)

// EncodeEndian sets the byte order of numbers and length prefixes.
// The default is format.BigEndian.
func EncodeEndian(e format.Endian) EncodeOption {
	return func(es *EncState) { es.endian = e }
}

// EncodeRootName sets the name written for the root entry. The
// default is the empty name.
func EncodeRootName(name string) EncodeOption {
	return func(es *EncState) { es.rootName = name }
}

// EncodeCompression wraps the encoded document. The default is
// format.NoCompression; format.AutoCompression selects gzip.
func EncodeCompression(c format.Compression) EncodeOption {
	return func(es *EncState) { es.compression = c }
}

// EncodeLevel sets the compression level, see compress.Wrap.
func EncodeLevel(level int) EncodeOption {
	return func(es *EncState) { es.level = level }
}

// EmptyListType sets the element type written for an empty list whose
// committed type is End. Dialects disagree on End or Byte here; the
// default is End. Empty lists with another committed type always keep
// it.
func EmptyListType(t ir.Type) EncodeOption {
	return func(es *EncState) { es.emptyListType = t }
}

// EncodeMaxDepth sets the nesting limit; n <= 0 selects
// DefaultMaxDepth. Deeper trees fail with ir.ErrEncodingLimit.
func EncodeMaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		compression:   format.NoCompression,
		level:         compress.DefaultLevel,
		emptyListType: ir.EndType,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.maxDepth <= 0 {
		es.maxDepth = DefaultMaxDepth
	}
	es.order = es.endian.ByteOrder()
	return es
}
