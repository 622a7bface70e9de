package decode

import "github.com/signadot/go-nbt/format"

// DefaultMaxDepth bounds the nesting of lists and compounds.
const DefaultMaxDepth = 512

type DecodeOption func(*decState)

// DecodeEndian sets the byte order. The default is format.BigEndian.
func DecodeEndian(e format.Endian) DecodeOption {
	return func(ds *decState) { ds.endian = e }
}

// DecodeCompression forces a compression container. The default,
// format.AutoCompression, detects it from the input.
func DecodeCompression(c format.Compression) DecodeOption {
	return func(ds *decState) { ds.compression = c }
}

// AnyRoot accepts a root of any type but End. By default the root must
// be a Compound.
func AnyRoot(v bool) DecodeOption {
	return func(ds *decState) { ds.anyRoot = v }
}

// MaxDepth sets the nesting limit; n <= 0 selects DefaultMaxDepth.
func MaxDepth(n int) DecodeOption {
	return func(ds *decState) { ds.maxDepth = n }
}

// MaxSize limits the decompressed document size in bytes; 0 means no
// limit.
func MaxSize(n int64) DecodeOption {
	return func(ds *decState) { ds.maxSize = n }
}
