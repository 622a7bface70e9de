package compress

import (
	"bytes"

	"github.com/signadot/go-nbt/format"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Detect identifies the compression container of data from its leading
// bytes. Data matching no known header is reported as NoCompression;
// an uncompressed document starts with the Compound type byte 0x0a,
// which matches none of them.
func Detect(data []byte) format.Compression {
	switch {
	case bytes.HasPrefix(data, gzipMagic):
		return format.GzipCompression
	case bytes.HasPrefix(data, zstdMagic):
		return format.ZstdCompression
	case bytes.HasPrefix(data, lz4Magic):
		return format.LZ4Compression
	case isZlib(data):
		return format.ZlibCompression
	default:
		return format.NoCompression
	}
}

// isZlib checks the RFC 1950 header: deflate with a window of 512
// bytes to 32K and a check value making the first two bytes a multiple
// of 31. The 256 byte window is excluded: its CMF byte 0x08 is the
// String type id, which starts a raw document with a String root.
func isZlib(data []byte) bool {
	if len(data) < 2 {
		return false
	}
	cmf, flg := data[0], data[1]
	if cmf&0x0f != 8 || cmf>>4 == 0 || cmf>>4 > 7 {
		return false
	}
	return (uint16(cmf)<<8|uint16(flg))%31 == 0
}
