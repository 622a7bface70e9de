package format

import "fmt"

// Compression identifies the wrapper applied to a whole encoded
// document. The numeric values are not written anywhere; detection on
// decode uses the stream's magic bytes.
type Compression uint8

const (
	// AutoCompression detects the wrapper from magic bytes on decode
	// and means gzip on encode.
	AutoCompression Compression = iota
	NoCompression
	GzipCompression
	ZlibCompression
	ZstdCompression
	LZ4Compression
)

func (c Compression) String() string {
	switch c {
	case AutoCompression:
		return "auto"
	case NoCompression:
		return "none"
	case GzipCompression:
		return "gzip"
	case ZlibCompression:
		return "zlib"
	case ZstdCompression:
		return "zstd"
	case LZ4Compression:
		return "lz4"
	default:
		return fmt.Sprintf("unknown(%d)", c)
	}
}

func ParseCompression(name string) (Compression, error) {
	switch name {
	case "auto":
		return AutoCompression, nil
	case "none", "raw":
		return NoCompression, nil
	case "gzip", "gz":
		return GzipCompression, nil
	case "zlib":
		return ZlibCompression, nil
	case "zstd":
		return ZstdCompression, nil
	case "lz4":
		return LZ4Compression, nil
	default:
		return 0, fmt.Errorf("%w: unknown compression %q", ErrBadFormat, name)
	}
}

func (c Compression) MarshalText() ([]byte, error) {
	if c > LZ4Compression {
		return nil, fmt.Errorf("<err: %d is not a compression>", c)
	}
	return []byte(c.String()), nil
}

func (c *Compression) UnmarshalText(d []byte) error {
	pc, err := ParseCompression(string(d))
	if err != nil {
		return err
	}
	*c = pc
	return nil
}

// Compressions returns all concrete compressions, AutoCompression
// excluded.
func Compressions() []Compression {
	return []Compression{
		NoCompression,
		GzipCompression,
		ZlibCompression,
		ZstdCompression,
		LZ4Compression,
	}
}
