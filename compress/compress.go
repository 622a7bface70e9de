// Package compress wraps and unwraps encoded NBT payloads in the
// compression containers found in the wild: gzip (the classic file
// format), zlib (region chunks), zstd and lz4 frames.
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/signadot/go-nbt/debug"
	"github.com/signadot/go-nbt/format"
)

// DefaultLevel selects each algorithm's default compression level.
const DefaultLevel = -1

var (
	ErrUnsupported = errors.New("unsupported compression")
	ErrTooLarge    = errors.New("decompressed size exceeds limit")
	ErrCorrupt     = errors.New("corrupt compressed data")
)

// Wrap compresses data with c at the given level. Levels follow
// compress/flate (1-9) for gzip and zlib, zstd's numeric levels (1-22)
// for zstd and 1-9 for lz4; DefaultLevel picks the algorithm default.
// AutoCompression means gzip and NoCompression returns data unchanged.
func Wrap(data []byte, c format.Compression, level int) ([]byte, error) {
	if c == format.AutoCompression {
		c = format.GzipCompression
	}
	var (
		res []byte
		err error
	)
	switch c {
	case format.NoCompression:
		return data, nil
	case format.GzipCompression:
		res, err = wrapGzip(data, level)
	case format.ZlibCompression:
		res, err = wrapZlib(data, level)
	case format.ZstdCompression:
		res, err = wrapZstd(data, level)
	case format.LZ4Compression:
		res, err = wrapLZ4(data, level)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, c)
	}
	if err != nil {
		return nil, fmt.Errorf("%s compress: %w", c, err)
	}
	if debug.Compress() {
		debug.Logf("compress %s level %d: %d -> %d bytes\n", c, level, len(data), len(res))
	}
	return res, nil
}

// Unwrap decompresses data compressed with c. AutoCompression detects
// the container from its magic bytes. If limit is positive, output larger
// than limit bytes fails with ErrTooLarge.
func Unwrap(data []byte, c format.Compression, limit int64) ([]byte, error) {
	if c == format.AutoCompression {
		c = Detect(data)
	}
	var (
		res []byte
		err error
	)
	switch c {
	case format.NoCompression:
		if limit > 0 && int64(len(data)) > limit {
			return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, len(data), limit)
		}
		return data, nil
	case format.GzipCompression:
		var zr *gzip.Reader
		zr, err = gzip.NewReader(bytes.NewReader(data))
		if err == nil {
			res, err = readAll(zr, limit)
			zr.Close()
		}
	case format.ZlibCompression:
		var zr io.ReadCloser
		zr, err = zlib.NewReader(bytes.NewReader(data))
		if err == nil {
			res, err = readAll(zr, limit)
			zr.Close()
		}
	case format.ZstdCompression:
		res, err = unwrapZstd(data, limit)
	case format.LZ4Compression:
		res, err = readAll(lz4.NewReader(bytes.NewReader(data)), limit)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, c)
	}
	if err != nil {
		if errors.Is(err, ErrTooLarge) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, c, err)
	}
	if debug.Compress() {
		debug.Logf("decompress %s: %d -> %d bytes\n", c, len(data), len(res))
	}
	return res, nil
}

// readAll reads r to the end, failing once more than limit bytes have
// been produced.
func readAll(r io.Reader, limit int64) ([]byte, error) {
	if limit <= 0 {
		return io.ReadAll(r)
	}
	res, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(res)) > limit {
		return nil, fmt.Errorf("%w: more than %d bytes", ErrTooLarge, limit)
	}
	return res, nil
}

func wrapGzip(data []byte, level int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	zw, err := gzip.NewWriterLevel(buf, flateLevel(level))
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func wrapZlib(data []byte, level int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	zw, err := zlib.NewWriterLevel(buf, flateLevel(level))
	if err != nil {
		return nil, err
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func flateLevel(level int) int {
	if level == DefaultLevel {
		return gzip.DefaultCompression
	}
	return level
}

func wrapZstd(data []byte, level int) ([]byte, error) {
	encLevel := zstd.SpeedDefault
	if level != DefaultLevel {
		encLevel = zstd.EncoderLevelFromZstd(level)
	}
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(encLevel))
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

func unwrapZstd(data []byte, limit int64) ([]byte, error) {
	opts := []zstd.DOption{}
	if limit > 0 {
		opts = append(opts, zstd.WithDecoderMaxMemory(uint64(limit)))
	}
	dec, err := zstd.NewReader(nil, opts...)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	res, err := dec.DecodeAll(data, nil)
	if err != nil {
		if errors.Is(err, zstd.ErrDecoderSizeExceeded) || errors.Is(err, zstd.ErrWindowSizeExceeded) {
			return nil, fmt.Errorf("%w: %w", ErrTooLarge, err)
		}
		return nil, err
	}
	if limit > 0 && int64(len(res)) > limit {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, len(res), limit)
	}
	return res, nil
}

var lz4Levels = [...]lz4.CompressionLevel{
	lz4.Fast,
	lz4.Level1,
	lz4.Level2,
	lz4.Level3,
	lz4.Level4,
	lz4.Level5,
	lz4.Level6,
	lz4.Level7,
	lz4.Level8,
	lz4.Level9,
}

func wrapLZ4(data []byte, level int) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	zw := lz4.NewWriter(buf)
	if level != DefaultLevel {
		if level < 0 || level >= len(lz4Levels) {
			return nil, fmt.Errorf("bad lz4 level %d", level)
		}
		if err := zw.Apply(lz4.CompressionLevelOption(lz4Levels[level])); err != nil {
			return nil, err
		}
	}
	if _, err := zw.Write(data); err != nil {
		return nil, err
	}
	if err := zw.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
