package nbt

import (
	"fmt"
	"os"

	"github.com/signadot/go-nbt/compress"
	"github.com/signadot/go-nbt/decode"
	"github.com/signadot/go-nbt/encode"
	"github.com/signadot/go-nbt/format"
	"github.com/signadot/go-nbt/ir"
)

// File is a decoded document together with its root name and the
// compression it was read with.
type File struct {
	Name        string
	Root        ir.Tag
	Compression format.Compression
}

// Decode decodes a binary document with the settings in cfg, which
// may be nil for DefaultConfig.
func Decode(data []byte, cfg *Config) (*File, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	name, root, err := decode.DecodeNamed(data, cfg.DecodeOptions()...)
	if err != nil {
		return nil, err
	}
	c := cfg.Compression
	if c == format.AutoCompression {
		c = compress.Detect(data)
	}
	return &File{Name: name, Root: root, Compression: c}, nil
}

// Encode encodes f with the settings in cfg. The root is written under
// f.Name, or cfg.RootName when f.Name is empty. When cfg asks for
// AutoCompression the file keeps the compression it was read with;
// files that were not decoded get gzip.
func Encode(f *File, cfg *Config) ([]byte, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	opts := cfg.EncodeOptions()
	if f.Name != "" {
		opts = append(opts, encode.EncodeRootName(f.Name))
	}
	if cfg.Compression == format.AutoCompression && f.Compression != format.AutoCompression {
		opts = append(opts, encode.EncodeCompression(f.Compression))
	}
	return encode.Marshal(f.Root, opts...)
}

func ReadFile(path string, cfg *Config) (*File, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Decode(d, cfg)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return f, nil
}

// WriteFile encodes f and replaces path with the result. Nothing is
// written when encoding fails.
func WriteFile(path string, f *File, cfg *Config) error {
	d, err := Encode(f, cfg)
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, d, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
