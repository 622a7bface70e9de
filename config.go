package nbt

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/signadot/go-nbt/compress"
	"github.com/signadot/go-nbt/decode"
	"github.com/signadot/go-nbt/encode"
	"github.com/signadot/go-nbt/format"
	"github.com/signadot/go-nbt/ir"
)

// Config collects the binary encoding and decoding settings. It can
// be loaded from YAML:
//
//	endian: little
//	compression: zstd
//	level: 3
//	rootName: Data
//	emptyListType: Byte
//	maxDepth: 128
type Config struct {
	Endian        format.Endian      `yaml:"endian"`
	Compression   format.Compression `yaml:"compression"`
	Level         int                `yaml:"level"`
	RootName      string             `yaml:"rootName"`
	EmptyListType ir.Type            `yaml:"emptyListType"`
	AnyRoot       bool               `yaml:"anyRoot"`
	MaxDepth      int                `yaml:"maxDepth"`
	MaxSize       int64              `yaml:"maxSize"`
}

// DefaultConfig returns big endian, auto detected compression on
// decode and gzip on encode.
func DefaultConfig() *Config {
	return &Config{
		Endian:        format.BigEndian,
		Compression:   format.AutoCompression,
		Level:         compress.DefaultLevel,
		EmptyListType: ir.EndType,
		MaxDepth:      decode.DefaultMaxDepth,
	}
}

// LoadConfig reads a YAML config from path. Unset fields keep their
// DefaultConfig values.
func LoadConfig(path string) (*Config, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseConfig(d)
}

func ParseConfig(d []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.UnmarshalWithOptions(d, cfg, yaml.DisallowUnknownField()); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if !cfg.EmptyListType.Valid() {
		return nil, fmt.Errorf("invalid config: %w: emptyListType %d", ir.ErrUnknownType, uint8(cfg.EmptyListType))
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = decode.DefaultMaxDepth
	}
	return cfg, nil
}

func (cfg *Config) EncodeOptions() []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeEndian(cfg.Endian),
		encode.EncodeCompression(cfg.Compression),
		encode.EncodeLevel(cfg.Level),
		encode.EncodeRootName(cfg.RootName),
		encode.EmptyListType(cfg.EmptyListType),
		encode.EncodeMaxDepth(cfg.MaxDepth),
	}
}

func (cfg *Config) DecodeOptions() []decode.DecodeOption {
	return []decode.DecodeOption{
		decode.DecodeEndian(cfg.Endian),
		decode.DecodeCompression(cfg.Compression),
		decode.AnyRoot(cfg.AnyRoot),
		decode.MaxDepth(cfg.MaxDepth),
		decode.MaxSize(cfg.MaxSize),
	}
}
