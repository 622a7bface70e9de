package nbt

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/go-nbt/compress"
	"github.com/signadot/go-nbt/decode"
	"github.com/signadot/go-nbt/format"
	"github.com/signadot/go-nbt/ir"
)

func TestParseConfig(t *testing.T) {
	got, err := ParseConfig([]byte(`
endian: little
compression: zstd
level: 3
rootName: Data
emptyListType: Byte
anyRoot: true
maxSize: 1024
`))
	if err != nil {
		t.Fatal(err)
	}
	want := &Config{
		Endian:        format.LittleEndian,
		Compression:   format.ZstdCompression,
		Level:         3,
		RootName:      "Data",
		EmptyListType: ir.ByteType,
		AnyRoot:       true,
		MaxDepth:      decode.DefaultMaxDepth,
		MaxSize:       1024,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	got, err := ParseConfig([]byte("{}"))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultConfig(), got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if got.Level != compress.DefaultLevel {
		t.Errorf("level %d", got.Level)
	}
}

func TestParseConfigErrors(t *testing.T) {
	for _, d := range []string{
		"endian: middle\n",
		"compression: rar\n",
		"emptyListType: Nope\n",
		"unknown: 1\n",
	} {
		if _, err := ParseConfig([]byte(d)); err == nil {
			t.Errorf("%q: expected error", d)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nbt.yaml")
	if err := os.WriteFile(path, []byte("compression: none\n"), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Compression != format.NoCompression {
		t.Errorf("compression %s", cfg.Compression)
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}
