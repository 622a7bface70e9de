package nbt

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/go-nbt/format"
	"github.com/signadot/go-nbt/ir"
	"github.com/signadot/go-nbt/snbt"
)

const level = `{Data:{LevelName:"world",SpawnX:10,Time:123456789L,Rules:{},Players:[]}}`

func TestEncodeDecode(t *testing.T) {
	root := snbt.MustParse(level)
	for _, e := range []format.Endian{format.BigEndian, format.LittleEndian} {
		for _, c := range append(format.Compressions(), format.AutoCompression) {
			cfg := DefaultConfig()
			cfg.Endian = e
			cfg.Compression = c
			d, err := Encode(&File{Name: "root", Root: root}, cfg)
			if err != nil {
				t.Fatalf("%s/%s: %v", e, c, err)
			}
			f, err := Decode(d, cfg)
			if err != nil {
				t.Fatalf("%s/%s: %v", e, c, err)
			}
			if f.Name != "root" {
				t.Errorf("%s/%s: name %q", e, c, f.Name)
			}
			if !ir.Equal(root, f.Root) {
				t.Errorf("%s/%s: got %s", e, c, snbt.MustString(f.Root))
			}
		}
	}
}

func TestEncodeDefaultGzip(t *testing.T) {
	d, err := Encode(&File{Root: snbt.MustParse(level)}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(d, []byte{0x1f, 0x8b}) {
		t.Errorf("expected gzip header, got % x", d[:2])
	}
	f, err := Decode(d, nil)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "" {
		t.Errorf("name %q", f.Name)
	}
}

func TestEncodeConfigRootName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RootName = "Level"
	d, err := Encode(&File{Root: ir.NewCompound()}, cfg)
	if err != nil {
		t.Fatal(err)
	}
	f, err := Decode(d, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if f.Name != "Level" {
		t.Errorf("name %q", f.Name)
	}
}

func TestReadWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.dat")
	cfg := DefaultConfig()
	f := &File{Name: "", Root: snbt.MustParse(level)}
	if err := WriteFile(path, f, cfg); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(f.Root, got.Root) {
		t.Errorf("got %s", snbt.MustString(got.Root))
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Errorf("temporary file left behind: %v", err)
	}

	bad := &File{Root: ir.String("not a compound")}
	if err := WriteFile(path, bad, cfg); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadFile(path, cfg); err == nil {
		t.Error("expected error decoding a string root without AnyRoot")
	}
	cfg.AnyRoot = true
	if _, err := ReadFile(path, cfg); err != nil {
		t.Error(err)
	}
}

func TestEncodeKeepsCompression(t *testing.T) {
	for _, c := range format.Compressions() {
		cfg := DefaultConfig()
		cfg.Compression = c
		d, err := Encode(&File{Root: snbt.MustParse(level)}, cfg)
		if err != nil {
			t.Fatal(err)
		}
		f, err := Decode(d, nil)
		if err != nil {
			t.Fatalf("%s: %v", c, err)
		}
		if f.Compression != c {
			t.Errorf("decoded compression %s want %s", f.Compression, c)
		}
		again, err := Encode(f, nil)
		if err != nil {
			t.Fatal(err)
		}
		f2, err := Decode(again, nil)
		if err != nil {
			t.Fatal(err)
		}
		if f2.Compression != c {
			t.Errorf("re-encoded compression %s want %s", f2.Compression, c)
		}
	}
}

func TestConfigMaxDepth(t *testing.T) {
	deep := ir.NewCompound()
	for range 599 {
		deep = ir.NewCompound().Put("a", deep)
	}
	f := &File{Root: deep}
	if _, err := Encode(f, nil); !errors.Is(err, ir.ErrEncodingLimit) {
		t.Errorf("default limit: got %v", err)
	}
	cfg := DefaultConfig()
	cfg.MaxDepth = 600
	d, err := Encode(f, cfg)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Decode(d, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !ir.Equal(deep, got.Root) {
		t.Error("deep tree did not round trip")
	}
}

func TestDetectStringRoot(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Endian = format.LittleEndian
	cfg.Compression = format.NoCompression
	cfg.AnyRoot = true
	f := &File{Name: "abcdefghijklmnopqrstuvwxyzabc", Root: ir.String("v")}
	d, err := Encode(f, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if d[0] != 0x08 || d[1] != 0x1d {
		t.Fatalf("header % x", d[:2])
	}
	cfg.Compression = format.AutoCompression
	got, err := Decode(d, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if got.Compression != format.NoCompression || got.Name != f.Name || got.Root != ir.Tag(ir.String("v")) {
		t.Errorf("got %s %q %v", got.Compression, got.Name, got.Root)
	}
}
