package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/signadot/go-nbt/format"
)

func TestInputFormat(t *testing.T) {
	tests := []struct {
		from, path string
		want       format.Format
		err        bool
	}{
		{path: "a.snbt", want: format.SNBTFormat},
		{path: "a.json", want: format.JSONFormat},
		{path: "a.yml", want: format.YAMLFormat},
		{path: "a.yaml", want: format.YAMLFormat},
		{path: "a.cbor", want: format.CBORFormat},
		{from: "json", path: "a.txt", want: format.JSONFormat},
		{path: "a.nbt", err: true},
		{path: "a.txt", err: true},
		{from: "nbt", path: "a.snbt", err: true},
		{from: "xml", path: "a.snbt", err: true},
	}
	for _, tc := range tests {
		got, err := inputFormat(tc.from, tc.path)
		if tc.err {
			if err == nil {
				t.Errorf("%q %q: expected error", tc.from, tc.path)
			}
			continue
		}
		if err != nil {
			t.Errorf("%q %q: %v", tc.from, tc.path, err)
			continue
		}
		if got != tc.want {
			t.Errorf("%q %q: got %s want %s", tc.from, tc.path, got, tc.want)
		}
	}
}

func TestNBTConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nbt.yaml")
	if err := os.WriteFile(path, []byte("endian: little\ncompression: zlib\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(configEnv, path)
	cfg := &MainConfig{}
	got, err := cfg.nbtConfig()
	if err != nil {
		t.Fatal(err)
	}
	if got.Endian != format.LittleEndian || got.Compression != format.ZlibCompression {
		t.Errorf("got %s %s", got.Endian, got.Compression)
	}

	c := format.NoCompression
	cfg.Compression = &c
	got, err = cfg.nbtConfig()
	if err != nil {
		t.Fatal(err)
	}
	if got.Endian != format.LittleEndian || got.Compression != format.NoCompression {
		t.Errorf("flag override: got %s %s", got.Endian, got.Compression)
	}

	cfg.Config = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := cfg.nbtConfig(); err == nil {
		t.Error("expected error for missing config")
	}
}

func TestWriteSep(t *testing.T) {
	for _, f := range format.AllFormats() {
		var buf bytes.Buffer
		cfg := &MainConfig{OutFormat: &f}
		if err := writeSep(cfg, &buf); err != nil {
			t.Fatal(err)
		}
		want := ""
		if f != format.CBORFormat && f != format.NBTFormat {
			want = "---\n"
		}
		if got := buf.String(); got != want {
			t.Errorf("%s: got %q want %q", f, got, want)
		}
	}
}
