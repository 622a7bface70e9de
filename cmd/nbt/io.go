package main

import (
	"fmt"
	"io"
	"os"

	nbt "github.com/signadot/go-nbt"
	"github.com/signadot/go-nbt/bridge"
	"github.com/signadot/go-nbt/format"
	"github.com/signadot/go-nbt/ir"
	"github.com/signadot/go-nbt/snbt"

	"github.com/scott-cotton/cli"
)

// readFile decodes the nbt file at path, or standard input for "-".
func readFile(cfg *MainConfig, cc *cli.Context, path string) (*nbt.File, error) {
	ncfg, err := cfg.nbtConfig()
	if err != nil {
		return nil, err
	}
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	res, err := nbt.Decode(d, ncfg)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return res, nil
}

// eachFile calls fn on every file in files, standard input when files
// is empty.
func eachFile(cfg *MainConfig, cc *cli.Context, files []string, fn func(name string, f *nbt.File, i int) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for i, name := range files {
		f, err := readFile(cfg, cc, name)
		if err != nil {
			return err
		}
		if err := fn(name, f, i); err != nil {
			return fmt.Errorf("error processing %s: %w", name, err)
		}
	}
	return nil
}

// writeTag writes t to w in the output format.
func writeTag(cfg *MainConfig, w io.Writer, t ir.Tag) error {
	switch f := cfg.outFormat(); f {
	case format.SNBTFormat:
		return snbt.Encode(t, w, cfg.snbtOpts(w)...)
	case format.NBTFormat:
		ncfg, err := cfg.nbtConfig()
		if err != nil {
			return err
		}
		d, err := nbt.Encode(&nbt.File{Root: t}, ncfg)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	default:
		d, err := bridge.Marshal(t, f)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
}

// writeSep separates documents in text output. Binary documents are
// self delimiting and are written back to back.
func writeSep(cfg *MainConfig, w io.Writer) error {
	if !cfg.outFormat().IsText() {
		return nil
	}
	_, err := w.Write([]byte("---\n"))
	return err
}

// saveFile writes f back to path, or prints its root when show is
// set or path is "-".
func saveFile(cfg *MainConfig, cc *cli.Context, path string, f *nbt.File, show bool) error {
	if show || path == "-" {
		return writeTag(cfg, cc.Out, f.Root)
	}
	ncfg, err := cfg.nbtConfig()
	if err != nil {
		return err
	}
	if err := nbt.WriteFile(path, f, ncfg); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}
