package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	nbt "github.com/signadot/go-nbt"
	"github.com/signadot/go-nbt/bridge"
	"github.com/signadot/go-nbt/format"

	"github.com/scott-cotton/cli"
)

func convert(cfg *ConvertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Convert.Parse(cc, args)
	if err != nil {
		cfg.Convert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: convert requires 2 arguments, an input and an output file", cli.ErrUsage)
	}
	from, err := inputFormat(cfg.From, args[0])
	if err != nil {
		return err
	}
	var d []byte
	if args[0] == "-" {
		d, err = io.ReadAll(cc.In)
	} else {
		d, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("error reading %s: %w", args[0], err)
	}
	root, err := bridge.Unmarshal(d, from, nil)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	f := &nbt.File{Name: cfg.RootName, Root: root}
	if args[1] == "-" {
		ncfg, err := cfg.nbtConfig()
		if err != nil {
			return err
		}
		out, err := nbt.Encode(f, ncfg)
		if err != nil {
			return err
		}
		_, err = cc.Out.Write(out)
		return err
	}
	return saveFile(cfg.MainConfig, cc, args[1], f, false)
}

// inputFormat returns the format named by -from, or the one matching
// the suffix of path.
func inputFormat(from, path string) (format.Format, error) {
	if from != "" {
		f, err := format.ParseFormat(from)
		if err != nil {
			return 0, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if f == format.NBTFormat {
			return 0, fmt.Errorf("%w: input is already nbt", cli.ErrUsage)
		}
		return f, nil
	}
	ext := filepath.Ext(path)
	if ext == ".yml" {
		return format.YAMLFormat, nil
	}
	for _, f := range format.AllFormats() {
		if f != format.NBTFormat && f.Suffix() == ext {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: cannot tell the format of %q, use -from", cli.ErrUsage, path)
}
