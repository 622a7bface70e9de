package main

import (
	"fmt"
	"io"
	"os"

	nbt "github.com/signadot/go-nbt"
	"github.com/signadot/go-nbt/libdiff"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch file and a file to which to apply it", cli.ErrUsage)
	}
	if cfg.JSON && cfg.Reverse {
		return fmt.Errorf("%w: -r does not apply to json patches", cli.ErrUsage)
	}
	pd, err := readPatch(cc, args[0])
	if err != nil {
		return err
	}
	target, err := readFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if cfg.JSON {
		target.Root, err = nbt.JSONPatch(target.Root, pd)
	} else {
		var changes []libdiff.Change
		changes, err = libdiff.UnmarshalChanges(pd)
		if err != nil {
			return fmt.Errorf("error reading change list %s: %w", args[0], err)
		}
		if cfg.Reverse {
			changes = libdiff.Reverse(changes)
		}
		target.Root, err = nbt.Patch(target.Root, changes)
	}
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	return saveFile(cfg.MainConfig, cc, args[1], target, cfg.Print)
}

func readPatch(cc *cli.Context, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cc.In)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading patch: %w", err)
	}
	return d, nil
}
