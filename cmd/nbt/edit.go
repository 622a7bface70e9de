package main

import (
	"fmt"
	"strconv"

	"github.com/signadot/go-nbt/debug"
	"github.com/signadot/go-nbt/ir"
	"github.com/signadot/go-nbt/snbt"

	"github.com/scott-cotton/cli"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 3 {
		return fmt.Errorf("%w: set requires 3 arguments, a path, an snbt value and a file", cli.ErrUsage)
	}
	p, v, err := pathValue(args[0], args[1])
	if err != nil {
		return err
	}
	f, err := readFile(cfg.MainConfig, cc, args[2])
	if err != nil {
		return err
	}
	if debug.Patch() {
		debug.Logf("set %s to %s in %s\n", p, v, args[2])
	}
	if p == nil {
		f.Root = v
	} else if err := ir.SetPath(f.Root, p, v); err != nil {
		return err
	}
	return saveFile(cfg.MainConfig, cc, args[2], f, cfg.Print)
}

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		cfg.Rm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: rm requires 2 arguments, a path and a file", cli.ErrUsage)
	}
	p, err := ir.ParsePath(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	f, err := readFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if debug.Patch() {
		debug.Logf("remove %s in %s\n", p, args[1])
	}
	if err := ir.RemovePath(f.Root, p); err != nil {
		return err
	}
	return saveFile(cfg.MainConfig, cc, args[1], f, cfg.Print)
}

func insert(cfg *InsertConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Insert.Parse(cc, args)
	if err != nil {
		cfg.Insert.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 4 {
		return fmt.Errorf("%w: insert requires 4 arguments, a path, an index, an snbt value and a file", cli.ErrUsage)
	}
	p, v, err := pathValue(args[0], args[2])
	if err != nil {
		return err
	}
	f, err := readFile(cfg.MainConfig, cc, args[3])
	if err != nil {
		return err
	}
	index := -1
	if args[1] != "end" {
		index, err = strconv.Atoi(args[1])
		if err != nil || index < 0 {
			return fmt.Errorf("%w: invalid index %q", cli.ErrUsage, args[1])
		}
	}
	if index < 0 {
		l, err := ir.ResolvePath(f.Root, p)
		if err != nil {
			return err
		}
		ll, err := ir.AsList(l)
		if err != nil {
			return err
		}
		index = ll.Len()
	}
	if debug.Patch() {
		debug.Logf("insert %s at %s[%d] in %s\n", v, p, index, args[3])
	}
	if err := ir.InsertPath(f.Root, p, index, v); err != nil {
		return err
	}
	return saveFile(cfg.MainConfig, cc, args[3], f, cfg.Print)
}

func pathValue(path, value string) (*ir.Path, ir.Tag, error) {
	p, err := ir.ParsePath(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	v, err := snbt.ParseString(value)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: invalid value: %w", cli.ErrUsage, err)
	}
	return p, v, nil
}
