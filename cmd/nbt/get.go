package main

import (
	"fmt"

	nbt "github.com/signadot/go-nbt"
	"github.com/signadot/go-nbt/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachFile(cfg.MainConfig, cc, args[1:], func(name string, f *nbt.File, i int) error {
		res, err := ir.Resolve(f.Root, path)
		if err != nil {
			return err
		}
		if i > 0 {
			if err := writeSep(cfg.MainConfig, cc.Out); err != nil {
				return err
			}
		}
		return writeTag(cfg.MainConfig, cc.Out, res)
	})
}
