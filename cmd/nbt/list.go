package main

import (
	"fmt"

	nbt "github.com/signadot/go-nbt"
	"github.com/signadot/go-nbt/ir"

	"github.com/scott-cotton/cli"
)

func list(cfg *ListConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: list requires one argument, a path", cli.ErrUsage)
	}
	path := args[0]
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return eachFile(cfg.MainConfig, cc, args[1:], func(name string, f *nbt.File, i int) error {
		ms, err := ir.Matches(f.Root, path)
		if err != nil {
			return err
		}
		for _, m := range ms {
			if cfg.Paths {
				p := m.Path
				if p == "" {
					p = "$"
				}
				if _, err := fmt.Fprintf(cc.Out, "%s: ", p); err != nil {
					return err
				}
			}
			if err := writeTag(cfg.MainConfig, cc.Out, m.Tag); err != nil {
				return err
			}
		}
		return nil
	})
}
