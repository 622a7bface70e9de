package main

import (
	"fmt"

	nbt "github.com/signadot/go-nbt"
	"github.com/signadot/go-nbt/snbt"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return eachFile(cfg.MainConfig, cc, args, func(name string, f *nbt.File, i int) error {
		if i > 0 {
			if err := writeSep(cfg.MainConfig, cc.Out); err != nil {
				return err
			}
		}
		if cfg.Name && cfg.outFormat().IsText() {
			if _, err := fmt.Fprintf(cc.Out, "# %s\n", snbt.Quote(f.Name)); err != nil {
				return err
			}
		}
		return writeTag(cfg.MainConfig, cc.Out, f.Root)
	})
}
