package main

import (
	"fmt"
	"io"

	nbt "github.com/signadot/go-nbt"
	"github.com/signadot/go-nbt/format"
	"github.com/signadot/go-nbt/libdiff"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := readFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	b, err := readFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	changes := nbt.Diff(a.Root, b.Root)
	if len(changes) == 0 {
		return nil
	}
	if cfg.Reverse {
		changes = libdiff.Reverse(changes)
	}
	if err := writeChanges(cfg.MainConfig, cc.Out, changes); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

var changeColors = map[libdiff.Kind]func(string, ...any) string{
	libdiff.Add:     color.New(color.FgGreen).SprintfFunc(),
	libdiff.Remove:  color.New(color.FgRed).SprintfFunc(),
	libdiff.Replace: color.New(color.FgYellow).SprintfFunc(),
}

// writeChanges prints one line per change, or with -O yaml the change
// list read by patch.
func writeChanges(cfg *MainConfig, w io.Writer, changes []libdiff.Change) error {
	if cfg.outFormat() == format.YAMLFormat {
		d, err := libdiff.MarshalChanges(changes)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	colored := cfg.colors(w)
	for i := range changes {
		line := changes[i].String()
		if colored {
			line = changeColors[changes[i].Kind]("%s", line)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
