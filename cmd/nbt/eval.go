package main

import (
	"fmt"

	nbt "github.com/signadot/go-nbt"
	"github.com/signadot/go-nbt/bridge"
	"github.com/signadot/go-nbt/eval"

	"github.com/scott-cotton/cli"
)

func evalFiles(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		cfg.Eval.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	expression := args[0]
	return eachFile(cfg.MainConfig, cc, args[1:], func(name string, f *nbt.File, i int) error {
		res, err := eval.Eval(f.Root, expression)
		if err != nil {
			return err
		}
		switch res.(type) {
		case map[string]any, []any:
		default:
			_, err = fmt.Fprintf(cc.Out, "%v\n", res)
			return err
		}
		t, err := bridge.FromAny(res, nil)
		if err != nil {
			return err
		}
		return writeTag(cfg.MainConfig, cc.Out, t)
	})
}
