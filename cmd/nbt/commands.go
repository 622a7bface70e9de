package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "e",
			Aliases:     []string{"endian"},
			Description: "byte order: big or little",
			Type:        cli.NamedFuncOpt(cfg.endianOpt, "(endian)"),
		},
		&cli.Opt{
			Name:        "z",
			Aliases:     []string{"compression"},
			Description: "compression: auto, none, gzip, zlib, zstd or lz4",
			Type:        cli.NamedFuncOpt(cfg.compressionOpt, "(compression)"),
		},
		&cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: snbt/s, json/j, yaml/y, cbor/c, nbt/n",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "nbt").
		WithSynopsis("nbt [opts] command [opts]").
		WithDescription("nbt is a tool for working with NBT (named binary tag) files.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nbtMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			GetCommand(cfg),
			ListCommand(cfg),
			SetCommand(cfg),
			RmCommand(cfg),
			InsertCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			EvalCommand(cfg),
			ConvertCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [files]").
		WithDescription("view nbt files as snbt, json, yaml or cbor").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Get, "get").
		WithAliases("g", "ge").
		WithSynopsis("get <path> [files]").
		WithDescription("get the tag at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
}

func ListCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ListConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.List, "list").
		WithAliases("l").
		WithOpts(opts...).
		WithSynopsis("list <path> [files]").
		WithDescription("list the tags matched by a path with wildcards, such as Inventory[*].id").
		WithRun(func(cc *cli.Context, args []string) error {
			return list(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithOpts(opts...).
		WithSynopsis("set [-print] <path> <snbt> <file>").
		WithDescription("set the tag at a path, creating missing compounds").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func RmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RmConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Rm, "rm").
		WithOpts(opts...).
		WithSynopsis("rm [-print] <path> <file>").
		WithDescription("remove the tag at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return rm(cfg, cc, args)
		})
}

func InsertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &InsertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Insert, "insert").
		WithAliases("ins").
		WithOpts(opts...).
		WithSynopsis("insert [-print] <path> <index> <snbt> <file>").
		WithDescription("insert into the list at a path; index 'end' appends").
		WithRun(func(cc *cli.Context, args []string) error {
			return insert(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] a b").
		WithDescription("diff nbt files; exits 1 when they differ. With -O yaml the changes are printed in the form patch reads").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithOpts(opts...).
		WithSynopsis("patch [-json] [-r] [-print] <patch> <file>").
		WithDescription("apply a change list from 'diff -O yaml', or with -json an RFC 6902 patch").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}

func EvalCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &EvalConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Eval, "eval").
		WithAliases("ev").
		WithSynopsis("eval <expr> [files]").
		WithDescription(evalDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return evalFiles(cfg, cc, args)
		})
}

const evalDescription = `evaluate an expression over each file.

The document is bound to the variable 'root'. The functions getpath,
listpath, typeof, exists and tag take a path, for example

  nbt eval 'getpath("Data.Player.Health") > 10' level.dat
  nbt eval 'len(listpath("Data.Player.Inventory[*]"))' level.dat`

func ConvertCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ConvertConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Convert, "convert").
		WithAliases("c", "conv").
		WithOpts(opts...).
		WithSynopsis("convert [-from format] [-name root] <in> <out>").
		WithDescription("convert snbt, json, yaml or cbor into an nbt file").
		WithRun(func(cc *cli.Context, args []string) error {
			return convert(cfg, cc, args)
		})
}
