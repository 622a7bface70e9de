package main

import (
	"fmt"
	"io"
	"os"

	nbt "github.com/signadot/go-nbt"
	"github.com/signadot/go-nbt/format"
	"github.com/signadot/go-nbt/snbt"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

const configEnv = "NBT_CONFIG"

type MainConfig struct {
	Color  bool   `cli:"name=color desc='encode with color'"`
	Pretty bool   `cli:"name=pretty desc='indent snbt output'"`
	Config string `cli:"name=config desc='yaml config file (default $NBT_CONFIG)'"`
	Gops   bool   `cli:"name=gops desc='start a gops agent for diagnostics'"`

	Endian      *format.Endian
	Compression *format.Compression
	OutFormat   *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) endianOpt(_ *cli.Context, v string) (any, error) {
	e, err := format.ParseEndian(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Endian = &e
	return e, nil
}

func (cfg *MainConfig) compressionOpt(_ *cli.Context, v string) (any, error) {
	c, err := format.ParseCompression(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	cfg.Compression = &c
	return c, nil
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

// nbtConfig loads the config file named by -config or $NBT_CONFIG and
// applies -e and -z on top of it.
func (cfg *MainConfig) nbtConfig() (*nbt.Config, error) {
	path := cfg.Config
	if path == "" {
		path = os.Getenv(configEnv)
	}
	res := nbt.DefaultConfig()
	if path != "" {
		c, err := nbt.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("error loading config %s: %w", path, err)
		}
		res = c
	}
	if cfg.Endian != nil {
		res.Endian = *cfg.Endian
	}
	if cfg.Compression != nil {
		res.Compression = *cfg.Compression
	}
	return res, nil
}

func (cfg *MainConfig) outFormat() format.Format {
	if cfg.OutFormat == nil {
		return format.SNBTFormat
	}
	return *cfg.OutFormat
}

// colors reports whether output to w is colored: -color when given,
// otherwise whether w is a terminal.
func (cfg *MainConfig) colors(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) snbtOpts(w io.Writer) []snbt.EncodeOption {
	res := []snbt.EncodeOption{snbt.EncodePretty(cfg.Pretty)}
	if cfg.colors(w) {
		res = append(res, snbt.EncodeColors(snbt.NewColors()))
	}
	return res
}

type ViewConfig struct {
	*MainConfig
	Name bool `cli:"name=n desc='print the root name before each document'"`

	View *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type ListConfig struct {
	*MainConfig
	Paths bool `cli:"name=p desc='print the path of each match'"`

	List *cli.Command
}

type SetConfig struct {
	*MainConfig
	Print bool `cli:"name=print desc='print the result instead of writing the file'"`

	Set *cli.Command
}

type RmConfig struct {
	*MainConfig
	Print bool `cli:"name=print desc='print the result instead of writing the file'"`

	Rm *cli.Command
}

type InsertConfig struct {
	*MainConfig
	Print bool `cli:"name=print desc='print the result instead of writing the file'"`

	Insert *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	JSON    bool `cli:"name=json desc='patch is an RFC 6902 JSON patch'"`
	Reverse bool `cli:"name=r desc='apply the change list reversed'"`
	Print   bool `cli:"name=print desc='print the result instead of writing the file'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig

	Eval *cli.Command
}

type ConvertConfig struct {
	*MainConfig
	From     string `cli:"name=from desc='input format: snbt, json, yaml or cbor (default from the file suffix)'"`
	RootName string `cli:"name=name desc='root name to write'"`

	Convert *cli.Command
}
