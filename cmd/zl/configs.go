package main

import (
	"fmt"
	"io"
	"os"

	"github.com/zachlisp/go-zachlisp/encode"
	"github.com/zachlisp/go-zachlisp/format"
	"github.com/zachlisp/go-zachlisp/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='print with color'"`
	Sorted bool `cli:"name=sorted desc='print map and set contents in sorted order'"`
	Depth  int  `cli:"name=depth desc='maximum nesting depth (default 512)'"`
	Gops   bool `cli:"name=gops desc='start a gops diagnostics agent'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.MaxDepth(cfg.Depth),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	var fmt format.Format
	if cfg.OutFormat != nil {
		fmt = *cfg.OutFormat
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmt),
		encode.EncodeSorted(cfg.Sorted),
	}
	if !fmt.IsLisp() {
		return res
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	f, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(f.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type ReadConfig struct {
	*MainConfig
	Eval   string `cli:"name=eval desc='evaluator to apply to the forms read'"`
	Errors bool   `cli:"name=errors desc='exit 1 when any reader error was found'"`

	Read *cli.Command
}

type TokensConfig struct {
	*MainConfig
	All bool `cli:"name=all desc='include whitespace and comment tokens'"`

	Tokens *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=reverse desc='print the change from b to a'"`

	Diff *cli.Command
}
