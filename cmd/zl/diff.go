package main

import (
	"fmt"
	"io"

	"github.com/zachlisp/go-zachlisp/libdiff"
	"github.com/zachlisp/go-zachlisp/parse"

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
	d1, err := readInput(cc.In, args[0])
	if err != nil {
		return err
	}
	d2, err := readInput(cc.In, args[1])
	if err != nil {
		return err
	}
	differs, err := diffInputs(cfg, cc.Out, d1, d2)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffInputs(cfg *DiffConfig, w io.Writer, a, b []byte) (bool, error) {
	from := parse.Read(a, cfg.parseOpts()...)
	to := parse.Read(b, cfg.parseOpts()...)
	c := libdiff.DiffSeq(from, to)
	if c == nil {
		return false, nil
	}
	if cfg.Reverse {
		c = libdiff.Reverse(c)
	}
	if _, err := io.WriteString(w, c.String()); err != nil {
		return true, err
	}
	return true, nil
}
