package main

import (
	"fmt"
	"io"

	zachlisp "github.com/zachlisp/go-zachlisp"
	"github.com/zachlisp/go-zachlisp/eval"

	"github.com/scott-cotton/cli"
)

func read(cfg *ReadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Read.Parse(cc, args)
	if err != nil {
		return err
	}
	ev := eval.Lookup(cfg.Eval)
	if ev == nil {
		return fmt.Errorf("%w: unknown evaluator %q", cli.ErrUsage, cfg.Eval)
	}
	tool := &zachlisp.Tool{
		Evaluator:  ev,
		ParseOpts:  cfg.parseOpts(),
		EncodeOpts: cfg.encOpts(cc.Out),
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	nErrs := 0
	for _, file := range args {
		n, err := readFile(tool, cc.Out, cc.In, file)
		if err != nil {
			return err
		}
		nErrs += n
	}
	if cfg.Errors && nErrs > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// readFile prints the forms of one file and returns the number of reader
// errors among them.
func readFile(tool *zachlisp.Tool, w io.Writer, in io.Reader, file string) (int, error) {
	d, err := readInput(in, file)
	if err != nil {
		return 0, err
	}
	forms, err := tool.Rep(d, w)
	if err != nil {
		return 0, fmt.Errorf("error printing %s: %w", file, err)
	}
	return len(zachlisp.Errors(forms)), nil
}
