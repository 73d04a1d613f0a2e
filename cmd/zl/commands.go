package main

import (
	"strings"

	"github.com/scott-cotton/cli"
	"github.com/zachlisp/go-zachlisp/eval"
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
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: lisp/l, json/j, yaml/y",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "zl").
		WithSynopsis("zl [opts] command [opts]").
		WithDescription("zl reads zachlisp source and prints the forms read.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return zlMain(cfg, cc, args)
		}).
		WithSubs(
			ReadCommand(cfg),
			TokensCommand(cfg),
			DiffCommand(cfg))
}

func ReadCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ReadConfig{MainConfig: mainCfg, Eval: eval.Identity().String()}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("read").
		WithAliases("r").
		WithSynopsis("read [-eval name] [-errors] [files]").
		WithDescription("read, evaluate and print forms. evaluators: " + strings.Join(eval.Names(), ", ")).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return read(cfg, cc, args)
		})
	cfg.Read = cmd
	return cmd
}

func TokensCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TokensConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Tokens, "tokens").
		WithAliases("t", "tok").
		WithSynopsis("tokens [-all] [files]").
		WithDescription("print the tokens of source files, one per line").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tokens(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-reverse] a b").
		WithDescription("diff the forms read from two files; exits 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}
