package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
)

func zlMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Depth < 0 {
		return fmt.Errorf("%w: -depth must not be negative", cli.ErrUsage)
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(os.Stderr, "gops agent failed: %v\n", err)
		}
		defer agent.Close()
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// readInput returns the contents of file, or of in when file is "-".
func readInput(in io.Reader, file string) ([]byte, error) {
	if file == "-" {
		d, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("error reading stdin: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	return d, nil
}
