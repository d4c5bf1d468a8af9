package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"

	"github.com/signadot/ydiff/debug"
)

func ydiffMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if count(cfg.Y, cfg.J) > 1 {
		return fmt.Errorf("%w: must specify at most one of -j[son] -y[aml]", cli.ErrUsage)
	}
	if cfg.Color {
		// color disables itself when stdout is not a terminal
		color.NoColor = false
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

func count(vs ...bool) int {
	ttl := 0
	for _, v := range vs {
		if v {
			ttl++
		}
	}
	return ttl
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

// readInputs reads the two documents named in args; "-" is stdin.
func readInputs(args []string) ([]byte, []byte, error) {
	if len(args) < 2 {
		return nil, nil, fmt.Errorf("%w: expected 2 documents, got %d", cli.ErrUsage, len(args))
	}
	if args[0] == "-" && args[1] == "-" {
		return nil, nil, fmt.Errorf("%w: at most one document may be read from stdin", cli.ErrUsage)
	}
	a, err := readInput(args[0])
	if err != nil {
		return nil, nil, err
	}
	b, err := readInput(args[1])
	if err != nil {
		return nil, nil, err
	}
	return a, b, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", path, err)
	}
	return d, nil
}

func (cfg *MainConfig) info(msg string, args ...any) {
	if !cfg.Verbose {
		return
	}
	debug.Logger().Info(msg, args...)
}
