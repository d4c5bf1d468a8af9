package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/ydiff"
	"github.com/signadot/ydiff/encode"
	"github.com/signadot/ydiff/libdiff"
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
	if err := cfg.checkOut(cc.Out); err != nil {
		return err
	}
	a, b, err := readInputs(args)
	if err != nil {
		return err
	}
	nodes, err := ydiff.Diff(a, b, cfg.diffOpts()...)
	if err != nil {
		return err
	}
	differs := false
	for _, n := range nodes {
		differs = differs || n.HasDiff
	}
	cfg.info("diff", "left", args[0], "right", args[1], "nodes", len(nodes), "differs", differs)

	if cfg.Changed {
		nodes = libdiff.Filter(nodes, libdiff.Changed)
	}
	if cfg.Where != "" {
		w, err := compileWhere(cfg.Where)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		nodes, err = w.filter(nodes)
		if err != nil {
			return err
		}
	}
	if err := encode.Encode(nodes, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}
