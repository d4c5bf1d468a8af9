package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/ydiff"
	"github.com/signadot/ydiff/encode"
	"github.com/signadot/ydiff/libdiff"
)

func key(cfg *KeyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Key.Parse(cc, args)
	if err != nil {
		cfg.Key.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 3 {
		return fmt.Errorf("%w: key requires 2 documents and at least one key, got %v", cli.ErrUsage, args)
	}
	if err := cfg.checkOut(cc.Out); err != nil {
		return err
	}
	a, b, err := readInputs(args[:2])
	if err != nil {
		return err
	}
	s := ydiff.NewSession(cfg.diffOpts()...)
	defer s.Cleanup()
	if _, err := s.Init(a, b); err != nil {
		return err
	}
	nodes := make([]*libdiff.Node, 0, len(args)-2)
	for _, k := range args[2:] {
		if cfg.Missing {
			node, err := s.DiffKeyErrorIfMissing(k)
			if err != nil {
				return err
			}
			nodes = append(nodes, node)
			continue
		}
		node, ok, err := s.DiffKey(k)
		if err != nil {
			return err
		}
		if !ok {
			cfg.info("key not found", "key", k)
			continue
		}
		nodes = append(nodes, node)
	}
	return encode.Encode(nodes, cc.Out, cfg.encOpts(cc.Out)...)
}
