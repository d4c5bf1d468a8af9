package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/ydiff"
)

func keys(cfg *KeysConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Keys.Parse(cc, args)
	if err != nil {
		cfg.Keys.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: keys requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, b, err := readInputs(args)
	if err != nil {
		return err
	}
	s := ydiff.NewSession(cfg.diffOpts()...)
	defer s.Cleanup()
	ks, err := s.Init(a, b)
	if err != nil {
		return err
	}
	cfg.info("keys", "count", len(ks))
	for _, k := range ks {
		if _, err := io.WriteString(cc.Out, k+"\n"); err != nil {
			return err
		}
	}
	return nil
}
