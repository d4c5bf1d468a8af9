package main

import (
	"fmt"
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/ydiff"
	"github.com/signadot/ydiff/encode"
	"github.com/signadot/ydiff/libdiff"
)

func stats(cfg *StatsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Stats.Parse(cc, args)
	if err != nil {
		cfg.Stats.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: stats requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, b, err := readInputs(args)
	if err != nil {
		return err
	}
	st := &libdiff.Stats{}
	if _, err := ydiff.Diff(a, b, append(cfg.diffOpts(), libdiff.WithStats(st))...); err != nil {
		return err
	}
	return writeStats(cc.Out, st, cfg)
}

func statsMap(st *libdiff.Stats) encode.Map {
	return encode.Map{
		{Key: "leftNodes", Value: st.Left},
		{Key: "rightNodes", Value: st.Right},
		{Key: "unchanged", Value: st.Unchanged},
		{Key: "added", Value: st.Added},
		{Key: "removed", Value: st.Removed},
		{Key: "modified", Value: st.Modified},
		{Key: "changes", Value: st.Changes()},
	}
}

func writeStats(w io.Writer, st *libdiff.Stats, cfg *StatsConfig) error {
	if err := cfg.checkOut(w); err != nil {
		return err
	}
	m := statsMap(st)
	f := cfg.outFormat()
	if !f.IsPretty() {
		d, err := encode.Marshal(m, f, 2)
		if err != nil {
			return err
		}
		_, err = w.Write(d)
		return err
	}
	for _, item := range m {
		if _, err := fmt.Fprintf(w, "%-10s %d\n", item.Key, item.Value); err != nil {
			return err
		}
	}
	return nil
}
