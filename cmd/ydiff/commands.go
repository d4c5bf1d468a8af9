package main

import (
	"github.com/scott-cotton/cli"

	"github.com/signadot/ydiff/libdiff"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{
		MaxDepth:     libdiff.DefaultMaxDepth,
		SeqThreshold: libdiff.DefaultSeqThreshold,
	}
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
			Description: "output format: pretty/p, yaml/y, json/j, msgpack/m",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ydiff").
		WithSynopsis("ydiff [opts] command [opts]").
		WithDescription("ydiff compares YAML documents structurally.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ydiffMain(cfg, cc, args)
		}).
		WithSubs(
			DiffCommand(cfg),
			KeysCommand(cfg),
			KeyCommand(cfg),
			StatsCommand(cfg))
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
		WithSynopsis("diff [-c] [-where expr] a b").
		WithDescription(diffDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

const diffDescription = `diff compares two YAML documents and writes the diff tree.

Either file may be '-' for standard input. diff exits with status 1 when
the documents differ.

-where filters the tree with an expr (https://expr-lang.org) expression
evaluated on each node, keeping matching nodes with their ancestors and
descendants. The expression sees

  key       the node key, "" at the root
  class     Unchanged, Added, Removed or Modified
  hasDiff   whether the node differs
  left      the left value, nil when absent
  right     the right value, nil when absent
  children  the number of children

for example: -where 'class == "Added" && key startsWith "x-"'`

func KeysCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeysConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Keys, "keys").
		WithAliases("ks").
		WithSynopsis("keys a b").
		WithDescription("list the top level keys of two mappings, left keys first").
		WithRun(func(cc *cli.Context, args []string) error {
			return keys(cfg, cc, args)
		})
}

func KeyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &KeyConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Key, "key").
		WithAliases("k").
		WithSynopsis("key [-missing] a b key [key...]").
		WithDescription("diff the values of top level keys of two mappings").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return key(cfg, cc, args)
		})
}

func StatsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &StatsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Stats, "stats").
		WithAliases("s", "st").
		WithSynopsis("stats a b").
		WithDescription("count the differences between two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return stats(cfg, cc, args)
		})
}
