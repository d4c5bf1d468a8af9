package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/ydiff/encode"
	"github.com/signadot/ydiff/format"
	"github.com/signadot/ydiff/libdiff"
)

type MainConfig struct {
	Color        bool `cli:"name=color desc='color pretty output'"`
	Verbose      bool `cli:"name=v desc='log progress to stderr'"`
	MaxDepth     int  `cli:"name=depth desc='maximum nesting depth'"`
	SeqThreshold int  `cli:"name=seq desc='largest len(a)*len(b) of sequences aligned exactly'"`

	Y bool `cli:"name=y aliases=yaml desc='output yaml'"`
	J bool `cli:"name=j aliases=json desc='output json'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) diffOpts() []libdiff.DiffOption {
	return []libdiff.DiffOption{
		libdiff.MaxDepth(cfg.MaxDepth),
		libdiff.SeqThreshold(cfg.SeqThreshold),
	}
}

func (cfg *MainConfig) outFormat() format.Format {
	f := format.PrettyFormat
	switch {
	case cfg.Y:
		f = format.YAMLFormat
	case cfg.J:
		f = format.JSONFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return f
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeFormat(cfg.outFormat()),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	if isTerminal(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// checkOut refuses to write binary output to a terminal.
func (cfg *MainConfig) checkOut(w io.Writer) error {
	f := cfg.outFormat()
	if f.IsBinary() && isTerminal(w) {
		return fmt.Errorf("%w: refusing to write %s output to a terminal", cli.ErrUsage, f)
	}
	return nil
}

type DiffConfig struct {
	*MainConfig
	Changed bool   `cli:"name=c aliases=changed desc='only show nodes which differ'"`
	Where   string `cli:"name=where desc='only show nodes matching an expr expression'"`

	Diff *cli.Command
}

type KeysConfig struct {
	*MainConfig

	Keys *cli.Command
}

type KeyConfig struct {
	*MainConfig
	Missing bool `cli:"name=missing desc='fail on keys found in neither document'"`

	Key *cli.Command
}

type StatsConfig struct {
	*MainConfig

	Stats *cli.Command
}
