package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	PrettyFormat Format = iota
	YAMLFormat
	JSONFormat
	MsgpackFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"p":       PrettyFormat,
		"pretty":  PrettyFormat,
		"y":       YAMLFormat,
		"yaml":    YAMLFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
		"m":       MsgpackFormat,
		"msgpack": MsgpackFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadFormat, v)
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case PrettyFormat:
		return []byte("pretty"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case MsgpackFormat:
		return []byte("msgpack"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsPretty() bool { return f == PrettyFormat }

// IsBinary reports whether the format should not be written to a terminal.
func (f Format) IsBinary() bool { return f == MsgpackFormat }

// Suffix returns the file extension for this format (including the dot).
func (f Format) Suffix() string {
	switch f {
	case PrettyFormat:
		return ".txt"
	case YAMLFormat:
		return ".yaml"
	case JSONFormat:
		return ".json"
	case MsgpackFormat:
		return ".msgpack"
	default:
		return ""
	}
}

// AllFormats returns all supported formats in preference order.
func AllFormats() []Format {
	return []Format{PrettyFormat, YAMLFormat, JSONFormat, MsgpackFormat}
}
