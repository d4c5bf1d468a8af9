package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != f {
			t.Errorf("got %s want %s", got, f)
		}
		short, err := ParseFormat(f.String()[:1])
		if err != nil {
			t.Fatal(err)
		}
		if short != f {
			t.Errorf("short form: got %s want %s", short, f)
		}
		if f.Suffix() == "" {
			t.Errorf("%s has no suffix", f)
		}
	}
	if _, err := ParseFormat("toml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
	var f Format
	if err := f.UnmarshalText([]byte("json")); err != nil || f != JSONFormat {
		t.Errorf("UnmarshalText: %v %s", err, f)
	}
}
