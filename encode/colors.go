package encode

import (
	"strings"

	"github.com/fatih/color"

	"github.com/signadot/ydiff/libdiff"
)

type Colors struct {
	Default func(string, ...any) string
	Map     map[libdiff.Classification]func(string, ...any) string
}

func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map: map[libdiff.Classification]func(string, ...any) string{
			libdiff.Unchanged: color.RGB(128, 128, 128).SprintfFunc(),
			libdiff.Added:     color.New(color.FgGreen).SprintfFunc(),
			libdiff.Removed:   color.New(color.FgRed).SprintfFunc(),
			libdiff.Modified:  color.RGB(196, 168, 16).SprintfFunc(),
		},
	}
	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.Replace(v, "%", "%%", -1))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

func (c *Colors) Color(class libdiff.Classification, s string) string {
	return c.Get(class)(s)
}

func (c *Colors) Get(class libdiff.Classification) func(string, ...any) string {
	f := c.Map[class]
	if f == nil {
		return c.Default
	}
	return f
}
