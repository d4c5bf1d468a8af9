package debug

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/signadot/ydiff/ir"
)

type debug struct {
	Dispatch bool
	Align    bool
	Expand   bool
	Session  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Dispatch = boolEnv("YDIFF_DEBUG_DISPATCH")
	d.Align = boolEnv("YDIFF_DEBUG_ALIGN")
	d.Expand = boolEnv("YDIFF_DEBUG_EXPAND")
	d.Session = boolEnv("YDIFF_DEBUG_SESSION")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Dispatch() bool {
	return d.Dispatch
}
func Align() bool {
	return d.Align
}
func Expand() bool {
	return d.Expand
}
func Session() bool {
	return d.Session
}

var theLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelDebug,
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	},
}))

// Logger is the logger debug output and the ydiff command write to.
func Logger() *slog.Logger {
	return theLog
}

func SetLogger(l *slog.Logger) {
	theLog = l
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Node:
			if x == nil {
				args[i] = "<absent>"
				continue
			}
			args[i] = ir.Token(x)
		case map[string]any, []any:
			d, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(d)
		}
	}
	theLog.Debug(fmt.Sprintf(msg, args...))
}
