package debug

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/signadot/ydiff/ir"
)

func TestBoolEnv(t *testing.T) {
	t.Setenv("YDIFF_TEST_FLAG", "true")
	if !boolEnv("YDIFF_TEST_FLAG") {
		t.Errorf("expected flag set")
	}
	t.Setenv("YDIFF_TEST_FLAG", "nope")
	if boolEnv("YDIFF_TEST_FLAG") {
		t.Errorf("expected unparsable flag to read false")
	}
	if boolEnv("YDIFF_TEST_UNSET_FLAG") {
		t.Errorf("expected unset flag to read false")
	}
}

func TestLogfRendersNodes(t *testing.T) {
	buf := &bytes.Buffer{}
	old := Logger()
	defer SetLogger(old)
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	var absent *ir.Node
	Logf("pair %v %v", ir.FromInt(3), absent)
	out := buf.String()
	if !strings.Contains(out, "i3;") || !strings.Contains(out, "<absent>") {
		t.Errorf("unexpected log output %q", out)
	}
}
