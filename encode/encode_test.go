package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/signadot/ydiff/format"
	"github.com/signadot/ydiff/libdiff"
)

const jsonFormat = format.JSONFormat

func TestEncodePretty(t *testing.T) {
	nodes := diffNodes(t,
		`{a: 1, b: 2, c: {d: [x, z]}, e: {}}`,
		`{a: 1, b: 3, e: {}, f: "two words"}`)
	buf := &bytes.Buffer{}
	require.NoError(t, Encode(nodes, buf))
	want := strings.Join([]string{
		"  a: 1",
		"~ b: 2 -> 3",
		"- c:",
		"  - d:",
		"    - 0: x",
		"    - 1: z",
		"  e: {}",
		"+ f: two words",
		"",
	}, "\n")
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestEncodePrettyRoot(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, Encode(diffNodes(t, `1`, `[1]`), buf, Indent(4)))
	require.Equal(t, "~ 1 -> [1]\n", buf.String())
}

func TestEncodePrettyColors(t *testing.T) {
	save := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = save }()

	buf := &bytes.Buffer{}
	nodes := diffNodes(t, `{a: 1}`, `{a: 2, b: 5}`)
	require.NoError(t, Encode(nodes, buf, EncodeColors(NewColors())))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "\x1b[")
	require.Contains(t, lines[0], "~ a: 1 -> 2")
	require.Equal(t, color.GreenString("%s", "+ b: 5"), lines[1])

	// lines are not format strings
	require.Equal(t, color.RedString("%s", "- p: 100%"), NewColors().Color(libdiff.Removed, "- p: 100%"))
	require.Equal(t, color.GreenString("%s", "+ q: 5%"), NewColors().Color(libdiff.Added, "+ q: 5%"))
}

func TestEncodeStructuredRoundTrip(t *testing.T) {
	nodes := diffNodes(t,
		`{name: svc, ports: [80, 443], env: {B: "2", A: "1"}}`,
		`{name: svc, ports: [80, 8443], env: {B: "3", A: "1"}, extra: [1.5, null]}`)
	for _, f := range []format.Format{format.JSONFormat, format.YAMLFormat, format.MsgpackFormat} {
		t.Run(f.String(), func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, Encode(nodes, buf, EncodeFormat(f)))
			back, err := Decode(buf.Bytes(), f)
			require.NoError(t, err)
			if d := cmp.Diff(nodes, back, nodeCmp); d != "" {
				t.Errorf("(-want +got):\n%s", d)
			}
		})
	}
}

func TestEncodeKeepsKeyOrder(t *testing.T) {
	nodes := diffNodes(t, `{z: 1, a: 1}`, `{z: 1, a: 1}`)
	buf := &bytes.Buffer{}
	require.NoError(t, Encode(nodes, buf, EncodeFormat(format.JSONFormat)))
	out := buf.String()
	require.Less(t, strings.Index(out, `"z"`), strings.Index(out, `"a"`))
	require.Less(t, strings.Index(out, `"key"`), strings.Index(out, `"children"`))

	buf.Reset()
	require.NoError(t, Encode(nodes, buf, EncodeFormat(format.YAMLFormat)))
	back, err := Decode(buf.Bytes(), format.YAMLFormat)
	require.NoError(t, err)
	require.Equal(t, "z", back[0].KeyString())
	require.Equal(t, "a", back[1].KeyString())
}

func TestDecodePretty(t *testing.T) {
	_, err := Decode([]byte("  a: 1\n"), format.PrettyFormat)
	require.ErrorIs(t, err, ErrNoDecoder)
	require.ErrorIs(t, err, ErrSerialization)
}
