package encode

import (
	"io"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/ydiff/ir"
	"github.com/signadot/ydiff/libdiff"
)

// encodePretty writes one line per node, indented by depth:
//
//	~ b: 2 -> 3
//	  a: 1
//	- c:
//	  - d: 1
//
// Nodes with children show only their key; the others show their values
// in flow style.
func encodePretty(nodes []*libdiff.Node, w io.Writer, es *EncState) error {
	for _, n := range nodes {
		if err := writePretty(w, n, 0, es); err != nil {
			return err
		}
	}
	return nil
}

func writePretty(w io.Writer, n *libdiff.Node, depth int, es *EncState) error {
	buf := &strings.Builder{}
	buf.WriteString(strings.Repeat(" ", depth*es.indent))
	buf.WriteString(marker(n.Class))
	buf.WriteByte(' ')
	if n.Key != nil {
		buf.WriteString(*n.Key)
		buf.WriteByte(':')
	}
	if len(n.Children) == 0 {
		summary, err := prettySummary(n)
		if err != nil {
			return err
		}
		if n.Key != nil {
			buf.WriteByte(' ')
		}
		buf.WriteString(summary)
	}
	line := buf.String()
	if es.Color != nil {
		line = es.Color(n.Class, line)
	}
	if _, err := io.WriteString(w, line+"\n"); err != nil {
		return err
	}
	for _, c := range n.Children {
		if err := writePretty(w, c, depth+1, es); err != nil {
			return err
		}
	}
	return nil
}

func marker(c libdiff.Classification) string {
	switch c {
	case libdiff.Added:
		return "+"
	case libdiff.Removed:
		return "-"
	case libdiff.Modified:
		return "~"
	default:
		return " "
	}
}

func prettySummary(n *libdiff.Node) (string, error) {
	switch n.Class {
	case libdiff.Added:
		return inline(n.Right)
	case libdiff.Modified:
		l, err := inline(n.Left)
		if err != nil {
			return "", err
		}
		r, err := inline(n.Right)
		if err != nil {
			return "", err
		}
		return l + " -> " + r, nil
	default:
		return inline(n.Left)
	}
}

// inline renders v as single line YAML.
func inline(v *ir.Node) (string, error) {
	d, err := yaml.MarshalWithOptions(ToNative(v), yaml.Flow(true))
	if err != nil {
		return "", &SerializationError{Via: "pretty", Err: err}
	}
	return strings.TrimRight(string(d), "\n"), nil
}
