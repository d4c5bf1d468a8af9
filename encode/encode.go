package encode

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/segmentio/encoding/json"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/signadot/ydiff/format"
	"github.com/signadot/ydiff/libdiff"
)

type EncState struct {
	indent int
	format format.Format

	Color func(libdiff.Classification, string) string
}

// Encode writes nodes to w in the configured format, pretty by default.
// Structured formats write the list of nodes in native form, see
// [NodeToNative].
func Encode(nodes []*libdiff.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if es.format == format.PrettyFormat {
		return encodePretty(nodes, w, es)
	}
	d, err := Marshal(NodesToNative(nodes), es.format, es.indent)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// Marshal renders a native value in a structured format.
func Marshal(v any, f format.Format, indent int) ([]byte, error) {
	var (
		d   []byte
		err error
	)
	switch f {
	case format.JSONFormat:
		d, err = json.MarshalIndent(v, "", spaces(indent))
		if err == nil {
			d = append(d, '\n')
		}
	case format.YAMLFormat:
		d, err = yaml.MarshalWithOptions(v, yaml.Indent(indent), yaml.IndentSequence(true))
	case format.MsgpackFormat:
		d, err = msgpack.Marshal(v)
	default:
		err = fmt.Errorf("%s is not a structured format", f)
	}
	if err != nil {
		return nil, &SerializationError{Via: f.String(), Err: err}
	}
	return d, nil
}

// Decode reads diff trees written by [Encode] in a structured format.
// Objects decoded from JSON have their keys sorted.
func Decode(d []byte, f format.Format) ([]*libdiff.Node, error) {
	var (
		v   any
		err error
	)
	switch f {
	case format.JSONFormat:
		dec := json.NewDecoder(bytes.NewReader(d))
		dec.UseNumber()
		err = dec.Decode(&v)
	case format.YAMLFormat:
		err = yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap())
	case format.MsgpackFormat:
		dec := msgpack.NewDecoder(bytes.NewReader(d))
		dec.SetDecodeMapFunc(decodeMsgpackMap)
		v, err = dec.DecodeInterface()
	default:
		err = fmt.Errorf("%w: %s", ErrNoDecoder, f)
	}
	if err != nil {
		return nil, &SerializationError{Via: f.String(), Err: err}
	}
	return NodesFromNative(v)
}

func spaces(n int) string {
	return string(bytes.Repeat([]byte{' '}, n))
}
