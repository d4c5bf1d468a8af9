package encode

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/segmentio/encoding/json"
	"github.com/vmihailenco/msgpack/v4"
)

// Map is the native form of an object. Unlike map[string]any it keeps
// its key order through every output format.
type Map []Item

type Item struct {
	Key   string
	Value any
}

var (
	_ json.Marshaler          = Map(nil)
	_ yaml.InterfaceMarshaler = Map(nil)
	_ msgpack.CustomEncoder   = Map(nil)
)

// Get returns the value under key and whether it is present.
func (m Map) Get(key string) (any, bool) {
	for i := range m {
		if m[i].Key == key {
			return m[i].Value, true
		}
	}
	return nil, false
}

func (m Map) MarshalJSON() ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	for i := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(m[i].Key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m[i].Value)
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (m Map) MarshalYAML() (any, error) {
	res := make(yaml.MapSlice, len(m))
	for i := range m {
		res[i] = yaml.MapItem{Key: m[i].Key, Value: m[i].Value}
	}
	return res, nil
}

func (m Map) EncodeMsgpack(enc *msgpack.Encoder) error {
	if err := enc.EncodeMapLen(len(m)); err != nil {
		return err
	}
	for i := range m {
		if err := enc.EncodeString(m[i].Key); err != nil {
			return err
		}
		if err := enc.Encode(m[i].Value); err != nil {
			return err
		}
	}
	return nil
}

// decodeMsgpackMap decodes msgpack maps into Map so that key order
// survives a round trip.
func decodeMsgpackMap(dec *msgpack.Decoder) (any, error) {
	n, err := dec.DecodeMapLen()
	if err != nil {
		return nil, err
	}
	if n == -1 {
		return nil, nil
	}
	res := make(Map, 0, n)
	for range n {
		k, err := dec.DecodeInterface()
		if err != nil {
			return nil, err
		}
		v, err := dec.DecodeInterface()
		if err != nil {
			return nil, err
		}
		ks, ok := k.(string)
		if !ok {
			ks = fmt.Sprint(k)
		}
		res = append(res, Item{Key: ks, Value: v})
	}
	return res, nil
}
