package parse

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/ydiff/ir"
)

func Parse(d []byte) (*ir.Node, error) {
	var v any
	if err := yaml.UnmarshalWithOptions(d, &v, yaml.UseOrderedMap()); err != nil {
		return nil, toError(err)
	}
	node, err := FromYAML(v)
	if err != nil {
		return nil, &Error{Msg: err.Error()}
	}
	return node, nil
}

func ParseString(s string) (*ir.Node, error) {
	return Parse([]byte(s))
}

// goccy embeds positions like [1:1] in some messages; Error reports the
// line itself.
var embeddedPos = regexp.MustCompile(`\s*(at )?\[\d+:\d+\]`)

func toError(err error) *Error {
	var yErr yaml.Error
	if errors.As(err, &yErr) {
		msg := strings.TrimSpace(embeddedPos.ReplaceAllString(yErr.GetMessage(), ""))
		res := &Error{Msg: msg}
		if tk := yErr.GetToken(); tk != nil && tk.Position != nil {
			res.Line = tk.Position.Line
		}
		return res
	}
	return &Error{Msg: err.Error()}
}

// FromYAML converts a value produced by the goccy/go-yaml decoder into an
// IR node.
func FromYAML(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int8:
		return ir.FromInt(int64(x)), nil
	case int16:
		return ir.FromInt(int64(x)), nil
	case int32:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return ir.FromInt(int64(x)), nil
	case uint16:
		return ir.FromInt(int64(x)), nil
	case uint32:
		return ir.FromInt(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, xv := range x {
			n, err := FromYAML(xv)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case yaml.MapSlice:
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, item := range x {
			kv, err := keyVal(item.Key, item.Value)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, kv)
		}
		return ir.FromKeyVals(kvs), nil
	case map[string]any:
		keys := sortedKeys(x)
		kvs := make([]ir.KeyVal, 0, len(x))
		for _, k := range keys {
			kv, err := keyVal(k, x[k])
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, kv)
		}
		return ir.FromKeyVals(kvs), nil
	case map[any]any:
		kvs := make([]ir.KeyVal, 0, len(x))
		for k, xv := range x {
			kv, err := keyVal(k, xv)
			if err != nil {
				return nil, err
			}
			kvs = append(kvs, kv)
		}
		sortKeyVals(kvs)
		return ir.FromKeyVals(kvs), nil
	case []byte:
		// !!binary
		return ir.FromString(base64.StdEncoding.EncodeToString(x)), nil
	case fmt.Stringer:
		return ir.FromString(x.String()), nil
	default:
		return nil, fmt.Errorf("unsupported yaml value of type %T", v)
	}
}

func fromUint(x uint64) *ir.Node {
	if x > math.MaxInt64 {
		return ir.FromNumber(strconv.FormatUint(x, 10))
	}
	return ir.FromInt(int64(x))
}

func keyVal(k, v any) (ir.KeyVal, error) {
	key, err := FromYAML(k)
	if err != nil {
		return ir.KeyVal{}, err
	}
	if key.Type.IsContainer() {
		key = ir.FromString(ir.KeyString(key))
	}
	val, err := FromYAML(v)
	if err != nil {
		return ir.KeyVal{}, err
	}
	return ir.KeyVal{Key: key, Val: val}, nil
}
