package encode

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/segmentio/encoding/json"

	"github.com/signadot/ydiff/ir"
	"github.com/signadot/ydiff/libdiff"
)

// ToNative converts y to plain Go values: nil, bool, int64, uint64,
// float64, string, []any and [Map]. A nil y converts to nil.
func ToNative(y *ir.Node) any {
	if y == nil {
		return nil
	}
	switch y.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return y.Bool
	case ir.StringType:
		return y.String
	case ir.NumberType:
		switch {
		case y.Int64 != nil:
			return *y.Int64
		case y.Float64 != nil:
			return *y.Float64
		}
		if u, err := strconv.ParseUint(y.Number, 10, 64); err == nil {
			return u
		}
		return y.Number
	case ir.ArrayType:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = ToNative(v)
		}
		return res
	case ir.ObjectType:
		idx := ir.KeyIndex(y)
		res := make(Map, 0, len(y.Values))
		for i, f := range y.Fields {
			k := ir.KeyString(f)
			if idx[k] != i {
				continue
			}
			res = append(res, Item{Key: k, Value: ToNative(y.Values[i])})
		}
		return res
	}
	return nil
}

// FromNative converts plain Go values, including what the JSON, YAML and
// msgpack decoders produce, to a node. Maps other than [Map] and
// [yaml.MapSlice] have their keys sorted.
func FromNative(v any) (*ir.Node, error) {
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
		return fromUint(uint64(x)), nil
	case uint16:
		return fromUint(uint64(x)), nil
	case uint32:
		return fromUint(uint64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case float64:
		return ir.FromFloat(x), nil
	case json.Number:
		return fromJSONNumber(x)
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, elt := range x {
			n, err := FromNative(elt)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	}
	m, ok := asMap(v)
	if !ok {
		return nil, nativeErr("unsupported type %T", v)
	}
	kvs := make([]ir.KeyVal, len(m))
	for i := range m {
		n, err := FromNative(m[i].Value)
		if err != nil {
			return nil, err
		}
		kvs[i] = ir.KeyVal{Key: ir.FromString(m[i].Key), Val: n}
	}
	return ir.FromKeyVals(kvs), nil
}

func fromUint(u uint64) *ir.Node {
	if u > math.MaxInt64 {
		return ir.FromNumber(strconv.FormatUint(u, 10))
	}
	return ir.FromInt(int64(u))
}

func fromJSONNumber(n json.Number) (*ir.Node, error) {
	if i, err := n.Int64(); err == nil {
		return ir.FromInt(i), nil
	}
	if u, err := strconv.ParseUint(string(n), 10, 64); err == nil {
		return fromUint(u), nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, nativeErr("bad number %q: %w", n, err)
	}
	return ir.FromFloat(f), nil
}

// asMap returns the entries of any of the map types produced by decoders.
func asMap(v any) (Map, bool) {
	switch x := v.(type) {
	case Map:
		return x, true
	case yaml.MapSlice:
		res := make(Map, len(x))
		for i, item := range x {
			res[i] = Item{Key: nativeKey(item.Key), Value: item.Value}
		}
		return res, true
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		res := make(Map, len(keys))
		for i, k := range keys {
			res[i] = Item{Key: k, Value: x[k]}
		}
		return res, true
	case map[any]any:
		res := make(Map, 0, len(x))
		for k, val := range x {
			res = append(res, Item{Key: nativeKey(k), Value: val})
		}
		slices.SortFunc(res, func(a, b Item) int {
			return strings.Compare(a.Key, b.Key)
		})
		return res, true
	}
	return nil, false
}

func nativeKey(k any) string {
	if s, ok := k.(string); ok {
		return s
	}
	n, err := FromNative(k)
	if err != nil {
		return "<bad key>"
	}
	return ir.KeyString(n)
}

const (
	keyField      = "key"
	diffField     = "diff"
	leftField     = "left_value"
	rightField    = "right_value"
	hasDiffField  = "has_diff"
	diffTypeField = "diff_type"
	childrenField = "children"
)

// NodeToNative converts a diff tree to native form:
//
//	key: <string or null>
//	diff: {left_value: <value>, right_value: <value>}
//	has_diff: <bool>
//	diff_type: Unchanged | Added | Removed | Modified
//	children: [<node>...]
//
// Absent sides are null.
func NodeToNative(n *libdiff.Node) Map {
	var key any
	if n.Key != nil {
		key = *n.Key
	}
	children := make([]any, len(n.Children))
	for i, c := range n.Children {
		children[i] = NodeToNative(c)
	}
	return Map{
		{Key: keyField, Value: key},
		{Key: diffField, Value: Map{
			{Key: leftField, Value: ToNative(n.Left)},
			{Key: rightField, Value: ToNative(n.Right)},
		}},
		{Key: hasDiffField, Value: n.HasDiff},
		{Key: diffTypeField, Value: n.Class.String()},
		{Key: childrenField, Value: children},
	}
}

func NodesToNative(nodes []*libdiff.Node) []any {
	res := make([]any, len(nodes))
	for i, n := range nodes {
		res[i] = NodeToNative(n)
	}
	return res
}

// NodeFromNative is the inverse of [NodeToNative]. A null side of a keyed
// Added or Removed node is taken as absent; any other null is a null
// value.
func NodeFromNative(v any) (*libdiff.Node, error) {
	m, ok := asMap(v)
	if !ok {
		return nil, nativeErr("diff node is a %T, not a map", v)
	}
	res := &libdiff.Node{}
	if k, _ := m.Get(keyField); k != nil {
		ks, ok := k.(string)
		if !ok {
			return nil, nativeErr("%s is a %T, not a string", keyField, k)
		}
		res.Key = &ks
	}

	dt, _ := m.Get(diffTypeField)
	dts, ok := dt.(string)
	if !ok {
		return nil, nativeErr("%s is a %T, not a string", diffTypeField, dt)
	}
	if err := res.Class.UnmarshalText([]byte(dts)); err != nil {
		return nil, nativeErr("%w", err)
	}

	hd, _ := m.Get(hasDiffField)
	if res.HasDiff, ok = hd.(bool); !ok {
		return nil, nativeErr("%s is a %T, not a bool", hasDiffField, hd)
	}

	dv, _ := m.Get(diffField)
	sides, ok := asMap(dv)
	if !ok {
		return nil, nativeErr("%s is a %T, not a map", diffField, dv)
	}
	lv, _ := sides.Get(leftField)
	rv, _ := sides.Get(rightField)
	var err error
	if res.Left, err = nodeSide(lv, res.Key != nil && res.Class == libdiff.Added); err != nil {
		return nil, err
	}
	if res.Right, err = nodeSide(rv, res.Key != nil && res.Class == libdiff.Removed); err != nil {
		return nil, err
	}

	cv, _ := m.Get(childrenField)
	switch cs := cv.(type) {
	case nil:
	case []any:
		for _, c := range cs {
			child, err := NodeFromNative(c)
			if err != nil {
				return nil, err
			}
			res.Children = append(res.Children, child)
		}
	default:
		return nil, nativeErr("%s is a %T, not a list", childrenField, cv)
	}
	return res, nil
}

func nodeSide(v any, absent bool) (*ir.Node, error) {
	if v == nil && absent {
		return nil, nil
	}
	return FromNative(v)
}

func NodesFromNative(v any) ([]*libdiff.Node, error) {
	vs, ok := v.([]any)
	if !ok {
		return nil, nativeErr("diff is a %T, not a list", v)
	}
	res := make([]*libdiff.Node, len(vs))
	for i, elt := range vs {
		n, err := NodeFromNative(elt)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}
