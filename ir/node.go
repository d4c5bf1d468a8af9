package ir

import (
	"strconv"
)

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	dst := &Node{
		Type:   y.Type,
		String: y.String,
		Bool:   y.Bool,
		Number: y.Number,
	}
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
		for i, yf := range y.Fields {
			dst.Fields[i] = yf.Clone()
		}
	}
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
		for i, yv := range y.Values {
			dst.Values[i] = yv.Clone()
		}
	}
	return dst
}

func Null() *Node {
	return &Node{Type: NullType}
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

// FromNumber holds a number by its text, for values which fit neither
// int64 nor float64 without loss.
func FromNumber(v string) *Node {
	return &Node{
		Type:   NumberType,
		Number: v,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		if y == nil {
			y = Null()
		}
		res.Values[i] = y
	}
	return res
}

type KeyVal struct {
	Key *Node
	Val *Node
}

// FromKeyVals builds an object from kvs in order. Keys which collide under
// [KeyString] are merged: the later value replaces the earlier one.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{Type: ObjectType}
	res.Fields = make([]*Node, 0, len(kvs))
	res.Values = make([]*Node, 0, len(kvs))
	seen := make(map[string]int, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if kv.Key == nil {
			kv.Key = Null()
		}
		if kv.Val == nil {
			kv.Val = Null()
		}
		ks := KeyString(kv.Key)
		if j, ok := seen[ks]; ok {
			res.Values[j] = kv.Val
			continue
		}
		seen[ks] = len(res.Fields)
		res.Fields = append(res.Fields, kv.Key)
		res.Values = append(res.Values, kv.Val)
	}
	return res
}

// FromMap builds an object with string keys taken in the order given by
// keys.
func FromMap(keys []string, yMap map[string]*Node) *Node {
	kvs := make([]KeyVal, 0, len(keys))
	for _, k := range keys {
		v, ok := yMap[k]
		if !ok {
			continue
		}
		kvs = append(kvs, KeyVal{Key: FromString(k), Val: v})
	}
	return FromKeyVals(kvs)
}

// Keys returns the canonical keys of an object in order, or nil for any
// other type.
func (y *Node) Keys() []string {
	if y.Type != ObjectType {
		return nil
	}
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = KeyString(f)
	}
	return res
}

// Get returns the value stored under the canonical key, or nil.
func Get(y *Node, key string) *Node {
	if y == nil || y.Type != ObjectType {
		return nil
	}
	for i, f := range y.Fields {
		if KeyString(f) == key {
			return y.Values[i]
		}
	}
	return nil
}

// KeyIndex maps each canonical key of an object to its first position.
func KeyIndex(y *Node) map[string]int {
	res := make(map[string]int, len(y.Fields))
	for i, f := range y.Fields {
		k := KeyString(f)
		if _, ok := res[k]; ok {
			continue
		}
		res[k] = i
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// Size returns the number of nodes in the tree rooted at y, keys excluded.
func (y *Node) Size() int {
	n := 0
	_ = y.Visit(func(_ *Node, isPost bool) (bool, error) {
		if !isPost {
			n++
		}
		return true, nil
	})
	return n
}

func (y *Node) NumberString() string {
	switch {
	case y.Int64 != nil:
		return strconv.FormatInt(*y.Int64, 10)
	case y.Float64 != nil:
		return formatFloat(*y.Float64)
	default:
		return y.Number
	}
}
