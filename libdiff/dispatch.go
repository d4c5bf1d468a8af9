package libdiff

import (
	"github.com/signadot/ydiff/debug"
	"github.com/signadot/ydiff/ir"
)

// Diff compares left and right.
//
// If both are objects, the result holds one node per key: keys of left in
// left order followed by keys only in right, in right order. If both are
// arrays, the result holds one node per position of the merged sequence,
// keyed "0", "1", ... in order. Otherwise the result is a single key-less
// node comparing the two values as scalars.
//
// Unpaired object entries and array elements are expanded into subtrees
// with the same one-sided classification all the way down.
//
// Diff fails with a [*DepthError] when the documents nest deeper than the
// configured [MaxDepth].
func Diff(left, right *ir.Node, opts ...DiffOption) ([]*Node, error) {
	cfg := newConfig(opts)
	d := &differ{cfg: cfg}
	res, err := d.dispatch(left, right, 0)
	if err != nil {
		return nil, err
	}
	if cfg.Stats != nil {
		cfg.Stats.collect(left, right, res)
	}
	return res, nil
}

// DiffPair compares the values found under key on both sides and wraps the
// result in a single node keyed by key, classified Modified or Unchanged.
func DiffPair(key string, left, right *ir.Node, opts ...DiffOption) (*Node, error) {
	d := &differ{cfg: newConfig(opts)}
	return d.pair(key, left, right, 1)
}

type differ struct {
	cfg *DiffConfig
}

func (d *differ) dispatch(left, right *ir.Node, depth int) ([]*Node, error) {
	if depth > d.cfg.MaxDepth {
		return nil, &DepthError{Limit: d.cfg.MaxDepth}
	}
	if left == nil {
		left = ir.Null()
	}
	if right == nil {
		right = ir.Null()
	}
	if debug.Dispatch() {
		debug.Logf("dispatch %s/%s at depth %d", left.Type, right.Type, depth)
	}
	switch {
	case left.Type == ir.ObjectType && right.Type == ir.ObjectType:
		return d.diffObject(left, right, depth)
	case left.Type == ir.ArrayType && right.Type == ir.ArrayType:
		return d.diffArray(left, right, depth)
	default:
		return []*Node{diffScalar(left, right)}, nil
	}
}

// pair builds the node for a value present on both sides. A key-less
// scalar result is folded into the keyed node rather than kept as a child.
func (d *differ) pair(key string, left, right *ir.Node, depth int) (*Node, error) {
	children, err := d.dispatch(left, right, depth)
	if err != nil {
		return nil, err
	}
	class := Unchanged
	if anyDiff(children) {
		class = Modified
	}
	if len(children) == 1 && children[0].Key == nil {
		children = nil
	}
	return newNode(keyOf(key), left, right, class, children), nil
}

// orphan builds the node for a value present on one side only.
func (d *differ) orphan(key string, v *ir.Node, class Classification, depth int) (*Node, error) {
	res, truncated := oneSided(keyOf(key), v, class, depth, d.cfg.MaxDepth)
	if truncated {
		return nil, &DepthError{Limit: d.cfg.MaxDepth}
	}
	return res, nil
}
