package libdiff

import (
	"strconv"

	"github.com/signadot/ydiff/debug"
	"github.com/signadot/ydiff/ir"
)

// Expand renders v, which exists on one side only, as the children of a
// one-sided node: every object entry and array element becomes a node
// classified class, recursively. class should be Added or Removed.
//
// Expansion never fails. Past the configured [MaxDepth] subtrees are
// returned without children.
func Expand(v *ir.Node, class Classification, opts ...DiffOption) []*Node {
	cfg := newConfig(opts)
	children, truncated := expand(v, class, 0, cfg.MaxDepth)
	if truncated && debug.Expand() {
		debug.Logf("expand truncated at depth %d", cfg.MaxDepth)
	}
	return children
}

// DiffOneSided returns the node for v found under key on one side only,
// expanded as it would be by [Diff]. Unlike [Expand] it fails with a
// [*DepthError] when v nests past the configured [MaxDepth].
func DiffOneSided(key string, v *ir.Node, class Classification, opts ...DiffOption) (*Node, error) {
	d := &differ{cfg: newConfig(opts)}
	return d.orphan(key, v, class, 1)
}

func sides(v *ir.Node, class Classification) (left, right *ir.Node) {
	if class == Removed {
		return v, nil
	}
	return nil, v
}

func oneSided(key *string, v *ir.Node, class Classification, depth, maxDepth int) (*Node, bool) {
	left, right := sides(v, class)
	children, truncated := expand(v, class, depth, maxDepth)
	return newNode(key, left, right, class, children), truncated
}

// expand returns the children of v, which sits at depth. The bool result
// reports whether any subtree was cut off by maxDepth.
func expand(v *ir.Node, class Classification, depth, maxDepth int) ([]*Node, bool) {
	if v == nil || !v.Type.IsContainer() || len(v.Values) == 0 {
		return nil, false
	}
	if depth > maxDepth {
		return nil, true
	}
	truncated := false
	res := make([]*Node, 0, len(v.Values))
	switch v.Type {
	case ir.ObjectType:
		idx := ir.KeyIndex(v)
		for i, f := range v.Fields {
			k := ir.KeyString(f)
			if idx[k] != i {
				continue
			}
			node, t := oneSided(keyOf(k), v.Values[i], class, depth+1, maxDepth)
			truncated = truncated || t
			res = append(res, node)
		}
	case ir.ArrayType:
		for i, elt := range v.Values {
			node, t := oneSided(keyOf(strconv.Itoa(i)), elt, class, depth+1, maxDepth)
			truncated = truncated || t
			res = append(res, node)
		}
	}
	return res, truncated
}
