package libdiff

import (
	"github.com/signadot/ydiff/ir"
)

// keys are compared by canonical string; an object holding both 1 and "1"
// is diffed as if it held only the first of them.
func (d *differ) diffObject(left, right *ir.Node, depth int) ([]*Node, error) {
	leftIdx := ir.KeyIndex(left)
	rightIdx := ir.KeyIndex(right)
	res := make([]*Node, 0, len(leftIdx)+len(rightIdx))
	for i, f := range left.Fields {
		k := ir.KeyString(f)
		if leftIdx[k] != i {
			continue
		}
		var (
			node *Node
			err  error
		)
		if j, ok := rightIdx[k]; ok {
			node, err = d.pair(k, left.Values[i], right.Values[j], depth+1)
		} else {
			node, err = d.orphan(k, left.Values[i], Removed, depth+1)
		}
		if err != nil {
			return nil, err
		}
		res = append(res, node)
	}
	for j, f := range right.Fields {
		k := ir.KeyString(f)
		if rightIdx[k] != j {
			continue
		}
		if _, ok := leftIdx[k]; ok {
			continue
		}
		node, err := d.orphan(k, right.Values[j], Added, depth+1)
		if err != nil {
			return nil, err
		}
		res = append(res, node)
	}
	return res, nil
}
