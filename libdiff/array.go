package libdiff

import (
	"strconv"

	"github.com/signadot/ydiff/ir"
)

// diffArray aligns two arrays. Small enough pairs are aligned exactly on
// element tokens; others are compared by position.
//
// Nodes are keyed by their position in the merged output, not by their
// index in either input.
func (d *differ) diffArray(left, right *ir.Node, depth int) ([]*Node, error) {
	n, m := len(left.Values), len(right.Values)
	if int64(n)*int64(m) > int64(d.cfg.SeqThreshold) {
		return d.diffArrayByIndex(left, right, depth)
	}
	ops, ok := Align(summaries(left), summaries(right))
	if !ok {
		return d.diffArrayByIndex(left, right, depth)
	}
	e := &emitter{d: d, depth: depth + 1, res: make([]*Node, 0, max(n, m))}
	for _, op := range ops {
		switch op.Type {
		case OpEqual:
			for i := range op.LeftLen() {
				e.pair(left.Values[op.LeftStart+i], right.Values[op.RightStart+i])
			}
		case OpDelete:
			for i := op.LeftStart; i < op.LeftEnd; i++ {
				e.orphan(left.Values[i], Removed)
			}
		case OpInsert:
			for i := op.RightStart; i < op.RightEnd; i++ {
				e.orphan(right.Values[i], Added)
			}
		case OpReplace:
			// pair what lines up by position, leftovers are one-sided
			k := min(op.LeftLen(), op.RightLen())
			for i := range k {
				e.pair(left.Values[op.LeftStart+i], right.Values[op.RightStart+i])
			}
			for i := op.LeftStart + k; i < op.LeftEnd; i++ {
				e.orphan(left.Values[i], Removed)
			}
			for i := op.RightStart + k; i < op.RightEnd; i++ {
				e.orphan(right.Values[i], Added)
			}
		}
	}
	return e.result()
}

func (d *differ) diffArrayByIndex(left, right *ir.Node, depth int) ([]*Node, error) {
	n, m := len(left.Values), len(right.Values)
	e := &emitter{d: d, depth: depth + 1, res: make([]*Node, 0, max(n, m))}
	for i := range max(n, m) {
		switch {
		case i < n && i < m:
			e.pair(left.Values[i], right.Values[i])
		case i < n:
			e.orphan(left.Values[i], Removed)
		default:
			e.orphan(right.Values[i], Added)
		}
	}
	return e.result()
}

func summaries(node *ir.Node) []string {
	res := make([]string, len(node.Values))
	for i, v := range node.Values {
		res[i] = ir.Token(v)
	}
	return res
}

// emitter appends array nodes keyed by output position and keeps the
// first error.
type emitter struct {
	d     *differ
	depth int
	res   []*Node
	err   error
}

func (e *emitter) key() string {
	return strconv.Itoa(len(e.res))
}

func (e *emitter) pair(left, right *ir.Node) {
	if e.err != nil {
		return
	}
	node, err := e.d.pair(e.key(), left, right, e.depth)
	if err != nil {
		e.err = err
		return
	}
	e.res = append(e.res, node)
}

func (e *emitter) orphan(v *ir.Node, class Classification) {
	if e.err != nil {
		return
	}
	node, err := e.d.orphan(e.key(), v, class, e.depth)
	if err != nil {
		e.err = err
		return
	}
	e.res = append(e.res, node)
}

func (e *emitter) result() ([]*Node, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.res, nil
}
