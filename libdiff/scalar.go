package libdiff

import "github.com/signadot/ydiff/ir"

// diffScalar compares two values which are not both objects or both
// arrays. Values of different kinds are Modified, never decomposed.
func diffScalar(left, right *ir.Node) *Node {
	class := Modified
	switch {
	case ir.Equal(left, right):
		class = Unchanged
	case left.Type == ir.NullType:
		class = Added
	case right.Type == ir.NullType:
		class = Removed
	}
	return newNode(nil, left, right, class, nil)
}
