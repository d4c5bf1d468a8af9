package libdiff

import (
	"fmt"

	"github.com/signadot/ydiff/ir"
)

type Classification int

const (
	Unchanged Classification = iota
	Added
	Removed
	Modified
)

func (c Classification) String() string {
	s, ok := map[Classification]string{
		Unchanged: "Unchanged",
		Added:     "Added",
		Removed:   "Removed",
		Modified:  "Modified",
	}[c]
	if ok {
		return s
	}
	return "<unknown classification>"
}

func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Classification) UnmarshalText(d []byte) error {
	cc, ok := map[string]Classification{
		"Unchanged": Unchanged,
		"Added":     Added,
		"Removed":   Removed,
		"Modified":  Modified,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized classification %q", d)
	}
	*c = cc
	return nil
}

// Node is one node of a diff tree.
//
// Left and Right hold the compared values; a nil side is absent. Key is
// nil only for the root produced when the compared values are not both
// objects or both arrays.
type Node struct {
	Key      *string
	Left     *ir.Node
	Right    *ir.Node
	Class    Classification
	HasDiff  bool
	Children []*Node
}

func newNode(key *string, left, right *ir.Node, class Classification, children []*Node) *Node {
	return &Node{
		Key:      key,
		Left:     left,
		Right:    right,
		Class:    class,
		HasDiff:  class != Unchanged,
		Children: children,
	}
}

func keyOf(k string) *string {
	return &k
}

// KeyString returns the key or "" for a key-less root.
func (n *Node) KeyString() string {
	if n.Key == nil {
		return ""
	}
	return *n.Key
}

func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, c := range n.Children {
			if err := c.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}

func anyDiff(nodes []*Node) bool {
	for _, n := range nodes {
		if n.HasDiff {
			return true
		}
	}
	return false
}
