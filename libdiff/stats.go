package libdiff

import "github.com/signadot/ydiff/ir"

// Stats holds statistical metadata about a diff
type Stats struct {
	Left  int `json:"leftNodes"`  // count of values in the left tree
	Right int `json:"rightNodes"` // count of values in the right tree

	Unchanged int `json:"unchanged"`
	Added     int `json:"added,omitempty"`
	Removed   int `json:"removed,omitempty"`
	Modified  int `json:"modified,omitempty"`
}

// NodeChange returns a count of the shift between left & right trees
func (s Stats) NodeChange() int {
	return s.Right - s.Left
}

// Changes returns the number of diff nodes which carry a difference.
func (s Stats) Changes() int {
	return s.Added + s.Removed + s.Modified
}

func (s *Stats) collect(left, right *ir.Node, nodes []*Node) {
	*s = Stats{}
	if left != nil {
		s.Left = left.Size()
	}
	if right != nil {
		s.Right = right.Size()
	}
	s.Add(nodes...)
}

// Add counts the classifications of nodes and all their descendants.
func (s *Stats) Add(nodes ...*Node) {
	for _, n := range nodes {
		_ = n.Visit(func(n *Node, isPost bool) (bool, error) {
			if isPost {
				return true, nil
			}
			switch n.Class {
			case Unchanged:
				s.Unchanged++
			case Added:
				s.Added++
			case Removed:
				s.Removed++
			case Modified:
				s.Modified++
			}
			return true, nil
		})
	}
}
