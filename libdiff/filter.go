package libdiff

// Filter returns the trees in nodes pruned to the nodes for which keep
// returns true, together with their ancestors. Matching nodes keep all of
// their descendants. Ancestors kept only for their descendants are copied;
// everything else is shared with the input.
func Filter(nodes []*Node, keep func(*Node) bool) []*Node {
	var res []*Node
	for _, n := range nodes {
		if c := filterNode(n, keep); c != nil {
			res = append(res, c)
		}
	}
	return res
}

func filterNode(n *Node, keep func(*Node) bool) *Node {
	if keep(n) {
		return n
	}
	children := Filter(n.Children, keep)
	if len(children) == 0 {
		return nil
	}
	res := *n
	res.Children = children
	return &res
}

// Changed is a Filter predicate keeping nodes with a difference.
func Changed(n *Node) bool {
	return n.HasDiff
}
