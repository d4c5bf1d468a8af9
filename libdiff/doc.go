// Package libdiff computes structural diffs of IR documents.
//
// # Usage
//
//	nodes, err := libdiff.Diff(left, right)
//	if err != nil {
//	    return err // only *DepthError
//	}
//	for _, n := range nodes {
//	    fmt.Println(n.KeyString(), n.Class)
//	}
//
// A diff is a tree of [Node]. Each node pairs the left and right values
// found at one key or position, a [Classification] and, for containers,
// child nodes. Values present on one side only are expanded into subtrees
// whose nodes are all Added or all Removed, so an inserted object can be
// browsed like any other.
//
// Objects are matched by key. Arrays are aligned with [Align], a wrapper
// around diffmatchpatch, when len(left)*len(right) is at most the
// [SeqThreshold]; larger arrays are compared position by position.
//
// # Related Packages
//
//   - github.com/signadot/ydiff/ir - IR representation
//   - github.com/signadot/ydiff - text entry points and incremental sessions
//   - github.com/signadot/ydiff/encode - marshalling diff trees
package libdiff
