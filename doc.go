// Package ydiff compares two YAML documents structurally.
//
// [Diff] parses both documents and returns a diff tree as built by
// [libdiff.Diff]. A [Session] keeps both parsed documents so that large
// mappings can be compared one top level key at a time.
//
// # Usage
//
//	nodes, err := ydiff.Diff(left, right)
//
//	s := ydiff.NewSession()
//	keys, err := s.Init(left, right)
//	for _, k := range keys {
//		node, err := s.DiffKeyErrorIfMissing(k)
//		...
//	}
//	s.Cleanup()
//
// # Related Packages
//
//   - github.com/signadot/ydiff/libdiff for the diff engine.
//   - github.com/signadot/ydiff/parse for reading documents.
//   - github.com/signadot/ydiff/encode for rendering diff trees.
package ydiff
