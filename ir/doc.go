// Package ir provides the value model diffed by ydiff.
//
// # Overview
//
// A document is a tree of [Node] values. A node is one of
//
//   - null
//   - a scalar: number, string or bool
//   - an array: an ordered list of nodes
//   - an object: an ordered list of key/value pairs
//
// Object keys are scalar nodes. Everywhere keys are looked up or compared
// they are first reduced to a canonical string with [KeyString], so an
// integer key 1 and a string key "1" name the same entry. [FromKeyVals]
// merges such collisions: the later value replaces the earlier one and
// keeps the earlier position.
//
// [Equal] is deep structural equality; objects compare without regard to
// key order. [Token] renders a node to a canonical string such that equal
// nodes have equal tokens. Tokens are used to align sequences and are not
// meant for display.
//
// # Related Packages
//
//   - github.com/signadot/ydiff/parse - YAML text to IR
//   - github.com/signadot/ydiff/encode - IR to and from native Go values
package ir
