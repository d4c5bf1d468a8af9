// Package format names the output formats of diff trees.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//	err = encode.Encode(nodes, os.Stdout, encode.EncodeFormat(f))
//
// # Related Packages
//
//   - github.com/signadot/ydiff/encode - Encode diff trees
package format
