// Package encode renders diff trees.
//
// Trees are written either as an indented, optionally colored, listing of
// changes or in a structured format (JSON, YAML or msgpack) built from
// their native form:
//
//	key: b
//	diff:
//	  left_value: 2
//	  right_value: 3
//	has_diff: true
//	diff_type: Modified
//	children: []
//
// # Usage
//
//	err := encode.Encode(nodes, os.Stdout, encode.EncodeColors(encode.NewColors()))
//	err = encode.Encode(nodes, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// # Related Packages
//
//   - github.com/signadot/ydiff/format - Output formats
//   - github.com/signadot/ydiff/libdiff - Diff trees
package encode
