// Package parse parses YAML text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte("a: 1\nb: [x, y]\n"))
//	if err != nil {
//	    var pErr *parse.Error
//	    if errors.As(err, &pErr) && pErr.Line != 0 {
//	        fmt.Println("at line", pErr.Line)
//	    }
//	    return err
//	}
//
// Mapping order is preserved. Anchors, aliases and merge keys are resolved
// by the underlying decoder. Only the first document of a stream is read.
//
// # Related Packages
//
//   - github.com/signadot/ydiff/ir - IR representation
package parse
