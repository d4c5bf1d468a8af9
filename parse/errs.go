package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse = errors.New("parse error")
)

// Error is a parse failure. Line is 1-based and 0 when the decoder did
// not report a position.
type Error struct {
	Msg  string
	Line int
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s at line: %d", e.Msg, e.Line)
}

func (e *Error) Is(target error) bool {
	return target == ErrParse
}
