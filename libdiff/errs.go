package libdiff

import (
	"errors"
	"fmt"
)

var (
	ErrDepthExceeded = errors.New("maximum diff depth exceeded")
)

// DepthError reports nesting beyond the configured depth ceiling.
type DepthError struct {
	Limit int
}

func (e *DepthError) Error() string {
	return fmt.Sprintf("%s: limit is %d", ErrDepthExceeded, e.Limit)
}

func (e *DepthError) Unwrap() error {
	return ErrDepthExceeded
}
