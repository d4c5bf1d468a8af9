package encode

import (
	"errors"
	"fmt"
)

var (
	ErrSerialization = errors.New("serialization error")
	ErrNoDecoder     = errors.New("format cannot be decoded")
)

// SerializationError reports a failure converting to or from Via, which is
// "native" or the name of an output format.
type SerializationError struct {
	Via string
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Via, ErrSerialization, e.Err)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

func (e *SerializationError) Is(target error) bool {
	return target == ErrSerialization
}

func nativeErr(format string, args ...any) error {
	return &SerializationError{Via: "native", Err: fmt.Errorf(format, args...)}
}
