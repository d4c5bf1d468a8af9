package ydiff

import (
	"errors"
	"fmt"
	"strings"

	"github.com/signadot/ydiff/parse"
)

var (
	ErrBothEmpty           = errors.New("both documents are empty")
	ErrEmptyInput          = errors.New("empty document")
	ErrNoSession           = errors.New("no live session")
	ErrKeyNotFound         = errors.New("key not found")
	ErrNotAMapping         = errors.New("document is not a mapping")
	ErrStateAccessConflict = errors.New("concurrent session access")
)

// Side names one of the two compared documents.
type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "<unknown side>"
	}
}

func (s Side) label() string {
	if s == Left {
		return "[YAML ONE]"
	}
	return "[YAML TWO]"
}

type EmptyInputError struct {
	Side Side
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s Error: %s", e.Side.label(), ErrEmptyInput)
}

func (e *EmptyInputError) Unwrap() error {
	return ErrEmptyInput
}

// SideError is a parse failure of one document.
type SideError struct {
	Side Side
	Err  *parse.Error
}

func (e *SideError) Error() string {
	return fmt.Sprintf("%s Error: %s", e.Side.label(), e.Err)
}

func (e *SideError) Unwrap() error {
	return e.Err
}

// InputError collects the failures of both documents, one line each.
type InputError struct {
	Errs []error
}

func (e *InputError) Error() string {
	lines := make([]string, len(e.Errs))
	for i, err := range e.Errs {
		lines[i] = err.Error()
	}
	return strings.Join(lines, "\n")
}

func (e *InputError) Unwrap() []error {
	return e.Errs
}

type KeyNotFoundError struct {
	Key string
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrKeyNotFound, e.Key)
}

func (e *KeyNotFoundError) Unwrap() error {
	return ErrKeyNotFound
}

type NotAMappingError struct {
	Side Side
}

func (e *NotAMappingError) Error() string {
	return fmt.Sprintf("%s %s", e.Side, ErrNotAMapping)
}

func (e *NotAMappingError) Unwrap() error {
	return ErrNotAMapping
}
