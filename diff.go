package ydiff

import (
	"bytes"
	"errors"

	"go.uber.org/multierr"

	"github.com/signadot/ydiff/ir"
	"github.com/signadot/ydiff/libdiff"
	"github.com/signadot/ydiff/parse"
)

// Diff parses left and right and compares them with [libdiff.Diff].
//
// Input failures of both documents are reported together in an
// [*InputError]; when both documents are empty Diff returns [ErrBothEmpty].
func Diff(left, right []byte, opts ...libdiff.DiffOption) ([]*libdiff.Node, error) {
	l, r, err := parseInputs(left, right)
	if err != nil {
		return nil, err
	}
	return libdiff.Diff(l, r, opts...)
}

func parseInputs(left, right []byte) (*ir.Node, *ir.Node, error) {
	leftEmpty, rightEmpty := isEmpty(left), isEmpty(right)
	if leftEmpty && rightEmpty {
		return nil, nil, ErrBothEmpty
	}
	var errs error
	l, err := parseSide(Left, left, leftEmpty)
	errs = multierr.Append(errs, err)
	r, err := parseSide(Right, right, rightEmpty)
	errs = multierr.Append(errs, err)
	if errs != nil {
		return nil, nil, &InputError{Errs: multierr.Errors(errs)}
	}
	return l, r, nil
}

func isEmpty(d []byte) bool {
	return len(bytes.TrimSpace(d)) == 0
}

func parseSide(side Side, d []byte, empty bool) (*ir.Node, error) {
	if empty {
		return nil, &EmptyInputError{Side: side}
	}
	node, err := parse.Parse(d)
	if err == nil {
		return node, nil
	}
	var pErr *parse.Error
	if !errors.As(err, &pErr) {
		pErr = &parse.Error{Msg: err.Error()}
	}
	return nil, &SideError{Side: side, Err: pErr}
}
