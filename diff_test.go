package ydiff

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/signadot/ydiff/libdiff"
	"github.com/signadot/ydiff/parse"
)

func TestDiff(t *testing.T) {
	nodes, err := Diff([]byte("a: 1\nb: 2\n"), []byte("a: 1\nb: 3\n"))
	require.NoError(t, err)
	require.Len(t, nodes, 2)

	require.Equal(t, "a", nodes[0].KeyString())
	require.Equal(t, libdiff.Unchanged, nodes[0].Class)
	require.False(t, nodes[0].HasDiff)

	require.Equal(t, "b", nodes[1].KeyString())
	require.Equal(t, libdiff.Modified, nodes[1].Class)
	require.True(t, nodes[1].HasDiff)
	require.Equal(t, int64(2), *nodes[1].Left.Int64)
	require.Equal(t, int64(3), *nodes[1].Right.Int64)
}

func TestDiffOptions(t *testing.T) {
	_, err := Diff([]byte("a: {b: 1}"), []byte("a: {b: 2}"), libdiff.MaxDepth(1))
	require.ErrorIs(t, err, libdiff.ErrDepthExceeded)

	st := &libdiff.Stats{}
	_, err = Diff([]byte("[1, 2]"), []byte("[1, 2, 3]"), libdiff.WithStats(st))
	require.NoError(t, err)
	require.Equal(t, 1, st.Added)
	require.Equal(t, 2, st.Unchanged)
}

func TestDiffInputErrors(t *testing.T) {
	_, err := Diff(nil, []byte(" \n\t"))
	require.ErrorIs(t, err, ErrBothEmpty)

	_, err = Diff([]byte("a: 1"), nil)
	var inErr *InputError
	require.ErrorAs(t, err, &inErr)
	require.Len(t, inErr.Errs, 1)
	var empty *EmptyInputError
	require.ErrorAs(t, err, &empty)
	require.Equal(t, Right, empty.Side)
	require.Equal(t, "[YAML TWO] Error: empty document", err.Error())

	_, err = Diff([]byte("a: [1, 2\nb: 3\n"), []byte("\n"))
	require.ErrorAs(t, err, &inErr)
	require.Len(t, inErr.Errs, 2)
	lines := strings.Split(err.Error(), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "[YAML ONE] Error: "), lines[0])
	require.Equal(t, "[YAML TWO] Error: empty document", lines[1])
	require.ErrorIs(t, err, parse.ErrParse)
	require.ErrorIs(t, err, ErrEmptyInput)

	var sideErr *SideError
	require.ErrorAs(t, err, &sideErr)
	require.Equal(t, Left, sideErr.Side)
}

func TestInputErrorFormat(t *testing.T) {
	err := &InputError{Errs: []error{
		&SideError{Side: Left, Err: &parse.Error{Msg: "did not find expected key", Line: 3}},
		&SideError{Side: Right, Err: &parse.Error{Msg: "unexpected end"}},
	}}
	require.Equal(t,
		"[YAML ONE] Error: did not find expected key at line: 3\n[YAML TWO] Error: unexpected end",
		err.Error())
	require.True(t, errors.Is(err, parse.ErrParse))
}
