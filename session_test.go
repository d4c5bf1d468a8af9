package ydiff

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/signadot/ydiff/libdiff"
)

const (
	sessionLeft = `
name: svc
ports: [80, 443]
env: {A: "1", B: "2"}
old: {x: [1, 2]}
`
	sessionRight = `
env: {A: "1", B: "3"}
name: svc
ports: [80, 443]
new: 1
`
)

func TestSessionKeys(t *testing.T) {
	s := NewSession()
	keys, err := s.Init([]byte(sessionLeft), []byte(sessionRight))
	require.NoError(t, err)
	require.Equal(t, []string{"name", "ports", "env", "old", "new"}, keys)
	require.NoError(t, s.Cleanup())
}

func TestSessionDiffKey(t *testing.T) {
	s := NewSession()
	_, err := s.Init([]byte(sessionLeft), []byte(sessionRight))
	require.NoError(t, err)

	node, ok, err := s.DiffKey("name")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "name", node.KeyString())
	require.Equal(t, libdiff.Unchanged, node.Class)
	require.Empty(t, node.Children)

	node, ok, err = s.DiffKey("env")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, libdiff.Modified, node.Class)
	require.Len(t, node.Children, 2)
	require.Equal(t, libdiff.Unchanged, node.Children[0].Class)
	require.Equal(t, "B", node.Children[1].KeyString())
	require.Equal(t, libdiff.Modified, node.Children[1].Class)

	node, ok, err = s.DiffKey("old")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, libdiff.Removed, node.Class)
	require.Nil(t, node.Right)
	require.Len(t, node.Children, 1)
	require.Equal(t, "x", node.Children[0].KeyString())
	require.Len(t, node.Children[0].Children, 2)
	require.Equal(t, libdiff.Removed, node.Children[0].Children[1].Class)

	node, ok, err = s.DiffKey("new")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, libdiff.Added, node.Class)
	require.Nil(t, node.Left)

	node, ok, err = s.DiffKey("missing")
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, node)

	_, err = s.DiffKeyErrorIfMissing("missing")
	var nf *KeyNotFoundError
	require.ErrorAs(t, err, &nf)
	require.Equal(t, "missing", nf.Key)
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestSessionKeysMatchDiffAll(t *testing.T) {
	s := NewSession()
	keys, err := s.Init([]byte(sessionLeft), []byte(sessionRight))
	require.NoError(t, err)
	all, err := s.DiffAll()
	require.NoError(t, err)
	require.Len(t, all, len(keys))
	for i, k := range keys {
		node, err := s.DiffKeyErrorIfMissing(k)
		require.NoError(t, err)
		require.Equal(t, all[i], node, "key %s", k)
	}
}

func TestSessionNotMappings(t *testing.T) {
	s := NewSession()
	keys, err := s.Init([]byte("[1, 2]"), []byte("a: 1"))
	require.NoError(t, err)
	require.Empty(t, keys)
	require.NotNil(t, keys)

	_, _, err = s.DiffKey("a")
	var nm *NotAMappingError
	require.ErrorAs(t, err, &nm)
	require.Equal(t, Left, nm.Side)
	require.ErrorIs(t, err, ErrNotAMapping)

	nodes, err := s.DiffAll()
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Nil(t, nodes[0].Key)
	require.Equal(t, libdiff.Modified, nodes[0].Class)
}

func TestSessionLifecycle(t *testing.T) {
	s := NewSession()
	_, err := s.DiffAll()
	require.ErrorIs(t, err, ErrNoSession)
	_, _, err = s.DiffKey("a")
	require.ErrorIs(t, err, ErrNoSession)

	_, err = s.Init([]byte(""), []byte(""))
	require.ErrorIs(t, err, ErrBothEmpty)

	_, err = s.Init([]byte("a: 1"), []byte(""))
	var empty *EmptyInputError
	require.ErrorAs(t, err, &empty)
	require.Equal(t, Right, empty.Side)

	_, err = s.Init([]byte("a: 1"), []byte("a: 2"))
	require.NoError(t, err)

	// a failed Init keeps the previous documents
	_, err = s.Init([]byte("a: [1"), []byte("a: 2"))
	require.Error(t, err)
	node, err := s.DiffKeyErrorIfMissing("a")
	require.NoError(t, err)
	require.Equal(t, libdiff.Modified, node.Class)

	keys, err := s.Init([]byte("b: 1"), []byte("b: 1"))
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, keys)
	_, ok, err := s.DiffKey("a")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Cleanup())
	_, err = s.DiffAll()
	require.ErrorIs(t, err, ErrNoSession)
	// node from the ended session is still usable
	require.Equal(t, "a", node.KeyString())
}

func TestSessionsAreIndependent(t *testing.T) {
	a, b := NewSession(), NewSession()
	_, err := a.Init([]byte("k: 1"), []byte("k: 2"))
	require.NoError(t, err)
	_, err = b.Init([]byte("k: 1"), []byte("k: 1"))
	require.NoError(t, err)

	na, err := a.DiffKeyErrorIfMissing("k")
	require.NoError(t, err)
	nb, err := b.DiffKeyErrorIfMissing("k")
	require.NoError(t, err)
	require.Equal(t, libdiff.Modified, na.Class)
	require.Equal(t, libdiff.Unchanged, nb.Class)

	require.NoError(t, a.Cleanup())
	_, err = b.DiffKeyErrorIfMissing("k")
	require.NoError(t, err)
}

func TestSessionAccessConflict(t *testing.T) {
	s := NewSession()
	_, err := s.Init([]byte("k: 1"), []byte("k: 2"))
	require.NoError(t, err)

	s.busy.Store(true)
	_, _, err = s.DiffKey("k")
	require.ErrorIs(t, err, ErrStateAccessConflict)
	_, err = s.DiffAll()
	require.ErrorIs(t, err, ErrStateAccessConflict)
	_, err = s.Init([]byte("k: 1"), []byte("k: 1"))
	require.ErrorIs(t, err, ErrStateAccessConflict)
	require.ErrorIs(t, s.Cleanup(), ErrStateAccessConflict)

	s.busy.Store(false)
	node, ok, err := s.DiffKey("k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, libdiff.Modified, node.Class)
}

func TestSessionDepthLimit(t *testing.T) {
	s := NewSession(libdiff.MaxDepth(1))
	_, err := s.Init([]byte("a: {b: {c: 1}}"), []byte("z: 1"))
	require.NoError(t, err)
	_, _, err = s.DiffKey("a")
	require.ErrorIs(t, err, libdiff.ErrDepthExceeded)
}
