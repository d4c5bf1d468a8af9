package ydiff

import (
	"go.uber.org/atomic"

	"github.com/signadot/ydiff/debug"
	"github.com/signadot/ydiff/ir"
	"github.com/signadot/ydiff/libdiff"
)

// Session holds two parsed documents between calls so that top level keys
// can be compared one at a time.
//
// A Session is not safe for concurrent use. Overlapping calls fail with
// [ErrStateAccessConflict] instead of waiting.
type Session struct {
	opts []libdiff.DiffOption

	busy        atomic.Bool
	live        bool
	left, right *ir.Node
}

func NewSession(opts ...libdiff.DiffOption) *Session {
	return &Session{opts: opts}
}

func (s *Session) acquire() error {
	if !s.busy.CompareAndSwap(false, true) {
		return ErrStateAccessConflict
	}
	return nil
}

func (s *Session) release() {
	s.busy.Store(false)
}

// Init parses both documents and makes them the session state, replacing
// any previous one. When both documents are mappings it returns their top
// level keys: left keys in left order, then keys only in right in right
// order. Otherwise the result is empty and callers should use [Session.DiffAll].
//
// On failure the previous state is kept.
func (s *Session) Init(left, right []byte) ([]string, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()
	l, r, err := parseInputs(left, right)
	if err != nil {
		return nil, err
	}
	s.left, s.right, s.live = l, r, true
	keys := unionKeys(l, r)
	if debug.Session() {
		debug.Logf("session init %s/%s: %d keys", l.Type, r.Type, len(keys))
	}
	return keys, nil
}

func unionKeys(left, right *ir.Node) []string {
	res := []string{}
	if left.Type != ir.ObjectType || right.Type != ir.ObjectType {
		return res
	}
	seen := map[string]bool{}
	for _, k := range append(left.Keys(), right.Keys()...) {
		if seen[k] {
			continue
		}
		seen[k] = true
		res = append(res, k)
	}
	return res
}

// DiffKey compares the values stored under key in both documents. The
// result is a single node keyed by key. A key found on one side only
// yields an Added or Removed node expanded like in [libdiff.Diff]. The
// bool result is false when neither document has key.
func (s *Session) DiffKey(key string) (*libdiff.Node, bool, error) {
	if err := s.acquire(); err != nil {
		return nil, false, err
	}
	defer s.release()
	if err := s.checkMappings(); err != nil {
		return nil, false, err
	}
	lv, rv := ir.Get(s.left, key), ir.Get(s.right, key)
	if debug.Session() {
		debug.Logf("session diff key %q: %v -> %v", key, lv, rv)
	}
	var (
		node *libdiff.Node
		err  error
	)
	switch {
	case lv != nil && rv != nil:
		node, err = libdiff.DiffPair(key, lv, rv, s.opts...)
	case lv != nil:
		node, err = libdiff.DiffOneSided(key, lv, libdiff.Removed, s.opts...)
	case rv != nil:
		node, err = libdiff.DiffOneSided(key, rv, libdiff.Added, s.opts...)
	default:
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return node, true, nil
}

// DiffKeyErrorIfMissing is like DiffKey but fails with a
// [*KeyNotFoundError] when neither document has key.
func (s *Session) DiffKeyErrorIfMissing(key string) (*libdiff.Node, error) {
	node, ok, err := s.DiffKey(key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &KeyNotFoundError{Key: key}
	}
	return node, nil
}

func (s *Session) checkMappings() error {
	if !s.live {
		return ErrNoSession
	}
	if s.left.Type != ir.ObjectType {
		return &NotAMappingError{Side: Left}
	}
	if s.right.Type != ir.ObjectType {
		return &NotAMappingError{Side: Right}
	}
	return nil
}

// DiffAll compares the whole documents, whatever their shape.
func (s *Session) DiffAll() ([]*libdiff.Node, error) {
	if err := s.acquire(); err != nil {
		return nil, err
	}
	defer s.release()
	if !s.live {
		return nil, ErrNoSession
	}
	return libdiff.Diff(s.left, s.right, s.opts...)
}

// Cleanup drops the session state. Nodes already returned stay valid.
func (s *Session) Cleanup() error {
	if err := s.acquire(); err != nil {
		return err
	}
	defer s.release()
	if debug.Session() && s.live {
		debug.Logf("session cleanup")
	}
	s.left, s.right, s.live = nil, nil, false
	return nil
}
