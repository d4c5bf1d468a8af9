package main

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/ydiff/encode"
	"github.com/signadot/ydiff/libdiff"
)

// whereEnv is what -where expressions see of a node.
type whereEnv struct {
	Key      string `expr:"key"`
	Class    string `expr:"class"`
	HasDiff  bool   `expr:"hasDiff"`
	Left     any    `expr:"left"`
	Right    any    `expr:"right"`
	Children int    `expr:"children"`
}

func newWhereEnv(n *libdiff.Node) whereEnv {
	return whereEnv{
		Key:      n.KeyString(),
		Class:    n.Class.String(),
		HasDiff:  n.HasDiff,
		Left:     exprValue(encode.ToNative(n.Left)),
		Right:    exprValue(encode.ToNative(n.Right)),
		Children: len(n.Children),
	}
}

// exprValue replaces ordered mappings with maps so that expressions
// can use member access on them.
func exprValue(v any) any {
	switch x := v.(type) {
	case encode.Map:
		res := make(map[string]any, len(x))
		for _, item := range x {
			res[item.Key] = exprValue(item.Value)
		}
		return res
	case []any:
		res := make([]any, len(x))
		for i, elt := range x {
			res[i] = exprValue(elt)
		}
		return res
	default:
		return v
	}
}

type where struct {
	src string
	prg *vm.Program
}

func compileWhere(src string) (*where, error) {
	prg, err := expr.Compile(src, expr.Env(whereEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("bad -where expression: %w", err)
	}
	return &where{src: src, prg: prg}, nil
}

func (w *where) match(n *libdiff.Node) (bool, error) {
	res, err := expr.Run(w.prg, newWhereEnv(n))
	if err != nil {
		return false, fmt.Errorf("error evaluating %q at %q: %w", w.src, n.KeyString(), err)
	}
	return res.(bool), nil
}

func (w *where) filter(nodes []*libdiff.Node) ([]*libdiff.Node, error) {
	var firstErr error
	res := libdiff.Filter(nodes, func(n *libdiff.Node) bool {
		if firstErr != nil {
			return false
		}
		ok, err := w.match(n)
		if err != nil {
			firstErr = err
		}
		return ok
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return res, nil
}
