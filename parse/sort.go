package parse

import (
	"maps"
	"slices"
	"strings"

	"github.com/signadot/ydiff/ir"
)

// unordered maps only come from decoders that lost key order; sorting at
// least makes the result deterministic.

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}

func sortKeyVals(kvs []ir.KeyVal) {
	slices.SortFunc(kvs, func(a, b ir.KeyVal) int {
		return strings.Compare(ir.KeyString(a.Key), ir.KeyString(b.Key))
	})
}
