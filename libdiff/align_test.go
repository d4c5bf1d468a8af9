package libdiff

import (
	"math/rand/v2"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/ydiff/ir"
)

func TestAlign(t *testing.T) {
	tests := []struct {
		from, to []string
		want     []Op
	}{
		{
			from: []string{"a", "b", "c"},
			to:   []string{"a", "c"},
			want: []Op{
				{Type: OpEqual, LeftStart: 0, LeftEnd: 1, RightStart: 0, RightEnd: 1},
				{Type: OpDelete, LeftStart: 1, LeftEnd: 2, RightStart: 1, RightEnd: 1},
				{Type: OpEqual, LeftStart: 2, LeftEnd: 3, RightStart: 1, RightEnd: 2},
			},
		},
		{
			from: []string{"a", "b", "z"},
			to:   []string{"a", "x", "y", "z"},
			want: []Op{
				{Type: OpEqual, LeftStart: 0, LeftEnd: 1, RightStart: 0, RightEnd: 1},
				{Type: OpReplace, LeftStart: 1, LeftEnd: 2, RightStart: 1, RightEnd: 3},
				{Type: OpEqual, LeftStart: 2, LeftEnd: 3, RightStart: 3, RightEnd: 4},
			},
		},
		{
			from: nil,
			to:   []string{"a"},
			want: []Op{
				{Type: OpInsert, LeftStart: 0, LeftEnd: 0, RightStart: 0, RightEnd: 1},
			},
		},
		{
			from: nil,
			to:   nil,
			want: []Op{},
		},
	}
	for _, tt := range tests {
		got, ok := Align(tt.from, tt.to)
		if !ok {
			t.Fatalf("%v -> %v: alignment refused", tt.from, tt.to)
		}
		if d := cmp.Diff(tt.want, got); d != "" {
			t.Errorf("%v -> %v (-want +got):\n%s", tt.from, tt.to, d)
		}
	}
}

func TestAlignCoversBothSides(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	gen := func() []string {
		res := make([]string, rnd.IntN(40))
		for i := range res {
			res[i] = strconv.Itoa(rnd.IntN(6))
		}
		return res
	}
	for range 200 {
		from, to := gen(), gen()
		ops, ok := Align(from, to)
		if !ok {
			t.Fatalf("alignment refused")
		}
		checkCoverage(t, from, to, ops)
	}
}

func checkCoverage(t *testing.T, from, to []string, ops []Op) {
	t.Helper()
	fi, ti := 0, 0
	for i, op := range ops {
		if op.LeftStart != fi || op.RightStart != ti {
			t.Fatalf("%v -> %v: op %d starts at %d/%d, expected %d/%d", from, to, i, op.LeftStart, op.RightStart, fi, ti)
		}
		if op.LeftLen() == 0 && op.RightLen() == 0 {
			t.Fatalf("%v -> %v: empty op %d", from, to, i)
		}
		switch op.Type {
		case OpEqual:
			if op.LeftLen() != op.RightLen() {
				t.Fatalf("%v -> %v: equal op %d of unequal lengths", from, to, i)
			}
			for j := range op.LeftLen() {
				if from[op.LeftStart+j] != to[op.RightStart+j] {
					t.Fatalf("%v -> %v: equal op %d pairs different tokens", from, to, i)
				}
			}
		case OpDelete:
			if op.RightLen() != 0 {
				t.Fatalf("%v -> %v: delete op %d consumes right", from, to, i)
			}
		case OpInsert:
			if op.LeftLen() != 0 {
				t.Fatalf("%v -> %v: insert op %d consumes left", from, to, i)
			}
		case OpReplace:
			if op.LeftLen() == 0 || op.RightLen() == 0 {
				t.Fatalf("%v -> %v: replace op %d is one-sided", from, to, i)
			}
		}
		if i > 0 && op.Type != OpEqual && ops[i-1].Type != OpEqual {
			t.Fatalf("%v -> %v: adjacent change ops at %d", from, to, i)
		}
		fi, ti = op.LeftEnd, op.RightEnd
	}
	if fi != len(from) || ti != len(to) {
		t.Fatalf("%v -> %v: ops end at %d/%d", from, to, fi, ti)
	}
}

func TestMapTokensSkipsSurrogates(t *testing.T) {
	toks := make([]string, surrogateMin+2)
	for i := range toks {
		toks[i] = strconv.Itoa(i)
	}
	m := map[string]rune{}
	rs, ok := mapTokens(m, toks)
	if !ok {
		t.Fatal("mapping refused")
	}
	if rs[surrogateMin-1] != surrogateMin-1 {
		t.Errorf("got %x before the surrogate range", rs[surrogateMin-1])
	}
	if rs[surrogateMin] != surrogateMin+surrogateLen {
		t.Errorf("got %x at the surrogate range", rs[surrogateMin])
	}
	if rs[surrogateMin+1] != surrogateMin+surrogateLen+1 {
		t.Errorf("got %x after the surrogate range", rs[surrogateMin+1])
	}
	// repeated tokens reuse their rune
	again, _ := mapTokens(m, toks[:3])
	if d := cmp.Diff(rs[:3], again); d != "" {
		t.Errorf("(-first +second):\n%s", d)
	}
}

func TestDiffArrayReconstructsInputs(t *testing.T) {
	rnd := rand.New(rand.NewPCG(3, 4))
	gen := func() []*ir.Node {
		res := make([]*ir.Node, rnd.IntN(30))
		for i := range res {
			res[i] = ir.FromInt(int64(rnd.IntN(5)))
		}
		return res
	}
	for range 200 {
		from, to := gen(), gen()
		for _, threshold := range []int{1, 1 << 20} {
			nodes, err := Diff(ir.FromSlice(from), ir.FromSlice(to), SeqThreshold(threshold))
			if err != nil {
				t.Fatal(err)
			}
			checkReconstructs(t, from, to, nodes)
		}
	}
}

// checkReconstructs walks the output in order: each node consumes the next
// element of the side(s) it holds, and every element is consumed once.
func checkReconstructs(t *testing.T, from, to []*ir.Node, nodes []*Node) {
	t.Helper()
	fi, ti := 0, 0
	for k, n := range nodes {
		if n.KeyString() != strconv.Itoa(k) {
			t.Fatalf("node %d has key %s", k, n.KeyString())
		}
		switch n.Class {
		case Removed:
			if n.Right != nil {
				t.Fatalf("removed node %d has a right side", k)
			}
		case Added:
			if n.Left != nil {
				t.Fatalf("added node %d has a left side", k)
			}
		}
		if n.Left != nil {
			if fi >= len(from) || !ir.Equal(n.Left, from[fi]) {
				t.Fatalf("node %d: left does not match element %d of %d", k, fi, len(from))
			}
			fi++
		}
		if n.Right != nil {
			if ti >= len(to) || !ir.Equal(n.Right, to[ti]) {
				t.Fatalf("node %d: right does not match element %d of %d", k, ti, len(to))
			}
			ti++
		}
	}
	if fi != len(from) || ti != len(to) {
		t.Fatalf("consumed %d/%d left and %d/%d right", fi, len(from), ti, len(to))
	}
}
