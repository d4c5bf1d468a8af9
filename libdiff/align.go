package libdiff

import (
	"unicode/utf8"

	"github.com/signadot/ydiff/debug"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

type OpType int

const (
	OpEqual OpType = iota
	OpDelete
	OpInsert
	OpReplace
)

func (t OpType) String() string {
	switch t {
	case OpEqual:
		return "equal"
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	case OpReplace:
		return "replace"
	default:
		return "<unknown op>"
	}
}

// Op is one run of an alignment. Left and right ranges are half open.
// Equal runs have ranges of the same length; Delete runs have an empty
// right range and Insert runs an empty left range.
type Op struct {
	Type       OpType
	LeftStart  int
	LeftEnd    int
	RightStart int
	RightEnd   int
}

func (o Op) LeftLen() int  { return o.LeftEnd - o.LeftStart }
func (o Op) RightLen() int { return o.RightEnd - o.RightStart }

// Align aligns two token sequences. The resulting runs cover both
// sequences exactly once, in order. Adjacent deletions and insertions are
// reported as a single Replace run.
//
// The second result is false when there are too many distinct tokens to
// align.
//
// we map each distinct token to a rune and let diffmatchpatch find the
// runs, without a deadline so that results are deterministic.
func Align(from, to []string) ([]Op, bool) {
	m := map[string]rune{}
	fromRunes, ok := mapTokens(m, from)
	if !ok {
		return nil, false
	}
	toRunes, ok := mapTokens(m, to)
	if !ok {
		return nil, false
	}
	diffCfg := diffpatch.New()
	diffCfg.DiffTimeout = 0
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	res := make([]Op, 0, len(diffs))
	fi, ti := 0, 0
	var pending *Op
	flush := func() {
		if pending == nil {
			return
		}
		switch {
		case pending.LeftLen() != 0 && pending.RightLen() != 0:
			pending.Type = OpReplace
		case pending.LeftLen() != 0:
			pending.Type = OpDelete
		default:
			pending.Type = OpInsert
		}
		res = append(res, *pending)
		pending = nil
	}
	for i := range diffs {
		diff := &diffs[i]
		n := utf8.RuneCountInString(diff.Text)
		if n == 0 {
			continue
		}
		switch diff.Type {
		case diffpatch.DiffEqual:
			flush()
			res = append(res, Op{
				Type:       OpEqual,
				LeftStart:  fi,
				LeftEnd:    fi + n,
				RightStart: ti,
				RightEnd:   ti + n,
			})
			fi += n
			ti += n
		case diffpatch.DiffDelete:
			if pending == nil {
				pending = &Op{LeftStart: fi, LeftEnd: fi, RightStart: ti, RightEnd: ti}
			}
			pending.LeftEnd += n
			fi += n
		case diffpatch.DiffInsert:
			if pending == nil {
				pending = &Op{LeftStart: fi, LeftEnd: fi, RightStart: ti, RightEnd: ti}
			}
			pending.RightEnd += n
			ti += n
		}
	}
	flush()
	if debug.Align() {
		debug.Logf("align %d x %d tokens (%d distinct): %d runs", len(from), len(to), len(m), len(res))
	}
	return res, true
}

// runes in the surrogate range do not survive conversion to string, so
// they are skipped.
const (
	surrogateMin = 0xD800
	surrogateLen = 0x800
)

func mapTokens(m map[string]rune, tokens []string) ([]rune, bool) {
	rs := make([]rune, len(tokens))
	for i, tok := range tokens {
		r, ok := m[tok]
		if !ok {
			r = rune(len(m))
			if r >= surrogateMin {
				r += surrogateLen
			}
			if r > utf8.MaxRune {
				return nil, false
			}
			m[tok] = r
		}
		rs[i] = r
	}
	return rs, true
}
