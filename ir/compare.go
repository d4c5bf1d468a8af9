package ir

import "math"

// Equal reports whether a and b are structurally equal.
//
// Objects are equal when they hold the same canonical keys mapped to equal
// values, regardless of order. Numbers are equal only within the same
// representation: the integer 1 and the float 1.0 differ. NaN equals NaN so
// that every node equals itself.
func Equal(a, b *Node) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case NullType:
		return true
	case BoolType:
		return a.Bool == b.Bool
	case StringType:
		return a.String == b.String
	case NumberType:
		return equalNumbers(a, b)
	case ArrayType:
		return equalArrays(a, b)
	case ObjectType:
		return equalObjects(a, b)
	}
	return false
}

func equalNumbers(a, b *Node) bool {
	switch {
	case a.Int64 != nil:
		return b.Int64 != nil && *a.Int64 == *b.Int64
	case a.Float64 != nil:
		if b.Float64 == nil {
			return false
		}
		x, y := *a.Float64, *b.Float64
		return x == y || (math.IsNaN(x) && math.IsNaN(y))
	default:
		return b.Int64 == nil && b.Float64 == nil && a.Number == b.Number
	}
}

func equalArrays(a, b *Node) bool {
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !Equal(a.Values[i], b.Values[i]) {
			return false
		}
	}
	return true
}

func equalObjects(a, b *Node) bool {
	aIdx := KeyIndex(a)
	bIdx := KeyIndex(b)
	if len(aIdx) != len(bIdx) {
		return false
	}
	for k, i := range aIdx {
		j, ok := bIdx[k]
		if !ok {
			return false
		}
		if !Equal(a.Values[i], b.Values[j]) {
			return false
		}
	}
	return true
}
