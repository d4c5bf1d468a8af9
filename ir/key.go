package ir

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// KeyString returns the canonical string form of an object key.
//
// Strings are used as is, numbers in base 10 or shortest float form,
// bools as true/false and null as "null". Keys of any other type fall back
// to their [Token].
func KeyString(k *Node) string {
	if k == nil {
		return "null"
	}
	switch k.Type {
	case StringType:
		return k.String
	case NumberType:
		return k.NumberString()
	case BoolType:
		return strconv.FormatBool(k.Bool)
	case NullType:
		return "null"
	default:
		return Token(k)
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	case f == 0:
		// -0 equals 0
		return "0"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Token renders y canonically: equal nodes under [Equal] render to the
// same token and unequal nodes to different tokens.
func Token(y *Node) string {
	buf := &strings.Builder{}
	writeToken(buf, y)
	return buf.String()
}

func writeToken(buf *strings.Builder, y *Node) {
	if y == nil {
		buf.WriteString("~")
		return
	}
	switch y.Type {
	case NullType:
		buf.WriteString("~")
	case BoolType:
		if y.Bool {
			buf.WriteString("t")
		} else {
			buf.WriteString("f")
		}
	case NumberType:
		switch {
		case y.Int64 != nil:
			buf.WriteString("i")
		case y.Float64 != nil:
			buf.WriteString("d")
		default:
			buf.WriteString("n")
		}
		buf.WriteString(y.NumberString())
		buf.WriteByte(';')
	case StringType:
		buf.WriteString("s")
		buf.WriteString(strconv.Quote(y.String))
	case ArrayType:
		buf.WriteByte('[')
		for _, v := range y.Values {
			writeToken(buf, v)
			buf.WriteByte(',')
		}
		buf.WriteByte(']')
	case ObjectType:
		keys := y.Keys()
		idx := KeyIndex(y)
		slices.Sort(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 && keys[i-1] == k {
				continue
			}
			buf.WriteString(strconv.Quote(k))
			buf.WriteByte(':')
			writeToken(buf, y.Values[idx[k]])
			buf.WriteByte(',')
		}
		buf.WriteByte('}')
	}
}
