package ir

import (
	"bytes"
	"cmp"
	"strings"

	"github.com/recfmt/go-rec/num"
)

// Equal reports structural equality of two values.
func Equal(a, b Value) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two values. The result is 0 if
// a == b, -1 if a < b and +1 if a > b. The order is total: values rank
// by kind first, then by payload; floats order by bit pattern so NaNs
// participate.
func Compare(a, b Value) int {
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	switch a.Kind {
	case StructKind:
		return compareStructs(a.rec(), b.rec())
	case MapKind:
		return compareMaps(a.Map, b.Map)
	case ArrayKind:
		return compareValues(a.Array, b.Array)
	case StringKind:
		return strings.Compare(a.String, b.String)
	case BytesKind:
		return bytes.Compare(a.Bytes, b.Bytes)
	case BoolKind:
		return compareBools(a.Bool, b.Bool)
	case SignedKind:
		return compareSigned(a, b)
	case UnsignedKind:
		return a.Int.Cmp(b.Int)
	case FloatKind:
		return a.Float.Cmp(b.Float)
	case CharKind:
		return cmp.Compare(a.Char, b.Char)
	}
	return 0
}

func compareBools(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func compareSigned(a, b Value) int {
	if a.Sign != b.Sign {
		if a.Sign == num.Negative {
			return -1
		}
		return 1
	}
	c := a.Int.Cmp(b.Int)
	if a.Sign == num.Negative {
		return -c
	}
	return c
}

func compareStructs(a, b *Struct) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	switch {
	case a.Fields == nil && b.Fields == nil:
		return 0
	case a.Fields == nil:
		return -1
	case b.Fields == nil:
		return 1
	}
	return compareFields(a.Fields, b.Fields)
}

func compareFields(a, b *Fields) int {
	if a.Named != b.Named {
		// unnamed fields rank below named ones
		if !a.Named {
			return -1
		}
		return 1
	}
	if a.Named {
		n := min(len(a.Names), len(b.Names))
		for i := 0; i < n; i++ {
			if c := strings.Compare(a.Names[i], b.Names[i]); c != 0 {
				return c
			}
			if c := Compare(a.Values[i], b.Values[i]); c != 0 {
				return c
			}
		}
		return cmp.Compare(len(a.Names), len(b.Names))
	}
	return compareValues(a.Values, b.Values)
}

func compareValues(a, b []Value) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

func compareMaps(a, b *Map) int {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		ak, av := a.At(i)
		bk, bv := b.At(i)
		if c := Compare(ak, bk); c != 0 {
			return c
		}
		if c := Compare(av, bv); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Len(), b.Len())
}
