package num

import (
	"math"
	"math/bits"
	"strconv"
)

// Sign is the sign of a signed integer, carried independently of its
// magnitude.
type Sign int

const (
	Positive Sign = iota
	Negative
)

func (s Sign) String() string {
	if s == Negative {
		return "-"
	}
	return "+"
}

// Integer is an unsigned 128-bit integer magnitude.
type Integer struct {
	hi, lo uint64
}

// U64 widens v to an Integer.
func U64(v uint64) Integer {
	return Integer{lo: v}
}

// U128 builds an Integer from its high and low 64-bit words.
func U128(hi, lo uint64) Integer {
	return Integer{hi: hi, lo: lo}
}

// I64 splits v into its sign and magnitude. The magnitude of
// math.MinInt64 is exact.
func I64(v int64) (Sign, Integer) {
	if v >= 0 {
		return Positive, U64(uint64(v))
	}
	return Negative, U64(uint64(-(v + 1)) + 1)
}

// Parts returns the high and low 64-bit words.
func (i Integer) Parts() (hi, lo uint64) {
	return i.hi, i.lo
}

func (i Integer) IsZero() bool {
	return i.hi == 0 && i.lo == 0
}

// Cmp returns -1, 0 or +1 ordering i against j.
func (i Integer) Cmp(j Integer) int {
	switch {
	case i.hi != j.hi:
		if i.hi < j.hi {
			return -1
		}
		return 1
	case i.lo != j.lo:
		if i.lo < j.lo {
			return -1
		}
		return 1
	}
	return 0
}

// Uint64 narrows the magnitude to 64 bits. It reports no value rather
// than truncating when the magnitude is out of range.
func (i Integer) Uint64() (uint64, bool) {
	if i.hi != 0 {
		return 0, false
	}
	return i.lo, true
}

// Uint32 narrows the magnitude to 32 bits.
func (i Integer) Uint32() (uint32, bool) {
	if i.hi != 0 || i.lo > math.MaxUint32 {
		return 0, false
	}
	return uint32(i.lo), true
}

// Uint16 narrows the magnitude to 16 bits.
func (i Integer) Uint16() (uint16, bool) {
	if i.hi != 0 || i.lo > math.MaxUint16 {
		return 0, false
	}
	return uint16(i.lo), true
}

// Uint8 narrows the magnitude to 8 bits.
func (i Integer) Uint8() (uint8, bool) {
	if i.hi != 0 || i.lo > math.MaxUint8 {
		return 0, false
	}
	return uint8(i.lo), true
}

// pow19 is the largest power of ten fitting in a uint64 word.
const pow19 = 10_000_000_000_000_000_000

// divmod1e19 divides i by 10^19 and returns the quotient and remainder.
func (i Integer) divmod1e19() (Integer, uint64) {
	qhi := i.hi / pow19
	rem := i.hi % pow19
	qlo, r := bits.Div64(rem, i.lo, pow19)
	return Integer{hi: qhi, lo: qlo}, r
}

// Append appends the decimal digits of i to dst and returns the
// extended buffer.
func (i Integer) Append(dst []byte) []byte {
	if i.hi == 0 {
		return strconv.AppendUint(dst, i.lo, 10)
	}
	// The magnitude has at most 39 digits: a leading group plus up to
	// two full 19-digit groups.
	var groups [2]uint64
	n := 0
	for i.hi != 0 {
		var r uint64
		i, r = i.divmod1e19()
		groups[n] = r
		n++
	}
	dst = strconv.AppendUint(dst, i.lo, 10)
	for n > 0 {
		n--
		dst = appendPadded19(dst, groups[n])
	}
	return dst
}

func (i Integer) String() string {
	return string(i.Append(nil))
}

func appendPadded19(dst []byte, v uint64) []byte {
	var buf [19]byte
	for j := 18; j >= 0; j-- {
		buf[j] = byte('0' + v%10)
		v /= 10
	}
	return append(dst, buf[:]...)
}
