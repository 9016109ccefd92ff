package num

import (
	"math"
	"strconv"
)

// Float is a 64-bit float with bit-pattern identity. Two Floats are
// the same value iff their bit patterns match, so NaN compares equal
// to itself and distinct NaN encodings stay distinct. Use Eq and Cmp;
// == on Float is IEEE comparison and does not have these properties.
type Float float64

// F64 builds a Float from a float64.
func F64(v float64) Float {
	return Float(v)
}

// F32 widens a float32 losslessly.
func F32(v float32) Float {
	return Float(float64(v))
}

// Bits returns the IEEE 754 bit pattern.
func (f Float) Bits() uint64 {
	return math.Float64bits(float64(f))
}

// Eq reports whether f and g have identical bit patterns.
func (f Float) Eq(g Float) bool {
	return f.Bits() == g.Bits()
}

// Cmp orders floats by reinterpreting the bit pattern as a signed
// 64-bit integer. The result is a total order consistent with numeric
// order for all non-NaN values; NaNs order by bit pattern.
func (f Float) Cmp(g Float) int {
	a, b := int64(f.Bits()), int64(g.Bits())
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// AsF64 returns the float64 value.
func (f Float) AsF64() float64 {
	return float64(f)
}

// AsF32 narrows to float32. Narrowing is a defined cast and never
// fails.
func (f Float) AsF32() float32 {
	return float32(f)
}

// Append appends the shortest decimal text that reparses to the exact
// bit pattern of f.
func (f Float) Append(dst []byte) []byte {
	return strconv.AppendFloat(dst, float64(f), 'g', -1, 64)
}

func (f Float) String() string {
	return string(f.Append(nil))
}
