// Package num holds the numeric model shared by the value tree and the
// encoders: a sign carried apart from its magnitude, an unsigned
// 128-bit integer magnitude, and a float compared by bit pattern.
//
// Keeping sign and magnitude separate makes the full symmetric range of
// signed integers representable, including the most negative value of
// each width, whose magnitude overflows its own signed representation.
package num
