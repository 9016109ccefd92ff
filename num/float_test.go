package num

import (
	"math"
	"testing"
)

func TestFloatEq(t *testing.T) {
	nan := F64(math.NaN())
	if !nan.Eq(nan) {
		t.Error("NaN is not Eq to itself")
	}
	// Distinct NaN payloads are distinct values.
	other := F64(math.Float64frombits(nan.Bits() | 1))
	if nan.Eq(other) {
		t.Error("NaNs with different payloads compared Eq")
	}
	if !F64(0.5).Eq(F64(0.5)) {
		t.Error("equal floats not Eq")
	}
	if F64(0.0).Eq(F64(math.Copysign(0, -1))) {
		t.Error("+0 and -0 compared Eq")
	}
}

func TestFloatCmp(t *testing.T) {
	tests := []struct {
		name string
		a, b Float
		want int
	}{
		{"equal", F64(1.5), F64(1.5), 0},
		{"positive order", F64(1.0), F64(2.0), -1},
		{"sign order on bits", F64(1.0), F64(-1.0), 1},
		// Negative bit patterns grow with magnitude, so the bit-cast
		// order ranks -1.0 below -2.0.
		{"negative bits order", F64(-1.0), F64(-2.0), -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cmp(tt.b); got != tt.want {
				t.Errorf("Cmp() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFloatString(t *testing.T) {
	tests := []struct {
		name string
		in   Float
		want string
	}{
		{"half", F64(0.5), "0.5"},
		{"negative", F64(-2.25), "-2.25"},
		{"integral", F64(3), "3"},
		{"tiny", F64(1e-10), "1e-10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestF32(t *testing.T) {
	f := F32(0.5)
	if f.AsF32() != 0.5 {
		t.Errorf("AsF32() = %v, want 0.5", f.AsF32())
	}
	if f.AsF64() != 0.5 {
		t.Errorf("AsF64() = %v, want 0.5", f.AsF64())
	}
}
