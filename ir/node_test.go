package ir

import (
	"math"
	"testing"

	"github.com/recfmt/go-rec/num"
)

func TestZeroValueIsUnit(t *testing.T) {
	var v Value
	if !Equal(v, Unit()) {
		t.Error("zero Value is not the unit value")
	}
	s, ok := v.AsStruct()
	if !ok {
		t.Fatal("AsStruct() failed on unit")
	}
	if s.Name != "" || s.Fields != nil {
		t.Errorf("unit struct = %+v, want empty", s)
	}
}

func TestBuildersAndAccessors(t *testing.T) {
	if b, ok := FromBool(true).AsBool(); !ok || !b {
		t.Error("Bool round trip failed")
	}
	if s, ok := FromString("hi").AsStr(); !ok || s != "hi" {
		t.Error("String round trip failed")
	}
	if c, ok := FromChar('x').AsChar(); !ok || c != 'x' {
		t.Error("Char round trip failed")
	}
	if b, ok := FromBytes([]byte{1, 2}).AsBytes(); !ok || len(b) != 2 {
		t.Error("Bytes round trip failed")
	}
	if f, ok := FromFloat(0.5).AsF64(); !ok || f != 0.5 {
		t.Error("Float round trip failed")
	}
	if a, ok := FromSlice([]Value{FromInt(1)}).AsArray(); !ok || len(a) != 1 {
		t.Error("Array round trip failed")
	}
}

func TestIntAccessors(t *testing.T) {
	tests := []struct {
		name  string
		v     Value
		i64   int64
		i64ok bool
		u64   uint64
		u64ok bool
	}{
		{"small signed", FromInt(5), 5, true, 5, true},
		{"negative", FromInt(-5), -5, true, 0, false},
		{"min int64", FromInt(math.MinInt64), math.MinInt64, true, 0, false},
		{"max uint64", FromUint(math.MaxUint64), 0, false, math.MaxUint64, true},
		{"two words", FromUnsigned(num.U128(1, 0)), 0, false, 0, false},
		{"negative two words",
			Value{Kind: SignedKind, Sign: num.Negative, Int: num.U128(1, 0)},
			0, false, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			i, ok := tt.v.AsI64()
			if ok != tt.i64ok || i != tt.i64 {
				t.Errorf("AsI64() = (%d, %v), want (%d, %v)", i, ok, tt.i64, tt.i64ok)
			}
			u, ok := tt.v.AsU64()
			if ok != tt.u64ok || u != tt.u64 {
				t.Errorf("AsU64() = (%d, %v), want (%d, %v)", u, ok, tt.u64, tt.u64ok)
			}
		})
	}
}

func TestNarrowAccessors(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		i32  bool
		i16  bool
		i8   bool
		u32  bool
		u16  bool
		u8   bool
	}{
		{"zero", FromInt(0), true, true, true, true, true, true},
		{"max int8", FromInt(127), true, true, true, true, true, true},
		{"min int8", FromInt(-128), true, true, true, false, false, false},
		{"int8 overflow", FromInt(128), true, true, false, true, true, true},
		{"int8 underflow", FromInt(-129), true, true, false, false, false, false},
		{"max uint8", FromUint(255), true, true, false, true, true, true},
		{"uint8 overflow", FromUint(256), true, true, false, true, true, false},
		{"max int16", FromInt(math.MaxInt16), true, true, false, true, true, false},
		{"int16 overflow", FromInt(math.MaxInt16 + 1), true, false, false, true, true, false},
		{"min int16", FromInt(math.MinInt16), true, true, false, false, false, false},
		{"int16 underflow", FromInt(math.MinInt16 - 1), true, false, false, false, false, false},
		{"max uint16", FromUint(math.MaxUint16), true, false, false, true, true, false},
		{"uint16 overflow", FromUint(math.MaxUint16 + 1), true, false, false, true, false, false},
		{"max int32", FromInt(math.MaxInt32), true, false, false, true, false, false},
		{"int32 overflow", FromInt(math.MaxInt32 + 1), false, false, false, true, false, false},
		{"min int32", FromInt(math.MinInt32), true, false, false, false, false, false},
		{"int32 underflow", FromInt(math.MinInt32 - 1), false, false, false, false, false, false},
		{"max uint32", FromUint(math.MaxUint32), false, false, false, true, false, false},
		{"uint32 overflow", FromUint(math.MaxUint32 + 1), false, false, false, false, false, false},
		{"not an integer", FromString("5"), false, false, false, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := tt.v.AsI32(); ok != tt.i32 {
				t.Errorf("AsI32() ok = %v, want %v", ok, tt.i32)
			}
			if _, ok := tt.v.AsI16(); ok != tt.i16 {
				t.Errorf("AsI16() ok = %v, want %v", ok, tt.i16)
			}
			if _, ok := tt.v.AsI8(); ok != tt.i8 {
				t.Errorf("AsI8() ok = %v, want %v", ok, tt.i8)
			}
			if _, ok := tt.v.AsU32(); ok != tt.u32 {
				t.Errorf("AsU32() ok = %v, want %v", ok, tt.u32)
			}
			if _, ok := tt.v.AsU16(); ok != tt.u16 {
				t.Errorf("AsU16() ok = %v, want %v", ok, tt.u16)
			}
			if _, ok := tt.v.AsU8(); ok != tt.u8 {
				t.Errorf("AsU8() ok = %v, want %v", ok, tt.u8)
			}
		})
	}

	if i, ok := FromInt(-100).AsI8(); !ok || i != -100 {
		t.Errorf("AsI8() = (%d, %v), want (-100, true)", i, ok)
	}
	if u, ok := FromUint(40000).AsU16(); !ok || u != 40000 {
		t.Errorf("AsU16() = (%d, %v), want (40000, true)", u, ok)
	}
}

func TestFieldsSet(t *testing.T) {
	f := NamedFields()
	f.Set("a", FromInt(1))
	f.Set("b", FromInt(2))
	f.Set("a", FromInt(3))

	if f.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", f.Len())
	}
	// Overwrite keeps the original position.
	if f.Names[0] != "a" || f.Names[1] != "b" {
		t.Errorf("Names = %v, want [a b]", f.Names)
	}
	v, ok := f.Get("a")
	if !ok || !Equal(v, FromInt(3)) {
		t.Errorf("Get(a) = %v, want +3", v)
	}
	if _, ok := f.Get("missing"); ok {
		t.Error("Get(missing) reported a value")
	}
}

func TestOptionShapes(t *testing.T) {
	n, ok := None().AsStruct()
	if !ok || n.Name != "None" || n.Fields != nil {
		t.Errorf("None() = %+v", n)
	}
	s, ok := Some(FromInt(5)).AsStruct()
	if !ok || s.Name != "Some" || s.Fields.Named || s.Fields.Len() != 1 {
		t.Errorf("Some() = %+v", s)
	}
	if !Equal(s.Fields.Values[0], FromInt(5)) {
		t.Error("Some payload lost")
	}
}

func TestTuple(t *testing.T) {
	v := Tuple(FromInt(1), FromString("x"))
	s, ok := v.AsStruct()
	if !ok || s.Name != "" || s.Fields.Named || s.Fields.Len() != 2 {
		t.Errorf("Tuple() = %+v", s)
	}
}
