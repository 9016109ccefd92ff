package ir

import (
	"fmt"
	"math"

	"github.com/recfmt/go-rec/num"
)

// Kind selects the payload of a Value.
type Kind int

const (
	StructKind Kind = iota
	MapKind
	ArrayKind
	StringKind
	BytesKind
	BoolKind
	SignedKind
	UnsignedKind
	FloatKind
	CharKind
)

func (k Kind) String() string {
	switch k {
	case StructKind:
		return "Struct"
	case MapKind:
		return "Map"
	case ArrayKind:
		return "Array"
	case StringKind:
		return "String"
	case BytesKind:
		return "Bytes"
	case BoolKind:
		return "Bool"
	case SignedKind:
		return "Signed"
	case UnsignedKind:
		return "Unsigned"
	case FloatKind:
		return "Float"
	case CharKind:
		return "Char"
	}
	return "<unknown kind>"
}

// Kinds returns all kinds in their ordering rank.
func Kinds() []Kind {
	return []Kind{
		StructKind,
		MapKind,
		ArrayKind,
		StringKind,
		BytesKind,
		BoolKind,
		SignedKind,
		UnsignedKind,
		FloatKind,
		CharKind,
	}
}

func (k Kind) IsLeaf() bool {
	switch k {
	case StructKind, MapKind, ArrayKind:
		return false
	}
	return true
}

// Value is a node in a dynamic document tree. Kind selects which
// payload field is meaningful; the rest stay zero. The zero Value is
// the unit value ().
type Value struct {
	Kind Kind

	Struct *Struct // StructKind; nil means unit
	Map    *Map    // MapKind
	Array  []Value // ArrayKind

	String string      // StringKind
	Bytes  []byte      // BytesKind
	Bool   bool        // BoolKind
	Sign   num.Sign    // SignedKind
	Int    num.Integer // SignedKind and UnsignedKind magnitude
	Float  num.Float   // FloatKind
	Char   rune        // CharKind
}

// Struct is the record-shaped payload. It represents every record
// concept of the data model: unit, unit struct, unit variant, newtype,
// tuple, tuple struct/variant, struct and struct variant. An empty
// Name means the record is anonymous; nil Fields means it has none.
// Both empty is the unit value ().
type Struct struct {
	Name   string
	Fields *Fields
}

// Fields is the payload of a Struct: either named (an ordered
// name→Value association) or unnamed (an ordered list). Never both.
// When Named is set, Names runs parallel to Values.
type Fields struct {
	Named  bool
	Names  []string
	Values []Value
}

// Unnamed builds unnamed fields from values.
func Unnamed(values ...Value) *Fields {
	return &Fields{Values: values}
}

// NamedFields builds an empty named field set; populate it with Set.
func NamedFields() *Fields {
	return &Fields{Named: true}
}

// Set inserts or overwrites the field called name. Insertion order is
// kept; overwriting keeps the original position.
func (f *Fields) Set(name string, v Value) *Fields {
	for i, n := range f.Names {
		if n == name {
			f.Values[i] = v
			return f
		}
	}
	f.Names = append(f.Names, name)
	f.Values = append(f.Values, v)
	return f
}

// Get returns the field called name.
func (f *Fields) Get(name string) (Value, bool) {
	for i, n := range f.Names {
		if n == name {
			return f.Values[i], true
		}
	}
	return Value{}, false
}

func (f *Fields) Len() int {
	return len(f.Values)
}

// Builders.

func FromBool(v bool) Value {
	return Value{Kind: BoolKind, Bool: v}
}

func FromInt(v int64) Value {
	sign, mag := num.I64(v)
	return Value{Kind: SignedKind, Sign: sign, Int: mag}
}

func FromSigned(sign num.Sign, mag num.Integer) Value {
	return Value{Kind: SignedKind, Sign: sign, Int: mag}
}

func FromUint(v uint64) Value {
	return Value{Kind: UnsignedKind, Int: num.U64(v)}
}

func FromUnsigned(mag num.Integer) Value {
	return Value{Kind: UnsignedKind, Int: mag}
}

func FromFloat(v float64) Value {
	return Value{Kind: FloatKind, Float: num.F64(v)}
}

func FromChar(r rune) Value {
	return Value{Kind: CharKind, Char: r}
}

func FromString(s string) Value {
	return Value{Kind: StringKind, String: s}
}

func FromBytes(b []byte) Value {
	return Value{Kind: BytesKind, Bytes: b}
}

func FromSlice(vs []Value) Value {
	return Value{Kind: ArrayKind, Array: vs}
}

func FromMap(m *Map) Value {
	return Value{Kind: MapKind, Map: m}
}

func FromStruct(s *Struct) Value {
	return Value{Kind: StructKind, Struct: s}
}

// Unit is the unit value ().
func Unit() Value {
	return Value{Kind: StructKind}
}

// None is the empty optional.
func None() Value {
	return FromStruct(&Struct{Name: "None"})
}

// Some wraps v as a present optional.
func Some(v Value) Value {
	return FromStruct(&Struct{Name: "Some", Fields: Unnamed(v)})
}

// Tuple builds an anonymous record with unnamed fields.
func Tuple(vs ...Value) Value {
	return FromStruct(&Struct{Fields: Unnamed(vs...)})
}

var unitStruct Struct

// rec returns the Struct payload, mapping nil to the unit record.
func (v Value) rec() *Struct {
	if v.Struct == nil {
		return &unitStruct
	}
	return v.Struct
}

// Accessors. Each reports false when the value has another kind or the
// payload does not fit the requested width.

func (v Value) AsStruct() (*Struct, bool) {
	if v.Kind != StructKind {
		return nil, false
	}
	return v.rec(), true
}

func (v Value) AsMap() (*Map, bool) {
	if v.Kind != MapKind {
		return nil, false
	}
	return v.Map, true
}

func (v Value) AsArray() ([]Value, bool) {
	if v.Kind != ArrayKind {
		return nil, false
	}
	return v.Array, true
}

func (v Value) AsStr() (string, bool) {
	if v.Kind != StringKind {
		return "", false
	}
	return v.String, true
}

func (v Value) AsBytes() ([]byte, bool) {
	if v.Kind != BytesKind {
		return nil, false
	}
	return v.Bytes, true
}

func (v Value) AsBool() (bool, bool) {
	if v.Kind != BoolKind {
		return false, false
	}
	return v.Bool, true
}

func (v Value) AsChar() (rune, bool) {
	if v.Kind != CharKind {
		return 0, false
	}
	return v.Char, true
}

// AsU64 narrows a non-negative integer value to uint64.
func (v Value) AsU64() (uint64, bool) {
	switch v.Kind {
	case UnsignedKind:
		return v.Int.Uint64()
	case SignedKind:
		if v.Sign == num.Positive {
			return v.Int.Uint64()
		}
	}
	return 0, false
}

// AsI64 narrows an integer value to int64, including math.MinInt64.
func (v Value) AsI64() (int64, bool) {
	switch v.Kind {
	case UnsignedKind:
		u, ok := v.Int.Uint64()
		if !ok || u > math.MaxInt64 {
			return 0, false
		}
		return int64(u), true
	case SignedKind:
		u, ok := v.Int.Uint64()
		if !ok {
			return 0, false
		}
		if v.Sign == num.Positive {
			if u > math.MaxInt64 {
				return 0, false
			}
			return int64(u), true
		}
		switch {
		case u == 1<<63:
			return math.MinInt64, true
		case u <= math.MaxInt64:
			return -int64(u), true
		}
	}
	return 0, false
}

// AsU32 narrows a non-negative integer value to uint32.
func (v Value) AsU32() (uint32, bool) {
	u, ok := v.AsU64()
	if !ok || u > math.MaxUint32 {
		return 0, false
	}
	return uint32(u), true
}

// AsU16 narrows a non-negative integer value to uint16.
func (v Value) AsU16() (uint16, bool) {
	u, ok := v.AsU64()
	if !ok || u > math.MaxUint16 {
		return 0, false
	}
	return uint16(u), true
}

// AsU8 narrows a non-negative integer value to uint8.
func (v Value) AsU8() (uint8, bool) {
	u, ok := v.AsU64()
	if !ok || u > math.MaxUint8 {
		return 0, false
	}
	return uint8(u), true
}

// AsI32 narrows an integer value to int32.
func (v Value) AsI32() (int32, bool) {
	i, ok := v.AsI64()
	if !ok || i < math.MinInt32 || i > math.MaxInt32 {
		return 0, false
	}
	return int32(i), true
}

// AsI16 narrows an integer value to int16.
func (v Value) AsI16() (int16, bool) {
	i, ok := v.AsI64()
	if !ok || i < math.MinInt16 || i > math.MaxInt16 {
		return 0, false
	}
	return int16(i), true
}

// AsI8 narrows an integer value to int8.
func (v Value) AsI8() (int8, bool) {
	i, ok := v.AsI64()
	if !ok || i < math.MinInt8 || i > math.MaxInt8 {
		return 0, false
	}
	return int8(i), true
}

func (v Value) AsF64() (float64, bool) {
	if v.Kind != FloatKind {
		return 0, false
	}
	return v.Float.AsF64(), true
}

func (v Value) AsF32() (float32, bool) {
	if v.Kind != FloatKind {
		return 0, false
	}
	return v.Float.AsF32(), true
}

// GoString helps failed test output; the encode package renders the
// real syntax.
func (v Value) GoString() string {
	return fmt.Sprintf("ir.Value{%s}", v.Kind)
}
