package model

import "github.com/recfmt/go-rec/num"

// Marshaler is implemented by types that can describe themselves to a
// Writer.
type Marshaler interface {
	MarshalRec(w Writer) error
}

// MarshalerFunc adapts a function to the Marshaler interface.
type MarshalerFunc func(w Writer) error

func (f MarshalerFunc) MarshalRec(w Writer) error {
	return f(w)
}

// Writer receives one value as a series of calls. Primitive calls
// stand alone; compound calls come in begin/end pairs with the
// container's members in between. Child values arrive as Marshalers
// and recurse through the same Writer (or a fresh one, at the
// implementation's choice).
//
// Any error aborts the value: callers stop immediately and propagate
// it, with no retry and no rollback of side effects already performed.
type Writer interface {
	Bool(v bool) error
	Int(v int64) error
	Int128(sign num.Sign, mag num.Integer) error
	Uint(v uint64) error
	Uint128(mag num.Integer) error
	Float(v float64) error
	Char(v rune) error
	String(v string) error
	Bytes(v []byte) error

	// None and Some carry optional values.
	None() error
	Some(v Marshaler) error

	// Unit is the empty value (); UnitStruct and UnitVariant are
	// fieldless records known by name.
	Unit() error
	UnitStruct(name string) error
	UnitVariant(name, variant string) error

	// NewtypeStruct is a transparent single-value wrapper; writers
	// discard the name. NewtypeVariant keeps the variant name around
	// its single value.
	NewtypeStruct(name string, v Marshaler) error
	NewtypeVariant(name, variant string, v Marshaler) error

	// BeginSeq opens a sequence; sizeHint is -1 when unknown. Each
	// element goes through Element; EndSeq closes the sequence.
	BeginSeq(sizeHint int) error
	Element(v Marshaler) error
	EndSeq() error

	// BeginTuple opens a tuple (name empty) or tuple struct. Closed by
	// EndTuple. BeginTupleVariant opens a tuple variant and is also
	// closed by EndTuple.
	BeginTuple(name string, sizeHint int) error
	BeginTupleVariant(name, variant string, sizeHint int) error
	TupleElement(v Marshaler) error
	EndTuple() error

	// BeginMap opens a map. Key and Value may arrive as two separate
	// calls; every Key must be followed by exactly one Value before
	// the next Key or EndMap. Entry is the one-call form.
	BeginMap(sizeHint int) error
	Key(k Marshaler) error
	Value(v Marshaler) error
	Entry(k, v Marshaler) error
	EndMap() error

	// BeginStruct opens a named record with named fields; closed by
	// EndStruct. BeginStructVariant opens a struct variant and is also
	// closed by EndStruct.
	BeginStruct(name string, sizeHint int) error
	BeginStructVariant(name, variant string, sizeHint int) error
	Field(name string, v Marshaler) error
	EndStruct() error
}
