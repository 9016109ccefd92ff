package model

import "github.com/recfmt/go-rec/num"

// Reader produces one value by driving a Visitor.
type Reader interface {
	ReadAny(v Visitor) error
}

// ReaderFunc adapts a function to the Reader interface.
type ReaderFunc func(v Visitor) error

func (f ReaderFunc) ReadAny(v Visitor) error {
	return f(v)
}

// Visitor absorbs read callbacks. Implementations keep the value they
// build internally; each visit call delivers one complete value.
type Visitor interface {
	VisitBool(v bool) error
	VisitInt(v int64) error
	VisitInt128(sign num.Sign, mag num.Integer) error
	VisitUint(v uint64) error
	VisitUint128(mag num.Integer) error
	VisitFloat(v float64) error
	VisitChar(v rune) error
	VisitString(v string) error
	VisitBytes(v []byte) error

	VisitNone() error
	VisitSome(r Reader) error
	VisitUnit() error

	// VisitNewtype wraps a single inner value. No name is available in
	// a schemaless context.
	VisitNewtype(r Reader) error

	VisitSeq(seq SeqReader) error
	VisitMap(m MapReader) error

	// VisitEnum reports an enum variant. A schemaless consumer cannot
	// recover the variant's shape and must reject it.
	VisitEnum(e EnumReader) error
}

// SeqReader yields the elements of a sequence.
type SeqReader interface {
	// SizeHint is the number of remaining elements, or -1 when
	// unknown.
	SizeHint() int
	// Next feeds the next element into v and reports true, or reports
	// false without touching v when the sequence is exhausted.
	Next(v Visitor) (bool, error)
}

// MapReader yields the entries of a map in order. NextValue must be
// called exactly once after every successful NextKey.
type MapReader interface {
	SizeHint() int
	NextKey(v Visitor) (bool, error)
	NextValue(v Visitor) error
}

// EnumReader exposes an enum variant encountered by a Reader.
type EnumReader interface {
	Variant() (string, error)
}
