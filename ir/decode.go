package ir

import (
	rec "github.com/recfmt/go-rec"
	"github.com/recfmt/go-rec/model"
	"github.com/recfmt/go-rec/num"
)

// Decode builds a Value from a read-callback stream with no prior
// knowledge of the source's shape. Enum variants cannot be recovered
// schemalessly and fail with a message error; this is a permanent
// property of schemaless decoding, not a missing feature.
func Decode(r model.Reader) (Value, error) {
	var b builder
	if err := r.ReadAny(&b); err != nil {
		return Value{}, err
	}
	return b.out, nil
}

// builder is the schemaless Visitor: every visit call maps to the
// matching Value shape.
type builder struct {
	out Value
}

func (b *builder) VisitBool(v bool) error {
	b.out = FromBool(v)
	return nil
}

func (b *builder) VisitInt(v int64) error {
	b.out = FromInt(v)
	return nil
}

func (b *builder) VisitInt128(sign num.Sign, mag num.Integer) error {
	b.out = FromSigned(sign, mag)
	return nil
}

func (b *builder) VisitUint(v uint64) error {
	b.out = FromUint(v)
	return nil
}

func (b *builder) VisitUint128(mag num.Integer) error {
	b.out = FromUnsigned(mag)
	return nil
}

func (b *builder) VisitFloat(v float64) error {
	b.out = FromFloat(v)
	return nil
}

func (b *builder) VisitChar(v rune) error {
	b.out = FromChar(v)
	return nil
}

func (b *builder) VisitString(v string) error {
	b.out = FromString(v)
	return nil
}

func (b *builder) VisitBytes(v []byte) error {
	b.out = FromBytes(v)
	return nil
}

func (b *builder) VisitNone() error {
	b.out = None()
	return nil
}

func (b *builder) VisitSome(r model.Reader) error {
	inner, err := Decode(r)
	if err != nil {
		return err
	}
	b.out = Some(inner)
	return nil
}

func (b *builder) VisitUnit() error {
	b.out = Unit()
	return nil
}

func (b *builder) VisitNewtype(r model.Reader) error {
	inner, err := Decode(r)
	if err != nil {
		return err
	}
	// No name is available schemalessly; the wrapper stays anonymous.
	b.out = FromStruct(&Struct{Fields: Unnamed(inner)})
	return nil
}

func (b *builder) VisitSeq(seq model.SeqReader) error {
	var arr []Value
	if n := seq.SizeHint(); n > 0 {
		arr = make([]Value, 0, n)
	}
	for {
		var el builder
		more, err := seq.Next(&el)
		if err != nil {
			return err
		}
		if !more {
			break
		}
		arr = append(arr, el.out)
	}
	b.out = FromSlice(arr)
	return nil
}

func (b *builder) VisitMap(mr model.MapReader) error {
	m := NewMap(mr.SizeHint())
	for {
		var k builder
		more, err := mr.NextKey(&k)
		if err != nil {
			return err
		}
		if !more {
			break
		}
		var v builder
		if err := mr.NextValue(&v); err != nil {
			return err
		}
		m.Insert(k.out, v.out)
	}
	b.out = FromMap(m)
	return nil
}

func (b *builder) VisitEnum(model.EnumReader) error {
	return rec.NewError("cannot decode an enum without knowing its shape")
}
