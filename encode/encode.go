package encode

import (
	"io"
	"strings"

	"github.com/recfmt/go-rec/model"
	"github.com/recfmt/go-rec/num"
)

// Serializer drives a Formatter from the model.Writer protocol.
type Serializer struct {
	w io.Writer
	f *Formatter
}

var _ model.Writer = (*Serializer)(nil)

// NewSerializer returns a Serializer writing to w, configured by opts.
func NewSerializer(w io.Writer, opts ...Option) *Serializer {
	return &Serializer{w: w, f: NewFormatter(opts...)}
}

// Encode renders src to w.
func Encode(src model.Marshaler, w io.Writer, opts ...Option) error {
	return src.MarshalRec(NewSerializer(w, opts...))
}

// Marshal renders src to a string.
func Marshal(src model.Marshaler, opts ...Option) (string, error) {
	var sb strings.Builder
	if err := Encode(src, &sb, opts...); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// ToString renders src to a string.
func ToString(src model.Marshaler, opts ...Option) (string, error) {
	return Marshal(src, opts...)
}

func (s *Serializer) Bool(v bool) error {
	return s.f.writeBool(s.w, v)
}

func (s *Serializer) Int(v int64) error {
	sign, mag := num.I64(v)
	return s.f.writeSigned(s.w, sign, mag)
}

func (s *Serializer) Int128(sign num.Sign, mag num.Integer) error {
	return s.f.writeSigned(s.w, sign, mag)
}

func (s *Serializer) Uint(v uint64) error {
	return s.f.writeUnsigned(s.w, num.U64(v))
}

func (s *Serializer) Uint128(mag num.Integer) error {
	return s.f.writeUnsigned(s.w, mag)
}

func (s *Serializer) Float(v float64) error {
	return s.f.writeFloat(s.w, num.F64(v))
}

func (s *Serializer) Char(v rune) error {
	return s.f.writeChar(s.w, v)
}

func (s *Serializer) String(v string) error {
	return s.f.writeStr(s.w, v)
}

func (s *Serializer) Bytes(v []byte) error {
	return s.f.writeBytes(s.w, v)
}

func (s *Serializer) None() error {
	return s.f.writeUnit(s.w, "None")
}

func (s *Serializer) Some(v model.Marshaler) error {
	return s.NewtypeVariant("Option", "Some", v)
}

func (s *Serializer) Unit() error {
	return s.f.writeUnit(s.w, "")
}

func (s *Serializer) UnitStruct(name string) error {
	return s.f.writeUnit(s.w, name)
}

func (s *Serializer) UnitVariant(name, variant string) error {
	return s.f.writeUnit(s.w, variant)
}

// NewtypeStruct is transparent: only the inner value appears.
func (s *Serializer) NewtypeStruct(name string, v model.Marshaler) error {
	return v.MarshalRec(s)
}

// NewtypeVariant renders inline as Variant(value), regardless of the
// depth limit.
func (s *Serializer) NewtypeVariant(name, variant string, v model.Marshaler) error {
	if err := s.f.beginNewtype(s.w, variant); err != nil {
		return err
	}
	if err := v.MarshalRec(s); err != nil {
		return err
	}
	return s.f.endNewtype(s.w)
}

func (s *Serializer) BeginSeq(sizeHint int) error {
	return s.f.beginArray(s.w)
}

func (s *Serializer) Element(v model.Marshaler) error {
	if err := s.f.beginArrayMember(s.w); err != nil {
		return err
	}
	if err := v.MarshalRec(s); err != nil {
		return err
	}
	s.f.endArrayMember()
	return nil
}

func (s *Serializer) EndSeq() error {
	return s.f.endArray(s.w)
}

func (s *Serializer) BeginTuple(name string, n int) error {
	return s.f.beginStruct(s.w, name)
}

func (s *Serializer) BeginTupleVariant(name, variant string, n int) error {
	return s.f.beginStruct(s.w, variant)
}

func (s *Serializer) TupleElement(v model.Marshaler) error {
	if err := s.f.beginStructField(s.w, ""); err != nil {
		return err
	}
	if err := v.MarshalRec(s); err != nil {
		return err
	}
	s.f.endStructField()
	return nil
}

func (s *Serializer) EndTuple() error {
	return s.f.endStruct(s.w)
}

func (s *Serializer) BeginMap(sizeHint int) error {
	return s.f.beginMap(s.w)
}

func (s *Serializer) Key(k model.Marshaler) error {
	if err := s.f.beginMapKey(s.w); err != nil {
		return err
	}
	if err := k.MarshalRec(s); err != nil {
		return err
	}
	s.f.endMapKey()
	return nil
}

func (s *Serializer) Value(v model.Marshaler) error {
	if err := s.f.beginMapValue(s.w); err != nil {
		return err
	}
	if err := v.MarshalRec(s); err != nil {
		return err
	}
	s.f.endMapValue()
	return nil
}

func (s *Serializer) EndMap() error {
	return s.f.endMap(s.w)
}

func (s *Serializer) Entry(k, v model.Marshaler) error {
	if err := s.Key(k); err != nil {
		return err
	}
	return s.Value(v)
}

func (s *Serializer) BeginStruct(name string, n int) error {
	return s.f.beginStruct(s.w, name)
}

func (s *Serializer) BeginStructVariant(name, variant string, n int) error {
	return s.f.beginStruct(s.w, variant)
}

func (s *Serializer) Field(name string, v model.Marshaler) error {
	if err := s.f.beginStructField(s.w, name); err != nil {
		return err
	}
	if err := v.MarshalRec(s); err != nil {
		return err
	}
	s.f.endStructField()
	return nil
}

func (s *Serializer) EndStruct() error {
	return s.f.endStruct(s.w)
}
