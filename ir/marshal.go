package ir

import (
	"github.com/recfmt/go-rec/model"
)

// MarshalRec replays the value into a Writer, so a tree can be
// rendered or re-transcoded like any other structured source.
func (v Value) MarshalRec(w model.Writer) error {
	switch v.Kind {
	case BoolKind:
		return w.Bool(v.Bool)
	case SignedKind:
		return w.Int128(v.Sign, v.Int)
	case UnsignedKind:
		return w.Uint128(v.Int)
	case FloatKind:
		return w.Float(v.Float.AsF64())
	case CharKind:
		return w.Char(v.Char)
	case StringKind:
		return w.String(v.String)
	case BytesKind:
		return w.Bytes(v.Bytes)
	case ArrayKind:
		if err := w.BeginSeq(len(v.Array)); err != nil {
			return err
		}
		for _, el := range v.Array {
			if err := w.Element(el); err != nil {
				return err
			}
		}
		return w.EndSeq()
	case MapKind:
		if err := w.BeginMap(v.Map.Len()); err != nil {
			return err
		}
		for i := 0; i < v.Map.Len(); i++ {
			k, val := v.Map.At(i)
			if err := w.Entry(k, val); err != nil {
				return err
			}
		}
		return w.EndMap()
	case StructKind:
		return v.rec().marshal(w)
	}
	return nil
}

func (s *Struct) marshal(w model.Writer) error {
	switch {
	case s.Fields == nil:
		if s.Name == "" {
			return w.Unit()
		}
		return w.UnitStruct(s.Name)
	case s.Fields.Named:
		if err := w.BeginStruct(s.Name, s.Fields.Len()); err != nil {
			return err
		}
		for i, name := range s.Fields.Names {
			if err := w.Field(name, s.Fields.Values[i]); err != nil {
				return err
			}
		}
		return w.EndStruct()
	case s.Fields.Len() == 1:
		// Single-value wrappers (Some, newtypes) keep their compact
		// one-line shape.
		return w.NewtypeVariant("", s.Name, s.Fields.Values[0])
	default:
		if err := w.BeginTuple(s.Name, s.Fields.Len()); err != nil {
			return err
		}
		for _, fv := range s.Fields.Values {
			if err := w.TupleElement(fv); err != nil {
				return err
			}
		}
		return w.EndTuple()
	}
}
