package ir

import (
	"github.com/recfmt/go-rec/model"
)

// ReadAny replays the value as a read-callback stream, so a tree can
// feed any Visitor. Record shapes map to their nearest schemaless
// callbacks: Some/None become optional visits, a single unnamed field
// becomes a newtype visit, wider unnamed field lists replay as
// sequences, named fields replay as a map keyed by field-name strings,
// and unit-struct names are dropped. Shapes a schemaless stream can
// express round-trip exactly; the rest degrade the same way any
// schemaless consumer would see them.
func (v Value) ReadAny(vis model.Visitor) error {
	switch v.Kind {
	case BoolKind:
		return vis.VisitBool(v.Bool)
	case SignedKind:
		if i, ok := v.AsI64(); ok {
			return vis.VisitInt(i)
		}
		return vis.VisitInt128(v.Sign, v.Int)
	case UnsignedKind:
		if u, ok := v.AsU64(); ok {
			return vis.VisitUint(u)
		}
		return vis.VisitUint128(v.Int)
	case FloatKind:
		return vis.VisitFloat(v.Float.AsF64())
	case CharKind:
		return vis.VisitChar(v.Char)
	case StringKind:
		return vis.VisitString(v.String)
	case BytesKind:
		return vis.VisitBytes(v.Bytes)
	case ArrayKind:
		return vis.VisitSeq(&arrayReader{rest: v.Array})
	case MapKind:
		return vis.VisitMap(&mapReader{m: v.Map})
	case StructKind:
		return v.rec().readAny(vis)
	}
	return nil
}

func (s *Struct) readAny(vis model.Visitor) error {
	switch {
	case s.Fields == nil:
		if s.Name == "None" {
			return vis.VisitNone()
		}
		return vis.VisitUnit()
	case s.Name == "Some" && !s.Fields.Named && s.Fields.Len() == 1:
		return vis.VisitSome(s.Fields.Values[0])
	case s.Fields.Named:
		return vis.VisitMap(&fieldsReader{f: s.Fields})
	case s.Name == "" && s.Fields.Len() == 1:
		return vis.VisitNewtype(s.Fields.Values[0])
	default:
		return vis.VisitSeq(&arrayReader{rest: s.Fields.Values})
	}
}

type arrayReader struct {
	rest []Value
}

func (r *arrayReader) SizeHint() int {
	return len(r.rest)
}

func (r *arrayReader) Next(v model.Visitor) (bool, error) {
	if len(r.rest) == 0 {
		return false, nil
	}
	el := r.rest[0]
	r.rest = r.rest[1:]
	return true, el.ReadAny(v)
}

type mapReader struct {
	m *Map
	i int
}

func (r *mapReader) SizeHint() int {
	return r.m.Len() - r.i
}

func (r *mapReader) NextKey(v model.Visitor) (bool, error) {
	if r.i >= r.m.Len() {
		return false, nil
	}
	k, _ := r.m.At(r.i)
	return true, k.ReadAny(v)
}

func (r *mapReader) NextValue(v model.Visitor) error {
	_, val := r.m.At(r.i)
	r.i++
	return val.ReadAny(v)
}

type fieldsReader struct {
	f *Fields
	i int
}

func (r *fieldsReader) SizeHint() int {
	return r.f.Len() - r.i
}

func (r *fieldsReader) NextKey(v model.Visitor) (bool, error) {
	if r.i >= r.f.Len() {
		return false, nil
	}
	return true, v.VisitString(r.f.Names[r.i])
}

func (r *fieldsReader) NextValue(v model.Visitor) error {
	val := r.f.Values[r.i]
	r.i++
	return val.ReadAny(v)
}
