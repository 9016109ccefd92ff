package ir

import (
	rec "github.com/recfmt/go-rec"
	"github.com/recfmt/go-rec/model"
	"github.com/recfmt/go-rec/num"
)

// ToValue transcodes an arbitrary structured source directly into a
// Value tree, with no intermediate text.
func ToValue(m model.Marshaler) (Value, error) {
	w := &valueWriter{}
	if err := m.MarshalRec(w); err != nil {
		return Value{}, err
	}
	if !w.done {
		return Value{}, rec.NewError("source produced no value")
	}
	return w.out, nil
}

// valueWriter accumulates writer calls into Value nodes. One writer
// sees at most one compound; nesting recurses through ToValue on the
// child marshalers. Misuse of the call protocol (two values to one
// writer, a map value with no pending key) is a programmer error and
// panics.
type valueWriter struct {
	out  Value
	done bool

	open    openKind
	name    string
	buf     []Value
	fields  *Fields
	entries []mapEntry
}

type openKind int

const (
	openNone openKind = iota
	openSeq
	openTuple
	openMap
	openStruct
)

type mapEntry struct {
	key    Value
	val    Value
	hasVal bool
}

func (w *valueWriter) set(v Value) {
	if w.done {
		panic("ir: transcode writer received a second value")
	}
	w.out = v
	w.done = true
}

func (w *valueWriter) begin(k openKind) {
	if w.open != openNone {
		panic("ir: transcode writer received nested begin calls")
	}
	w.open = k
}

func (w *valueWriter) end(k openKind) {
	if w.open != k {
		panic("ir: transcode writer received mismatched end call")
	}
	w.open = openNone
}

func (w *valueWriter) Bool(v bool) error {
	w.set(FromBool(v))
	return nil
}

func (w *valueWriter) Int(v int64) error {
	w.set(FromInt(v))
	return nil
}

func (w *valueWriter) Int128(sign num.Sign, mag num.Integer) error {
	w.set(FromSigned(sign, mag))
	return nil
}

func (w *valueWriter) Uint(v uint64) error {
	w.set(FromUint(v))
	return nil
}

func (w *valueWriter) Uint128(mag num.Integer) error {
	w.set(FromUnsigned(mag))
	return nil
}

func (w *valueWriter) Float(v float64) error {
	w.set(FromFloat(v))
	return nil
}

func (w *valueWriter) Char(v rune) error {
	w.set(FromChar(v))
	return nil
}

func (w *valueWriter) String(v string) error {
	w.set(FromString(v))
	return nil
}

func (w *valueWriter) Bytes(v []byte) error {
	w.set(FromBytes(v))
	return nil
}

func (w *valueWriter) None() error {
	w.set(None())
	return nil
}

func (w *valueWriter) Some(m model.Marshaler) error {
	inner, err := ToValue(m)
	if err != nil {
		return err
	}
	w.set(Some(inner))
	return nil
}

func (w *valueWriter) Unit() error {
	w.set(Unit())
	return nil
}

func (w *valueWriter) UnitStruct(name string) error {
	w.set(FromStruct(&Struct{Name: name}))
	return nil
}

func (w *valueWriter) UnitVariant(name, variant string) error {
	return w.UnitStruct(variant)
}

func (w *valueWriter) NewtypeStruct(name string, m model.Marshaler) error {
	// Transparent wrapper: the name is discarded and the inner value
	// stands in for the whole.
	inner, err := ToValue(m)
	if err != nil {
		return err
	}
	w.set(inner)
	return nil
}

func (w *valueWriter) NewtypeVariant(name, variant string, m model.Marshaler) error {
	inner, err := ToValue(m)
	if err != nil {
		return err
	}
	w.set(FromStruct(&Struct{Name: variant, Fields: Unnamed(inner)}))
	return nil
}

func (w *valueWriter) BeginSeq(sizeHint int) error {
	w.begin(openSeq)
	if sizeHint > 0 {
		w.buf = make([]Value, 0, sizeHint)
	}
	return nil
}

func (w *valueWriter) Element(m model.Marshaler) error {
	inner, err := ToValue(m)
	if err != nil {
		return err
	}
	w.buf = append(w.buf, inner)
	return nil
}

func (w *valueWriter) EndSeq() error {
	w.end(openSeq)
	buf := w.buf
	w.buf = nil
	w.set(FromSlice(buf))
	return nil
}

func (w *valueWriter) BeginTuple(name string, sizeHint int) error {
	w.begin(openTuple)
	w.name = name
	if sizeHint > 0 {
		w.buf = make([]Value, 0, sizeHint)
	}
	return nil
}

func (w *valueWriter) BeginTupleVariant(name, variant string, sizeHint int) error {
	return w.BeginTuple(variant, sizeHint)
}

func (w *valueWriter) TupleElement(m model.Marshaler) error {
	inner, err := ToValue(m)
	if err != nil {
		return err
	}
	w.buf = append(w.buf, inner)
	return nil
}

func (w *valueWriter) EndTuple() error {
	w.end(openTuple)
	buf := w.buf
	w.buf = nil
	w.set(FromStruct(&Struct{Name: w.name, Fields: &Fields{Values: buf}}))
	return nil
}

func (w *valueWriter) BeginMap(sizeHint int) error {
	w.begin(openMap)
	if sizeHint > 0 {
		w.entries = make([]mapEntry, 0, sizeHint)
	}
	return nil
}

func (w *valueWriter) Key(k model.Marshaler) error {
	inner, err := ToValue(k)
	if err != nil {
		return err
	}
	w.entries = append(w.entries, mapEntry{key: inner})
	return nil
}

func (w *valueWriter) Value(v model.Marshaler) error {
	if len(w.entries) == 0 || w.entries[len(w.entries)-1].hasVal {
		panic("ir: map value written with no pending key")
	}
	inner, err := ToValue(v)
	if err != nil {
		return err
	}
	last := &w.entries[len(w.entries)-1]
	last.val = inner
	last.hasVal = true
	return nil
}

func (w *valueWriter) Entry(k, v model.Marshaler) error {
	if err := w.Key(k); err != nil {
		return err
	}
	return w.Value(v)
}

func (w *valueWriter) EndMap() error {
	w.end(openMap)
	m := NewMap(len(w.entries))
	for i := range w.entries {
		if !w.entries[i].hasVal {
			panic("ir: map key never received a value")
		}
		m.Insert(w.entries[i].key, w.entries[i].val)
	}
	w.entries = nil
	w.set(FromMap(m))
	return nil
}

func (w *valueWriter) BeginStruct(name string, sizeHint int) error {
	w.begin(openStruct)
	w.name = name
	w.fields = NamedFields()
	return nil
}

func (w *valueWriter) BeginStructVariant(name, variant string, sizeHint int) error {
	return w.BeginStruct(variant, sizeHint)
}

func (w *valueWriter) Field(name string, v model.Marshaler) error {
	inner, err := ToValue(v)
	if err != nil {
		return err
	}
	w.fields.Set(name, inner)
	return nil
}

func (w *valueWriter) EndStruct() error {
	w.end(openStruct)
	fields := w.fields
	w.fields = nil
	w.set(FromStruct(&Struct{Name: w.name, Fields: fields}))
	return nil
}
