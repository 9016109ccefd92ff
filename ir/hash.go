package ir

import (
	"encoding/binary"
	"hash/maphash"
)

// The seed is shared so equal values hash identically for the lifetime
// of the process.
var hashSeed = maphash.MakeSeed()

// Hash returns a structural 64-bit hash of the value, consistent with
// Equal: equal values hash identically within one process. Floats hash
// by bit pattern; map and field insertion order contributes.
func (v Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	v.hashInto(&h)
	return h.Sum64()
}

func (v Value) hashInto(h *maphash.Hash) {
	h.WriteByte(byte(v.Kind))
	switch v.Kind {
	case StructKind:
		s := v.rec()
		hashLen(h, len(s.Name))
		h.WriteString(s.Name)
		if s.Fields == nil {
			h.WriteByte(0)
			return
		}
		f := s.Fields
		if f.Named {
			h.WriteByte(2)
			hashLen(h, len(f.Values))
			for i, name := range f.Names {
				hashLen(h, len(name))
				h.WriteString(name)
				f.Values[i].hashInto(h)
			}
		} else {
			h.WriteByte(1)
			hashLen(h, len(f.Values))
			for _, fv := range f.Values {
				fv.hashInto(h)
			}
		}
	case MapKind:
		hashLen(h, v.Map.Len())
		for i := 0; i < v.Map.Len(); i++ {
			k, val := v.Map.At(i)
			k.hashInto(h)
			val.hashInto(h)
		}
	case ArrayKind:
		hashLen(h, len(v.Array))
		for _, el := range v.Array {
			el.hashInto(h)
		}
	case StringKind:
		h.WriteString(v.String)
	case BytesKind:
		h.Write(v.Bytes)
	case BoolKind:
		if v.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case SignedKind:
		h.WriteByte(byte(v.Sign))
		hashInteger(h, v)
	case UnsignedKind:
		hashInteger(h, v)
	case FloatKind:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], v.Float.Bits())
		h.Write(b[:])
	case CharKind:
		var b [4]byte
		binary.LittleEndian.PutUint32(b[:], uint32(v.Char))
		h.Write(b[:])
	}
}

func hashInteger(h *maphash.Hash, v Value) {
	var b [16]byte
	hi, lo := v.Int.Parts()
	binary.LittleEndian.PutUint64(b[:8], lo)
	binary.LittleEndian.PutUint64(b[8:], hi)
	h.Write(b[:])
}

func hashLen(h *maphash.Hash, n int) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(n))
	h.Write(b[:])
}
