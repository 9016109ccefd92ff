package ir

// Map is an insertion-ordered association of Values. Order is
// semantically significant: two maps holding the same entries in a
// different insertion order are different values.
type Map struct {
	keys []Value
	vals []Value
}

// NewMap returns an empty map with room for sizeHint entries. A
// negative hint means unknown.
func NewMap(sizeHint int) *Map {
	if sizeHint <= 0 {
		return &Map{}
	}
	return &Map{
		keys: make([]Value, 0, sizeHint),
		vals: make([]Value, 0, sizeHint),
	}
}

func (m *Map) Len() int {
	return len(m.keys)
}

// Insert adds or overwrites the entry for k. Overwriting keeps the
// key's original position (last value wins).
func (m *Map) Insert(k, v Value) {
	for i := range m.keys {
		if Equal(m.keys[i], k) {
			m.vals[i] = v
			return
		}
	}
	m.keys = append(m.keys, k)
	m.vals = append(m.vals, v)
}

// Get returns the value stored under k.
func (m *Map) Get(k Value) (Value, bool) {
	for i := range m.keys {
		if Equal(m.keys[i], k) {
			return m.vals[i], true
		}
	}
	return Value{}, false
}

// At returns the i-th entry in insertion order.
func (m *Map) At(i int) (k, v Value) {
	return m.keys[i], m.vals[i]
}
