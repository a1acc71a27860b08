package dom

// NamedNodeMap is the de-duplicated attribute view of an element. Keys keep
// the order in which they first appear in the start tag.
// https://dom.spec.whatwg.org/#namednodemap
type NamedNodeMap struct {
	keys  []string
	attrs map[string]string
}

// NewNamedNodeMap builds the map from a raw attribute list. When a key
// repeats, the first occurrence wins.
func NewNamedNodeMap(attrs []Attr) *NamedNodeMap {
	m := &NamedNodeMap{
		keys:  make([]string, 0, len(attrs)),
		attrs: make(map[string]string, len(attrs)),
	}
	for _, a := range attrs {
		k := a.QualifiedName()
		if _, ok := m.attrs[k]; ok {
			continue
		}
		m.keys = append(m.keys, k)
		m.attrs[k] = a.Value
	}
	return m
}

func (m *NamedNodeMap) GetNamedItem(name string) (string, bool) {
	v, ok := m.attrs[name]
	return v, ok
}

// Keys returns the attribute names in first-occurrence order.
func (m *NamedNodeMap) Keys() []string {
	return append([]string(nil), m.keys...)
}

// Values returns the attribute values in the same order as Keys.
func (m *NamedNodeMap) Values() []string {
	values := make([]string, len(m.keys))
	for i, k := range m.keys {
		values[i] = m.attrs[k]
	}
	return values
}

// Map returns a copy of the name to value mapping.
func (m *NamedNodeMap) Map() map[string]string {
	out := make(map[string]string, len(m.attrs))
	for k, v := range m.attrs {
		out[k] = v
	}
	return out
}
