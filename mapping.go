package styling

import (
	"strings"

	"github.com/npillmayer/styling/style"
)

// Mapping is an ordered collection of style directives: string keys mapped
// to typed values, iterated in insertion order. Setting a key twice keeps
// the position of the first occurrence; the last value wins.
//
// A Mapping produced by Parse or returned by ParseAndApply should be
// treated as immutable by callers.
type Mapping struct {
	keys []string
	m    map[string]style.Value
}

// NewMapping creates an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{m: make(map[string]style.Value)}
}

// Set sets the value for a key, overwriting an existing value. The key
// keeps its original position if already present.
func (mp *Mapping) Set(key string, v style.Value) {
	if _, exists := mp.m[key]; !exists {
		mp.keys = append(mp.keys, key)
	}
	mp.m[key] = v
}

// Get returns the value for a key, together with an indicator wether the
// key is present.
func (mp *Mapping) Get(key string) (style.Value, bool) {
	if mp == nil {
		return style.Null(), false
	}
	v, ok := mp.m[key]
	return v, ok
}

// Size returns the number of entries. A nil mapping has size 0.
func (mp *Mapping) Size() int {
	if mp == nil {
		return 0
	}
	return len(mp.keys)
}

// Keys returns all keys in insertion order.
func (mp *Mapping) Keys() []string {
	if mp == nil {
		return nil
	}
	keys := make([]string, len(mp.keys))
	copy(keys, mp.keys)
	return keys
}

// Entries returns all entries in insertion order.
func (mp *Mapping) Entries() []style.KeyValue {
	if mp == nil {
		return nil
	}
	r := make([]style.KeyValue, 0, len(mp.keys))
	for _, k := range mp.keys {
		r = append(r, style.KeyValue{Key: k, Value: mp.m[k]})
	}
	return r
}

// String renders the mapping in CSS syntax, "key1: value1; key2: value2;".
// For mappings holding no opaque values the output parses back into an
// equal mapping.
func (mp *Mapping) String() string {
	if mp == nil {
		return ""
	}
	var b strings.Builder
	for i, k := range mp.keys {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(mp.m[k].String())
		b.WriteString(";")
	}
	return b.String()
}
