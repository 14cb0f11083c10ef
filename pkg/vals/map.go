package vals

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Map is an immutable string-keyed mapping. It is the shape of the named part
// of a capture. Iteration yields Pairs in sorted key order, so it is
// deterministic.
type Map struct {
	m map[string]any
}

// EmptyMap is an empty map.
var EmptyMap = Map{}

// MakeMap creates a map from arguments that are alternately keys and values.
// It panics if the number of arguments is odd or if a key is not a string.
func MakeMap(a ...any) Map {
	if len(a)%2 == 1 {
		panic("odd number of arguments to MakeMap")
	}
	m := make(map[string]any, len(a)/2)
	for i := 0; i < len(a); i += 2 {
		k, ok := a[i].(string)
		if !ok {
			panic("MakeMap key must be a string")
		}
		m[k] = a[i+1]
	}
	return Map{m}
}

// MapFrom creates a Map holding a copy of the given Go map.
func MapFrom(m map[string]any) Map {
	return Map{maps.Clone(m)}
}

// Len returns the number of entries.
func (m Map) Len() int { return len(m.m) }

// Index returns the value for the given key, and whether the key exists.
func (m Map) Index(k string) (any, bool) {
	v, ok := m.m[k]
	return v, ok
}

// Keys returns the keys, sorted.
func (m Map) Keys() []string {
	keys := maps.Keys(m.m)
	slices.Sort(keys)
	return keys
}

// Iterate calls f on each entry as a Pair, in sorted key order, until f
// returns false.
func (m Map) Iterate(f func(any) bool) {
	for _, k := range m.Keys() {
		if !f(MakePair(k, m.m[k])) {
			break
		}
	}
}

// Cursor returns a cursor over the entries as Pairs, in sorted key order.
func (m Map) Cursor() Cursor {
	pairs := make([]any, 0, len(m.m))
	for _, k := range m.Keys() {
		pairs = append(pairs, MakePair(k, m.m[k]))
	}
	return &sliceCursor{elems: pairs}
}
