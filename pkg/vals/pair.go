package vals

// Pair is a key-value pair. A Pair additionally carries a tag, fixed at
// construction, recording whether it was written as a bare key-value literal
// in an argument list; only such pairs are diverted into the named part of a
// capture. The tag does not participate in equality.
type Pair struct {
	key       any
	val       any
	autoNamed bool
}

// MakePair creates an ordinary Pair. It stays positional in argument lists.
func MakePair(k, v any) Pair {
	return Pair{key: k, val: v}
}

// MakeNamedPair creates a Pair tagged as a named argument, the analog of a
// bare key-value literal in an argument list.
func MakeNamedPair(k string, v any) Pair {
	return Pair{key: k, val: v, autoNamed: true}
}

// Key returns the key.
func (p Pair) Key() any { return p.key }

// Val returns the value.
func (p Pair) Val() any { return p.val }

// AutoNamed returns whether the pair is tagged as a named argument.
func (p Pair) AutoNamed() bool { return p.autoNamed }
