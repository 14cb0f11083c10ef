package vals

// Slip is a sequence of values that splices into its surroundings: when a
// Slip appears as an element in list construction or during flattening, its
// elements are inlined at that position instead of nesting. A Slip inside a
// Box behaves like any other value.
type Slip struct {
	elems []any
}

// MakeSlip creates a new Slip from values. A Slip among the values is itself
// spliced.
func MakeSlip(vs ...any) Slip {
	return Slip{spliceSlips(vs)}
}

// SlipOf creates a Slip by draining an iterable value eagerly. If v lacks the
// Iterable capability, the resulting Slip holds v as its only element.
func SlipOf(v any) (Slip, error) {
	if !Has(v, Iterable) {
		return MakeSlip(v), nil
	}
	vs, err := Collect(v)
	if err != nil {
		return Slip{}, err
	}
	return MakeSlip(vs...), nil
}

// Len returns the number of elements.
func (s Slip) Len() int { return len(s.elems) }

// Iterate calls f on each element until f returns false.
func (s Slip) Iterate(f func(any) bool) {
	Feed(f, s.elems...)
}

// Cursor returns a cursor over the elements.
func (s Slip) Cursor() Cursor {
	return &sliceCursor{elems: s.elems}
}
