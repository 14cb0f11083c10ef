package vals

// Array is an eager, mutable positional container. Unlike a List, its slots
// may be reassigned after construction. Like a List, it spills its elements
// when flattened.
type Array struct {
	elems []any
}

// MakeArray creates a new Array from values, splicing Slips the same way
// MakeList does.
func MakeArray(vs ...any) *Array {
	return &Array{spliceSlips(vs)}
}

// ArrayOf creates a new Array by draining an iterable value eagerly. If v
// lacks the Iterable capability (this includes strings, which are atoms in
// structure building), the resulting Array holds v as its only element.
// Draining a Seq consumes it in full; an infinite Seq makes this call never
// return.
func ArrayOf(v any) (*Array, error) {
	if !Has(v, Iterable) {
		return MakeArray(v), nil
	}
	vs, err := Collect(v)
	if err != nil {
		return nil, err
	}
	return MakeArray(vs...), nil
}

// Len returns the number of elements.
func (a *Array) Len() int { return len(a.elems) }

// Index returns the i-th element, if it exists. It does not adjust negative
// indices; use the package-level Index for that.
func (a *Array) Index(i int) (any, bool) {
	if i < 0 || i >= len(a.elems) {
		return nil, false
	}
	return a.elems[i], true
}

// Set reassigns the slot at the given index. Negative indices count from the
// end; out-of-range indices produce errs.OutOfRange.
func (a *Array) Set(k, v any) error {
	i, err := ConvertIndex(k, len(a.elems))
	if err != nil {
		return err
	}
	a.elems[i] = v
	return nil
}

// Iterate calls f on each element until f returns false.
func (a *Array) Iterate(f func(any) bool) {
	Feed(f, a.elems...)
}

// Cursor returns a cursor over the elements.
func (a *Array) Cursor() Cursor {
	return &sliceCursor{elems: a.elems}
}
