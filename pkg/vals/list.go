package vals

// List is an immutable, ordered sequence of values. Its length and the
// identity of each slot are fixed at construction; the only way an element
// can appear to change is when it is a Box, whose referent may be reassigned
// through the Box.
type List struct {
	elems []any
}

// EmptyList is an empty list.
var EmptyList = List{}

// MakeList creates a new List from values. A Slip among the values is
// spliced: its elements become elements of the List, in place, with no extra
// nesting level. Any other value, including a nested List, occupies exactly
// one slot.
func MakeList(vs ...any) List {
	return List{spliceSlips(vs)}
}

// MakeListSlice creates a new List with exactly one slot per element of the
// slice. No splicing takes place.
func MakeListSlice[T any](vs []T) List {
	elems := make([]any, len(vs))
	for i, v := range vs {
		elems[i] = v
	}
	return List{elems}
}

func spliceSlips(vs []any) []any {
	elems := make([]any, 0, len(vs))
	for _, v := range vs {
		if slip, ok := v.(Slip); ok {
			elems = append(elems, slip.elems...)
		} else {
			elems = append(elems, v)
		}
	}
	return elems
}

// Len returns the number of elements.
func (l List) Len() int { return len(l.elems) }

// Index returns the i-th element, if it exists. The second return value
// indicates whether the element exists. It does not adjust negative indices;
// use the package-level Index for that.
func (l List) Index(i int) (any, bool) {
	if i < 0 || i >= len(l.elems) {
		return nil, false
	}
	return l.elems[i], true
}

// Iterate calls f on each element until f returns false.
func (l List) Iterate(f func(any) bool) {
	Feed(f, l.elems...)
}

// Cursor returns a cursor over the elements.
func (l List) Cursor() Cursor {
	return &sliceCursor{elems: l.elems}
}
