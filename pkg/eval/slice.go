package eval

import (
	"src.slip.dev/pkg/vals"
)

// Slice indexes container in slice-index position. A List index produces a
// List of per-index results with exactly the same nesting shape: a sub-list
// index yields a sub-list of results at that position, with no
// auto-flattening. Pairs get no special handling in this position; like any
// other non-integer index they are rejected by the indexed type. A scalar
// index is a plain Index call.
func Slice(container, index any) (any, error) {
	l, ok := index.(vals.List)
	if !ok {
		return vals.Index(container, index)
	}
	results := make([]any, 0, l.Len())
	for c := l.Cursor(); c.HasElem(); c.Next() {
		r, err := Slice(container, c.Elem())
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return vals.MakeListSlice(results), nil
}
