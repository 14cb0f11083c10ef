package vals

// Flat returns a lazy sequence over the leaves of v, in depth-first order.
// The descent rules, applied per element:
//
//   - A Box is emitted unchanged; flattening never crosses a Box boundary.
//   - A Spilling container (List, Array, Slip, Seq) is descended into and
//     contributes its elements, with Slips inlining at their position.
//   - Anything else, strings included, is emitted unchanged.
//
// The result is produced element by element and never forces full
// realization, so flattening an infinite Seq is fine as long as the consumer
// stops pulling. On any finite structure it terminates regardless of nesting
// depth. Flattening is idempotent: the elements of Flat(Flat(x)) are the
// elements of Flat(x).
//
// Descending into an uncached Seq consumes it.
func Flat(v any) *Seq {
	stack := []Cursor{&sliceCursor{elems: []any{v}}}
	return NewSeq(func() (any, bool) {
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			if !cur.HasElem() {
				stack = stack[:len(stack)-1]
				continue
			}
			e := cur.Elem()
			cur.Next()
			if _, ok := e.(*Box); ok {
				// Opaque no matter what it wraps.
				return e, true
			}
			if Has(e, Spilling) {
				c, err := NewCursor(e)
				if err == nil {
					stack = append(stack, c)
					continue
				}
			}
			return e, true
		}
		return nil, false
	})
}

// Lazy wraps a value in a Seq, so that downstream consumption pulls elements
// one at a time and cannot force eager materialization. A value without the
// Iterable capability becomes a one-element sequence.
func Lazy(v any) *Seq {
	if !Has(v, Iterable) {
		return SeqOf(v)
	}
	var cur Cursor
	return NewSeq(func() (any, bool) {
		if cur == nil {
			// The cursor is created on first pull, not when Lazy is called,
			// so wrapping an uncached Seq does not consume anything yet.
			c, err := NewCursor(v)
			if err != nil {
				// Tagged Iterable but with no way to traverse it; yield it
				// as the only element, like a value without the tag.
				c = &sliceCursor{elems: []any{v}}
			}
			cur = c
		}
		if !cur.HasElem() {
			return nil, false
		}
		e := cur.Elem()
		cur.Next()
		return e, true
	})
}
