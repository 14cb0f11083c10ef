package vals

import "unicode/utf8"

// Cursor is a stateful cursor over the elements of a value. It can be used
// like this:
//
//	for c := must.OK1(vals.NewCursor(v)); c.HasElem(); c.Next() {
//	    elem := c.Elem()
//	    // do something with elem...
//	}
type Cursor interface {
	// Elem returns the element at the current position.
	Elem() any
	// HasElem returns whether the cursor is pointing to an element.
	HasElem() bool
	// Next moves the cursor to the next position.
	Next()
}

// Curser wraps the Cursor method, implemented by values that support
// pull-style iteration.
type Curser interface {
	Cursor() Cursor
}

// NewCursor returns a pull-style cursor over the elements of v. It is
// implemented for the builtin type string (yielding runes) and types
// satisfying the Curser interface. A type that only supports push-style
// iteration (Iterator but not Curser) is collected eagerly first. For other
// types it returns an error.
//
// Cursors over the same Seq share its consumption state.
func NewCursor(v any) (Cursor, error) {
	switch v := v.(type) {
	case string:
		return &runeCursor{v}, nil
	case Curser:
		return v.Cursor(), nil
	case Iterator:
		vs, err := Collect(v)
		if err != nil {
			return nil, err
		}
		return &sliceCursor{elems: vs}, nil
	default:
		return nil, cannotIterate{Kind(v)}
	}
}

type sliceCursor struct {
	elems []any
	i     int
}

func (c *sliceCursor) Elem() any     { return c.elems[c.i] }
func (c *sliceCursor) HasElem() bool { return c.i < len(c.elems) }
func (c *sliceCursor) Next()         { c.i++ }

type runeCursor struct{ s string }

func (c *runeCursor) Elem() any {
	r, _ := utf8.DecodeRuneInString(c.s)
	return string(r)
}

func (c *runeCursor) HasElem() bool { return len(c.s) > 0 }

func (c *runeCursor) Next() {
	_, n := utf8.DecodeRuneInString(c.s)
	c.s = c.s[n:]
}
