// Package eval implements the context-dependent interpretation of list
// expressions: eager assignment, capture building for argument lists, slice
// indexing, and parallel batch mapping.
package eval

import (
	"errors"
	"fmt"

	"src.slip.dev/pkg/vals"
)

// Context identifies the syntactic position in which a list expression is
// evaluated. It is decided once per expression, purely from where the
// expression appears, never from its contents.
type Context int

const (
	// Neutral is plain iteration position: elements are visited in
	// production order with no special rules.
	Neutral Context = iota
	// AssignTarget is the right-hand side of an assignment into an eager
	// positional variable.
	AssignTarget
	// ArgumentList is call-argument position.
	ArgumentList
	// SliceIndex is slice-index position.
	SliceIndex
)

func (c Context) String() string {
	switch c {
	case Neutral:
		return "neutral"
	case AssignTarget:
		return "assign-target"
	case ArgumentList:
		return "argument-list"
	case SliceIndex:
		return "slice-index"
	default:
		return fmt.Sprintf("bad context %d", int(c))
	}
}

var errSliceContext = errors.New(
	"slice-index context requires a container; use Slice")

// In evaluates v in the given context: a lazy sequence in Neutral context, an
// eagerly drained Array in AssignTarget context, and a Capture in
// ArgumentList context (the top-level elements of a list become the capture
// elements; any other value is a one-element capture). SliceIndex requires
// the indexed container and is served by Slice instead.
func In(ctx Context, v any) (any, error) {
	switch ctx {
	case Neutral:
		return vals.Lazy(v), nil
	case AssignTarget:
		return Assign(v)
	case ArgumentList:
		if l, ok := v.(vals.List); ok {
			elems, err := vals.Collect(l)
			if err != nil {
				return nil, err
			}
			return MakeCapture(elems...)
		}
		return MakeCapture(v)
	case SliceIndex:
		return nil, errSliceContext
	default:
		return nil, fmt.Errorf("bad context %d", int(ctx))
	}
}
