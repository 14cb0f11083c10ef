package vals

import "errors"

// Concatter wraps the Concat method. See Concat for how it is used.
type Concatter interface {
	// Concat concatenates the receiver with another value, the receiver being
	// the left operand. If concatenation is not supported for the given
	// value, the method can return the special error value
	// ErrConcatNotImplemented.
	Concat(v any) (any, error)
}

// ErrConcatNotImplemented is a special error value used to signal that
// concatenation is not implemented. See Concat for how it is used.
var ErrConcatNotImplemented = errors.New("concat not implemented")

type cannotConcat struct {
	lhsKind string
	rhsKind string
}

func (err cannotConcat) Error() string {
	return "cannot concatenate " + err.lhsKind + " and " + err.rhsKind
}

// Concat concatenates two values. If both operands are strings, it returns
// lhs + rhs. If both are Lists, it returns a new List with the elements of
// lhs followed by the elements of rhs. Otherwise, if the left operand
// implements Concatter and its Concat method returns something other than
// ErrConcatNotImplemented, that result is used. All remaining cases are an
// error.
func Concat(lhs, rhs any) (any, error) {
	if lhs, ok := lhs.(string); ok {
		if rhs, ok := rhs.(string); ok {
			return lhs + rhs, nil
		}
	}
	if lhs, ok := lhs.(List); ok {
		if rhs, ok := rhs.(List); ok {
			elems := make([]any, 0, len(lhs.elems)+len(rhs.elems))
			elems = append(elems, lhs.elems...)
			elems = append(elems, rhs.elems...)
			return List{elems}, nil
		}
	}
	if lhs, ok := lhs.(Concatter); ok {
		v, err := lhs.Concat(rhs)
		if err != ErrConcatNotImplemented {
			return v, err
		}
	}
	return nil, cannotConcat{Kind(lhs), Kind(rhs)}
}
