package vals

import (
	"errors"

	"src.slip.dev/pkg/eval/errs"
)

var (
	errAssocUnsupported  = errors.New("assoc is not supported")
	errDissocUnsupported = errors.New("dissoc is not supported")
)

// Assoc returns the container with the value at the specified index replaced.
// Only an Array supports this, and the replacement happens in place; the
// slots of a List or Map can never be rebound, and attempting to produces
// errs.Immutable. (Mutating the referent of a Box stored in a List is done
// through the Box itself and is always allowed.)
func Assoc(a, k, v any) (any, error) {
	switch a := a.(type) {
	case List:
		return nil, errs.Immutable{Op: "assoc", What: "list"}
	case Map:
		return nil, errs.Immutable{Op: "assoc", What: "map"}
	case *Array:
		i, err := ConvertIndex(k, len(a.elems))
		if err != nil {
			return nil, err
		}
		a.elems[i] = v
		return a, nil
	default:
		return nil, errAssocUnsupported
	}
}

// Dissoc removes the element at the specified index. No container in this
// package supports it; for List and Map the error is errs.Immutable, making
// the violation explicit.
func Dissoc(a, k any) (any, error) {
	switch a.(type) {
	case List:
		return nil, errs.Immutable{Op: "dissoc", What: "list"}
	case Map:
		return nil, errs.Immutable{Op: "dissoc", What: "map"}
	default:
		return nil, errDissocUnsupported
	}
}
