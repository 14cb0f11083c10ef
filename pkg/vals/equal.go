package vals

import "reflect"

// Equaler wraps the Equal method.
type Equaler interface {
	// Equal compares the receiver to another value. Two equal values must have
	// the same hash code.
	Equal(other any) bool
}

// Equal returns whether two values are equal. It is implemented for the
// builtin types nil, bool, string and numbers, the container types of this
// package, and types satisfying the Equaler interface. For other types, it
// uses reflect.DeepEqual to compare the two values.
//
// Boxes compare by their current referents; two distinct boxes holding equal
// values are equal. Sequences compare by identity, since comparing their
// elements would consume them.
func Equal(x, y any) bool {
	switch x := x.(type) {
	case nil:
		return y == nil
	case bool:
		return x == y
	case int:
		return x == y
	case float64:
		return x == y
	case string:
		return x == y
	case List:
		if y, ok := y.(List); ok {
			return equalElems(x.elems, y.elems)
		}
		return false
	case *Array:
		if y, ok := y.(*Array); ok {
			return equalElems(x.elems, y.elems)
		}
		return false
	case Slip:
		if y, ok := y.(Slip); ok {
			return equalElems(x.elems, y.elems)
		}
		return false
	case Pair:
		if y, ok := y.(Pair); ok {
			return Equal(x.key, y.key) && Equal(x.val, y.val)
		}
		return false
	case *Box:
		if y, ok := y.(*Box); ok {
			return x == y || Equal(x.Get(), y.Get())
		}
		return false
	case Map:
		if y, ok := y.(Map); ok {
			return equalMap(x, y)
		}
		return false
	case *Seq:
		y, ok := y.(*Seq)
		return ok && x.src == y.src
	case Equaler:
		return x.Equal(y)
	default:
		return reflect.DeepEqual(x, y)
	}
}

func equalElems(xs, ys []any) bool {
	if len(xs) != len(ys) {
		return false
	}
	for i, x := range xs {
		if !Equal(x, ys[i]) {
			return false
		}
	}
	return true
}

func equalMap(x, y Map) bool {
	if x.Len() != y.Len() {
		return false
	}
	for k, vx := range x.m {
		vy, ok := y.m[k]
		if !ok || !Equal(vx, vy) {
			return false
		}
	}
	return true
}
