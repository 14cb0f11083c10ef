package vals

// Iterator wraps the Iterate method.
type Iterator interface {
	// Iterate calls the passed function with each value within the receiver.
	// The iteration is aborted if the function returns false.
	Iterate(func(v any) bool)
}

type cannotIterate struct{ kind string }

func (err cannotIterate) Error() string { return "cannot iterate " + err.kind }

// CanIterate returns whether the value can be iterated. If CanIterate(v) is
// true, calling Iterate(v, f) will not result in an error.
func CanIterate(v any) bool {
	switch v.(type) {
	case string, Iterator:
		return true
	}
	return false
}

// Iterate iterates the supplied value, and calls the supplied function on
// each of its elements. The function can return false to break the iteration.
// It is implemented for the builtin type string (iterating runes) and types
// satisfying the Iterator interface, which includes all the container types
// of this package except Box and Pair. For other types, it doesn't do
// anything and returns an error.
//
// Iterating a Seq consumes it.
func Iterate(v any, f func(any) bool) error {
	switch v := v.(type) {
	case string:
		for _, r := range v {
			if !f(string(r)) {
				break
			}
		}
	case Iterator:
		v.Iterate(f)
	default:
		return cannotIterate{Kind(v)}
	}
	return nil
}

// Collect collects all elements of an iterable value into a slice.
func Collect(v any) ([]any, error) {
	var vs []any
	if len := Len(v); len >= 0 {
		vs = make([]any, 0, len)
	}
	err := Iterate(v, func(v any) bool {
		vs = append(vs, v)
		return true
	})
	return vs, err
}
