package vals

// Lener wraps the Len method.
type Lener interface {
	// Len computes the length of the receiver. A negative return value means
	// the length is not (yet) known.
	Len() int
}

// Len returns the length of the value, or -1 if the value does not have a
// well-defined length. It is implemented for the builtin type string and
// types satisfying the Lener interface. For other types, it returns -1.
//
// An unexhausted Seq has no known length: -1.
func Len(v any) int {
	switch v := v.(type) {
	case string:
		return len(v)
	case Lener:
		return v.Len()
	}
	return -1
}
