package vals

import "fmt"

// Kinder wraps the Kind method.
type Kinder interface {
	Kind() string
}

// Kind returns the "kind" of the value, a concept similar to type but not
// tied to the Go type system. It is implemented for the builtin nil, bool,
// string and number types, the container types of this package, and types
// satisfying the Kinder interface. For other types, it returns the Go type
// name of the argument preceded by "!!".
func Kind(v any) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		return "bool"
	case string:
		return "string"
	case int, float64:
		return "number"
	case List:
		return "list"
	case *Array:
		return "array"
	case *Seq:
		return "seq"
	case Slip:
		return "slip"
	case *Box:
		return "box"
	case Pair:
		return "pair"
	case Map:
		return "map"
	case Kinder:
		return v.Kind()
	default:
		return fmt.Sprintf("!!%T", v)
	}
}
