package vals

import (
	"fmt"
	"math"
	"strconv"
)

// Reprer wraps the Repr method.
type Reprer interface {
	// Repr returns a string that represents a Value. The string is either a
	// literal of that Value that is preferably deep-equal to it (like
	// `[a b c]` for a list), or a string enclosed in "<>" containing the kind
	// and identity of the Value (like `<seq 0xdeadcafe>`).
	//
	// If indent is at least 0, it should be pretty-printed with the current
	// indentation level of indent; the indent of the first line has already
	// been written and shall not be written in Repr. The returned string
	// should never contain a trailing newline.
	Repr(indent int) string
}

// ReprPlain is like Repr, but without pretty-printing.
func ReprPlain(v any) string {
	return Repr(v, math.MinInt)
}

// Repr returns the representation for a value, a string that is preferably
// (but not necessarily) a literal that evaluates to the argument. The
// representation is pretty-printed, using indent as the initial level of
// indentation. It is implemented for the builtin types nil, bool, string and
// numbers, the container types of this package, and types satisfying the
// Reprer interface. For other types, it uses fmt.Sprint with the format
// "<unknown %v>".
func Repr(v any, indent int) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case string:
		return strconv.Quote(v)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case List:
		return reprElems("", v.elems, indent)
	case *Array:
		return reprElems("arr", v.elems, indent)
	case Slip:
		return reprElems("slip", v.elems, indent)
	case *Box:
		return reprElems("box", []any{v.Get()}, indent)
	case Pair:
		return reprElems("pair", []any{v.key, v.val}, indent)
	case Map:
		builder := NewMapReprBuilder(indent)
		for _, k := range v.Keys() {
			builder.WritePair(k, indent+2, Repr(v.m[k], indent+2))
		}
		return builder.String()
	case *Seq:
		return fmt.Sprintf("<seq %p>", v.src)
	case Reprer:
		return v.Repr(indent)
	default:
		return fmt.Sprintf("<unknown %v>", v)
	}
}

func reprElems(prefix string, elems []any, indent int) string {
	b := NewListReprBuilder(indent)
	for _, e := range elems {
		b.WriteElem(Repr(e, indent+1))
	}
	return prefix + b.String()
}
