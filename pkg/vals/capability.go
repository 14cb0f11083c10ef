package vals

import (
	"strings"

	"src.slip.dev/pkg/eval/errs"
)

// Capability is a bit set of behavioral guarantees a value offers. Binding
// and flattening decisions check these explicit tags instead of duck-typing
// each value at the point of use.
type Capability uint32

const (
	// Iterable values support element-wise iteration in structure building.
	// Strings deliberately lack this: they iterate runes through Iterate but
	// are atoms to flattening and assignment.
	Iterable Capability = 1 << iota
	// Positional values support indexed element access.
	Positional
	// Associative values map keys to values.
	Associative
	// Spilling values are expanded into their elements by flattening.
	Spilling
	// SinglePass values can be fully consumed at most once.
	SinglePass
)

var capNames = []struct {
	cap  Capability
	name string
}{
	{Iterable, "iterable"},
	{Positional, "positional"},
	{Associative, "associative"},
	{Spilling, "spilling"},
	{SinglePass, "single-pass"},
}

func (c Capability) String() string {
	if c == 0 {
		return "none"
	}
	var names []string
	for _, cn := range capNames {
		if c.Has(cn.cap) {
			names = append(names, cn.name)
		}
	}
	return strings.Join(names, "|")
}

// Has returns whether c includes all bits of x.
func (c Capability) Has(x Capability) bool { return c&x == x }

// Caper wraps the Caps method, letting extension types declare their
// capabilities.
type Caper interface {
	Caps() Capability
}

// CapsOf returns the capability set of a value. A cached Seq sheds the
// SinglePass tag, since its retained buffer supports re-iteration.
func CapsOf(v any) Capability {
	switch v := v.(type) {
	case List:
		return Iterable | Positional | Spilling
	case *Array:
		return Iterable | Positional | Spilling
	case Slip:
		return Iterable | Positional | Spilling
	case *Seq:
		if v.Cached() {
			return Iterable | Positional | Spilling
		}
		return Iterable | Positional | Spilling | SinglePass
	case Map:
		return Iterable | Associative
	case Pair:
		return Associative
	case Caper:
		return v.Caps()
	default:
		return 0
	}
}

// Has returns whether the value's capability set includes all bits of c.
func Has(v any, c Capability) bool {
	return CapsOf(v).Has(c)
}

// Compose builds one capability set out of components, each of which must be
// a Capability or a Caper. Any other component produces errs.Composition.
func Compose(parts ...any) (Capability, error) {
	var set Capability
	for _, p := range parts {
		switch p := p.(type) {
		case Capability:
			set |= p
		case Caper:
			set |= p.Caps()
		default:
			return 0, errs.Composition{
				Composee: Kind(p), Composer: "capability set"}
		}
	}
	return set, nil
}
