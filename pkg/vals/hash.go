package vals

import (
	"math"

	"src.slip.dev/pkg/hash"
)

// Hasher wraps the Hash method.
type Hasher interface {
	// Hash computes the hash code of the receiver.
	Hash() uint32
}

// Hash returns the 32-bit hash of a value. It is implemented for the builtin
// types bool, string and numbers, the container types of this package, and
// types satisfying the Hasher interface. For other values it returns 0, which
// is OK in terms of correctness.
//
// A Box hashes like its current referent, consistent with how boxes compare
// equal. A Seq hashes to 0 since hashing its elements would consume them.
func Hash(v any) uint32 {
	switch v := v.(type) {
	case bool:
		if v {
			return 1
		}
		return 0
	case int:
		return hash.UIntPtr(uintptr(v))
	case float64:
		return hash.UInt64(math.Float64bits(v))
	case string:
		return hash.String(v)
	case List:
		return hashElems(v.elems)
	case *Array:
		return hashElems(v.elems)
	case Slip:
		return hashElems(v.elems)
	case Pair:
		return hash.DJB(Hash(v.key), Hash(v.val))
	case *Box:
		return Hash(v.Get())
	case Map:
		h := hash.DJBInit
		for _, k := range v.Keys() {
			h = hash.DJBCombine(h, hash.String(k))
			h = hash.DJBCombine(h, Hash(v.m[k]))
		}
		return h
	case Hasher:
		return v.Hash()
	default:
		return 0
	}
}

func hashElems(elems []any) uint32 {
	h := hash.DJBInit
	for _, e := range elems {
		h = hash.DJBCombine(h, Hash(e))
	}
	return h
}
