package vals

import (
	"strconv"

	"src.slip.dev/pkg/eval/errs"
)

type cannotIndex struct{ kind string }

func (err cannotIndex) Error() string { return "cannot index " + err.kind }

type noSuchKeyError struct {
	key any
}

// NoSuchKey returns an error indicating that a key is not found in a map-like
// value.
func NoSuchKey(k any) error {
	return noSuchKeyError{k}
}

func (err noSuchKeyError) Error() string {
	return "no such key: " + ReprPlain(err.key)
}

// Index indexes a value with the given key. For the positional container
// types (List, Array, Slip), the key must be an integer; negative indices
// count from the end, and out-of-range indices produce errs.OutOfRange. For a
// Seq, only non-negative integer indices are valid, and indexing consumes the
// sequence unless it is cached. For a Map, the key must be a string. For
// other types, it returns a nil value and a non-nil error.
func Index(a, k any) (any, error) {
	switch a := a.(type) {
	case List:
		i, err := ConvertIndex(k, len(a.elems))
		if err != nil {
			return nil, err
		}
		return a.elems[i], nil
	case *Array:
		i, err := ConvertIndex(k, len(a.elems))
		if err != nil {
			return nil, err
		}
		return a.elems[i], nil
	case Slip:
		i, err := ConvertIndex(k, len(a.elems))
		if err != nil {
			return nil, err
		}
		return a.elems[i], nil
	case *Seq:
		return a.index(k)
	case Map:
		key, ok := k.(string)
		if !ok {
			return nil, NoSuchKey(k)
		}
		v, ok := a.m[key]
		if !ok {
			return nil, NoSuchKey(key)
		}
		return v, nil
	default:
		return nil, cannotIndex{Kind(a)}
	}
}

// ConvertIndex converts a raw index into a valid non-negative index into a
// positional value of length n. Negative indices are adjusted by counting
// from the end. A non-integer index produces errs.TypeMismatch; an index
// outside [-n, n) produces errs.OutOfRange.
func ConvertIndex(rawIndex any, n int) (int, error) {
	i, ok := rawIndex.(int)
	if !ok {
		return 0, errs.TypeMismatch{
			What: "index", Valid: "integer", Actual: Kind(rawIndex)}
	}
	if i < 0 {
		if i < -n {
			return 0, negIndexOutOfRange(strconv.Itoa(i), n)
		}
		return i + n, nil
	}
	if i >= n {
		return 0, posIndexOutOfRange(strconv.Itoa(i), n)
	}
	return i, nil
}

func posIndexOutOfRange(index string, n int) errs.OutOfRange {
	return errs.OutOfRange{
		What:     "index",
		ValidLow: "0", ValidHigh: strconv.Itoa(n - 1), Actual: index}
}

func negIndexOutOfRange(index string, n int) errs.OutOfRange {
	return errs.OutOfRange{
		What:     "negative index",
		ValidLow: strconv.Itoa(-n), ValidHigh: "-1", Actual: index}
}
