package eval

import (
	"src.slip.dev/pkg/eval/errs"
	"src.slip.dev/pkg/hash"
	"src.slip.dev/pkg/vals"
)

// Capture is the result of interpreting a list in argument position: a
// positional List and a named mapping.
type Capture struct {
	pos   vals.List
	named vals.Map
}

// Positional returns the positional part.
func (c Capture) Positional() vals.List { return c.pos }

// Named returns the named part.
func (c Capture) Named() vals.Map { return c.named }

// Kind returns "capture".
func (c Capture) Kind() string { return "capture" }

// Equal compares with another Capture, part by part.
func (c Capture) Equal(other any) bool {
	o, ok := other.(Capture)
	return ok && vals.Equal(c.pos, o.pos) && vals.Equal(c.named, o.named)
}

// Hash computes the hash code of the capture.
func (c Capture) Hash() uint32 {
	return hash.DJB(vals.Hash(c.pos), vals.Hash(c.named))
}

// Repr writes the capture as its two parts.
func (c Capture) Repr(indent int) string {
	b := vals.NewListReprBuilder(indent)
	b.WriteElem(vals.Repr(c.pos, indent+1))
	b.WriteElem(vals.Repr(c.named, indent+1))
	return "capture" + b.String()
}

// Caps declares the capture's capability tags.
func (c Capture) Caps() vals.Capability {
	return vals.Positional | vals.Associative
}

// spread is the marker wrapped around an argument by Spread.
type spread struct{ v any }

// Spread marks a value so that MakeCapture splices it instead of passing it
// through: a positional-capable value contributes its elements to the
// positional part, and an associative value (Map, Pair or another Capture)
// contributes its entries to the named part.
func Spread(v any) any { return spread{v} }

// MakeCapture classifies the top-level elements of an argument list into the
// positional and named buckets of a Capture. Only Pairs tagged at
// construction as named arguments are diverted into the named part; an
// ordinary Pair, or any pair nested deeper than the top level, stays
// positional. A Slip among the positional elements splices, like in list
// construction. Later named values win over earlier ones with the same key.
func MakeCapture(elems ...any) (Capture, error) {
	var pos []any
	named := make(map[string]any)
	for _, e := range elems {
		switch e := e.(type) {
		case spread:
			if err := spliceSpread(e.v, &pos, named); err != nil {
				return Capture{}, err
			}
		case vals.Pair:
			if e.AutoNamed() {
				named[e.Key().(string)] = e.Val()
			} else {
				pos = append(pos, e)
			}
		default:
			pos = append(pos, e)
		}
	}
	return Capture{vals.MakeList(pos...), vals.MapFrom(named)}, nil
}

func spliceSpread(v any, pos *[]any, named map[string]any) error {
	switch v := v.(type) {
	case Capture:
		elems, err := vals.Collect(v.pos)
		if err != nil {
			return err
		}
		*pos = append(*pos, elems...)
		for _, k := range v.named.Keys() {
			val, _ := v.named.Index(k)
			named[k] = val
		}
		return nil
	case vals.Map:
		for _, k := range v.Keys() {
			val, _ := v.Index(k)
			named[k] = val
		}
		return nil
	case vals.Pair:
		k, ok := v.Key().(string)
		if !ok {
			return errs.TypeMismatch{
				What: "spread pair key", Valid: "string",
				Actual: vals.Kind(v.Key())}
		}
		named[k] = v.Val()
		return nil
	default:
		if vals.Has(v, vals.Positional) {
			elems, err := vals.Collect(v)
			if err != nil {
				return err
			}
			*pos = append(*pos, elems...)
			return nil
		}
		return errs.TypeMismatch{
			What: "spread argument", Valid: "positional or associative value",
			Actual: vals.Kind(v)}
	}
}
