package eval

import (
	"src.slip.dev/pkg/eval/errs"
	"src.slip.dev/pkg/vals"
)

// Assign interprets v in assignment-target position: full, eager evaluation
// into a new Array. An iterable v, a Seq included, is drained to exhaustion
// right here, so the generator's side effects all happen before Assign
// returns; a non-iterable v becomes a one-element Array. An infinite Seq
// makes this call never return; bounding it is the caller's job.
func Assign(v any) (*vals.Array, error) {
	return vals.ArrayOf(v)
}

// Bind binds v, unconverted, where the positional capability is required. It
// checks the capability tags rather than duck-typing: a value without the
// Positional tag is rejected, and so is a single-pass Seq, which cannot back
// repeated positional access. (Cache it first, or use Assign.)
func Bind(v any) (any, error) {
	caps := vals.CapsOf(v)
	if !caps.Has(vals.Positional) {
		return nil, errs.TypeMismatch{
			What: "bound value", Valid: "positional value",
			Actual: vals.Kind(v)}
	}
	if caps.Has(vals.SinglePass) {
		return nil, errs.TypeMismatch{
			What: "bound value", Valid: "re-iterable positional value",
			Actual: "single-pass " + vals.Kind(v)}
	}
	return v, nil
}
