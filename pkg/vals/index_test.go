package vals

import (
	"testing"

	"src.slip.dev/pkg/eval/errs"
	. "src.slip.dev/pkg/tt"
)

var (
	li0 = EmptyList
	li4 = MakeList("foo", "bar", "lorem", "ipsum")
	m   = MakeMap("foo", "bar", "lorem", "ipsum")
)

func TestIndex(t *testing.T) {
	Test(t, Index,
		// Simple indices: 0 <= i < n.
		Args(li4, 0).Rets("foo", nil),
		Args(li4, 3).Rets("ipsum", nil),
		Args(li0, 0).Rets(Any, errs.OutOfRange{
			What: "index", ValidLow: "0", ValidHigh: "-1", Actual: "0"}),
		Args(li4, 4).Rets(Any, errs.OutOfRange{
			What: "index", ValidLow: "0", ValidHigh: "3", Actual: "4"}),
		Args(li4, 5).Rets(Any, errs.OutOfRange{
			What: "index", ValidLow: "0", ValidHigh: "3", Actual: "5"}),
		// Negative indices: -n <= i < 0.
		Args(li4, -1).Rets("ipsum", nil),
		Args(li4, -4).Rets("foo", nil),
		Args(li4, -5).Rets(Any, errs.OutOfRange{
			What: "negative index", ValidLow: "-4", ValidHigh: "-1", Actual: "-5"}),
		// Non-integer indices are rejected even when the value is an integer.
		Args(li4, 0.0).Rets(Any, errs.TypeMismatch{
			What: "index", Valid: "integer", Actual: "number"}),
		Args(li4, "0").Rets(Any, errs.TypeMismatch{
			What: "index", Valid: "integer", Actual: "string"}),
		Args(li4, MakePair("k", 1)).Rets(Any, errs.TypeMismatch{
			What: "index", Valid: "integer", Actual: "pair"}),

		// Arrays and slips index the same way.
		Args(MakeArray("a", "b"), -1).Rets("b", nil),
		Args(MakeSlip("a", "b"), 1).Rets("b", nil),

		// Maps index by string key.
		Args(m, "foo").Rets("bar", nil),
		Args(m, "bad").Rets(Any, NoSuchKey("bad")),
		Args(m, 0).Rets(Any, NoSuchKey(0)),

		// Not indexable.
		Args("foo", 0).Rets(Any, cannotIndex{"string"}),
		Args(1, 0).Rets(Any, cannotIndex{"number"}),
	)
}

func TestIndex_UncachedSeqConsumes(t *testing.T) {
	s := SeqOf("a", "b", "c")
	Test(t, Index,
		// Each access consumes up to and including the requested position.
		Args(s, 1).Rets("b", nil),
		Args(s, 0).Rets("c", nil),
		Args(s, 0).Rets(Any, errs.OutOfRange{
			What: "index", ValidLow: "0", ValidHigh: "-1", Actual: "0"}),
	)
}

func TestIndex_SeqErrors(t *testing.T) {
	Test(t, Index,
		Args(SeqOf("a"), -1).Rets(Any, errs.TypeMismatch{
			What: "seq index", Valid: "non-negative integer", Actual: "-1"}),
		Args(SeqOf("a"), "x").Rets(Any, errs.TypeMismatch{
			What: "seq index", Valid: "integer", Actual: "string"}),
	)
}

func TestIndex_CachedSeq(t *testing.T) {
	s := SeqOf("a", "b", "c").Cache()
	Test(t, Index,
		// Repeat access works; production is forced only as far as needed.
		Args(s, 1).Rets("b", nil),
		Args(s, 0).Rets("a", nil),
		Args(s, 2).Rets("c", nil),
		Args(s, 3).Rets(Any, errs.OutOfRange{
			What: "index", ValidLow: "0", ValidHigh: "2", Actual: "3"}),
	)
}
