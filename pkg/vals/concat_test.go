package vals

import (
	"testing"

	"src.slip.dev/pkg/tt"
)

type concatter struct{}

func (concatter) Kind() string { return "concatter" }

func (concatter) Concat(v any) (any, error) {
	if s, ok := v.(string); ok {
		return "concatter+" + s, nil
	}
	return nil, ErrConcatNotImplemented
}

func TestConcat(t *testing.T) {
	tt.Test(t, Concat,
		tt.Args("foo", "bar").Rets("foobar", nil),
		tt.Args(MakeList(1, 2), MakeList(3)).Rets(
			eq(MakeList(1, 2, 3)), nil),
		tt.Args(concatter{}, "x").Rets("concatter+x", nil),
		// A Concatter returning ErrConcatNotImplemented falls through to
		// the generic error.
		tt.Args(concatter{}, 1).Rets(
			nil, cannotConcat{"concatter", "number"}),
		tt.Args("foo", MakeList(1)).Rets(nil, cannotConcat{"string", "list"}),
	)
}
