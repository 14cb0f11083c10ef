package eval

import (
	"testing"

	"src.slip.dev/pkg/tt"
	"src.slip.dev/pkg/vals"
)

func TestContextString(t *testing.T) {
	tt.Test(t, Context.String,
		tt.Args(Neutral).Rets("neutral"),
		tt.Args(AssignTarget).Rets("assign-target"),
		tt.Args(ArgumentList).Rets("argument-list"),
		tt.Args(SliceIndex).Rets("slice-index"),
		tt.Args(Context(42)).Rets("bad context 42"),
	)
}

func TestInNeutral(t *testing.T) {
	// Neutral context defers: wrapping must not consume the input.
	pulled := 0
	src := vals.NewSeq(func() (any, bool) { pulled++; return pulled, true })
	got, err := In(Neutral, src)
	if err != nil {
		t.Fatalf("In -> error %v", err)
	}
	if pulled != 0 {
		t.Fatalf("In(Neutral) pulled %d elements", pulled)
	}
	s := got.(*vals.Seq)
	c := s.Cursor()
	if c.Elem() != 1 {
		t.Errorf("first element = %v, want 1", c.Elem())
	}
}

func TestInAssignTarget(t *testing.T) {
	got, err := In(AssignTarget, vals.MakeList(1, 2))
	if err != nil {
		t.Fatalf("In -> error %v", err)
	}
	if !vals.Equal(got, vals.MakeArray(1, 2)) {
		t.Errorf("In(AssignTarget, list) = %v", vals.ReprPlain(got))
	}
}

func TestInArgumentList(t *testing.T) {
	// Top-level list elements become the capture elements.
	got, err := In(ArgumentList,
		vals.MakeList(1, vals.MakeNamedPair("key", 3), 2))
	if err != nil {
		t.Fatalf("In -> error %v", err)
	}
	want, _ := MakeCapture(1, vals.MakeNamedPair("key", 3), 2)
	if !vals.Equal(got, want) {
		t.Errorf("In(ArgumentList) = %v, want %v",
			vals.ReprPlain(got), vals.ReprPlain(want))
	}

	// A non-list value is a one-element capture.
	got, err = In(ArgumentList, 7)
	if err != nil {
		t.Fatalf("In -> error %v", err)
	}
	want, _ = MakeCapture(7)
	if !vals.Equal(got, want) {
		t.Errorf("In(ArgumentList, 7) = %v", vals.ReprPlain(got))
	}
}

func TestInSliceIndex(t *testing.T) {
	if _, err := In(SliceIndex, vals.MakeList(0)); err == nil {
		t.Errorf("In(SliceIndex) -> no error")
	}
}
