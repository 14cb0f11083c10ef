package eval

import (
	"testing"

	"src.slip.dev/pkg/eval/errs"
	"src.slip.dev/pkg/vals"
)

func TestAssign(t *testing.T) {
	// Assignment drains the source eagerly: all generator side effects
	// happen before Assign returns, exactly once per element.
	pulled := 0
	i := 0
	s := vals.NewSeq(func() (any, bool) {
		if i >= 3 {
			return nil, false
		}
		i++
		pulled++
		return i, true
	})
	got, err := Assign(s)
	if err != nil {
		t.Fatalf("Assign -> error %v", err)
	}
	if pulled != 3 {
		t.Errorf("Assign pulled %d elements, want 3", pulled)
	}
	if !vals.Equal(got, vals.MakeArray(1, 2, 3)) {
		t.Errorf("Assign(seq) = %v", vals.ReprPlain(got))
	}
}

func TestAssignScalar(t *testing.T) {
	got, err := Assign("atom")
	if err != nil {
		t.Fatalf("Assign -> error %v", err)
	}
	if !vals.Equal(got, vals.MakeArray("atom")) {
		t.Errorf("Assign(atom) = %v", vals.ReprPlain(got))
	}
}

func TestBind(t *testing.T) {
	l := vals.MakeList(1, 2)
	got, err := Bind(l)
	if err != nil || !vals.Equal(got, l) {
		t.Errorf("Bind(list) = %v, %v", got, err)
	}

	_, err = Bind("atom")
	wantErr := errs.TypeMismatch{
		What: "bound value", Valid: "positional value", Actual: "string"}
	if err != wantErr {
		t.Errorf("Bind(atom) -> error %v, want %v", err, wantErr)
	}

	_, err = Bind(vals.SeqOf(1))
	wantErr = errs.TypeMismatch{
		What: "bound value", Valid: "re-iterable positional value",
		Actual: "single-pass seq"}
	if err != wantErr {
		t.Errorf("Bind(seq) -> error %v, want %v", err, wantErr)
	}

	// A cached view sheds the single-pass tag and binds fine.
	cached := vals.SeqOf(1).Cache()
	if _, err := Bind(cached); err != nil {
		t.Errorf("Bind(cached seq) -> error %v", err)
	}
}
