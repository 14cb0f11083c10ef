package vals

import (
	"testing"

	"src.slip.dev/pkg/eval/errs"
)

func TestBox(t *testing.T) {
	b := NewBox("old")
	if b.Get() != "old" {
		t.Errorf("Get -> %v, want old", b.Get())
	}
	if err := b.Set("new"); err != nil {
		t.Errorf("Set -> error %v", err)
	}
	if b.Get() != "new" {
		t.Errorf("Get after Set -> %v, want new", b.Get())
	}
}

func TestReadOnlyBox(t *testing.T) {
	b := NewReadOnlyBox("v")
	err := b.Set("w")
	wantErr := errs.Immutable{Op: "set", What: "read-only box"}
	if err != wantErr {
		t.Errorf("Set -> error %v, want %v", err, wantErr)
	}
	if b.Get() != "v" {
		t.Errorf("Get after failed Set -> %v, want v", b.Get())
	}
}

func TestBoxEqual(t *testing.T) {
	b := NewBox(MakeList(1))
	if !Equal(b, b) {
		t.Errorf("box not equal to itself")
	}
	// Distinct boxes compare by their current referents.
	if !Equal(NewBox(MakeList(1)), NewBox(MakeList(1))) {
		t.Errorf("boxes with equal referents not equal")
	}
	if Equal(NewBox(1), NewBox(2)) {
		t.Errorf("boxes with different referents equal")
	}
}
