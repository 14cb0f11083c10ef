package vals

import "testing"

func TestPair(t *testing.T) {
	p := MakePair("k", 1)
	if p.Key() != "k" || p.Val() != 1 || p.AutoNamed() {
		t.Errorf("MakePair = %v %v autoNamed=%v", p.Key(), p.Val(), p.AutoNamed())
	}
	n := MakeNamedPair("k", 1)
	if !n.AutoNamed() {
		t.Errorf("MakeNamedPair not auto-named")
	}
	// The auto-named tag is invisible to equality.
	if !Equal(p, n) {
		t.Errorf("pair and auto-named pair with same key and value not equal")
	}
}
