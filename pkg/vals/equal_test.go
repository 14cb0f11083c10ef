package vals

import (
	"testing"

	"src.slip.dev/pkg/tt"
)

func TestEqual(t *testing.T) {
	seq := SeqOf("a")
	tt.Test(t, Equal,
		tt.Args(nil, nil).Rets(true),
		tt.Args(nil, "").Rets(false),
		tt.Args(true, true).Rets(true),
		tt.Args(1, 1).Rets(true),
		tt.Args(1, 2).Rets(false),
		tt.Args(1, 1.0).Rets(false),
		tt.Args("foo", "foo").Rets(true),

		tt.Args(MakeList("a", "b"), MakeList("a", "b")).Rets(true),
		tt.Args(MakeList("a", "b"), MakeList("a")).Rets(false),
		tt.Args(MakeList(MakeList("a")), MakeList(MakeList("a"))).Rets(true),
		tt.Args(MakeList("a"), MakeArray("a")).Rets(false),
		tt.Args(MakeArray("a"), MakeArray("a")).Rets(true),
		tt.Args(MakeSlip("a"), MakeSlip("a")).Rets(true),

		tt.Args(MakePair("k", 1), MakePair("k", 1)).Rets(true),
		// The named-argument tag does not participate in equality.
		tt.Args(MakeNamedPair("k", 1), MakePair("k", 1)).Rets(true),
		tt.Args(MakePair("k", 1), MakePair("k", 2)).Rets(false),

		tt.Args(MakeMap("k", 1), MakeMap("k", 1)).Rets(true),
		tt.Args(MakeMap("k", 1), MakeMap("k", 2)).Rets(false),
		tt.Args(MakeMap("k", 1), MakeMap("k", 1, "l", 2)).Rets(false),

		// Boxes compare by referent.
		tt.Args(NewBox(MakeList(1, 2)), NewBox(MakeList(1, 2))).Rets(true),
		tt.Args(NewBox(1), NewBox(2)).Rets(false),

		// Seqs compare by identity.
		tt.Args(seq, seq).Rets(true),
		tt.Args(SeqOf("a"), SeqOf("a")).Rets(false),
	)
}

func TestEqual_SameBox(t *testing.T) {
	b := NewBox("x")
	if !Equal(b, b) {
		t.Errorf("a box is not equal to itself")
	}
}

// Equal values must have equal hash codes.
func TestHashConsistency(t *testing.T) {
	pairs := [][2]any{
		{MakeList("a", 1), MakeList("a", 1)},
		{MakeMap("k", 1, "l", 2), MakeMap("l", 2, "k", 1)},
		{NewBox(MakeList(1)), NewBox(MakeList(1))},
		{MakePair("k", 1), MakeNamedPair("k", 1)},
	}
	for _, p := range pairs {
		if !Equal(p[0], p[1]) {
			t.Errorf("Equal(%v, %v) = false, want true", p[0], p[1])
		}
		if Hash(p[0]) != Hash(p[1]) {
			t.Errorf("Hash(%v) != Hash(%v)", p[0], p[1])
		}
	}
}
