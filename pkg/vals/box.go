package vals

import (
	"sync"

	"src.slip.dev/pkg/eval/errs"
)

// Box is an explicit single-value container. Whatever it wraps, a Box is
// opaque to flattening and to slip splicing: it always occupies exactly one
// slot.
//
// A Box may be referenced from multiple structures at once; setting the
// referent through one reference is visible through all. Access to the
// referent is guarded by an RWMutex, but no further locking discipline is
// imposed: concurrent Set calls racing with structural reads are the
// caller's problem to avoid.
type Box struct {
	mu       sync.RWMutex
	v        any
	readOnly bool
}

// NewBox creates a new Box with the given initial referent.
func NewBox(v any) *Box {
	return &Box{v: v}
}

// NewReadOnlyBox creates a Box whose referent can never be reassigned;
// Set returns errs.Immutable.
func NewReadOnlyBox(v any) *Box {
	return &Box{v: v, readOnly: true}
}

// Get returns the current referent.
func (b *Box) Get() any {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.v
}

// Set reassigns the referent.
func (b *Box) Set(v any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.readOnly {
		return errs.Immutable{Op: "set", What: "read-only box"}
	}
	b.v = v
	return nil
}
