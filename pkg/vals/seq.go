package vals

import (
	"strconv"
	"sync"

	"src.slip.dev/pkg/eval/errs"
	"src.slip.dev/pkg/logutil"
)

var logger = logutil.GetLogger("[vals] ")

// Seq is a lazy, possibly infinite sequence of values produced one at a time
// by a generator function. A Seq is single-pass: all cursors derived from it
// read through one shared consumption cell, so elements produced for one
// consumer are gone for every other, and exhaustion is shared.
//
// Cache returns a view of the same source that retains produced elements in a
// growable buffer, enabling repeated positional access while still producing
// lazily on demand.
type Seq struct {
	src    *seqSource
	cached bool
}

// seqSource is the shared consumption cell of a Seq and all its views.
type seqSource struct {
	mu   sync.Mutex
	next func() (any, bool)
	done bool
	keep bool
	buf  []any
}

// NewSeq returns a single-pass lazy sequence producing values from next. The
// generator must return ok=false exactly once, at exhaustion; it is never
// called again after that.
func NewSeq(next func() (any, bool)) *Seq {
	return &Seq{src: &seqSource{next: next}}
}

// SeqOf returns a Seq producing the given values. It is mainly a convenience
// for tests and for wrapping small known sequences.
func SeqOf(vs ...any) *Seq {
	i := 0
	return NewSeq(func() (any, bool) {
		if i < len(vs) {
			v := vs[i]
			i++
			return v, true
		}
		return nil, false
	})
}

// pull1 produces and consumes one element. When the source is in keep mode,
// the element is also retained in the buffer for cached views.
func (s *seqSource) pull1() (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.done {
		return nil, false
	}
	v, ok := s.next()
	if !ok {
		s.done = true
		s.next = nil
		return nil, false
	}
	if s.keep {
		s.buf = append(s.buf, v)
	}
	return v, true
}

// fill produces elements into the buffer until it holds at least n elements
// or the source is exhausted, and returns the buffer length.
func (s *seqSource) fill(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for !s.done && len(s.buf) < n {
		v, ok := s.next()
		if !ok {
			s.done = true
			s.next = nil
			break
		}
		s.buf = append(s.buf, v)
	}
	return len(s.buf)
}

func (s *seqSource) at(i int) any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buf[i]
}

// Cache returns a caching view of the sequence. From this point on the
// shared source retains every element it produces; the view reads the
// retained buffer from the beginning and extends it on demand. Elements
// consumed before Cache was called are not recovered. Interleaving
// consumption between a cached view and the original single-pass view is
// legal but must be synchronized by the caller if done concurrently.
func (s *Seq) Cache() *Seq {
	s.src.mu.Lock()
	s.src.keep = true
	logger.Printf("caching seq %p, %d elements already retained", s.src, len(s.src.buf))
	s.src.mu.Unlock()
	return &Seq{src: s.src, cached: true}
}

// Cached returns whether this view retains produced elements.
func (s *Seq) Cached() bool { return s.cached }

// Len returns the number of elements if the sequence is cached and known to
// be exhausted, and -1 otherwise.
func (s *Seq) Len() int {
	if !s.cached {
		return -1
	}
	s.src.mu.Lock()
	defer s.src.mu.Unlock()
	if s.done() {
		return len(s.src.buf)
	}
	return -1
}

// done reports exhaustion. Callers must hold src.mu.
func (s *Seq) done() bool { return s.src.done }

// Iterate calls f on each element until f returns false. On an uncached Seq
// this consumes the elements visited.
func (s *Seq) Iterate(f func(any) bool) {
	for c := s.Cursor(); c.HasElem(); c.Next() {
		if !f(c.Elem()) {
			break
		}
	}
}

// Cursor returns a cursor over the sequence. Cursors of an uncached Seq
// share its consumption state; cursors of a cached view each start at the
// beginning of the retained buffer.
func (s *Seq) Cursor() Cursor {
	if s.cached {
		return &cachedSeqCursor{src: s.src}
	}
	return &seqCursor{src: s.src}
}

// index implements the package-level Index for a Seq.
func (s *Seq) index(rawIndex any) (any, error) {
	i, ok := rawIndex.(int)
	if !ok {
		return nil, errs.TypeMismatch{
			What: "seq index", Valid: "integer", Actual: Kind(rawIndex)}
	}
	if i < 0 {
		// The length is not known yet, so there is no end to count from.
		return nil, errs.TypeMismatch{
			What: "seq index", Valid: "non-negative integer",
			Actual: strconv.Itoa(i)}
	}
	if s.cached {
		n := s.src.fill(i + 1)
		if i < n {
			return s.src.at(i), nil
		}
		return nil, posIndexOutOfRange(strconv.Itoa(i), n)
	}
	// Single-pass: produce and discard elements before position i.
	for k := 0; ; k++ {
		v, ok := s.src.pull1()
		if !ok {
			return nil, posIndexOutOfRange(strconv.Itoa(i), k)
		}
		if k == i {
			return v, nil
		}
	}
}

// seqCursor is a cursor over an uncached Seq. It holds at most one element
// of lookahead, pulled lazily from the shared source.
type seqCursor struct {
	src    *seqSource
	v      any
	ok     bool
	primed bool
}

func (c *seqCursor) prime() {
	if !c.primed {
		c.v, c.ok = c.src.pull1()
		c.primed = true
	}
}

func (c *seqCursor) Elem() any {
	c.prime()
	return c.v
}

func (c *seqCursor) HasElem() bool {
	c.prime()
	return c.ok
}

func (c *seqCursor) Next() {
	c.prime()
	c.primed = false
	c.v = nil
}

// cachedSeqCursor is a cursor over a cached Seq view, reading through the
// retained buffer and extending it on demand.
type cachedSeqCursor struct {
	src *seqSource
	i   int
}

func (c *cachedSeqCursor) Elem() any {
	c.src.fill(c.i + 1)
	return c.src.at(c.i)
}

func (c *cachedSeqCursor) HasElem() bool {
	return c.src.fill(c.i+1) > c.i
}

func (c *cachedSeqCursor) Next() { c.i++ }
