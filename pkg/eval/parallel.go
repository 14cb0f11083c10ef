package eval

import (
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"src.slip.dev/pkg/errutil"
	"src.slip.dev/pkg/logutil"
	"src.slip.dev/pkg/vals"
)

var logger = logutil.GetLogger("[parallel] ")

type options struct {
	batch   int
	workers int
}

// Option configures Hyper and Race.
type Option func(*options)

// BatchSize sets how many elements each unit of parallel work carries.
// Values below 1 are ignored.
func BatchSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.batch = n
		}
	}
}

// Workers sets the number of worker goroutines. Values below 1 are ignored.
func Workers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

func defaultOptions() options {
	return options{batch: 64, workers: runtime.GOMAXPROCS(0)}
}

// Hyper maps f over the elements of an iterable value in parallel: the input
// is pulled in batches of a configurable size, batches are processed on a
// bounded pool of workers, and the results are reassembled in input order.
// The input must be finite. An error from f stops further dispatch; errors
// from all batches are combined into one.
func Hyper(v any, f func(any) (any, error), opts ...Option) (vals.List, error) {
	return pmap(v, f, true, opts)
}

// Race is like Hyper, except that results are reassembled in completion
// order. Ordering is the only semantic difference between the two.
func Race(v any, f func(any) (any, error), opts ...Option) (vals.List, error) {
	return pmap(v, f, false, opts)
}

func pmap(v any, f func(any) (any, error), ordered bool, opts []Option) (vals.List, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	cur, err := vals.NewCursor(v)
	if err != nil {
		return vals.EmptyList, err
	}

	type batch struct {
		seq   int
		elems []any
		err   error
	}
	jobs := make(chan batch)
	results := make(chan batch)
	var stop atomic.Bool

	// The dispatcher is the only goroutine that pulls the cursor, so a
	// single-pass input needs no locking beyond its own.
	go func() {
		defer close(jobs)
		for seq := 0; !stop.Load(); seq++ {
			b := make([]any, 0, o.batch)
			for len(b) < o.batch && cur.HasElem() {
				b = append(b, cur.Elem())
				cur.Next()
			}
			if len(b) == 0 {
				return
			}
			jobs <- batch{seq: seq, elems: b}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < o.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				out := make([]any, 0, len(j.elems))
				var jobErr error
				for _, e := range j.elems {
					r, err := f(e)
					if err != nil {
						jobErr = err
						stop.Store(true)
						break
					}
					out = append(out, r)
				}
				results <- batch{seq: j.seq, elems: out, err: jobErr}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var errAll error
	var elems []any
	if ordered {
		bySeq := make(map[int][]any)
		for r := range results {
			if r.err != nil {
				errAll = errutil.Multi(errAll, r.err)
				continue
			}
			bySeq[r.seq] = r.elems
		}
		seqs := maps.Keys(bySeq)
		slices.Sort(seqs)
		for _, s := range seqs {
			elems = append(elems, bySeq[s]...)
		}
	} else {
		for r := range results {
			if r.err != nil {
				errAll = errutil.Multi(errAll, r.err)
				continue
			}
			elems = append(elems, r.elems...)
		}
	}
	if errAll != nil {
		return vals.EmptyList, errAll
	}
	logger.Printf("mapped %d values (%d workers, batch size %d)",
		len(elems), o.workers, o.batch)
	return vals.MakeListSlice(elems), nil
}
