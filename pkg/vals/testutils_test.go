package vals

import (
	"src.slip.dev/pkg/must"
	"src.slip.dev/pkg/tt"
)

// vs is a shorthand for building []any element slices in tests.
func vs(xs ...any) []any { return xs }

// collect drains an iterable into a slice, panicking on error.
func collect(v any) []any { return must.OK1(Collect(v)) }

// eq returns a matcher that matches a return value using Equal.
func eq(want any) tt.Matcher { return eqMatcher{want} }

type eqMatcher struct{ want any }

func (m eqMatcher) Match(got tt.RetValue) bool { return Equal(m.want, got) }
