// Package errs declares error types used throughout the engine. All of the
// error types carry enough context for the caller to produce a useful
// diagnostic without string matching.
package errs

import "fmt"

// OutOfRange encodes an error where a value is out of its valid range. It is
// the error returned by indexing operations on positional values.
type OutOfRange struct {
	What      string
	ValidLow  string
	ValidHigh string
	Actual    string
}

func (e OutOfRange) Error() string {
	return fmt.Sprintf("out of range: %s must be from %s to %s, but is %s",
		e.What, e.ValidLow, e.ValidHigh, e.Actual)
}

// TypeMismatch encodes an error where a value does not have the type or
// capability an operation requires.
type TypeMismatch struct {
	What   string
	Valid  string
	Actual string
}

func (e TypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: %s must be %s, but is %s",
		e.What, e.Valid, e.Actual)
}

// Immutable encodes an error where an operation attempts to change a slot of
// an immutable structure, such as reassigning an element of a list or setting
// a read-only box.
type Immutable struct {
	Op   string
	What string
}

func (e Immutable) Error() string {
	return fmt.Sprintf("cannot %s %s: structure is immutable", e.Op, e.What)
}

// Composition encodes an error where a component that is not a capability is
// composed into a capability set.
type Composition struct {
	Composee string
	Composer string
}

func (e Composition) Error() string {
	return fmt.Sprintf("cannot compose %s into %s: not a capability",
		e.Composee, e.Composer)
}
