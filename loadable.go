package loadable

import "fmt"

// A Phase tells which of the four states a [Loadable] is in.
type Phase int

const (
	// PhasePending is the phase of a [Loadable] whose loader has not yet
	// been told to load anything. The zero Loadable is Pending.
	PhasePending Phase = iota
	// PhaseLoading is the phase of a [Loadable] whose loader has started
	// an operation that has not yet settled.
	PhaseLoading
	// PhaseFailed is the phase of a [Loadable] whose last published
	// operation settled with an error.
	PhaseFailed
	// PhaseResolved is the phase of a [Loadable] whose last published
	// operation settled with a value.
	PhaseResolved
)

// String returns the name of p.
func (p Phase) String() string {
	switch p {
	case PhasePending:
		return "Pending"
	case PhaseLoading:
		return "Loading"
	case PhaseFailed:
		return "Failed"
	case PhaseResolved:
		return "Resolved"
	default:
		return "Unknown"
	}
}

// A Loadable is a value of type T in one of four phases: Pending, Loading,
// Failed or Resolved.
//
// Exactly one phase is active at a time. The error payload is non-nil only
// in the Failed phase; the value payload is meaningful only in the Resolved
// phase. All other payload slots hold zero values, so a Loadable of
// a comparable type is itself comparable and two Loadables in the same
// non-Resolved phase with the same error compare equal.
//
// The zero Loadable is Pending.
type Loadable[T any] struct {
	phase Phase
	err   error
	value T
}

// Pending returns a [Loadable] in the Pending phase.
func Pending[T any]() Loadable[T] {
	return Loadable[T]{}
}

// Loading returns a [Loadable] in the Loading phase.
func Loading[T any]() Loadable[T] {
	return Loadable[T]{phase: PhaseLoading}
}

// Failed returns a [Loadable] in the Failed phase, carrying err verbatim.
func Failed[T any](err error) Loadable[T] {
	return Loadable[T]{phase: PhaseFailed, err: err}
}

// Resolved returns a [Loadable] in the Resolved phase, carrying v.
func Resolved[T any](v T) Loadable[T] {
	return Loadable[T]{phase: PhaseResolved, value: v}
}

// Phase returns the active phase of l.
func (l Loadable[T]) Phase() Phase {
	return l.phase
}

// Value returns the resolved value of l.
// The second return value is true if and only if l is Resolved.
func (l Loadable[T]) Value() (T, bool) {
	return l.value, l.phase == PhaseResolved
}

// Err returns the error of l, which is non-nil if and only if l is Failed.
func (l Loadable[T]) Err() error {
	return l.err
}

// String returns a description of l for debugging.
func (l Loadable[T]) String() string {
	switch l.phase {
	case PhaseResolved:
		return fmt.Sprintf("Resolved(%v)", l.value)
	case PhaseFailed:
		return fmt.Sprintf("Failed(%v)", l.err)
	default:
		return l.phase.String()
	}
}
