package loadable

// Map returns a [Loadable] with f applied to the resolved value of l.
// If l is not Resolved, Map returns l unchanged, apart from the value type.
func Map[T, U any](l Loadable[T], f func(T) U) Loadable[U] {
	if l.phase != PhaseResolved {
		return Loadable[U]{phase: l.phase, err: l.err}
	}
	return Resolved(f(l.value))
}

// FlatMap returns f applied to the resolved value of l.
// If l is not Resolved, FlatMap returns l unchanged, apart from the value
// type.
//
// f must be free of side effects. It composes an already settled value;
// it does not start another operation.
func FlatMap[T, U any](l Loadable[T], f func(T) Loadable[U]) Loadable[U] {
	if l.phase != PhaseResolved {
		return Loadable[U]{phase: l.phase, err: l.err}
	}
	return f(l.value)
}

// Combine merges two Loadables into one with f.
//
// When both a and b are Resolved, Combine returns
// Resolved(f(a value, b value)). Otherwise the first match below wins:
// a Failed, b Failed, a Pending, b Pending, a Loading, b Loading.
func Combine[A, B, C any](a Loadable[A], b Loadable[B], f func(A, B) C) Loadable[C] {
	switch {
	case a.phase == PhaseFailed:
		return Failed[C](a.err)
	case b.phase == PhaseFailed:
		return Failed[C](b.err)
	case a.phase == PhasePending || b.phase == PhasePending:
		return Pending[C]()
	case a.phase == PhaseLoading || b.phase == PhaseLoading:
		return Loading[C]()
	default:
		return Resolved(f(a.value, b.value))
	}
}
