package loadable

// Dispatch calls exactly one of the given handlers, the one matching
// the phase of l, and returns its result.
//
// resolved and failed must not be nil.
// loading and pending may be nil, in which case Dispatch returns the zero
// value of R when their phase is active.
func Dispatch[T, R any](
	l Loadable[T],
	resolved func(T) R,
	failed func(error) R,
	loading func() R,
	pending func() R,
) R {
	switch l.phase {
	case PhaseResolved:
		return resolved(l.value)
	case PhaseFailed:
		return failed(l.err)
	case PhaseLoading:
		if loading != nil {
			return loading()
		}
	default:
		if pending != nil {
			return pending()
		}
	}
	var zero R
	return zero
}
