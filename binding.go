package loadable

import (
	"slices"

	"github.com/b97tsk/async"
)

// A Binding drives a [Loader] from a dependency set that a host inspects on
// each of its own update cycles.
//
// The host calls the Update method with the current dependency values.
// A load is requested on the first call and whenever the values differ from
// the previous call's, compared shallowly. Before each re-request, and at
// teardown via the Close method, the previous request's cancel function
// runs, discarding a reload that is still queued but not yet started.
//
// A Binding starts in the Loading phase, since its first Update loads
// immediately.
type Binding[T any] struct {
	loader *Loader[T]
	fn     LoadFunc[T]
	deps   []any
	ran    bool
	cancel func()
}

// NewBinding creates a [Binding] that loads with f on a [Loader] spawning
// its work on e.
func NewBinding[T any](e *async.Executor, f LoadFunc[T], o Options) *Binding[T] {
	o.StartLoading = true
	return &Binding[T]{
		loader: New[T](e, o),
		fn:     f,
	}
}

// Loader returns the underlying [Loader].
func (b *Binding[T]) Loader() *Loader[T] {
	return b.loader
}

// Get returns the last published [Loadable].
//
// Without proper synchronization, one should only call this method in
// a [async.Task] function.
func (b *Binding[T]) Get() Loadable[T] {
	return b.loader.Get()
}

// Update requests a load if deps differ from the previous call's deps.
// The first call always requests one.
//
// Dependency values are compared shallowly with ==; they must be
// comparable.
func (b *Binding[T]) Update(deps ...any) {
	if b.ran && shallowEqual(b.deps, deps) {
		return
	}
	if b.cancel != nil {
		b.cancel()
	}
	b.deps = slices.Clone(deps)
	b.ran = true
	b.cancel = b.loader.Load(b.fn)
}

// Close discards a reload that is still queued.
// It does not stop an operation that is already running.
func (b *Binding[T]) Close() {
	if b.cancel != nil {
		b.cancel()
		b.cancel = nil
	}
}

func shallowEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Watch creates a [Loader] that loads with f immediately and again whenever
// any of the given events notifies.
//
// Watch spawns a coroutine on e that watches ev. Before each re-run, and
// when stopped, the coroutine runs the previous load request's cancel
// function, discarding a reload that is still queued but not yet started.
// Calling stop ends the coroutine; the Loader remains usable.
//
// The returned Loader starts in the Loading phase.
func Watch[T any](e *async.Executor, f LoadFunc[T], o Options, ev ...async.Event) (l *Loader[T], stop func()) {
	o.StartLoading = true
	l = New[T](e, o)

	quit := new(async.Signal)
	done := false
	events := make([]async.Event, 0, len(ev)+1)
	events = append(events, ev...)
	events = append(events, quit)

	e.Spawn(func(co *async.Coroutine) async.Result {
		if done {
			return co.End()
		}
		co.CleanupFunc(l.Load(f))
		return co.Yield(events...)
	})

	return l, func() {
		e.Spawn(async.Do(func() {
			done = true
			quit.Notify()
		}))
	}
}
