package loadable

import (
	"github.com/b97tsk/async"
)

// A LoadFunc starts one asynchronous operation.
//
// A LoadFunc runs in a [async.Task] function and must not block; it starts
// whatever work it has to do and returns. When the work completes, it calls
// settle exactly once, with either a value or an error. settle is safe for
// concurrent use, so the work may complete on another goroutine; a second
// call of settle is ignored.
//
// For wrapping an ordinary blocking function, use [Go].
type LoadFunc[T any] func(settle func(v T, err error))

// Go returns a [LoadFunc] that runs f on its own goroutine and settles with
// its results. f is under no obligation not to block.
func Go[T any](f func() (T, error)) LoadFunc[T] {
	return func(settle func(v T, err error)) {
		go func() {
			settle(f())
		}()
	}
}

// A Loader coordinates repeated loads of a single value of type T.
//
// A Loader owns one slot of recurring asynchronous work. Each call of
// the Load method requests a load; the Loader decides, per its [Options],
// how many operations actually run, in what order, and which of their
// outcomes publish into the observable state cell. Rapid requests collapse
// into at most one queued reload, or are absorbed by a debounce window;
// outcomes of outdated operations are suppressed, so an older operation
// that settles late never overwrites a newer result.
//
// A Loader publishes [Loadable] values through an [async.State], which any
// coroutine of the same executor can watch. All internal bookkeeping is
// mutated only in task functions of that executor; a Loader must not be
// shared by more than one [async.Executor].
type Loader[T any] struct {
	executor *async.Executor
	opts     Options
	delay    DelayFunc
	initial  Loadable[T]
	state    *async.State[Loadable[T]]
	running  int
	queued   *load[T]
	gen      uint64
	nextGen  uint64
}

// A load carries the LoadFunc of one Load call.
// Its identity doubles as the cancelation token for a queued reload.
type load[T any] struct {
	fn LoadFunc[T]
}

// An outcome carries the completion of one operation from its settle
// callback to the coroutine awaiting it.
type outcome[T any] struct {
	done    async.Signal
	settled bool
	value   T
	err     error
}

// New creates a [Loader] that spawns its work on e.
//
// The initial phase is Pending, or Loading if o.StartLoading is set.
func New[T any](e *async.Executor, o Options) *Loader[T] {
	l := &Loader[T]{
		executor: e,
		opts:     o,
		delay:    o.Delay,
		nextGen:  1,
	}
	if l.delay == nil {
		l.delay = afterFunc
	}
	if o.StartLoading {
		l.initial = Loading[T]()
	}
	l.state = async.NewState(l.initial)
	return l
}

// State returns the state cell that l publishes into.
//
// Watch it in a task function to observe every publication; setting
// re-notifies watchers even when the value is unchanged. The cell is owned
// by l; one must not call its Set method.
func (l *Loader[T]) State() *async.State[Loadable[T]] {
	return l.state
}

// Get returns the last published [Loadable].
//
// Without proper synchronization, one should only call this method in
// a [async.Task] function.
func (l *Loader[T]) Get() Loadable[T] {
	return l.state.Get()
}

// Load requests a load with f and returns a cancel function.
//
// Calling cancel discards the queued reload that this Load call produced,
// provided it has not been overwritten or started yet. It never stops an
// operation that is already running; at worst a running operation's outcome
// is suppressed by a newer Load or a [Loader.Reset].
//
// Load is safe for concurrent use.
func (l *Loader[T]) Load(f LoadFunc[T]) (cancel func()) {
	ld := &load[T]{fn: f}
	l.executor.Spawn(async.Do(func() {
		l.update(ld, false)
	}))
	return func() {
		l.executor.Spawn(async.Do(func() {
			if l.queued == ld {
				l.queued = nil
			}
		}))
	}
}

// Reset republishes the initial [Loadable] and discards the queued reload.
//
// An operation in flight at the time of a Reset still settles normally, but
// its outcome never publishes, regardless of timing: the completion closes
// over a generation that a Reset invalidates for good.
//
// Reset is safe for concurrent use.
func (l *Loader[T]) Reset() {
	l.executor.Spawn(async.Do(func() {
		l.state.Set(l.initial)
		l.gen = 0
		l.queued = nil
	}))
}

// update is the per-request decision procedure. It runs in a task function.
// reload marks the re-entry from drain with a previously queued load;
// a reload neither advances the generation nor debounces again.
func (l *Loader[T]) update(ld *load[T], reload bool) {
	if !reload {
		// Generations come from a separate counter so that values
		// handed out after a Reset (which sets gen to the invalid 0)
		// never collide with ones captured before it.
		l.gen = l.nextGen
		l.nextGen++
	}

	dedup := !l.opts.NoDedup && l.opts.DebounceDelay <= 0
	if l.running > 0 && dedup {
		l.queued = ld
		return
	}

	l.running++
	myGen := l.gen

	if !l.opts.NoLoadingOnReload || l.state.Get().phase == PhasePending {
		l.state.Set(Loading[T]())
	}

	if !reload && l.opts.DebounceDelay > 0 && (l.running > 1 || l.opts.DebounceFirst) {
		l.executor.Spawn(l.debounced(ld, myGen))
		return
	}

	l.start(ld, myGen)
}

// debounced returns a task that waits out the debounce delay, then starts
// the operation, unless it went stale while waiting.
func (l *Loader[T]) debounced(ld *load[T], myGen uint64) async.Task {
	return func(co *async.Coroutine) async.Result {
		sig := new(async.Signal)
		l.delay(l.opts.DebounceDelay, func() {
			l.executor.Spawn(async.Do(sig.Notify))
		})
		return co.Await(sig).Then(func(co *async.Coroutine) async.Result {
			l.start(ld, myGen)
			return co.End()
		})
	}
}

// start invokes the LoadFunc and arranges for settlement and drain.
// It runs in a task function, after the operation has been admitted and
// after any debounce wait.
func (l *Loader[T]) start(ld *load[T], myGen uint64) {
	if !l.canPublish(myGen) {
		// Stale before it even ran. Skip the operation; it still
		// drains like a completed one.
		l.drain()
		return
	}

	o := new(outcome[T])

	// The awaiting coroutine is spawned first so that it watches o.done
	// before any settlement task can notify it.
	l.executor.Spawn(func(co *async.Coroutine) async.Result {
		return co.Await(&o.done).Then(l.settled(o, myGen))
	})

	ld.fn(l.settler(o))
}

// settler returns the settle callback handed to a LoadFunc.
// The callback fans the completion into the executor, where the first
// settlement wins and notifies the awaiting coroutine.
func (l *Loader[T]) settler(o *outcome[T]) func(v T, err error) {
	return func(v T, err error) {
		l.executor.Spawn(async.Do(func() {
			if o.settled {
				return
			}
			o.settled = true
			o.value, o.err = v, err
			o.done.Notify()
		}))
	}
}

// settled returns the task that publishes an operation's outcome, if it is
// still entitled to publish, and then drains.
func (l *Loader[T]) settled(o *outcome[T], myGen uint64) async.Task {
	return func(co *async.Coroutine) async.Result {
		if l.canPublish(myGen) {
			if o.err != nil {
				l.state.Set(Failed[T](o.err))
			} else {
				l.state.Set(Resolved(o.value))
			}
		}
		l.drain()
		return co.End()
	}
}

// canPublish reports whether an operation of generation myGen may publish
// its outcome, or run at all. It is re-evaluated at every checkpoint
// because both the generation and the queued reload can change while an
// operation is suspended.
func (l *Loader[T]) canPublish(myGen uint64) bool {
	return l.opts.PublishAll || (myGen == l.gen && l.queued == nil)
}

// drain accounts for one finished operation and re-enters update with
// the queued reload, if any. However many loads collapsed while one was in
// flight, exactly one reload follows, with the newest LoadFunc.
func (l *Loader[T]) drain() {
	l.running--
	if ld := l.queued; ld != nil {
		l.queued = nil
		l.update(ld, true)
	}
}
