package loadable

import "time"

// A DelayFunc schedules a call of f after d has elapsed.
//
// A DelayFunc is how a [Loader] waits out its debounce delay. The default
// one uses [time.AfterFunc]. Tests substitute one that collects the
// callbacks and fires them on demand.
type DelayFunc func(d time.Duration, f func())

func afterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}

// Options configures a [Loader].
//
// The zero Options is valid: overlapping loads collapse into a single
// queued reload, every load publishes Loading first, only the newest
// outcome publishes, and there is no debouncing.
type Options struct {
	// NoLoadingOnReload suppresses the transition to Loading when
	// a load starts, unless the current phase is Pending.
	// Useful for keeping the previous value on screen while reloading.
	NoLoadingOnReload bool

	// NoDedup disables collapsing of overlapping loads.
	// By default, a load that arrives while another is in flight does
	// not start; it is stored as the single queued reload, overwriting
	// any previously queued one, and runs when the in-flight load
	// settles. With NoDedup, every load runs, and only the newest
	// one's outcome publishes (unless PublishAll).
	NoDedup bool

	// PublishAll publishes the outcome of every completed load, even
	// stale ones. By default an outcome publishes only if no newer load
	// has been requested in the meantime.
	PublishAll bool

	// DebounceDelay, when positive, delays the start of loads by this
	// amount to absorb rapid repeated requests. Configuring a delay
	// disables the collapsing described under NoDedup; the debounce
	// window itself absorbs the burst, and every load eventually runs.
	DebounceDelay time.Duration

	// DebounceFirst subjects a load to the debounce delay even when it
	// is the only one in flight. By default a sole load starts
	// immediately and only overlapping ones wait.
	DebounceFirst bool

	// StartLoading selects Loading as the initial phase instead of
	// Pending. [NewBinding] and [Watch] imply it, since they start
	// loading right away.
	StartLoading bool

	// Delay overrides the timer used for debouncing.
	// If nil, [time.AfterFunc] is used.
	Delay DelayFunc
}
