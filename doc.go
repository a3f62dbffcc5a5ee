// Package loadable coordinates one slot of recurring asynchronous work.
//
// Think of a value that is fetched again and again over time, on every
// change of some input: a search result for the current query, a record for
// the currently selected id. This package tracks that one value as
// a [Loadable], which is always in exactly one of four phases (Pending,
// Loading, Failed or Resolved), and it decides what happens when requests
// arrive faster than the work completes.
//
// The interesting part is the [Loader]. Everything else is a thin consumer
// of Loadable values: [Dispatch] for rendering, and [Map], [FlatMap] and
// [Combine] for composing.
//
// # Collapsing, Debouncing and Staleness
//
// By default, a load requested while another is in flight does not start.
// It becomes the single queued reload, overwriting any previously queued
// one, and runs when the in-flight load settles. A burst of requests thus
// costs at most one follow-up run, with the newest load function.
//
// With [Options].DebounceDelay, rapid requests are absorbed differently:
// a load that overlaps another waits out the delay before running, and
// every load eventually runs. Configuring a delay disables the queueing
// behavior; the two strategies are mutually exclusive.
//
// Either way, every load advances a generation counter, and an operation
// only publishes its outcome if no newer load has been requested in the
// meantime and no reload is queued. An old operation that settles late
// never overwrites a newer result. [Options].PublishAll turns this off and
// publishes every outcome. [Loader.Reset] invalidates the generation for
// good, so outcomes in flight at reset time never publish at all.
//
// A Loader never retries, never aborts a running operation, and never
// fails by itself; a load function's error is published verbatim as
// a Failed value, and it is up to the caller to load again.
//
// # Integration With Package async
//
// A Loader runs on a single-threaded [async.Executor] and publishes into an
// [async.State], so any coroutine of the same executor can watch the slot
// and re-render whenever a value publishes; publishing re-notifies even if
// the value is unchanged. All of a Loader's bookkeeping is mutated only in
// task functions; a Loader must not be shared by more than one executor.
//
// Load functions start their work and return without blocking.
// Completions, wherever they happen, fan back into the executor through
// the settle callback, which is safe for concurrent use. [Go] adapts an
// ordinary blocking function.
//
// # Driving a Loader
//
// There are three ways to request loads:
//
//   - Call [Loader.Load] directly. The slot starts out Pending and nothing
//     runs until the first call.
//   - Let [Watch] spawn a coroutine that loads immediately and again
//     whenever one of the given events notifies.
//   - Let a host call [Binding.Update] on each of its own update cycles
//     with the current dependency values; a load is requested whenever they
//     change, compared shallowly.
//
// With Watch and Binding, the slot starts out Loading, and the cancel
// function of the previous request runs before each new one, discarding
// a queued reload that has not started yet. Cancelation is best-effort:
// work already running cannot be stopped, only outpublished.
package loadable
