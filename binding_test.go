package loadable_test

import (
	"testing"

	"github.com/b97tsk/async"
	"github.com/b97tsk/loadable"
)

func TestBinding(t *testing.T) {
	t.Run("Update", func(t *testing.T) {
		var myExecutor async.Executor

		myExecutor.Autorun(myExecutor.Run)

		p := new(probe)
		b := loadable.NewBinding(&myExecutor, p.fn(), loadable.Options{})

		if got := b.Get(); got != loadable.Loading[int]() {
			t.Fatalf("got %v, want Loading: a binding assumes work begins immediately.", got.Phase())
		}

		b.Update("a", 1)

		if p.calls != 1 {
			t.Fatalf("got %v operations, want 1: the first observation always loads.", p.calls)
		}

		b.Update("a", 1)

		if p.calls != 1 {
			t.Fatalf("got %v operations, want 1: unchanged dependencies must not load.", p.calls)
		}

		p.settle(0)

		if got := b.Get(); got != loadable.Resolved(10) {
			t.Fatalf("got %v, want Resolved(10).", got)
		}

		b.Update("a", 2)

		if p.calls != 2 {
			t.Errorf("got %v operations, want 2: changed dependencies must load.", p.calls)
		}
	})
	t.Run("CancelQueued", func(t *testing.T) {
		var myExecutor async.Executor

		myExecutor.Autorun(myExecutor.Run)

		p := new(probe)
		b := loadable.NewBinding(&myExecutor, p.fn(), loadable.Options{})

		b.Update(1)
		b.Update(2) // Queued behind the running operation.
		b.Update(3) // Cancels the queued reload, queues its own.
		p.settle(0)

		if p.calls != 2 {
			t.Errorf("got %v operations, want 2: collapsed updates cost one reload.", p.calls)
		}
	})
	t.Run("Close", func(t *testing.T) {
		var myExecutor async.Executor

		myExecutor.Autorun(myExecutor.Run)

		p := new(probe)
		b := loadable.NewBinding(&myExecutor, p.fn(), loadable.Options{})

		b.Update(1)
		b.Update(2)
		b.Close()
		p.settle(0)

		if p.calls != 1 {
			t.Errorf("got %v operations, want 1: Close discards the queued reload.", p.calls)
		}
	})
}

func TestWatch(t *testing.T) {
	t.Run("Reload", func(t *testing.T) {
		var myExecutor async.Executor

		myExecutor.Autorun(myExecutor.Run)

		dep := async.NewState(1)

		p := new(probe)
		l, stop := loadable.Watch(&myExecutor, p.fn(), loadable.Options{}, dep)

		if p.calls != 1 {
			t.Fatalf("got %v operations, want 1: watching loads immediately.", p.calls)
		}

		p.settle(0)

		if got := l.Get(); got != loadable.Resolved(10) {
			t.Fatalf("got %v, want Resolved(10).", got)
		}

		myExecutor.Spawn(async.Do(func() { dep.Set(2) }))

		if p.calls != 2 {
			t.Fatalf("got %v operations, want 2: a notification reloads.", p.calls)
		}

		p.settle(1)

		if got := l.Get(); got != loadable.Resolved(20) {
			t.Fatalf("got %v, want Resolved(20).", got)
		}

		stop()

		myExecutor.Spawn(async.Do(func() { dep.Set(3) }))

		if p.calls != 2 {
			t.Errorf("got %v operations after stop, want 2 still.", p.calls)
		}
	})
	t.Run("StopCancelsQueued", func(t *testing.T) {
		var myExecutor async.Executor

		myExecutor.Autorun(myExecutor.Run)

		dep := async.NewState(1)

		p := new(probe)
		l, stop := loadable.Watch(&myExecutor, p.fn(), loadable.Options{}, dep)

		myExecutor.Spawn(async.Do(func() { dep.Set(2) })) // Queued behind the running operation.
		stop()
		p.settle(0)

		if p.calls != 1 {
			t.Errorf("got %v operations, want 1: stopping discards the queued reload.", p.calls)
		}

		if got := l.Get(); got != loadable.Loading[int]() {
			t.Errorf("got %v, want Loading: the outdated outcome must not publish.", got.Phase())
		}
	})
}
