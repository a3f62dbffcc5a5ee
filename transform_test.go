package loadable_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/b97tsk/loadable"
)

func TestMap(t *testing.T) {
	double := func(v int) int { return v * 2 }

	myErr := errors.New("boom")

	for _, l := range []loadable.Loadable[int]{
		loadable.Pending[int](),
		loadable.Loading[int](),
		loadable.Failed[int](myErr),
	} {
		if got := loadable.Map(l, double); got != l {
			t.Errorf("got %v, want %v unchanged.", got, l)
		}
	}

	if got := loadable.Map(loadable.Resolved(21), double); got != loadable.Resolved(42) {
		t.Errorf("got %v, want Resolved(42).", got)
	}

	// Map may also change the value type.
	if got := loadable.Map(loadable.Resolved(42), strconv.Itoa); got != loadable.Resolved("42") {
		t.Errorf("got %v, want Resolved(\"42\").", got)
	}
}

func TestFlatMap(t *testing.T) {
	myErr := errors.New("boom")

	f := func(v int) loadable.Loadable[int] {
		if v < 0 {
			return loadable.Failed[int](myErr)
		}
		return loadable.Resolved(v * 2)
	}

	for _, l := range []loadable.Loadable[int]{
		loadable.Pending[int](),
		loadable.Loading[int](),
		loadable.Failed[int](myErr),
	} {
		if got := loadable.FlatMap(l, f); got != l {
			t.Errorf("got %v, want %v unchanged.", got, l)
		}
	}

	if got := loadable.FlatMap(loadable.Resolved(21), f); got != loadable.Resolved(42) {
		t.Errorf("got %v, want Resolved(42).", got)
	}

	if got := loadable.FlatMap(loadable.Resolved(-1), f); got != loadable.Failed[int](myErr) {
		t.Errorf("got %v, want Failed.", got)
	}
}

func TestCombine(t *testing.T) {
	add := func(a, b int) int { return a + b }

	errA := errors.New("a")
	errB := errors.New("b")

	pending := loadable.Pending[int]()
	loading := loadable.Loading[int]()

	cases := []struct {
		a, b, want loadable.Loadable[int]
	}{
		// Failed beats everything, left operand first.
		{loadable.Failed[int](errA), loadable.Failed[int](errB), loadable.Failed[int](errA)},
		{loadable.Failed[int](errA), pending, loadable.Failed[int](errA)},
		{pending, loadable.Failed[int](errB), loadable.Failed[int](errB)},
		{loading, loadable.Failed[int](errB), loadable.Failed[int](errB)},
		{loadable.Resolved(1), loadable.Failed[int](errB), loadable.Failed[int](errB)},
		// Then Pending, then Loading.
		{pending, loading, pending},
		{loading, pending, pending},
		{pending, loadable.Resolved(2), pending},
		{loading, loadable.Resolved(2), loading},
		{loadable.Resolved(1), loading, loading},
		// Both Resolved.
		{loadable.Resolved(1), loadable.Resolved(2), loadable.Resolved(3)},
	}

	for i, c := range cases {
		if got := loadable.Combine(c.a, c.b, add); got != c.want {
			t.Errorf("case %v: got %v, want %v.", i, got, c.want)
		}
	}
}
