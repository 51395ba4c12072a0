package timer

import (
	"reflect"
	"testing"
	"time"
)

var epoch = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestEveryFiresOncePerPeriod(t *testing.T) {
	l := NewLoop(epoch)
	n := 0
	l.Every(100*time.Millisecond, func() { n++ })

	if fired := l.Advance(epoch.Add(99 * time.Millisecond)); fired != 0 {
		t.Fatalf("fired %d before first period", fired)
	}
	for ms := 100; ms <= 350; ms += 50 {
		l.Advance(epoch.Add(time.Duration(ms) * time.Millisecond))
	}
	if n != 3 {
		t.Fatalf("n = %d, want 3", n)
	}
	if got := l.Now(); !got.Equal(epoch.Add(350 * time.Millisecond)) {
		t.Fatalf("Now() = %v", got)
	}
}

func TestAfterFiresOnce(t *testing.T) {
	l := NewLoop(epoch)
	n := 0
	l.After(time.Second, func() { n++ })
	l.Advance(epoch.Add(5 * time.Second))
	if n != 1 {
		t.Fatalf("n = %d, want 1", n)
	}
	if l.Pending() != 0 {
		t.Fatalf("Pending() = %d after one-shot fired", l.Pending())
	}
}

func TestCancelStopsTask(t *testing.T) {
	l := NewLoop(epoch)
	n := 0
	cancel := l.Every(10*time.Millisecond, func() { n++ })
	l.Advance(epoch.Add(10 * time.Millisecond))
	l.Advance(epoch.Add(25 * time.Millisecond))
	cancel()
	cancel()
	l.Advance(epoch.Add(time.Second))
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
}

func TestCallbackCanCancelItself(t *testing.T) {
	l := NewLoop(epoch)
	n := 0
	var cancel func()
	cancel = l.Every(10*time.Millisecond, func() {
		n++
		if n == 2 {
			cancel()
		}
	})
	for ms := 10; ms <= 100; ms += 10 {
		l.Advance(epoch.Add(time.Duration(ms) * time.Millisecond))
	}
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
}

func TestDueOrderAndNestedScheduling(t *testing.T) {
	l := NewLoop(epoch)
	var order []string
	l.After(30*time.Millisecond, func() { order = append(order, "c") })
	l.After(10*time.Millisecond, func() {
		order = append(order, "a")
		// Scheduled relative to the firing time (10ms), so due at 15ms.
		l.After(5*time.Millisecond, func() { order = append(order, "b") })
	})
	l.Advance(epoch.Add(time.Second))

	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(order, want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
}

func TestEveryDropsMissedPeriods(t *testing.T) {
	l := NewLoop(epoch)
	n := 0
	l.Every(100*time.Millisecond, func() { n++ })

	l.Advance(epoch.Add(16 * time.Millisecond))
	if fired := l.Advance(epoch.Add(10 * time.Second)); fired != 1 {
		t.Fatalf("fired %d times after a 10s stall, want 1", fired)
	}
	if l.Advance(epoch.Add(10*time.Second+99*time.Millisecond)) != 0 {
		t.Fatalf("fired again before the next slot")
	}
	l.Advance(epoch.Add(10*time.Second + 100*time.Millisecond))
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
}

func TestLateTickSchedulesFromNow(t *testing.T) {
	l := NewLoop(epoch)
	var at time.Time
	l.Every(100*time.Millisecond, func() {
		if at.IsZero() {
			at = l.Now()
			l.After(time.Second, func() { t.Fatalf("one-shot fired inside the stalled frame") })
		}
	})
	stall := epoch.Add(10 * time.Second)
	l.Advance(stall)
	if !at.Equal(stall) {
		t.Fatalf("late tick ran at %v, want %v", at, stall)
	}
}

func TestAdvanceBackwardsIsNoop(t *testing.T) {
	l := NewLoop(epoch)
	l.Advance(epoch.Add(time.Second))
	if fired := l.Advance(epoch); fired != 0 {
		t.Fatalf("fired = %d", fired)
	}
	if !l.Now().Equal(epoch.Add(time.Second)) {
		t.Fatalf("clock moved backwards to %v", l.Now())
	}
}

func TestEveryPanicsOnNonPositivePeriod(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("Every(0) did not panic")
		}
	}()
	NewLoop(epoch).Every(0, func() {})
}
