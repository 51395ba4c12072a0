// Package timer provides a single-threaded scheduler. Tasks only run inside
// Advance, on the caller's goroutine, so callbacks never race each other or the
// frame loop that drives them.
package timer

import (
	"sort"
	"time"
)

type task struct {
	seq       uint64
	due       time.Time
	period    time.Duration // zero for one-shot tasks
	fn        func()
	cancelled bool
}

// Loop holds pending tasks ordered by due time.
type Loop struct {
	now   time.Time
	seq   uint64
	tasks []*task
}

// NewLoop creates a loop whose clock starts at start.
func NewLoop(start time.Time) *Loop {
	return &Loop{now: start}
}

// Now returns the time of the last Advance, or the start time.
func (l *Loop) Now() time.Time {
	return l.now
}

// Every runs fn every period, first at Now()+period. It panics if period is
// not positive, like time.NewTicker.
func (l *Loop) Every(period time.Duration, fn func()) func() {
	if period <= 0 {
		panic("timer: non-positive period for Every")
	}
	return l.add(period, period, fn)
}

// After runs fn once, delay after Now().
func (l *Loop) After(delay time.Duration, fn func()) func() {
	if delay < 0 {
		delay = 0
	}
	return l.add(delay, 0, fn)
}

func (l *Loop) add(delay, period time.Duration, fn func()) func() {
	l.seq++
	t := &task{
		seq:    l.seq,
		due:    l.now.Add(delay),
		period: period,
		fn:     fn,
	}
	l.tasks = append(l.tasks, t)
	return func() { l.cancel(t) }
}

func (l *Loop) cancel(t *task) {
	if t.cancelled {
		return
	}
	t.cancelled = true
	for i, other := range l.tasks {
		if other == t {
			l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
			return
		}
	}
}

// Pending is the number of scheduled, uncancelled tasks.
func (l *Loop) Pending() int {
	return len(l.tasks)
}

// Advance moves the clock to now, running every task that falls due on the
// way in due-time order (ties in scheduling order). It returns the number of
// callbacks run. Moving backwards is a no-op.
//
// A periodic task more than one period behind fires once, at now, and its
// next run moves to the first slot after now. Missed periods are dropped.
func (l *Loop) Advance(now time.Time) int {
	if now.Before(l.now) {
		return 0
	}
	fired := 0
	for {
		t := l.next(now)
		if t == nil {
			break
		}
		at := t.due
		if t.period > 0 {
			t.due = t.due.Add(t.period)
			if !t.due.After(now) {
				at = now
				missed := now.Sub(t.due)/t.period + 1
				t.due = t.due.Add(missed * t.period)
			}
		} else {
			l.cancel(t)
		}
		if at.After(l.now) {
			l.now = at
		}
		t.fn()
		fired++
	}
	l.now = now
	return fired
}

func (l *Loop) next(limit time.Time) *task {
	if len(l.tasks) == 0 {
		return nil
	}
	sort.SliceStable(l.tasks, func(i, j int) bool {
		if !l.tasks[i].due.Equal(l.tasks[j].due) {
			return l.tasks[i].due.Before(l.tasks[j].due)
		}
		return l.tasks[i].seq < l.tasks[j].seq
	})
	t := l.tasks[0]
	if t.due.After(limit) {
		return nil
	}
	return t
}
