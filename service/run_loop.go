package service

import (
	"errors"
	"sync"
	"time"

	"github.com/benbjohnson/clock"

	"myresolver/domain"
	"myresolver/helpers"
	"myresolver/interfaces"
)

// ErrLoopAlreadyRunning is returned by Run when the loop is already running or has
// already finished; a run loop is single-use.
var ErrLoopAlreadyRunning = errors.New("run loop is already running or finished")

type wakeableEntry struct {
	w       interfaces.Wakeable
	onReady func()
}

type loopTimer struct {
	id       domain.TimerID
	deadline time.Time
	fn       func()
}

// runLoop is the single-goroutine cooperative loop behind interfaces.EventLoop.
// All callbacks run on the goroutine that called Run. Only Terminate (and
// Wakeable.Signal) may be called from other goroutines; everything else must
// happen before Run or from a callback on the loop goroutine.
type runLoop struct {
	clk clock.Clock

	notify    chan struct{}
	terminate chan struct{}
	termOnce  sync.Once

	runMu   sync.Mutex
	running bool
	done    bool

	wakeables []wakeableEntry
	timers    []*loopTimer
	lastID    domain.TimerID
}

// NewRunLoop creates a run loop driven by clk (clock.New() in production,
// clock.NewMock() in tests).
//
// Parameter clk — clock used for timer deadlines; required.
//
// Returns: an interfaces.EventLoop ready for AddWakeable/ScheduleTimer and a
// single Run.
//
// Called from cmd/main (host loop) and service.NewResolverBridge (worker loop).
func NewRunLoop(clk clock.Clock) interfaces.EventLoop {
	return &runLoop{
		clk:       helpers.NilPanic[clock.Clock](clk, "service.run_loop.go: clk is required"),
		notify:    make(chan struct{}, 1),
		terminate: make(chan struct{}),
	}
}

// Run executes the loop until Terminate: due timers fire in deadline order, wake
// signals dispatch their callbacks, and the loop blocks on the clock or the notify
// channel in between. Returns ErrLoopAlreadyRunning on reuse.
func (l *runLoop) Run() error {
	l.runMu.Lock()
	if l.running || l.done {
		l.runMu.Unlock()
		return ErrLoopAlreadyRunning
	}
	l.running = true
	l.runMu.Unlock()

	defer func() {
		l.runMu.Lock()
		l.running = false
		l.done = true
		l.runMu.Unlock()
	}()

	for {
		select {
		case <-l.terminate:
			return nil
		default:
		}

		l.runDueTimers()

		var clockTimer *clock.Timer
		var timerC <-chan time.Time
		if deadline, ok := l.nextDeadline(); ok {
			delay := deadline.Sub(l.clk.Now())
			if delay < 0 {
				delay = 0
			}
			clockTimer = l.clk.Timer(delay)
			timerC = clockTimer.C
		}

		select {
		case <-l.terminate:
		case <-l.notify:
			l.dispatchWakeables()
		case <-timerC:
		}

		if clockTimer != nil {
			clockTimer.Stop()
		}
	}
}

// Terminate requests loop exit after the current callback returns; idempotent and
// safe from any goroutine.
func (l *runLoop) Terminate() {
	l.termOnce.Do(func() {
		close(l.terminate)
	})
}

// AddWakeable registers w and its callback; registering the same wakeable again
// replaces the callback. A signal already pending on w is picked up immediately.
func (l *runLoop) AddWakeable(w interfaces.Wakeable, onReady func()) {
	for i := range l.wakeables {
		if l.wakeables[i].w == w {
			l.wakeables[i].onReady = onReady
			return
		}
	}
	l.wakeables = append(l.wakeables, wakeableEntry{w: w, onReady: onReady})
	w.Attach(l.notify)
}

// RemoveWakeable detaches and unregisters w; unknown wakeables are a no-op.
func (l *runLoop) RemoveWakeable(w interfaces.Wakeable) {
	for i := range l.wakeables {
		if l.wakeables[i].w == w {
			l.wakeables = append(l.wakeables[:i], l.wakeables[i+1:]...)
			w.Detach()
			return
		}
	}
}

// ScheduleTimer arms a single-shot timer firing after delay; timers never repeat,
// callbacks re-arm explicitly. Negative delays are treated as zero.
func (l *runLoop) ScheduleTimer(delay time.Duration, fn func()) domain.TimerID {
	if delay < 0 {
		delay = 0
	}
	l.lastID++
	l.timers = append(l.timers, &loopTimer{
		id:       l.lastID,
		deadline: l.clk.Now().Add(delay),
		fn:       fn,
	})

	return l.lastID
}

// CancelTimer removes a scheduled timer. Unknown, already-fired and
// already-cancelled ids (including the zero TimerID) are a no-op.
func (l *runLoop) CancelTimer(timerID domain.TimerID) {
	for i := range l.timers {
		if l.timers[i].id == timerID {
			l.timers = append(l.timers[:i], l.timers[i+1:]...)
			return
		}
	}
}

// runDueTimers pops and runs due timers one at a time, earliest deadline first
// (scheduling order for equal deadlines), so a callback cancelling a later due
// timer still suppresses it.
func (l *runLoop) runDueTimers() {
	for {
		now := l.clk.Now()
		idx := -1
		for i, t := range l.timers {
			if t.deadline.After(now) {
				continue
			}
			if idx == -1 || t.deadline.Before(l.timers[idx].deadline) ||
				(t.deadline.Equal(l.timers[idx].deadline) && t.id < l.timers[idx].id) {
				idx = i
			}
		}
		if idx == -1 {
			return
		}
		timer := l.timers[idx]
		l.timers = append(l.timers[:idx], l.timers[idx+1:]...)
		timer.fn()
	}
}

// nextDeadline returns the earliest scheduled deadline, ok=false when no timers
// are armed.
func (l *runLoop) nextDeadline() (time.Time, bool) {
	var deadline time.Time
	found := false
	for _, t := range l.timers {
		if !found || t.deadline.Before(deadline) {
			deadline = t.deadline
			found = true
		}
	}

	return deadline, found
}

// dispatchWakeables invokes the callback of every wakeable with a pending signal.
// Iterates over a copy because callbacks may add or remove wakeables.
func (l *runLoop) dispatchWakeables() {
	entries := make([]wakeableEntry, len(l.wakeables))
	copy(entries, l.wakeables)
	for _, e := range entries {
		if e.w.TakePending() {
			e.onReady()
		}
	}
}
