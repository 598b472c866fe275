package interfaces

import (
	"time"

	"myresolver/domain"
)

// Wakeable is a cross-goroutine wake signal that an EventLoop can wait on. Producers
// call Signal from any goroutine; the owning loop consumes pending state via
// TakePending and binds itself with Attach/Detach. Signals coalesce: any number of
// Signal calls between two loop iterations produce one dispatch.
//
// Implemented by service.WakeSignal. Attach/Detach/TakePending are loop-side API and
// are only called by the EventLoop implementation holding the wakeable.
type Wakeable interface {
	// Signal marks the wakeable ready and nudges the attached loop; never blocks, safe from any goroutine, coalesces with pending signals.
	// Called from service.resolverBridge (host side after enqueueing a request, worker side after enqueueing a completion) and from Stop.
	Signal()

	// Drain discards any pending signal state without blocking; safe when nothing is pending.
	// Called from loop dispatch and from teardown paths that must leave the wakeable quiet.
	Drain()

	// Attach binds the loop's notify channel; a signal already pending at attach time is forwarded so it cannot be lost.
	// Parameter sink — the loop's notify channel; send must be non-blocking (capacity >= 1 expected).
	// Called from EventLoop.AddWakeable only.
	Attach(sink chan<- struct{})

	// Detach unbinds the notify channel; subsequent Signal calls only set pending state.
	// Called from EventLoop.RemoveWakeable only.
	Detach()

	// TakePending reports whether a signal arrived since the last take, clearing it.
	// Returns: true exactly once per coalesced signal burst.
	// Called from the EventLoop dispatch step.
	TakePending() bool
}

// EventLoop is a single-threaded cooperative run loop: wakeable callbacks and timer
// callbacks execute on the goroutine that called Run, one at a time. Two instances
// exist per bridge — the host application's loop and the worker loop the bridge owns.
//
// Run blocks until Terminate. Terminate and Wakeable.Signal are the only methods safe
// to call from other goroutines; AddWakeable/RemoveWakeable/ScheduleTimer/CancelTimer
// must be called either before Run or from a callback running on the loop goroutine.
//
// Implemented by service.NewRunLoop. Called from service.resolverBridge (both sides)
// and service.engine (timers on the worker side).
//
//go:generate moq -stub -out mock/event_loop.go -pkg mock . EventLoop
type EventLoop interface {
	// Run executes the loop until Terminate: waits for wakeable signals and due timers, invoking their callbacks on this goroutine.
	// Parameters: none.
	// Returns: nil after a clean Terminate; service.ErrLoopAlreadyRunning when the loop is already running or has already finished.
	// Called from cmd/main (host loop, main goroutine) and from the worker goroutine spawned by service.resolverBridge.Start.
	Run() error

	// Terminate requests loop exit after the current callback returns; idempotent, safe from any goroutine, wakes a blocked Run.
	// Called from service.resolverBridge.Stop (worker loop) and cmd/main signal handling (host loop).
	Terminate()

	// AddWakeable registers w and the callback to run when it signals. Registering the same wakeable twice replaces the callback.
	// Parameters: w — the wakeable to wait on; onReady — invoked on the loop goroutine once per coalesced signal burst.
	// Called from service.resolverBridge.Initialize for both loops, before the worker starts.
	AddWakeable(w Wakeable, onReady func())

	// RemoveWakeable detaches and unregisters w; unknown wakeables are a no-op.
	// Parameter w — the wakeable previously passed to AddWakeable.
	// Called from service.resolverBridge.Close and from the Initialize failure unwind.
	RemoveWakeable(w Wakeable)

	// ScheduleTimer arms a single-shot timer; the callback runs once on the loop goroutine after delay. Timers never auto-repeat, callbacks re-arm explicitly.
	// Parameters: delay — non-negative duration (zero fires on the next iteration); fn — callback to invoke.
	// Returns: a non-zero TimerID usable with CancelTimer.
	// Called from service.engine when arming discovery refresh and registration renewal timers.
	ScheduleTimer(delay time.Duration, fn func()) (timerID domain.TimerID)

	// CancelTimer cancels a scheduled timer; calling it for a timer that already fired, was cancelled, or never existed is a no-op.
	// Parameter timerID — value returned by ScheduleTimer; the zero TimerID is always a no-op.
	// Called from service.engine (deregister, lease update, teardown).
	CancelTimer(timerID domain.TimerID)
}
