package service

import (
	"sync"
)

// WakeSignal is the cross-goroutine wake primitive connecting a producer to a run
// loop. Producers call Signal after enqueueing work; the loop consumes the pending
// state via TakePending. Any number of signals between two loop iterations coalesce
// into one dispatch.
type WakeSignal struct {
	mu      sync.Mutex
	pending bool
	sink    chan<- struct{}
}

// NewWakeSignal creates an unattached WakeSignal. Signals raised before the signal
// is attached to a loop are kept pending and forwarded on Attach.
func NewWakeSignal() *WakeSignal {
	return &WakeSignal{}
}

// Signal marks the wakeable ready and nudges the attached loop. Never blocks: the
// nudge is a best-effort non-blocking send, losing it is fine because the pending
// flag survives until TakePending.
func (w *WakeSignal) Signal() {
	w.mu.Lock()
	w.pending = true
	sink := w.sink
	w.mu.Unlock()

	if sink != nil {
		select {
		case sink <- struct{}{}:
		default:
		}
	}
}

// Drain discards any pending signal state without blocking.
func (w *WakeSignal) Drain() {
	w.mu.Lock()
	w.pending = false
	w.mu.Unlock()
}

// TakePending reports whether a signal arrived since the last take, clearing it.
func (w *WakeSignal) TakePending() bool {
	w.mu.Lock()
	pending := w.pending
	w.pending = false
	w.mu.Unlock()

	return pending
}

// Attach binds the loop's notify channel. A signal already pending is forwarded
// immediately so it cannot be lost between construction and registration.
func (w *WakeSignal) Attach(sink chan<- struct{}) {
	w.mu.Lock()
	w.sink = sink
	pending := w.pending
	w.mu.Unlock()

	if pending && sink != nil {
		select {
		case sink <- struct{}{}:
		default:
		}
	}
}

// Detach unbinds the notify channel; later signals only set the pending flag.
func (w *WakeSignal) Detach() {
	w.mu.Lock()
	w.sink = nil
	w.mu.Unlock()
}
