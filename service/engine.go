package service

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"myresolver/domain"
	"myresolver/interfaces"
)

// timerSlot owns at most one scheduled timer on a loop. Arming cancels any
// previous timer in the slot, so a slot can never leak a stale callback.
type timerSlot struct {
	loop interfaces.EventLoop
	id   domain.TimerID
}

// Arm schedules fn after delay, replacing whatever the slot held before.
func (s *timerSlot) Arm(delay time.Duration, fn func()) {
	s.Cancel()
	s.id = s.loop.ScheduleTimer(delay, fn)
}

// Cancel drops the held timer; safe when the slot is empty or the timer already
// fired.
func (s *timerSlot) Cancel() {
	if s.id != 0 {
		s.loop.CancelTimer(s.id)
		s.id = 0
	}
}

// registrationState tracks one announced identity: the lease the backend was last
// asked for and the renewal timer that re-announces it before expiry.
type registrationState struct {
	leaseSeconds int
	renewal      timerSlot
}

// engine is the discovery/registration state machine. Every method runs on the
// worker loop goroutine only — requests arrive as queued actions, timers fire on
// the same loop — so the state needs no locks by construction. Results leave the
// worker through report, which hands a closure to the host side.
type engine struct {
	resolver             interfaces.Resolver
	loop                 interfaces.EventLoop
	report               func(func())
	onDiscovery          interfaces.DiscoveryCallback
	baseRefreshSeconds   int
	renewalMarginSeconds int
	logger               log.Logger

	registrations map[string]*registrationState
	refresh       timerSlot
}

// newEngine wires the state machine to the worker loop. The bridge constructor
// validates the arguments; onDiscovery may be nil (Discover is then rejected at
// the bridge surface).
func newEngine(
	resolver interfaces.Resolver,
	loop interfaces.EventLoop,
	report func(func()),
	onDiscovery interfaces.DiscoveryCallback,
	baseRefreshSeconds int,
	renewalMarginSeconds int,
	logger log.Logger,
) *engine {
	return &engine{
		resolver:             resolver,
		loop:                 loop,
		report:               report,
		onDiscovery:          onDiscovery,
		baseRefreshSeconds:   baseRefreshSeconds,
		renewalMarginSeconds: renewalMarginSeconds,
		logger:               logger,
		registrations:        make(map[string]*registrationState),
		refresh:              timerSlot{loop: loop},
	}
}

// discover runs one discovery pass: query the backend, schedule the next pass,
// report the outcome to the host side.
//
// The next pass runs when the shortest advertised lease expires, capped by the
// base refresh interval; on failure or an empty result the base interval is used.
// All consumers refreshing on the same advertised lease will synchronize; no
// jitter is applied here.
func (e *engine) discover() {
	e.refresh.Cancel()

	entries, err := e.resolver.FindServices()
	ok := err == nil
	if err != nil {
		level.Error(e.logger).Log("msg", "discovery failed", "err", err)
	}

	nextSeconds := e.baseRefreshSeconds
	if ok {
		for _, entry := range entries {
			if entry.LeaseSeconds > 0 && entry.LeaseSeconds < nextSeconds {
				nextSeconds = entry.LeaseSeconds
			}
		}
	}

	identities := make([]string, 0, len(entries))
	for _, entry := range entries {
		identities = append(identities, entry.Identity)
	}

	level.Info(e.logger).Log("msg", "next discovery scheduled", "delay_s", nextSeconds)
	e.refresh.Arm(time.Duration(nextSeconds)*time.Second, e.refreshTriggered)

	onDiscovery := e.onDiscovery
	e.report(func() {
		onDiscovery(ok, identities)
	})
}

// refreshTriggered fires when the shortest advertised lease has expired and the
// view of the network needs revalidating.
func (e *engine) refreshTriggered() {
	// The timer just fired; clear the slot so discover does not cancel a dead id.
	e.refresh.id = 0
	level.Info(e.logger).Log("msg", "running scheduled discovery")
	e.discover()
}

// register announces identity, clamping the lease to the floor and to the
// backend's advertised minimum (queried fresh, it may change between calls).
// Re-registering with the lease already in force short-circuits without touching
// the backend; a differing lease cancels the old renewal and re-announces.
func (e *engine) register(onComplete interfaces.CompletionCallback, identity string, leaseSeconds int) {
	if leaseSeconds < domain.MinLeaseSeconds {
		leaseSeconds = domain.MinLeaseSeconds
	}

	minSeconds, err := e.resolver.MinRefreshInterval()
	if err != nil {
		level.Warn(e.logger).Log("msg", "minimum refresh interval query failed", "err", err)
		minSeconds = 0
	} else {
		level.Info(e.logger).Log("msg", "minimum refresh interval from backend", "seconds", minSeconds)
	}
	if minSeconds != 0 && leaseSeconds < minSeconds {
		leaseSeconds = minSeconds
	}

	state, known := e.registrations[identity]
	if known {
		if state.leaseSeconds == leaseSeconds {
			level.Info(e.logger).Log(
				"msg", "lease matches current registration, ignoring update",
				"identity", identity,
			)
			e.complete(onComplete, true)
			return
		}
		state.leaseSeconds = leaseSeconds
		state.renewal.Cancel()
	} else {
		state = &registrationState{
			leaseSeconds: leaseSeconds,
			renewal:      timerSlot{loop: e.loop},
		}
		e.registrations[identity] = state
	}

	ok := e.performRegistration(identity, state)
	e.complete(onComplete, ok)
}

// deregister withdraws identity: the renewal timer and local state go first so a
// late renewal fire is a no-op, then the backend is told regardless.
func (e *engine) deregister(onComplete interfaces.CompletionCallback, identity string) {
	if state, known := e.registrations[identity]; known {
		level.Info(e.logger).Log("msg", "removing registration", "identity", identity)
		state.renewal.Cancel()
		delete(e.registrations, identity)
	}

	ok := true
	if err := e.resolver.Deregister(identity); err != nil {
		level.Error(e.logger).Log("msg", "deregistration failed", "identity", identity, "err", err)
		ok = false
	}
	e.complete(onComplete, ok)
}

// renewalTriggered fires when a registration's lease is about to expire. The
// stored lease is re-announced as-is — no clamping, no minimum re-query — and a
// renewal for an identity deregistered in the meantime is silently dropped.
func (e *engine) renewalTriggered(identity string) {
	level.Info(e.logger).Log("msg", "renewing registration", "identity", identity)
	state, known := e.registrations[identity]
	if !known {
		return
	}
	state.renewal.id = 0
	e.performRegistration(identity, state)
}

// performRegistration makes the backend call and re-arms the renewal timer at
// lease minus the renewal margin, minus one second — before the backend would age
// the registration out. The timer is re-armed even when the call fails so the
// registration keeps retrying. A margin at or above the lease would produce a
// non-positive delay; it is floored at one second.
func (e *engine) performRegistration(identity string, state *registrationState) bool {
	ok := true
	if err := e.resolver.Register(identity, state.leaseSeconds); err != nil {
		level.Error(e.logger).Log("msg", "registration failed", "identity", identity, "err", err)
		ok = false
	}

	renewSeconds := state.leaseSeconds - e.renewalMarginSeconds - 1
	if renewSeconds < 1 {
		renewSeconds = 1
	}
	level.Info(e.logger).Log(
		"msg", "next renewal scheduled",
		"identity", identity,
		"delay_s", renewSeconds,
	)
	state.renewal.Arm(time.Duration(renewSeconds)*time.Second, func() {
		e.renewalTriggered(identity)
	})

	return ok
}

// complete hands a request outcome to the host side.
func (e *engine) complete(onComplete interfaces.CompletionCallback, ok bool) {
	e.report(func() {
		onComplete(ok)
	})
}

// releaseAll cancels every engine-owned timer and drops the registration map.
// Only called after the worker loop has stopped.
func (e *engine) releaseAll() {
	e.refresh.Cancel()
	for _, state := range e.registrations {
		state.renewal.Cancel()
	}
	e.registrations = make(map[string]*registrationState)
}
