package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"myresolver/domain"
	"myresolver/helpers"
	"myresolver/interfaces"
)

var (
	// ErrBridgeNotInitialized is returned by Start before a successful Initialize.
	ErrBridgeNotInitialized = errors.New("resolver bridge is not initialized")
	// ErrBridgeAlreadyStarted is returned by Start after the worker was spawned.
	ErrBridgeAlreadyStarted = errors.New("resolver bridge is already started")
	// ErrBridgeClosed is returned by Initialize after the bridge was torn down.
	ErrBridgeClosed = errors.New("resolver bridge is closed")
)

type bridgeState int

const (
	stateCreated bridgeState = iota
	stateInitialized
	stateRunning
	stateStopping
	stateJoined
	stateFailed
	stateClosed
)

// resolverBridge runs the blocking resolver backend on a dedicated worker
// goroutine. Requests flow host→worker through the inbound queue, outcomes flow
// worker→host through the outbound queue; each direction pairs its queue with a
// wake signal so neither side ever blocks the other. The bridge is single-use:
// once joined it cannot be restarted.
type resolverBridge struct {
	resolver    interfaces.Resolver
	hostLoop    interfaces.EventLoop
	workerLoop  interfaces.EventLoop
	onDiscovery interfaces.DiscoveryCallback
	logger      log.Logger

	inbound    *ActionQueue
	outbound   *ActionQueue
	workerWake *WakeSignal
	hostWake   *WakeSignal

	engine               *engine
	renewalMarginSeconds int

	mu           sync.Mutex
	state        bridgeState
	workerDone   chan struct{}
	resolverOpen bool
}

// NewResolverBridge creates the bridge between the host loop and the resolver
// backend.
//
// Parameters: resolver — the backend, opened in Initialize; hostLoop — the
// application's loop, where all callbacks are delivered; workerLoop — the loop
// the bridge drives on its worker goroutine (a fresh NewRunLoop, not run by
// anyone else); onDiscovery — receiver for discovery outcomes, nil disables
// Discover; baseRefreshSeconds — fallback discovery interval, must be positive;
// renewalMarginSeconds — safety margin before lease expiry, non-positive values
// fall back to domain.DefaultRenewalMarginSeconds; logger — required.
//
// Returns: an interfaces.ResolverBridge in the Created state.
//
// Called from cmd/main once per agent process.
func NewResolverBridge(
	resolver interfaces.Resolver,
	hostLoop interfaces.EventLoop,
	workerLoop interfaces.EventLoop,
	onDiscovery interfaces.DiscoveryCallback,
	baseRefreshSeconds int,
	renewalMarginSeconds int,
	logger log.Logger,
) interfaces.ResolverBridge {
	if baseRefreshSeconds <= 0 {
		panic("service.bridge.go: baseRefreshSeconds must be positive")
	}
	if renewalMarginSeconds <= 0 {
		renewalMarginSeconds = domain.DefaultRenewalMarginSeconds
	}

	b := &resolverBridge{
		resolver:             helpers.NilPanic(resolver, "service.bridge.go: resolver is required"),
		hostLoop:             helpers.NilPanic(hostLoop, "service.bridge.go: hostLoop is required"),
		workerLoop:           helpers.NilPanic(workerLoop, "service.bridge.go: workerLoop is required"),
		onDiscovery:          onDiscovery,
		logger:               helpers.NilPanic(logger, "service.bridge.go: logger is required"),
		inbound:              NewActionQueue(),
		outbound:             NewActionQueue(),
		workerWake:           NewWakeSignal(),
		hostWake:             NewWakeSignal(),
		renewalMarginSeconds: renewalMarginSeconds,
	}
	b.engine = newEngine(
		resolver,
		workerLoop,
		b.reportToHost,
		onDiscovery,
		baseRefreshSeconds,
		renewalMarginSeconds,
		log.With(logger, "component", "resolver_engine"),
	)

	return b
}

// Initialize wires both wake signals into their loops and opens the backend
// handle. Idempotent while initialized; a failed attempt unwinds both wakeables
// and may be retried.
func (b *resolverBridge) Initialize() error {
	b.mu.Lock()
	switch b.state {
	case stateInitialized, stateRunning, stateStopping:
		b.mu.Unlock()
		return nil
	case stateJoined, stateClosed:
		b.mu.Unlock()
		return ErrBridgeClosed
	}
	b.mu.Unlock()

	b.workerLoop.AddWakeable(b.workerWake, b.drainInbound)
	b.hostLoop.AddWakeable(b.hostWake, b.drainOutbound)

	if err := b.resolver.Open(); err != nil {
		b.hostLoop.RemoveWakeable(b.hostWake)
		b.workerLoop.RemoveWakeable(b.workerWake)
		b.mu.Lock()
		b.state = stateFailed
		b.mu.Unlock()
		return fmt.Errorf("open resolver backend: %w", err)
	}

	b.mu.Lock()
	b.state = stateInitialized
	b.resolverOpen = true
	b.mu.Unlock()

	return nil
}

// Start spawns the worker goroutine running the worker loop.
func (b *resolverBridge) Start() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.state {
	case stateCreated, stateFailed:
		return ErrBridgeNotInitialized
	case stateInitialized:
	default:
		return ErrBridgeAlreadyStarted
	}

	b.workerDone = make(chan struct{})
	b.state = stateRunning
	go b.runWorker()

	return nil
}

// runWorker is the worker goroutine body: it runs the worker loop until
// Terminate and signals Join via workerDone.
func (b *resolverBridge) runWorker() {
	defer close(b.workerDone)
	if err := b.workerLoop.Run(); err != nil {
		level.Error(b.logger).Log("msg", "worker loop exited with error", "err", err)
	}
}

// Stop requests worker termination and kicks the worker awake so the exit is
// immediate. An action already executing on the worker completes first.
// Idempotent, safe before Start.
func (b *resolverBridge) Stop() {
	b.mu.Lock()
	if b.state == stateRunning {
		b.state = stateStopping
	}
	b.mu.Unlock()

	b.workerLoop.Terminate()
	b.workerWake.Signal()
}

// Join blocks until the worker goroutine has exited; returns immediately when it
// never started.
func (b *resolverBridge) Join() {
	b.mu.Lock()
	done := b.workerDone
	b.mu.Unlock()

	if done == nil {
		return
	}
	<-done

	b.mu.Lock()
	if b.state != stateClosed {
		b.state = stateJoined
	}
	b.mu.Unlock()
}

// Close tears the bridge down from any state: stop and join the worker, unwire
// both wakeables, release engine timers and state, close the backend handle.
// Idempotent. Must be called on the host goroutine while the host loop is not
// running (after its Run returned).
func (b *resolverBridge) Close() error {
	b.Stop()
	b.Join()

	b.workerLoop.RemoveWakeable(b.workerWake)
	b.hostLoop.RemoveWakeable(b.hostWake)
	b.engine.releaseAll()

	b.mu.Lock()
	open := b.resolverOpen
	b.resolverOpen = false
	b.state = stateClosed
	b.mu.Unlock()

	if open {
		if err := b.resolver.Close(); err != nil {
			return fmt.Errorf("close resolver backend: %w", err)
		}
	}

	return nil
}

// Discover requests one immediate discovery run. Returns false and logs when no
// discovery callback was configured at construction.
func (b *resolverBridge) Discover() bool {
	if b.onDiscovery == nil {
		level.Warn(b.logger).Log(
			"msg", "discovery requested but no discovery callback was configured, this is a programming error",
		)
		return false
	}

	b.enqueueRequest(b.engine.discover)

	return true
}

// Register requests an asynchronous registration. Leases at or below twice the
// renewal margin would expire before their renewal fires; they are raised with a
// warning before the request is queued.
func (b *resolverBridge) Register(onComplete interfaces.CompletionCallback, identity string, leaseSeconds int) {
	if onComplete == nil {
		level.Warn(b.logger).Log(
			"msg", "registration requested without a completion callback, this is a programming error",
			"identity", identity,
		)
		return
	}

	if leaseSeconds <= 2*b.renewalMarginSeconds {
		forced := 2 * b.renewalMarginSeconds
		level.Warn(b.logger).Log(
			"msg", "lease is less than twice the renewal margin, forcing",
			"identity", identity,
			"lease_s", leaseSeconds,
			"margin_s", b.renewalMarginSeconds,
			"forced_s", forced,
		)
		leaseSeconds = forced
	}

	lease := leaseSeconds
	b.enqueueRequest(func() {
		b.engine.register(onComplete, identity, lease)
	})
}

// Deregister requests an asynchronous deregistration.
func (b *resolverBridge) Deregister(onComplete interfaces.CompletionCallback, identity string) {
	if onComplete == nil {
		level.Warn(b.logger).Log(
			"msg", "deregistration requested without a completion callback, this is a programming error",
			"identity", identity,
		)
		return
	}

	b.enqueueRequest(func() {
		b.engine.deregister(onComplete, identity)
	})
}

// enqueueRequest hands an action to the worker: inbound queue plus wake.
func (b *resolverBridge) enqueueRequest(action func()) {
	b.inbound.Enqueue(action)
	b.workerWake.Signal()
}

// reportToHost hands an outcome to the host side: outbound queue plus wake.
// Runs on the worker goroutine; the action runs later on the host loop.
func (b *resolverBridge) reportToHost(action func()) {
	b.outbound.Enqueue(action)
	b.hostWake.Signal()
}

// drainInbound runs on the worker loop when the worker wake fires.
func (b *resolverBridge) drainInbound() {
	b.inbound.DrainAndRunAll()
}

// drainOutbound runs on the host loop when the host wake fires.
func (b *resolverBridge) drainOutbound() {
	b.outbound.DrainAndRunAll()
}
