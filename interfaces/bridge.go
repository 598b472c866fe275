package interfaces

// DiscoveryCallback receives the outcome of one discovery run on the host loop
// goroutine. ok is false when the backend call failed; identities carries the
// advertised identities with their leases stripped (never nil when ok).
type DiscoveryCallback func(ok bool, identities []string)

// CompletionCallback receives the outcome of one Register/Deregister request on the
// host loop goroutine. ok reflects both the transport call and the backend verdict.
type CompletionCallback func(ok bool)

// ResolverBridge runs the blocking Resolver on a dedicated worker goroutine and
// exchanges requests/completions with the host event loop through guarded FIFO
// queues and wake signals. Requests never block the caller; completions are always
// delivered on the host loop goroutine, never on the worker's.
//
// Lifecycle: Initialize (acquire backend handle, wire wakeables) → Start (spawn
// worker) → Stop (request termination) → Join (wait for the worker) → Close (full
// teardown, usable after any earlier step, also when Initialize failed).
//
// Implemented by service.NewResolverBridge. Called from cmd/main and handlers.
//
//go:generate moq -stub -out mock/resolver_bridge.go -pkg mock . ResolverBridge
type ResolverBridge interface {
	// Initialize wires both wake signals into the loops and opens the backend handle. Any failure unwinds everything acquired so far.
	// Parameters: none.
	// Returns: nil on success; the backend's Open error otherwise (bridge stays unusable, only Close is allowed).
	// Called from cmd/main before Start, on the host goroutine.
	Initialize() error

	// Start spawns the worker goroutine running the worker loop. Requires a successful Initialize.
	// Parameters: none.
	// Returns: nil on success; service.ErrBridgeNotInitialized when Initialize did not succeed; service.ErrBridgeAlreadyStarted on reuse.
	// Called from cmd/main after Initialize.
	Start() error

	// Stop requests worker termination (terminate + wake); returns immediately, idempotent, safe before Start.
	// Called from cmd/main shutdown and from Close.
	Stop()

	// Join blocks until the worker goroutine has exited; returns immediately when the worker never started. An action in flight on the worker completes first.
	// Called from cmd/main shutdown after Stop, and from Close.
	Join()

	// Close tears the bridge down: Stop+Join when running, wakeables removed from both loops, engine timers cancelled, backend handle closed; idempotent.
	// Returns: the backend Close error, nil otherwise.
	// Called from cmd/main via defer.
	Close() error

	// Discover requests one immediate discovery run; the outcome reaches the configured DiscoveryCallback on the host loop.
	// Parameters: none.
	// Returns: false when no discovery callback was configured at construction (request dropped, warning logged); true when the request was queued.
	// Called from handlers.HTTPHandlers.Discover and from the refresh timer indirectly (engine re-arms itself).
	Discover() bool

	// Register requests an asynchronous registration of identity for leaseSeconds. Leases below twice the renewal margin are raised to that bound with a warning before queueing.
	// Parameters: onComplete — required, runs on the host loop; identity — opaque service identity; leaseSeconds — requested lease, clamped on the worker side.
	// Called from handlers.HTTPHandlers.Register and cmd/main startup announcements.
	Register(onComplete CompletionCallback, identity string, leaseSeconds int)

	// Deregister requests an asynchronous deregistration of identity; the pending renewal timer is cancelled before the backend call.
	// Parameters: onComplete — required, runs on the host loop; identity — opaque service identity.
	// Called from handlers.HTTPHandlers.Deregister.
	Deregister(onComplete CompletionCallback, identity string)
}
