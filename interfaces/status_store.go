package interfaces

import "myresolver/domain"

// StatusStore is the synchronization point between bridge completions (written on
// the host loop goroutine) and the agent's HTTP handlers (read on echo goroutines).
//
// Implemented by service.NewStatusStore. Written from the callbacks cmd/main wires
// into the bridge; read from handlers.HTTPHandlers.
//
//go:generate moq -stub -out mock/status_store.go -pkg mock . StatusStore
type StatusStore interface {
	// SetDiscovery records the outcome of the latest discovery run, stamping it with the store's clock.
	// Parameters: ok — backend verdict; identities — advertised identities (nil is stored as empty).
	// Called from the DiscoveryCallback wired in cmd/main, on the host loop goroutine.
	SetDiscovery(ok bool, identities []string)

	// SetRegistration records the latest outcome for one announced identity, stamping it with the store's clock.
	// Parameters: identity — the announced identity; ok — completion verdict; leaseSeconds — the lease requested for it.
	// Called from the CompletionCallbacks wired in cmd/main and handlers, on the host loop goroutine.
	SetRegistration(identity string, ok bool, leaseSeconds int)

	// RemoveRegistration drops the stored status for identity after a successful deregistration; unknown identities are a no-op.
	// Parameter identity — the identity withdrawn.
	// Called from the CompletionCallbacks wired in handlers, on the host loop goroutine.
	RemoveRegistration(identity string)

	// Discovery returns the last recorded discovery snapshot; the zero snapshot (UpdatedAt.IsZero) means no run completed yet.
	// Returns: a copy, safe to retain.
	// Called from handlers.HTTPHandlers.Services.
	Discovery() domain.DiscoverySnapshot

	// Registrations returns the last recorded status for every identity seen so far, sorted by identity.
	// Returns: a fresh slice of copies, safe to retain.
	// Called from handlers.HTTPHandlers.Services.
	Registrations() []domain.RegistrationStatus
}
