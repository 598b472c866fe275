package interfaces

import "myresolver/domain"

// Resolver is the external discovery/registration service behind the bridge. All
// methods except Open/Close are blocking calls executed only on the worker loop
// goroutine; adapters bound their own call timeouts internally.
//
// Open acquires the backend handle (connection, client, sanity probe); Close releases
// it. FindServices returns the currently advertised services with their remaining
// leases. Register announces an identity for leaseSeconds; Deregister withdraws it.
// MinRefreshInterval returns the shortest lease the backend is willing to grant
// (0 = no minimum); it is queried fresh before every registration because it may
// change between calls.
//
// Implemented by adapters.ResolverHTTP, myredis.NewResolver, mydns.NewResolver,
// mynacos.NewResolver and decorated by myprobe.NewHealthCheckedResolver. Called from
// service.resolverBridge (Open/Close) and service.engine (all other methods).
//
//go:generate moq -stub -out mock/resolver.go -pkg mock . Resolver
type Resolver interface {
	// Open acquires the backend handle (e.g. redis PING, nacos client construction). Must be called once before any other method.
	// Parameters: none.
	// Returns: nil when the backend is usable; error otherwise (bridge Initialize fails and unwinds).
	// Called from service.resolverBridge.Initialize on the host goroutine, before the worker starts.
	Open() error

	// FindServices returns all currently advertised services in the configured scope with their remaining leases.
	// Parameters: none.
	// Returns: ([]ServiceEntry, nil) on success — empty slice is valid (nothing advertised); (nil, error) on transport or decode failure.
	// Called from service.engine.discover on the worker goroutine.
	FindServices() (entries []domain.ServiceEntry, err error)

	// Register announces identity with the given lease. Calling it again for a known identity renews/overwrites the previous lease.
	// Parameters: identity — opaque service identity; leaseSeconds — already clamped by the caller (>= floor and server minimum).
	// Returns: nil when the backend accepted the registration; error on transport failure or backend rejection (both map to a failed completion).
	// Called from service.engine.register and service.engine.renewalTriggered on the worker goroutine.
	Register(identity string, leaseSeconds int) error

	// Deregister withdraws identity from the backend. Unknown identities are a backend-side no-op for most implementations.
	// Parameter identity — opaque service identity previously passed to Register.
	// Returns: nil on success; error on transport failure or backend rejection.
	// Called from service.engine.deregister on the worker goroutine.
	Deregister(identity string) error

	// MinRefreshInterval returns the backend's advertised minimum lease in seconds, 0 when the backend imposes none.
	// Parameters: none.
	// Returns: (seconds, nil) on success; (0, error) when the query fails — the caller treats a failed query as "no minimum" and logs it.
	// Called from service.engine.register before every external registration call.
	MinRefreshInterval() (seconds int, err error)

	// Close releases the backend handle; idempotent. No other method may be called after Close.
	// Returns: nil on success; error from the underlying client close.
	// Called from service.resolverBridge.Close during teardown.
	Close() error
}
