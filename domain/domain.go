package domain

import "time"

// Lease bounds applied on the worker side before any registration call.
// MinLeaseSeconds is the absolute floor; the backend's advertised minimum
// refresh interval is applied on top of it per call.
const MinLeaseSeconds = 5

// DefaultRenewalMarginSeconds is the safety buffer subtracted from a granted
// lease when scheduling its renewal, so the renewal lands before expiry.
const DefaultRenewalMarginSeconds = 2

// ServiceEntry is a single advertised service as returned by a resolver backend.
// LeaseSeconds is the remaining lifetime the backend advertises for it.
type ServiceEntry struct {
	Identity     string // opaque service identity (e.g. host:port)
	LeaseSeconds int    // remaining lease in seconds
}

// TimerID identifies a single-shot timer scheduled on an event loop.
// The zero value is never issued and is safe to cancel.
type TimerID uint64

// Announcement is a service identity the agent maintains a registration for,
// with the lease it asks the backend to grant.
type Announcement struct {
	Identity     string
	LeaseSeconds int
}

// DiscoverySnapshot is the outcome of the most recent discovery run.
// Identities carries the advertised identities with leases stripped.
type DiscoverySnapshot struct {
	OK         bool
	Identities []string
	UpdatedAt  time.Time
}

// RegistrationStatus is the last reported outcome for one announced identity.
type RegistrationStatus struct {
	Identity     string
	OK           bool
	LeaseSeconds int // lease requested at announce time
	UpdatedAt    time.Time
}
