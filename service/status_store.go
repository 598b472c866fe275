package service

import (
	"sort"
	"sync"
	"time"

	"myresolver/domain"
	"myresolver/helpers"
	"myresolver/interfaces"
)

// statusStore keeps the last known discovery and registration outcomes. Writes
// come from bridge callbacks on the host loop goroutine, reads from HTTP handler
// goroutines, so access is guarded by a RWMutex.
type statusStore struct {
	now func() time.Time

	mu            sync.RWMutex
	discovery     domain.DiscoverySnapshot
	registrations map[string]domain.RegistrationStatus
}

// NewStatusStore creates an empty store stamping entries with now (time.Now in
// production, helpers.TestNow in tests).
//
// Parameter now — clock function; required.
//
// Returns: an interfaces.StatusStore.
//
// Called from cmd/main.
func NewStatusStore(now func() time.Time) interfaces.StatusStore {
	return &statusStore{
		now:           helpers.NilPanic(now, "service.status_store.go: now is required"),
		registrations: make(map[string]domain.RegistrationStatus),
	}
}

// SetDiscovery records the outcome of the latest discovery run.
func (s *statusStore) SetDiscovery(ok bool, identities []string) {
	copied := make([]string, len(identities))
	copy(copied, identities)

	s.mu.Lock()
	s.discovery = domain.DiscoverySnapshot{
		OK:         ok,
		Identities: copied,
		UpdatedAt:  s.now(),
	}
	s.mu.Unlock()
}

// SetRegistration records the latest outcome for one identity.
func (s *statusStore) SetRegistration(identity string, ok bool, leaseSeconds int) {
	s.mu.Lock()
	s.registrations[identity] = domain.RegistrationStatus{
		Identity:     identity,
		OK:           ok,
		LeaseSeconds: leaseSeconds,
		UpdatedAt:    s.now(),
	}
	s.mu.Unlock()
}

// RemoveRegistration drops the stored status for identity.
func (s *statusStore) RemoveRegistration(identity string) {
	s.mu.Lock()
	delete(s.registrations, identity)
	s.mu.Unlock()
}

// Discovery returns a copy of the last discovery snapshot.
func (s *statusStore) Discovery() domain.DiscoverySnapshot {
	s.mu.RLock()
	snapshot := s.discovery
	identities := make([]string, len(snapshot.Identities))
	copy(identities, snapshot.Identities)
	s.mu.RUnlock()

	snapshot.Identities = identities

	return snapshot
}

// Registrations returns the last status for every identity, sorted by identity.
func (s *statusStore) Registrations() []domain.RegistrationStatus {
	s.mu.RLock()
	statuses := make([]domain.RegistrationStatus, 0, len(s.registrations))
	for _, status := range s.registrations {
		statuses = append(statuses, status)
	}
	s.mu.RUnlock()

	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].Identity < statuses[j].Identity
	})

	return statuses
}
