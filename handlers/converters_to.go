package handlers

import (
	"myresolver/domain"
)

// toServicesResponse converts the status store snapshots to the API response.
func toServicesResponse(discovery domain.DiscoverySnapshot, registrations []domain.RegistrationStatus) ServicesResponse {
	status := DiscoveryStatus{
		Ok:         discovery.OK,
		Identities: discovery.Identities,
	}
	if status.Identities == nil {
		status.Identities = []string{}
	}
	if !discovery.UpdatedAt.IsZero() {
		updatedAt := discovery.UpdatedAt
		status.UpdatedAt = &updatedAt
	}

	out := make([]RegistrationInfo, 0, len(registrations))
	for _, r := range registrations {
		out = append(out, RegistrationInfo{
			Identity:  r.Identity,
			Ok:        r.OK,
			LeaseS:    r.LeaseSeconds,
			UpdatedAt: r.UpdatedAt,
		})
	}

	return ServicesResponse{Discovery: status, Registrations: out}
}
