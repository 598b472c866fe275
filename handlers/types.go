package handlers

import "time"

// RegisterRequest is the POST /v1/register body.
type RegisterRequest struct {
	Identity string `json:"identity"`
	LeaseS   int    `json:"lease_s"`
}

// DiscoveryStatus is the discovery part of the services response. UpdatedAt is
// omitted until the first discovery run completes.
type DiscoveryStatus struct {
	Ok         bool       `json:"ok"`
	Identities []string   `json:"identities"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

// RegistrationInfo is the per-identity part of the services response.
type RegistrationInfo struct {
	Identity  string    `json:"identity"`
	Ok        bool      `json:"ok"`
	LeaseS    int       `json:"lease_s"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ServicesResponse is the GET /v1/services body.
type ServicesResponse struct {
	Discovery     DiscoveryStatus    `json:"discovery"`
	Registrations []RegistrationInfo `json:"registrations"`
}
