package scenario

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const pollInterval = 1 * time.Second

// Wire types matching the agent's /v1 API.

type registerRequest struct {
	Identity string `json:"identity"`
	LeaseS   int    `json:"lease_s"`
}

type discoveryStatus struct {
	Ok         bool       `json:"ok"`
	Identities []string   `json:"identities"`
	UpdatedAt  *time.Time `json:"updated_at,omitempty"`
}

type registrationInfo struct {
	Identity  string    `json:"identity"`
	Ok        bool      `json:"ok"`
	LeaseS    int       `json:"lease_s"`
	UpdatedAt time.Time `json:"updated_at"`
}

type servicesResponse struct {
	Discovery     discoveryStatus    `json:"discovery"`
	Registrations []registrationInfo `json:"registrations"`
}

// apiError is the agent's error body shape.
type apiError struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// AgentClient wraps the agent's /v1 HTTP API for scenarios. The client timeout
// out-waits the agent's own completion timeout so a slow backend surfaces as the
// agent's 502, not as a client-side cutoff.
type AgentClient struct {
	baseURL string
	client  *http.Client
}

// NewAgentClient creates a client for the agent at baseURL (e.g. http://localhost:8080).
func NewAgentClient(baseURL string) *AgentClient {
	return &AgentClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 20 * time.Second},
	}
}

// RegisterService announces identity with the given lease and fails unless the
// agent confirms the backend accepted it (HTTP 200).
func (c *AgentClient) RegisterService(ctx context.Context, identity string, leaseSeconds int) error {
	body, err := json.Marshal(registerRequest{Identity: identity, LeaseS: leaseSeconds})
	if err != nil {
		return fmt.Errorf("marshal register request: %w", err)
	}
	status, code, err := c.post(ctx, "/v1/register", body)
	if err != nil {
		return fmt.Errorf("register %s: %w", identity, err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("register %s: status=%d code=%s", identity, status, code)
	}
	return nil
}

// RegisterServiceRaw sends an arbitrary register body and returns the HTTP status
// and the agent's error code (empty on success). Used by validation scenarios.
func (c *AgentClient) RegisterServiceRaw(ctx context.Context, rawBody string) (int, string, error) {
	return c.post(ctx, "/v1/register", []byte(rawBody))
}

// UnregisterService withdraws identity and fails unless the agent confirms the
// backend accepted it (HTTP 200).
func (c *AgentClient) UnregisterService(ctx context.Context, identity string) error {
	status, code, err := c.post(ctx, "/v1/unregister/"+identity, nil)
	if err != nil {
		return fmt.Errorf("unregister %s: %w", identity, err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("unregister %s: status=%d code=%s", identity, status, code)
	}
	return nil
}

// TriggerDiscovery queues one immediate discovery run (HTTP 202). The outcome is
// read back later via Services.
func (c *AgentClient) TriggerDiscovery(ctx context.Context) error {
	status, code, err := c.post(ctx, "/v1/discover", nil)
	if err != nil {
		return fmt.Errorf("discover: %w", err)
	}
	if status != http.StatusAccepted {
		return fmt.Errorf("discover: status=%d code=%s", status, code)
	}
	return nil
}

// Services fetches the agent's current discovery snapshot and registration
// statuses.
func (c *AgentClient) Services(ctx context.Context) (*servicesResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/services", nil)
	if err != nil {
		return nil, fmt.Errorf("build services request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("services request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("services: status=%d", resp.StatusCode)
	}
	var services servicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&services); err != nil {
		return nil, fmt.Errorf("decode services response: %w", err)
	}
	return &services, nil
}

// post sends a POST and returns the status plus the error code from the agent's
// error body when the response is not a 2xx. A transport failure is returned as
// the error; an HTTP-level failure is not.
func (c *AgentClient) post(ctx context.Context, path string, body []byte) (int, string, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, reader)
	if err != nil {
		return 0, "", fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return resp.StatusCode, "", nil
	}
	var errBody apiError
	if err := json.NewDecoder(resp.Body).Decode(&errBody); err != nil {
		return resp.StatusCode, "", nil
	}
	return resp.StatusCode, errBody.Error.Code, nil
}

// waitFor polls cond once per pollInterval until it succeeds or ctx expires; on
// timeout the last cond error is wrapped into the returned error.
func waitFor(ctx context.Context, what string, cond func(context.Context) error) error {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var last error
	for {
		if last = cond(ctx); last == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for %s: %w (last: %v)", what, ctx.Err(), last)
		case <-ticker.C:
		}
	}
}

// containsIdentity reports whether identities lists identity.
func containsIdentity(identities []string, identity string) bool {
	for _, candidate := range identities {
		if candidate == identity {
			return true
		}
	}
	return false
}

// registrationFor returns the registration entry for identity, or nil.
func registrationFor(services *servicesResponse, identity string) *registrationInfo {
	for i := range services.Registrations {
		if services.Registrations[i].Identity == identity {
			return &services.Registrations[i]
		}
	}
	return nil
}

// uniqueIdentity builds a per-run identity so repeated runs against the same
// backend never collide.
func uniqueIdentity(prefix string) string {
	return prefix + "-" + time.Now().Format("20060102150405")
}
