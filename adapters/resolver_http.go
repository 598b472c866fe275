package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"myresolver/domain"
	"myresolver/helpers"
	"myresolver/interfaces"
)

// requestTimeout bounds every directory call issued by resolverHTTP.
const requestTimeout = 5 * time.Second

// ResolverHTTP creates an interfaces.Resolver that talks to a service directory over
// HTTP: GET baseURL/v1/services, POST baseURL/v1/register, POST
// baseURL/v1/unregister/{identity} and GET baseURL/v1/min-refresh. Panics on empty
// baseURL or nil client.
//
// Parameters: baseURL — directory base URL (e.g. http://directory:8080), no trailing
// slash; client — HTTP client (timeout recommended; main uses 10s).
//
// Returns: interfaces.Resolver (*resolverHTTP).
//
// Called from cmd/main when the configured backend is "http".
func ResolverHTTP(baseURL string, client *http.Client) interfaces.Resolver {
	return &resolverHTTP{
		baseURL: helpers.StrPanic(baseURL, "adapters.resolver_http.go: baseURL is required"),
		client:  helpers.NilPanic(client, "adapters.resolver_http.go: http client is required"),
	}
}

// resolverHTTP implements interfaces.Resolver against a remote directory service.
// Used by service.resolverBridge's worker loop for discovery and registration.
// Holds baseURL and http.Client.
type resolverHTTP struct {
	baseURL string
	client  *http.Client
}

// servicesResponse is the JSON shape of GET /v1/services response: { "services": [ serviceRecord ] }.
type servicesResponse struct {
	Services []serviceRecord `json:"services"`
}

// serviceRecord is one element of the services array in the directory JSON (identity, lease_s).
type serviceRecord struct {
	Identity     string `json:"identity"`
	LeaseSeconds int    `json:"lease_s"`
}

// registerRequest is the JSON body of POST /v1/register (identity, lease_s).
type registerRequest struct {
	Identity     string `json:"identity"`
	LeaseSeconds int    `json:"lease_s"`
}

// minRefreshResponse is the JSON shape of GET /v1/min-refresh response: { "seconds": N }.
type minRefreshResponse struct {
	Seconds int `json:"seconds"`
}

// Open probes the directory with one FindServices call so that a bad base URL or an
// unreachable directory fails during bridge initialization instead of on the first
// refresh timer.
//
// Returns: nil when the directory answered; the probe error otherwise.
//
// Called from service.resolverBridge.Initialize.
func (r *resolverHTTP) Open() error {
	_, err := r.FindServices()
	return err
}

// FindServices performs GET baseURL/v1/services with the request timeout. On 404
// (directory convention when no services are advertised) returns an empty slice; on
// 200 parses JSON and maps to domain.ServiceEntry.
//
// Parameters: none.
//
// Returns: ([]domain.ServiceEntry, nil) on 200 (possibly empty slice) or 404 (empty
// slice); (nil, error) on other status, network error or JSON parse error (e.g.
// missing "services" field).
//
// Called from service.engine.discover (on timer and on demand).
func (r *resolverHTTP) FindServices() ([]domain.ServiceEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	reqURL := r.baseURL + "/v1/services"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		// The directory returns 404 when nothing is advertised; treat as empty list.
		return []domain.ServiceEntry{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("directory returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var raw servicesResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}
	if raw.Services == nil {
		return nil, fmt.Errorf("directory response missing services field")
	}
	out := make([]domain.ServiceEntry, 0, len(raw.Services))
	for _, s := range raw.Services {
		out = append(out, domain.ServiceEntry{
			Identity:     s.Identity,
			LeaseSeconds: s.LeaseSeconds,
		})
	}
	return out, nil
}

// Register performs POST baseURL/v1/register with a JSON body carrying the identity
// and the lease in seconds.
//
// Parameters: identity — service identity to advertise; leaseSeconds — lease the
// engine settled on after clamping.
//
// Returns: nil on 200; error on non-200 or request error (network, timeout).
//
// Called from service.engine.performRegistration (initial registration and renewals).
func (r *resolverHTTP) Register(identity string, leaseSeconds int) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	payload, err := json.Marshal(registerRequest{Identity: identity, LeaseSeconds: leaseSeconds})
	if err != nil {
		return err
	}
	reqURL := r.baseURL + "/v1/register"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("directory register returned %d", resp.StatusCode)
	}
	return nil
}

// Deregister performs POST baseURL/v1/unregister/{identity} with the request timeout
// so the directory removes the advertisement.
//
// Parameter identity — service identity to withdraw; substituted in URL via
// url.PathEscape (special chars escaped).
//
// Returns: nil on 200; error on non-200 or request error (network, timeout).
//
// Called from service.engine.deregister.
func (r *resolverHTTP) Deregister(identity string) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	path := "/v1/unregister/" + url.PathEscape(identity)
	reqURL := r.baseURL + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, nil)
	if err != nil {
		return err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("directory unregister returned %d", resp.StatusCode)
	}
	return nil
}

// MinRefreshInterval performs GET baseURL/v1/min-refresh. On 404 the directory
// advertises no minimum and 0 is returned.
//
// Parameters: none.
//
// Returns: (seconds, nil) on 200; (0, nil) on 404; (0, error) on other status,
// network error or JSON parse error.
//
// Called from service.engine.register before clamping the requested lease.
func (r *resolverHTTP) MinRefreshInterval() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	reqURL := r.baseURL + "/v1/min-refresh"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, err
	}
	resp, err := r.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return 0, nil
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("directory min-refresh returned %d", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}
	var raw minRefreshResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return 0, err
	}
	return raw.Seconds, nil
}

// Close releases pooled connections. The directory keeps no per-client state, so
// there is nothing to tear down remotely.
//
// Returns: always nil.
//
// Called from service.resolverBridge.Close.
func (r *resolverHTTP) Close() error {
	r.client.CloseIdleConnections()
	return nil
}
