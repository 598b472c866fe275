// Package myprobe decorates a resolver with gRPC health probing: discovery results
// are checked over the standard health protocol and instances that do not answer
// SERVING are dropped from the list.
package myprobe

import (
	"context"
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"

	"myresolver/domain"
	"myresolver/helpers"
	"myresolver/interfaces"
)

// probeTimeout bounds a single health check call.
const probeTimeout = 2 * time.Second

// healthCheckedResolver implements interfaces.Resolver by delegating every call to
// the wrapped resolver and filtering FindServices results through per-instance gRPC
// health checks. Identities must be in host:port form (they are dialed directly).
// Register, Deregister, MinRefreshInterval, Open and Close pass through unchanged.
type healthCheckedResolver struct {
	inner  interfaces.Resolver
	logger log.Logger
}

// NewHealthCheckedResolver wraps inner so that FindServices drops instances whose
// health endpoint fails to answer SERVING within probeTimeout. Dropped instances are
// logged, not errored: a dead instance must not break discovery for the live ones.
// Panics on nil inner or logger.
//
// Parameters: inner — the backend resolver to decorate; logger — probe failures are logged through it.
//
// Returns: interfaces.Resolver (*healthCheckedResolver).
//
// Called from cmd/main when the agent config enables probe_health.
func NewHealthCheckedResolver(inner interfaces.Resolver, logger log.Logger) interfaces.Resolver {
	return &healthCheckedResolver{
		inner:  helpers.NilPanic(inner, "myprobe.health_checked.go: inner resolver is required"),
		logger: log.With(helpers.NilPanic(logger, "myprobe.health_checked.go: logger is required"), "component", "health_probe"),
	}
}

// Open delegates to the wrapped resolver.
func (r *healthCheckedResolver) Open() error {
	return r.inner.Open()
}

// FindServices fetches the advertised services from the wrapped resolver and probes
// each identity with a gRPC health check, keeping only the ones that answer SERVING.
// Probes run sequentially on the calling goroutine, each bounded by probeTimeout.
//
// Returns: (entries, nil) with the healthy subset — may be empty; (nil, error) only
// when the wrapped FindServices itself fails.
func (r *healthCheckedResolver) FindServices() ([]domain.ServiceEntry, error) {
	entries, err := r.inner.FindServices()
	if err != nil {
		return nil, err
	}
	healthy := make([]domain.ServiceEntry, 0, len(entries))
	for _, entry := range entries {
		if err := r.probe(entry.Identity); err != nil {
			level.Warn(r.logger).Log("msg", "dropping unhealthy service", "identity", entry.Identity, "err", err)
			continue
		}
		healthy = append(healthy, entry)
	}
	return healthy, nil
}

// Register delegates to the wrapped resolver.
func (r *healthCheckedResolver) Register(identity string, leaseSeconds int) error {
	return r.inner.Register(identity, leaseSeconds)
}

// Deregister delegates to the wrapped resolver.
func (r *healthCheckedResolver) Deregister(identity string) error {
	return r.inner.Deregister(identity)
}

// MinRefreshInterval delegates to the wrapped resolver.
func (r *healthCheckedResolver) MinRefreshInterval() (int, error) {
	return r.inner.MinRefreshInterval()
}

// Close delegates to the wrapped resolver.
func (r *healthCheckedResolver) Close() error {
	return r.inner.Close()
}

// probe dials identity and asks the standard health service for the overall status.
// The connection is throwaway: probes are infrequent (once per discovery cycle) and
// caching client connections for instances that may disappear is not worth it here.
func (r *healthCheckedResolver) probe(identity string) error {
	conn, err := grpc.NewClient(identity, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("can't dial %s, err: %w", identity, err)
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
	defer cancel()

	resp, err := grpc_health_v1.NewHealthClient(conn).Check(ctx, &grpc_health_v1.HealthCheckRequest{})
	if err != nil {
		return fmt.Errorf("can't check health of %s, err: %w", identity, err)
	}
	if resp.GetStatus() != grpc_health_v1.HealthCheckResponse_SERVING {
		return fmt.Errorf("%s reported status %s", identity, resp.GetStatus())
	}
	return nil
}
