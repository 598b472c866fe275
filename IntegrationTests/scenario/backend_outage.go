package scenario

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"integrationtests/docker"
)

const scenarioBackendOutage = "backend_outage"

func init() {
	Register(scenarioBackendOutage, runBackendOutage)
}

// runBackendOutage stops the redis container, verifies registrations are answered
// 502 and the discovery status flags the failure, then restarts redis and
// verifies the agent recovers without being restarted itself.
func runBackendOutage(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 150*time.Second)
	defer cancel()

	if cfg.ComposePath == "" {
		return fmt.Errorf("scenario requires a compose file to control the backend")
	}
	composeDir := filepath.Dir(cfg.ComposePath)

	agent := NewAgentClient(cfg.AgentBaseURL)
	identity := uniqueIdentity("itest-outage")

	var cleanup []string
	defer func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cleanupCancel()
		for _, id := range cleanup {
			_ = agent.UnregisterService(cleanupCtx, id)
		}
	}()

	// Healthy baseline.
	if err := agent.RegisterService(ctx, identity, 30); err != nil {
		return err
	}
	cleanup = append(cleanup, identity)

	if err := docker.StopService(composeDir, "redis"); err != nil {
		return fmt.Errorf("stop redis: %w", err)
	}
	redisDown := true
	defer func() {
		if redisDown {
			_ = docker.StartService(composeDir, "redis")
		}
	}()

	// Registrations fail loudly while the backend is gone.
	status, code, err := agent.RegisterServiceRaw(ctx, fmt.Sprintf(`{"identity": %q, "lease_s": 30}`, identity+"-down"))
	if err != nil {
		return fmt.Errorf("register during outage: %w", err)
	}
	cleanup = append(cleanup, identity+"-down")
	if status != http.StatusBadGateway {
		return fmt.Errorf("register during outage: status=%d, want %d", status, http.StatusBadGateway)
	}
	if code != "external_service_error" {
		return fmt.Errorf("register during outage: code=%q, want external_service_error", code)
	}

	// Discovery reports the failure in the status snapshot.
	if err := agent.TriggerDiscovery(ctx); err != nil {
		return err
	}
	err = waitFor(ctx, "discovery to report the outage", func(ctx context.Context) error {
		services, err := agent.Services(ctx)
		if err != nil {
			return err
		}
		if services.Discovery.Ok {
			return fmt.Errorf("discovery still reports ok=true")
		}
		return nil
	})
	if err != nil {
		return err
	}

	if err := docker.StartService(composeDir, "redis"); err != nil {
		return fmt.Errorf("start redis: %w", err)
	}
	redisDown = false

	// Recovery: a fresh identity per attempt, so every attempt reaches the
	// backend instead of being answered from the agent's own state.
	attempt := 0
	err = waitFor(ctx, "registration to succeed after restart", func(ctx context.Context) error {
		attempt++
		probe := fmt.Sprintf("%s-probe-%d", identity, attempt)
		cleanup = append(cleanup, probe)
		return agent.RegisterService(ctx, probe, 30)
	})
	if err != nil {
		return err
	}

	// Discovery recovers too.
	if err := agent.TriggerDiscovery(ctx); err != nil {
		return err
	}
	return waitFor(ctx, "discovery to recover", func(ctx context.Context) error {
		services, err := agent.Services(ctx)
		if err != nil {
			return err
		}
		if !services.Discovery.Ok {
			return fmt.Errorf("discovery still reports ok=false")
		}
		return nil
	})
}
