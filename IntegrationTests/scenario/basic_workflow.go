package scenario

import (
	"context"
	"fmt"
	"time"
)

const scenarioBasicWorkflow = "basic_workflow"

func init() {
	Register(scenarioBasicWorkflow, runBasicWorkflow)
}

// runBasicWorkflow walks the full lifecycle once: register an identity, see it in
// the registration status, trigger discovery and see it advertised, unregister,
// trigger discovery again and see it gone.
func runBasicWorkflow(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	agent := NewAgentClient(cfg.AgentBaseURL)
	identity := uniqueIdentity("itest-basic")

	// 1. Register; a 200 means the backend write already completed.
	if err := agent.RegisterService(ctx, identity, 30); err != nil {
		return err
	}

	services, err := agent.Services(ctx)
	if err != nil {
		return err
	}
	registration := registrationFor(services, identity)
	if registration == nil {
		return fmt.Errorf("registration for %s missing from services response", identity)
	}
	if !registration.Ok {
		return fmt.Errorf("registration for %s reported ok=false", identity)
	}
	if registration.LeaseS != 30 {
		return fmt.Errorf("registration for %s: lease_s=%d, want 30", identity, registration.LeaseS)
	}

	// 2. Discovery advertises it.
	if err := agent.TriggerDiscovery(ctx); err != nil {
		return err
	}
	err = waitFor(ctx, "identity to appear in discovery", func(ctx context.Context) error {
		services, err := agent.Services(ctx)
		if err != nil {
			return err
		}
		if !services.Discovery.Ok {
			return fmt.Errorf("discovery reported ok=false")
		}
		if services.Discovery.UpdatedAt == nil {
			return fmt.Errorf("no discovery run recorded yet")
		}
		if !containsIdentity(services.Discovery.Identities, identity) {
			return fmt.Errorf("%s not in discovered identities %v", identity, services.Discovery.Identities)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// 3. Unregister; a 200 means the backend delete already completed and the
	// registration status entry is dropped.
	if err := agent.UnregisterService(ctx, identity); err != nil {
		return err
	}
	services, err = agent.Services(ctx)
	if err != nil {
		return err
	}
	if registrationFor(services, identity) != nil {
		return fmt.Errorf("registration for %s still present after unregister", identity)
	}

	// 4. The next discovery run no longer advertises it.
	if err := agent.TriggerDiscovery(ctx); err != nil {
		return err
	}
	return waitFor(ctx, "identity to disappear from discovery", func(ctx context.Context) error {
		services, err := agent.Services(ctx)
		if err != nil {
			return err
		}
		if containsIdentity(services.Discovery.Identities, identity) {
			return fmt.Errorf("%s still in discovered identities", identity)
		}
		return nil
	})
}
