package scenario

import (
	"context"
	"time"
)

const scenarioUnregisterUnknownIdentity = "unregister_unknown_identity"

func init() {
	Register(scenarioUnregisterUnknownIdentity, runUnregisterUnknownIdentity)
}

// runUnregisterUnknownIdentity checks deregistration is idempotent end to end:
// withdrawing an identity that was never announced succeeds, matching the
// backend's delete-if-present semantics.
func runUnregisterUnknownIdentity(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	agent := NewAgentClient(cfg.AgentBaseURL)
	return agent.UnregisterService(ctx, uniqueIdentity("itest-never-registered"))
}
