package scenario

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

const scenarioRequestValidationErrors = "request_validation_errors"

func init() {
	Register(scenarioRequestValidationErrors, runRequestValidationErrors)
}

// runRequestValidationErrors sends malformed register requests and checks every
// one is rejected with 400/bad_parameter before reaching the backend.
func runRequestValidationErrors(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	agent := NewAgentClient(cfg.AgentBaseURL)

	cases := []struct {
		name string
		body string
	}{
		{name: "missing identity", body: `{"lease_s": 30}`},
		{name: "missing lease", body: `{"identity": "itest-validation"}`},
		{name: "zero lease", body: `{"identity": "itest-validation", "lease_s": 0}`},
		{name: "lease wrong type", body: `{"identity": "itest-validation", "lease_s": "soon"}`},
		{name: "not json", body: `not json at all`},
	}
	for _, c := range cases {
		status, code, err := agent.RegisterServiceRaw(ctx, c.body)
		if err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
		if status != http.StatusBadRequest {
			return fmt.Errorf("%s: status=%d, want %d", c.name, status, http.StatusBadRequest)
		}
		if code != "bad_parameter" {
			return fmt.Errorf("%s: code=%q, want bad_parameter", c.name, code)
		}
	}

	// None of the rejected requests may have produced a registration entry.
	services, err := agent.Services(ctx)
	if err != nil {
		return err
	}
	if registrationFor(services, "itest-validation") != nil {
		return fmt.Errorf("rejected request still produced a registration entry")
	}

	return nil
}
