package helpers

import (
	"time"
)

// TestNow returns a fixed time (2026-08-19 09:30:00 UTC) for deterministic tests (lease snapshots, logs, etc.).
//
// Parameters: none.
//
// Returns: time.Time in UTC.
//
// Called from tests (e.g. service/status_store_test) when a fixed "current" time is needed.
func TestNow() time.Time {
	return time.Date(2026, 8, 19, 9, 30, 0, 0, time.UTC)
}
