// Package docker drives the docker-compose topology the scenarios run against.
package docker

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultComposeFile is the default path to docker-compose.yml relative to the
	// harness working directory.
	DefaultComposeFile = "../docker-compose.yml"
	// startupTimeout is the maximum time to wait for containers to come up.
	startupTimeout = 60 * time.Second
	// settleDelay is the pause after all containers report running, giving the
	// agent time to finish its own startup (backend ping, first announcements).
	settleDelay = 5 * time.Second
	// statusInterval is the interval between container status checks.
	statusInterval = 2 * time.Second
)

// SetupEnvironment recreates the docker-compose environment: down, up -d, wait
// until every container is running, then a short settle delay.
func SetupEnvironment(composePath string) error {
	if composePath == "" {
		composePath = DefaultComposeFile
	}
	absPath, err := filepath.Abs(composePath)
	if err != nil {
		return fmt.Errorf("resolve compose file path: %w", err)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return fmt.Errorf("docker-compose.yml not found at %s", absPath)
	}
	composeDir := filepath.Dir(absPath)

	fmt.Fprintf(os.Stderr, "=== Setting up docker-compose environment ===\n")
	fmt.Fprintf(os.Stderr, "Compose file: %s\n\n", absPath)

	// A failed down is fine when nothing was running.
	if err := runCompose(composeDir, "down"); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: docker-compose down failed (ok when nothing was running): %v\n", err)
	}
	if err := runCompose(composeDir, "up", "-d"); err != nil {
		return fmt.Errorf("docker-compose up failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\nWaiting for containers to be ready...\n")
	if err := waitForRunning(composeDir); err != nil {
		return fmt.Errorf("containers failed to start: %w", err)
	}

	fmt.Fprintf(os.Stderr, "All containers running. Settling for %v...\n", settleDelay)
	time.Sleep(settleDelay)
	fmt.Fprintf(os.Stderr, "=== Environment ready ===\n\n")
	return nil
}

// StopService stops one compose service by name (e.g. "redis"). workDir must be
// the directory containing docker-compose.yml.
func StopService(workDir string, serviceName string) error {
	return runCompose(workDir, "stop", serviceName)
}

// StartService starts one compose service by name.
func StartService(workDir string, serviceName string) error {
	return runCompose(workDir, "start", serviceName)
}

// runCompose runs a docker-compose command with its output redirected to stderr.
func runCompose(workDir string, args ...string) error {
	cmd := exec.Command("docker-compose", args...)
	cmd.Dir = workDir
	cmd.Stdout = os.Stderr
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// composeContainer is one line of `docker-compose ps --format json` output.
type composeContainer struct {
	Name   string `json:"Name"`
	State  string `json:"State"`
	Status string `json:"Status"`
}

// waitForRunning polls container states until all are running, any has failed,
// or the startup timeout expires.
func waitForRunning(workDir string) error {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	ticker := time.NewTicker(statusInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for containers to start (waited %v)", startupTimeout)
		case <-ticker.C:
			containers, err := listContainers(workDir)
			if err != nil {
				return err
			}
			if len(containers) == 0 {
				continue
			}

			allRunning := true
			var failed []string
			for _, c := range containers {
				state := strings.ToLower(c.State)
				if state == "running" {
					continue
				}
				allRunning = false
				if state == "exited" || state == "dead" || strings.Contains(strings.ToLower(c.Status), "restarting") {
					failed = append(failed, c.Name)
				}
			}
			if len(failed) > 0 {
				return fmt.Errorf("containers failed to start: %s", strings.Join(failed, ", "))
			}
			if allRunning {
				return nil
			}
		}
	}
}

// listContainers parses `docker-compose ps --format json`, one JSON object per
// line; unparseable lines are skipped.
func listContainers(workDir string) ([]composeContainer, error) {
	cmd := exec.Command("docker-compose", "ps", "--format", "json")
	cmd.Dir = workDir
	output, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("docker-compose ps failed: %w", err)
	}

	var containers []composeContainer
	scanner := bufio.NewScanner(strings.NewReader(string(output)))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var c composeContainer
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			continue
		}
		containers = append(containers, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("parse docker-compose ps output: %w", err)
	}
	return containers, nil
}
