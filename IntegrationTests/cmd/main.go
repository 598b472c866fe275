package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"integrationtests/docker"
	"integrationtests/scenario"
)

// Defaults matching the docker-compose topology at the repository root.
const (
	defaultAgentBaseURL = "http://localhost:8080"
	defaultRedisAddr    = "localhost:6379"
	defaultScope        = "e133.esta"
)

func main() {
	list := flag.Bool("list", false, "list available scenarios and exit")
	scenarioName := flag.String("scenario", "", "scenario to run (or pass as positional arg)")
	agentBaseURL := flag.String("agent", "", "agent base URL (default: http://localhost:8080 or AGENT_BASE_URL env)")
	redisAddr := flag.String("redis", "", "redis address for direct backend checks (default: localhost:6379 or REDIS_ADDR env)")
	scope := flag.String("scope", "", "discovery scope the agent is configured with (default: e133.esta or SCOPE env)")
	composeFile := flag.String("compose-file", "", "path to docker-compose.yml (default: COMPOSE_FILE env or ../docker-compose.yml)")
	flag.Parse()

	if *agentBaseURL == "" {
		*agentBaseURL = os.Getenv("AGENT_BASE_URL")
	}
	if *agentBaseURL == "" {
		*agentBaseURL = defaultAgentBaseURL
	}
	if *redisAddr == "" {
		*redisAddr = os.Getenv("REDIS_ADDR")
	}
	if *redisAddr == "" {
		*redisAddr = defaultRedisAddr
	}
	if *scope == "" {
		*scope = os.Getenv("SCOPE")
	}
	if *scope == "" {
		*scope = defaultScope
	}

	if *list {
		for _, name := range scenario.Names() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	composePath := *composeFile
	if composePath == "" {
		composePath = os.Getenv("COMPOSE_FILE")
	}
	if composePath == "" {
		composePath = docker.DefaultComposeFile
	}

	// Recreate the docker-compose environment before running the scenario.
	if err := docker.SetupEnvironment(composePath); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to setup docker-compose environment: %v\n", err)
		os.Exit(1)
	}

	name := *scenarioName
	if name == "" {
		if args := flag.Args(); len(args) > 0 {
			name = args[0]
		}
	}
	if name == "" {
		fmt.Fprintln(os.Stderr, "usage: integrationtests [--list] [--scenario=NAME] [--agent=URL] [--redis=ADDR] [--scope=SCOPE] [--compose-file=PATH] [scenario_name]")
		fmt.Fprintln(os.Stderr, "  use --list to list scenarios")
		os.Exit(2)
	}

	cfg := &scenario.Config{
		AgentBaseURL: *agentBaseURL,
		RedisAddr:    *redisAddr,
		Scope:        *scope,
		ComposePath:  composePath,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
	defer cancel()

	err := scenario.Run(ctx, name, cfg)

	fmt.Println("\n=== Scenario Result ===")
	fmt.Printf("Scenario: %s\n", name)

	if err != nil {
		fmt.Printf("Status: FAILED\n")
		fmt.Printf("Error: %v\n", err)
		var unknown *scenario.UnknownScenarioError
		if errors.As(err, &unknown) {
			fmt.Fprintf(os.Stderr, "\navailable scenarios: %s\n", strings.Join(scenario.Names(), ", "))
			fmt.Println("=====================")
			os.Exit(2)
		}
		fmt.Println("=====================")
		os.Exit(1)
	}

	fmt.Printf("Status: PASSED\n")
	fmt.Println("=====================")
}
