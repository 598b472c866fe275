package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myresolver/adapters"
	"myresolver/adapters/mydns"
	"myresolver/adapters/mynacos"
	"myresolver/adapters/myprobe"
	"myresolver/adapters/myredis"
	"myresolver/handlers"
	"myresolver/interfaces"
	"myresolver/service"

	"github.com/benbjohnson/clock"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/labstack/echo/v4"
)

func main() {
	// Initialize logger
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.WithPrefix(logger, "ts", log.DefaultTimestampUTC)
	logger = log.WithPrefix(logger, "caller", log.DefaultCaller)

	level.Info(logger).Log("msg", "Starting myresolver agent")

	// Load configuration
	config, err := LoadConfig()
	if err != nil {
		level.Error(logger).Log("msg", "Failed to load configuration", "err", err)
		os.Exit(1)
	}
	level.Info(logger).Log(
		"msg", "Configuration loaded",
		"service_port_http", config.HTTPPort,
		"backend", config.Backend,
		"scope", config.Scope,
	)

	resolver, err := buildResolver(config, logger)
	if err != nil {
		level.Error(logger).Log("msg", "Failed to create resolver", "err", err)
		os.Exit(1)
	}

	// The host loop runs on this goroutine; the worker loop runs on the goroutine
	// the bridge spawns.
	hostLoop := service.NewRunLoop(clock.New())
	workerLoop := service.NewRunLoop(clock.New())

	status := service.NewStatusStore(time.Now)

	// Create ResolverBridge
	var bridge interfaces.ResolverBridge
	{
		onDiscovery := func(ok bool, identities []string) {
			status.SetDiscovery(ok, identities)
			level.Info(logger).Log("msg", "Discovery finished", "ok", ok, "services", len(identities))
		}
		bridge = service.NewResolverBridge(
			resolver,
			hostLoop,
			workerLoop,
			onDiscovery,
			config.BaseRefreshSeconds,
			config.RenewalMarginSeconds,
			logger,
		)
		if err := bridge.Initialize(); err != nil {
			level.Error(logger).Log("msg", "Failed to initialize resolver bridge", "err", err)
			os.Exit(1)
		}
		if err := bridge.Start(); err != nil {
			level.Error(logger).Log("msg", "Failed to start resolver bridge", "err", err)
			os.Exit(1)
		}
	}

	// Queue the startup announcements and the first discovery run; the outcomes
	// land on the host loop once it runs below.
	for _, announcement := range config.Announce {
		identity := announcement.Identity
		leaseSeconds := announcement.LeaseSeconds
		bridge.Register(func(ok bool) {
			status.SetRegistration(identity, ok, leaseSeconds)
			if !ok {
				level.Error(logger).Log("msg", "Startup announcement failed", "identity", identity)
			}
		}, identity, leaseSeconds)
	}
	bridge.Discover()

	// Create HTTPServer
	httpServer := handlers.NewHTTPServer(bridge, status, logger)

	// Create HTTP server (Echo)
	var e *echo.Echo
	{
		e = echo.New()
		e.HideBanner = true
		validator, err := handlers.NewOpenAPIValidator()
		if err != nil {
			level.Error(logger).Log("msg", "Failed to create OpenAPI validator", "err", err)
			os.Exit(1)
		}
		e.Use(validator)
		service.RegisterErrorHandler(e, logger)
		handlers.RegisterHandlers(e, httpServer)
	}

	// Setup graceful shutdown: the signal terminates the host loop running below.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		hostLoop.Terminate()
	}()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%d", config.HTTPPort)
		level.Info(logger).Log("msg", "Starting HTTP server", "addr", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			level.Error(logger).Log("msg", "HTTP server error", "err", err)
		}
	}()

	// Deliver discovery results and request completions on this goroutine until a
	// shutdown signal arrives.
	if err := hostLoop.Run(); err != nil {
		level.Error(logger).Log("msg", "Host loop error", "err", err)
	}
	level.Info(logger).Log("msg", "Shutting down agent...")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		level.Error(logger).Log("msg", "Error during server shutdown", "err", err)
	}

	bridge.Stop()
	bridge.Join()
	if err := bridge.Close(); err != nil {
		level.Error(logger).Log("msg", "Error during bridge teardown", "err", err)
	}

	level.Info(logger).Log("msg", "Agent stopped")
}

// buildResolver creates the resolver backend selected in the configuration,
// wrapped in the health-probing decorator when probe_health is set.
func buildResolver(config *Config, logger log.Logger) (interfaces.Resolver, error) {
	var resolver interfaces.Resolver

	switch config.Backend {
	case backendRedis:
		redisClient, err := myredis.NewRedisUniversalClient(config.Redis.Addr)
		if err != nil {
			return nil, fmt.Errorf("can't create redis client, err: %w", err)
		}
		resolver = myredis.NewResolver(redisClient, config.Scope)
	case backendHTTP:
		resolver = adapters.ResolverHTTP(config.HTTP.BaseURL, &http.Client{Timeout: 10 * time.Second})
	case backendDNS:
		resolver = mydns.NewResolver(config.DNS.Server, config.DNS.Zone, config.Scope)
	case backendNacos:
		namingClient, err := mynacos.NewNamingClient(config.Nacos.Addr, config.Nacos.Namespace)
		if err != nil {
			return nil, fmt.Errorf("can't create nacos naming client, err: %w", err)
		}
		resolver = mynacos.NewResolver(namingClient, config.Scope)
	default:
		return nil, fmt.Errorf("unknown backend %q", config.Backend)
	}

	if config.ProbeHealth {
		resolver = myprobe.NewHealthCheckedResolver(resolver, logger)
	}

	return resolver, nil
}
