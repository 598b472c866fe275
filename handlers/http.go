// Package handlers contains http handlers for the myresolver agent.
package handlers

import (
	"fmt"
	"net/http"
	"time"

	"myresolver/interfaces"
	"myresolver/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
)

// completionTimeout bounds how long Register and Unregister wait for the worker
// to report the backend verdict before answering 502.
const completionTimeout = 15 * time.Second

// HTTPServer exposes the resolver bridge and its status store over HTTP.
type HTTPServer struct {
	bridge interfaces.ResolverBridge
	status interfaces.StatusStore
	logger log.Logger
}

// NewHTTPServer creates a new HTTPServer.
func NewHTTPServer(bridge interfaces.ResolverBridge, status interfaces.StatusStore, logger log.Logger) *HTTPServer {
	logger = log.WithPrefix(logger, "component", "HTTPServer")
	return &HTTPServer{
		bridge: bridge,
		status: status,
		logger: logger,
	}
}

// RegisterHandlers wires the agent routes into e.
func RegisterHandlers(e *echo.Echo, server *HTTPServer) {
	e.POST("/v1/discover", server.Discover)
	e.POST("/v1/register", server.Register)
	e.POST("/v1/unregister/:identity", server.Unregister)
	e.GET("/v1/services", server.Services)
}

// Discover (POST /v1/discover) queues one immediate discovery run on the worker.
// Returns 202 — the outcome lands in GET /v1/services once the worker reports back.
func (h *HTTPServer) Discover(ectx echo.Context) error {
	if !h.bridge.Discover() {
		return service.NewInternalServerError("discovery is not configured", nil)
	}

	return ectx.NoContent(http.StatusAccepted)
}

// Register (POST /v1/register) queues a registration and waits for the worker to
// report the backend verdict. Returns 200 on success, 400 on parse/validation
// error, 502 when the backend rejects the registration or the wait times out.
func (h *HTTPServer) Register(ectx echo.Context) error {
	var req RegisterRequest
	if err := ectx.Bind(&req); err != nil {
		return service.NewBadParameterError("invalid request body", err)
	}

	announcement, err := fromRegisterRequest(req)
	if err != nil {
		return fmt.Errorf("register failed to convert request to announcement, err: %w", err)
	}

	done := make(chan bool, 1)
	h.bridge.Register(func(ok bool) {
		h.status.SetRegistration(announcement.Identity, ok, announcement.LeaseSeconds)
		done <- ok
	}, announcement.Identity, announcement.LeaseSeconds)

	select {
	case ok := <-done:
		if !ok {
			return service.NewExternalServiceError("resolver backend rejected the registration", nil)
		}
	case <-time.After(completionTimeout):
		return service.NewExternalServiceError("registration did not complete in time", nil)
	}

	return ectx.NoContent(http.StatusOK)
}

// Unregister (POST /v1/unregister/{identity}) queues a deregistration and waits
// for the worker to report the backend verdict. A confirmed deregistration also
// drops the identity from the status store.
func (h *HTTPServer) Unregister(ectx echo.Context) error {
	identity := ectx.Param("identity")
	if identity == "" {
		return service.NewBadParameterError("identity is required", nil)
	}

	done := make(chan bool, 1)
	h.bridge.Deregister(func(ok bool) {
		if ok {
			h.status.RemoveRegistration(identity)
		}
		done <- ok
	}, identity)

	select {
	case ok := <-done:
		if !ok {
			return service.NewExternalServiceError("resolver backend rejected the deregistration", nil)
		}
	case <-time.After(completionTimeout):
		return service.NewExternalServiceError("deregistration did not complete in time", nil)
	}

	return ectx.NoContent(http.StatusOK)
}

// Services (GET /v1/services) reports the last discovery snapshot and the status
// of every announced identity.
func (h *HTTPServer) Services(ectx echo.Context) error {
	return ectx.JSON(http.StatusOK, toServicesResponse(h.status.Discovery(), h.status.Registrations()))
}
