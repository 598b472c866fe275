package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"myresolver/domain"
	"myresolver/helpers"
	"myresolver/interfaces"
	"myresolver/interfaces/mock"
	"myresolver/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registerHandlers(e *echo.Echo, server *HTTPServer) {
	RegisterHandlers(e, server)
	service.RegisterErrorHandler(e, log.NewNopLogger())
}

type errBody struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestHTTPServer_Register(t *testing.T) {
	validBody := `{"identity":"10.0.0.1:9000","lease_s":30}`

	tests := []struct {
		name           string
		body           string
		bridge         *mock.ResolverBridgeMock
		expectedStatus int
		wantErrCode    string
	}{
		{
			name: "ok",
			body: validBody,
			bridge: &mock.ResolverBridgeMock{
				RegisterFunc: func(onComplete interfaces.CompletionCallback, identity string, leaseSeconds int) {
					assert.Equal(t, "10.0.0.1:9000", identity)
					assert.Equal(t, 30, leaseSeconds)
					onComplete(true)
				},
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "400 invalid JSON",
			body:           `{invalid`,
			bridge:         &mock.ResolverBridgeMock{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "400 missing identity",
			body:           `{"lease_s":30}`,
			bridge:         &mock.ResolverBridgeMock{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "400 missing lease_s",
			body:           `{"identity":"10.0.0.1:9000"}`,
			bridge:         &mock.ResolverBridgeMock{},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "502 backend rejects",
			body: validBody,
			bridge: &mock.ResolverBridgeMock{
				RegisterFunc: func(onComplete interfaces.CompletionCallback, identity string, leaseSeconds int) {
					onComplete(false)
				},
			},
			expectedStatus: http.StatusBadGateway,
			wantErrCode:    service.ErrExternalService,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := &mock.StatusStoreMock{}
			e := echo.New()
			registerHandlers(e, NewHTTPServer(tt.bridge, status, log.NewNopLogger()))
			req := httptest.NewRequest(http.MethodPost, "/v1/register", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Empty(t, rec.Body.Bytes())
				require.Len(t, status.SetRegistrationCalls(), 1)
				assert.Equal(t, "10.0.0.1:9000", status.SetRegistrationCalls()[0].Identity)
				assert.True(t, status.SetRegistrationCalls()[0].Ok)
				assert.Equal(t, 30, status.SetRegistrationCalls()[0].LeaseSeconds)
				return
			}

			var body errBody
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			require.NotNil(t, body.Error)
			assert.NotEmpty(t, body.Error.Code)
			assert.NotEmpty(t, body.Error.Message)
			if tt.wantErrCode != "" {
				assert.Equal(t, tt.wantErrCode, body.Error.Code)
			}
		})
	}
}

func TestHTTPServer_Register_FailedOutcomeIsRecorded(t *testing.T) {
	bridge := &mock.ResolverBridgeMock{
		RegisterFunc: func(onComplete interfaces.CompletionCallback, identity string, leaseSeconds int) {
			onComplete(false)
		},
	}
	status := &mock.StatusStoreMock{}
	e := echo.New()
	registerHandlers(e, NewHTTPServer(bridge, status, log.NewNopLogger()))

	req := httptest.NewRequest(http.MethodPost, "/v1/register", strings.NewReader(`{"identity":"10.0.0.1:9000","lease_s":30}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	require.Len(t, status.SetRegistrationCalls(), 1)
	assert.False(t, status.SetRegistrationCalls()[0].Ok)
}

func TestHTTPServer_Unregister(t *testing.T) {
	tests := []struct {
		name           string
		identity       string
		bridge         *mock.ResolverBridgeMock
		expectedStatus int
		wantRemoved    bool
	}{
		{
			name:     "ok",
			identity: "10.0.0.1:9000",
			bridge: &mock.ResolverBridgeMock{
				DeregisterFunc: func(onComplete interfaces.CompletionCallback, identity string) {
					assert.Equal(t, "10.0.0.1:9000", identity)
					onComplete(true)
				},
			},
			expectedStatus: http.StatusOK,
			wantRemoved:    true,
		},
		{
			name:     "502 backend rejects",
			identity: "10.0.0.1:9000",
			bridge: &mock.ResolverBridgeMock{
				DeregisterFunc: func(onComplete interfaces.CompletionCallback, identity string) {
					onComplete(false)
				},
			},
			expectedStatus: http.StatusBadGateway,
			wantRemoved:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status := &mock.StatusStoreMock{}
			e := echo.New()
			registerHandlers(e, NewHTTPServer(tt.bridge, status, log.NewNopLogger()))
			req := httptest.NewRequest(http.MethodPost, "/v1/unregister/"+tt.identity, nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.wantRemoved {
				require.Len(t, status.RemoveRegistrationCalls(), 1)
				assert.Equal(t, tt.identity, status.RemoveRegistrationCalls()[0].Identity)
			} else {
				assert.Empty(t, status.RemoveRegistrationCalls())
			}
		})
	}
}

func TestHTTPServer_Discover(t *testing.T) {
	tests := []struct {
		name           string
		bridge         *mock.ResolverBridgeMock
		expectedStatus int
	}{
		{
			name: "202 queued",
			bridge: &mock.ResolverBridgeMock{
				DiscoverFunc: func() bool { return true },
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name: "500 not configured",
			bridge: &mock.ResolverBridgeMock{
				DiscoverFunc: func() bool { return false },
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			registerHandlers(e, NewHTTPServer(tt.bridge, &mock.StatusStoreMock{}, log.NewNopLogger()))
			req := httptest.NewRequest(http.MethodPost, "/v1/discover", nil)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.Len(t, tt.bridge.DiscoverCalls(), 1)
			if tt.expectedStatus == http.StatusAccepted {
				assert.Empty(t, rec.Body.Bytes())
			}
		})
	}
}

func TestHTTPServer_Services(t *testing.T) {
	t.Run("empty_store", func(t *testing.T) {
		e := echo.New()
		registerHandlers(e, NewHTTPServer(&mock.ResolverBridgeMock{}, &mock.StatusStoreMock{}, log.NewNopLogger()))
		req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ServicesResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.False(t, resp.Discovery.Ok)
		assert.Empty(t, resp.Discovery.Identities)
		assert.Nil(t, resp.Discovery.UpdatedAt)
		assert.Empty(t, resp.Registrations)
	})
	t.Run("with_data", func(t *testing.T) {
		status := &mock.StatusStoreMock{
			DiscoveryFunc: func() domain.DiscoverySnapshot {
				return domain.DiscoverySnapshot{
					OK:         true,
					Identities: []string{"svc-a", "svc-b"},
					UpdatedAt:  helpers.TestNow(),
				}
			},
			RegistrationsFunc: func() []domain.RegistrationStatus {
				return []domain.RegistrationStatus{
					{Identity: "svc-a", OK: true, LeaseSeconds: 30, UpdatedAt: helpers.TestNow()},
					{Identity: "svc-b", OK: false, LeaseSeconds: 60, UpdatedAt: helpers.TestNow()},
				}
			},
		}
		e := echo.New()
		registerHandlers(e, NewHTTPServer(&mock.ResolverBridgeMock{}, status, log.NewNopLogger()))
		req := httptest.NewRequest(http.MethodGet, "/v1/services", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp ServicesResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.True(t, resp.Discovery.Ok)
		assert.Equal(t, []string{"svc-a", "svc-b"}, resp.Discovery.Identities)
		require.NotNil(t, resp.Discovery.UpdatedAt)
		assert.True(t, resp.Discovery.UpdatedAt.Equal(helpers.TestNow()))
		require.Len(t, resp.Registrations, 2)
		assert.Equal(t, "svc-a", resp.Registrations[0].Identity)
		assert.True(t, resp.Registrations[0].Ok)
		assert.Equal(t, 30, resp.Registrations[0].LeaseS)
		assert.Equal(t, "svc-b", resp.Registrations[1].Identity)
		assert.False(t, resp.Registrations[1].Ok)
	})
}
