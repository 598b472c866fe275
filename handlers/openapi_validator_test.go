package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"myresolver/interfaces"
	"myresolver/interfaces/mock"
	"myresolver/service"

	"github.com/go-kit/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newValidatedServer builds an echo server with the OpenAPI validator in front of
// the handlers, the way cmd/main wires it.
func newValidatedServer(t *testing.T, bridge *mock.ResolverBridgeMock) *echo.Echo {
	t.Helper()

	validator, err := NewOpenAPIValidator()
	require.NoError(t, err)

	e := echo.New()
	e.Use(validator)
	RegisterHandlers(e, NewHTTPServer(bridge, &mock.StatusStoreMock{}, log.NewNopLogger()))
	service.RegisterErrorHandler(e, log.NewNopLogger())
	return e
}

func TestNewOpenAPIValidator_LoadsEmbeddedDocument(t *testing.T) {
	validator, err := NewOpenAPIValidator()
	require.NoError(t, err)
	assert.NotNil(t, validator)
}

func TestOpenAPIValidator(t *testing.T) {
	okBridge := func() *mock.ResolverBridgeMock {
		return &mock.ResolverBridgeMock{
			RegisterFunc: func(onComplete interfaces.CompletionCallback, identity string, leaseSeconds int) {
				onComplete(true)
			},
		}
	}

	tests := []struct {
		name           string
		method         string
		path           string
		body           string
		expectedStatus int
		wantErrCode    string
	}{
		{
			name:           "valid request passes through",
			method:         http.MethodPost,
			path:           "/v1/register",
			body:           `{"identity":"10.0.0.1:9000","lease_s":30}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "400 missing identity",
			method:         http.MethodPost,
			path:           "/v1/register",
			body:           `{"lease_s":30}`,
			expectedStatus: http.StatusBadRequest,
			wantErrCode:    service.ErrBadParameter,
		},
		{
			name:           "400 lease_s below minimum",
			method:         http.MethodPost,
			path:           "/v1/register",
			body:           `{"identity":"10.0.0.1:9000","lease_s":0}`,
			expectedStatus: http.StatusBadRequest,
			wantErrCode:    service.ErrBadParameter,
		},
		{
			name:           "400 lease_s wrong type",
			method:         http.MethodPost,
			path:           "/v1/register",
			body:           `{"identity":"10.0.0.1:9000","lease_s":"soon"}`,
			expectedStatus: http.StatusBadRequest,
			wantErrCode:    service.ErrBadParameter,
		},
		{
			name:           "404 unknown path",
			method:         http.MethodPost,
			path:           "/v1/nope",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "405 wrong method",
			method:         http.MethodGet,
			path:           "/v1/register",
			expectedStatus: http.StatusMethodNotAllowed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newValidatedServer(t, okBridge())

			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.wantErrCode == "" {
				return
			}

			var body errBody
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantErrCode, body.Error.Code)
		})
	}
}

func TestOpenAPIValidator_BodySurvivesValidation(t *testing.T) {
	// The validator reads the request body to check it against the schema; the
	// handler behind it must still be able to bind the same body.
	var boundIdentity string
	bridge := &mock.ResolverBridgeMock{
		RegisterFunc: func(onComplete interfaces.CompletionCallback, identity string, leaseSeconds int) {
			boundIdentity = identity
			onComplete(true)
		},
	}
	e := newValidatedServer(t, bridge)

	req := httptest.NewRequest(http.MethodPost, "/v1/register", strings.NewReader(`{"identity":"10.0.0.1:9000","lease_s":30}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "10.0.0.1:9000", boundIdentity)
}
