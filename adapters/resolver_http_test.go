package adapters

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"myresolver/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolverHTTP_Panics(t *testing.T) {
	t.Run("baseURL_empty", func(t *testing.T) {
		assert.PanicsWithValue(t, "adapters.resolver_http.go: baseURL is required", func() {
			ResolverHTTP("", &http.Client{})
		})
	})
	t.Run("client_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "adapters.resolver_http.go: http client is required", func() {
			ResolverHTTP("http://localhost:8080", nil)
		})
	})
}

func TestResolverHTTP_FindServices(t *testing.T) {
	tests := []struct {
		name           string
		statusCode     int
		body           string
		wantEntries    []domain.ServiceEntry
		wantErr        bool
		wantErrContain string
	}{
		{
			name:       "success",
			statusCode: http.StatusOK,
			body:       `{"services":[{"identity":"10.0.0.1:9000","lease_s":30}]}`,
			wantEntries: []domain.ServiceEntry{
				{Identity: "10.0.0.1:9000", LeaseSeconds: 30},
			},
		},
		{
			name:        "success_empty_list",
			statusCode:  http.StatusOK,
			body:        `{"services":[]}`,
			wantEntries: []domain.ServiceEntry{},
		},
		{
			name:       "success_extra_fields_ignored",
			statusCode: http.StatusOK,
			body:       `{"services":[{"identity":"10.0.0.2:9001","lease_s":60,"region":"eu"}],"next":null}`,
			wantEntries: []domain.ServiceEntry{
				{Identity: "10.0.0.2:9001", LeaseSeconds: 60},
			},
		},
		{
			name:        "404_treated_as_empty_list",
			statusCode:  http.StatusNotFound,
			body:        `{}`,
			wantEntries: []domain.ServiceEntry{},
		},
		{
			name:           "non_200_returns_error",
			statusCode:     http.StatusInternalServerError,
			body:           `{}`,
			wantErr:        true,
			wantErrContain: "500",
		},
		{
			name:           "invalid_json_returns_error",
			statusCode:     http.StatusOK,
			body:           `not json`,
			wantErr:        true,
			wantErrContain: "",
		},
		{
			name:           "empty_object_missing_services_returns_error",
			statusCode:     http.StatusOK,
			body:           `{}`,
			wantErr:        true,
			wantErrContain: "missing services",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod string
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.Path
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			res := ResolverHTTP(server.URL, server.Client())
			got, err := res.FindServices()
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrContain != "" {
					assert.Contains(t, err.Error(), tt.wantErrContain)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "GET", gotMethod)
			assert.Equal(t, "/v1/services", gotPath)
			assert.Equal(t, tt.wantEntries, got)
		})
	}
}

func TestResolverHTTP_Register(t *testing.T) {
	tests := []struct {
		name           string
		statusCode     int
		wantErr        bool
		wantErrContain string
	}{
		{
			name:       "success_200",
			statusCode: http.StatusOK,
		},
		{
			name:           "500_returns_error",
			statusCode:     http.StatusInternalServerError,
			wantErr:        true,
			wantErrContain: "500",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod string
			var gotPath string
			var gotBody map[string]interface{}
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.Path
				_ = json.NewDecoder(r.Body).Decode(&gotBody)
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			res := ResolverHTTP(server.URL, server.Client())
			err := res.Register("10.0.0.1:9000", 30)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrContain)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "POST", gotMethod)
			assert.Equal(t, "/v1/register", gotPath)
			assert.Equal(t, map[string]interface{}{
				"identity": "10.0.0.1:9000",
				"lease_s":  float64(30),
			}, gotBody)
		})
	}
}

func TestResolverHTTP_Deregister(t *testing.T) {
	tests := []struct {
		name           string
		identity       string
		statusCode     int
		wantErr        bool
		wantErrContain string
		wantPathSuffix string
	}{
		{
			name:           "success_200",
			identity:       "10.0.0.1:9000",
			statusCode:     http.StatusOK,
			wantPathSuffix: "/v1/unregister/10.0.0.1:9000",
		},
		{
			name:           "500_returns_error",
			identity:       "10.0.0.1:9000",
			statusCode:     http.StatusInternalServerError,
			wantErr:        true,
			wantErrContain: "500",
		},
		{
			name:           "identity_path_escaped",
			identity:       "svc/1",
			statusCode:     http.StatusOK,
			wantPathSuffix: "/v1/unregister/svc%2F1", // RawPath; Path would be decoded to svc/1
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotMethod string
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotMethod = r.Method
				gotPath = r.URL.RawPath
				if gotPath == "" {
					gotPath = r.URL.Path
				}
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			res := ResolverHTTP(server.URL, server.Client())
			err := res.Deregister(tt.identity)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErrContain)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "POST", gotMethod)
			assert.Equal(t, tt.wantPathSuffix, gotPath)
		})
	}
}

func TestResolverHTTP_MinRefreshInterval(t *testing.T) {
	tests := []struct {
		name           string
		statusCode     int
		body           string
		wantSeconds    int
		wantErr        bool
		wantErrContain string
	}{
		{
			name:        "success",
			statusCode:  http.StatusOK,
			body:        `{"seconds":30}`,
			wantSeconds: 30,
		},
		{
			name:        "404_means_no_minimum",
			statusCode:  http.StatusNotFound,
			body:        `{}`,
			wantSeconds: 0,
		},
		{
			name:           "non_200_returns_error",
			statusCode:     http.StatusBadGateway,
			body:           `{}`,
			wantErr:        true,
			wantErrContain: "502",
		},
		{
			name:           "invalid_json_returns_error",
			statusCode:     http.StatusOK,
			body:           `not json`,
			wantErr:        true,
			wantErrContain: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.WriteHeader(tt.statusCode)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			res := ResolverHTTP(server.URL, server.Client())
			got, err := res.MinRefreshInterval()
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantErrContain != "" {
					assert.Contains(t, err.Error(), tt.wantErrContain)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "/v1/min-refresh", gotPath)
			assert.Equal(t, tt.wantSeconds, got)
		})
	}
}

func TestResolverHTTP_OpenAndClose(t *testing.T) {
	t.Run("open_probes_the_directory", func(t *testing.T) {
		var gotPath string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"services":[]}`))
		}))
		defer server.Close()

		res := ResolverHTTP(server.URL, server.Client())
		require.NoError(t, res.Open())
		assert.Equal(t, "/v1/services", gotPath)
		require.NoError(t, res.Close())
	})
	t.Run("open_fails_when_directory_is_down", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close()

		res := ResolverHTTP(server.URL, &http.Client{})
		assert.Error(t, res.Open())
	})
}
