package handlers

import (
	"testing"

	"myresolver/domain"
	"myresolver/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromRegisterRequest(t *testing.T) {
	tests := []struct {
		name          string
		request       RegisterRequest
		expected      domain.Announcement
		expectedError string
	}{
		{
			name: "valid",
			request: RegisterRequest{
				Identity: "10.0.0.1:9000",
				LeaseS:   30,
			},
			expected: domain.Announcement{
				Identity:     "10.0.0.1:9000",
				LeaseSeconds: 30,
			},
		},
		{
			name: "empty identity",
			request: RegisterRequest{
				Identity: "",
				LeaseS:   30,
			},
			expectedError: "identity is required",
		},
		{
			name: "lease_s zero",
			request: RegisterRequest{
				Identity: "10.0.0.1:9000",
				LeaseS:   0,
			},
			expectedError: "lease_s is required",
		},
		{
			name: "lease_s negative",
			request: RegisterRequest{
				Identity: "10.0.0.1:9000",
				LeaseS:   -5,
			},
			expectedError: "lease_s is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := fromRegisterRequest(tt.request)
			if tt.expectedError != "" {
				require.Error(t, err)
				myErr := service.ToMyError(err)
				require.NotNil(t, myErr)
				assert.Equal(t, tt.expectedError, myErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
