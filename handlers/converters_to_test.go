package handlers

import (
	"testing"

	"myresolver/domain"
	"myresolver/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToServicesResponse(t *testing.T) {
	t.Run("zero_snapshot_omits_updated_at", func(t *testing.T) {
		got := toServicesResponse(domain.DiscoverySnapshot{}, nil)

		assert.False(t, got.Discovery.Ok)
		require.NotNil(t, got.Discovery.Identities)
		assert.Empty(t, got.Discovery.Identities)
		assert.Nil(t, got.Discovery.UpdatedAt)
		require.NotNil(t, got.Registrations)
		assert.Empty(t, got.Registrations)
	})
	t.Run("full_snapshot", func(t *testing.T) {
		discovery := domain.DiscoverySnapshot{
			OK:         true,
			Identities: []string{"svc-a"},
			UpdatedAt:  helpers.TestNow(),
		}
		registrations := []domain.RegistrationStatus{
			{Identity: "svc-a", OK: true, LeaseSeconds: 30, UpdatedAt: helpers.TestNow()},
		}

		got := toServicesResponse(discovery, registrations)

		assert.True(t, got.Discovery.Ok)
		assert.Equal(t, []string{"svc-a"}, got.Discovery.Identities)
		require.NotNil(t, got.Discovery.UpdatedAt)
		assert.Equal(t, helpers.TestNow(), *got.Discovery.UpdatedAt)
		require.Len(t, got.Registrations, 1)
		assert.Equal(t, RegistrationInfo{
			Identity:  "svc-a",
			Ok:        true,
			LeaseS:    30,
			UpdatedAt: helpers.TestNow(),
		}, got.Registrations[0])
	})
}
