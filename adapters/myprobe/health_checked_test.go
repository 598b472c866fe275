package myprobe

import (
	"errors"
	"net"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"

	"myresolver/domain"
	"myresolver/interfaces/mock"
)

// startHealthServer runs an in-process gRPC server exposing the standard health
// service with the given overall status and returns its host:port address.
func startHealthServer(t *testing.T, status grpc_health_v1.HealthCheckResponse_ServingStatus) string {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	grpcServer := grpc.NewServer()
	healthServer := health.NewServer()
	healthServer.SetServingStatus("", status)
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	go func() {
		_ = grpcServer.Serve(lis)
	}()
	t.Cleanup(grpcServer.Stop)

	return lis.Addr().String()
}

// deadAddr returns a loopback address nothing is listening on.
func deadAddr(t *testing.T) string {
	t.Helper()

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())
	return addr
}

func TestNewHealthCheckedResolver_Panics(t *testing.T) {
	t.Run("inner_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "myprobe.health_checked.go: inner resolver is required", func() {
			NewHealthCheckedResolver(nil, log.NewNopLogger())
		})
	})
	t.Run("logger_nil", func(t *testing.T) {
		assert.PanicsWithValue(t, "myprobe.health_checked.go: logger is required", func() {
			NewHealthCheckedResolver(&mock.ResolverMock{}, nil)
		})
	})
}

func TestHealthCheckedResolver_FindServices(t *testing.T) {
	t.Run("serving_instances_pass_the_probe", func(t *testing.T) {
		addr := startHealthServer(t, grpc_health_v1.HealthCheckResponse_SERVING)
		inner := &mock.ResolverMock{
			FindServicesFunc: func() ([]domain.ServiceEntry, error) {
				return []domain.ServiceEntry{{Identity: addr, LeaseSeconds: 30}}, nil
			},
		}
		res := NewHealthCheckedResolver(inner, log.NewNopLogger())

		entries, err := res.FindServices()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, addr, entries[0].Identity)
		assert.Equal(t, 30, entries[0].LeaseSeconds)
	})
	t.Run("unreachable_instances_are_dropped", func(t *testing.T) {
		live := startHealthServer(t, grpc_health_v1.HealthCheckResponse_SERVING)
		dead := deadAddr(t)
		inner := &mock.ResolverMock{
			FindServicesFunc: func() ([]domain.ServiceEntry, error) {
				return []domain.ServiceEntry{
					{Identity: dead, LeaseSeconds: 10},
					{Identity: live, LeaseSeconds: 30},
				}, nil
			},
		}
		res := NewHealthCheckedResolver(inner, log.NewNopLogger())

		entries, err := res.FindServices()
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, live, entries[0].Identity)
	})
	t.Run("not_serving_instances_are_dropped", func(t *testing.T) {
		addr := startHealthServer(t, grpc_health_v1.HealthCheckResponse_NOT_SERVING)
		inner := &mock.ResolverMock{
			FindServicesFunc: func() ([]domain.ServiceEntry, error) {
				return []domain.ServiceEntry{{Identity: addr, LeaseSeconds: 30}}, nil
			},
		}
		res := NewHealthCheckedResolver(inner, log.NewNopLogger())

		entries, err := res.FindServices()
		require.NoError(t, err)
		require.NotNil(t, entries)
		assert.Empty(t, entries)
	})
	t.Run("inner_error_is_passed_through", func(t *testing.T) {
		innerErr := errors.New("backend down")
		inner := &mock.ResolverMock{
			FindServicesFunc: func() ([]domain.ServiceEntry, error) {
				return nil, innerErr
			},
		}
		res := NewHealthCheckedResolver(inner, log.NewNopLogger())

		_, err := res.FindServices()
		require.Error(t, err)
		assert.ErrorIs(t, err, innerErr)
	})
}

func TestHealthCheckedResolver_Passthrough(t *testing.T) {
	inner := &mock.ResolverMock{
		MinRefreshIntervalFunc: func() (int, error) { return 15, nil },
	}
	res := NewHealthCheckedResolver(inner, log.NewNopLogger())

	require.NoError(t, res.Open())
	require.NoError(t, res.Register("10.0.0.1:9000", 30))
	require.NoError(t, res.Deregister("10.0.0.1:9000"))
	seconds, err := res.MinRefreshInterval()
	require.NoError(t, err)
	assert.Equal(t, 15, seconds)
	require.NoError(t, res.Close())

	assert.Len(t, inner.OpenCalls(), 1)
	require.Len(t, inner.RegisterCalls(), 1)
	assert.Equal(t, "10.0.0.1:9000", inner.RegisterCalls()[0].Identity)
	assert.Equal(t, 30, inner.RegisterCalls()[0].LeaseSeconds)
	require.Len(t, inner.DeregisterCalls(), 1)
	assert.Equal(t, "10.0.0.1:9000", inner.DeregisterCalls()[0].Identity)
	assert.Len(t, inner.MinRefreshIntervalCalls(), 1)
	assert.Len(t, inner.CloseCalls(), 1)
}
