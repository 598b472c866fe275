package scenario

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const scenarioLeaseRenewal = "lease_renewal"

func init() {
	Register(scenarioLeaseRenewal, runLeaseRenewal)
}

// runLeaseRenewal verifies the agent keeps a short-lease registration alive by
// re-announcing it before the lease expires. The check reads the advertisement
// TTL straight from redis: with a 10s lease the agent renews around the 7s mark,
// so a TTL read after 8s must be near-full again rather than near-zero.
func runLeaseRenewal(ctx context.Context, cfg *Config) error {
	ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	agent := NewAgentClient(cfg.AgentBaseURL)
	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer redisClient.Close()

	identity := uniqueIdentity("itest-renewal")
	key := cfg.Scope + ":svc:" + identity

	if err := agent.RegisterService(ctx, identity, 10); err != nil {
		return err
	}
	defer func() {
		cleanupCtx, cleanupCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cleanupCancel()
		_ = agent.UnregisterService(cleanupCtx, identity)
	}()

	ttl, err := redisClient.TTL(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("read ttl of %s: %w", key, err)
	}
	if ttl <= 0 {
		return fmt.Errorf("advertisement %s has no ttl right after register (ttl=%v)", key, ttl)
	}

	// Sit out one renewal cycle. Without a renewal the remaining TTL would be
	// around 2s by now.
	select {
	case <-time.After(8 * time.Second):
	case <-ctx.Done():
		return ctx.Err()
	}

	ttl, err = redisClient.TTL(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("read ttl of %s after renewal window: %w", key, err)
	}
	if ttl <= 4*time.Second {
		return fmt.Errorf("advertisement %s was not renewed: ttl=%v after 8s of a 10s lease", key, ttl)
	}

	// The renewed advertisement is still discoverable.
	if err := agent.TriggerDiscovery(ctx); err != nil {
		return err
	}
	return waitFor(ctx, "renewed identity to appear in discovery", func(ctx context.Context) error {
		services, err := agent.Services(ctx)
		if err != nil {
			return err
		}
		if !containsIdentity(services.Discovery.Identities, identity) {
			return fmt.Errorf("%s not in discovered identities %v", identity, services.Discovery.Identities)
		}
		return nil
	})
}
