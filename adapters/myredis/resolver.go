package myredis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"myresolver/domain"
	"myresolver/helpers"
	"myresolver/interfaces"
	"myresolver/service"

	"github.com/go-redis/redis/v8"
)

// opTimeout bounds every redis command issued by the resolver.
const opTimeout = 5 * time.Second

type redisResolver struct {
	client redis.UniversalClient
	scope  string
}

// NewResolver creates an interfaces.Resolver backed by a shared redis database.
// Advertisements live under "<scope>:svc:<identity>" with the lease as the key TTL,
// so stale entries age out server-side without a reaper. The scope-wide minimum
// refresh interval, when an operator sets one, lives under "<scope>:cfg:min_refresh_s".
func NewResolver(client redis.UniversalClient, scope string) interfaces.Resolver {
	return &redisResolver{
		client: helpers.NilPanic(client, "myredis.resolver.go: client is required"),
		scope:  helpers.StrPanic(scope, "myredis.resolver.go: scope is required"),
	}
}

// registrationRecord is the JSON value stored per advertisement. The TTL is
// authoritative for the remaining lease; the record keeps the granted lease for
// operators reading the database directly.
type registrationRecord struct {
	Identity     string `json:"identity"`
	LeaseSeconds int    `json:"lease_s"`
}

func (r *redisResolver) Open() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := r.client.Ping(ctx).Err(); err != nil {
		return service.NewInternalServerError("Redis ping error", fmt.Errorf("can't reach redis, err: %w", err))
	}
	return nil
}

// FindServices lists all advertisement keys under the scope then reads the remaining
// TTL of each; the TTL is reported as the advertised lease. Keys that expire between
// the KEYS and TTL calls are skipped.
func (r *redisResolver) FindServices() ([]domain.ServiceEntry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	prefix := r.servicePrefix()
	fullKeys, err := r.client.Keys(ctx, prefix+"*").Result()
	if err != nil {
		return nil, service.NewInternalServerError("Redis get keys error", fmt.Errorf("redis get keys error, err: %w", err))
	}

	entries := make([]domain.ServiceEntry, 0, len(fullKeys))
	for _, k := range fullKeys {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		ttl, err := r.client.TTL(ctx, k).Result()
		if err != nil || ttl <= 0 {
			continue
		}
		entries = append(entries, domain.ServiceEntry{
			Identity:     strings.TrimPrefix(k, prefix),
			LeaseSeconds: int(ttl / time.Second),
		})
	}
	return entries, nil
}

func (r *redisResolver) Register(identity string, leaseSeconds int) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	bytes, err := json.Marshal(registrationRecord{Identity: identity, LeaseSeconds: leaseSeconds})
	if err != nil {
		return service.NewInternalServerError("Redis marshal record error", fmt.Errorf("can't marshal registration record (identity='%s'), err: %w", identity, err))
	}

	err = r.client.Set(ctx, r.serviceKey(identity), bytes, time.Duration(leaseSeconds)*time.Second).Err()
	if err != nil {
		return service.NewInternalServerError("Redis write key error", fmt.Errorf("can't write registration to redis (identity='%s'), err: %w", identity, err))
	}
	return nil
}

// Deregister deletes the advertisement key. Deleting a key that is already gone is
// not an error, which keeps the operation idempotent for the engine.
func (r *redisResolver) Deregister(identity string) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	err := r.client.Del(ctx, r.serviceKey(identity)).Err()
	if err != nil {
		return service.NewInternalServerError("Redis delete key error", fmt.Errorf("can't delete registration from redis (identity='%s'), err: %w", identity, err))
	}
	return nil
}

// MinRefreshInterval reads the scope-wide minimum from the config key; an absent key
// means the scope advertises no minimum.
func (r *redisResolver) MinRefreshInterval() (int, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	seconds, err := r.client.Get(ctx, r.configKey()).Int()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, service.NewInternalServerError("Redis read config error", fmt.Errorf("can't read min refresh interval from redis, err: %w", err))
	}
	return seconds, nil
}

func (r *redisResolver) Close() error {
	if err := r.client.Close(); err != nil {
		return service.NewInternalServerError("Redis close error", fmt.Errorf("can't close redis client, err: %w", err))
	}
	return nil
}

func (r *redisResolver) servicePrefix() string {
	return r.scope + ":svc:"
}

func (r *redisResolver) serviceKey(identity string) string {
	return r.servicePrefix() + identity
}

func (r *redisResolver) configKey() string {
	return r.scope + ":cfg:min_refresh_s"
}
