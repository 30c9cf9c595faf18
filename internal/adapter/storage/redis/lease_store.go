package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the lease only while the caller still owns it.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// LeaseStore implements ports.IdempotencyLease using Redis SET NX with an
// owner token. The token fences Release against deleting a lease that
// expired and was re-acquired by another process.
type LeaseStore struct {
	client *goredis.Client
	prefix string
}

// NewLeaseStore creates a Redis-backed idempotency lease store.
func NewLeaseStore(client *goredis.Client) *LeaseStore {
	return &LeaseStore{
		client: client,
		prefix: "refund:lease:",
	}
}

// Acquire claims the key for ttl. Returns ok=false when another owner holds
// the lease.
func (s *LeaseStore) Acquire(ctx context.Context, key string, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	ok, err := s.client.SetNX(ctx, s.prefix+key, token, ttl).Result()
	if err != nil {
		return "", false, fmt.Errorf("redis lease acquire: %w", err)
	}
	if !ok {
		return "", false, nil
	}
	return token, true, nil
}

// Release frees the lease if token still owns it. A no-op otherwise.
func (s *LeaseStore) Release(ctx context.Context, key, token string) error {
	if err := releaseScript.Run(ctx, s.client, []string{s.prefix + key}, token).Err(); err != nil {
		return fmt.Errorf("redis lease release: %w", err)
	}
	return nil
}
