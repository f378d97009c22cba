package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// releaseScript deletes the key only while it still holds the caller's token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisGuard is a best-effort, per-key mutual exclusion across instances
// built on SET NX with a TTL.
type RedisGuard struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisClient(addr, password string) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})
}

func NewRedisGuard(client *redis.Client, prefix string, ttl time.Duration) *RedisGuard {
	return &RedisGuard{client: client, prefix: prefix, ttl: ttl}
}

func (g *RedisGuard) key(id uint) string {
	return fmt.Sprintf("%s:%d", g.prefix, id)
}

// Acquire reports whether the caller now holds the guard for id. The
// returned token must be handed back to Release.
func (g *RedisGuard) Acquire(ctx context.Context, id uint) (string, bool, error) {
	token := uuid.NewString()
	ok, err := g.client.SetNX(ctx, g.key(id), token, g.ttl).Result()
	if err != nil || !ok {
		return "", false, err
	}
	return token, true, nil
}

// Release is a no-op when the guard expired and another holder took it.
func (g *RedisGuard) Release(ctx context.Context, id uint, token string) error {
	return releaseScript.Run(ctx, g.client, []string{g.key(id)}, token).Err()
}

// NopGuard always grants the guard; used when Redis is not configured.
type NopGuard struct{}

func (NopGuard) Acquire(context.Context, uint) (string, bool, error) { return "", true, nil }
func (NopGuard) Release(context.Context, uint, string) error         { return nil }
