package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/ensagent/base/ctx"
)

// Forever means the key has no expiration
const Forever = time.Duration(-1)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = redis.ErrNil
	// ErrGapTime is returned when no pool can serve the command
	ErrGapTime = errors.New("redis pool is not available")
	// ErrNoTTL is returned by TTL when the key exists without an expiration
	ErrNoTTL = errors.New("key has no ttl")
)

// Service is the redis command surface used by the cache providers and the health check
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX sets key only when it is absent and reports whether it was set
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) (bool, error)
	Del(context ctx.Ctx, keys ...string) (int, error)
	// TTL returns the remaining seconds of key
	TTL(context ctx.Ctx, key string) (int, error)
}
