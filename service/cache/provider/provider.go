package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/ensagent/base/ctx"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// Provider stores raw bytes with a ttl, a zero remaining ttl from Get means no expiry
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	// SetNX stores value only if key is absent, ok reports whether it was stored
	SetNX(c ctx.Ctx, key string, value []byte, ttl time.Duration) (ok bool, err error)
	Del(c ctx.Ctx, key string) error
}
