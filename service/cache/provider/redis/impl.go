package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/service/cache/provider"
	"github.com/x-xyz/ensagent/service/redis"
)

type impl struct {
	redis redis.Service
}

// NewRedis shares cache entries and session locks between replicas
func NewRedis(redis redis.Service) provider.Provider {
	return &impl{redis}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, err := im.redis.Get(c, key)
	if errors.Is(err, redis.ErrNotFound) {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Get failed")
		return nil, 0, err
	}

	ttl, err := im.redis.TTL(c, key)
	switch {
	case errors.Is(err, redis.ErrNoTTL):
		return val, 0, nil
	case errors.Is(err, redis.ErrNotFound):
		// expired between GET and TTL
		return nil, 0, provider.ErrNotFound
	case err != nil:
		c.WithField("err", err).WithField("key", key).Error("redis.TTL failed")
		return nil, 0, err
	}
	return val, time.Duration(ttl) * time.Second, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = redis.Forever
	}
	if err := im.redis.Set(c, key, value, ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Set failed")
		return err
	}
	return nil
}

func (im *impl) SetNX(c ctx.Ctx, key string, value []byte, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		ttl = redis.Forever
	}
	ok, err := im.redis.SetNX(c, key, value, ttl)
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.SetNX failed")
		return false, err
	}
	return ok, nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	if _, err := im.redis.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Del failed")
		return err
	}
	return nil
}
