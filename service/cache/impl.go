package cache

import (
	"encoding/json"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/metrics"
	"github.com/x-xyz/ensagent/domain/keys"
	"github.com/x-xyz/ensagent/service/cache/provider"
)

type impl struct {
	ttl         time.Duration
	pfx         string
	cache       provider.Provider
	serialize   Serializer
	deserialize Deserializer
	// concurrent misses of one key share a single getter call
	group singleflight.Group
	met   metrics.Service
}

func New(config ServiceConfig) Service {
	if config.Serialize == nil {
		config.Serialize = json.Marshal
	}
	if config.Deserialize == nil {
		config.Deserialize = json.Unmarshal
	}
	return &impl{
		ttl:         config.Ttl,
		pfx:         config.Pfx,
		cache:       config.Cache,
		serialize:   config.Serialize,
		deserialize: config.Deserialize,
		met:         metrics.New("cache"),
	}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err == nil {
		return nil
	} else if !errors.Is(err, ErrNotFound) {
		// a broken cache falls back to the getter
		c.WithField("err", err).WithField("key", key).Warn("Get failed")
	}

	raw, err, _ := im.group.Do(key, func() (interface{}, error) {
		raw, err := getter()
		if err != nil {
			return nil, err
		}
		if val, store := unwrap(raw); store {
			if err := im.Set(c, key, val); err != nil {
				c.WithField("err", err).WithField("key", key).Warn("Set failed")
			}
		}
		return raw, nil
	})
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("GetByFunc getter failed")
		return err
	}
	val, _ := unwrap(raw)
	fill(container, val)
	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	val, _, err := im.cache.Get(c, key)
	if errors.Is(err, provider.ErrNotFound) {
		im.met.BumpSum("miss", 1, "pfx", im.pfx)
		return ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return err
	}
	if err := im.deserialize(val, container); err != nil {
		c.WithField("err", err).WithField("key", key).Error("deserialize failed")
		return err
	}
	im.met.BumpSum("hit", 1, "pfx", im.pfx)
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	val, err := im.serialize(value)
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("serialize failed")
		return err
	}
	if err := im.cache.Set(c, key, val, im.ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = keys.RedisKey(im.pfx, key)

	if err := im.cache.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Del failed")
		return err
	}
	return nil
}
