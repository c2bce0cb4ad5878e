package primitive

import (
	"math"
	"time"

	"github.com/coocood/freecache"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/service/cache/provider"
)

var timeNow = time.Now

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive creates an in-process provider of size MB
func NewPrimitive(name string, size int) provider.Provider {
	return &impl{name, freecache.NewCache(size * 1024 * 1024)}
}

// freecache keeps whole seconds and treats 0 as no expiry, round sub second ttl up
func ttlSeconds(ttl time.Duration) int {
	if ttl <= 0 {
		return 0
	}
	return int(math.Ceil(ttl.Seconds()))
}

func remaining(expireAt uint32) time.Duration {
	if expireAt == 0 {
		return time.Duration(0)
	}
	d := time.Unix(int64(expireAt), 0).Sub(timeNow())
	if d < 0 {
		return time.Duration(0)
	}
	return d.Truncate(time.Second)
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, expireAt, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, time.Duration(0), provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return nil, time.Duration(0), err
	}
	return val, remaining(expireAt), nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, ttlSeconds(ttl)); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) SetNX(c ctx.Ctx, key string, value []byte, ttl time.Duration) (bool, error) {
	prev, err := im.cache.GetOrSet([]byte(key), value, ttlSeconds(ttl))
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.GetOrSet failed")
		return false, err
	}
	return prev == nil, nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
