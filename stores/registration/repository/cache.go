package repository

import (
	"time"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/log"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/keys"
	"github.com/x-xyz/ensagent/domain/registration"
	"github.com/x-xyz/ensagent/service/cache/provider"
)

type cacheRepo struct {
	cache provider.Provider
}

// NewCacheRepo stores sessions in a cache provider, redis for shared deployments or freecache in process
func NewCacheRepo(cache provider.Provider) registration.SessionRepo {
	return &cacheRepo{cache: cache}
}

func sessionKey(id registration.SessionId) string {
	return keys.RedisKey(keys.PfxRegSession, id.String())
}

func lockKey(id registration.SessionId) string {
	return keys.RedisKey(keys.PfxRegLock, id.String())
}

func (im *cacheRepo) Put(c ctx.Ctx, id registration.SessionId, s *registration.Session, ttl time.Duration) error {
	val, err := s.Marshal()
	if err != nil {
		c.WithField("err", err).Error("session.Marshal failed")
		return err
	}
	if err := im.cache.Set(c, sessionKey(id), val, ttl); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"sessionId": id,
		}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *cacheRepo) Get(c ctx.Ctx, id registration.SessionId) (*registration.Session, error) {
	val, _, err := im.cache.Get(c, sessionKey(id))
	if err == provider.ErrNotFound {
		return nil, registration.ErrSessionNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"sessionId": id,
		}).Error("cache.Get failed")
		return nil, err
	}
	s, err := registration.UnmarshalSession(val)
	if err != nil {
		return nil, domain.WrapError(domain.KindSessionCorrupted, err, "session %s is unreadable", id)
	}
	return s, nil
}

func (im *cacheRepo) Delete(c ctx.Ctx, id registration.SessionId) error {
	return im.cache.Del(c, sessionKey(id))
}

func (im *cacheRepo) Acquire(c ctx.Ctx, id registration.SessionId, ttl time.Duration) (bool, error) {
	return im.cache.SetNX(c, lockKey(id), []byte("1"), ttl)
}

func (im *cacheRepo) Release(c ctx.Ctx, id registration.SessionId) error {
	return im.cache.Del(c, lockKey(id))
}
