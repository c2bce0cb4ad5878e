package redis

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/service/cache/provider"
	"github.com/x-xyz/ensagent/service/redis"
	mockRedis "github.com/x-xyz/ensagent/service/redis/mocks"
)

var (
	mockCtx = ctx.Background()
)

type redisProviderSuite struct {
	suite.Suite
	im    *impl
	redis *mockRedis.Service
}

func (s *redisProviderSuite) SetupTest() {
	s.redis = mockRedis.NewService(s.T())
	s.im = NewRedis(s.redis).(*impl)
}

func TestRedisProviderSuite(t *testing.T) {
	suite.Run(t, new(redisProviderSuite))
}

func (s *redisProviderSuite) TestSet() {
	v := []byte("session")
	s.redis.On("Set", mockCtx, "regSession:1", v, time.Hour).Return(nil).Once()
	s.NoError(s.im.Set(mockCtx, "regSession:1", v, time.Hour))
}

func (s *redisProviderSuite) TestSetWithoutTtlPersists() {
	v := []byte("session")
	s.redis.On("Set", mockCtx, "regSession:1", v, redis.Forever).Return(nil).Once()
	s.NoError(s.im.Set(mockCtx, "regSession:1", v, 0))
}

func (s *redisProviderSuite) TestGet() {
	s.redis.On("Get", mockCtx, "regSession:1").Return(nil, redis.ErrNotFound).Once()
	res, _, err := s.im.Get(mockCtx, "regSession:1")
	s.Nil(res)
	s.Equal(provider.ErrNotFound, err)

	v := []byte("session")
	s.redis.On("Get", mockCtx, "regSession:1").Return(v, nil).Once()
	s.redis.On("TTL", mockCtx, "regSession:1").Return(30, nil).Once()
	res, ttl, err := s.im.Get(mockCtx, "regSession:1")
	s.NoError(err)
	s.Equal(v, res)
	s.Equal(30*time.Second, ttl)
}

func (s *redisProviderSuite) TestGetWithoutTtl() {
	v := []byte("session")
	s.redis.On("Get", mockCtx, "regSession:1").Return(v, nil).Once()
	s.redis.On("TTL", mockCtx, "regSession:1").Return(-1, redis.ErrNoTTL).Once()
	res, ttl, err := s.im.Get(mockCtx, "regSession:1")
	s.NoError(err)
	s.Equal(v, res)
	s.Equal(time.Duration(0), ttl)
}

func (s *redisProviderSuite) TestGetExpiredBeforeTtl() {
	s.redis.On("Get", mockCtx, "regSession:1").Return([]byte("session"), nil).Once()
	s.redis.On("TTL", mockCtx, "regSession:1").Return(-2, redis.ErrNotFound).Once()
	_, _, err := s.im.Get(mockCtx, "regSession:1")
	s.Equal(provider.ErrNotFound, err)
}

func (s *redisProviderSuite) TestSetNX() {
	v := []byte("1")
	s.redis.On("SetNX", mockCtx, "regLock:1", v, time.Second).Return(true, nil).Once()
	ok, err := s.im.SetNX(mockCtx, "regLock:1", v, time.Second)
	s.NoError(err)
	s.True(ok)

	s.redis.On("SetNX", mockCtx, "regLock:1", v, time.Second).Return(false, nil).Once()
	ok, err = s.im.SetNX(mockCtx, "regLock:1", v, time.Second)
	s.NoError(err)
	s.False(ok)
}

func (s *redisProviderSuite) TestDel() {
	errDown := errors.New("redis down")
	s.redis.On("Del", mockCtx, "regLock:1").Return(0, errDown).Once()
	s.ErrorIs(s.im.Del(mockCtx, "regLock:1"), errDown)
}
