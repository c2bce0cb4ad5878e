package repository

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/registration"
	"github.com/x-xyz/ensagent/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/ensagent/service/cache/provider/redis"
	"github.com/x-xyz/ensagent/service/redis"
	mockRedis "github.com/x-xyz/ensagent/service/redis/mocks"
)

var (
	mockCtx = ctx.Background()
)

func mockSession() *registration.Session {
	return &registration.Session{
		Secret:       common.HexToHash("0xabc"),
		Label:        "alice",
		Owner:        common.HexToAddress("0x1111111111111111111111111111111111111111"),
		Duration:     (*hexutil.Big)(big.NewInt(31536000)),
		Resolver:     common.HexToAddress("0x2222222222222222222222222222222222222222"),
		ResolverData: []hexutil.Bytes{{0x01, 0x02}},
		SetPrimary:   true,
		Commitment:   common.HexToHash("0xdef"),
		Network:      "sepolia",
		CreatedAt:    1700000000000,
	}
}

type memorySuite struct {
	suite.Suite
	im registration.SessionRepo
}

func (s *memorySuite) SetupTest() {
	s.im = NewCacheRepo(primitive.NewPrimitive("regSession", 1))
}

func TestMemorySuite(t *testing.T) {
	suite.Run(t, new(memorySuite))
}

func (s *memorySuite) TestPutGetDelete() {
	id := registration.SessionId("id-1")
	sess := mockSession()
	s.Require().NoError(s.im.Put(mockCtx, id, sess, time.Minute))

	got, err := s.im.Get(mockCtx, id)
	s.Require().NoError(err)
	s.Equal(sess, got)

	s.Require().NoError(s.im.Delete(mockCtx, id))
	_, err = s.im.Get(mockCtx, id)
	s.ErrorIs(err, domain.ErrSessionExpired)
}

func (s *memorySuite) TestMissing() {
	_, err := s.im.Get(mockCtx, "nope")
	s.ErrorIs(err, registration.ErrSessionNotFound)
}

func (s *memorySuite) TestExpiry() {
	id := registration.SessionId("id-ttl")
	s.Require().NoError(s.im.Put(mockCtx, id, mockSession(), time.Second))
	time.Sleep(2100 * time.Millisecond)

	_, err := s.im.Get(mockCtx, id)
	s.ErrorIs(err, domain.ErrSessionExpired)
}

func (s *memorySuite) TestLockIsSingleFlight() {
	id := registration.SessionId("id-lock")

	ok, err := s.im.Acquire(mockCtx, id, time.Minute)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.im.Acquire(mockCtx, id, time.Minute)
	s.Require().NoError(err)
	s.False(ok)

	s.Require().NoError(s.im.Release(mockCtx, id))
	ok, err = s.im.Acquire(mockCtx, id, time.Minute)
	s.Require().NoError(err)
	s.True(ok)
}

type redisSuite struct {
	suite.Suite
	redis *mockRedis.Service
	im    registration.SessionRepo
}

func (s *redisSuite) SetupTest() {
	s.redis = mockRedis.NewService(s.T())
	s.im = NewCacheRepo(redisProvider.NewRedis(s.redis))
}

func TestRedisSuite(t *testing.T) {
	suite.Run(t, new(redisSuite))
}

func (s *redisSuite) TestPut() {
	sess := mockSession()
	val, err := sess.Marshal()
	s.Require().NoError(err)

	s.redis.On("Set", mockCtx, "regSession:id-1", val, registration.DefaultSessionTtl).Return(nil).Once()
	s.NoError(s.im.Put(mockCtx, "id-1", sess, registration.DefaultSessionTtl))
}

func (s *redisSuite) TestGetMissing() {
	s.redis.On("Get", mockCtx, "regSession:id-1").Return(nil, redis.ErrNotFound).Once()
	_, err := s.im.Get(mockCtx, "id-1")
	s.ErrorIs(err, registration.ErrSessionNotFound)
}

func (s *redisSuite) TestGetCorrupted() {
	s.redis.On("Get", mockCtx, "regSession:id-1").Return([]byte("{not json"), nil).Once()
	s.redis.On("TTL", mockCtx, "regSession:id-1").Return(100, nil).Once()
	_, err := s.im.Get(mockCtx, "id-1")
	s.ErrorIs(err, domain.ErrSessionCorrupted)
}

func (s *redisSuite) TestAcquireRelease() {
	s.redis.On("SetNX", mockCtx, "regLock:id-1", []byte("1"), registration.DefaultLockTtl).Return(true, nil).Once()
	s.redis.On("SetNX", mockCtx, "regLock:id-1", []byte("1"), registration.DefaultLockTtl).Return(false, nil).Once()
	s.redis.On("Del", mockCtx, "regLock:id-1").Return(1, nil).Once()

	ok, err := s.im.Acquire(mockCtx, "id-1", registration.DefaultLockTtl)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.im.Acquire(mockCtx, "id-1", registration.DefaultLockTtl)
	s.Require().NoError(err)
	s.False(ok)

	s.NoError(s.im.Release(mockCtx, "id-1"))
}

func (s *redisSuite) TestDelete() {
	s.redis.On("Del", mockCtx, "regSession:id-1").Return(0, nil).Once()
	s.NoError(s.im.Delete(mockCtx, "id-1"))
	s.redis.AssertNotCalled(s.T(), "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
