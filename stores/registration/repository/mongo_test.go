package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/registration"
	"github.com/x-xyz/ensagent/service/query"
	mockQuery "github.com/x-xyz/ensagent/service/query/mocks"
)

type mongoSuite struct {
	suite.Suite
	query *mockQuery.Mongo
	im    registration.SessionRepo
	now   time.Time
}

func (s *mongoSuite) SetupTest() {
	s.now = time.Unix(1700000000, 0)
	timeNow = func() time.Time { return s.now }

	s.query = mockQuery.NewMongo(s.T())
	s.query.On("EnsureTTLIndex", mockCtx, domain.TableRegistrationSessions, "expireAt", time.Duration(0)).Return(nil).Once()
	im, err := NewMongoRepo(mockCtx, s.query)
	s.Require().NoError(err)
	s.im = im
}

func (s *mongoSuite) TearDownTest() {
	timeNow = time.Now
}

func TestMongoSuite(t *testing.T) {
	suite.Run(t, new(mongoSuite))
}

func (s *mongoSuite) TestPut() {
	sess := mockSession()
	payload, err := sess.Marshal()
	s.Require().NoError(err)

	doc := sessionDoc{
		Id:        "id-1",
		Payload:   payload,
		Network:   "sepolia",
		Label:     "alice",
		CreatedAt: s.now,
		ExpireAt:  s.now.Add(registration.DefaultSessionTtl),
	}
	s.query.On("Insert", mockCtx, domain.TableRegistrationSessions, doc).Return(nil).Once()
	s.NoError(s.im.Put(mockCtx, "id-1", sess, registration.DefaultSessionTtl))
}

func (s *mongoSuite) TestGet() {
	sess := mockSession()
	payload, err := sess.Marshal()
	s.Require().NoError(err)

	selector := bson.M{"_id": "id-1", "expireAt": bson.M{"$gt": s.now}}
	s.query.On("FindOne", mockCtx, domain.TableRegistrationSessions, selector, mock.Anything).
		Run(func(args mock.Arguments) {
			doc := args.Get(3).(*sessionDoc)
			doc.Payload = payload
		}).Return(nil).Once()

	got, err := s.im.Get(mockCtx, "id-1")
	s.Require().NoError(err)
	s.Equal(sess, got)
}

func (s *mongoSuite) TestGetExpired() {
	s.query.On("FindOne", mockCtx, domain.TableRegistrationSessions, mock.Anything, mock.Anything).Return(query.ErrNotFound).Once()
	_, err := s.im.Get(mockCtx, "id-1")
	s.ErrorIs(err, registration.ErrSessionNotFound)
}

func (s *mongoSuite) TestDeleteMissingIsNoop() {
	s.query.On("Remove", mockCtx, domain.TableRegistrationSessions, bson.M{"_id": "id-1"}).Return(query.ErrNotFound).Once()
	s.NoError(s.im.Delete(mockCtx, "id-1"))
}

func (s *mongoSuite) TestAcquire() {
	selector := bson.M{
		"_id":         "id-1",
		"expireAt":    bson.M{"$gt": s.now},
		"lockedUntil": bson.M{"$lte": s.now},
	}
	update := bson.M{"$set": bson.M{"lockedUntil": s.now.Add(registration.DefaultLockTtl)}}
	s.query.On("CustomPatch", mockCtx, domain.TableRegistrationSessions, selector, update, false).Return(nil).Once()
	s.query.On("CustomPatch", mockCtx, domain.TableRegistrationSessions, selector, update, false).Return(query.ErrNotFound).Once()

	ok, err := s.im.Acquire(mockCtx, "id-1", registration.DefaultLockTtl)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.im.Acquire(mockCtx, "id-1", registration.DefaultLockTtl)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *mongoSuite) TestAcquireError() {
	s.query.On("CustomPatch", mockCtx, domain.TableRegistrationSessions, mock.Anything, mock.Anything, false).Return(errors.New("conn reset")).Once()
	_, err := s.im.Acquire(mockCtx, "id-1", registration.DefaultLockTtl)
	s.Error(err)
}

func (s *mongoSuite) TestRelease() {
	update := bson.M{"$set": bson.M{"lockedUntil": time.Time{}}}
	s.query.On("CustomPatch", mockCtx, domain.TableRegistrationSessions, bson.M{"_id": "id-1"}, update, false).Return(nil).Once()
	s.NoError(s.im.Release(mockCtx, "id-1"))
}
