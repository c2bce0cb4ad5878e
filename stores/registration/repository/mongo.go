package repository

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/database/mongoclient"
	"github.com/x-xyz/ensagent/base/log"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/registration"
	"github.com/x-xyz/ensagent/service/query"
)

var timeNow = time.Now

type sessionDoc struct {
	Id          string    `bson:"_id"`
	Payload     []byte    `bson:"payload"`
	Network     string    `bson:"network"`
	Label       string    `bson:"label"`
	CreatedAt   time.Time `bson:"createdAt"`
	ExpireAt    time.Time `bson:"expireAt"`
	LockedUntil time.Time `bson:"lockedUntil"`
}

type mongoRepo struct {
	query query.Mongo
}

// NewMongoRepo stores sessions as documents expired by a TTL index on expireAt
func NewMongoRepo(c ctx.Ctx, q query.Mongo) (registration.SessionRepo, error) {
	if err := q.EnsureTTLIndex(c, domain.TableRegistrationSessions, "expireAt", 0); err != nil {
		return nil, err
	}
	return &mongoRepo{query: q}, nil
}

func (im *mongoRepo) Put(c ctx.Ctx, id registration.SessionId, s *registration.Session, ttl time.Duration) error {
	payload, err := s.Marshal()
	if err != nil {
		return err
	}
	now := timeNow()
	doc := sessionDoc{
		Id:        id.String(),
		Payload:   payload,
		Network:   s.Network,
		Label:     s.Label,
		CreatedAt: now,
		ExpireAt:  now.Add(ttl),
	}
	if err := im.query.Insert(c, domain.TableRegistrationSessions, doc); err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"sessionId": id,
		}).Error("failed to query.Insert")
		return err
	}
	return nil
}

// Get filters on expireAt, the TTL monitor only sweeps once a minute
func (im *mongoRepo) Get(c ctx.Ctx, id registration.SessionId) (*registration.Session, error) {
	doc := sessionDoc{}
	selector := bson.M{"_id": id.String(), "expireAt": bson.M{"$gt": timeNow()}}
	err := im.query.FindOne(c, domain.TableRegistrationSessions, selector, &doc)
	if errors.Is(err, query.ErrNotFound) {
		return nil, registration.ErrSessionNotFound
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"sessionId": id,
		}).Error("failed to query.FindOne")
		return nil, err
	}
	s, err := registration.UnmarshalSession(doc.Payload)
	if err != nil {
		return nil, domain.WrapError(domain.KindSessionCorrupted, err, "session %s is unreadable", id)
	}
	return s, nil
}

func (im *mongoRepo) Delete(c ctx.Ctx, id registration.SessionId) error {
	err := im.query.Remove(c, domain.TableRegistrationSessions, bson.M{"_id": id.String()})
	if err != nil && !errors.Is(err, query.ErrNotFound) {
		c.WithFields(log.Fields{
			"err":       err,
			"sessionId": id,
		}).Error("failed to query.Remove")
		return err
	}
	return nil
}

// Acquire takes the lock only when the previous holder's lease has ended
func (im *mongoRepo) Acquire(c ctx.Ctx, id registration.SessionId, ttl time.Duration) (bool, error) {
	now := timeNow()
	selector := bson.M{
		"_id":         id.String(),
		"expireAt":    bson.M{"$gt": now},
		"lockedUntil": bson.M{"$lte": now},
	}
	update, err := lockUpdate(now.Add(ttl))
	if err != nil {
		return false, err
	}
	err = im.query.CustomPatch(c, domain.TableRegistrationSessions, selector, update, false)
	if errors.Is(err, query.ErrNotFound) {
		return false, nil
	} else if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"sessionId": id,
		}).Error("failed to query.CustomPatch")
		return false, err
	}
	return true, nil
}

func (im *mongoRepo) Release(c ctx.Ctx, id registration.SessionId) error {
	update, err := lockUpdate(time.Time{})
	if err != nil {
		return err
	}
	err = im.query.CustomPatch(c, domain.TableRegistrationSessions, bson.M{"_id": id.String()}, update, false)
	if err != nil && !errors.Is(err, query.ErrNotFound) {
		return err
	}
	return nil
}

// sessionLock is the patchable lock part of a session document
type sessionLock struct {
	LockedUntil *time.Time `bson:"lockedUntil"`
}

func lockUpdate(until time.Time) (bson.M, error) {
	patch, err := mongoclient.MakeBsonM(&sessionLock{LockedUntil: &until})
	if err != nil {
		return nil, err
	}
	return bson.M{"$set": patch}, nil
}
