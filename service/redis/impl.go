package redis

import (
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/metrics"
	"github.com/x-xyz/ensagent/domain/keys"
)

const (
	// TTL replies for a missing key and a key without expire
	retTTLNoKey    = -2
	retTTLNoExpire = -1
)

var delBatchSize = 100

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// New wraps pools, name tags every metric as the cluster
func New(name string, metrics metrics.Service, pools *Pools) Service {
	return &redImpl{
		name:  name,
		met:   metrics,
		pools: pools,
	}
}

func (r *redImpl) tags(fn, key string) []string {
	return []string{"func", fn, "cluster", r.name, "prefix", keys.GetPrefix(key)}
}

// do runs one command on a pooled conn, cancelled with context
func (r *redImpl) do(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	if r.pools == nil || r.pools.Src == nil {
		return nil, ErrGapTime
	}
	timer := r.met.BumpTime("getconn.time", "cluster", r.name)
	conn, err := r.pools.Src.GetContext(context)
	timer.End()
	if err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name)
		return nil, err
	}

	reply, err := redis.DoContext(conn, context, commandName, args...)
	// returned to the pool before the reply is decoded
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) bumpTtl(expire time.Duration, tags []string) {
	if expire == Forever {
		r.met.BumpSum("ttl.forever", 1, tags...)
	} else {
		r.met.BumpAvg("ttl", expire.Seconds(), tags...)
	}
}

// setArgs appends the expiry of a SET, Forever sets none
func setArgs(expire time.Duration, args ...interface{}) []interface{} {
	if expire == Forever {
		return args
	}
	return append(args, "PX", int64(expire/time.Millisecond))
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	tags := r.tags("get", key)
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.Bytes(r.do(context, "GET", key))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			context.WithField("err", err).Error("GET redis failed")
		}
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	return val, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	tags := r.tags("set", key)
	defer r.met.BumpTime("time", tags...).End()
	r.bumpTtl(expire, tags)
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	if _, err := r.do(context, "SET", setArgs(expire, key, val)...); err != nil {
		context.WithField("err", err).Error("SET redis failed")
		return err
	}
	return nil
}

func (r *redImpl) SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) (bool, error) {
	tags := r.tags("setnx", key)
	defer r.met.BumpTime("time", tags...).End()
	r.bumpTtl(expire, tags)

	_, err := redis.String(r.do(context, "SET", setArgs(expire, key, val, "NX")...))
	// a nil reply means the key already exists
	if errors.Is(err, ErrNotFound) {
		return false, nil
	} else if err != nil {
		context.WithField("err", err).Error("SET NX redis failed")
		return false, err
	}
	return true, nil
}

func (r *redImpl) Del(context ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, fmt.Errorf("length of keys is 0")
	}
	tags := r.tags("del", ks[0])
	defer r.met.BumpTime("time", tags...).End()
	r.met.BumpHistogram("elements", float64(len(ks)), tags...)

	affected := 0
	for i := 0; i < len(ks); i += delBatchSize {
		end := i + delBatchSize
		if end > len(ks) {
			end = len(ks)
		}
		res, err := redis.Int(r.do(context, "DEL", redis.Args{}.AddFlat(ks[i:end])...))
		if err != nil {
			context.WithField("err", err).Error("DEL redis failed")
			return 0, err
		}
		affected += res
	}
	return affected, nil
}

func (r *redImpl) TTL(context ctx.Ctx, key string) (int, error) {
	defer r.met.BumpTime("time", r.tags("ttl", key)...).End()

	res, err := redis.Int(r.do(context, "TTL", key))
	if err != nil {
		context.WithField("err", err).Error("TTL redis failed")
		return 0, err
	}
	switch res {
	case retTTLNoKey:
		return res, ErrNotFound
	case retTTLNoExpire:
		return res, ErrNoTTL
	}
	return res, nil
}
