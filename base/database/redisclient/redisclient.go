// Package redisclient dials a redigo pool and checks it before handing it out
package redisclient

import (
	"runtime"
	"strings"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/ensagent/base/backoff"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond

	retryStart = time.Second
	retryLimit = 5 * time.Second
)

type Config struct {
	// URI is either host:port or redis://[:password@]host:port[/db]
	URI            string  `mapstructure:"uri"`
	Password       string  `mapstructure:"password"`
	PoolMultiplier float64 `mapstructure:"poolMultiplier"`
	// Retries is how many extra dials are tried before giving up
	Retries int `mapstructure:"retries"`
}

func (cfg Config) poolSize() (maxIdle, maxActive int) {
	if cfg.PoolMultiplier <= 0 {
		return 200, 1024
	}
	cpu := float64(runtime.NumCPU())
	maxActive = int(cpu * cfg.PoolMultiplier)
	if maxActive < 4 {
		maxActive = 4
	}
	// allowing 25% idle connection
	return maxActive / 4, maxActive
}

func (cfg Config) dial() (redis.Conn, error) {
	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if cfg.Password != "" {
		opts = append(opts, redis.DialPassword(cfg.Password))
	}
	if strings.HasPrefix(cfg.URI, "redis://") || strings.HasPrefix(cfg.URI, "rediss://") {
		return redis.DialURL(cfg.URI, opts...)
	}
	return redis.Dial("tcp", cfg.URI, opts...)
}

func testOnBorrow(c redis.Conn, t time.Time) error {
	// recycled less than 1 sec ago
	if time.Since(t) < time.Second {
		return nil
	}
	_, err := c.Do("PING")
	return err
}

// Connect returns a pool once one connection has answered PING
func Connect(c ctx.Ctx, cfg Config) (*redis.Pool, error) {
	maxIdle, maxActive := cfg.poolSize()
	p := &redis.Pool{
		MaxIdle:      maxIdle,
		MaxActive:    maxActive,
		Wait:         true,
		IdleTimeout:  240 * time.Second,
		Dial:         cfg.dial,
		TestOnBorrow: testOnBorrow,
	}

	attempt := 0
	b := backoff.NewLinear(retryStart, retryLimit)
	b.NextDuration = retryStart
	var dialErr error
	err := b.Poll(c, func() (bool, time.Duration, error) {
		conn, err := p.Dial()
		if err == nil {
			_, err = conn.Do("PING")
			conn.Close()
		}
		if err == nil {
			return true, 0, nil
		}
		dialErr = err
		c.WithFields(log.Fields{
			"redisURI": cfg.URI,
			"err":      err,
			"attempt":  attempt,
		}).Warn("fail to dial redis")
		if attempt >= cfg.Retries {
			return false, 0, err
		}
		attempt++
		return false, 0, nil
	})
	if err != nil {
		if dialErr != nil {
			err = dialErr
		}
		c.WithFields(log.Fields{"redisURI": cfg.URI, "err": err}).Error("fail to dial redis")
		return nil, err
	}

	c.WithField("redisURI", cfg.URI).Info("redis connected")
	return p, nil
}
