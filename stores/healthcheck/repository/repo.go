package repository

import (
	"time"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/database/mongoclient"
	"github.com/x-xyz/ensagent/base/log"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/ens"
	hcdomain "github.com/x-xyz/ensagent/domain/healthcheck"
	"github.com/x-xyz/ensagent/domain/keys"
	"github.com/x-xyz/ensagent/service/redis"
)

const pingTimeout = 2 * time.Second

// TimestampReader is the part of the chain client the health check needs
type TimestampReader interface {
	LatestTimestamp(c ctx.Ctx, chainId domain.ChainId) (uint64, error)
}

type impl struct {
	mgoClient  *mongoclient.Client
	redisCache redis.Service
	chain      TimestampReader
}

// New creates the health check repo, mgoClient and redisCache are optional
func New(
	mgoClient *mongoclient.Client,
	redisCache redis.Service,
	chain TimestampReader,
) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient:  mgoClient,
		redisCache: redisCache,
		chain:      chain,
	}
}

func (im *impl) PingDB(context ctx.Ctx) map[string]error {
	res := map[string]error{}
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()

	if im.mgoClient != nil {
		err := im.mgoClient.Ping(ctx)
		if err != nil {
			context.WithField("err", err).Error("ping mongo error")
		}
		res["mongo"] = err
	}

	if im.redisCache != nil {
		err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second)
		if err != nil {
			context.WithField("err", err).Error("test redis set failed")
		}
		res["redis"] = err
	}
	return res
}

func (im *impl) PingChain(context ctx.Ctx, cfg ens.NetworkConfig) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if _, err := im.chain.LatestTimestamp(ctx, cfg.ChainId); err != nil {
		context.WithFields(log.Fields{
			"err":     err,
			"network": cfg.Name,
		}).Error("ping chain error")
		return err
	}
	return nil
}
