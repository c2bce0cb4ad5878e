package chainlink

import (
	"math/big"
	"strconv"
	"time"

	"github.com/x-xyz/ensagent/base/abi"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/log"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/ens"
	"github.com/x-xyz/ensagent/domain/keys"
	"github.com/x-xyz/ensagent/service/cache"
	"github.com/x-xyz/ensagent/service/cache/provider/primitive"
	"github.com/x-xyz/ensagent/service/chain"
	"golang.org/x/xerrors"
)

const answerTtl = time.Minute

type impl struct {
	chainClient chain.Client
	cache       cache.Service
}

func New(chainClient chain.Client) Chainlink {
	return &impl{
		chainClient: chainClient,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   answerTtl,
			Pfx:   keys.PfxPriceFeed,
			Cache: primitive.NewPrimitive(keys.PfxPriceFeed, 1),
		}),
	}
}

func (im *impl) EthUsd(c ctx.Ctx, cfg ens.NetworkConfig) (*big.Int, error) {
	if cfg.EthUsdFeed.IsEmpty() {
		return nil, ErrNoPriceFeed
	}
	return im.GetLatestAnswer(c, cfg.ChainId, cfg.EthUsdFeed)
}

func (im *impl) GetLatestAnswer(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (*big.Int, error) {
	var res big.Int

	key := keys.RedisKey(strconv.Itoa(int(chainId)), address.ToLowerStr(), "latest")

	if err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		return im.getLatestAnswer(c, chainId, address)
	}); err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"address": address,
		}).Error("cache.GetByFunc failed")
		return nil, err
	}

	return &res, nil
}

func (im *impl) getLatestAnswer(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (*big.Int, error) {
	feedAddr := address.Common()

	res, err := im.chainClient.Call(c, chainId, feedAddr, nil, abi.ChainlinkFeedABI, "latestAnswer")
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
			"address": address,
		}).Error("chainClient.Call failed")
		return nil, err
	}
	answer, ok := res[0].(*big.Int)
	if !ok {
		return nil, xerrors.Errorf("unexpected latestAnswer type %T", res[0])
	}
	return answer, nil
}
