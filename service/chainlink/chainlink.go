package chainlink

import (
	"math/big"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/ens"
)

// ErrNoPriceFeed is returned for a network without a configured feed
var ErrNoPriceFeed = domain.NewError(domain.KindInternal, "no price feed for network")

type Chainlink interface {
	ens.PriceFeed

	GetLatestAnswer(c ctx.Ctx, chainId domain.ChainId, feedAddress domain.Address) (*big.Int, error)
}
