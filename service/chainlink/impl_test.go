package chainlink

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/stretchr/testify/suite"
	"github.com/x-xyz/ensagent/base/abi"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/ens"
	"github.com/x-xyz/ensagent/service/chain"
)

var (
	mockCTX = ctx.Background()
)

type feedBackend struct {
	bind.ContractBackend

	answer *big.Int
	calls  int
}

func (f *feedBackend) CallContract(_ context.Context, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.calls++
	if f.answer == nil {
		return nil, errors.New("execution reverted")
	}
	return abi.ChainlinkFeedABI.Methods["latestAnswer"].Outputs.Pack(f.answer)
}

type testsuite struct {
	suite.Suite
	backend   *feedBackend
	cfg       ens.NetworkConfig
	chainlink Chainlink
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (t *testsuite) SetupTest() {
	t.cfg = ens.BuiltinNetworks[ens.NetworkMainnet]
	t.backend = &feedBackend{}
	t.chainlink = New(chain.NewClientWithBackends(map[domain.ChainId]bind.ContractBackend{
		t.cfg.ChainId: t.backend,
	}))
}

func (t *testsuite) TestEthUsdIsCached() {
	t.backend.answer = big.NewInt(250000000000)

	answer, err := t.chainlink.EthUsd(mockCTX, t.cfg)
	t.Require().NoError(err)
	t.Equal("250000000000", answer.String())

	answer, err = t.chainlink.EthUsd(mockCTX, t.cfg)
	t.Require().NoError(err)
	t.Equal("250000000000", answer.String())
	t.Equal(1, t.backend.calls)
}

func (t *testsuite) TestEthUsdWithoutFeed() {
	cfg := t.cfg
	cfg.EthUsdFeed = ""

	_, err := t.chainlink.EthUsd(mockCTX, cfg)
	t.ErrorIs(err, ErrNoPriceFeed)
	t.Equal(0, t.backend.calls)
}

func (t *testsuite) TestGetLatestAnswerReverted() {
	_, err := t.chainlink.GetLatestAnswer(mockCTX, t.cfg.ChainId, t.cfg.EthUsdFeed)
	t.Error(err)
}
