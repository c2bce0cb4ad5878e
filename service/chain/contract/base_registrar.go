package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/x-xyz/ensagent/base/abi"
	bCtx "github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain/ens"
	"github.com/x-xyz/ensagent/service/chain"
)

// BaseRegistrar is the ERC721 registrar holding .eth second level names
type BaseRegistrar struct {
	chainService chain.Client
}

func NewBaseRegistrar(chainService chain.Client) *BaseRegistrar {
	return &BaseRegistrar{chainService: chainService}
}

func (b *BaseRegistrar) OwnerOf(ctx bCtx.Ctx, cfg ens.NetworkConfig, tokenId *big.Int) (common.Address, error) {
	addr := cfg.BaseRegistrar.Common()
	unpacked, err := b.chainService.Call(ctx, cfg.ChainId, addr, nil, baseabi.BaseRegistrarABI, "ownerOf", tokenId)
	if err != nil {
		return common.Address{}, err
	}
	return unpacked[0].(common.Address), nil
}

func (b *BaseRegistrar) NameExpires(ctx bCtx.Ctx, cfg ens.NetworkConfig, tokenId *big.Int) (*big.Int, error) {
	addr := cfg.BaseRegistrar.Common()
	unpacked, err := b.chainService.Call(ctx, cfg.ChainId, addr, nil, baseabi.BaseRegistrarABI, "nameExpires", tokenId)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}
