package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/x-xyz/ensagent/base/abi"
	bCtx "github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/ens"
	"github.com/x-xyz/ensagent/service/chain"
	"golang.org/x/xerrors"
)

type tokenMetadata struct {
	chainService chain.Client
}

// NewTokenMetadata reads NFT metadata pointers for avatar records
func NewTokenMetadata(chainService chain.Client) ens.TokenMetadata {
	return &tokenMetadata{chainService: chainService}
}

func (t *tokenMetadata) TokenURI(ctx bCtx.Ctx, chainId domain.ChainId, contract common.Address, tokenId *big.Int) (string, error) {
	return t.metadataUri(ctx, chainId, contract, "tokenURI", tokenId)
}

// URI is the ERC1155 uri template of id, it may carry an {id} placeholder
func (t *tokenMetadata) URI(ctx bCtx.Ctx, chainId domain.ChainId, contract common.Address, tokenId *big.Int) (string, error) {
	return t.metadataUri(ctx, chainId, contract, "uri", tokenId)
}

func (t *tokenMetadata) metadataUri(ctx bCtx.Ctx, chainId domain.ChainId, contract common.Address, method string, tokenId *big.Int) (string, error) {
	unpacked, err := t.chainService.Call(ctx, chainId, contract, nil, baseabi.NftMetadataABI, method, tokenId)
	if err != nil {
		return "", err
	}
	uri, ok := unpacked[0].(string)
	if !ok {
		return "", xerrors.Errorf("unexpected %s type %T", method, unpacked[0])
	}
	return uri, nil
}
