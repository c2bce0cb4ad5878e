package ens

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain"
)

// RegistrarController reads the .eth registrar controller of a network
type RegistrarController interface {
	Available(c ctx.Ctx, cfg NetworkConfig, label string) (bool, error)
	RentPrice(c ctx.Ctx, cfg NetworkConfig, label string, duration *big.Int) (base *big.Int, premium *big.Int, err error)
	MinCommitmentAge(c ctx.Ctx, cfg NetworkConfig) (*big.Int, error)
	MaxCommitmentAge(c ctx.Ctx, cfg NetworkConfig) (*big.Int, error)
	// Commitments is the block timestamp a commitment was submitted at, zero when unknown
	Commitments(c ctx.Ctx, cfg NetworkConfig, commitment common.Hash) (*big.Int, error)
	MakeCommitment(c ctx.Ctx, cfg NetworkConfig, r Registration) (common.Hash, error)
}

type BaseRegistrar interface {
	OwnerOf(c ctx.Ctx, cfg NetworkConfig, tokenId *big.Int) (common.Address, error)
	NameExpires(c ctx.Ctx, cfg NetworkConfig, tokenId *big.Int) (*big.Int, error)
}

// ChainReader is the per network node access the registration flow relies on
type ChainReader interface {
	// LatestTimestamp is the timestamp of the latest block header
	LatestTimestamp(c ctx.Ctx, chainId domain.ChainId) (uint64, error)
	// Simulate runs tx through eth_call from sender, a revert is returned as *SimulationError
	Simulate(c ctx.Ctx, chainId domain.ChainId, from common.Address, tx *UnsignedTx) error
}

// PriceFeed reads the ETH/USD answer of a network's price feed, scaled by EthUsdDecimals
type PriceFeed interface {
	EthUsd(c ctx.Ctx, cfg NetworkConfig) (*big.Int, error)
}

// SimulationError carries the revert of a simulated transaction
type SimulationError struct {
	Reason     string
	RevertData []byte
	Err        error
}

func (e *SimulationError) Error() string {
	if e.Reason != "" {
		return "execution reverted: " + e.Reason
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "execution reverted"
}

func (e *SimulationError) Unwrap() error {
	return e.Err
}

// ErrNoResolver is returned by record reads of a name without a resolver
var ErrNoResolver = domain.NewError(domain.KindNotRegistered, "name is not registered or has no resolver")

// Resolver reads resolution records through the ENS registry of a network
type Resolver interface {
	// ResolverOf returns the resolver of name, the zero address when unset
	ResolverOf(c ctx.Ctx, cfg NetworkConfig, name string) (common.Address, error)
	Address(c ctx.Ctx, cfg NetworkConfig, name string) (common.Address, error)
	Text(c ctx.Ctx, cfg NetworkConfig, name, key string) (string, error)
	Contenthash(c ctx.Ctx, cfg NetworkConfig, name string) ([]byte, error)
	// PrimaryName is the reverse record of addr, empty when none is set
	PrimaryName(c ctx.Ctx, cfg NetworkConfig, addr common.Address) (string, error)
}
