package ens

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	baseabi "github.com/x-xyz/ensagent/base/abi"
	"github.com/x-xyz/ensagent/domain"
	"golang.org/x/xerrors"
)

// UnsignedTx is a transaction for the caller's wallet to sign and send
type UnsignedTx struct {
	To      common.Address `json:"to"`
	Data    hexutil.Bytes  `json:"data"`
	Value   string         `json:"value"`
	ChainId domain.ChainId `json:"chainId"`
}

func newTx(cfg NetworkConfig, to domain.Address, data []byte, value *big.Int) *UnsignedTx {
	if value == nil {
		value = big.NewInt(0)
	}
	return &UnsignedTx{
		To:      to.Common(),
		Data:    data,
		Value:   value.String(),
		ChainId: cfg.ChainId,
	}
}

func BuildCommitTx(cfg NetworkConfig, commitment common.Hash) (*UnsignedTx, error) {
	data, err := ControllerABI(cfg.Layout).Pack("commit", [32]byte(commitment))
	if err != nil {
		return nil, xerrors.Errorf("failed to pack commit: %w", err)
	}
	return newTx(cfg, cfg.RegistrarController, data, nil), nil
}

// RegisterCalldata is the register call for the network's controller layout
func RegisterCalldata(cfg NetworkConfig, r Registration) ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	args := MakeCommitmentArgs(cfg.Layout, r)
	data, err := ControllerABI(cfg.Layout).Pack("register", args...)
	if err != nil {
		return nil, xerrors.Errorf("failed to pack register: %w", err)
	}
	return data, nil
}

func BuildRegisterTx(cfg NetworkConfig, r Registration, value *big.Int) (*UnsignedTx, error) {
	data, err := RegisterCalldata(cfg, r)
	if err != nil {
		return nil, err
	}
	return newTx(cfg, cfg.RegistrarController, data, value), nil
}

func BuildRenewTx(cfg NetworkConfig, label string, duration *big.Int, value *big.Int) (*UnsignedTx, error) {
	var (
		data []byte
		err  error
	)
	if cfg.Layout == LayoutStruct {
		data, err = ControllerABI(cfg.Layout).Pack("renew", label, duration, [32]byte{})
	} else {
		data, err = ControllerABI(cfg.Layout).Pack("renew", label, duration)
	}
	if err != nil {
		return nil, xerrors.Errorf("failed to pack renew: %w", err)
	}
	return newTx(cfg, cfg.RegistrarController, data, value), nil
}

func BuildTransferTx(cfg NetworkConfig, from, to common.Address, tokenId *big.Int) (*UnsignedTx, error) {
	data, err := baseabi.BaseRegistrarABI.Pack("safeTransferFrom", from, to, tokenId)
	if err != nil {
		return nil, xerrors.Errorf("failed to pack safeTransferFrom: %w", err)
	}
	return newTx(cfg, cfg.BaseRegistrar, data, nil), nil
}

func BuildSetNameForAddrTx(cfg NetworkConfig, addr, owner common.Address, name string) (*UnsignedTx, error) {
	resolver := cfg.Resolver.Common()
	data, err := baseabi.ReverseRegistrarABI.Pack("setNameForAddr", addr, owner, resolver, name)
	if err != nil {
		return nil, xerrors.Errorf("failed to pack setNameForAddr: %w", err)
	}
	return newTx(cfg, cfg.ReverseRegistrar, data, nil), nil
}

// SetAddrCalldata is resolver calldata setting the ETH address of node
func SetAddrCalldata(node common.Hash, addr common.Address) ([]byte, error) {
	data, err := baseabi.PublicResolverABI.Pack("setAddr", [32]byte(node), addr)
	if err != nil {
		return nil, xerrors.Errorf("failed to pack setAddr: %w", err)
	}
	return data, nil
}

// SetTextCalldata is resolver calldata setting a text record of node
func SetTextCalldata(node common.Hash, key, value string) ([]byte, error) {
	data, err := baseabi.PublicResolverABI.Pack("setText", [32]byte(node), key, value)
	if err != nil {
		return nil, xerrors.Errorf("failed to pack setText: %w", err)
	}
	return data, nil
}

// BuildResolverTx sends a single resolver call as is and wraps several in multicall
func BuildResolverTx(cfg NetworkConfig, resolver common.Address, calls [][]byte) (*UnsignedTx, error) {
	switch len(calls) {
	case 0:
		return nil, domain.NewError(domain.KindMissingParam, "no resolver calls to send")
	case 1:
		return newTx(cfg, domain.Address(resolver.Hex()), calls[0], nil), nil
	}
	data, err := baseabi.PublicResolverABI.Pack("multicall", calls)
	if err != nil {
		return nil, xerrors.Errorf("failed to pack multicall: %w", err)
	}
	return newTx(cfg, domain.Address(resolver.Hex()), data, nil), nil
}

func BuildSetAddrTx(cfg NetworkConfig, resolver common.Address, node common.Hash, addr common.Address) (*UnsignedTx, error) {
	data, err := SetAddrCalldata(node, addr)
	if err != nil {
		return nil, err
	}
	return BuildResolverTx(cfg, resolver, [][]byte{data})
}

// BuildSubnodeRecordTx creates or takes over parent's child label on the registry, with no ttl
func BuildSubnodeRecordTx(cfg NetworkConfig, parentNode, labelHash common.Hash, owner, resolver common.Address) (*UnsignedTx, error) {
	data, err := baseabi.ENSRegistryABI.Pack("setSubnodeRecord", [32]byte(parentNode), [32]byte(labelHash), owner, resolver, uint64(0))
	if err != nil {
		return nil, xerrors.Errorf("failed to pack setSubnodeRecord: %w", err)
	}
	return newTx(cfg, cfg.Registry, data, nil), nil
}
