package contract

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	bCtx "github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain/ens"
	"github.com/x-xyz/ensagent/service/chain"
	"golang.org/x/xerrors"
)

type RegistrarController struct {
	chainService chain.Client
}

func NewRegistrarController(chainService chain.Client) *RegistrarController {
	return &RegistrarController{chainService: chainService}
}

func (r *RegistrarController) call(ctx bCtx.Ctx, cfg ens.NetworkConfig, method string, params ...interface{}) ([]interface{}, error) {
	addr := cfg.RegistrarController.Common()
	unpacked, err := r.chainService.Call(ctx, cfg.ChainId, addr, nil, ens.ControllerABI(cfg.Layout), method, params...)
	if err != nil {
		return nil, xerrors.Errorf("controller.%s on %s: %w", method, cfg.Name, err)
	}
	return unpacked, nil
}

func (r *RegistrarController) Available(ctx bCtx.Ctx, cfg ens.NetworkConfig, label string) (bool, error) {
	unpacked, err := r.call(ctx, cfg, "available", label)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (r *RegistrarController) RentPrice(ctx bCtx.Ctx, cfg ens.NetworkConfig, label string, duration *big.Int) (*big.Int, *big.Int, error) {
	unpacked, err := r.call(ctx, cfg, "rentPrice", label, duration)
	if err != nil {
		return nil, nil, err
	}
	return unpacked[0].(*big.Int), unpacked[1].(*big.Int), nil
}

func (r *RegistrarController) MinCommitmentAge(ctx bCtx.Ctx, cfg ens.NetworkConfig) (*big.Int, error) {
	unpacked, err := r.call(ctx, cfg, "minCommitmentAge")
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (r *RegistrarController) MaxCommitmentAge(ctx bCtx.Ctx, cfg ens.NetworkConfig) (*big.Int, error) {
	unpacked, err := r.call(ctx, cfg, "maxCommitmentAge")
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (r *RegistrarController) Commitments(ctx bCtx.Ctx, cfg ens.NetworkConfig, commitment common.Hash) (*big.Int, error) {
	unpacked, err := r.call(ctx, cfg, "commitments", [32]byte(commitment))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (r *RegistrarController) MakeCommitment(ctx bCtx.Ctx, cfg ens.NetworkConfig, reg ens.Registration) (common.Hash, error) {
	unpacked, err := r.call(ctx, cfg, "makeCommitment", ens.MakeCommitmentArgs(cfg.Layout, reg)...)
	if err != nil {
		return common.Hash{}, err
	}
	return common.Hash(unpacked[0].([32]byte)), nil
}
