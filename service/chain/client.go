package chain

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"
	bCtx "github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/log"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/ens"
	"golang.org/x/xerrors"
)

var ErrUnsupportedChain = errors.New("unsupported chain")

type ClientCfg struct {
	RpcUrls map[domain.ChainId]string
}

// Client is the node access of every configured chain, built once and shared
type Client interface {
	ens.ChainReader

	Call(bCtx.Ctx, domain.ChainId, common.Address, *big.Int, abi.ABI, string, ...interface{}) ([]interface{}, error)
	CallMsg(bCtx.Ctx, domain.ChainId, ethereum.CallMsg) ([]byte, error)
	HeaderByNumber(bCtx.Ctx, domain.ChainId, *big.Int) (*types.Header, error)
	// Backend is the raw contract backend, used by go-ens
	Backend(domain.ChainId) (bind.ContractBackend, error)
}

type clientImpl struct {
	clients map[domain.ChainId]bind.ContractBackend
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	clients := make(map[domain.ChainId]bind.ContractBackend)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			anyerr = err
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = client
	}
	return &clientImpl{
		clients: clients,
	}, anyerr
}

// NewClientWithBackends wraps already constructed backends
func NewClientWithBackends(backends map[domain.ChainId]bind.ContractBackend) Client {
	return &clientImpl{clients: backends}
}

func (c *clientImpl) backend(chainId domain.ChainId) (bind.ContractBackend, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, ErrUnsupportedChain
	}
	return client, nil
}

func (c *clientImpl) Backend(chainId domain.ChainId) (bind.ContractBackend, error) {
	return c.backend(chainId)
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, err := c.backend(chainId)
	if err != nil {
		return nil, err
	}

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
			"to":     addr.Hex(),
		}).Error("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
		}).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) CallMsg(ctx bCtx.Ctx, chainId domain.ChainId, msg ethereum.CallMsg) ([]byte, error) {
	client, err := c.backend(chainId)
	if err != nil {
		return nil, err
	}
	return client.CallContract(ctx, msg, nil)
}

func (c *clientImpl) HeaderByNumber(ctx bCtx.Ctx, chainId domain.ChainId, number *big.Int) (*types.Header, error) {
	client, err := c.backend(chainId)
	if err != nil {
		return nil, err
	}
	header, err := client.HeaderByNumber(ctx, number)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
		}).Error("client.HeaderByNumber failed")
		return nil, err
	}
	return header, nil
}

func (c *clientImpl) LatestTimestamp(ctx bCtx.Ctx, chainId domain.ChainId) (uint64, error) {
	header, err := c.HeaderByNumber(ctx, chainId, nil)
	if err != nil {
		return 0, err
	}
	return header.Time, nil
}

func (c *clientImpl) Simulate(ctx bCtx.Ctx, chainId domain.ChainId, from common.Address, tx *ens.UnsignedTx) error {
	value, ok := new(big.Int).SetString(tx.Value, 10)
	if !ok {
		return xerrors.Errorf("invalid tx value %q", tx.Value)
	}
	to := tx.To
	msg := ethereum.CallMsg{
		From:  from,
		To:    &to,
		Value: value,
		Data:  tx.Data,
	}
	if _, err := c.CallMsg(ctx, chainId, msg); err != nil {
		if simErr := toSimulationError(err); simErr != nil {
			return simErr
		}
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": chainId,
		}).Error("simulation call failed")
		return err
	}
	return nil
}

// toSimulationError returns nil when err is not a contract revert
func toSimulationError(err error) *ens.SimulationError {
	var revertData []byte
	var dataErr rpc.DataError
	if errors.As(err, &dataErr) {
		if s, ok := dataErr.ErrorData().(string); ok {
			if b, decErr := hexutil.Decode(s); decErr == nil {
				revertData = b
			}
		}
	} else if !strings.Contains(err.Error(), "revert") {
		return nil
	}

	simErr := &ens.SimulationError{RevertData: revertData, Err: err}
	if reason, unpackErr := abi.UnpackRevert(revertData); unpackErr == nil {
		simErr.Reason = reason
	}
	return simErr
}
