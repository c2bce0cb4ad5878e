package ens

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	baseabi "github.com/x-xyz/ensagent/base/abi"
	"github.com/x-xyz/ensagent/domain"
)

func TestBuildCommitTx(t *testing.T) {
	cfg := BuiltinNetworks[NetworkSepolia]
	commitment := common.HexToHash("0x01")

	tx, err := BuildCommitTx(cfg, commitment)
	require.NoError(t, err)
	assert.Equal(t, "0xf14fcbc8", hexutil.Encode(tx.Data[:4]))
	assert.Equal(t, commitment.Bytes(), []byte(tx.Data[4:]))
	assert.Equal(t, common.HexToAddress(string(cfg.RegistrarController)), tx.To)
	assert.Equal(t, "0", tx.Value)
	assert.Equal(t, cfg.ChainId, tx.ChainId)
}

func TestRegisterCalldataPositional(t *testing.T) {
	cfg := BuiltinNetworks[NetworkMainnet]
	r := testRegistration()

	tx, err := BuildRegisterTx(cfg, r, big.NewInt(42))
	require.NoError(t, err)
	assert.Equal(t, "42", tx.Value)

	method := ControllerABI(LayoutPositional).Methods["register"]
	assert.Equal(t, method.ID, []byte(tx.Data[:4]))
	out, err := method.Inputs.Unpack(tx.Data[4:])
	require.NoError(t, err)
	require.Len(t, out, 8)
	assert.Equal(t, "alice", out[0])
	assert.Equal(t, testOwner, out[1])
	assert.Equal(t, testResolver, out[4])
	assert.Equal(t, true, out[6])
	assert.Equal(t, uint16(0), out[7])
}

func TestRegisterCalldataStruct(t *testing.T) {
	cfg := BuiltinNetworks[NetworkSepolia]
	r := testRegistration()
	r.Data = [][]byte{{0xde, 0xad}}

	data, err := RegisterCalldata(cfg, r)
	require.NoError(t, err)

	method := ControllerABI(LayoutStruct).Methods["register"]
	assert.Equal(t, method.ID, data[:4])
	got := unpackRegistrationTuple(t, method, data)
	assert.Equal(t, "alice", got.Label)
	assert.Equal(t, testOwner, got.Owner)
	assert.Equal(t, int64(SecondsPerYear), got.Duration.Int64())
	assert.Equal(t, uint8(1), got.ReverseRecord)
	assert.Equal(t, [][]byte{{0xde, 0xad}}, got.Data)
	assert.Equal(t, [32]byte{}, got.Referrer)
}

func TestRegisterCalldataRejectsInvalid(t *testing.T) {
	_, err := RegisterCalldata(BuiltinNetworks[NetworkSepolia], Registration{Label: "alice"})
	assert.Error(t, err)
}

func TestBuildRenewTx(t *testing.T) {
	duration := big.NewInt(SecondsPerYear)

	tx, err := BuildRenewTx(BuiltinNetworks[NetworkMainnet], "alice", duration, big.NewInt(7))
	require.NoError(t, err)
	method := ControllerABI(LayoutPositional).Methods["renew"]
	assert.Equal(t, method.ID, []byte(tx.Data[:4]))
	out, err := method.Inputs.Unpack(tx.Data[4:])
	require.NoError(t, err)
	assert.Equal(t, "alice", out[0])
	assert.Equal(t, "7", tx.Value)

	tx, err = BuildRenewTx(BuiltinNetworks[NetworkSepolia], "alice", duration, big.NewInt(7))
	require.NoError(t, err)
	method = ControllerABI(LayoutStruct).Methods["renew"]
	assert.Equal(t, method.ID, []byte(tx.Data[:4]))
	out, err = method.Inputs.Unpack(tx.Data[4:])
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, [32]byte{}, out[2])
}

func TestBuildTransferTx(t *testing.T) {
	cfg := BuiltinNetworks[NetworkSepolia]
	from := common.HexToAddress("0x01")
	to := common.HexToAddress("0x02")
	tokenId, err := TokenId("alice")
	require.NoError(t, err)

	tx, err := BuildTransferTx(cfg, from, to, tokenId)
	require.NoError(t, err)
	assert.Equal(t, "0x42842e0e", hexutil.Encode(tx.Data[:4]))
	assert.Equal(t, common.HexToAddress(string(cfg.BaseRegistrar)), tx.To)

	out, err := baseabi.BaseRegistrarABI.Methods["safeTransferFrom"].Inputs.Unpack(tx.Data[4:])
	require.NoError(t, err)
	assert.Equal(t, from, out[0])
	assert.Equal(t, to, out[1])
	assert.Equal(t, 0, tokenId.Cmp(out[2].(*big.Int)))
}

func TestBuildSetNameForAddrTx(t *testing.T) {
	cfg := BuiltinNetworks[NetworkSepolia]
	addr := common.HexToAddress("0x01")

	tx, err := BuildSetNameForAddrTx(cfg, addr, addr, "alice.eth")
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(string(cfg.ReverseRegistrar)), tx.To)

	out, err := baseabi.ReverseRegistrarABI.Methods["setNameForAddr"].Inputs.Unpack(tx.Data[4:])
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(string(cfg.Resolver)), out[2])
	assert.Equal(t, "alice.eth", out[3])
}

func TestResolverCalldata(t *testing.T) {
	node, err := NameHash("alice.eth")
	require.NoError(t, err)

	data, err := SetAddrCalldata(node, testOwner)
	require.NoError(t, err)
	assert.Equal(t, "0xd5fa2b00", hexutil.Encode(data[:4]))

	data, err = SetTextCalldata(node, "url", "https://example.com")
	require.NoError(t, err)
	assert.Equal(t, "0x10f13a8c", hexutil.Encode(data[:4]))
	out, err := baseabi.PublicResolverABI.Methods["setText"].Inputs.Unpack(data[4:])
	require.NoError(t, err)
	assert.Equal(t, [32]byte(node), out[0])
	assert.Equal(t, "url", out[1])
}

func TestBuildResolverTx(t *testing.T) {
	cfg := BuiltinNetworks[NetworkSepolia]
	resolver := common.HexToAddress(string(cfg.Resolver))
	node, err := NameHash("alice.eth")
	require.NoError(t, err)

	_, err = BuildResolverTx(cfg, resolver, nil)
	assert.ErrorIs(t, err, domain.ErrMissingParam)

	text, err := SetTextCalldata(node, "url", "https://example.com")
	require.NoError(t, err)
	tx, err := BuildResolverTx(cfg, resolver, [][]byte{text})
	require.NoError(t, err)
	assert.Equal(t, resolver, tx.To)
	assert.Equal(t, hexutil.Bytes(text), tx.Data)
	assert.Equal(t, "0", tx.Value)

	addr, err := SetAddrCalldata(node, testOwner)
	require.NoError(t, err)
	tx, err = BuildResolverTx(cfg, resolver, [][]byte{text, addr})
	require.NoError(t, err)
	multicall := baseabi.PublicResolverABI.Methods["multicall"]
	assert.Equal(t, multicall.ID, []byte(tx.Data[:4]))
	out, err := multicall.Inputs.Unpack(tx.Data[4:])
	require.NoError(t, err)
	assert.Equal(t, [][]byte{text, addr}, out[0])
}

func TestBuildSetAddrTx(t *testing.T) {
	cfg := BuiltinNetworks[NetworkMainnet]
	resolver := common.HexToAddress(string(cfg.Resolver))
	node, err := NameHash("alice.eth")
	require.NoError(t, err)

	tx, err := BuildSetAddrTx(cfg, resolver, node, testOwner)
	require.NoError(t, err)
	assert.Equal(t, resolver, tx.To)
	assert.Equal(t, domain.ChainMainnet, tx.ChainId)
	assert.Equal(t, "0xd5fa2b00", hexutil.Encode(tx.Data[:4]))
}

func TestBuildSubnodeRecordTx(t *testing.T) {
	cfg := BuiltinNetworks[NetworkSepolia]
	resolver := common.HexToAddress(string(cfg.Resolver))
	parent, err := NameHash("alice.eth")
	require.NoError(t, err)
	label, err := LabelHash("team")
	require.NoError(t, err)

	tx, err := BuildSubnodeRecordTx(cfg, parent, label, testOwner, resolver)
	require.NoError(t, err)
	assert.Equal(t, common.HexToAddress(string(cfg.Registry)), tx.To)

	out, err := baseabi.ENSRegistryABI.Methods["setSubnodeRecord"].Inputs.Unpack(tx.Data[4:])
	require.NoError(t, err)
	assert.Equal(t, [32]byte(parent), out[0])
	assert.Equal(t, [32]byte(label), out[1])
	assert.Equal(t, testOwner, out[2])
	assert.Equal(t, resolver, out[3])
	assert.Equal(t, uint64(0), out[4])
}
