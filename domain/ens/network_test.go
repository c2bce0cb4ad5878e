package ens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/ensagent/domain"
)

func TestNetworksGet(t *testing.T) {
	n := DefaultNetworks()

	cfg, err := n.Get("")
	require.NoError(t, err)
	assert.Equal(t, NetworkSepolia, cfg.Name)

	cfg, err = n.Get("MAINNET")
	require.NoError(t, err)
	assert.Equal(t, domain.ChainId(1), cfg.ChainId)
	assert.Equal(t, LayoutPositional, cfg.Layout)

	_, err = n.Get("goerli")
	require.Error(t, err)
	assert.Equal(t, domain.KindUnsupportedNetwork, domain.KindOf(err))
	assert.Contains(t, err.Error(), "mainnet, sepolia")
}

func TestDefaultNetworksIsCopy(t *testing.T) {
	n := DefaultNetworks()
	delete(n, NetworkMainnet)
	assert.Contains(t, BuiltinNetworks, NetworkMainnet)
	assert.Equal(t, []string{NetworkSepolia}, n.Names())
}

func TestMerge(t *testing.T) {
	merged := Merge(NetworkConfig{Name: NetworkSepolia, RpcUrl: "https://rpc.example"})
	assert.Equal(t, "https://rpc.example", merged.RpcUrl)
	assert.Equal(t, domain.ChainId(11155111), merged.ChainId)
	assert.Equal(t, BuiltinNetworks[NetworkSepolia].RegistrarController, merged.RegistrarController)
	assert.Equal(t, LayoutStruct, merged.Layout)

	override := Merge(NetworkConfig{Name: NetworkMainnet, Resolver: "0x00000000000000000000000000000000000000ff"})
	assert.Equal(t, domain.Address("0x00000000000000000000000000000000000000ff"), override.Resolver)
	assert.Equal(t, LayoutPositional, override.Layout)

	custom := Merge(NetworkConfig{Name: "holesky", ChainId: 17000})
	assert.Equal(t, LayoutStruct, custom.Layout)
	assert.True(t, custom.RegistrarController.IsEmpty())
}
