package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surreal-look0e/Base-Horizon/internal/chain"
)

func TestRegistryHasExactlyTwoNetworks(t *testing.T) {
	reg := chain.NewRegistry()
	require.Len(t, reg.Networks(), 2)
}

func TestRegistryDefaultIsBaseSepolia(t *testing.T) {
	reg := chain.NewRegistry()
	def := reg.Default()
	assert.Equal(t, "base-sepolia", def.Name)
	assert.Equal(t, int64(84532), def.ChainID)
}

func TestRegistryOrder(t *testing.T) {
	reg := chain.NewRegistry()
	nets := reg.Networks()
	assert.Equal(t, int64(84532), nets[0].ChainID)
	assert.Equal(t, int64(8453), nets[1].ChainID)
}

func TestOtherFlipsBetweenEntries(t *testing.T) {
	reg := chain.NewRegistry()
	sepolia := reg.Default()

	mainnet := reg.Other(sepolia)
	assert.Equal(t, "base-mainnet", mainnet.Name)
	assert.Equal(t, int64(8453), mainnet.ChainID)

	back := reg.Other(mainnet)
	assert.Equal(t, sepolia, back)
}

func TestOtherIsItsOwnInverse(t *testing.T) {
	reg := chain.NewRegistry()
	for _, n := range reg.Networks() {
		t.Run(n.Name, func(t *testing.T) {
			assert.Equal(t, n, reg.Other(reg.Other(n)))
		})
	}
}

func TestRegistryByName(t *testing.T) {
	reg := chain.NewRegistry()

	n, err := reg.ByName("base-mainnet")
	require.NoError(t, err)
	assert.Equal(t, int64(8453), n.ChainID)

	_, err = reg.ByName("ethereum")
	assert.ErrorIs(t, err, chain.ErrNetworkNotFound)
}

func TestRegistryByChainID(t *testing.T) {
	reg := chain.NewRegistry()

	n, err := reg.ByChainID(84532)
	require.NoError(t, err)
	assert.Equal(t, "base-sepolia", n.Name)

	_, err = reg.ByChainID(1)
	assert.ErrorIs(t, err, chain.ErrNetworkNotFound)
}

func TestAllNetworksHaveRPCsAndExplorer(t *testing.T) {
	reg := chain.NewRegistry()
	for _, n := range reg.Networks() {
		t.Run(n.Name, func(t *testing.T) {
			assert.NotEmpty(t, n.RPCs, "network %s has no RPC endpoints", n.Name)
			assert.NotEmpty(t, n.Explorer, "network %s has no explorer", n.Name)
			assert.NotEmpty(t, n.Label)
		})
	}
}

func TestExplorerURLs(t *testing.T) {
	reg := chain.NewRegistry()
	sepolia := reg.Default()

	assert.Equal(t,
		"https://sepolia.basescan.org/address/0xABCdef0123456789abcDEF0123456789ABcDef01",
		sepolia.AddressURL("0xABCdef0123456789abcDEF0123456789ABcDef01"))
	assert.Equal(t, "https://sepolia.basescan.org/block/1000", sepolia.BlockURL(1000))
}
