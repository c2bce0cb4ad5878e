package ens

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x-xyz/ensagent/domain"
)

func TestParseAvatarURI(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  AvatarType
		fails bool
	}{
		{"https", "https://example.com/a.png", AvatarTypeHttps, false},
		{"http", "http://example.com/a.png", AvatarTypeHttps, false},
		{"ipfs", "ipfs://QmRAQB6YaCyidP37UdDnjFY5vQuiBrcqdyoW1CuDgwxkD4", AvatarTypeIpfs, false},
		{"ipns", "ipns://alice.eth", AvatarTypeIpns, false},
		{"data", "data:image/svg+xml;base64,PHN2Zz48L3N2Zz4=", AvatarTypeData, false},
		{"erc721", "eip155:1/erc721:0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d/0", AvatarTypeNft, false},
		{"empty", "  ", "", true},
		{"short ipfs", "ipfs://Qm", "", true},
		{"data without comma", "data:image/png", "", true},
		{"bad nft", "eip155:1/erc20:0xbc4ca0eda7647a8ab7c2061c2e118a18a936f13d/1", "", true},
		{"unknown", "ftp://example.com/a.png", "", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			uri, err := ParseAvatarURI(c.input)
			if c.fails {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, uri.Type)
		})
	}
}

func TestParseAvatarURINft(t *testing.T) {
	uri, err := ParseAvatarURI("eip155:137/erc1155:0x495f947276749Ce646f68AC8c248420045cb7b5e/42")
	require.NoError(t, err)
	assert.Equal(t, domain.ChainId(137), uri.ChainId)
	assert.Equal(t, NftStandardErc1155, uri.Standard)
	assert.Equal(t, common.HexToAddress("0x495f947276749Ce646f68AC8c248420045cb7b5e"), uri.Contract)
	assert.Equal(t, "42", uri.TokenId.String())
}

func TestIpfsToGateway(t *testing.T) {
	assert.Equal(t, "https://ipfs.io/ipfs/QmHash/1.png", IpfsToGateway("https://ipfs.io/", "ipfs://QmHash/1.png"))
	assert.Equal(t, "https://ipfs.io/ipfs/QmHash", IpfsToGateway("https://ipfs.io", "ipfs://ipfs/QmHash"))
	assert.Equal(t, "https://ipfs.io/ipns/alice.eth", IpfsToGateway("https://ipfs.io", "ipns://alice.eth"))
	assert.Equal(t, "https://example.com/a.png", IpfsToGateway("https://ipfs.io", "https://example.com/a.png"))
}

func TestSubstituteTokenId(t *testing.T) {
	got := SubstituteTokenId("https://api.example/{id}.json", big.NewInt(255))
	assert.Equal(t, "https://api.example/00000000000000000000000000000000000000000000000000000000000000ff.json", got)
	assert.Equal(t, "https://api.example/1.json", SubstituteTokenId("https://api.example/1.json", big.NewInt(2)))
}
