package abi

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
)

// NftMetadataABI holds the metadata pointers of ERC721 (tokenURI) and ERC1155 (uri)
var NftMetadataABI abi.ABI

var nftMetadataABI = `[{"type":"function","name":"tokenURI","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string"}]},{"type":"function","name":"uri","stateMutability":"view","inputs":[{"type":"uint256","name":"id"}],"outputs":[{"type":"string"}]}]`

func init() {
	NftMetadataABI = mustParse("nft metadata", nftMetadataABI)
}
