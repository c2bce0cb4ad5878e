package ens

import (
	"fmt"
	"math/big"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain"
	"golang.org/x/xerrors"
)

type AvatarType string

const (
	AvatarTypeHttps   AvatarType = "https"
	AvatarTypeData    AvatarType = "data"
	AvatarTypeIpfs    AvatarType = "ipfs"
	AvatarTypeIpns    AvatarType = "ipns"
	AvatarTypeNft     AvatarType = "nft"
	AvatarTypeUnknown AvatarType = "unknown"
)

type NftStandard string

const (
	NftStandardErc721  NftStandard = "erc721"
	NftStandardErc1155 NftStandard = "erc1155"
)

var nftUriRe = regexp.MustCompile(`^eip155:(\d+)/(erc721|erc1155):(0x[0-9a-fA-F]{40})/(\d+)$`)

// AvatarURI is a parsed ENSIP-12 avatar text record
type AvatarURI struct {
	Raw  string
	Type AvatarType

	// nft only
	ChainId  domain.ChainId
	Standard NftStandard
	Contract common.Address
	TokenId  *big.Int
}

// ParseAvatarURI classifies an avatar record, malformed values return an error
func ParseAvatarURI(raw string) (*AvatarURI, error) {
	v := strings.TrimSpace(raw)
	switch {
	case v == "":
		return nil, xerrors.New("empty avatar value")
	case strings.HasPrefix(v, "https://"), strings.HasPrefix(v, "http://"):
		if _, err := url.ParseRequestURI(v); err != nil {
			return nil, xerrors.Errorf("malformed url: %w", err)
		}
		return &AvatarURI{Raw: v, Type: AvatarTypeHttps}, nil
	case strings.HasPrefix(v, "ipfs://"):
		if len(v)-len("ipfs://") < 10 {
			return nil, xerrors.New("ipfs hash too short")
		}
		return &AvatarURI{Raw: v, Type: AvatarTypeIpfs}, nil
	case strings.HasPrefix(v, "ipns://"):
		if len(v)-len("ipns://") < 3 {
			return nil, xerrors.New("ipns name too short")
		}
		return &AvatarURI{Raw: v, Type: AvatarTypeIpns}, nil
	case strings.HasPrefix(v, "data:"):
		if !strings.Contains(v, ",") {
			return nil, xerrors.New("data uri missing comma separator")
		}
		return &AvatarURI{Raw: v, Type: AvatarTypeData}, nil
	}

	if m := nftUriRe.FindStringSubmatch(v); m != nil {
		chainId, err := strconv.ParseInt(m[1], 10, 32)
		if err != nil {
			return nil, xerrors.Errorf("invalid chain id: %w", err)
		}
		tokenId, ok := new(big.Int).SetString(m[4], 10)
		if !ok {
			return nil, xerrors.Errorf("invalid token id %s", m[4])
		}
		return &AvatarURI{
			Raw:      v,
			Type:     AvatarTypeNft,
			ChainId:  domain.ChainId(chainId),
			Standard: NftStandard(m[2]),
			Contract: common.HexToAddress(m[3]),
			TokenId:  tokenId,
		}, nil
	}
	if strings.HasPrefix(v, "eip155:") {
		return nil, xerrors.New("invalid nft uri, expected eip155:<chainId>/<erc721|erc1155>:<0xAddress>/<tokenId>")
	}
	return nil, xerrors.New("unrecognized avatar uri")
}

// IpfsToGateway rewrites ipfs:// and ipns:// to gateway urls, other values pass through
func IpfsToGateway(gateway, uri string) string {
	gateway = strings.TrimSuffix(gateway, "/")
	if strings.HasPrefix(uri, "ipfs://") {
		p := strings.TrimPrefix(uri, "ipfs://")
		p = strings.TrimPrefix(p, "ipfs/")
		return fmt.Sprintf("%s/ipfs/%s", gateway, p)
	}
	if strings.HasPrefix(uri, "ipns://") {
		return fmt.Sprintf("%s/ipns/%s", gateway, strings.TrimPrefix(uri, "ipns://"))
	}
	return uri
}

// SubstituteTokenId fills the ERC1155 {id} placeholder with the 64 char lowercase hex id
func SubstituteTokenId(uri string, id *big.Int) string {
	if !strings.Contains(uri, "{id}") {
		return uri
	}
	return strings.ReplaceAll(uri, "{id}", fmt.Sprintf("%064x", id))
}

// Avatar is the outcome of resolving an avatar record, ImageUrl is empty on failure
type Avatar struct {
	RawUri   string     `json:"rawUri"`
	Type     AvatarType `json:"type"`
	ImageUrl string     `json:"imageUrl,omitempty"`
	Error    string     `json:"error,omitempty"`
}

type AvatarUseCase interface {
	Resolve(c ctx.Ctx, raw string) *Avatar
}

// TokenMetadata reads NFT metadata pointers
type TokenMetadata interface {
	TokenURI(c ctx.Ctx, chainId domain.ChainId, contract common.Address, tokenId *big.Int) (string, error)
	URI(c ctx.Ctx, chainId domain.ChainId, contract common.Address, tokenId *big.Int) (string, error)
}
