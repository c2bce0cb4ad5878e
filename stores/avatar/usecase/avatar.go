package usecase

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	bCtx "github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/log"
	"github.com/x-xyz/ensagent/base/metrics"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/ens"
	"golang.org/x/xerrors"
)

const DefaultIpfsGateway = "https://ipfs.io"

var dedicatedPinataRegex = regexp.MustCompile(`^https://.*.mypinata.cloud/ipfs/`)

type AvatarUseCaseCfg struct {
	// Gateway is the public ipfs gateway image urls are rewritten to
	Gateway       string
	TokenMetadata ens.TokenMetadata
	HttpReader    domain.WebResourceReader
	IpfsReader    domain.WebResourceReader
	DataUriReader domain.WebResourceReader
	ArUriReader   domain.WebResourceReader
}

type avatarUseCase struct {
	gateway       string
	tokenMetadata ens.TokenMetadata
	httpReader    domain.WebResourceReader
	ipfsReader    domain.WebResourceReader
	dataUriReader domain.WebResourceReader
	arUriReader   domain.WebResourceReader
	met           metrics.Service
}

func NewAvatarUseCase(cfg *AvatarUseCaseCfg) ens.AvatarUseCase {
	gateway := cfg.Gateway
	if gateway == "" {
		gateway = DefaultIpfsGateway
	}
	return &avatarUseCase{
		gateway:       gateway,
		tokenMetadata: cfg.TokenMetadata,
		httpReader:    cfg.HttpReader,
		ipfsReader:    cfg.IpfsReader,
		dataUriReader: cfg.DataUriReader,
		arUriReader:   cfg.ArUriReader,
		met:           metrics.New("avatar"),
	}
}

type nftMetadata struct {
	Image    string `json:"image"`
	ImageUrl string `json:"image_url"`
}

// Resolve never fails, a problem is reported in Avatar.Error with an empty ImageUrl
func (u *avatarUseCase) Resolve(c bCtx.Ctx, raw string) *ens.Avatar {
	uri, err := ens.ParseAvatarURI(raw)
	if err != nil {
		u.met.BumpSum("resolve", 1, "type", string(ens.AvatarTypeUnknown), "result", "invalid")
		return &ens.Avatar{RawUri: raw, Type: ens.AvatarTypeUnknown, Error: err.Error()}
	}

	res := &ens.Avatar{RawUri: uri.Raw, Type: uri.Type}
	switch uri.Type {
	case ens.AvatarTypeHttps, ens.AvatarTypeData:
		res.ImageUrl = uri.Raw
	case ens.AvatarTypeIpfs, ens.AvatarTypeIpns:
		res.ImageUrl = ens.IpfsToGateway(u.gateway, uri.Raw)
	case ens.AvatarTypeNft:
		image, err := u.nftImage(c, uri)
		if err != nil {
			c.WithFields(log.Fields{
				"uri": raw,
				"err": err,
			}).Warn("failed to resolve nft avatar")
			res.Error = "resolution failed: " + err.Error()
		} else {
			res.ImageUrl = image
		}
	default:
		res.Error = "unsupported uri type"
	}

	result := "ok"
	if res.ImageUrl == "" {
		result = "failed"
	}
	u.met.BumpSum("resolve", 1, "type", string(uri.Type), "result", result)
	return res
}

func (u *avatarUseCase) nftImage(c bCtx.Ctx, uri *ens.AvatarURI) (string, error) {
	if u.tokenMetadata == nil {
		return "", xerrors.New("nft avatars are not supported")
	}
	var (
		metadataUri string
		err         error
	)
	switch uri.Standard {
	case ens.NftStandardErc721:
		metadataUri, err = u.tokenMetadata.TokenURI(c, uri.ChainId, uri.Contract, uri.TokenId)
	case ens.NftStandardErc1155:
		metadataUri, err = u.tokenMetadata.URI(c, uri.ChainId, uri.Contract, uri.TokenId)
		metadataUri = ens.SubstituteTokenId(metadataUri, uri.TokenId)
	default:
		return "", xerrors.Errorf("unsupported nft standard %s", uri.Standard)
	}
	if err != nil {
		return "", xerrors.Errorf("failed to read token uri: %w", err)
	}
	if metadataUri == "" {
		return "", xerrors.New("empty token uri")
	}

	data, err := u.get(c, metadataUri)
	if err != nil {
		return "", err
	}
	// some tokens point their uri straight at the image
	if mime := mimetype.Detect(data).String(); strings.HasPrefix(mime, "image/") {
		return ens.IpfsToGateway(u.gateway, metadataUri), nil
	}
	meta := nftMetadata{}
	if err := json.Unmarshal(data, &meta); err != nil {
		return "", domain.ErrInvalidJsonFormat
	}
	image := meta.Image
	if image == "" {
		image = meta.ImageUrl
	}
	if image == "" {
		return "", xerrors.New("no image field in nft metadata")
	}
	if strings.HasPrefix(image, "ar://") {
		return "https://arweave.net/" + strings.TrimPrefix(image, "ar://"), nil
	}
	return ens.IpfsToGateway(u.gateway, image), nil
}

func (u *avatarUseCase) get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		// data uris carrying raw json are not always valid urls
		if strings.HasPrefix(rawUrl, "data:") {
			return u.dataUriReader.Get(c, rawUrl)
		}
		return nil, err
	}

	switch pUrl.Scheme {
	case "https", "http":
		data, err = u.httpReader.Get(c, rawUrl)
	case "ipfs":
		ipfsUrl := strings.TrimPrefix(rawUrl, "ipfs://")
		ipfsUrl = strings.TrimPrefix(ipfsUrl, "ipfs/")
		data, err = u.ipfsReader.Get(c, ipfsUrl)
	case "data":
		data, err = u.dataUriReader.Get(c, rawUrl)
	case "ar":
		data, err = u.arUriReader.Get(c, rawUrl)
	default:
		return nil, domain.ErrUnsupportedSchema
	}

	if err == nil {
		return data, nil
	}

	if pUrl.Scheme == "https" {
		if ipfsUrl := getIpfsUrl(rawUrl); len(ipfsUrl) > 0 {
			c.WithFields(log.Fields{
				"url":     rawUrl,
				"ipfsUrl": ipfsUrl,
			}).Info("falling back to ipfs")
			return u.get(c, ipfsUrl)
		}
	}
	return nil, err
}

// getIpfsUrl maps a well known gateway url back to ipfs://, empty when it is not one
func getIpfsUrl(url string) string {
	const ipfsPrefix = "ipfs://"
	fixedPrefix := []string{
		"https://gateway.pinata.cloud/ipfs/",
		"https://ipfs.io/ipfs/",
		"https://cloudflare-ipfs.com/ipfs/",
		"https://dweb.link/ipfs/",
	}
	for _, p := range fixedPrefix {
		if strings.HasPrefix(url, p) {
			return strings.Replace(url, p, ipfsPrefix, 1)
		}
	}
	if dedicatedPinataRegex.MatchString(url) {
		return dedicatedPinataRegex.ReplaceAllLiteralString(url, ipfsPrefix)
	}
	return ""
}
