package ens

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"
	"github.com/x-xyz/ensagent/domain"
)

const (
	TLD       = "eth"
	tldSuffix = "." + TLD
)

// NormalizeLabel normalises a second-level label, a trailing ".eth" is dropped
func NormalizeLabel(input string) (string, error) {
	label := strings.TrimSpace(input)
	if label == "" {
		return "", domain.NewError(domain.KindMissingParam, "label is required")
	}
	if strings.HasSuffix(strings.ToLower(label), tldSuffix) {
		label = label[:len(label)-len(tldSuffix)]
	}
	normalized, err := goens.Normalize(label)
	if err != nil {
		return "", domain.WrapError(domain.KindInvalidParam, err, "invalid label %q", input)
	}
	if normalized == "" || strings.Contains(normalized, ".") {
		return "", domain.NewError(domain.KindInvalidParam, "invalid label %q", input)
	}
	return normalized, nil
}

// NormalizeName returns the normalised full name under .eth, subnames included
func NormalizeName(input string) (string, error) {
	name := strings.TrimSpace(input)
	if name == "" {
		return "", domain.NewError(domain.KindMissingParam, "name is required")
	}
	if strings.HasSuffix(strings.ToLower(name), tldSuffix) {
		name = name[:len(name)-len(tldSuffix)]
	}
	parts := strings.Split(name, ".")
	for i, p := range parts {
		n, err := goens.Normalize(p)
		if err != nil || n == "" {
			return "", domain.WrapError(domain.KindInvalidParam, err, "invalid name %q", input)
		}
		parts[i] = n
	}
	return strings.Join(parts, ".") + tldSuffix, nil
}

// FullName is label + ".eth"
func FullName(label string) string {
	return label + tldSuffix
}

// IsSubname reports whether a full name sits below a second-level .eth name
func IsSubname(name string) bool {
	return strings.Contains(strings.TrimSuffix(name, tldSuffix), ".")
}

// NameHash is the EIP-137 node of a name
func NameHash(name string) (common.Hash, error) {
	h, err := goens.NameHash(name)
	if err != nil {
		return common.Hash{}, domain.WrapError(domain.KindInvalidParam, err, "invalid name %q", name)
	}
	return common.Hash(h), nil
}

// LabelHash is keccak256 of a single label
func LabelHash(label string) (common.Hash, error) {
	h, err := goens.LabelHash(label)
	if err != nil {
		return common.Hash{}, domain.WrapError(domain.KindInvalidParam, err, "invalid label %q", label)
	}
	return common.Hash(h), nil
}

// TokenId is the base registrar ERC721 id of a .eth label
func TokenId(label string) (*big.Int, error) {
	h, err := LabelHash(label)
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(h.Bytes()), nil
}

// ParseAddress accepts a 0x-prefixed 20 byte hex address
func ParseAddress(field, s string) (common.Address, error) {
	if s == "" {
		return common.Address{}, domain.NewError(domain.KindMissingParam, "%s is required", field)
	}
	if !common.IsHexAddress(s) || !strings.HasPrefix(s, "0x") {
		return common.Address{}, domain.NewError(domain.KindInvalidParam, "%s is not a valid address: %s", field, s)
	}
	return common.HexToAddress(s), nil
}
