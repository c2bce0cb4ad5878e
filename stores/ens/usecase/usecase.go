package usecase

import (
	"math/big"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	goens "github.com/wealdtech/go-ens/v3"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/log"
	"github.com/x-xyz/ensagent/base/metrics"
	"github.com/x-xyz/ensagent/base/ptr"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/ens"
)

const avatarKey = "avatar"

type NamesUseCaseCfg struct {
	Networks           ens.Networks
	Controller         ens.RegistrarController
	BaseRegistrar      ens.BaseRegistrar
	Resolver           ens.Resolver
	Avatar             ens.AvatarUseCase
	PriceBufferPercent int64
	// PriceFeed adds usd estimates to quotes when set
	PriceFeed ens.PriceFeed
}

type impl struct {
	networks      ens.Networks
	controller    ens.RegistrarController
	baseRegistrar ens.BaseRegistrar
	resolver      ens.Resolver
	avatar        ens.AvatarUseCase
	priceFeed     ens.PriceFeed
	priceBuffer   int64
	met           metrics.Service
}

func New(cfg *NamesUseCaseCfg) ens.NamesUseCase {
	buffer := cfg.PriceBufferPercent
	if buffer == 0 {
		buffer = ens.DefaultPriceBufferPercent
	}
	return &impl{
		networks:      cfg.Networks,
		controller:    cfg.Controller,
		baseRegistrar: cfg.BaseRegistrar,
		resolver:      cfg.Resolver,
		avatar:        cfg.Avatar,
		priceFeed:     cfg.PriceFeed,
		priceBuffer:   buffer,
		met:           metrics.New("names"),
	}
}

func (im *impl) bump(op string, err error) {
	kind := "ok"
	if err != nil {
		kind = string(domain.KindOf(err))
	}
	im.met.BumpSum(op, 1, "kind", kind)
}

func (im *impl) rentPrice(c ctx.Ctx, cfg ens.NetworkConfig, label string, duration *big.Int) (ens.Price, error) {
	base, premium, err := im.controller.RentPrice(c, cfg, label, duration)
	if err != nil {
		return ens.Price{}, domain.WrapError(domain.KindInternal, err, "failed to read rentPrice")
	}
	price := ens.NewPrice(base, premium, im.priceBuffer)
	if im.priceFeed != nil && !cfg.EthUsdFeed.IsEmpty() {
		if ethUsd, err := im.priceFeed.EthUsd(c, cfg); err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"network": cfg.Name,
			}).Warn("failed to read eth/usd, quoting without usd")
		} else {
			price.SetUsd(ethUsd)
		}
	}
	return price, nil
}

func (im *impl) Check(c ctx.Ctx, label, duration, network string) (res *ens.CheckResult, err error) {
	defer func() { im.bump("names.check", err) }()

	normalized, err := ens.NormalizeLabel(label)
	if err != nil {
		return nil, err
	}
	cfg, err := im.networks.Get(network)
	if err != nil {
		return nil, err
	}
	seconds, err := ens.DurationParam(duration)
	if err != nil {
		return nil, err
	}

	available, err := im.controller.Available(c, cfg, normalized)
	if err != nil {
		return nil, domain.WrapError(domain.KindInternal, err, "failed to read available")
	}
	res = &ens.CheckResult{
		Available:       available,
		Label:           normalized,
		Name:            ens.FullName(normalized),
		DurationSeconds: seconds.Int64(),
		Network:         cfg.Name,
	}
	if !available {
		return res, nil
	}
	price, err := im.rentPrice(c, cfg, normalized, seconds)
	if err != nil {
		return nil, err
	}
	res.Price = &price
	return res, nil
}

func (im *impl) Renew(c ctx.Ctx, p ens.RenewParams) (res *ens.RenewResult, err error) {
	defer func() { im.bump("names.renew", err) }()

	label, err := ens.NormalizeLabel(p.Label)
	if err != nil {
		return nil, err
	}
	cfg, err := im.networks.Get(p.Network)
	if err != nil {
		return nil, err
	}
	seconds, err := ens.DurationParam(p.Duration)
	if err != nil {
		return nil, err
	}
	price, err := im.rentPrice(c, cfg, label, seconds)
	if err != nil {
		return nil, err
	}
	tx, err := ens.BuildRenewTx(cfg, label, seconds, price.Value())
	if err != nil {
		return nil, domain.WrapError(domain.KindInternal, err, "failed to build renew tx")
	}
	return &ens.RenewResult{
		Tx:              tx,
		Name:            ens.FullName(label),
		Price:           price,
		DurationSeconds: seconds.Int64(),
		Network:         cfg.Name,
	}, nil
}

func (im *impl) Transfer(c ctx.Ctx, p ens.TransferParams) (res *ens.TransferResult, err error) {
	defer func() { im.bump("names.transfer", err) }()

	if p.Label == "" || p.From == "" || p.To == "" {
		return nil, domain.NewError(domain.KindMissingParam, "label, from and to are required")
	}
	label, err := ens.NormalizeLabel(p.Label)
	if err != nil {
		return nil, err
	}
	from, err := ens.ParseAddress("from", p.From)
	if err != nil {
		return nil, err
	}
	to, err := ens.ParseAddress("to", p.To)
	if err != nil {
		return nil, err
	}
	cfg, err := im.networks.Get(p.Network)
	if err != nil {
		return nil, err
	}
	tokenId, err := ens.TokenId(label)
	if err != nil {
		return nil, err
	}
	name := ens.FullName(label)

	owner, err := im.baseRegistrar.OwnerOf(c, cfg, tokenId)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"name":    name,
			"network": cfg.Name,
		}).Warn("ownerOf failed")
		return nil, domain.WrapError(domain.KindTokenNotFound, err, "could not find token for %s, it may not be registered", name)
	}
	if owner != from {
		return nil, domain.NewError(domain.KindNotOwner, "token not owned by from address, current owner: %s", owner.Hex())
	}

	tx, err := ens.BuildTransferTx(cfg, from, to, tokenId)
	if err != nil {
		return nil, domain.WrapError(domain.KindInternal, err, "failed to build transfer tx")
	}
	return &ens.TransferResult{
		Tx:      tx,
		Name:    name,
		TokenId: tokenId.String(),
		From:    from.Hex(),
		To:      to.Hex(),
		Network: cfg.Name,
	}, nil
}

func (im *impl) SetPrimary(c ctx.Ctx, p ens.PrimaryParams) (res *ens.PrimaryResult, err error) {
	defer func() { im.bump("names.primary", err) }()

	name, err := ens.NormalizeName(p.Name)
	if err != nil {
		return nil, err
	}
	addr, err := ens.ParseAddress("address", p.Address)
	if err != nil {
		return nil, err
	}
	owner := addr
	if p.Owner != "" {
		if owner, err = ens.ParseAddress("owner", p.Owner); err != nil {
			return nil, err
		}
	}
	cfg, err := im.networks.Get(p.Network)
	if err != nil {
		return nil, err
	}
	tx, err := ens.BuildSetNameForAddrTx(cfg, addr, owner, name)
	if err != nil {
		return nil, domain.WrapError(domain.KindInternal, err, "failed to build setNameForAddr tx")
	}
	return &ens.PrimaryResult{
		Tx:      tx,
		Name:    name,
		Address: addr.Hex(),
		Network: cfg.Name,
	}, nil
}

func (im *impl) SetRecords(c ctx.Ctx, p ens.RecordsParams) (res *ens.RecordsResult, err error) {
	defer func() { im.bump("names.records", err) }()

	if len(p.Texts) == 0 && p.Address == "" {
		return nil, domain.NewError(domain.KindMissingParam, "at least one of texts or address is required")
	}
	name, err := ens.NormalizeName(p.Name)
	if err != nil {
		return nil, err
	}
	cfg, err := im.networks.Get(p.Network)
	if err != nil {
		return nil, err
	}
	resolver := cfg.Resolver.Common()
	if p.Resolver != "" {
		if resolver, err = ens.ParseAddress("resolver", p.Resolver); err != nil {
			return nil, err
		}
	}
	node, err := ens.NameHash(name)
	if err != nil {
		return nil, err
	}

	res = &ens.RecordsResult{
		RecordsSet: []string{},
		Warnings:   []string{},
		Name:       name,
		Network:    cfg.Name,
	}
	keys := make([]string, 0, len(p.Texts))
	for k := range p.Texts {
		if k == "" {
			return nil, domain.NewError(domain.KindInvalidParam, "text record key must not be empty")
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	calls := make([][]byte, 0, len(keys)+1)
	for _, k := range keys {
		data, err := ens.SetTextCalldata(node, k, p.Texts[k])
		if err != nil {
			return nil, domain.WrapError(domain.KindInternal, err, "failed to build setText")
		}
		calls = append(calls, data)
		res.RecordsSet = append(res.RecordsSet, "text:"+k)
		if w := ens.TextKeyWarning(k); w != "" {
			res.Warnings = append(res.Warnings, w)
		}
	}
	if p.Address != "" {
		addr, err := ens.ParseAddress("address", p.Address)
		if err != nil {
			return nil, err
		}
		data, err := ens.SetAddrCalldata(node, addr)
		if err != nil {
			return nil, domain.WrapError(domain.KindInternal, err, "failed to build setAddr")
		}
		calls = append(calls, data)
		res.RecordsSet = append(res.RecordsSet, "addr")
	}

	if res.Tx, err = ens.BuildResolverTx(cfg, resolver, calls); err != nil {
		return nil, err
	}
	return res, nil
}

func (im *impl) CreateSubname(c ctx.Ctx, p ens.SubnameParams) (res *ens.SubnameResult, err error) {
	defer func() { im.bump("names.subname", err) }()

	label, err := ens.NormalizeLabel(p.Label)
	if err != nil {
		return nil, err
	}
	owner, err := ens.ParseAddress("owner", p.Owner)
	if err != nil {
		return nil, err
	}
	addr := owner
	if p.Address != "" {
		if addr, err = ens.ParseAddress("address", p.Address); err != nil {
			return nil, err
		}
	}
	parent := ens.TLD
	if p.Parent != "" && !strings.EqualFold(strings.TrimSpace(p.Parent), ens.TLD) {
		if parent, err = ens.NormalizeName(p.Parent); err != nil {
			return nil, err
		}
	}
	cfg, err := im.networks.Get(p.Network)
	if err != nil {
		return nil, err
	}

	name := label + "." + parent
	parentNode, err := ens.NameHash(parent)
	if err != nil {
		return nil, err
	}
	labelHash, err := ens.LabelHash(label)
	if err != nil {
		return nil, err
	}
	node, err := ens.NameHash(name)
	if err != nil {
		return nil, err
	}
	resolver := cfg.Resolver.Common()

	create, err := ens.BuildSubnodeRecordTx(cfg, parentNode, labelHash, owner, resolver)
	if err != nil {
		return nil, domain.WrapError(domain.KindInternal, err, "failed to build setSubnodeRecord tx")
	}
	setAddr, err := ens.BuildSetAddrTx(cfg, resolver, node, addr)
	if err != nil {
		return nil, domain.WrapError(domain.KindInternal, err, "failed to build setAddr tx")
	}
	steps := []ens.SubnameStep{
		{Step: ens.StepCreateSubname, Tx: create},
		{Step: ens.StepSetAddress, Tx: setAddr},
	}
	if p.Reverse == nil || *p.Reverse {
		reverse, err := ens.BuildSetNameForAddrTx(cfg, addr, owner, name)
		if err != nil {
			return nil, domain.WrapError(domain.KindInternal, err, "failed to build setNameForAddr tx")
		}
		steps = append(steps, ens.SubnameStep{Step: ens.StepSetReverse, Tx: reverse})
	}

	return &ens.SubnameResult{
		Transactions: steps,
		Name:         name,
		Parent:       parent,
		ParentNode:   parentNode.Hex(),
		LabelHash:    labelHash.Hex(),
		SubnameNode:  node.Hex(),
		Owner:        owner.Hex(),
		Address:      addr.Hex(),
		Network:      cfg.Name,
	}, nil
}

func isAddress(input string) bool {
	return strings.HasPrefix(input, "0x") && common.IsHexAddress(input)
}

func (im *impl) Resolve(c ctx.Ctx, p ens.ResolveParams) (*ens.ResolveResult, error) {
	input := strings.TrimSpace(p.Input)
	if input == "" {
		return nil, domain.NewError(domain.KindMissingParam, "input is required")
	}
	cfg, err := im.networks.Get(p.Network)
	if err != nil {
		return nil, err
	}

	if isAddress(input) {
		addr := common.HexToAddress(input)
		name, err := im.resolver.PrimaryName(c, cfg, addr)
		if err != nil {
			return nil, domain.WrapError(domain.KindInternal, err, "failed to reverse resolve %s", addr.Hex())
		}
		return &ens.ResolveResult{
			Input:   input,
			Type:    ens.ResolveReverse,
			Name:    name,
			Address: ptr.String(addr.Hex()),
			Network: cfg.Name,
		}, nil
	}

	name, err := ens.NormalizeName(input)
	if err != nil {
		return nil, err
	}
	resolverAddr, err := im.resolver.ResolverOf(c, cfg, name)
	if err != nil {
		return nil, domain.WrapError(domain.KindInternal, err, "failed to read resolver of %s", name)
	}
	if resolverAddr == (common.Address{}) {
		return nil, domain.NewError(domain.KindNotRegistered, "no resolver found for %s", name)
	}
	res := &ens.ResolveResult{
		Input:    input,
		Type:     ens.ResolveForward,
		Name:     name,
		Resolver: ptr.String(resolverAddr.Hex()),
		Network:  cfg.Name,
	}

	switch {
	case p.Text != "":
		value, err := im.resolver.Text(c, cfg, name, p.Text)
		if err != nil {
			return nil, domain.WrapError(domain.KindInternal, err, "failed to read text %s of %s", p.Text, name)
		}
		record := &ens.TextRecord{Key: p.Text}
		if value != "" {
			record.Value = ptr.String(value)
		}
		if p.Text == avatarKey && value != "" && im.avatar != nil {
			if avatar := im.avatar.Resolve(c, value); avatar.ImageUrl != "" {
				record.AvatarUrl = ptr.String(avatar.ImageUrl)
			}
		}
		res.Text = record
	case p.Contenthash:
		raw, err := im.resolver.Contenthash(c, cfg, name)
		if err != nil {
			return nil, domain.WrapError(domain.KindInternal, err, "failed to read contenthash of %s", name)
		}
		if len(raw) > 0 {
			res.Contenthash = &ens.Contenthash{Raw: hexutil.Encode(raw)}
			if decoded, err := goens.ContenthashToString(raw); err == nil {
				res.Contenthash.Decoded = decoded
			} else {
				c.WithFields(log.Fields{
					"err":  err,
					"name": name,
				}).Warn("failed to decode contenthash")
			}
		}
	default:
		addr, err := im.resolver.Address(c, cfg, name)
		if err != nil {
			return nil, domain.WrapError(domain.KindInternal, err, "failed to read address of %s", name)
		}
		if addr != (common.Address{}) {
			res.Address = ptr.String(addr.Hex())
		}
	}
	return res, nil
}

func (im *impl) Namehash(name string) (*ens.HashResult, error) {
	normalized, err := ens.NormalizeName(name)
	if err != nil {
		return nil, err
	}
	h, err := ens.NameHash(normalized)
	if err != nil {
		return nil, err
	}
	return &ens.HashResult{Input: name, Normalized: normalized, Hash: h.Hex()}, nil
}

func (im *impl) Labelhash(label string) (*ens.HashResult, error) {
	normalized, err := ens.NormalizeLabel(label)
	if err != nil {
		return nil, err
	}
	h, err := ens.LabelHash(normalized)
	if err != nil {
		return nil, err
	}
	return &ens.HashResult{Input: label, Normalized: normalized, Hash: h.Hex()}, nil
}

func (im *impl) Deployments() ens.Networks {
	res := ens.Networks{}
	for k, v := range im.networks {
		res[k] = v
	}
	return res
}
