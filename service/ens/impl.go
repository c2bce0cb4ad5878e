package ens

import (
	"fmt"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"
	baseabi "github.com/x-xyz/ensagent/base/abi"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/log"
	domainEns "github.com/x-xyz/ensagent/domain/ens"
	"github.com/x-xyz/ensagent/domain/keys"
	"github.com/x-xyz/ensagent/service/cache"
	compoundcache "github.com/x-xyz/ensagent/service/cache/compoundCache"
	"github.com/x-xyz/ensagent/service/cache/provider/primitive"
	redisCache "github.com/x-xyz/ensagent/service/cache/provider/redis"
	"github.com/x-xyz/ensagent/service/chain"
	"github.com/x-xyz/ensagent/service/redis"
	"golang.org/x/xerrors"
)

const (
	localTtl  = 30 * time.Second
	remoteTtl = 5 * time.Minute
)

type impl struct {
	chain chain.Client
	cache cache.Service
}

// New reads ENS records through the registry of each network.
// Resolver addresses and reverse records are cached, a nil redis keeps the cache in process.
func New(chainService chain.Client, redis redis.Service) domainEns.Resolver {
	layers := []cache.Service{
		cache.New(cache.ServiceConfig{
			Ttl:   localTtl,
			Pfx:   keys.PfxEns,
			Cache: primitive.NewPrimitive("ens", 16),
		}),
	}
	if redis != nil {
		layers = append(layers, cache.New(cache.ServiceConfig{
			Ttl:   remoteTtl,
			Pfx:   keys.PfxEns,
			Cache: redisCache.NewRedis(redis),
		}))
	}
	return &impl{
		chain: chainService,
		cache: compoundcache.NewCompoundCache(layers),
	}
}

func (im *impl) backend(cfg domainEns.NetworkConfig) (bind.ContractBackend, error) {
	backend, err := im.chain.Backend(cfg.ChainId)
	if err != nil {
		return nil, xerrors.Errorf("no backend for %s: %w", cfg.Name, err)
	}
	return backend, nil
}

func (im *impl) lookupResolver(c ctx.Ctx, cfg domainEns.NetworkConfig, name string) (common.Address, error) {
	backend, err := im.backend(cfg)
	if err != nil {
		return common.Address{}, err
	}
	registry, err := goens.NewRegistryAt(backend, cfg.Registry.Common())
	if err != nil {
		return common.Address{}, xerrors.Errorf("failed to bind registry: %w", err)
	}
	addr, err := registry.ResolverAddress(name)
	if err != nil {
		// go-ens reports a zero resolver as an error on some paths
		if strings.Contains(err.Error(), "no resolver") {
			return common.Address{}, nil
		}
		c.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("registry.ResolverAddress failed")
		return common.Address{}, err
	}
	return addr, nil
}

func (im *impl) ResolverOf(c ctx.Ctx, cfg domainEns.NetworkConfig, name string) (common.Address, error) {
	res := common.Address{}
	err := im.cache.GetByFunc(c, keys.RedisKey("resolver", cfg.Name, name), &res, func() (interface{}, error) {
		addr, err := im.lookupResolver(c, cfg, name)
		if err != nil {
			return nil, err
		}
		// unset resolvers are not cached, a registration may land any block
		if addr == (common.Address{}) {
			return cache.Uncached(&addr), nil
		}
		return &addr, nil
	})
	if err != nil {
		return common.Address{}, err
	}
	return res, nil
}

func (im *impl) resolver(c ctx.Ctx, cfg domainEns.NetworkConfig, name string) (*goens.Resolver, error) {
	addr, err := im.ResolverOf(c, cfg, name)
	if err != nil {
		return nil, err
	}
	if addr == (common.Address{}) {
		return nil, domainEns.ErrNoResolver
	}
	backend, err := im.backend(cfg)
	if err != nil {
		return nil, err
	}
	r, err := goens.NewResolverAt(backend, name, addr)
	if err != nil {
		return nil, xerrors.Errorf("failed to bind resolver %s: %w", addr.Hex(), err)
	}
	return r, nil
}

func (im *impl) Address(c ctx.Ctx, cfg domainEns.NetworkConfig, name string) (common.Address, error) {
	r, err := im.resolver(c, cfg, name)
	if err != nil {
		return common.Address{}, err
	}
	addr, err := r.Address()
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("resolver.Address failed")
		return common.Address{}, err
	}
	return addr, nil
}

func (im *impl) Text(c ctx.Ctx, cfg domainEns.NetworkConfig, name, key string) (string, error) {
	r, err := im.resolver(c, cfg, name)
	if err != nil {
		return "", err
	}
	val, err := r.Text(key)
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"name": name,
			"key":  key,
		}).Error("resolver.Text failed")
		return "", err
	}
	return val, nil
}

func (im *impl) Contenthash(c ctx.Ctx, cfg domainEns.NetworkConfig, name string) ([]byte, error) {
	r, err := im.resolver(c, cfg, name)
	if err != nil {
		return nil, err
	}
	val, err := r.Contenthash()
	if err != nil {
		c.WithFields(log.Fields{
			"err":  err,
			"name": name,
		}).Error("resolver.Contenthash failed")
		return nil, err
	}
	return val, nil
}

// reverseName is the addr.reverse node name of addr
func reverseName(addr common.Address) string {
	return fmt.Sprintf("%x.addr.reverse", addr.Bytes())
}

func (im *impl) PrimaryName(c ctx.Ctx, cfg domainEns.NetworkConfig, addr common.Address) (string, error) {
	res := ""
	key := keys.RedisKey("reverse-resolve", cfg.Name, strings.ToLower(addr.Hex()))
	err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		name, err := im.reverseResolve(c, cfg, addr)
		if err != nil {
			return nil, err
		}
		return &name, nil
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to cache.GetByFunc")
		return "", err
	}
	return res, nil
}

// reverseResolve reads the reverse record and keeps it only when the name resolves back to addr
func (im *impl) reverseResolve(c ctx.Ctx, cfg domainEns.NetworkConfig, addr common.Address) (string, error) {
	rname := reverseName(addr)
	resolverAddr, err := im.lookupResolver(c, cfg, rname)
	if err != nil {
		return "", err
	}
	if resolverAddr == (common.Address{}) {
		return "", nil
	}

	node, err := domainEns.NameHash(rname)
	if err != nil {
		return "", err
	}
	unpacked, err := im.chain.Call(c, cfg.ChainId, resolverAddr, nil, baseabi.PublicResolverABI, "name", [32]byte(node))
	if err != nil {
		return "", err
	}
	name := unpacked[0].(string)
	if name == "" {
		return "", nil
	}

	forward, err := im.Address(c, cfg, name)
	if err != nil {
		if xerrors.Is(err, domainEns.ErrNoResolver) {
			return "", nil
		}
		return "", err
	}
	if forward != addr {
		c.WithFields(log.Fields{
			"address": addr.Hex(),
			"name":    name,
			"forward": forward.Hex(),
		}).Info("reverse record does not resolve back")
		return "", nil
	}
	return name, nil
}
