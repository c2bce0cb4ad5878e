// Package bootstrap builds the use cases both binaries serve from one config
package bootstrap

import (
	"net/http"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ensagent/base/config"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/database/mongoclient"
	"github.com/x-xyz/ensagent/base/database/redisclient"
	"github.com/x-xyz/ensagent/base/metrics"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/ens"
	hcdomain "github.com/x-xyz/ensagent/domain/healthcheck"
	"github.com/x-xyz/ensagent/domain/registration"
	"github.com/x-xyz/ensagent/service/cache/provider/primitive"
	redisProvider "github.com/x-xyz/ensagent/service/cache/provider/redis"
	"github.com/x-xyz/ensagent/service/chain"
	"github.com/x-xyz/ensagent/service/chain/contract"
	"github.com/x-xyz/ensagent/service/chainlink"
	ensService "github.com/x-xyz/ensagent/service/ens"
	"github.com/x-xyz/ensagent/service/query"
	"github.com/x-xyz/ensagent/service/redis"
	avatar_repository "github.com/x-xyz/ensagent/stores/avatar/repository"
	avatar_usecase "github.com/x-xyz/ensagent/stores/avatar/usecase"
	names_usecase "github.com/x-xyz/ensagent/stores/ens/usecase"
	hc_repo "github.com/x-xyz/ensagent/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/ensagent/stores/healthcheck/usecase"
	registration_repository "github.com/x-xyz/ensagent/stores/registration/repository"
	registration_usecase "github.com/x-xyz/ensagent/stores/registration/usecase"
)

type Deps struct {
	Networks     ens.Networks
	Chain        chain.Client
	Names        ens.NamesUseCase
	Registration registration.UseCase
	HealthCheck  hcdomain.HealthCheckUsecase
	Driver       string

	// optional, nil unless configured
	Redis redis.Service
	Mongo *mongoclient.Client
}

// Build dials the stores the config selects and wires every use case
func Build(c ctx.Ctx, v *viper.Viper) (*Deps, error) {
	metrics.SetDatadogHost(v.GetString("datadog_host"))

	networks, err := config.Networks(v)
	if err != nil {
		return nil, err
	}
	regCfg, err := config.RegistrationOf(v)
	if err != nil {
		return nil, err
	}
	d := &Deps{Networks: networks, Driver: regCfg.Driver}

	if regCfg.Driver == config.DriverRedis || v.GetBool("redis_cache.enabled") {
		c.Info("init redis cache")
		name := v.GetString("redis_cache.name")
		redisCfg := redisclient.Config{}
		if err := v.UnmarshalKey("redis_cache", &redisCfg); err != nil {
			return nil, xerrors.Errorf("invalid redis_cache config: %w", err)
		}
		pool, err := redisclient.Connect(c, redisCfg)
		if err != nil {
			return nil, xerrors.Errorf("failed to connect redis: %w", err)
		}
		d.Redis = redis.New(name, metrics.New(name), &redis.Pools{Src: pool})
	}

	if regCfg.Driver == config.DriverMongo {
		c.Info("init mongo")
		mongoCfg := mongoclient.Config{}
		if err := v.UnmarshalKey("mongo", &mongoCfg); err != nil {
			return nil, xerrors.Errorf("invalid mongo config: %w", err)
		}
		d.Mongo, err = mongoclient.Connect(c, mongoCfg)
		if err != nil {
			return nil, xerrors.Errorf("failed to connect mongo: %w", err)
		}
	}

	rpcs := make(map[domain.ChainId]string)
	for _, n := range networks {
		rpcs[n.ChainId] = n.RpcUrl
	}
	d.Chain, err = chain.NewClient(c, &chain.ClientCfg{RpcUrls: rpcs})
	if err != nil {
		// unreachable rpcs fail per request, the health check reports them
		c.WithField("err", err).Warn("chain client started with error")
	}

	sessions, err := sessionRepo(c, v, regCfg, d)
	if err != nil {
		return nil, err
	}

	controller := contract.NewRegistrarController(d.Chain)
	d.Registration = registration_usecase.New(networks, sessions, controller, d.Chain, registration_usecase.Config{
		SessionTtl:              regCfg.SessionTtl,
		LockTtl:                 regCfg.LockTtl,
		WaitBuffer:              regCfg.WaitBuffer,
		PriceBufferPercent:      regCfg.PriceBufferPercent,
		VerifyCommitmentOnChain: regCfg.VerifyCommitmentOnChain,
	})

	d.Names = names_usecase.New(&names_usecase.NamesUseCaseCfg{
		Networks:           networks,
		Controller:         controller,
		BaseRegistrar:      contract.NewBaseRegistrar(d.Chain),
		Resolver:           ensService.New(d.Chain, d.Redis),
		Avatar:             avatar(v, d.Chain),
		PriceBufferPercent: regCfg.PriceBufferPercent,
		PriceFeed:          chainlink.New(d.Chain),
	})

	d.HealthCheck = hc_usecase.New(hc_repo.New(d.Mongo, d.Redis, d.Chain), networks)
	return d, nil
}

func sessionRepo(c ctx.Ctx, v *viper.Viper, cfg config.Registration, d *Deps) (registration.SessionRepo, error) {
	switch cfg.Driver {
	case config.DriverRedis:
		return registration_repository.NewCacheRepo(redisProvider.NewRedis(d.Redis)), nil
	case config.DriverMongo:
		return registration_repository.NewMongoRepo(c, query.New(d.Mongo, v.GetBool("mongo.checkIndex")))
	default:
		return registration_repository.NewCacheRepo(primitive.NewPrimitive("regSession", cfg.MemorySizeMB)), nil
	}
}

func avatar(v *viper.Viper, chainService chain.Client) ens.AvatarUseCase {
	timeout := v.GetDuration("http.timeout")
	client := &http.Client{}
	gateway := v.GetString("ipfs.gateway")

	ipfsReader := avatar_repository.NewIpfsGatewayReaderRepo(client, gateway, timeout)
	if nodeApi := v.GetString("ipfs.nodeApi"); nodeApi != "" {
		ipfsReader = avatar_repository.NewIpfsNodeApiReaderRepo(ipfsapi.NewShell(nodeApi), timeout)
	}

	return avatar_usecase.NewAvatarUseCase(&avatar_usecase.AvatarUseCaseCfg{
		Gateway:       gateway,
		TokenMetadata: contract.NewTokenMetadata(chainService),
		HttpReader:    avatar_repository.NewHttpReaderRepo(client, timeout, nil),
		IpfsReader:    ipfsReader,
		DataUriReader: avatar_repository.NewDataUriReaderRepo(),
		ArUriReader:   avatar_repository.NewArReaderRepo(client, v.GetString("arweave.gateway"), timeout),
	})
}
