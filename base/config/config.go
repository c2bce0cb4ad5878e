package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
	"golang.org/x/xerrors"

	"github.com/x-xyz/ensagent/domain/ens"
	"github.com/x-xyz/ensagent/domain/registration"
)

const (
	DefaultPath = "infra/configs/config.yaml"
	EnvPrefix   = "ENSAGENT"

	DriverRedis  = "redis"
	DriverMemory = "memory"
	DriverMongo  = "mongo"
)

// Load reads the yaml at path with ENSAGENT_* env overrides, a missing file leaves defaults only
func Load(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if path == "" {
		path = DefaultPath
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return v, nil
		}
		return nil, xerrors.Errorf("failed to stat config %s: %w", path, err)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, xerrors.Errorf("failed to read config %s: %w", path, err)
	}
	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("registration.sessionTtl", registration.DefaultSessionTtl)
	v.SetDefault("registration.lockTtl", registration.DefaultLockTtl)
	v.SetDefault("registration.waitBuffer", registration.DefaultWaitBuffer)
	v.SetDefault("registration.priceBufferPercent", ens.DefaultPriceBufferPercent)
	v.SetDefault("registration.sessionStore.driver", DriverMemory)
	v.SetDefault("registration.sessionStore.memorySizeMB", 16)
	v.SetDefault("ipfs.gateway", "https://ipfs.io")
	v.SetDefault("http.timeout", 10*time.Second)
	v.SetDefault("redis_cache.name", "ensagent")
	v.SetDefault("redis_cache.poolMultiplier", 1)
}

// Networks decodes networks.<name> on top of the builtin deployments.
// Builtin networks missing from the file are kept.
func Networks(v *viper.Viper) (ens.Networks, error) {
	res := ens.DefaultNetworks()
	sub := v.Sub("networks")
	if sub == nil {
		return res, nil
	}
	for name := range sub.AllSettings() {
		cfg := ens.NetworkConfig{}
		if err := sub.UnmarshalKey(name, &cfg); err != nil {
			return nil, xerrors.Errorf("failed to decode network %s: %w", name, err)
		}
		cfg.Name = strings.ToLower(name)
		if rpcUrl := os.Getenv(EnvPrefix + "_NETWORKS_" + strings.ToUpper(name) + "_RPCURL"); rpcUrl != "" {
			cfg.RpcUrl = rpcUrl
		}
		res[cfg.Name] = ens.Merge(cfg)
	}
	return res, nil
}

// Registration is the registration block of the config
type Registration struct {
	SessionTtl              time.Duration
	LockTtl                 time.Duration
	WaitBuffer              time.Duration
	PriceBufferPercent      int64
	VerifyCommitmentOnChain bool
	Driver                  string
	MemorySizeMB            int
}

func RegistrationOf(v *viper.Viper) (Registration, error) {
	r := Registration{
		SessionTtl:              v.GetDuration("registration.sessionTtl"),
		LockTtl:                 v.GetDuration("registration.lockTtl"),
		WaitBuffer:              v.GetDuration("registration.waitBuffer"),
		PriceBufferPercent:      v.GetInt64("registration.priceBufferPercent"),
		VerifyCommitmentOnChain: v.GetBool("registration.verifyCommitmentOnChain"),
		Driver:                  strings.ToLower(v.GetString("registration.sessionStore.driver")),
		MemorySizeMB:            v.GetInt("registration.sessionStore.memorySizeMB"),
	}
	switch r.Driver {
	case DriverRedis, DriverMemory, DriverMongo:
	default:
		return r, xerrors.Errorf("unknown session store driver %q", r.Driver)
	}
	if r.SessionTtl <= 0 || r.LockTtl <= 0 {
		return r, xerrors.New("registration ttls must be positive")
	}
	return r, nil
}
