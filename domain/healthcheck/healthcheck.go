package healthcheck

import (
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain/ens"
)

const StatusOk = "ok"

// Report maps a component (mongo, redis, chain:<network>) to "ok" or its failure
type Report map[string]string

// HealthCheckUsecase represents the healthCheck's usecases
type HealthCheckUsecase interface {
	// Check returns a non nil error when any component failed
	Check(context ctx.Ctx) (Report, error)
}

// HealthCheckRepo is repository layer of healthCheck
type HealthCheckRepo interface {
	// PingDB pings the configured stores, keyed by store name
	PingDB(context ctx.Ctx) map[string]error
	PingChain(context ctx.Ctx, cfg ens.NetworkConfig) error
}
