package usecase

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/xerrors"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/goroutine"
	"github.com/x-xyz/ensagent/domain/ens"
	hcdomain "github.com/x-xyz/ensagent/domain/healthcheck"
)

type impl struct {
	repo     hcdomain.HealthCheckRepo
	networks ens.Networks
}

// New creates new healthCheckUsecase object representation of HealthCheckUsecase interface
func New(repo hcdomain.HealthCheckRepo, networks ens.Networks) hcdomain.HealthCheckUsecase {
	return &impl{
		repo:     repo,
		networks: networks,
	}
}

func (im *impl) Check(context ctx.Ctx) (hcdomain.Report, error) {
	var (
		mu     sync.Mutex
		report = hcdomain.Report{}
		failed = []string{}
	)
	mark := func(component string, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			report[component] = err.Error()
			failed = append(failed, component)
			return
		}
		report[component] = hcdomain.StatusOk
	}

	for store, err := range im.repo.PingDB(context) {
		mark(store, err)
	}

	// chains are pinged concurrently
	pending := map[string]<-chan *goroutine.PanicEvent{}
	for _, name := range im.networks.Names() {
		component := "chain:" + name
		cfg := im.networks[name]
		pending[component] = goroutine.RecoverableGo(func() {
			mark(component, im.repo.PingChain(context, cfg))
		})
	}
	for component, done := range pending {
		if ev, ok := <-done; ok {
			mark(component, fmt.Errorf("panic: %v", ev.Panic))
		}
	}

	if len(failed) > 0 {
		sort.Strings(failed)
		return report, xerrors.Errorf("unhealthy: %v", failed)
	}
	return report, nil
}
