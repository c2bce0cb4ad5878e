package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/delivery"
	hcdomain "github.com/x-xyz/ensagent/domain/healthcheck"
)

// checkTimeout bounds one round of dependency checks
const checkTimeout = 5 * time.Second

type handler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	h := &handler{
		healthCheck: us,
	}
	e.GET("/health", h.check)
}

// check answers 503 with the full report when any dependency is down
func (h *handler) check(c echo.Context) error {
	reqCtx, cancel := ctx.WithTimeout(c.Get("ctx").(ctx.Ctx), checkTimeout)
	defer cancel()

	report, err := h.healthCheck.Check(reqCtx)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusServiceUnavailable, report)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, report)
}
