package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/delivery"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/registration"
)

type handler struct {
	registration registration.UseCase
}

func New(e *echo.Echo, us registration.UseCase) {
	h := &handler{
		registration: us,
	}

	e.POST("/commit", h.commit)
	e.POST("/register", h.register)
	e.GET("/register/status", h.status)
}

func (h *handler) commit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := registration.CommitParams{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.WrapError(domain.KindInvalidParam, err, "malformed request"))
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.registration.Commit(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) register(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		SessionId registration.SessionId `json:"sessionId" validate:"required"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.WrapError(domain.KindInvalidParam, err, "malformed request"))
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.registration.Register(ctx, p.SessionId)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) status(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	id := registration.SessionId(c.QueryParam("sessionId"))
	if id == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewError(domain.KindMissingParam, "sessionId is required"))
	}

	res, err := h.registration.Status(ctx, id)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
