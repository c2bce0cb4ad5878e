package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/delivery"
	"github.com/x-xyz/ensagent/domain"
	"github.com/x-xyz/ensagent/domain/ens"
)

type handler struct {
	names ens.NamesUseCase
}

// New registers the name routes, auth is applied by the caller's middleware
func New(e *echo.Echo, names ens.NamesUseCase) {
	h := &handler{
		names: names,
	}

	e.GET("/check", h.check)
	e.GET("/resolve", h.resolve)
	e.GET("/namehash", h.namehash)
	e.GET("/labelhash", h.labelhash)
	e.GET("/deployments", h.deployments)

	e.POST("/renew", h.renew)
	e.POST("/transfer", h.transfer)
	e.POST("/primary", h.primary)
	e.POST("/records", h.records)
	e.POST("/subname", h.subname)
}

func badRequest(c echo.Context, err error) error {
	return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.WrapError(domain.KindInvalidParam, err, "malformed request"))
}

func (h *handler) check(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Label    string `query:"label" validate:"required"`
		Duration string `query:"duration" validate:"omitempty,duration"`
		Network  string `query:"network"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.names.Check(ctx, p.Label, p.Duration, p.Network)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) resolve(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type payload struct {
		Input       string `query:"input"`
		Network     string `query:"network"`
		Txt         string `query:"txt"`
		Contenthash bool   `query:"contenthash"`
	}

	p := payload{}
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err)
	}

	res, err := h.names.Resolve(ctx, ens.ResolveParams{
		Input:       p.Input,
		Network:     p.Network,
		Text:        p.Txt,
		Contenthash: p.Contenthash,
	})
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) namehash(c echo.Context) error {
	name := c.QueryParam("name")
	if name == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewError(domain.KindMissingParam, "name is required"))
	}
	res, err := h.names.Namehash(name)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) labelhash(c echo.Context) error {
	label := c.QueryParam("label")
	if label == "" {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.NewError(domain.KindMissingParam, "label is required"))
	}
	res, err := h.names.Labelhash(label)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) deployments(c echo.Context) error {
	network := c.QueryParam("network")
	all := h.names.Deployments()
	if network == "" {
		return delivery.MakeJsonResp(c, http.StatusOK, all)
	}
	cfg, err := all.Get(network)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, cfg)
}

func (h *handler) renew(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := ens.RenewParams{}
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.names.Renew(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) transfer(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := ens.TransferParams{}
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.names.Transfer(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) primary(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := ens.PrimaryParams{}
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.names.SetPrimary(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) records(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := ens.RecordsParams{}
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.names.SetRecords(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

func (h *handler) subname(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := ens.SubnameParams{}
	if err := c.Bind(&p); err != nil {
		return badRequest(c, err)
	}
	if err := c.Validate(&p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.names.CreateSubname(ctx, p)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
