package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/x-xyz/ensagent/app/bootstrap"
	"github.com/x-xyz/ensagent/base/config"
	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/delivery"
	"github.com/x-xyz/ensagent/base/log"
	bValidator "github.com/x-xyz/ensagent/base/validator"
	mmiddleware "github.com/x-xyz/ensagent/middleware"
	ens_delivery "github.com/x-xyz/ensagent/stores/ens/delivery/http"
	hc_delivery "github.com/x-xyz/ensagent/stores/healthcheck/delivery/http"
	registration_delivery "github.com/x-xyz/ensagent/stores/registration/delivery/http"
)

var (
	configPath = pflag.String("config", config.DefaultPath, "path of the yaml config")
	v          *viper.Viper
)

func init() {
	pflag.Parse()
	var err error
	v, err = config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	if v.GetBool(`debug`) {
		_ = log.SetLevel("debug")
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware(v.GetString("auth.apiKey"))
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.CORS)
	e.Use(middL.APIKeyAuth())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()
	if v.GetString("auth.apiKey") == "" {
		context.Warn("auth.apiKey is empty, every write route answers 401")
	}

	deps, err := bootstrap.Build(context, v)
	if err != nil {
		context.WithField("err", err).Panic("failed to build dependencies")
	}
	context.WithFields(log.Fields{
		"networks":     deps.Networks.Names(),
		"sessionStore": deps.Driver,
	}).Info("dependencies ready")

	e.GET("/", func(c echo.Context) error {
		return delivery.MakeJsonResp(c, http.StatusOK, map[string]interface{}{
			"name":     "ensagent",
			"networks": deps.Networks.Names(),
			"endpoints": []string{
				"GET /check", "GET /resolve", "GET /namehash", "GET /labelhash", "GET /deployments",
				"GET /register/status", "POST /commit", "POST /register",
				"POST /renew", "POST /transfer", "POST /primary",
			},
		})
	})
	hc_delivery.New(e, deps.HealthCheck)
	ens_delivery.New(e, deps.Names)
	registration_delivery.New(e, deps.Registration)

	go func() {
		if err := e.Start(v.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
