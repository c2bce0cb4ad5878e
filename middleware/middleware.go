package middleware

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/delivery"
	"github.com/x-xyz/ensagent/base/log"
	"github.com/x-xyz/ensagent/base/metrics"
	"github.com/x-xyz/ensagent/domain"
)

// GoMiddleware represent the data-struct for middleware
type GoMiddleware struct {
	apiKey string
}

// InitMiddleware initialize the middleware, an empty apiKey rejects every write route
func InitMiddleware(apiKey string) *GoMiddleware {
	return &GoMiddleware{apiKey: apiKey}
}

// CORS will handle the CORS middleware
func (m *GoMiddleware) CORS(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		h := c.Response().Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if c.Request().Method == http.MethodOptions {
			return c.NoContent(http.StatusNoContent)
		}
		return next(c)
	}
}

// AddContext adds custome context into echo
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			cont := ctx.WithRequestID(ctx.Background(), c.Response().Header().Get(echo.HeaderXRequestID))
			c.Set("ctx", cont)
			return next(c)
		}
	}
}

// APIKeyAuth requires "Authorization: Bearer <apiKey>" on every non GET route.
// Without a configured key no request passes.
func (m *GoMiddleware) APIKeyAuth() echo.MiddlewareFunc {
	return echoMiddleware.KeyAuthWithConfig(echoMiddleware.KeyAuthConfig{
		Skipper: func(c echo.Context) bool {
			switch c.Request().Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return true
			}
			return false
		},
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(key string, c echo.Context) (bool, error) {
			if m.apiKey == "" {
				return false, nil
			}
			return subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) == 1, nil
		},
		ErrorHandler: func(err error, c echo.Context) error {
			return delivery.MakeJsonResp(c, http.StatusUnauthorized, domain.NewError(domain.KindUnauthorized, "missing or invalid api key"))
		},
	})
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	met := metrics.New("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": res.Status,
				"host":       req.Host,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
				"referer":    req.Header.Get("Referer"),
			}

			if res.Status >= 400 {
				fields["nextErr"] = err
			}

			cont, ok := c.Get("ctx").(ctx.Ctx)
			if !ok {
				cont = ctx.Background()
			}
			cont.WithFields(fields).Info("response")
			return nil
		}
	}
}
