package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/base/delivery"
	"github.com/tributary-xyz/goapi/base/log"
	"github.com/tributary-xyz/goapi/base/metrics"
	"github.com/tributary-xyz/goapi/base/validator"
)

// GoMiddleware groups the service-level echo middleware
type GoMiddleware struct{}

func InitMiddleware() *GoMiddleware {
	return &GoMiddleware{}
}

// AddContext seeds every request with a Ctx carrying the request id, so
// downstream log lines correlate back to the request
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			c.Set("ctx", ctx.WithValue(ctx.Background(), "requestID", requestID))
			return next(c)
		}
	}
}

// ResponseLogger logs one line per request and bumps the request timer
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

			c.Get("ctx").(ctx.Ctx).WithFields(fields).Info("response")
			return nil
		}
	}
}

// IsValidAddress rejects requests whose named path param is not a
// lowercased hex address
func IsValidAddress(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !validator.IsValidAddress(c.Param(param)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid address")
			}
			return next(c)
		}
	}
}
