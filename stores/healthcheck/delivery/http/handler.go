package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/base/delivery"
	hcdomain "github.com/tributary-xyz/goapi/domain/healthcheck"
)

type handler struct {
	healthCheck hcdomain.HealthCheckUsecase
}

func New(e *echo.Echo, us hcdomain.HealthCheckUsecase) {
	h := &handler{
		healthCheck: us,
	}
	e.GET("/health", h.check)
}

func (h *handler) check(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	if err := h.healthCheck.Check(ctx); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, map[string]string{
		"healthy": "ok",
	})
}
