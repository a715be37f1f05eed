package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/tributary-xyz/goapi/domain"
	"github.com/tributary-xyz/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// MakeJsonResp writes data in the standard envelope. When data is an
// error the status is reconciled against the domain taxonomy, so handlers
// can pass errors through without mapping each sentinel themselves.
func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		status = statusOf(err, status)
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}

func statusOf(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidAmount),
		errors.Is(err, domain.ErrInvalidPrice),
		errors.Is(err, domain.ErrInvalidPeriod),
		errors.Is(err, domain.ErrInvalidResolution):
		return http.StatusBadRequest
	}
	return fallback
}
