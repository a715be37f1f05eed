package healthcheck

import (
	"github.com/tributary-xyz/goapi/base/ctx"
)

// HealthCheckUsecase aggregates dependency probes for the health endpoint
type HealthCheckUsecase interface {
	Check(c ctx.Ctx) error
}

// HealthCheckRepo probes the storage dependencies
type HealthCheckRepo interface {
	PingMongo(c ctx.Ctx) error
	PingRedis(c ctx.Ctx) error
}
