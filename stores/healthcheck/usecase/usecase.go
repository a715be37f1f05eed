package usecase

import (
	"github.com/tributary-xyz/goapi/base/ctx"
	hcdomain "github.com/tributary-xyz/goapi/domain/healthcheck"
)

type impl struct {
	repo hcdomain.HealthCheckRepo
}

func New(repo hcdomain.HealthCheckRepo) hcdomain.HealthCheckUsecase {
	return &impl{
		repo: repo,
	}
}

// Check fails on the first unhealthy dependency
func (im *impl) Check(c ctx.Ctx) error {
	if err := im.repo.PingMongo(c); err != nil {
		return err
	}
	return im.repo.PingRedis(c)
}
