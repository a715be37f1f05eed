package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/base/database/mongoclient"
	hcdomain "github.com/tributary-xyz/goapi/domain/healthcheck"
	"github.com/tributary-xyz/goapi/domain/keys"
	"github.com/tributary-xyz/goapi/service/redis"
)

const probeTimeout = 2 * time.Second

type impl struct {
	mgoClient  *mongoclient.Client
	redisCache redis.Service
}

func New(mgoClient *mongoclient.Client, redisCache redis.Service) hcdomain.HealthCheckRepo {
	return &impl{
		mgoClient:  mgoClient,
		redisCache: redisCache,
	}
}

func (im *impl) PingMongo(c ctx.Ctx) error {
	probeCtx, cancel := ctx.WithTimeout(c, probeTimeout)
	defer cancel()
	if err := im.mgoClient.Ping(probeCtx, readpref.Primary()); err != nil {
		c.WithField("err", err).Error("mongo ping failed")
		return err
	}
	return nil
}

func (im *impl) PingRedis(c ctx.Ctx) error {
	probeCtx, cancel := ctx.WithTimeout(c, probeTimeout)
	defer cancel()
	key := keys.RedisKey(keys.PfxHealthCheck, "probe")
	if err := im.redisCache.Set(probeCtx, key, []byte("1"), 30*time.Second); err != nil {
		c.WithField("err", err).Error("redis probe set failed")
		return err
	}
	return nil
}
