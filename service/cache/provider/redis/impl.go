package redis

import (
	"time"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/service/cache/provider"
	"github.com/tributary-xyz/goapi/service/redis"
)

type impl struct {
	redis redis.Service
}

// NewRedis is a shared cache provider over the redis service, used as the
// second tier behind the in-process one
func NewRedis(redis redis.Service) provider.Provider {
	return &impl{redis}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, err := im.redis.Get(c, key)
	if err == redis.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	}
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Get failed")
		return nil, 0, err
	}

	ttl, err := im.redis.TTL(c, key)
	if err != nil && err != redis.ErrNotFound {
		c.WithField("err", err).WithField("key", key).Error("redis.TTL failed")
		return nil, 0, err
	}
	return val, time.Duration(ttl) * time.Second, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.redis.Set(c, key, value, ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	if _, err := im.redis.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Del failed")
		return err
	}
	return nil
}
