package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/base/delivery"
	"github.com/tributary-xyz/goapi/base/log"
	"github.com/tributary-xyz/goapi/domain/keys"
	"github.com/tributary-xyz/goapi/service/redis"
)

var rateLimitRedis redis.Service

const rateLimitPfx = "rateLimit"

// SetupRateLimit must run before any route registers RateLimit
func SetupRateLimit(redis redis.Service) {
	rateLimitRedis = redis
}

// RateLimit caps requests per client IP and route at limit per window,
// counted in redis so the cap holds across replicas. Fails open when
// redis is unavailable.
func RateLimit(limit int64, window time.Duration) echo.MiddlewareFunc {
	if rateLimitRedis == nil {
		panic("need SetupRateLimit before using RateLimit")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)

			bucket := time.Now().Unix() / int64(window.Seconds())
			key := keys.RedisKey(rateLimitPfx, fmt.Sprintf("%s:%s:%d", c.RealIP(), c.Path(), bucket))

			exists, err := rateLimitRedis.Exists(ctx, key)
			if err != nil {
				ctx.WithFields(log.Fields{"err": err, "key": key}).Warn("rate limit check failed")
				return next(c)
			}

			if !exists {
				if err := rateLimitRedis.Set(ctx, key, []byte("1"), window); err != nil {
					ctx.WithFields(log.Fields{"err": err, "key": key}).Warn("rate limit seed failed")
				}
				return next(c)
			}

			count, err := rateLimitRedis.Incrby(ctx, key, 1)
			if err != nil {
				ctx.WithFields(log.Fields{"err": err, "key": key}).Warn("rate limit bump failed")
				return next(c)
			}
			if count > limit {
				return delivery.MakeJsonResp(c, http.StatusTooManyRequests, "rate limit exceeded")
			}

			return next(c)
		}
	}
}
