package redis

import (
	"errors"
	"time"

	"github.com/tributary-xyz/goapi/base/ctx"
)

var (
	// ErrNotFound is returned when the key is missing
	ErrNotFound = errors.New("redis key not found")
)

// Service abstracts the redis commands used by the cache tier
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	Incrby(context ctx.Ctx, key string, val int) (int64, error)
	TTL(context ctx.Ctx, key string) (int, error)
}
