package provider

import (
	"errors"
	"time"

	"github.com/tributary-xyz/goapi/base/ctx"
)

var ErrNotFound = errors.New("cache entry not found")

// Provider is a raw byte cache with per-entry TTL. Get reports the
// remaining TTL alongside the value.
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
