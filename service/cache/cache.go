package cache

import (
	"errors"
	"time"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/service/cache/provider"
)

var ErrNotFound = errors.New("cache entry not found")

// OneTimeGetter loads the value on a cache miss
type OneTimeGetter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service is a typed cache over a raw byte provider. Values are
// (de)serialized with the configured codec, json by default.
type Service interface {
	// GetByFunc reads through the cache, calling getter and filling the
	// entry on a miss. container must be a pointer.
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl         time.Duration
	Pfx         string
	Cache       provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}
