package primitive

import (
	"time"

	"github.com/coocood/freecache"
	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive is an in-process provider over freecache. size is in MB.
func NewPrimitive(name string, size int) provider.Provider {
	return &impl{name, freecache.NewCache(size * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, expireAt, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	}
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("freecache.Get failed")
		return nil, 0, err
	}
	ttl := time.Duration(0)
	if expireAt > 0 {
		ttl = time.Until(time.Unix(int64(expireAt), 0))
	}
	return val, ttl, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		c.WithField("err", err).WithField("key", key).Error("freecache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
