package cache

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/domain/keys"
	"github.com/tributary-xyz/goapi/service/cache/provider"
)

type impl struct {
	ttl         time.Duration
	pfx         string
	cache       provider.Provider
	serialize   Serializer
	deserialize Deserializer
}

func New(config ServiceConfig) Service {
	if config.Serialize == nil {
		config.Serialize = json.Marshal
	}
	if config.Deserialize == nil {
		config.Deserialize = json.Unmarshal
	}

	return &impl{
		ttl:         config.Ttl,
		pfx:         config.Pfx,
		cache:       config.Cache,
		serialize:   config.Serialize,
		deserialize: config.Deserialize,
	}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err == nil {
		return nil
	}
	if err != ErrNotFound {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return err
	}

	val, err := getter()
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache getter failed")
		return err
	}

	// a failed fill only costs the next reader a miss
	if err := im.Set(c, key, val); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
	}

	reflect.ValueOf(container).Elem().Set(reflect.ValueOf(val).Elem())

	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	val, _, err := im.cache.Get(c, key)
	if err == provider.ErrNotFound {
		return ErrNotFound
	}
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("provider.Get failed")
		return err
	}

	if err := im.deserialize(val, container); err != nil {
		c.WithField("err", err).WithField("key", key).Error("deserialize failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = keys.RedisKey(im.pfx, key)

	val, err := im.serialize(value)
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("serialize failed")
		return err
	}

	if err := im.cache.Set(c, key, val, im.ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("provider.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = keys.RedisKey(im.pfx, key)

	if err := im.cache.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("provider.Del failed")
		return err
	}
	return nil
}
