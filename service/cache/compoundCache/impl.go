package compoundcache

import (
	"reflect"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/service/cache"
)

// impl layers caches fastest-first; a hit in a lower layer backfills the
// layers above it
type impl struct {
	layers []cache.Service
}

func NewCompoundCache(layers []cache.Service) cache.Service {
	return &impl{
		layers: layers,
	}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter cache.OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err == nil {
		return nil
	}
	if err != cache.ErrNotFound {
		c.WithField("err", err).WithField("key", key).Error("compound Get failed")
		return err
	}

	val, err := getter()
	if err != nil {
		return err
	}

	if err := im.Set(c, key, val); err != nil {
		c.WithField("err", err).WithField("key", key).Error("compound Set failed")
	}

	reflect.ValueOf(container).Elem().Set(reflect.ValueOf(val).Elem())

	return nil
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	hit := -1
	for idx, layer := range im.layers {
		err := layer.Get(c, key, container)
		if err == cache.ErrNotFound {
			continue
		}
		if err != nil {
			return err
		}
		hit = idx
		break
	}

	if hit == -1 {
		return cache.ErrNotFound
	}

	for idx := 0; idx < hit; idx++ {
		if err := im.layers[idx].Set(c, key, container); err != nil {
			return err
		}
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	for _, layer := range im.layers {
		if err := layer.Set(c, key, value); err != nil {
			return err
		}
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	for _, layer := range im.layers {
		if err := layer.Del(c, key); err != nil {
			return err
		}
	}
	return nil
}
