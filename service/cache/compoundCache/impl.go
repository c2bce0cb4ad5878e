// Package compoundcache reads layers in order, nearest first, and backfills the layers that missed
package compoundcache

import (
	"errors"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/service/cache"
)

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
	} else if !errors.Is(err, cache.ErrNotFound) {
		// a broken layer falls back to the getter
		c.WithField("err", err).WithField("key", key).Warn("Get failed")
	}
	return cache.Resolve(c, im, key, container, getter)
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	hitIdx := -1
	for idx, lyr := range im.layers {
		err := lyr.Get(c, key, container)
		if errors.Is(err, cache.ErrNotFound) {
			continue
		} else if err != nil {
			return err
		}
		hitIdx = idx
		break
	}
	if hitIdx == -1 {
		return cache.ErrNotFound
	}

	// a failed backfill still serves the hit
	for _, lyr := range im.layers[:hitIdx] {
		if err := lyr.Set(c, key, container); err != nil {
			c.WithField("err", err).WithField("key", key).Warn("backfill failed")
		}
	}
	return nil
}

// Set writes every layer and returns the first failure
func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	var first error
	for _, lyr := range im.layers {
		if err := lyr.Set(c, key, value); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	var first error
	for _, lyr := range im.layers {
		if err := lyr.Del(c, key); err != nil && first == nil {
			first = err
		}
	}
	return first
}
