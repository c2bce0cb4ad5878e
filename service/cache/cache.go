package cache

import (
	"errors"
	"reflect"
	"time"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/service/cache/provider"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// OneTimeGetter returns a pointer of the container type, wrap it with Uncached to skip storing it
type OneTimeGetter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// high order cache service
type Service interface {
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

type uncached struct {
	val interface{}
}

// Uncached hands val to the caller of GetByFunc without writing it to any layer
func Uncached(val interface{}) interface{} {
	return uncached{val: val}
}

func unwrap(val interface{}) (interface{}, bool) {
	if u, ok := val.(uncached); ok {
		return u.val, false
	}
	return val, true
}

// fill copies *val into the container pointer
func fill(container, val interface{}) {
	v := reflect.ValueOf(val)
	if v.Kind() == reflect.Ptr {
		v = v.Elem()
	}
	reflect.ValueOf(container).Elem().Set(v)
}

// Resolve runs the miss path of GetByFunc for any Service
func Resolve(c ctx.Ctx, s Service, key string, container interface{}, getter OneTimeGetter) error {
	raw, err := getter()
	if err != nil {
		return err
	}
	val, store := unwrap(raw)
	if store {
		if err := s.Set(c, key, val); err != nil {
			c.WithField("err", err).WithField("key", key).Error("Set failed")
		}
	}
	fill(container, val)
	return nil
}
