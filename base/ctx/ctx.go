// Package ctx pairs a context.Context with a logger carrying the same values
package ctx

import (
	"context"
	"time"

	log "github.com/x-xyz/ensagent/base/log"
)

const requestIDKey = "requestID"

type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return From(context.Background())
}

// From wraps an existing context, eg. an http request context
func From(parent context.Context) Ctx {
	return Ctx{
		Context: parent,
		Logger:  log.Log(),
	}
}

// WithValue both stores val and adds it as a log field
func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

func WithRequestID(parent Ctx, id string) Ctx {
	if id == "" {
		return parent
	}
	return WithValue(parent, requestIDKey, id)
}

// RequestID is empty outside a request
func RequestID(c Ctx) string {
	id, _ := c.Value(requestIDKey).(string)
	return id
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	c, cancel := context.WithCancel(parent)
	return Ctx{Context: c, Logger: parent.Logger}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	c, cancel := context.WithTimeout(parent, timeout)
	return Ctx{Context: c, Logger: parent.Logger}, cancel
}
