package ctx

import (
	"context"
	"time"

	"github.com/tributary-xyz/goapi/base/log"
)

// Ctx couples a context.Context with a field-carrying logger so request
// metadata (request id and the like) rides along every log line without
// threading two values through call chains.
type Ctx struct {
	context.Context
	log.Logger
}

// Background returns a Ctx over context.Background with a bare logger
func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

// WithValue stores val under key and attaches the pair to the logger too
func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

// WithValues applies WithValue for every pair in kvs
func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	out := parent
	for k, v := range kvs {
		out = WithValue(out, k, v)
	}
	return out
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	inner, cancel := context.WithCancel(parent)
	return Ctx{
		Context: inner,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	inner, cancel := context.WithTimeout(parent, timeout)
	return Ctx{
		Context: inner,
		Logger:  parent.Logger,
	}, cancel
}
