// Package query is a thin wrapper of the mongo driver that adds metrics,
// slow query logs and an optional COLLSCAN guard on reads.
package query

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/domain"
)

var (
	// ErrNotFound is returned when no document matches
	ErrNotFound = errors.New("document not found")

	// ErrDuplicateKey violates a unique index
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrCollScan rejects unindexed reads when index checks are on
	ErrCollScan = errors.New("COLLSCAN is not allowed")
)

type Mongo interface {
	Insert(context ctx.Ctx, table domain.Table, insert interface{}) error

	FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error

	// Remove returns ErrNotFound if selector matches nothing
	Remove(context ctx.Ctx, table domain.Table, selector interface{}) error

	// CustomPatch returns ErrNotFound if upsert is false and selector matches nothing
	CustomPatch(context ctx.Ctx, table domain.Table, selector, update bson.M, upsert bool) error

	// EnsureTTLIndex expires documents expireAfter past field, 0 expires at the time stored in field
	EnsureTTLIndex(context ctx.Ctx, table domain.Table, field string, expireAfter time.Duration) error
}
