package query

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/topology"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/database/mongoclient"
	"github.com/x-xyz/ensagent/base/log"
	"github.com/x-xyz/ensagent/base/metrics"
	"github.com/x-xyz/ensagent/domain"
)

const (
	queryMaxTime    = 20 * time.Second
	slowThresholdMs = int64(500)
)

var (
	timeNow = time.Now
	met     = metrics.New("query")
)

type impl struct {
	client     *mongoclient.Client
	checkIndex bool
}

// New wraps client, checkIndex explains every read and rejects collection scans
func New(client *mongoclient.Client, checkIndex bool) Mongo {
	return &impl{
		client:     client,
		checkIndex: checkIndex,
	}
}

func (im *impl) collection(table domain.Table) *mongo.Collection {
	return im.client.Database(im.client.DbName).Collection(string(table))
}

// begin scopes context to one operation, the returned func records time and slow logs
func begin(context ctx.Ctx, table domain.Table, action string, query interface{}) (ctx.Ctx, func()) {
	start := timeNow()
	timer := met.BumpTime("time", "func", action, "table", string(table))
	fields := map[string]interface{}{"table": table}
	if query != nil {
		fields["query"] = query
	}
	context = ctx.WithValues(context, fields)
	return context, func() {
		timer.End()
		if elapsedMs := timeNow().Sub(start).Milliseconds(); elapsedMs >= slowThresholdMs {
			met.BumpSum("mongo.slowlog", 1, "table", string(table), "action", action)
			context.WithFields(log.Fields{
				"action":     action,
				"startTime":  start.Unix(),
				"durationMs": elapsedMs,
			}).Warn("mongo slowlog")
		}
	}
}

func logerr(context ctx.Ctx, msg string, err error) {
	var connErr topology.ConnectionError
	if errors.As(err, &connErr) {
		met.BumpSum("conn.err", 1)
	}
	context.WithField("err", err).Error(msg)
}

func (im *impl) Insert(context ctx.Ctx, table domain.Table, insert interface{}) error {
	context, end := begin(context, table, "insert", nil)
	defer end()

	if _, err := im.collection(table).InsertOne(context, insert); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		logerr(context, "InsertOne failed", err)
		return err
	}
	return nil
}

func (im *impl) FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error {
	context, end := begin(context, table, "findone", query)
	defer end()

	if err := im.checkQueryIndex(context, string(table), "find", bson.E{Key: "filter", Value: query}); err != nil {
		return err
	}
	res := im.collection(table).FindOne(context, query, options.FindOne().SetMaxTime(queryMaxTime))
	if err := res.Decode(result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrNotFound
		}
		logerr(context, "FindOne failed", err)
		return err
	}
	return nil
}

func (im *impl) Remove(context ctx.Ctx, table domain.Table, selector interface{}) error {
	context, end := begin(context, table, "remove", selector)
	defer end()

	res, err := im.collection(table).DeleteOne(context, selector)
	if err != nil {
		logerr(context, "DeleteOne failed", err)
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) CustomPatch(context ctx.Ctx, table domain.Table, selector, update bson.M, upsert bool) error {
	context, end := begin(context, table, "customupdate", selector)
	defer end()

	res, err := im.collection(table).UpdateOne(context, selector, update, options.Update().SetUpsert(upsert))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		logerr(context, "UpdateOne failed", err)
		return err
	}
	if res.MatchedCount == 0 && res.UpsertedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) EnsureTTLIndex(context ctx.Ctx, table domain.Table, field string, expireAfter time.Duration) error {
	context, end := begin(context, table, "ensureindex", nil)
	defer end()

	model := mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(int32(expireAfter / time.Second)),
	}
	if _, err := im.collection(table).Indexes().CreateOne(context, model); err != nil {
		logerr(context, "Indexes.CreateOne failed", err)
		return err
	}
	return nil
}

// checkQueryIndex runs explain on the query, ref: https://docs.mongodb.com/manual/reference/command/explain/
func (im *impl) checkQueryIndex(context ctx.Ctx, table string, action string, query bson.E) error {
	if !im.checkIndex {
		return nil
	}
	res := im.client.Database(im.client.DbName).RunCommand(context, bson.D{
		{Key: "explain", Value: bson.D{{Key: action, Value: table}, query}},
		{Key: "verbosity", Value: "queryPlanner"},
	})

	var m bson.M
	if err := res.Decode(&m); err != nil {
		context.WithField("err", err).Warn("checkQueryIndex decode failed")
		met.BumpSum("checkQueryIndex.err", 1)
		return nil
	}
	// the explain layout differs between deployments, only the stage name is stable
	if strings.Contains(fmt.Sprintf("%v", m), "COLLSCAN") {
		context.Warn("COLLSCAN")
		return ErrCollScan
	}
	return nil
}
