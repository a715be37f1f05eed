package query

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/base/database/mongoclient"
	"github.com/tributary-xyz/goapi/base/log"
	"github.com/tributary-xyz/goapi/domain"
)

const (
	queryMaxTime = 20 * time.Second
)

var (
	timeNow = time.Now
)

type impl struct {
	client     *mongoclient.Client
	checkIndex bool
}

// New initializes an impl
func New(client *mongoclient.Client, checkIndex bool) Mongo {
	return &impl{
		client:     client,
		checkIndex: checkIndex,
	}
}

func (im *impl) logerr(context ctx.Ctx, msg string, err error) {
	context.WithFields(log.Fields{"err": err}).Error(msg)
}

func (im *impl) collection(table domain.Table) *mongo.Collection {
	return im.client.Database(im.client.DbName).Collection(string(table))
}

func (im *impl) Insert(context ctx.Ctx, table domain.Table, insert interface{}) error {
	defer slowLog(context, string(table), "insert", nil, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":  table,
		"insert": insert,
	})

	if _, err := im.collection(table).InsertOne(context, insert); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		im.logerr(context, "Insert: InsertOne failed", err)
		return err
	}

	return nil
}

func (im *impl) FindOne(context ctx.Ctx, table domain.Table, query, result interface{}) error {
	defer slowLog(context, string(table), "findone", query, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table": table,
		"query": query,
	})

	if err := im.checkQueryIndex(context, string(table), "find", bson.E{Key: "filter", Value: query}); err != nil {
		im.logerr(context, "checkQueryIndex failed", err)
		return err
	}

	findOneOpts := options.FindOne().SetMaxTime(queryMaxTime)
	res := im.collection(table).FindOne(context, query, findOneOpts)

	if err := res.Decode(result); err != nil {
		if err == mongo.ErrNoDocuments {
			return ErrNotFound
		}
		im.logerr(context, "FindOne: FindOne error", err)
		return err
	}
	return nil
}

func (im *impl) Count(context ctx.Ctx, table domain.Table, selector interface{}) (n int, err error) {
	defer slowLog(context, string(table), "count", selector, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
	})

	if err := im.checkQueryIndex(context, string(table), "count", bson.E{Key: "query", Value: selector}); err != nil {
		im.logerr(context, "checkQueryIndex failed", err)
		return 0, err
	}

	opts := options.Count().SetMaxTime(queryMaxTime)
	count, err := im.collection(table).CountDocuments(context, selector, opts)
	if err != nil {
		im.logerr(context, "Count: CountDocuments failed", err)
		return 0, err
	}
	return int(count), nil
}

func (im *impl) Upsert(context ctx.Ctx, table domain.Table, selector, update interface{}) error {
	defer slowLog(context, string(table), "upsert", selector, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
		"update":   update,
	})

	replaceOpts := options.Replace().SetUpsert(true)
	if _, err := im.collection(table).ReplaceOne(context, selector, update, replaceOpts); err != nil {
		im.logerr(context, "Upsert: ReplaceOne failed", err)
		return err
	}
	return nil
}

func (im *impl) getSortOption(context ctx.Ctx, sortStrings ...string) bson.D {
	res := bson.D{}
	for _, sort := range sortStrings {
		if sort == "" {
			continue
		}
		if sort[0] == '-' {
			res = append(res, bson.E{Key: sort[1:], Value: -1})
		} else {
			res = append(res, bson.E{Key: sort, Value: 1})
		}
	}

	return res
}

func (im *impl) Search(context ctx.Ctx, table domain.Table, offset, limit int, sort string, query, results interface{}) error {
	defer slowLog(context, string(table), "search", query, sort)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table": table,
		"query": query,
	})

	if err := im.checkQueryIndex(context, string(table), "find", bson.E{Key: "filter", Value: query}); err != nil {
		im.logerr(context, "checkQueryIndex failed", err)
		return err
	}

	findOpts := options.Find().SetMaxTime(queryMaxTime)
	findOpts.SetLimit(int64(limit)).SetSkip(int64(offset))
	sortOpt := im.getSortOption(context, sort)
	if len(sortOpt) > 0 {
		findOpts.SetSort(sortOpt)
	}
	cursor, err := im.collection(table).Find(context, query, findOpts)
	if err != nil {
		im.logerr(context, "Search: Find failed", err)
		return err
	}
	defer cursor.Close(context)

	if err := cursor.All(context, results); err != nil {
		im.logerr(context, "Search: cursor.All failed", err)
		return err
	}
	return nil
}

func (im *impl) Remove(context ctx.Ctx, table domain.Table, selector interface{}) error {
	defer slowLog(context, string(table), "remove", selector, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
	})

	if deletedRes, err := im.collection(table).DeleteOne(context, selector); err != nil {
		im.logerr(context, "Remove: DeleteOne failed", err)
		return err
	} else if deletedRes.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (im *impl) RemoveAll(context ctx.Ctx, table domain.Table, selector interface{}) (int64, error) {
	defer slowLog(context, string(table), "removeAll", selector, nil)()

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
	})

	deletedRes, err := im.collection(table).DeleteMany(context, selector)
	if err != nil {
		im.logerr(context, "RemoveAll: DeleteMany failed", err)
		return 0, err
	}
	return deletedRes.DeletedCount, nil
}

func (im *impl) Patch(context ctx.Ctx, table domain.Table, selector, update interface{}, ops ...PatchOp) error {
	defer slowLog(context, string(table), "patch", selector, nil)()

	o := patchOp{}
	for _, op := range ops {
		op(&o)
	}

	context = ctx.WithValues(context, map[string]interface{}{
		"table":    table,
		"selector": selector,
		"update":   update,
	})

	set := bson.M{"$set": update}

	if o.patchMany {
		res, err := im.collection(table).UpdateMany(context, selector, set)
		if err != nil {
			im.logerr(context, "Patch: UpdateMany failed", err)
			return err
		}
		if res.MatchedCount == 0 {
			return ErrNotFound
		}
		return nil
	}

	res, err := im.collection(table).UpdateOne(context, selector, set)
	if err != nil {
		im.logerr(context, "Patch: UpdateOne failed", err)
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func slowLog(context ctx.Ctx, table, action string, query interface{}, sort interface{}) func() {
	start := timeNow()
	threshold := int64(500)

	return func() {
		elapsed := time.Since(start)
		elapsedMs := elapsed.Nanoseconds() / time.Millisecond.Nanoseconds()
		if elapsedMs >= threshold {
			context.WithFields(log.Fields{
				"table":      table,
				"action":     action,
				"startTime":  start.Unix(),
				"durationMs": elapsedMs,
				"query":      query,
				"sort":       sort,
			}).Warn("mongo slowlog")
		}
	}
}

func (im *impl) checkQueryIndex(context ctx.Ctx, table string, action string, query bson.E) error {
	if !im.checkIndex {
		return nil
	}
	// reference: https://docs.mongodb.com/manual/reference/command/explain/
	res := im.client.Database(im.client.DbName).RunCommand(context, bson.D{
		bson.E{
			Key: "explain",
			Value: bson.D{
				bson.E{Key: action, Value: table},
				query,
			},
		},
		bson.E{
			Key:   "verbosity",
			Value: "queryPlanner",
		},
	})

	var m bson.M
	if err := res.Decode(&m); err != nil {
		context.WithField("err", err).Warn("checkQueryIndex decode failed")
		return nil
	}

	// We only check if `COLLSCAN` is in `m` as string since the data structure
	// of `m` is not consistent for all environment.
	if strings.Contains(fmt.Sprintf("%v", m), "COLLSCAN") {
		context.WithField("query", query).Warn("COLLSCAN")
		return ErrCollScan
	}
	return nil
}
