package query

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/x-xyz/ensagent/base/ctx"
	"github.com/x-xyz/ensagent/base/database/mongoclient"
	"github.com/x-xyz/ensagent/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.Table("query_test")
	dbName    = "testdb"
)

type querySuite struct {
	suite.Suite
	im *impl
}

func (q *querySuite) SetupTest() {
	client, err := mongoclient.Connect(ctx.Background(), mongoclient.Config{
		URI:        os.Getenv("ENSAGENT_TEST_MONGO_URI"),
		AuthDBName: "admin",
		DBName:     dbName,
	})
	q.Require().NoError(err)
	q.im = &impl{
		client:     client,
		checkIndex: false,
	}
	q.Require().NoError(q.im.collection(mockTable).Drop(ctx.Background()))
}

func TestQuerySuite(t *testing.T) {
	if os.Getenv("ENSAGENT_TEST_MONGO_URI") == "" {
		t.Skip("ENSAGENT_TEST_MONGO_URI is not set")
	}
	suite.Run(t, new(querySuite))
}

type dummy struct {
	Id    string `bson:"_id"`
	Value string `bson:"value"`
}

func (q *querySuite) TestInsertFindRemove() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{Id: "a", Value: "1"}))
	q.Equal(ErrDuplicateKey, q.im.Insert(mockCTX, mockTable, dummy{Id: "a", Value: "2"}))

	res := dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"_id": "a"}, &res))
	q.Equal("1", res.Value)

	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"_id": "b"}, &res))

	q.Require().NoError(q.im.Remove(mockCTX, mockTable, bson.M{"_id": "a"}))
	q.Equal(ErrNotFound, q.im.Remove(mockCTX, mockTable, bson.M{"_id": "a"}))
}

func (q *querySuite) TestCustomPatch() {
	q.Require().NoError(q.im.Insert(mockCTX, mockTable, dummy{Id: "a", Value: "1"}))

	err := q.im.CustomPatch(mockCTX, mockTable, bson.M{"_id": "a", "value": "1"}, bson.M{"$set": bson.M{"value": "2"}}, false)
	q.Require().NoError(err)

	// the guard no longer matches
	err = q.im.CustomPatch(mockCTX, mockTable, bson.M{"_id": "a", "value": "1"}, bson.M{"$set": bson.M{"value": "3"}}, false)
	q.Equal(ErrNotFound, err)
}

func (q *querySuite) TestEnsureTTLIndex() {
	q.Require().NoError(q.im.EnsureTTLIndex(mockCTX, mockTable, "expireAt", 0))
	// creating the same index twice is a no-op
	q.Require().NoError(q.im.EnsureTTLIndex(mockCTX, mockTable, "expireAt", 0*time.Second))
}
