package cache

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/domain/keys"
	"github.com/tributary-xyz/goapi/service/cache/provider"
	"github.com/tributary-xyz/goapi/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Value string `json:"value"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 64)
	ts.im = New(ServiceConfig{
		Ttl:   10 * time.Second,
		Pfx:   "testing",
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey(ts.im.pfx, k), sv, 10*time.Second))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestSet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))

	sv, _, err := ts.cache.Get(mockCtx, keys.RedisKey(ts.im.pfx, k))
	ts.NoError(err)

	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestGetByFunc() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, func() (interface{}, error) {
		return &v, nil
	}))
	ts.Equal(v, *c)

	// filled entry serves the next read without the getter
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, func() (interface{}, error) {
		ts.FailNow("getter should not run on a hit")
		return nil, nil
	}))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestDel() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))
	ts.NoError(ts.im.Del(mockCtx, k))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))
}
