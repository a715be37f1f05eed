package primitive

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/tributary-xyz/goapi/base/ctx"
	"github.com/tributary-xyz/goapi/service/cache/provider"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	im *impl
}

func (ts *testsuite) SetupTest() {
	ts.im = NewPrimitive("test", 64).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.im.cache.Clear()
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSetGet() {
	k := "key"
	v := []byte("value")

	ts.NoError(ts.im.Set(mockCtx, k, v, 10*time.Second))

	r, ttl, err := ts.im.Get(mockCtx, k)
	ts.NoError(err)
	ts.Equal(v, r)
	ts.True(ttl > 0)
	ts.True(ttl <= 10*time.Second)
}

func (ts *testsuite) TestGetMiss() {
	_, _, err := ts.im.Get(mockCtx, "missing")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestExpiry() {
	k := "key"

	ts.NoError(ts.im.Set(mockCtx, k, []byte("value"), time.Second))

	time.Sleep(1100 * time.Millisecond)

	_, _, err := ts.im.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestDel() {
	k := "key"

	ts.NoError(ts.im.Set(mockCtx, k, []byte("value"), 10*time.Second))
	ts.NoError(ts.im.Del(mockCtx, k))

	_, _, err := ts.im.Get(mockCtx, k)
	ts.Equal(provider.ErrNotFound, err)
}
