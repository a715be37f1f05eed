package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type testsuite struct {
	suite.Suite
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestWithValue() {
	c := WithValue(Background(), "requestID", "abc-123")
	ts.Equal("abc-123", c.Value("requestID"))
}

func (ts *testsuite) TestWithValueDoesNotTouchParent() {
	parent := Background()
	_ = WithValue(parent, "k", "v")
	ts.Nil(parent.Value("k"))
}

func (ts *testsuite) TestWithValues() {
	c := WithValues(Background(), map[string]interface{}{
		"chainId": int32(1),
		"token":   "0xabc",
	})
	ts.Equal(int32(1), c.Value("chainId"))
	ts.Equal("0xabc", c.Value("token"))
}

func (ts *testsuite) TestWithCancel() {
	c, cancel := WithCancel(Background())
	cancel()
	select {
	case <-c.Done():
	case <-time.After(100 * time.Millisecond):
		ts.Fail("cancel did not propagate")
	}
}

func (ts *testsuite) TestWithTimeout() {
	c, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()
	select {
	case <-c.Done():
		ts.ErrorIs(c.Err(), context.DeadlineExceeded)
	case <-time.After(time.Second):
		ts.Fail("timeout did not fire")
	}
}
