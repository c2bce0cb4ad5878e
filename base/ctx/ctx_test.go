package ctx

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type ctxSuite struct {
	suite.Suite
}

func TestCtxSuite(t *testing.T) {
	suite.Run(t, new(ctxSuite))
}

func (s *ctxSuite) TestWithValues() {
	c := WithValues(Background(), map[string]interface{}{
		"label":   "alice",
		"network": "sepolia",
	})
	s.Equal("alice", c.Value("label"))
	s.Equal("sepolia", c.Value("network"))
}

func (s *ctxSuite) TestRequestID() {
	s.Equal("", RequestID(Background()))
	s.Equal("req-1", RequestID(WithRequestID(Background(), "req-1")))

	bg := Background()
	s.Equal(bg, WithRequestID(bg, ""))
}

func (s *ctxSuite) TestFromKeepsParentCancellation() {
	parent, cancel := context.WithCancel(context.Background())
	c := From(parent)
	cancel()
	s.ErrorIs(c.Err(), context.Canceled)
}

func (s *ctxSuite) TestWithCancel() {
	c, cancel := WithCancel(WithRequestID(Background(), "req-2"))
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()
	select {
	case <-c.Done():
	case <-time.After(time.Second):
		s.Fail("not cancelled")
	}
	s.Equal("req-2", RequestID(c))
}

func (s *ctxSuite) TestTimeout() {
	c, cancel := WithTimeout(Background(), 10*time.Millisecond)
	defer cancel()
	<-c.Done()
	s.ErrorIs(c.Err(), context.DeadlineExceeded)
}
