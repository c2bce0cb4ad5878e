package metrics

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type recorded struct {
	kind string
	name string
	tags []string
}

type recorder struct {
	sync.Mutex
	calls []recorded
}

func (r *recorder) add(kind, name string, tags []string) error {
	r.Lock()
	defer r.Unlock()
	r.calls = append(r.calls, recorded{kind: kind, name: name, tags: tags})
	return nil
}

func (r *recorder) Gauge(name string, value float64, tags []string, rate float64) error {
	return r.add("gauge", name, tags)
}

func (r *recorder) Count(name string, value int64, tags []string, rate float64) error {
	return r.add("count", name, tags)
}

func (r *recorder) Histogram(name string, value float64, tags []string, rate float64) error {
	return r.add("histogram", name, tags)
}

func (r *recorder) TimeInMilliseconds(name string, value float64, tags []string, rate float64) error {
	return r.add("time", name, tags)
}

type metricsSuite struct {
	suite.Suite

	rec *recorder
}

func (s *metricsSuite) SetupTest() {
	initOnce.Do(func() {})
	s.rec = &recorder{}
	ddClients = make([]statsCli, ddClientsSize)
	for i := range ddClients {
		ddClients[i] = s.rec
	}
}

func (s *metricsSuite) TestBumpSumPrefixesPackage() {
	New("names").BumpSum("names.check", 1, "kind", "ok")

	s.Require().Len(s.rec.calls, 1)
	call := s.rec.calls[0]
	s.Equal("count", call.kind)
	s.Equal("names.names.check", call.name)
	s.Contains(call.tags, "kind:ok")
	s.Contains(call.tags, "host:")
}

func (s *metricsSuite) TestBumpTime() {
	New("redis").BumpTime("get.time").End()

	s.Require().Len(s.rec.calls, 1)
	s.Equal("time", s.rec.calls[0].kind)
	s.Equal("redis.get.time", s.rec.calls[0].name)
}

func (s *metricsSuite) TestOddTagsDoNotPanic() {
	s.NotPanics(func() { New("avatar").BumpSum("resolve", 1, "type") })

	s.Require().Len(s.rec.calls, 1)
	s.Equal("bumpsum.panic", s.rec.calls[0].name)
}

func (s *metricsSuite) TestTagsDoNotShareBase() {
	dm := &DDMetrics{ddTags: make([]string, 1, 8)}
	a := dm.tags([]string{"k", "a"})
	b := dm.tags([]string{"k", "b"})
	s.Equal("k:a", a[1])
	s.Equal("k:b", b[1])
}

func TestMetricsSuite(t *testing.T) {
	suite.Run(t, new(metricsSuite))
}

func TestParseTag(t *testing.T) {
	assert.Nil(t, parseTag(nil))
	assert.Equal(t, []string{"a:1", "b:2"}, parseTag([]string{"a", "1", "b", "2"}))
	assert.Panics(t, func() { parseTag([]string{"a"}) })
}
