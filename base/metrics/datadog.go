package metrics

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/ensagent/base/log"
)

const (
	ddClientsSize    = 16 // needs to be 2^n
	ddClientsIdxMask = ddClientsSize - 1

	// ddRate is the rate to pass metrics to datadog agent. 1 means always
	ddRate = 1
	// buffer 10 counters before sending to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}

	// DdHost falls back to the datadog_host config key when empty
	DdHost = ""
	DdPort = 8125

	// round robin index into ddClients
	ddClientsIdx = int32(0)
	ddClients    []statsCli
)

// SetDatadogHost sets the agent host, it must be called before the first metric is bumped
func SetDatadogHost(host string) {
	DdHost = host
}

func initDDClient() {
	if DdHost == "" {
		DdHost = viper.GetString("datadog_host")
	}
	ddClients = make([]statsCli, ddClientsSize)
	if DdHost == "" {
		// no agent, metrics go to debug logs
		for i := range ddClients {
			ddClients[i] = LogClient{}
		}
		return
	}
	addr := fmt.Sprintf("%s:%d", DdHost, DdPort)
	log.Log().WithFields(log.Fields{"addr": addr, "clients": ddClientsSize}).Info("connecting to datadog agent")
	for i := range ddClients {
		cli, err := statsd.NewBuffered(addr, bufferMetrics)
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Panic("can't talk to datadog agent")
		}
		ddClients[i] = cli
	}
}

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

func nextClient() statsCli {
	initOnce.Do(initDDClient)
	return ddClients[atomic.AddInt32(&ddClientsIdx, 1)&ddClientsIdxMask]
}

// DDMetrics sends to statsd with a fixed set of base tags
type DDMetrics struct {
	ddTags []string
}

// tags never appends into ddTags itself, concurrent bumps share it
func (dm *DDMetrics) tags(kv []string) []string {
	parsed := parseTag(kv)
	res := make([]string, 0, len(dm.ddTags)+len(parsed))
	res = append(res, dm.ddTags...)
	return append(res, parsed...)
}

func report(fn, key string, val interface{}, err error) {
	if err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val, "func": fn}).Error("Bump fail")
	}
}

// BumpAvg is sent as a gauge, statsd has no plain average
func (dm *DDMetrics) BumpAvg(key string, val, sampleRate float64, tags ...string) {
	report("BumpAvg", key, val, nextClient().Gauge(key, val, dm.tags(tags), sampleRate))
}

func (dm *DDMetrics) BumpSum(key string, val, sampleRate float64, tags ...string) {
	report("BumpSum", key, val, nextClient().Count(key, int64(val), dm.tags(tags), sampleRate))
}

func (dm *DDMetrics) BumpHistogram(key string, val, sampleRate float64, tags ...string) {
	report("BumpHistogram", key, val, nextClient().Histogram(key, val, dm.tags(tags), sampleRate))
}

// BumpTime starts a timer reported in milliseconds on End
func (dm *DDMetrics) BumpTime(key string, sampleRate float64, tags ...string) Ender {
	initOnce.Do(initDDClient)
	return &ddTimeTracker{
		start:      time.Now(),
		key:        key,
		tags:       dm.tags(tags),
		sampleRate: sampleRate,
	}
}

// parseTag turns key/value pairs into key:value tags
func parseTag(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	if len(tags)%2 != 0 {
		log.Log().WithField("tags", tags).Panic("tag length needs to be multiple of 2")
	}
	arr := make([]string, len(tags)/2)
	for i := 0; i < len(tags); i += 2 {
		arr[i/2] = tags[i] + ":" + tags[i+1]
	}
	return arr
}

type ddTimeTracker struct {
	start      time.Time
	key        string
	tags       []string
	sampleRate float64
}

func (dt *ddTimeTracker) End() {
	dur := float64(time.Since(dt.start)) / float64(time.Millisecond)
	report("BumpTime", dt.key, dur, nextClient().TimeInMilliseconds(dt.key, dur, dt.tags, dt.sampleRate))
}
