/*Package metrics wraps datadog-go to faciliate metric recording
Following are naming convention of metric:
- Internal process time: *.time
- External latency: *.latency
- Error: *.err
*/
package metrics

import (
	"strings"
	"time"

	"github.com/x-xyz/ensagent/base/env"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		datadog: DDMetrics{
			ddTags: []string{
				// using host removes all tags associated with host
				// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
				"host:",
				"pod:" + env.PodName(),
				"env:" + env.EnvName(),
				"app:" + env.AppName(),
			},
		},
	}
}

// Metrics prefixes every key with the package name and never lets a bump panic escape
type Metrics struct {
	pkgName string
	datadog DDMetrics
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + `.` + key
}

// recoverBump reports a panicking bump as <kind>.panic instead of crashing the caller
func (mt *Metrics) recoverBump(kind, key string, tags []string) {
	if err := recover(); err != nil {
		mt.datadog.BumpSum(kind+".panic", 1, ddRate, "tag", mt.key(key)+"#"+strings.Join(tags, "#"))
	}
}

// BumpAvg bumps the average for the given key.
func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumpavg", key, tags)
	mt.datadog.BumpAvg(mt.key(key), val, ddRate, tags...)
}

// BumpSum bumps the sum for the given key.
func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumpsum", key, tags)
	mt.datadog.BumpSum(mt.key(key), val, ddRate, tags...)
}

// BumpHistogram bumps the histogram for the given key.
func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.recoverBump("bumphistogram", key, tags)
	mt.datadog.BumpHistogram(mt.key(key), val, ddRate, tags...)
}

// BumpTime starts a timer, End records it:
//
//	defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	defer mt.recoverBump("bumptime", key, tags)
	return &timeTracker{
		start: time.Now(),
		end:   mt.datadog.BumpTime(mt.key(key), ddRate, tags...),
		panicHandler: func() {
			mt.recoverBump("bumptime", key, tags)
		},
	}
}

type timeTracker struct {
	start        time.Time
	end          Ender
	panicHandler func()
}

func (t *timeTracker) End() {
	defer t.panicHandler()
	t.end.End()
}
