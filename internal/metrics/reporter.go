// Package metrics reports the tally root scope through the application log.
package metrics

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/uber-go/tally"
)

type capabilities struct{}

func (capabilities) Reporting() bool { return true }
func (capabilities) Tagging() bool { return true }

// LogReporter writes every reported value as a debug log entry.
type LogReporter struct {
	log *logrus.Entry
}

func NewLogReporter(logger *logrus.Logger) *LogReporter {
	return &LogReporter{log: logger.WithField("prefix", "metrics")}
}

func (r *LogReporter) entry(name string, tags map[string]string) *logrus.Entry {
	e := r.log.WithField("metric", name)
	for k, v := range tags {
		e = e.WithField(k, v)
	}

	return e
}

func (r *LogReporter) Capabilities() tally.Capabilities {
	return capabilities{}
}

func (r *LogReporter) Flush() {}

func (r *LogReporter) ReportCounter(name string, tags map[string]string, value int64) {
	r.entry(name, tags).WithField("value", value).Debug("counter")
}

func (r *LogReporter) ReportGauge(name string, tags map[string]string, value float64) {
	r.entry(name, tags).WithField("value", value).Debug("gauge")
}

func (r *LogReporter) ReportTimer(name string, tags map[string]string, interval time.Duration) {
	r.entry(name, tags).WithField("value", interval).Debug("timer")
}

func (r *LogReporter) ReportHistogramValueSamples(name string, tags map[string]string, _ tally.Buckets, lower, upper float64, samples int64) {
	r.entry(name, tags).WithFields(logrus.Fields{"lower": lower, "upper": upper, "samples": samples}).Debug("histogram")
}

func (r *LogReporter) ReportHistogramDurationSamples(name string, tags map[string]string, _ tally.Buckets, lower, upper time.Duration, samples int64) {
	r.entry(name, tags).WithFields(logrus.Fields{"lower": lower, "upper": upper, "samples": samples}).Debug("histogram")
}

// NewRootScope builds the process scope. The closer stops reporting.
func NewRootScope(prefix string, interval time.Duration, reporter tally.StatsReporter) (tally.Scope, io.Closer) {
	return tally.NewRootScope(tally.ScopeOptions{
		Prefix:    prefix,
		Reporter:  reporter,
		Separator: "_",
	}, interval)
}
