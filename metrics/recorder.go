// Package metrics records contract-check results as Prometheus metrics, so that scheduled runs of
// the suite can be scraped through a node_exporter textfile collector.
package metrics

import (
	"time"

	"github.com/apicheck/api-contract-tests/checker"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "contract"

const (
	resultSuccess = "success"
	resultFailure = "failure"
	resultError   = "error"
)

// Recorder implements checker.Observer. Each Recorder owns its own registry, so several can exist
// in one process.
type Recorder struct {
	registry *prometheus.Registry
	checks   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ checker.Observer = (*Recorder)(nil)

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		checks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checks_total",
			Help:      "Number of contract checks performed, by check and result.",
		}, []string{"check", "result"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "check_duration_seconds",
			Help:      "Time taken by each contract check, including all HTTP requests it made.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"check"}),
	}
	r.registry.MustRegister(r.checks, r.duration)
	return r
}

func (r *Recorder) ObserveCheck(check string, verdict checker.Verdict, err error, elapsed time.Duration) {
	result := resultFailure
	switch {
	case err != nil:
		result = resultError
	case verdict.Success:
		result = resultSuccess
	}
	r.checks.WithLabelValues(check, result).Inc()
	r.duration.WithLabelValues(check).Observe(elapsed.Seconds())
}

// WriteTextfile writes all metrics to path in the Prometheus text format. The file is replaced
// atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
