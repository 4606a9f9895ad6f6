// Package metrics counts evaluations for the running session.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

// OpNone labels evaluations of expressions that were not recognized, so no
// operation applies.
const OpNone = "none"

// Recorder holds the session's collectors on a private registry.
type Recorder struct {
	reg      *prometheus.Registry
	evals    *prometheus.CounterVec
	duration prometheus.Histogram
	history  prometheus.Gauge
}

// New creates a recorder with its own registry.
func New() *Recorder {
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		evals: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "deskcalc",
				Name:      "evaluations_total",
				Help:      "Evaluations by operation and outcome.",
			},
			[]string{"op", "outcome"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "deskcalc",
				Name:      "evaluation_duration_seconds",
				Help:      "Time from submitting an expression to its result.",
				Buckets:   prometheus.ExponentialBuckets(1e-7, 10, 6),
			},
		),
		history: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "deskcalc",
				Name:      "history_entries",
				Help:      "Entries in the session history.",
			},
		),
	}
	r.reg.MustRegister(r.evals, r.duration, r.history)
	return r
}

// Observe records one evaluation. op is the operation symbol, or OpNone.
// outcome is "ok" or an error kind.
func (r *Recorder) Observe(op, outcome string, d time.Duration) {
	if r == nil {
		return
	}
	if op == "" {
		op = OpNone
	}
	r.evals.WithLabelValues(op, outcome).Inc()
	r.duration.Observe(d.Seconds())
}

// SetHistory records the current history length.
func (r *Recorder) SetHistory(n int) {
	if r == nil {
		return
	}
	r.history.Set(float64(n))
}

// Registry returns the registry holding the recorder's collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// WriteText writes every metric in the Prometheus text exposition format.
func (r *Recorder) WriteText(w io.Writer) error {
	mfs, err := r.reg.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
