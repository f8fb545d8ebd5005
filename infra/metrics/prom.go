package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/optimeet/optimeet/core/metrics"
)

// PromSink records optimization outcomes as Prometheus metrics.
type PromSink struct {
	runs        *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	scheduled   *prometheus.GaugeVec
	unscheduled *prometheus.GaugeVec
	objective   *prometheus.GaugeVec
}

// NewPromSink registers optimizer metrics on the default Prometheus
// registerer. The HTTP endpoint is started separately with StartPromServer.
func NewPromSink() (coremetrics.MetricsSink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global Prometheus registerer.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.MetricsSink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	runs := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "optimizer_runs_total",
		Help: "Total number of optimization runs",
	}, []string{"algorithm"})
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "optimizer_computation_seconds",
		Help:    "Wall-clock time spent planning",
		Buckets: prometheus.DefBuckets,
	}, []string{"algorithm"})
	scheduled := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "optimizer_scheduled_requests",
		Help: "Requests scheduled in the last run",
	}, []string{"algorithm"})
	unscheduled := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "optimizer_unscheduled_requests",
		Help: "Requests left unscheduled in the last run",
	}, []string{"algorithm"})
	objective := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "optimizer_objective_score",
		Help: "Objective value of the last run",
	}, []string{"algorithm"})

	for _, c := range []prometheus.Collector{runs, duration, scheduled, unscheduled, objective} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return nil, err
			}
		}
	}
	return &PromSink{runs: runs, duration: duration, scheduled: scheduled, unscheduled: unscheduled, objective: objective}, nil
}

// RecordRun implements MetricsSink.
func (s *PromSink) RecordRun(res coremetrics.RunResult) error {
	alg := string(res.Algorithm)
	s.runs.WithLabelValues(alg).Inc()
	s.duration.WithLabelValues(alg).Observe(res.Duration.Seconds())
	s.scheduled.WithLabelValues(alg).Set(float64(res.Scheduled))
	s.unscheduled.WithLabelValues(alg).Set(float64(res.Unscheduled))
	s.objective.WithLabelValues(alg).Set(res.Objective)
	return nil
}
