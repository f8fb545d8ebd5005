package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	coremetrics "github.com/optimeet/optimeet/core/metrics"
	"github.com/optimeet/optimeet/core/model"
)

func TestPromSink_RecordRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink, err := NewPromSinkWithRegistry(reg)
	if err != nil {
		t.Fatalf("new sink: %v", err)
	}
	res := coremetrics.RunResult{
		RunID:       "run1",
		Algorithm:   model.AlgorithmQuantum,
		Scheduled:   5,
		Unscheduled: 2,
		Objective:   3.4,
		Duration:    100 * time.Millisecond,
	}
	if err := sink.RecordRun(res); err != nil {
		t.Fatalf("record: %v", err)
	}
	ps := sink.(*PromSink)
	if got := testutil.ToFloat64(ps.runs.WithLabelValues("quantum")); got != 1 {
		t.Errorf("runs counter = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ps.scheduled.WithLabelValues("quantum")); got != 5 {
		t.Errorf("scheduled gauge = %v, want 5", got)
	}
	if got := testutil.ToFloat64(ps.objective.WithLabelValues("quantum")); got != 3.4 {
		t.Errorf("objective gauge = %v, want 3.4", got)
	}
}

func TestPromSink_DoubleRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("first registration: %v", err)
	}
	if _, err := NewPromSinkWithRegistry(reg); err != nil {
		t.Fatalf("second registration should reuse collectors: %v", err)
	}
}
