package metrics

import (
	"time"

	"github.com/optimeet/optimeet/core/model"
)

// RunResult represents one finished optimization run to be recorded.
type RunResult struct {
	RunID         string
	Algorithm     model.Algorithm
	TotalRequests int
	Scheduled     int
	Unscheduled   int
	TotalScore    float64
	Objective     float64
	Iterations    int
	Duration      time.Duration
	Time          time.Time
}

// MetricsSink records optimization outcomes for observability purposes.
type MetricsSink interface {
	RecordRun(res RunResult) error
}

// AssignmentRecord is a single confirmed assignment of a run.
type AssignmentRecord struct {
	RunID     string
	Algorithm model.Algorithm
	RequestID string
	HostID    string
	SlotStart time.Time
	Score     float64
}

// AssignmentRecorder is implemented by sinks able to record individual
// assignments in addition to run summaries.
type AssignmentRecorder interface {
	RecordAssignments(recs []AssignmentRecord) error
}

// NopSink implements MetricsSink with no-op methods.
type NopSink struct{}

func (NopSink) RecordRun(RunResult) error                  { return nil }
func (NopSink) RecordAssignments([]AssignmentRecord) error { return nil }
