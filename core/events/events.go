package events

import (
	"time"

	"github.com/optimeet/optimeet/core/model"
)

// RunStartedEvent is published when an optimization run begins.
type RunStartedEvent struct {
	RunID     string
	Algorithm model.Algorithm
	Requests  int
	Hosts     int
}

// RunCompletedEvent is published when a run finishes successfully. It carries
// enough detail for bus subscribers to record the run without access to the
// full result.
type RunCompletedEvent struct {
	RunID       string
	Algorithm   model.Algorithm
	Scheduled   int
	Unscheduled int
	TotalScore  float64
	Objective   float64
	Iterations  int
	Duration    time.Duration
}

// StrategyEvent is emitted when a planner is selected for a run.
type StrategyEvent struct {
	Algorithm model.Algorithm
	Action    string
}
