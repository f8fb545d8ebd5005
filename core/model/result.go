package model

import (
	"fmt"
	"strings"
)

// Algorithm selects the planning strategy. The "quantum" name is kept for
// caller compatibility; the implementation is classical annealing.
type Algorithm string

const (
	AlgorithmClassical Algorithm = "classical"
	AlgorithmQuantum   Algorithm = "quantum"
	AlgorithmHybrid    Algorithm = "hybrid"
)

// ParseAlgorithm validates an algorithm selector string.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(strings.TrimSpace(s))) {
	case AlgorithmClassical:
		return AlgorithmClassical, nil
	case AlgorithmQuantum:
		return AlgorithmQuantum, nil
	case AlgorithmHybrid:
		return AlgorithmHybrid, nil
	}
	return "", fmt.Errorf("unknown algorithm %q", s)
}

// Reason explains why a request could not be scheduled.
type Reason string

const (
	ReasonHostTypeMismatch     Reason = "HOST_TYPE_MISMATCH"
	ReasonOutsideEventWindow   Reason = "OUTSIDE_EVENT_WINDOW"
	ReasonSlotUnavailable      Reason = "SLOT_UNAVAILABLE"
	ReasonHostCapacityExceeded Reason = "HOST_CAPACITY_EXCEEDED"
	ReasonBufferViolation      Reason = "BUFFER_VIOLATION"
	ReasonNoFeasibleHost       Reason = "NO_FEASIBLE_HOST"
)

// Specificity ranks reasons so the most informative one is reported when a
// request fails against several candidates: capacity and buffer beat
// availability, which beats type mismatch, which beats the event window.
func (r Reason) Specificity() int {
	switch r {
	case ReasonHostCapacityExceeded, ReasonBufferViolation:
		return 4
	case ReasonSlotUnavailable:
		return 3
	case ReasonHostTypeMismatch:
		return 2
	case ReasonOutsideEventWindow:
		return 1
	}
	return 0
}

// Assignment binds a request to a host and slot with its feasibility score.
type Assignment struct {
	RequestID   string   `json:"request_id"`
	HostID      string   `json:"host_id"`
	Slot        TimeSlot `json:"slot"`
	Score       float64  `json:"score"`
	Explanation string   `json:"explanation,omitempty"`
}

// UnscheduledEntry records a request that finished the run without a slot.
type UnscheduledEntry struct {
	RequestID string `json:"request_id"`
	Reason    Reason `json:"reason"`
}

// RunMetrics aggregates the outcome of one optimization run.
type RunMetrics struct {
	TotalRequests   int     `json:"total_requests"`
	Scheduled       int     `json:"scheduled"`
	Unscheduled     int     `json:"unscheduled"`
	TotalScore      float64 `json:"total_score"`
	MeanScore       float64 `json:"mean_score"`
	ScoreStdDev     float64 `json:"score_std_dev"`
	SuccessRate     float64 `json:"success_rate"`
	AvgImportance   float64 `json:"avg_importance"`
	HostUtilization float64 `json:"host_utilization"`

	// Violations counts invariant breaches found by the final validation
	// pass. Always zero for a correct planner.
	Violations int `json:"violations"`
}

// SchedulerResult is the full output contract of one Optimize call.
type SchedulerResult struct {
	RunID             string             `json:"run_id"`
	Algorithm         Algorithm          `json:"algorithm"`
	Assignments       []Assignment       `json:"assignments"`
	Unscheduled       []UnscheduledEntry `json:"unscheduled"`
	Metrics           RunMetrics         `json:"metrics"`
	ComputationTimeMs int64              `json:"computation_time_ms"`
	Explanation       string             `json:"explanation"`
}
