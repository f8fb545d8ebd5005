package scheduler

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/optimeet/optimeet/core/model"
)

// assemble converts the winning state into the output contract after
// re-checking the planner invariants. A non-empty violation list is a planner
// bug and surfaces as an InvariantError instead of a result.
func assemble(runID string, alg model.Algorithm, st *State, eval Evaluator, cons model.Constraints, stats PlanStats, elapsed time.Duration) (*model.SchedulerResult, error) {
	if violations := validate(st, cons); len(violations) > 0 {
		return nil, &InvariantError{Violations: violations}
	}

	assignments := st.Assignments()
	var unscheduled []model.UnscheduledEntry
	for _, req := range st.Requests() {
		if _, ok := st.Assignment(req.ID); ok {
			continue
		}
		unscheduled = append(unscheduled, model.UnscheduledEntry{
			RequestID: req.ID,
			Reason:    unscheduledReason(req, st, eval),
		})
	}

	res := &model.SchedulerResult{
		RunID:             runID,
		Algorithm:         alg,
		Assignments:       assignments,
		Unscheduled:       unscheduled,
		Metrics:           buildMetrics(st, cons, assignments),
		ComputationTimeMs: elapsed.Milliseconds(),
	}
	res.Explanation = fmt.Sprintf(
		"algorithm=%s iterations=%d reads=%d objective=%.2f scheduled=%d/%d elapsed=%s",
		alg, stats.Iterations, stats.Reads, stats.Objective,
		res.Metrics.Scheduled, res.Metrics.TotalRequests, elapsed.Round(time.Millisecond),
	)
	return res, nil
}

// unscheduledReason prefers the reason recorded during the search; when the
// planner never probed the request (possible for pure annealing runs), the
// candidates are re-derived so the taxonomy stays consistent across planners.
func unscheduledReason(req model.MeetingRequest, st *State, eval Evaluator) model.Reason {
	if r, ok := st.Reason(req.ID); ok {
		return r
	}
	probe := st.Clone()
	if cands := eval.candidates(req, probe); len(cands) > 0 {
		// A feasible candidate remained but the search did not take it.
		return model.ReasonNoFeasibleHost
	}
	if r, ok := probe.Reason(req.ID); ok {
		return r
	}
	return model.ReasonNoFeasibleHost
}

// validate re-checks every invariant the planners must uphold: no
// double-booked or buffer-violating slots per host, and no host above its
// daily cap.
func validate(st *State, cons model.Constraints) []string {
	var violations []string
	for _, host := range st.Hosts() {
		busy := st.BusySlots(host.ID)
		for i := 0; i < len(busy); i++ {
			for j := i + 1; j < len(busy); j++ {
				if busy[i].ConflictsWith(busy[j], cons.Buffer) {
					violations = append(violations, fmt.Sprintf(
						"host %s: slots %s and %s conflict",
						host.ID, busy[i].Start.Format(time.RFC3339), busy[j].Start.Format(time.RFC3339)))
				}
			}
		}
		perDay := make(map[string]int)
		for _, s := range busy {
			perDay[s.DayKey()]++
		}
		cap := host.CapFor(cons.DailyCap)
		for day, n := range perDay {
			if n > cap {
				violations = append(violations, fmt.Sprintf("host %s: %d meetings on %s exceeds cap %d", host.ID, n, day, cap))
			}
		}
	}
	return violations
}

func buildMetrics(st *State, cons model.Constraints, assignments []model.Assignment) model.RunMetrics {
	m := model.RunMetrics{
		TotalRequests: len(st.Requests()),
		Scheduled:     len(assignments),
	}
	m.Unscheduled = m.TotalRequests - m.Scheduled

	if len(assignments) > 0 {
		scores := make([]float64, len(assignments))
		var importance float64
		for i, a := range assignments {
			scores[i] = a.Score
			m.TotalScore += a.Score
			if req, ok := st.RequestByID(a.RequestID); ok {
				importance += req.Importance
			}
		}
		m.MeanScore = stat.Mean(scores, nil)
		if len(scores) > 1 {
			m.ScoreStdDev = stat.StdDev(scores, nil)
		}
		m.AvgImportance = importance / float64(len(assignments))
	}
	if m.TotalRequests > 0 {
		m.SuccessRate = float64(m.Scheduled) / float64(m.TotalRequests)
	}

	open := 0
	for _, host := range st.Hosts() {
		for _, slot := range host.Slots {
			if !slot.Blocked && cons.WithinEvent(slot) {
				open++
			}
		}
	}
	if open > 0 {
		m.HostUtilization = float64(m.Scheduled) / float64(open)
	}
	return m
}
