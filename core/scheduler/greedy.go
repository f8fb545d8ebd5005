package scheduler

import (
	"context"
	"fmt"
	"sort"

	"github.com/optimeet/optimeet/core/logger"
	"github.com/optimeet/optimeet/core/model"
)

// GreedyPlanner performs a deterministic single-pass assignment. Requests are
// ordered by urgency, importance and submission order; each takes its best
// feasible candidate with ties broken by host identifier and slot start.
type GreedyPlanner struct {
	eval Evaluator
	cons model.Constraints
	log  logger.Logger
}

// NewGreedyPlanner returns the classical planner.
func NewGreedyPlanner(cons model.Constraints, log logger.Logger) *GreedyPlanner {
	return &GreedyPlanner{eval: NewEvaluator(cons), cons: cons, log: log}
}

// Name implements Planner.
func (p *GreedyPlanner) Name() model.Algorithm { return model.AlgorithmClassical }

// orderRequests sorts a copy of the requests by planning priority.
func (p *GreedyPlanner) orderRequests(reqs []model.MeetingRequest) []model.MeetingRequest {
	ordered := make([]model.MeetingRequest, len(reqs))
	copy(ordered, reqs)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Urgency != ordered[j].Urgency {
			return ordered[i].Urgency > ordered[j].Urgency
		}
		if p.cons.PrioritizeImportance && ordered[i].Importance != ordered[j].Importance {
			return ordered[i].Importance > ordered[j].Importance
		}
		return ordered[i].Submitted < ordered[j].Submitted
	})
	return ordered
}

// Plan implements Planner. The pass mutates and returns the given state.
func (p *GreedyPlanner) Plan(ctx context.Context, st *State) (*State, PlanStats) {
	var stats PlanStats
	for _, req := range p.orderRequests(st.Requests()) {
		if ctx.Err() != nil {
			break
		}
		if _, ok := st.Assignment(req.ID); ok {
			continue
		}
		stats.Iterations++

		var best model.Assignment
		found := false
		for _, host := range st.Hosts() {
			for _, slot := range host.Slots {
				v := p.eval.Evaluate(req, host, slot, st)
				if !v.Feasible {
					st.SetReason(req.ID, v.Reason)
					continue
				}
				// Strict improvement keeps the lowest host ID and
				// earliest slot on score ties.
				if !found || v.Score > best.Score {
					best = model.Assignment{RequestID: req.ID, HostID: host.ID, Slot: slot, Score: v.Score}
					found = true
				}
			}
		}
		if !found {
			if _, ok := st.Reason(req.ID); !ok {
				st.SetReason(req.ID, model.ReasonNoFeasibleHost)
			}
			continue
		}
		best.Explanation = fmt.Sprintf("greedy: best of candidates with score %.3f", best.Score)
		st.Assign(best)
		stats.Accepted++
	}
	stats.Objective = st.Objective(p.cons.Weights)
	p.log.Debugw("greedy pass complete", map[string]any{
		"requests":  len(st.Requests()),
		"assigned":  stats.Accepted,
		"objective": stats.Objective,
	})
	return st, stats
}
