package scheduler

import (
	"context"

	"github.com/optimeet/optimeet/core/logger"
	"github.com/optimeet/optimeet/core/model"
)

// HybridPlanner seeds the annealing planner with the greedy solution and
// refines it under a reduced iteration budget. Because annealing returns its
// best-seen state and the seed is itself a candidate, the hybrid objective is
// never worse than pure greedy.
type HybridPlanner struct {
	greedy *GreedyPlanner
	anneal *AnnealingPlanner
	log    logger.Logger
}

// NewHybridPlanner builds a hybrid planner. The annealing stage defaults to a
// quarter of the standalone iteration budget; callers tune it through the
// embedded planner.
func NewHybridPlanner(cons model.Constraints, log logger.Logger) *HybridPlanner {
	anneal := NewAnnealingPlanner(cons, log)
	anneal.MaxIterations /= 4
	return &HybridPlanner{
		greedy: NewGreedyPlanner(cons, log),
		anneal: anneal,
		log:    log,
	}
}

// Annealing exposes the refinement stage for tuning.
func (p *HybridPlanner) Annealing() *AnnealingPlanner { return p.anneal }

// Name implements Planner.
func (p *HybridPlanner) Name() model.Algorithm { return model.AlgorithmHybrid }

// Plan implements Planner.
func (p *HybridPlanner) Plan(ctx context.Context, st *State) (*State, PlanStats) {
	seeded, gstats := p.greedy.Plan(ctx, st)
	p.log.Debugf("hybrid: greedy seed objective %.3f", gstats.Objective)

	refined, astats := p.anneal.Plan(ctx, seeded)
	stats := PlanStats{
		Iterations: gstats.Iterations + astats.Iterations,
		Accepted:   gstats.Accepted + astats.Accepted,
		Improved:   astats.Improved,
		Reads:      astats.Reads,
		Objective:  astats.Objective,
	}
	return refined, stats
}
