package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/optimeet/optimeet/core/logger"
	"github.com/optimeet/optimeet/core/model"
)

// Planner is the common capability of the three search strategies. Plan
// consumes a fresh (or seeded) state and returns the final assignment state;
// it never fails, timeouts simply cut the search short.
type Planner interface {
	Name() model.Algorithm
	Plan(ctx context.Context, st *State) (*State, PlanStats)
}

// PlanStats summarizes how a planner spent its budget.
type PlanStats struct {
	Iterations int
	Accepted   int
	Improved   int
	Reads      int
	Objective  float64
}

// Tuning carries the algorithm-specific knobs of one run. Zero values fall
// back to the planner defaults.
type Tuning struct {
	MaxIterations    int           `json:"max_iterations"`
	RefineIterations int           `json:"refine_iterations"`
	Timeout          time.Duration `json:"timeout"`
	Seed             int64         `json:"seed"`
	NumReads         int           `json:"num_reads"`
}

// NewPlanner constructs the planner for the requested algorithm.
func NewPlanner(alg model.Algorithm, cons model.Constraints, tn Tuning, log logger.Logger) (Planner, error) {
	switch alg {
	case model.AlgorithmClassical:
		return NewGreedyPlanner(cons, log), nil
	case model.AlgorithmQuantum:
		p := NewAnnealingPlanner(cons, log)
		applyTuning(p, tn, tn.MaxIterations)
		return p, nil
	case model.AlgorithmHybrid:
		p := NewHybridPlanner(cons, log)
		applyTuning(p.Annealing(), tn, tn.RefineIterations)
		return p, nil
	}
	return nil, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidConfig, alg)
}

func applyTuning(p *AnnealingPlanner, tn Tuning, iterations int) {
	if iterations > 0 {
		p.MaxIterations = iterations
	}
	if tn.Timeout > 0 {
		p.Timeout = tn.Timeout
	}
	if tn.Seed != 0 {
		p.Seed = tn.Seed
	}
	if tn.NumReads > 0 {
		p.NumReads = tn.NumReads
	}
}
