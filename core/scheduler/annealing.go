package scheduler

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/optimeet/optimeet/core/logger"
	"github.com/optimeet/optimeet/core/model"
)

// AnnealingPlanner searches the assignment space with simulated annealing:
// worsening moves are accepted with probability exp(delta/T) under a geometric
// cooling schedule, and the best state ever visited is returned. The planner
// is exposed under the "quantum" selector for caller compatibility.
//
// Reproducibility requires an explicit Seed; the generator is never ambient.
type AnnealingPlanner struct {
	InitialTemp   float64
	FloorTemp     float64
	MaxIterations int
	Timeout       time.Duration
	Seed          int64

	// NumReads runs independent annealing passes with derived seeds and
	// keeps the best result, mirroring the reads notion of hardware
	// annealers.
	NumReads int

	eval Evaluator
	cons model.Constraints
	log  logger.Logger
}

// NewAnnealingPlanner returns the stochastic planner with default tuning.
func NewAnnealingPlanner(cons model.Constraints, log logger.Logger) *AnnealingPlanner {
	return &AnnealingPlanner{
		InitialTemp:   10,
		FloorTemp:     0.05,
		MaxIterations: 4000,
		Timeout:       2 * time.Second,
		Seed:          1,
		NumReads:      1,
		eval:          NewEvaluator(cons),
		cons:          cons,
		log:           log,
	}
}

// Name implements Planner.
func (p *AnnealingPlanner) Name() model.Algorithm { return model.AlgorithmQuantum }

// Plan implements Planner. The given state is used as the seed; the hybrid
// planner passes a greedy solution here. The wall-clock timeout is a hard
// bound: expiry returns the best state found so far, never an error.
func (p *AnnealingPlanner) Plan(ctx context.Context, st *State) (*State, PlanStats) {
	deadline := time.Now().Add(p.Timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}

	w := p.cons.Weights
	best := st.Clone()
	bestObj := best.Objective(w)
	var stats PlanStats

	reads := p.NumReads
	if reads < 1 {
		reads = 1
	}
	for read := 0; read < reads; read++ {
		rng := rand.New(rand.NewSource(p.Seed + int64(read)))
		candidate, obj, s := p.anneal(ctx, st.Clone(), rng, deadline)
		stats.Iterations += s.Iterations
		stats.Accepted += s.Accepted
		stats.Improved += s.Improved
		stats.Reads++
		if obj > bestObj {
			best, bestObj = candidate, obj
		}
		if time.Now().After(deadline) || ctx.Err() != nil {
			break
		}
	}
	stats.Objective = bestObj
	p.log.Debugw("annealing complete", map[string]any{
		"iterations": stats.Iterations,
		"accepted":   stats.Accepted,
		"reads":      stats.Reads,
		"objective":  bestObj,
	})
	return best, stats
}

// anneal runs one read and returns the best state it visited.
func (p *AnnealingPlanner) anneal(ctx context.Context, cur *State, rng *rand.Rand, deadline time.Time) (*State, float64, PlanStats) {
	w := p.cons.Weights
	curObj := cur.Objective(w)
	best := cur.Clone()
	bestObj := curObj
	ratio := p.FloorTemp / p.InitialTemp
	var stats PlanStats

	for i := 0; i < p.MaxIterations; i++ {
		if i%32 == 0 && (time.Now().After(deadline) || ctx.Err() != nil) {
			break
		}
		stats.Iterations++

		temp := p.InitialTemp * math.Pow(ratio, float64(i)/float64(p.MaxIterations))
		if temp < p.FloorTemp {
			temp = p.FloorTemp
		}

		next, ok := p.propose(cur, rng)
		if !ok {
			continue
		}
		nextObj := next.Objective(w)
		delta := nextObj - curObj
		if delta >= 0 || rng.Float64() < math.Exp(delta/temp) {
			cur, curObj = next, nextObj
			stats.Accepted++
			if curObj > bestObj {
				best, bestObj = cur.Clone(), curObj
				stats.Improved++
			}
		}
	}
	return best, bestObj, stats
}

// propose builds a structurally legal neighbour state or reports failure.
// Feasibility is always re-checked against the state with the moved entities
// removed, so a proposal can never corrupt occupancy.
func (p *AnnealingPlanner) propose(cur *State, rng *rand.Rand) (*State, bool) {
	switch rng.Intn(3) {
	case 0:
		return p.assignMove(cur, rng)
	case 1:
		return p.reassignMove(cur, rng)
	default:
		return p.swapMove(cur, rng)
	}
}

// assignMove schedules a random unscheduled request into a random feasible
// candidate.
func (p *AnnealingPlanner) assignMove(cur *State, rng *rand.Rand) (*State, bool) {
	open := cur.UnassignedRequests()
	if len(open) == 0 {
		return nil, false
	}
	req := open[rng.Intn(len(open))]
	next := cur.Clone()
	cands := p.eval.candidates(req, next)
	if len(cands) == 0 {
		return nil, false
	}
	pick := cands[rng.Intn(len(cands))]
	pick.Explanation = "annealing: assign move"
	next.Assign(pick)
	return next, true
}

// reassignMove moves an already-assigned request to a different feasible
// candidate.
func (p *AnnealingPlanner) reassignMove(cur *State, rng *rand.Rand) (*State, bool) {
	asn := cur.Assignments()
	if len(asn) == 0 {
		return nil, false
	}
	old := asn[rng.Intn(len(asn))]
	req, ok := cur.RequestByID(old.RequestID)
	if !ok {
		return nil, false
	}
	next := cur.Clone()
	next.Unassign(old.RequestID)
	cands := p.eval.candidates(req, next)
	filtered := cands[:0]
	for _, c := range cands {
		if c.HostID == old.HostID && c.Slot.Start.Equal(old.Slot.Start) {
			continue
		}
		filtered = append(filtered, c)
	}
	if len(filtered) == 0 {
		return nil, false
	}
	pick := filtered[rng.Intn(len(filtered))]
	pick.Explanation = "annealing: reassign move"
	next.Assign(pick)
	return next, true
}

// swapMove exchanges the slots of two assigned requests on different hosts.
func (p *AnnealingPlanner) swapMove(cur *State, rng *rand.Rand) (*State, bool) {
	asn := cur.Assignments()
	if len(asn) < 2 {
		return nil, false
	}
	a := asn[rng.Intn(len(asn))]
	b := asn[rng.Intn(len(asn))]
	if a.RequestID == b.RequestID || a.HostID == b.HostID {
		return nil, false
	}
	reqA, okA := cur.RequestByID(a.RequestID)
	reqB, okB := cur.RequestByID(b.RequestID)
	if !okA || !okB {
		return nil, false
	}
	hostA, _ := cur.HostByID(a.HostID)
	hostB, _ := cur.HostByID(b.HostID)

	next := cur.Clone()
	next.Unassign(a.RequestID)
	next.Unassign(b.RequestID)
	vA := p.eval.Evaluate(reqA, hostB, b.Slot, next)
	vB := p.eval.Evaluate(reqB, hostA, a.Slot, next)
	if !vA.Feasible || !vB.Feasible {
		return nil, false
	}
	next.Assign(model.Assignment{RequestID: reqA.ID, HostID: hostB.ID, Slot: b.Slot, Score: vA.Score, Explanation: "annealing: swap move"})
	next.Assign(model.Assignment{RequestID: reqB.ID, HostID: hostA.ID, Slot: a.Slot, Score: vB.Score, Explanation: "annealing: swap move"})
	return next, true
}
