package scheduler

import (
	"github.com/optimeet/optimeet/core/model"
)

// Verdict is the outcome of a feasibility check: either a non-negative score
// or the reason the candidate is illegal.
type Verdict struct {
	Feasible bool
	Score    float64
	Reason   model.Reason
}

func feasible(score float64) Verdict    { return Verdict{Feasible: true, Score: score} }
func infeasible(r model.Reason) Verdict { return Verdict{Reason: r} }

// Evaluator decides whether a (request, host, slot) triple is legal against
// the current run state and computes its quality score. All planners share
// one evaluator so scores stay comparable across algorithms.
type Evaluator struct {
	cons model.Constraints
}

// NewEvaluator builds an evaluator for the given constraints.
func NewEvaluator(cons model.Constraints) Evaluator {
	return Evaluator{cons: cons}
}

// Evaluate runs the hard checks in order, short-circuiting on the first
// failure. Preference mismatches are soft: they lower the score but never
// reject the candidate.
func (e Evaluator) Evaluate(req model.MeetingRequest, host model.Host, slot model.TimeSlot, st *State) Verdict {
	if !host.Supports(req.MeetingTypes) {
		return infeasible(model.ReasonHostTypeMismatch)
	}
	if !e.cons.WithinEvent(slot) {
		return infeasible(model.ReasonOutsideEventWindow)
	}
	if slot.Blocked || st.SlotTaken(slot) {
		return infeasible(model.ReasonSlotUnavailable)
	}
	if st.HostLoad(host.ID, slot.DayKey())+1 > host.CapFor(e.cons.DailyCap) {
		return infeasible(model.ReasonHostCapacityExceeded)
	}
	for _, busy := range st.BusySlots(host.ID) {
		if slot.ConflictsWith(busy, e.cons.Buffer) {
			return infeasible(model.ReasonBufferViolation)
		}
	}
	return feasible(e.Score(req, host, slot))
}

// Score computes the weighted quality of a candidate. The formula is
// deterministic and identical for every planner:
//
//	w.Importance   * importance/100
//	+ w.TypeAffinity * affinity   (1.0 full tag match, partial credit otherwise)
//	+ w.Preference   * preference (+1 match, -miss penalty, 0 when none stated)
//	+ w.Urgency      * tier/critical
func (e Evaluator) Score(req model.MeetingRequest, host model.Host, slot model.TimeSlot) float64 {
	w := e.cons.Weights

	imp := req.Importance / 100
	if imp < 0 {
		imp = 0
	}
	if imp > 1 {
		imp = 1
	}

	affinity := w.PartialTypeCredit
	if host.SupportsAll(req.MeetingTypes) {
		affinity = 1
	}

	pref := 0.0
	if match, has := req.PrefersSlot(slot); has {
		if match {
			pref = 1
		} else {
			pref = -w.PreferenceMissPenalty
		}
	}

	urg := float64(req.Urgency) / float64(model.UrgencyCritical)

	score := w.Importance*imp + w.TypeAffinity*affinity + w.Preference*pref + w.Urgency*urg
	if score < 0 {
		score = 0
	}
	return score
}

// candidates enumerates every feasible (host, slot) pair for the request in
// deterministic order: hosts by identifier, slots by start time. Infeasible
// pairs feed the request's recorded rejection reason.
func (e Evaluator) candidates(req model.MeetingRequest, st *State) []model.Assignment {
	var out []model.Assignment
	for _, host := range st.Hosts() {
		for _, slot := range host.Slots {
			v := e.Evaluate(req, host, slot, st)
			if !v.Feasible {
				st.SetReason(req.ID, v.Reason)
				continue
			}
			out = append(out, model.Assignment{RequestID: req.ID, HostID: host.ID, Slot: slot, Score: v.Score})
		}
	}
	return out
}
