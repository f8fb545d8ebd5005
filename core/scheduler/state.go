package scheduler

import (
	"sort"

	"github.com/optimeet/optimeet/core/model"
)

type slotRef struct {
	hostID string
	start  int64
}

func refOf(s model.TimeSlot) slotRef {
	return slotRef{hostID: s.HostID, start: s.Start.UnixNano()}
}

// hostOccupancy is the per-run mutable counterpart of a Host. It is owned by
// the planner executing the run and never shared across runs.
type hostOccupancy struct {
	perDay map[string]int
	busy   map[slotRef]model.TimeSlot
}

func (o *hostOccupancy) clone() *hostOccupancy {
	cp := &hostOccupancy{
		perDay: make(map[string]int, len(o.perDay)),
		busy:   make(map[slotRef]model.TimeSlot, len(o.busy)),
	}
	for k, v := range o.perDay {
		cp.perDay[k] = v
	}
	for k, v := range o.busy {
		cp.busy[k] = v
	}
	return cp
}

// State is a complete assignment state: a private snapshot of the inputs plus
// the mutable occupancy built up during one run.
type State struct {
	requests []model.MeetingRequest
	hosts    []model.Host
	hostIdx  map[string]int
	occ      []*hostOccupancy
	assigned map[string]model.Assignment
	reasons  map[string]model.Reason
}

// NewState deep-copies the caller-supplied snapshots into a fresh run state.
// Hosts are ordered by identifier and slots by start time so every traversal
// is deterministic.
func NewState(requests []model.MeetingRequest, hosts []model.Host) *State {
	st := &State{
		requests: make([]model.MeetingRequest, len(requests)),
		hosts:    make([]model.Host, len(hosts)),
		hostIdx:  make(map[string]int, len(hosts)),
		occ:      make([]*hostOccupancy, len(hosts)),
		assigned: make(map[string]model.Assignment),
		reasons:  make(map[string]model.Reason),
	}
	copy(st.requests, requests)
	copy(st.hosts, hosts)
	sort.Slice(st.hosts, func(i, j int) bool { return st.hosts[i].ID < st.hosts[j].ID })
	for i := range st.hosts {
		slots := make([]model.TimeSlot, len(st.hosts[i].Slots))
		copy(slots, st.hosts[i].Slots)
		sort.Slice(slots, func(a, b int) bool { return slots[a].Start.Before(slots[b].Start) })
		for j := range slots {
			slots[j].HostID = st.hosts[i].ID
		}
		st.hosts[i].Slots = slots
		st.hostIdx[st.hosts[i].ID] = i
		st.occ[i] = &hostOccupancy{perDay: make(map[string]int), busy: make(map[slotRef]model.TimeSlot)}
	}
	return st
}

// Clone returns an independent copy sharing only the immutable input slices.
func (st *State) Clone() *State {
	cp := &State{
		requests: st.requests,
		hosts:    st.hosts,
		hostIdx:  st.hostIdx,
		occ:      make([]*hostOccupancy, len(st.occ)),
		assigned: make(map[string]model.Assignment, len(st.assigned)),
		reasons:  make(map[string]model.Reason, len(st.reasons)),
	}
	for i, o := range st.occ {
		cp.occ[i] = o.clone()
	}
	for k, v := range st.assigned {
		cp.assigned[k] = v
	}
	for k, v := range st.reasons {
		cp.reasons[k] = v
	}
	return cp
}

// Requests returns the request snapshot in submission order.
func (st *State) Requests() []model.MeetingRequest { return st.requests }

// Hosts returns the host snapshot ordered by identifier.
func (st *State) Hosts() []model.Host { return st.hosts }

// HostByID looks up a host from the snapshot.
func (st *State) HostByID(id string) (model.Host, bool) {
	i, ok := st.hostIdx[id]
	if !ok {
		return model.Host{}, false
	}
	return st.hosts[i], true
}

// RequestByID looks up a request from the snapshot.
func (st *State) RequestByID(id string) (model.MeetingRequest, bool) {
	for _, r := range st.requests {
		if r.ID == id {
			return r, true
		}
	}
	return model.MeetingRequest{}, false
}

// Assign commits an assignment, updating the host occupancy.
func (st *State) Assign(a model.Assignment) {
	st.assigned[a.RequestID] = a
	delete(st.reasons, a.RequestID)
	if i, ok := st.hostIdx[a.HostID]; ok {
		st.occ[i].perDay[a.Slot.DayKey()]++
		st.occ[i].busy[refOf(a.Slot)] = a.Slot
	}
}

// Unassign releases a previous assignment and its occupancy.
func (st *State) Unassign(requestID string) {
	a, ok := st.assigned[requestID]
	if !ok {
		return
	}
	delete(st.assigned, requestID)
	if i, ok := st.hostIdx[a.HostID]; ok {
		st.occ[i].perDay[a.Slot.DayKey()]--
		delete(st.occ[i].busy, refOf(a.Slot))
	}
}

// SetReason records the most informative rejection reason seen for a request.
func (st *State) SetReason(requestID string, r model.Reason) {
	if cur, ok := st.reasons[requestID]; !ok || r.Specificity() > cur.Specificity() {
		st.reasons[requestID] = r
	}
}

// Reason returns the recorded rejection reason, if any.
func (st *State) Reason(requestID string) (model.Reason, bool) {
	r, ok := st.reasons[requestID]
	return r, ok
}

// Assignment returns the current assignment for a request.
func (st *State) Assignment(requestID string) (model.Assignment, bool) {
	a, ok := st.assigned[requestID]
	return a, ok
}

// Assignments returns all assignments sorted by slot start, host and request.
func (st *State) Assignments() []model.Assignment {
	out := make([]model.Assignment, 0, len(st.assigned))
	for _, a := range st.assigned {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Slot.Start.Equal(out[j].Slot.Start) {
			return out[i].Slot.Start.Before(out[j].Slot.Start)
		}
		if out[i].HostID != out[j].HostID {
			return out[i].HostID < out[j].HostID
		}
		return out[i].RequestID < out[j].RequestID
	})
	return out
}

// UnassignedRequests returns requests without an assignment, in submission
// order.
func (st *State) UnassignedRequests() []model.MeetingRequest {
	var out []model.MeetingRequest
	for _, r := range st.requests {
		if _, ok := st.assigned[r.ID]; !ok {
			out = append(out, r)
		}
	}
	return out
}

// SlotTaken reports whether the slot is already consumed in this run.
func (st *State) SlotTaken(slot model.TimeSlot) bool {
	i, ok := st.hostIdx[slot.HostID]
	if !ok {
		return false
	}
	_, taken := st.occ[i].busy[refOf(slot)]
	return taken
}

// HostLoad returns the number of meetings assigned to the host on the day.
func (st *State) HostLoad(hostID, dayKey string) int {
	i, ok := st.hostIdx[hostID]
	if !ok {
		return 0
	}
	return st.occ[i].perDay[dayKey]
}

// BusySlots returns the host's assigned slots sorted by start time.
func (st *State) BusySlots(hostID string) []model.TimeSlot {
	i, ok := st.hostIdx[hostID]
	if !ok {
		return nil
	}
	out := make([]model.TimeSlot, 0, len(st.occ[i].busy))
	for _, s := range st.occ[i].busy {
		out = append(out, s)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Start.Before(out[b].Start) })
	return out
}

// Objective is the quantity the planners maximize: total assignment score
// minus a penalty for every high-urgency request left unscheduled. The sum
// runs in submission order so structurally equal states always produce the
// same value; float addition is not associative, and the annealing acceptance
// test depends on repeated evaluations of one state being bit-identical.
func (st *State) Objective(w model.ScoreWeights) float64 {
	var total float64
	for _, r := range st.requests {
		if a, ok := st.assigned[r.ID]; ok {
			total += a.Score
			continue
		}
		if r.Urgency >= model.UrgencyHigh {
			total -= w.UnscheduledPenalty
		}
	}
	return total
}
