package scheduler

import (
	"context"
	"reflect"
	"testing"

	"github.com/optimeet/optimeet/core/model"
)

func TestGreedyOrderRequests(t *testing.T) {
	cons := testConstraints()
	cons.PrioritizeImportance = true
	p := NewGreedyPlanner(cons, nopLogger{})

	reqs := []model.MeetingRequest{
		testRequest("low-late", model.UrgencyLow, 90, []string{"sales"}, 3),
		testRequest("high-small", model.UrgencyHigh, 20, []string{"sales"}, 2),
		testRequest("high-big", model.UrgencyHigh, 80, []string{"sales"}, 1),
		testRequest("high-tie", model.UrgencyHigh, 80, []string{"sales"}, 0),
	}
	ordered := p.orderRequests(reqs)

	want := []string{"high-tie", "high-big", "high-small", "low-late"}
	for i, id := range want {
		if ordered[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, ordered[i].ID, id)
		}
	}
}

func TestGreedyPicksBestCandidate(t *testing.T) {
	cons := testConstraints()
	p := NewGreedyPlanner(cons, nopLogger{})

	// host-a matches all requested types, host-b only part of them.
	hosts := []model.Host{
		testHost("host-a", []string{"sales", "tech"}, slotAt(0, 9, 0)),
		testHost("host-b", []string{"sales"}, slotAt(0, 9, 0)),
	}
	req := testRequest("req-1", model.UrgencyMedium, 50, []string{"sales", "tech"}, 0)

	st, stats := p.Plan(context.Background(), NewState([]model.MeetingRequest{req}, hosts))
	a, ok := st.Assignment("req-1")
	if !ok {
		t.Fatal("request not assigned")
	}
	if a.HostID != "host-a" {
		t.Errorf("assigned to %s, want host-a", a.HostID)
	}
	if stats.Accepted != 1 {
		t.Errorf("accepted = %d, want 1", stats.Accepted)
	}
}

func TestGreedyTieBreaksLowestHost(t *testing.T) {
	cons := testConstraints()
	p := NewGreedyPlanner(cons, nopLogger{})

	// Identical hosts: the lower ID and earliest slot must win the tie.
	hosts := []model.Host{
		testHost("host-b", []string{"sales"}, slotAt(0, 9, 0)),
		testHost("host-a", []string{"sales"}, slotAt(0, 10, 0), slotAt(0, 9, 0)),
	}
	req := testRequest("req-1", model.UrgencyMedium, 50, []string{"sales"}, 0)

	st, _ := p.Plan(context.Background(), NewState([]model.MeetingRequest{req}, hosts))
	a, _ := st.Assignment("req-1")
	if a.HostID != "host-a" {
		t.Errorf("assigned to %s, want host-a", a.HostID)
	}
	if !a.Slot.Start.Equal(slotAt(0, 9, 0).Start) {
		t.Errorf("assigned slot %s, want 09:00", a.Slot.Start)
	}
}

func TestGreedyDeterministic(t *testing.T) {
	cons := testConstraints()
	hosts := []model.Host{
		testHost("host-a", []string{"sales", "tech"}, slotAt(0, 9, 0), slotAt(0, 10, 0), slotAt(1, 9, 0)),
		testHost("host-b", []string{"finance", "sales"}, slotAt(0, 9, 0), slotAt(1, 14, 0)),
	}
	requests := []model.MeetingRequest{
		testRequest("r1", model.UrgencyHigh, 70, []string{"sales"}, 0),
		testRequest("r2", model.UrgencyMedium, 90, []string{"tech"}, 1),
		testRequest("r3", model.UrgencyCritical, 40, []string{"finance"}, 2),
		testRequest("r4", model.UrgencyLow, 60, []string{"sales"}, 3),
	}

	p := NewGreedyPlanner(cons, nopLogger{})
	first, _ := p.Plan(context.Background(), NewState(requests, hosts))
	second, _ := p.Plan(context.Background(), NewState(requests, hosts))

	if !reflect.DeepEqual(first.Assignments(), second.Assignments()) {
		t.Errorf("greedy runs differ:\n%v\n%v", first.Assignments(), second.Assignments())
	}
}

func TestGreedyRecordsNoFeasibleHost(t *testing.T) {
	cons := testConstraints()
	p := NewGreedyPlanner(cons, nopLogger{})

	// Host with no slots at all: no check ever fires a reason.
	hosts := []model.Host{testHost("host-a", []string{"sales"})}
	req := testRequest("req-1", model.UrgencyMedium, 50, []string{"sales"}, 0)

	st, _ := p.Plan(context.Background(), NewState([]model.MeetingRequest{req}, hosts))
	r, ok := st.Reason("req-1")
	if !ok || r != model.ReasonNoFeasibleHost {
		t.Errorf("reason = %v, want NO_FEASIBLE_HOST", r)
	}
}
