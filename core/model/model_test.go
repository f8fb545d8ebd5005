package model

import (
	"testing"
	"time"
)

func slotAt(host string, start time.Time, dur time.Duration) TimeSlot {
	return TimeSlot{HostID: host, Start: start, End: start.Add(dur)}
}

func TestTimeSlot_ConflictsWith(t *testing.T) {
	day := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	a := slotAt("h1", day, 30*time.Minute)

	cases := []struct {
		name   string
		other  TimeSlot
		buffer time.Duration
		want   bool
	}{
		{"overlap", slotAt("h1", day.Add(15*time.Minute), 30*time.Minute), 0, true},
		{"back to back no buffer", slotAt("h1", day.Add(30*time.Minute), 30*time.Minute), 0, false},
		{"back to back with buffer", slotAt("h1", day.Add(30*time.Minute), 30*time.Minute), 10 * time.Minute, true},
		{"gap larger than buffer", slotAt("h1", day.Add(45*time.Minute), 30*time.Minute), 10 * time.Minute, false},
		{"other day", slotAt("h1", day.AddDate(0, 0, 1), 30*time.Minute), time.Hour, false},
		{"earlier slot within buffer", slotAt("h1", day.Add(-35*time.Minute), 30*time.Minute), 10 * time.Minute, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := a.ConflictsWith(tc.other, tc.buffer); got != tc.want {
				t.Fatalf("ConflictsWith = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHost_Supports(t *testing.T) {
	h := Host{ID: "h1", MeetingTypes: []string{"strategic", "technical"}}
	if !h.Supports([]string{"strategic"}) {
		t.Fatal("expected strategic to be supported")
	}
	if h.Supports([]string{"sales"}) {
		t.Fatal("sales should not be supported")
	}
	if !h.SupportsAll([]string{"strategic", "technical"}) {
		t.Fatal("expected full support")
	}
	if h.SupportsAll([]string{"strategic", "sales"}) {
		t.Fatal("partial overlap must not count as full support")
	}
}

func TestMeetingRequest_PrefersSlot(t *testing.T) {
	day := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	slot := slotAt("h1", day, 30*time.Minute)

	none := MeetingRequest{ID: "r1"}
	if match, has := none.PrefersSlot(slot); match || has {
		t.Fatalf("request without preferences: match=%v has=%v", match, has)
	}

	byDate := MeetingRequest{ID: "r2", PreferredDates: []time.Time{day}}
	if match, has := byDate.PrefersSlot(slot); !match || !has {
		t.Fatalf("preferred date should match: match=%v has=%v", match, has)
	}

	byWindow := MeetingRequest{ID: "r3", PreferredWindows: []TimeWindow{{Start: day.Add(-time.Hour), End: day.Add(time.Hour)}}}
	if match, _ := byWindow.PrefersSlot(slot); !match {
		t.Fatal("preferred window should match")
	}

	miss := MeetingRequest{ID: "r4", PreferredDates: []time.Time{day.AddDate(0, 0, 3)}}
	if match, has := miss.PrefersSlot(slot); match || !has {
		t.Fatalf("mismatching preference: match=%v has=%v", match, has)
	}
}

func TestConstraints_Validate(t *testing.T) {
	c := DefaultConstraints()
	if err := c.Validate(); err != nil {
		t.Fatalf("default constraints should validate: %v", err)
	}

	bad := c
	bad.EventEnd = c.EventStart.AddDate(0, 0, -1)
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for inverted date range")
	}

	bad = c
	bad.MeetingDuration = 0
	if err := bad.Validate(); err == nil {
		t.Fatal("expected error for zero meeting duration")
	}
}

func TestConstraints_WithinEvent(t *testing.T) {
	c := DefaultConstraints()
	c.EventStart = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	c.EventEnd = time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

	in := slotAt("h1", time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC), 30*time.Minute)
	if !c.WithinEvent(in) {
		t.Fatal("slot inside event and working hours should pass")
	}

	early := slotAt("h1", time.Date(2026, 3, 3, 7, 0, 0, 0, time.UTC), 30*time.Minute)
	if c.WithinEvent(early) {
		t.Fatal("slot before working hours should fail")
	}

	outside := slotAt("h1", time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC), 30*time.Minute)
	if c.WithinEvent(outside) {
		t.Fatal("slot after event end should fail")
	}

	lastDay := slotAt("h1", time.Date(2026, 3, 6, 10, 0, 0, 0, time.UTC), 30*time.Minute)
	if !c.WithinEvent(lastDay) {
		t.Fatal("event end date is inclusive")
	}
}

func TestParseAlgorithm(t *testing.T) {
	for _, s := range []string{"classical", "quantum", "hybrid", " Hybrid "} {
		if _, err := ParseAlgorithm(s); err != nil {
			t.Fatalf("ParseAlgorithm(%q): %v", s, err)
		}
	}
	if _, err := ParseAlgorithm("genetic"); err == nil {
		t.Fatal("expected error for unknown algorithm")
	}
}

func TestReason_Specificity(t *testing.T) {
	order := []Reason{
		ReasonNoFeasibleHost,
		ReasonOutsideEventWindow,
		ReasonHostTypeMismatch,
		ReasonSlotUnavailable,
		ReasonHostCapacityExceeded,
	}
	for i := 1; i < len(order); i++ {
		if order[i].Specificity() <= order[i-1].Specificity() {
			t.Fatalf("%s should be more specific than %s", order[i], order[i-1])
		}
	}
	if ReasonBufferViolation.Specificity() != ReasonHostCapacityExceeded.Specificity() {
		t.Fatal("buffer and capacity share the top rank")
	}
}
