package model

import "time"

// TimeSlot is a bookable interval in a host's calendar.
type TimeSlot struct {
	HostID      string    `json:"host_id"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Blocked     bool      `json:"blocked,omitempty"`
	BlockReason string    `json:"block_reason,omitempty"`
}

// DayKey returns the calendar date of the slot in YYYY-MM-DD form. Slots on
// the same host conflict only when their day keys match.
func (s TimeSlot) DayKey() string {
	return s.Start.Format("2006-01-02")
}

// Overlaps reports whether the [Start, End) intervals of the two slots
// intersect.
func (s TimeSlot) Overlaps(o TimeSlot) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}

// ConflictsWith reports whether two slots on the same day either overlap or
// sit closer together than the required buffer.
func (s TimeSlot) ConflictsWith(o TimeSlot, buffer time.Duration) bool {
	if s.DayKey() != o.DayKey() {
		return false
	}
	if s.Overlaps(o) {
		return true
	}
	var gap time.Duration
	if !s.End.After(o.Start) {
		gap = o.Start.Sub(s.End)
	} else {
		gap = s.Start.Sub(o.End)
	}
	return gap < buffer
}

// Host represents a meeting host with a fixed availability snapshot. The
// per-run occupancy counters live in the planner state, never on the host
// itself, so concurrent optimization runs stay independent.
type Host struct {
	ID           string   `json:"id"`
	Name         string   `json:"name,omitempty"`
	MeetingTypes []string `json:"meeting_types"`

	// DailyCap overrides the global per-host cap when positive.
	DailyCap int `json:"daily_cap,omitempty"`

	Slots []TimeSlot `json:"slots"`
}

// Supports reports whether the host offers at least one of the requested
// meeting-type tags.
func (h Host) Supports(types []string) bool {
	for _, want := range types {
		for _, have := range h.MeetingTypes {
			if want == have {
				return true
			}
		}
	}
	return false
}

// SupportsAll reports whether every requested tag is offered by the host.
// Used for the type-affinity score component.
func (h Host) SupportsAll(types []string) bool {
	if len(types) == 0 {
		return false
	}
	for _, want := range types {
		found := false
		for _, have := range h.MeetingTypes {
			if want == have {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// CapFor resolves the effective daily cap given the global default.
func (h Host) CapFor(def int) int {
	if h.DailyCap > 0 {
		return h.DailyCap
	}
	return def
}
