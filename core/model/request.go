package model

import (
	"fmt"
	"strings"
	"time"
)

// Urgency orders meeting requests from least to most pressing.
type Urgency int

const (
	UrgencyLow Urgency = iota
	UrgencyMedium
	UrgencyHigh
	UrgencyCritical
)

var urgencyNames = map[Urgency]string{
	UrgencyLow:      "low",
	UrgencyMedium:   "medium",
	UrgencyHigh:     "high",
	UrgencyCritical: "critical",
}

func (u Urgency) String() string {
	if s, ok := urgencyNames[u]; ok {
		return s
	}
	return fmt.Sprintf("urgency(%d)", int(u))
}

// ParseUrgency converts a string tier into an Urgency value.
func ParseUrgency(s string) (Urgency, error) {
	for u, name := range urgencyNames {
		if name == strings.ToLower(strings.TrimSpace(s)) {
			return u, nil
		}
	}
	return UrgencyLow, fmt.Errorf("unknown urgency %q", s)
}

// TimeWindow is a half-open [Start, End) interval.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Intersects reports whether the window overlaps the [start, end) interval.
func (w TimeWindow) Intersects(start, end time.Time) bool {
	return start.Before(w.End) && w.Start.Before(end)
}

// MeetingRequest is a qualified request for a meeting with a host. It is
// immutable for the duration of an optimization run; qualification and
// importance scoring happen upstream.
type MeetingRequest struct {
	ID         string   `json:"id"`
	Topics     []string `json:"topics"`
	Urgency    Urgency  `json:"urgency"`
	Importance float64  `json:"importance"` // 0..100, set by the qualification layer

	// MeetingTypes lists the meeting-type tags the requester accepts.
	MeetingTypes []string `json:"meeting_types"`

	// PreferredDates and PreferredWindows are soft constraints. A slot
	// outside them is still feasible but scores lower.
	PreferredDates   []time.Time  `json:"preferred_dates,omitempty"`
	PreferredWindows []TimeWindow `json:"preferred_windows,omitempty"`

	// Submitted is the submission order, used as the final tie-break to
	// keep greedy planning reproducible.
	Submitted int `json:"submitted"`
}

// PrefersSlot reports whether the slot matches one of the request's
// preferred dates or windows. The second return value is false when the
// request expresses no preference at all.
func (r MeetingRequest) PrefersSlot(slot TimeSlot) (match, hasPreference bool) {
	if len(r.PreferredDates) == 0 && len(r.PreferredWindows) == 0 {
		return false, false
	}
	for _, d := range r.PreferredDates {
		if sameDay(d, slot.Start) {
			return true, true
		}
	}
	for _, w := range r.PreferredWindows {
		if w.Intersects(slot.Start, slot.End) {
			return true, true
		}
	}
	return false, true
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
