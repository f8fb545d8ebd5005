package model

import (
	"fmt"
	"time"
)

// ScoreWeights configures the shared feasibility score. All planners use the
// same formula so objectives stay comparable across algorithms.
type ScoreWeights struct {
	Importance   float64 `json:"importance"`
	TypeAffinity float64 `json:"type_affinity"`
	Preference   float64 `json:"preference"`
	Urgency      float64 `json:"urgency"`

	// PartialTypeCredit is the affinity granted when the host supports only
	// part of the requested meeting types.
	PartialTypeCredit float64 `json:"partial_type_credit"`

	// PreferenceMissPenalty is subtracted (scaled by Preference) when a
	// request states preferences and the slot matches none of them.
	PreferenceMissPenalty float64 `json:"preference_miss_penalty"`

	// UnscheduledPenalty is charged against the objective for every
	// high-urgency request left unscheduled.
	UnscheduledPenalty float64 `json:"unscheduled_penalty"`
}

// DefaultScoreWeights returns the documented baseline weights.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Importance:            0.5,
		TypeAffinity:          0.2,
		Preference:            0.15,
		Urgency:               0.15,
		PartialTypeCredit:     0.5,
		PreferenceMissPenalty: 0.25,
		UnscheduledPenalty:    1.0,
	}
}

// Constraints holds the hard and soft scheduling rules for one run.
type Constraints struct {
	EventStart time.Time `json:"event_start"`
	EventEnd   time.Time `json:"event_end"`

	// WorkdayStart and WorkdayEnd are offsets from midnight bounding the
	// global working-hours window.
	WorkdayStart time.Duration `json:"workday_start"`
	WorkdayEnd   time.Duration `json:"workday_end"`

	MeetingDuration time.Duration `json:"meeting_duration"`

	// DailyCap limits meetings per host per day; hosts may override it.
	DailyCap int `json:"daily_cap"`

	// Buffer is the minimum gap between two meetings on the same host.
	Buffer time.Duration `json:"buffer"`

	// PrioritizeImportance favours high-importance requests when capacity
	// is scarce.
	PrioritizeImportance bool `json:"prioritize_importance"`

	Weights ScoreWeights `json:"weights"`
}

// DefaultConstraints returns a ready-to-use configuration: a five-day event
// window starting today, 09:00-18:00 working hours, 30 minute meetings with a
// 10 minute buffer and 8 meetings per host per day.
func DefaultConstraints() Constraints {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return Constraints{
		EventStart:           start,
		EventEnd:             start.AddDate(0, 0, 5),
		WorkdayStart:         9 * time.Hour,
		WorkdayEnd:           18 * time.Hour,
		MeetingDuration:      30 * time.Minute,
		DailyCap:             8,
		Buffer:               10 * time.Minute,
		PrioritizeImportance: true,
		Weights:              DefaultScoreWeights(),
	}
}

// Validate checks the constraint ranges that would make a run meaningless.
func (c Constraints) Validate() error {
	if c.EventEnd.Before(c.EventStart) {
		return fmt.Errorf("event end %s before start %s", c.EventEnd.Format("2006-01-02"), c.EventStart.Format("2006-01-02"))
	}
	if c.MeetingDuration <= 0 {
		return fmt.Errorf("meeting duration must be positive")
	}
	if c.WorkdayEnd <= c.WorkdayStart {
		return fmt.Errorf("workday end must be after workday start")
	}
	if c.DailyCap <= 0 {
		return fmt.Errorf("daily cap must be positive")
	}
	if c.Buffer < 0 {
		return fmt.Errorf("buffer must not be negative")
	}
	return nil
}

// WithinEvent reports whether the slot lies inside the event date range and
// the global working-hours window.
func (c Constraints) WithinEvent(slot TimeSlot) bool {
	if slot.Start.Before(c.EventStart) || slot.End.After(c.EventEnd.Add(24*time.Hour)) {
		return false
	}
	midnight := time.Date(slot.Start.Year(), slot.Start.Month(), slot.Start.Day(), 0, 0, 0, 0, slot.Start.Location())
	startOfs := slot.Start.Sub(midnight)
	endOfs := slot.End.Sub(midnight)
	return startOfs >= c.WorkdayStart && endOfs <= c.WorkdayEnd
}
