package config

import (
	"fmt"
	"time"

	"github.com/optimeet/optimeet/core/model"
)

// EventConfig describes the scheduling window and constraint knobs in the
// formats people actually write in config files: dates as YYYY-MM-DD, times
// of day as HH:MM and durations in minutes. Omitted fields keep the model
// defaults.
type EventConfig struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	// WorkdayStart and WorkdayEnd bound the global working hours, HH:MM.
	WorkdayStart string `json:"workday_start"`
	WorkdayEnd   string `json:"workday_end"`

	MeetingDurationMinutes int  `json:"meeting_duration_minutes"`
	DailyCap               int  `json:"daily_cap"`
	BufferMinutes          int  `json:"buffer_minutes"`
	PrioritizeImportance   bool `json:"prioritize_importance"`

	Weights *model.ScoreWeights `json:"weights"`
}

// Validate checks the date and time-of-day formats without applying them.
func (c EventConfig) Validate() error {
	_, err := c.ToConstraints()
	return err
}

// ToConstraints converts the file representation into run constraints,
// starting from the model defaults.
func (c EventConfig) ToConstraints() (model.Constraints, error) {
	cons := model.DefaultConstraints()
	if c.StartDate != "" {
		t, err := time.Parse("2006-01-02", c.StartDate)
		if err != nil {
			return cons, fmt.Errorf("event.start_date: %w", err)
		}
		cons.EventStart = t
	}
	if c.EndDate != "" {
		t, err := time.Parse("2006-01-02", c.EndDate)
		if err != nil {
			return cons, fmt.Errorf("event.end_date: %w", err)
		}
		cons.EventEnd = t
	}
	if c.WorkdayStart != "" {
		d, err := parseClock(c.WorkdayStart)
		if err != nil {
			return cons, fmt.Errorf("event.workday_start: %w", err)
		}
		cons.WorkdayStart = d
	}
	if c.WorkdayEnd != "" {
		d, err := parseClock(c.WorkdayEnd)
		if err != nil {
			return cons, fmt.Errorf("event.workday_end: %w", err)
		}
		cons.WorkdayEnd = d
	}
	if c.MeetingDurationMinutes > 0 {
		cons.MeetingDuration = time.Duration(c.MeetingDurationMinutes) * time.Minute
	}
	if c.DailyCap > 0 {
		cons.DailyCap = c.DailyCap
	}
	if c.BufferMinutes > 0 {
		cons.Buffer = time.Duration(c.BufferMinutes) * time.Minute
	}
	cons.PrioritizeImportance = c.PrioritizeImportance
	if c.Weights != nil {
		cons.Weights = *c.Weights
	}
	return cons, cons.Validate()
}

// parseClock converts an HH:MM string into an offset from midnight.
func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, err
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}
