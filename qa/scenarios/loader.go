package scenarios

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/optimeet/optimeet/core/model"
)

// SlotDef describes one bookable slot relative to the event start: a day
// offset and an HH:MM start time. Slot length follows the event's meeting
// duration.
type SlotDef struct {
	Day     int    `yaml:"day"`
	Start   string `yaml:"start"`
	Blocked bool   `yaml:"blocked,omitempty"`
}

type HostDef struct {
	ID           string    `yaml:"id"`
	MeetingTypes []string  `yaml:"meeting_types"`
	DailyCap     int       `yaml:"daily_cap,omitempty"`
	Slots        []SlotDef `yaml:"slots"`
}

func (h HostDef) ToModel(base time.Time, duration time.Duration) (model.Host, error) {
	slots := make([]model.TimeSlot, len(h.Slots))
	for i, s := range h.Slots {
		start, err := slotTime(base, s.Day, s.Start)
		if err != nil {
			return model.Host{}, fmt.Errorf("host %s slot %d: %w", h.ID, i, err)
		}
		slots[i] = model.TimeSlot{HostID: h.ID, Start: start, End: start.Add(duration), Blocked: s.Blocked}
	}
	return model.Host{ID: h.ID, MeetingTypes: h.MeetingTypes, DailyCap: h.DailyCap, Slots: slots}, nil
}

type RequestDef struct {
	ID            string   `yaml:"id"`
	Urgency       string   `yaml:"urgency"`
	Importance    float64  `yaml:"importance"`
	MeetingTypes  []string `yaml:"meeting_types"`
	PreferredDays []int    `yaml:"preferred_days,omitempty"`
}

func (r RequestDef) ToModel(base time.Time, submitted int) (model.MeetingRequest, error) {
	urg := model.UrgencyLow
	if r.Urgency != "" {
		u, err := model.ParseUrgency(r.Urgency)
		if err != nil {
			return model.MeetingRequest{}, fmt.Errorf("request %s: %w", r.ID, err)
		}
		urg = u
	}
	var dates []time.Time
	for _, d := range r.PreferredDays {
		dates = append(dates, base.AddDate(0, 0, d))
	}
	return model.MeetingRequest{
		ID:             r.ID,
		Urgency:        urg,
		Importance:     r.Importance,
		MeetingTypes:   r.MeetingTypes,
		PreferredDates: dates,
		Submitted:      submitted,
	}, nil
}

// EventDef overrides the default constraints for one scenario. Days counts
// calendar days from StartDate, inclusive.
type EventDef struct {
	StartDate              string `yaml:"start_date"`
	Days                   int    `yaml:"days"`
	MeetingDurationMinutes int    `yaml:"meeting_duration_minutes"`
	DailyCap               int    `yaml:"daily_cap"`
	BufferMinutes          int    `yaml:"buffer_minutes"`
}

func (e EventDef) ToConstraints() (model.Constraints, error) {
	cons := model.DefaultConstraints()
	if e.StartDate != "" {
		base, err := time.Parse("2006-01-02", e.StartDate)
		if err != nil {
			return cons, err
		}
		cons.EventStart = base
		days := e.Days
		if days <= 0 {
			days = 1
		}
		cons.EventEnd = base.AddDate(0, 0, days-1)
	}
	if e.MeetingDurationMinutes > 0 {
		cons.MeetingDuration = time.Duration(e.MeetingDurationMinutes) * time.Minute
	}
	if e.DailyCap > 0 {
		cons.DailyCap = e.DailyCap
	}
	if e.BufferMinutes > 0 {
		cons.Buffer = time.Duration(e.BufferMinutes) * time.Minute
	}
	return cons, nil
}

type Expected struct {
	Scheduled int `yaml:"scheduled"`
	// Unscheduled maps request IDs to the expected reason code.
	Unscheduled map[string]string `yaml:"unscheduled,omitempty"`
}

type Scenario struct {
	Name        string       `yaml:"name"`
	Description string       `yaml:"description,omitempty"`
	Algorithm   string       `yaml:"algorithm,omitempty"`
	Event       EventDef     `yaml:"event"`
	Hosts       []HostDef    `yaml:"hosts"`
	Requests    []RequestDef `yaml:"requests"`
	Expected    Expected     `yaml:"expected"`
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	return &sc, nil
}

func slotTime(base time.Time, day int, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	d := base.AddDate(0, 0, day)
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, base.Location()), nil
}
