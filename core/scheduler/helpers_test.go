package scheduler

import (
	"math/rand"
	"time"

	"github.com/optimeet/optimeet/core/model"
)

var testBase = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

func testConstraints() model.Constraints {
	cons := model.DefaultConstraints()
	cons.EventStart = testBase
	cons.EventEnd = testBase.AddDate(0, 0, 4)
	cons.MeetingDuration = 30 * time.Minute
	cons.Buffer = 10 * time.Minute
	cons.DailyCap = 8
	return cons
}

// slotAt builds a 30 minute slot on the given event day and clock time.
func slotAt(day, hour, min int) model.TimeSlot {
	start := testBase.AddDate(0, 0, day).Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
	return model.TimeSlot{Start: start, End: start.Add(30 * time.Minute)}
}

func testHost(id string, types []string, slots ...model.TimeSlot) model.Host {
	return model.Host{ID: id, MeetingTypes: types, Slots: slots}
}

func testRequest(id string, urg model.Urgency, imp float64, types []string, submitted int) model.MeetingRequest {
	return model.MeetingRequest{ID: id, Urgency: urg, Importance: imp, MeetingTypes: types, Submitted: submitted}
}

func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
