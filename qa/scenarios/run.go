package scenarios

import (
	"context"
	"testing"

	"github.com/optimeet/optimeet/core/model"
	"github.com/optimeet/optimeet/core/scheduler"
	"github.com/optimeet/optimeet/infra/logger"
	"github.com/optimeet/optimeet/internal/eventbus"
)

// RunScenario executes one scenario end to end and checks the expectations.
func RunScenario(t *testing.T, sc *Scenario) {
	cons, err := sc.Event.ToConstraints()
	if err != nil {
		t.Fatalf("constraints: %v", err)
	}

	hosts := make([]model.Host, len(sc.Hosts))
	for i, h := range sc.Hosts {
		m, err := h.ToModel(cons.EventStart, cons.MeetingDuration)
		if err != nil {
			t.Fatalf("host: %v", err)
		}
		hosts[i] = m
	}
	requests := make([]model.MeetingRequest, len(sc.Requests))
	for i, r := range sc.Requests {
		m, err := r.ToModel(cons.EventStart, i)
		if err != nil {
			t.Fatalf("request: %v", err)
		}
		requests[i] = m
	}

	alg := model.AlgorithmHybrid
	if sc.Algorithm != "" {
		alg, err = model.ParseAlgorithm(sc.Algorithm)
		if err != nil {
			t.Fatalf("algorithm: %v", err)
		}
	}

	bus := eventbus.New()
	defer bus.Close()
	res, err := scheduler.Optimize(context.Background(), requests, hosts, cons, scheduler.Options{
		Algorithm: alg,
		Tuning:    scheduler.Tuning{Seed: 1},
		Logger:    logger.NopLogger{},
		Bus:       bus,
	})
	if err != nil {
		t.Fatalf("optimize: %v", err)
	}

	if res.Metrics.Scheduled != sc.Expected.Scheduled {
		t.Errorf("scenario %s expected %d scheduled, got %d", sc.Name, sc.Expected.Scheduled, res.Metrics.Scheduled)
	}
	for id, want := range sc.Expected.Unscheduled {
		got, ok := findReason(res.Unscheduled, id)
		if !ok {
			t.Errorf("scenario %s expected %s unscheduled", sc.Name, id)
			continue
		}
		if string(got) != want {
			t.Errorf("scenario %s request %s reason %s, want %s", sc.Name, id, got, want)
		}
	}
}

func findReason(entries []model.UnscheduledEntry, id string) (model.Reason, bool) {
	for _, e := range entries {
		if e.RequestID == id {
			return e.Reason, true
		}
	}
	return "", false
}
