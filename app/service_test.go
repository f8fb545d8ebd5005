package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/optimeet/optimeet/config"
	"github.com/optimeet/optimeet/core/model"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestServiceOptimize(t *testing.T) {
	path := writeConfig(t, `event:
  start_date: "2026-09-07"
  end_date: "2026-09-08"
optimizer:
  algorithm: "classical"
metrics:
  sinks:
    - type: "nop"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	svc, err := New(cfg)
	require.NoError(t, err)
	defer func() { require.NoError(t, svc.Close()) }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	svc.Start(ctx)

	start := svc.Constraints.EventStart.Add(9 * time.Hour)
	hosts := []model.Host{{
		ID:           "host-a",
		MeetingTypes: []string{"sales"},
		Slots: []model.TimeSlot{{
			Start: start,
			End:   start.Add(svc.Constraints.MeetingDuration),
		}},
	}}
	requests := []model.MeetingRequest{{
		ID:           "req-1",
		Urgency:      model.UrgencyHigh,
		Importance:   80,
		MeetingTypes: []string{"sales"},
	}}

	res, err := svc.Optimize(ctx, requests, hosts)
	require.NoError(t, err)
	require.Equal(t, 1, res.Metrics.Scheduled)
	require.Equal(t, model.AlgorithmClassical, res.Algorithm)
}

func TestServiceRejectsBadSink(t *testing.T) {
	path := writeConfig(t, `metrics:
  sinks:
    - type: "does-not-exist"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	_, err = New(cfg)
	require.Error(t, err)
}

func TestLoadProblem(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problem.json")
	data := `{
  "requests": [
    {"id": "req-1", "urgency": 2, "importance": 80, "meeting_types": ["sales"]},
    {"id": "req-2", "urgency": 0, "importance": 40, "meeting_types": ["tech"]}
  ],
  "hosts": [
    {"id": "host-a", "meeting_types": ["sales", "tech"], "slots": [
      {"start": "2026-09-07T09:00:00Z", "end": "2026-09-07T09:30:00Z"}
    ]}
  ]
}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	p, err := LoadProblem(path)
	require.NoError(t, err)
	require.Len(t, p.Requests, 2)
	require.Len(t, p.Hosts, 1)
	require.Equal(t, 1, p.Requests[1].Submitted)

	_, err = LoadProblem(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
}
