package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/optimeet/optimeet/core/metrics"
	"github.com/optimeet/optimeet/core/model"
)

func TestInfluxSink_RecordRun(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		body = string(data)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	now := time.Now()
	res := coremetrics.RunResult{
		RunID:         "run1",
		Algorithm:     model.AlgorithmHybrid,
		TotalRequests: 4,
		Scheduled:     3,
		Unscheduled:   1,
		TotalScore:    2.1,
		Objective:     1.1,
		Iterations:    500,
		Duration:      250 * time.Millisecond,
		Time:          now,
	}

	if err := sink.RecordRun(res); err != nil {
		t.Fatalf("record error: %v", err)
	}
	p := write.NewPointWithMeasurement("optimizer_run").
		AddTag("run_id", "run1").
		AddTag("algorithm", "hybrid").
		AddField("total_requests", 4).
		AddField("scheduled", 3).
		AddField("unscheduled", 1).
		AddField("total_score", 2.1).
		AddField("objective", 1.1).
		AddField("iterations", 500).
		AddField("duration_ms", int64(250)).
		SetTime(now)
	expected := strings.TrimSpace(write.PointToLineProtocol(p, time.Nanosecond))
	if strings.TrimSpace(body) != expected {
		t.Errorf("unexpected body: %s", body)
	}
}

func TestInfluxSink_RecordAssignments(t *testing.T) {
	var bodies []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		bodies = append(bodies, strings.TrimSpace(string(b)))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	sink := NewInfluxSink(srv.URL, "token", "org", "bucket")
	now := time.Now()
	recs := []coremetrics.AssignmentRecord{{
		RunID:     "run1",
		Algorithm: model.AlgorithmClassical,
		RequestID: "req1",
		HostID:    "host1",
		SlotStart: now,
		Score:     0.8,
	}}
	if err := sink.RecordAssignments(recs); err != nil {
		t.Fatalf("record error: %v", err)
	}
	p := write.NewPointWithMeasurement("optimizer_assignment").
		AddTag("run_id", "run1").
		AddTag("algorithm", "classical").
		AddTag("host_id", "host1").
		AddTag("request_id", "req1").
		AddField("score", 0.8).
		SetTime(now)
	exp := strings.TrimSpace(write.PointToLineProtocol(p, time.Nanosecond))
	if len(bodies) != 1 || bodies[0] != exp {
		t.Errorf("bodies: %#v", bodies)
	}
}

func TestNewInfluxSinkWithFallback(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			called = true
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
	}))
	defer srv.Close()

	sink := NewInfluxSinkWithFallback(srv.URL+"/api/v2/write", "tok", "org", "bucket")
	if _, ok := sink.(*InfluxSink); ok {
		t.Fatalf("expected NopSink on failing health check")
	}
	if !called {
		t.Fatalf("health endpoint not called")
	}
}
