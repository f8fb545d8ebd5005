package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/optimeet/optimeet/core/events"
	"github.com/optimeet/optimeet/core/logger"
	"github.com/optimeet/optimeet/core/metrics"
	"github.com/optimeet/optimeet/core/model"
	"github.com/optimeet/optimeet/internal/eventbus"
)

// Options configures one Optimize call. Logger, Sink and Bus are optional.
type Options struct {
	Algorithm model.Algorithm
	Tuning    Tuning
	Logger    logger.Logger
	Sink      metrics.MetricsSink
	Bus       eventbus.EventBus
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}

// Optimize is the single operation the optimizer exposes: it validates the
// inputs, runs the selected planner on a private state copy and assembles the
// result. Infeasible requests and timeouts are encoded in the result;
// only invalid configuration and invariant violations return errors.
func Optimize(ctx context.Context, requests []model.MeetingRequest, hosts []model.Host, cons model.Constraints, opts Options) (*model.SchedulerResult, error) {
	log := opts.Logger
	if log == nil {
		log = nopLogger{}
	}
	var sink metrics.MetricsSink = metrics.NopSink{}
	if opts.Sink != nil {
		sink = opts.Sink
	}

	if len(hosts) == 0 {
		return nil, fmt.Errorf("%w: no hosts provided", ErrInvalidConfig)
	}
	if err := cons.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	alg := opts.Algorithm
	if alg == "" {
		alg = model.AlgorithmHybrid
	}
	planner, err := NewPlanner(alg, cons, opts.Tuning, log)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	if opts.Bus != nil {
		opts.Bus.Publish(events.RunStartedEvent{RunID: runID, Algorithm: alg, Requests: len(requests), Hosts: len(hosts)})
		opts.Bus.Publish(events.StrategyEvent{Algorithm: alg, Action: "selected"})
	}
	log.Infof("run %s: optimizing %d requests over %d hosts with %s", runID, len(requests), len(hosts), alg)

	start := time.Now()
	final, stats := planner.Plan(ctx, NewState(requests, hosts))
	elapsed := time.Since(start)

	res, err := assemble(runID, alg, final, NewEvaluator(cons), cons, stats, elapsed)
	if err != nil {
		log.Errorf("run %s: %v", runID, err)
		return nil, err
	}

	if err := sink.RecordRun(metrics.RunResult{
		RunID:         runID,
		Algorithm:     alg,
		TotalRequests: res.Metrics.TotalRequests,
		Scheduled:     res.Metrics.Scheduled,
		Unscheduled:   res.Metrics.Unscheduled,
		TotalScore:    res.Metrics.TotalScore,
		Objective:     stats.Objective,
		Iterations:    stats.Iterations,
		Duration:      elapsed,
		Time:          start,
	}); err != nil {
		log.Warnf("run %s: record metrics: %v", runID, err)
	}
	if rec, ok := sink.(metrics.AssignmentRecorder); ok && len(res.Assignments) > 0 {
		recs := make([]metrics.AssignmentRecord, len(res.Assignments))
		for i, a := range res.Assignments {
			recs[i] = metrics.AssignmentRecord{
				RunID:     runID,
				Algorithm: alg,
				RequestID: a.RequestID,
				HostID:    a.HostID,
				SlotStart: a.Slot.Start,
				Score:     a.Score,
			}
		}
		if err := rec.RecordAssignments(recs); err != nil {
			log.Warnf("run %s: record assignments: %v", runID, err)
		}
	}
	if opts.Bus != nil {
		opts.Bus.Publish(events.RunCompletedEvent{
			RunID:       runID,
			Algorithm:   alg,
			Scheduled:   res.Metrics.Scheduled,
			Unscheduled: res.Metrics.Unscheduled,
			TotalScore:  res.Metrics.TotalScore,
			Objective:   stats.Objective,
			Iterations:  stats.Iterations,
			Duration:    elapsed,
		})
	}
	log.Infof("run %s: scheduled %d/%d in %s", runID, res.Metrics.Scheduled, res.Metrics.TotalRequests, elapsed.Round(time.Millisecond))
	return res, nil
}
