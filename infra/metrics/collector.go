package metrics

import (
	"context"
	"time"

	"github.com/optimeet/optimeet/core/events"
	"github.com/optimeet/optimeet/core/logger"
	coremetrics "github.com/optimeet/optimeet/core/metrics"
	"github.com/optimeet/optimeet/internal/eventbus"
)

// StartEventCollector subscribes to the event bus and records metrics for
// completed runs. Record failures are logged at Warn, matching the direct
// sink path. It stops when the context is canceled.
func StartEventCollector(ctx context.Context, bus eventbus.EventBus, sink coremetrics.MetricsSink, log logger.Logger) {
	if bus == nil || sink == nil {
		return
	}
	sub := bus.Subscribe()
	go func() {
		defer bus.Unsubscribe(sub)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-sub:
				if !ok {
					return
				}
				e, ok := ev.(events.RunCompletedEvent)
				if !ok {
					continue
				}
				err := sink.RecordRun(coremetrics.RunResult{
					RunID:         e.RunID,
					Algorithm:     e.Algorithm,
					TotalRequests: e.Scheduled + e.Unscheduled,
					Scheduled:     e.Scheduled,
					Unscheduled:   e.Unscheduled,
					TotalScore:    e.TotalScore,
					Objective:     e.Objective,
					Iterations:    e.Iterations,
					Duration:      e.Duration,
					Time:          time.Now(),
				})
				if err != nil && log != nil {
					log.Warnf("run %s: record metrics: %v", e.RunID, err)
				}
			}
		}
	}()
}
