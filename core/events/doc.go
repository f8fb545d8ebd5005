// Package events defines the optimizer events emitted on the event bus.
//
// Available event types:
//   - RunStartedEvent: an optimization run began
//   - RunCompletedEvent: a run finished with its outcome
//   - StrategyEvent: planner selection information
package events
