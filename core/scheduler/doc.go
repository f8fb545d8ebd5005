// Package scheduler assigns qualified meeting requests to (host, slot) pairs
// while maximizing an aggregate quality score under capacity, availability and
// buffer constraints.
//
// Three interchangeable planners share one feasibility engine:
//   - classical: deterministic greedy assignment ordered by request priority
//   - quantum: seeded simulated annealing (the name is kept for caller
//     compatibility; the search is classical)
//   - hybrid: greedy seed refined by a reduced annealing budget
//
// Every Optimize call works on a private copy of the inputs, so concurrent
// runs never share mutable state.
package scheduler
