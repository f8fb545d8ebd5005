package scheduler

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig indicates input validation failed before any search ran.
var ErrInvalidConfig = errors.New("scheduler: invalid configuration")

// InvariantError reports that the final validation pass found a constraint
// violation in the planner output. It indicates a planner bug and is never
// silently corrected.
type InvariantError struct {
	Violations []string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("scheduler: %d invariant violation(s): %s", len(e.Violations), strings.Join(e.Violations, "; "))
}
