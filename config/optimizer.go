package config

import (
	"fmt"
	"time"

	"github.com/optimeet/optimeet/core/model"
	"github.com/optimeet/optimeet/core/scheduler"
)

// OptimizerConfig selects the planning algorithm and its tuning knobs.
type OptimizerConfig struct {
	// Algorithm is "classical", "quantum" or "hybrid".
	Algorithm string `json:"algorithm"`

	MaxIterations    int   `json:"max_iterations"`
	RefineIterations int   `json:"refine_iterations"`
	TimeoutMs        int   `json:"timeout_ms"`
	Seed             int64 `json:"seed"`
	NumReads         int   `json:"num_reads"`
}

// SetDefaults applies sane defaults.
func (c *OptimizerConfig) SetDefaults() {
	if c.Algorithm == "" {
		c.Algorithm = string(model.AlgorithmHybrid)
	}
}

// Validate checks mandatory fields.
func (c OptimizerConfig) Validate() error {
	if _, err := model.ParseAlgorithm(c.Algorithm); err != nil {
		return err
	}
	if c.TimeoutMs < 0 {
		return fmt.Errorf("timeout_ms must not be negative")
	}
	if c.NumReads < 0 {
		return fmt.Errorf("num_reads must not be negative")
	}
	return nil
}

// ToTuning converts the file representation into planner tuning.
func (c OptimizerConfig) ToTuning() scheduler.Tuning {
	return scheduler.Tuning{
		MaxIterations:    c.MaxIterations,
		RefineIterations: c.RefineIterations,
		Timeout:          time.Duration(c.TimeoutMs) * time.Millisecond,
		Seed:             c.Seed,
		NumReads:         c.NumReads,
	}
}
