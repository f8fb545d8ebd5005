package metrics

import "github.com/optimeet/optimeet/core/factory"

// Config selects the metrics sinks for a deployment. Each entry is a module
// config resolved through the sink registry ("prometheus", "influx", "nop").
type Config struct {
	Sinks []factory.ModuleConfig `json:"sinks"`
	// PrometheusPort is the listen address port for the metrics endpoint
	// when a prometheus sink is configured.
	PrometheusPort int `json:"prometheus_port"`
}
