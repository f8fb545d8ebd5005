package app

import (
	"context"
	"fmt"

	"github.com/optimeet/optimeet/config"
	coremetrics "github.com/optimeet/optimeet/core/metrics"
	"github.com/optimeet/optimeet/core/model"
	"github.com/optimeet/optimeet/core/scheduler"
	"github.com/optimeet/optimeet/infra/logger"
	"github.com/optimeet/optimeet/infra/metrics"
	"github.com/optimeet/optimeet/internal/eventbus"
)

// Service wires the optimizer to the configured constraints, metrics sinks
// and event bus. Metrics flow over the bus so a single collector records
// runs regardless of how many Optimize calls are in flight.
type Service struct {
	Constraints model.Constraints
	Algorithm   model.Algorithm
	Tuning      scheduler.Tuning

	bus      eventbus.EventBus
	sink     coremetrics.MetricsSink
	log      logger.Logger
	promPort int
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logger.Configure(cfg.Logging.Level, cfg.Logging.Env)
	logg := logger.New("service")

	cons, err := cfg.Event.ToConstraints()
	if err != nil {
		return nil, fmt.Errorf("event config: %w", err)
	}
	alg, err := model.ParseAlgorithm(cfg.Optimizer.Algorithm)
	if err != nil {
		return nil, err
	}
	sink, err := coremetrics.NewMetricsSink(cfg.Metrics.Sinks)
	if err != nil {
		return nil, fmt.Errorf("metrics sink: %w", err)
	}

	return &Service{
		Constraints: cons,
		Algorithm:   alg,
		Tuning:      cfg.Optimizer.ToTuning(),
		bus:         eventbus.New(),
		sink:        sink,
		log:         logg,
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// Start launches the background observers: the bus-to-sink collector and,
// when a port is configured, the Prometheus endpoint. Both stop when the
// context is canceled.
func (s *Service) Start(ctx context.Context) {
	metrics.StartEventCollector(ctx, s.bus, s.sink, s.log)
	if s.promPort > 0 {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
}

// Optimize runs one optimization over the given inputs with the configured
// constraints and algorithm.
func (s *Service) Optimize(ctx context.Context, requests []model.MeetingRequest, hosts []model.Host) (*model.SchedulerResult, error) {
	return scheduler.Optimize(ctx, requests, hosts, s.Constraints, scheduler.Options{
		Algorithm: s.Algorithm,
		Tuning:    s.Tuning,
		Logger:    s.log,
		Bus:       s.bus,
	})
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	s.bus.Close()
	if c, ok := s.sink.(interface{ Close() }); ok {
		c.Close()
	}
	return nil
}
