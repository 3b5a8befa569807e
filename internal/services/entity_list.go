package services

import (
	"context"
	"time"

	"fleettrack/internal/models"
)

// ServiceOption customises a list-serving service
type ServiceOption func(*listPipeline)

// WithCircuitBreaker guards record store reads with breaker
func WithCircuitBreaker(breaker *CircuitBreaker) ServiceOption {
	return func(p *listPipeline) {
		p.breaker = breaker
	}
}

// listPipeline is shared by every filterable entity list
type listPipeline struct {
	logger  FleetLoggerInterface
	metrics MetricsRecorderInterface
	breaker *CircuitBreaker
}

func newListPipeline(logger FleetLoggerInterface, metrics MetricsRecorderInterface, opts []ServiceOption) listPipeline {
	p := listPipeline{logger: logger, metrics: metrics}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func (p listPipeline) guard(ctx context.Context, fn func(context.Context) error) error {
	if p.breaker == nil {
		return fn(ctx)
	}
	return p.breaker.Execute(ctx, fn)
}

// runList loads the full collection, filters it and records the outcome.
// It returns the matching records and the size of the unfiltered collection.
func runList[T models.Record](
	ctx context.Context,
	p listPipeline,
	schema models.EntitySchema,
	load func(context.Context) ([]T, error),
	criteria models.FilterCriteria,
) ([]T, int, error) {
	start := time.Now()
	p.logger.LogListStarted(ctx, schema.Entity, criteria)

	records, err := loadGuarded(ctx, p, load)
	if err != nil {
		duration := time.Since(start)
		p.logger.LogListFailed(ctx, schema.Entity, err.Error(), duration.Milliseconds())
		p.metrics.IncrementCounter(MetricListRequest, map[string]string{"entity": schema.Entity, "status": "error"})
		return nil, 0, err
	}

	matched := FilterRecords(records, schema, criteria)

	duration := time.Since(start)
	p.logger.LogListCompleted(ctx, schema.Entity, len(records), len(matched), duration.Milliseconds())
	p.metrics.IncrementCounter(MetricListRequest, map[string]string{"entity": schema.Entity, "status": "success"})
	p.metrics.RecordProcessingTime(durationMetric(schema.Entity), duration)
	p.metrics.RecordGauge(MetricListMatched, float64(len(matched)), map[string]string{"entity": schema.Entity})

	return matched, len(records), nil
}

// loadGuarded runs load behind the pipeline's circuit breaker, if any
func loadGuarded[T any](ctx context.Context, p listPipeline, load func(context.Context) ([]T, error)) ([]T, error) {
	var records []T
	err := p.guard(ctx, func(ctx context.Context) error {
		var loadErr error
		records, loadErr = load(ctx)
		return loadErr
	})
	return records, err
}
