package services

import (
	"context"
	"fmt"

	"fleettrack/internal/models"
	"fleettrack/internal/repositories"
)

// statusBuckets fixes the order, label and colour of the status distribution slices
var statusBuckets = []models.StatusBucket{
	{Status: models.VehicleStatusActive, Label: "Active", Color: models.StatusColorActive},
	{Status: models.VehicleStatusMaintenance, Label: "Maintenance", Color: models.StatusColorMaintenance},
	{Status: models.VehicleStatusInactive, Label: "Inactive", Color: models.StatusColorInactive},
}

type MonitoringService struct {
	alertRepo     repositories.AlertRepositoryInterface
	telemetryRepo repositories.TelemetryRepositoryInterface
	vehicleRepo   repositories.VehicleRepositoryInterface
	pipeline      listPipeline
}

// NewMonitoringService creates a new monitoring service
func NewMonitoringService(
	alertRepo repositories.AlertRepositoryInterface,
	telemetryRepo repositories.TelemetryRepositoryInterface,
	vehicleRepo repositories.VehicleRepositoryInterface,
	logger FleetLoggerInterface,
	metrics MetricsRecorderInterface,
	opts ...ServiceOption,
) MonitoringServiceInterface {
	return &MonitoringService{
		alertRepo:     alertRepo,
		telemetryRepo: telemetryRepo,
		vehicleRepo:   vehicleRepo,
		pipeline:      newListPipeline(logger, metrics, opts),
	}
}

// Alerts returns the alerts matching criteria; severity is the status field
func (s *MonitoringService) Alerts(ctx context.Context, criteria models.FilterCriteria) ([]models.Alert, error) {
	alerts, _, err := runList(ctx, s.pipeline, models.AlertSchema, s.alertRepo.List, criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

func (s *MonitoringService) Locations(ctx context.Context) ([]models.VehicleLocation, error) {
	locations, err := loadGuarded(ctx, s.pipeline, s.telemetryRepo.Locations)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicle locations: %w", err)
	}
	return locations, nil
}

func (s *MonitoringService) Performance(ctx context.Context) ([]models.PerformanceSample, error) {
	samples, err := loadGuarded(ctx, s.pipeline, s.telemetryRepo.Performance)
	if err != nil {
		return nil, fmt.Errorf("failed to load performance samples: %w", err)
	}
	return samples, nil
}

func (s *MonitoringService) FuelEfficiency(ctx context.Context) ([]models.FuelEfficiency, error) {
	rows, err := loadGuarded(ctx, s.pipeline, s.telemetryRepo.FuelEfficiency)
	if err != nil {
		return nil, fmt.Errorf("failed to load fuel efficiency: %w", err)
	}
	return rows, nil
}

// StatusDistribution counts vehicles per status from the live vehicle store.
// Every known status is present, including those with no vehicles.
func (s *MonitoringService) StatusDistribution(ctx context.Context) ([]models.StatusBucket, error) {
	var counts map[string]int
	err := s.pipeline.guard(ctx, func(ctx context.Context) error {
		var loadErr error
		counts, loadErr = s.vehicleRepo.CountByStatus(ctx)
		return loadErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to count vehicles by status: %w", err)
	}

	buckets := make([]models.StatusBucket, len(statusBuckets))
	for i, bucket := range statusBuckets {
		bucket.Count = counts[bucket.Status]
		buckets[i] = bucket
	}

	s.pipeline.metrics.RecordGauge(MetricActiveVehicles, float64(counts[models.VehicleStatusActive]), nil)

	return buckets, nil
}
