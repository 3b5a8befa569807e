package repositories

import (
	"context"
	"fmt"

	"fleettrack/internal/models"

	"gorm.io/gorm"
)

type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new alert repository
func NewAlertRepository(db *gorm.DB) AlertRepositoryInterface {
	return &alertRepository{db: db}
}

func (r *alertRepository) List(ctx context.Context) ([]models.Alert, error) {
	var alerts []models.Alert
	if err := r.db.WithContext(ctx).Order(positionOrder).Find(&alerts).Error; err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	return alerts, nil
}

type telemetryRepository struct {
	db *gorm.DB
}

// NewTelemetryRepository creates a new telemetry repository
func NewTelemetryRepository(db *gorm.DB) TelemetryRepositoryInterface {
	return &telemetryRepository{db: db}
}

func (r *telemetryRepository) Locations(ctx context.Context) ([]models.VehicleLocation, error) {
	var locations []models.VehicleLocation
	if err := r.db.WithContext(ctx).Order(positionOrder).Find(&locations).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicle locations: %w", err)
	}
	return locations, nil
}

func (r *telemetryRepository) Performance(ctx context.Context) ([]models.PerformanceSample, error) {
	var samples []models.PerformanceSample
	if err := r.db.WithContext(ctx).Order(positionOrder).Find(&samples).Error; err != nil {
		return nil, fmt.Errorf("failed to list performance samples: %w", err)
	}
	return samples, nil
}

func (r *telemetryRepository) FuelEfficiency(ctx context.Context) ([]models.FuelEfficiency, error) {
	var efficiency []models.FuelEfficiency
	if err := r.db.WithContext(ctx).Order(positionOrder).Find(&efficiency).Error; err != nil {
		return nil, fmt.Errorf("failed to list fuel efficiency: %w", err)
	}
	return efficiency, nil
}
