package repositories

import (
	"context"

	"fleettrack/internal/models"
)

// CustomerRepositoryInterface defines the read contract of the customer store
type CustomerRepositoryInterface interface {
	List(ctx context.Context) ([]models.Customer, error)
	GetByCode(ctx context.Context, code string) (*models.Customer, error)
	Count(ctx context.Context) (int64, error)
}

// VehicleRepositoryInterface defines the read contract of the vehicle store
type VehicleRepositoryInterface interface {
	List(ctx context.Context) ([]models.Vehicle, error)
	GetByCode(ctx context.Context, code string) (*models.Vehicle, error)
	CountByStatus(ctx context.Context) (map[string]int, error)
}

// AlertRepositoryInterface defines the read contract of the alert feed
type AlertRepositoryInterface interface {
	List(ctx context.Context) ([]models.Alert, error)
}

// TelemetryRepositoryInterface serves the monitoring snapshots
type TelemetryRepositoryInterface interface {
	Locations(ctx context.Context) ([]models.VehicleLocation, error)
	Performance(ctx context.Context) ([]models.PerformanceSample, error)
	FuelEfficiency(ctx context.Context) ([]models.FuelEfficiency, error)
}

// ReportRepositoryInterface serves report series and the report catalog
type ReportRepositoryInterface interface {
	MonthlyMetrics(ctx context.Context) ([]models.MonthlyMetric, error)
	FuelTrends(ctx context.Context) ([]models.FuelTrend, error)
	Catalog(ctx context.Context) ([]models.ReportDefinition, error)
}

// ActivityRepositoryInterface serves the dashboard activity feed
type ActivityRepositoryInterface interface {
	Recent(ctx context.Context, limit int) ([]models.ActivityEvent, error)
}
