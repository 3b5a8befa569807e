package services

import (
	"context"
	"io"
	"time"

	"fleettrack/internal/export"
	"fleettrack/internal/models"
)

// CustomerDirectoryServiceInterface lists, looks up and summarises customers
type CustomerDirectoryServiceInterface interface {
	ListCustomers(ctx context.Context, criteria models.FilterCriteria, offset, limit int) (*models.CustomerPage, error)
	GetCustomer(ctx context.Context, code string) (*models.Customer, error)
	CustomerStats(ctx context.Context) (*models.CustomerStats, error)
	ExportCustomers(ctx context.Context, criteria models.FilterCriteria, format export.Format, w io.Writer) (int, error)
}

// VehicleFleetServiceInterface lists, looks up and summarises vehicles
type VehicleFleetServiceInterface interface {
	ListVehicles(ctx context.Context, criteria models.FilterCriteria, offset, limit int) (*models.VehiclePage, error)
	GetVehicle(ctx context.Context, code string) (*models.Vehicle, error)
	VehicleStats(ctx context.Context) (*models.VehicleStats, error)
	ExportVehicles(ctx context.Context, criteria models.FilterCriteria, format export.Format, w io.Writer) (int, error)
}

// MonitoringServiceInterface serves the live monitoring views
type MonitoringServiceInterface interface {
	Alerts(ctx context.Context, criteria models.FilterCriteria) ([]models.Alert, error)
	Locations(ctx context.Context) ([]models.VehicleLocation, error)
	Performance(ctx context.Context) ([]models.PerformanceSample, error)
	FuelEfficiency(ctx context.Context) ([]models.FuelEfficiency, error)
	StatusDistribution(ctx context.Context) ([]models.StatusBucket, error)
}

// ReportServiceInterface serves report series and the report catalog
type ReportServiceInterface interface {
	MonthlyMetrics(ctx context.Context, period models.ReportPeriod) ([]models.MonthlyMetric, error)
	FuelTrends(ctx context.Context, period models.ReportPeriod) ([]models.FuelTrend, error)
	Catalog(ctx context.Context) ([]models.ReportDefinition, error)
}

// DashboardServiceInterface serves the dashboard landing page
type DashboardServiceInterface interface {
	Overview(ctx context.Context) (*models.DashboardOverview, error)
	RecentActivity(ctx context.Context, limit int) ([]models.ActivityEvent, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// FleetLoggerInterface emits structured events for fleet operations
type FleetLoggerInterface interface {
	LogListStarted(ctx context.Context, entity string, criteria models.FilterCriteria)
	LogListCompleted(ctx context.Context, entity string, total, matched int, durationMs int64)
	LogListFailed(ctx context.Context, entity string, errorMsg string, durationMs int64)
	LogRecordNotFound(ctx context.Context, entity string, code string)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
	LogExportCompleted(ctx context.Context, entity string, format string, rows int)
}

// FleetGeneratorInterface produces synthetic records for development data sets
type FleetGeneratorInterface interface {
	GenerateCustomers(count, firstNumber int) []models.Customer
	GenerateVehicles(count, firstNumber int) []models.Vehicle
}

// RecordAppender stores generated records after the existing ones
type RecordAppender interface {
	AppendRecords(ctx context.Context, customers []models.Customer, vehicles []models.Vehicle) error
}

// FleetSeederInterface grows a development data set with generated records
type FleetSeederInterface interface {
	AppendSynthetic(ctx context.Context, count int) (int, error)
}
