package services

import (
	"context"
	"errors"
	"fmt"

	"fleettrack/internal/models"
	"fleettrack/internal/repositories"
)

var ErrInvalidReportPeriod = errors.New("invalid report period")

type ReportService struct {
	reportRepo repositories.ReportRepositoryInterface
	logger     FleetLoggerInterface
}

// NewReportService creates a new report service
func NewReportService(reportRepo repositories.ReportRepositoryInterface, logger FleetLoggerInterface) ReportServiceInterface {
	return &ReportService{
		reportRepo: reportRepo,
		logger:     logger,
	}
}

// MonthlyMetrics returns the trailing months of revenue data covered by period
func (s *ReportService) MonthlyMetrics(ctx context.Context, period models.ReportPeriod) ([]models.MonthlyMetric, error) {
	months, err := s.resolvePeriod(ctx, "monthly_metrics", period)
	if err != nil {
		return nil, err
	}

	metrics, err := s.reportRepo.MonthlyMetrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load monthly metrics: %w", err)
	}
	return trailing(metrics, months), nil
}

// FuelTrends returns the trailing months of fuel data covered by period
func (s *ReportService) FuelTrends(ctx context.Context, period models.ReportPeriod) ([]models.FuelTrend, error) {
	months, err := s.resolvePeriod(ctx, "fuel_trends", period)
	if err != nil {
		return nil, err
	}

	trends, err := s.reportRepo.FuelTrends(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load fuel trends: %w", err)
	}
	return trailing(trends, months), nil
}

func (s *ReportService) Catalog(ctx context.Context) ([]models.ReportDefinition, error) {
	catalog, err := s.reportRepo.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load report catalog: %w", err)
	}
	return catalog, nil
}

// resolvePeriod maps an empty period to the default and rejects unknown ones
func (s *ReportService) resolvePeriod(ctx context.Context, operation string, period models.ReportPeriod) (int, error) {
	if period == "" {
		period = models.DefaultReportPeriod
	}
	if !period.IsValid() {
		s.logger.LogValidationFailure(ctx, operation, fmt.Sprintf("unknown report period %q", period))
		return 0, ErrInvalidReportPeriod
	}
	return period.Months(), nil
}

// trailing returns the last n items, or all of them when fewer exist
func trailing[T any](items []T, n int) []T {
	if n >= len(items) {
		return items
	}
	return items[len(items)-n:]
}
