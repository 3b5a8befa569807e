package repositories

import (
	"context"
	"fmt"

	"fleettrack/internal/models"

	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) ReportRepositoryInterface {
	return &reportRepository{db: db}
}

// MonthlyMetrics returns the monthly series oldest first
func (r *reportRepository) MonthlyMetrics(ctx context.Context) ([]models.MonthlyMetric, error) {
	var metrics []models.MonthlyMetric
	if err := r.db.WithContext(ctx).Order(positionOrder).Find(&metrics).Error; err != nil {
		return nil, fmt.Errorf("failed to list monthly metrics: %w", err)
	}
	return metrics, nil
}

// FuelTrends returns the fuel series oldest first
func (r *reportRepository) FuelTrends(ctx context.Context) ([]models.FuelTrend, error) {
	var trends []models.FuelTrend
	if err := r.db.WithContext(ctx).Order(positionOrder).Find(&trends).Error; err != nil {
		return nil, fmt.Errorf("failed to list fuel trends: %w", err)
	}
	return trends, nil
}

func (r *reportRepository) Catalog(ctx context.Context) ([]models.ReportDefinition, error) {
	var reports []models.ReportDefinition
	if err := r.db.WithContext(ctx).Order(positionOrder).Find(&reports).Error; err != nil {
		return nil, fmt.Errorf("failed to list report catalog: %w", err)
	}
	return reports, nil
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) ActivityRepositoryInterface {
	return &activityRepository{db: db}
}

// Recent returns up to limit events, most recent first as stored; limit <= 0 returns all
func (r *activityRepository) Recent(ctx context.Context, limit int) ([]models.ActivityEvent, error) {
	query := r.db.WithContext(ctx).Order(positionOrder)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var events []models.ActivityEvent
	if err := query.Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	return events, nil
}
