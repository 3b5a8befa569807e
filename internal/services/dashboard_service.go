package services

import (
	"context"
	"fmt"
	"math"

	"fleettrack/internal/models"
	"fleettrack/internal/repositories"

	"golang.org/x/sync/errgroup"
)

const (
	defaultActivityLimit = 10
	maxActivityLimit     = 100
)

type DashboardService struct {
	customerRepo repositories.CustomerRepositoryInterface
	vehicleRepo  repositories.VehicleRepositoryInterface
	alertRepo    repositories.AlertRepositoryInterface
	activityRepo repositories.ActivityRepositoryInterface
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	customerRepo repositories.CustomerRepositoryInterface,
	vehicleRepo repositories.VehicleRepositoryInterface,
	alertRepo repositories.AlertRepositoryInterface,
	activityRepo repositories.ActivityRepositoryInterface,
) DashboardServiceInterface {
	return &DashboardService{
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		alertRepo:    alertRepo,
		activityRepo: activityRepo,
	}
}

// Overview computes the headline figures from the live stores
func (s *DashboardService) Overview(ctx context.Context) (*models.DashboardOverview, error) {
	var (
		customers []models.Customer
		counts    map[string]int
		alerts    []models.Alert
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		customers, err = s.customerRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		counts, err = s.vehicleRepo.CountByStatus(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		alerts, err = s.alertRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load dashboard overview: %w", err)
	}

	overview := &models.DashboardOverview{
		VehiclesOnline: counts[models.VehicleStatusActive],
		OpenAlerts:     len(alerts),
	}
	for _, count := range counts {
		overview.TotalVehicles += count
	}
	for _, c := range customers {
		if c.IsActive() {
			overview.ActiveCustomers++
		}
	}
	for _, a := range alerts {
		if a.Severity == models.AlertSeverityHigh {
			overview.HighSeverityAlerts++
		}
	}
	if overview.TotalVehicles > 0 {
		percent := float64(overview.VehiclesOnline) * 100 / float64(overview.TotalVehicles)
		overview.VehiclesOnlinePercent = math.Round(percent*10) / 10
	}

	return overview, nil
}

// RecentActivity returns up to limit feed entries in stored order
func (s *DashboardService) RecentActivity(ctx context.Context, limit int) ([]models.ActivityEvent, error) {
	if limit <= 0 {
		limit = defaultActivityLimit
	}
	if limit > maxActivityLimit {
		limit = maxActivityLimit
	}

	events, err := s.activityRepo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent activity: %w", err)
	}
	return events, nil
}
