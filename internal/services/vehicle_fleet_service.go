package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"fleettrack/internal/export"
	"fleettrack/internal/models"
	"fleettrack/internal/repositories"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

var vehicleExportHeaders = []string{
	"ID", "Make", "Model", "Year", "License Plate", "Status", "Location",
	"Driver", "Fuel Level", "Mileage", "Last Service", "Next Service",
}

// VehicleFleetService serves the vehicle management views
type VehicleFleetService struct {
	vehicleRepo repositories.VehicleRepositoryInterface
	pipeline    listPipeline
	limits      PageLimits
}

// NewVehicleFleetService creates a new vehicle fleet service
func NewVehicleFleetService(
	vehicleRepo repositories.VehicleRepositoryInterface,
	logger FleetLoggerInterface,
	metrics MetricsRecorderInterface,
	limits PageLimits,
	opts ...ServiceOption,
) VehicleFleetServiceInterface {
	return &VehicleFleetService{
		vehicleRepo: vehicleRepo,
		pipeline:    newListPipeline(logger, metrics, opts),
		limits:      limits,
	}
}

func (s *VehicleFleetService) ListVehicles(ctx context.Context, criteria models.FilterCriteria, offset, limit int) (*models.VehiclePage, error) {
	offset, limit = s.limits.clamp(offset, limit)

	matched, total, err := runList(ctx, s.pipeline, models.VehicleSchema, s.vehicleRepo.List, criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}

	return &models.VehiclePage{
		Items:    paginate(matched, offset, limit),
		Total:    total,
		Matched:  len(matched),
		Offset:   offset,
		Limit:    limit,
		Criteria: criteria,
	}, nil
}

func (s *VehicleFleetService) GetVehicle(ctx context.Context, code string) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrVehicleNotFound) {
			s.pipeline.logger.LogRecordNotFound(ctx, models.VehicleSchema.Entity, code)
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return vehicle, nil
}

// VehicleStats summarises the whole fleet; the average fuel level is rounded half up
func (s *VehicleFleetService) VehicleStats(ctx context.Context) (*models.VehicleStats, error) {
	vehicles, err := loadGuarded(ctx, s.pipeline, s.vehicleRepo.List)
	if err != nil {
		return nil, fmt.Errorf("failed to load vehicles: %w", err)
	}

	stats := &models.VehicleStats{Total: len(vehicles)}
	fuel := 0
	for _, v := range vehicles {
		switch v.Status {
		case models.VehicleStatusActive:
			stats.Active++
		case models.VehicleStatusMaintenance:
			stats.Maintenance++
		case models.VehicleStatusInactive:
			stats.Inactive++
		}
		fuel += v.FuelLevel
	}
	if len(vehicles) > 0 {
		stats.AverageFuelLevel = int(math.Round(float64(fuel) / float64(len(vehicles))))
	}

	s.pipeline.metrics.RecordGauge(MetricActiveVehicles, float64(stats.Active), nil)

	return stats, nil
}

// ExportVehicles writes every vehicle matching criteria and returns the row count
func (s *VehicleFleetService) ExportVehicles(ctx context.Context, criteria models.FilterCriteria, format export.Format, w io.Writer) (int, error) {
	matched, _, err := runList(ctx, s.pipeline, models.VehicleSchema, s.vehicleRepo.List, criteria)
	if err != nil {
		return 0, fmt.Errorf("failed to list vehicles: %w", err)
	}

	rows := make([][]string, 0, len(matched))
	for _, v := range matched {
		rows = append(rows, []string{
			v.Code,
			v.Make,
			v.Model,
			strconv.Itoa(v.Year),
			v.LicensePlate,
			v.Status,
			v.Location,
			v.Driver,
			strconv.Itoa(v.FuelLevel),
			strconv.Itoa(v.Mileage),
			v.LastService,
			v.NextService,
		})
	}

	table := export.Table{Sheet: "Vehicles", Headers: vehicleExportHeaders, Rows: rows}
	if err := export.Write(w, format, table); err != nil {
		return 0, err
	}

	s.pipeline.metrics.IncrementCounter(MetricExport, map[string]string{"entity": models.VehicleSchema.Entity, "format": string(format)})
	s.pipeline.logger.LogExportCompleted(ctx, models.VehicleSchema.Entity, string(format), len(rows))

	return len(rows), nil
}
