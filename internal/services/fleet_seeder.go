package services

import (
	"context"
	"errors"
	"fmt"

	"fleettrack/internal/repositories"
)

// MaxSyntheticRecords bounds one AppendSynthetic call
const MaxSyntheticRecords = 1000

var ErrInvalidSyntheticCount = fmt.Errorf("synthetic record count must be between 1 and %d", MaxSyntheticRecords)

// FleetSeeder appends generated customers and vehicles, numbering their ids
// after the records already stored
type FleetSeeder struct {
	generator    FleetGeneratorInterface
	customerRepo repositories.CustomerRepositoryInterface
	vehicleRepo  repositories.VehicleRepositoryInterface
	appender     RecordAppender
	logger       FleetLoggerInterface
}

func NewFleetSeeder(
	generator FleetGeneratorInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	vehicleRepo repositories.VehicleRepositoryInterface,
	appender RecordAppender,
	logger FleetLoggerInterface,
) FleetSeederInterface {
	return &FleetSeeder{
		generator:    generator,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		appender:     appender,
		logger:       logger,
	}
}

// AppendSynthetic generates count customers and count vehicles and stores them.
// It returns the number of records appended per entity.
func (s *FleetSeeder) AppendSynthetic(ctx context.Context, count int) (int, error) {
	if count < 1 || count > MaxSyntheticRecords {
		s.logger.LogValidationFailure(ctx, "append_synthetic", ErrInvalidSyntheticCount.Error())
		return 0, ErrInvalidSyntheticCount
	}

	customerCount, err := s.customerRepo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}

	byStatus, err := s.vehicleRepo.CountByStatus(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count vehicles: %w", err)
	}
	vehicleCount := 0
	for _, n := range byStatus {
		vehicleCount += n
	}

	customers := s.generator.GenerateCustomers(count, int(customerCount)+1)
	vehicles := s.generator.GenerateVehicles(count, vehicleCount+1)

	if err := s.appender.AppendRecords(ctx, customers, vehicles); err != nil {
		return 0, fmt.Errorf("failed to append synthetic records: %w", err)
	}

	return count, nil
}

// IsInvalidSyntheticCount reports whether err rejects the requested count
func IsInvalidSyntheticCount(err error) bool {
	return errors.Is(err, ErrInvalidSyntheticCount)
}
