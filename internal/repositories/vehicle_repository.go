package repositories

import (
	"context"
	"errors"
	"fmt"

	"fleettrack/internal/models"

	"gorm.io/gorm"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository creates a new vehicle repository
func NewVehicleRepository(db *gorm.DB) VehicleRepositoryInterface {
	return &vehicleRepository{db: db}
}

// List returns every vehicle in stored order
func (r *vehicleRepository) List(ctx context.Context) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	if err := r.db.WithContext(ctx).Order(positionOrder).Find(&vehicles).Error; err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return vehicles, nil
}

// GetByCode retrieves a vehicle by its fleet id, e.g. VH-2024-001
func (r *vehicleRepository) GetByCode(ctx context.Context, code string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to get vehicle: %w", err)
	}
	return &vehicle, nil
}

// CountByStatus groups the fleet by status
func (r *vehicleRepository) CountByStatus(ctx context.Context) (map[string]int, error) {
	var rows []struct {
		Status string
		Total  int
	}

	err := r.db.WithContext(ctx).
		Model(&models.Vehicle{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count vehicles by status: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Total
	}
	return counts, nil
}
