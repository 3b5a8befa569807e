package database

import (
	"context"
	"fmt"

	"fleettrack/internal/models"

	"gorm.io/gorm"
)

// Seed inserts the fixture in one transaction. It is a no-op when customers
// already exist and reports whether anything was written.
func Seed(ctx context.Context, db *gorm.DB, fixture *Fixture) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to count customers: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		batches := []struct {
			name    string
			records interface{}
			size    int
		}{
			{"customers", &fixture.Customers, len(fixture.Customers)},
			{"vehicles", &fixture.Vehicles, len(fixture.Vehicles)},
			{"alerts", &fixture.Alerts, len(fixture.Alerts)},
			{"vehicle locations", &fixture.Locations, len(fixture.Locations)},
			{"performance samples", &fixture.Performance, len(fixture.Performance)},
			{"fuel efficiency", &fixture.FuelEfficiency, len(fixture.FuelEfficiency)},
			{"monthly metrics", &fixture.MonthlyMetrics, len(fixture.MonthlyMetrics)},
			{"fuel trends", &fixture.FuelTrends, len(fixture.FuelTrends)},
			{"reports", &fixture.Reports, len(fixture.Reports)},
			{"activity events", &fixture.Activity, len(fixture.Activity)},
		}

		for _, batch := range batches {
			if batch.size == 0 {
				continue
			}
			if err := tx.Create(batch.records).Error; err != nil {
				return fmt.Errorf("failed to seed %s: %w", batch.name, err)
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return true, nil
}

// AppendRecords adds customers and vehicles after the existing rows, keeping their order
func AppendRecords(ctx context.Context, db *gorm.DB, customers []models.Customer, vehicles []models.Vehicle) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(customers) > 0 {
			next, err := nextPosition(tx, &models.Customer{})
			if err != nil {
				return err
			}
			for i := range customers {
				customers[i].Position = next + i
			}
			if err := tx.Create(&customers).Error; err != nil {
				return fmt.Errorf("failed to append customers: %w", err)
			}
		}

		if len(vehicles) > 0 {
			next, err := nextPosition(tx, &models.Vehicle{})
			if err != nil {
				return err
			}
			for i := range vehicles {
				vehicles[i].Position = next + i
			}
			if err := tx.Create(&vehicles).Error; err != nil {
				return fmt.Errorf("failed to append vehicles: %w", err)
			}
		}

		return nil
	})
}

func nextPosition(tx *gorm.DB, model interface{}) (int, error) {
	var maxPosition int
	row := tx.Model(model).Select("COALESCE(MAX(position), -1)").Row()
	if err := row.Scan(&maxPosition); err != nil {
		return 0, fmt.Errorf("failed to read max position: %w", err)
	}
	return maxPosition + 1, nil
}
