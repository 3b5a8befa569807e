package repositories

import (
	"context"
	"errors"
	"fmt"

	"fleettrack/internal/models"

	"gorm.io/gorm"
)

var ErrCustomerNotFound = errors.New("customer not found")

// positionOrder keeps list results in the order the records were loaded
const positionOrder = "position ASC"

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &customerRepository{db: db}
}

// List returns every customer in stored order
func (r *customerRepository) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.WithContext(ctx).Order(positionOrder).Find(&customers).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	return customers, nil
}

// GetByCode retrieves a customer by its public id, e.g. CUST-001
func (r *customerRepository) GetByCode(ctx context.Context, code string) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return &customer, nil
}

func (r *customerRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Customer{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count customers: %w", err)
	}
	return count, nil
}
