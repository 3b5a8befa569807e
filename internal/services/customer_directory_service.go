package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"fleettrack/internal/export"
	"fleettrack/internal/models"
	"fleettrack/internal/repositories"

	"github.com/shopspring/decimal"
)

var ErrCustomerNotFound = errors.New("customer not found")

var customerExportHeaders = []string{
	"ID", "Name", "Contact Person", "Email", "Phone", "Status",
	"Vehicles Assigned", "Join Date", "Last Activity", "Total Revenue", "Address",
}

// CustomerDirectoryService serves the customer management views
type CustomerDirectoryService struct {
	customerRepo repositories.CustomerRepositoryInterface
	pipeline     listPipeline
	limits       PageLimits
}

// NewCustomerDirectoryService creates a new customer directory service
func NewCustomerDirectoryService(
	customerRepo repositories.CustomerRepositoryInterface,
	logger FleetLoggerInterface,
	metrics MetricsRecorderInterface,
	limits PageLimits,
	opts ...ServiceOption,
) CustomerDirectoryServiceInterface {
	return &CustomerDirectoryService{
		customerRepo: customerRepo,
		pipeline:     newListPipeline(logger, metrics, opts),
		limits:       limits,
	}
}

// ListCustomers filters the whole customer list and returns the requested page
func (s *CustomerDirectoryService) ListCustomers(ctx context.Context, criteria models.FilterCriteria, offset, limit int) (*models.CustomerPage, error) {
	offset, limit = s.limits.clamp(offset, limit)

	matched, total, err := runList(ctx, s.pipeline, models.CustomerSchema, s.customerRepo.List, criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return &models.CustomerPage{
		Items:    paginate(matched, offset, limit),
		Total:    total,
		Matched:  len(matched),
		Offset:   offset,
		Limit:    limit,
		Criteria: criteria,
	}, nil
}

func (s *CustomerDirectoryService) GetCustomer(ctx context.Context, code string) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			s.pipeline.logger.LogRecordNotFound(ctx, models.CustomerSchema.Entity, code)
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	return customer, nil
}

// CustomerStats summarises the full, unfiltered customer list
func (s *CustomerDirectoryService) CustomerStats(ctx context.Context) (*models.CustomerStats, error) {
	customers, err := loadGuarded(ctx, s.pipeline, s.customerRepo.List)
	if err != nil {
		return nil, fmt.Errorf("failed to load customers: %w", err)
	}

	stats := &models.CustomerStats{
		Total:        len(customers),
		TotalRevenue: decimal.Zero,
	}
	for _, c := range customers {
		switch c.Status {
		case models.CustomerStatusActive:
			stats.Active++
		case models.CustomerStatusPending:
			stats.Pending++
		case models.CustomerStatusInactive:
			stats.Inactive++
		}
		stats.VehiclesAssigned += c.VehiclesAssigned
		stats.TotalRevenue = stats.TotalRevenue.Add(c.TotalRevenue)
	}
	stats.RevenueThousands = stats.TotalRevenue.Div(decimal.NewFromInt(1000)).Round(0).IntPart()

	return stats, nil
}

// ExportCustomers writes every customer matching criteria and returns the row count
func (s *CustomerDirectoryService) ExportCustomers(ctx context.Context, criteria models.FilterCriteria, format export.Format, w io.Writer) (int, error) {
	matched, _, err := runList(ctx, s.pipeline, models.CustomerSchema, s.customerRepo.List, criteria)
	if err != nil {
		return 0, fmt.Errorf("failed to list customers: %w", err)
	}

	rows := make([][]string, 0, len(matched))
	for _, c := range matched {
		rows = append(rows, []string{
			c.Code,
			c.Name,
			c.ContactPerson,
			c.Email,
			c.Phone,
			c.Status,
			strconv.Itoa(c.VehiclesAssigned),
			c.JoinDate,
			c.LastActivity,
			c.TotalRevenue.StringFixed(2),
			c.Address,
		})
	}

	table := export.Table{Sheet: "Customers", Headers: customerExportHeaders, Rows: rows}
	if err := export.Write(w, format, table); err != nil {
		return 0, err
	}

	s.pipeline.metrics.IncrementCounter(MetricExport, map[string]string{"entity": models.CustomerSchema.Entity, "format": string(format)})
	s.pipeline.logger.LogExportCompleted(ctx, models.CustomerSchema.Entity, string(format), len(rows))

	return len(rows), nil
}
