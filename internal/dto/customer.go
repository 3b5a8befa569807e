package dto

import (
	"fleettrack/internal/models"

	"github.com/shopspring/decimal"
)

// ListCustomersRequest represents the query of the customer list
type ListCustomersRequest struct {
	Query  string `query:"q" validate:"max=200"`
	Status string `query:"status" validate:"omitempty,customer_status_filter"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=1000"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}

// ExportCustomersRequest selects the customers to export and the file format
type ExportCustomersRequest struct {
	Query  string `query:"q" validate:"max=200"`
	Status string `query:"status" validate:"omitempty,customer_status_filter"`
	Format string `query:"format" validate:"omitempty,export_format"`
}

// GetCustomerRequest identifies a single customer
type GetCustomerRequest struct {
	ID string `param:"id" validate:"required,customer_code"`
}

// CustomerResponse is a customer row as shown in the directory
type CustomerResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Initials         string          `json:"initials"`
	ContactPerson    string          `json:"contact_person"`
	Email            string          `json:"email"`
	Phone            string          `json:"phone"`
	Status           string          `json:"status"`
	VehiclesAssigned int             `json:"vehicles_assigned"`
	JoinDate         string          `json:"join_date"`
	LastActivity     string          `json:"last_activity"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	Address          string          `json:"address"`
}

// ListCustomersResponse represents one page of the filtered customer list
type ListCustomersResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	Total      int                `json:"total"`
	Matched    int                `json:"matched"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
	TotalPages int                `json:"total_pages"`
	Filter     FilterResponse     `json:"filter"`
}

// FilterResponse echoes the criteria applied to a list
type FilterResponse struct {
	Search string `json:"search"`
	Status string `json:"status"`
}

func NewCustomerResponse(c models.Customer) CustomerResponse {
	return CustomerResponse{
		ID:               c.Code,
		Name:             c.Name,
		Initials:         c.Initials(),
		ContactPerson:    c.ContactPerson,
		Email:            c.Email,
		Phone:            c.Phone,
		Status:           c.Status,
		VehiclesAssigned: c.VehiclesAssigned,
		JoinDate:         c.JoinDate,
		LastActivity:     c.LastActivity,
		TotalRevenue:     c.TotalRevenue,
		Address:          c.Address,
	}
}

// NewListCustomersResponse converts a service page; page count follows the matched total
func NewListCustomersResponse(page *models.CustomerPage) ListCustomersResponse {
	customers := make([]CustomerResponse, len(page.Items))
	for i, c := range page.Items {
		customers[i] = NewCustomerResponse(c)
	}

	return ListCustomersResponse{
		Customers:  customers,
		Total:      page.Total,
		Matched:    page.Matched,
		Limit:      page.Limit,
		Offset:     page.Offset,
		TotalPages: totalPages(page.Matched, page.Limit),
		Filter:     FilterResponse{Search: page.Criteria.SearchTerm, Status: page.Criteria.StatusFilter},
	}
}

func totalPages(matched, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := matched / limit
	if matched%limit > 0 {
		pages++
	}
	return pages
}
