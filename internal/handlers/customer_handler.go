package handlers

import (
	"context"
	"io"
	"net/http"

	"fleettrack/internal/dto"
	"fleettrack/internal/errors"
	"fleettrack/internal/services"

	"github.com/labstack/echo/v4"
)

// CustomerHandler handles customer directory HTTP requests
type CustomerHandler struct {
	customerService services.CustomerDirectoryServiceInterface
	logger          services.FleetLoggerInterface
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(
	customerService services.CustomerDirectoryServiceInterface,
	logger services.FleetLoggerInterface,
) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
	}
}

// ListCustomers returns one page of the filtered customer directory
// @Summary List customers
// @Description Case-insensitive search over name, contact person and email, combined with an exact status filter
// @Tags Customers
// @Produce json
// @Param q query string false "Search term"
// @Param status query string false "Status filter" Enums(all, active, pending, inactive) default(all)
// @Param limit query int false "Page size (max 1000)" default(10)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListCustomersResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request parameters"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /customers [get]
func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ListCustomersRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "list_customers", err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, "list_customers", err.Error())
		return err
	}

	page, err := h.customerService.ListCustomers(ctx, criteriaFrom(req.Query, req.Status), req.Offset, req.Limit)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewListCustomersResponse(page))
}

// GetCustomer returns a single customer by its id
// @Summary Get customer
// @Tags Customers
// @Produce json
// @Param id path string true "Customer id" example(CUST-001)
// @Success 200 {object} dto.CustomerResponse
// @Failure 400 {object} errors.ErrorResponse "CUSTOMER_002 - Invalid customer id"
// @Failure 404 {object} errors.ErrorResponse "CUSTOMER_001 - Customer not found"
// @Router /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	ctx := c.Request().Context()

	req := dto.GetCustomerRequest{ID: c.Param("id")}
	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, "get_customer", err.Error())
		return SendError(c, errors.CustomerInvalidID, errors.WithDetails("id must look like CUST-001"))
	}

	customer, err := h.customerService.GetCustomer(ctx, req.ID)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewCustomerResponse(*customer))
}

// CustomerStats returns the summary cards of the customer page
// @Summary Customer statistics
// @Tags Customers
// @Produce json
// @Success 200 {object} models.CustomerStats
// @Router /customers/stats [get]
func (h *CustomerHandler) CustomerStats(c echo.Context) error {
	stats, err := h.customerService.CustomerStats(c.Request().Context())
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, stats)
}

// ExportCustomers downloads the filtered customer list as xlsx or csv
// @Summary Export customers
// @Tags Customers
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Param q query string false "Search term"
// @Param status query string false "Status filter"
// @Param format query string false "File format" Enums(xlsx, csv) default(xlsx)
// @Success 200 {file} file
// @Failure 400 {object} errors.ErrorResponse "EXPORT_001 - Unsupported export format"
// @Router /customers/export [get]
func (h *CustomerHandler) ExportCustomers(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ExportCustomersRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "export_customers", err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request parameters"))
	}

	if err := c.Validate(req); err != nil {
		h.logger.LogValidationFailure(ctx, "export_customers", err.Error())
		return err
	}

	format, err := exportFormat(req.Format)
	if err != nil {
		return sendServiceError(c, err)
	}

	criteria := criteriaFrom(req.Query, req.Status)
	return sendExport(c, "customers", format, func(ctx context.Context, w io.Writer) (int, error) {
		return h.customerService.ExportCustomers(ctx, criteria, format, w)
	})
}
