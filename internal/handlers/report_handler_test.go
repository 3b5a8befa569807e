package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"fleettrack/internal/dto"
	"fleettrack/internal/models"
	"fleettrack/internal/services"
	"fleettrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportHandler_MonthlyMetrics(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		period     models.ReportPeriod
		wantPeriod string
	}{
		{name: "explicit period", target: "/api/v1/reports/monthly?period=3months", period: models.ReportPeriodThreeMonths, wantPeriod: "3months"},
		{name: "default period", target: "/api/v1/reports/monthly", period: "", wantPeriod: "6months"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := service_mocks.NewMockReportServiceInterface(ctrl)
			handler := NewReportHandler(service, service_mocks.NewMockFleetLoggerInterface(ctrl))

			service.EXPECT().MonthlyMetrics(gomock.Any(), tt.period).Return([]models.MonthlyMetric{
				{Month: "Jun", Revenue: decimal.NewFromInt(67000), Expenses: decimal.NewFromInt(41000), Vehicles: 24, Distance: 18900},
			}, nil)

			c, rec := newTestContext(tt.target)
			require.NoError(t, handler.MonthlyMetrics(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			var resp dto.MonthlyMetricsResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantPeriod, resp.Period)
			require.Len(t, resp.Metrics, 1)
			assert.True(t, resp.Metrics[0].Profit.Equal(decimal.NewFromInt(26000)))
		})
	}
}

func TestReportHandler_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := service_mocks.NewMockFleetLoggerInterface(ctrl)
	handler := NewReportHandler(service_mocks.NewMockReportServiceInterface(ctrl), logger)

	logger.EXPECT().LogValidationFailure(gomock.Any(), "fuel_trends", gomock.Any())

	c, _ := newTestContext("/api/v1/reports/fuel-trends?period=2weeks")
	assert.Error(t, handler.FuelTrends(c))
}

func TestReportHandler_ServicePeriodErrorMapsToReportCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := service_mocks.NewMockReportServiceInterface(ctrl)
	handler := NewReportHandler(service, service_mocks.NewMockFleetLoggerInterface(ctrl))

	service.EXPECT().FuelTrends(gomock.Any(), models.ReportPeriodOneYear).Return(nil, services.ErrInvalidReportPeriod)

	c, rec := newTestContext("/api/v1/reports/fuel-trends?period=1year")
	require.NoError(t, handler.FuelTrends(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp, err := decodeError(rec)
	require.NoError(t, err)
	assert.Equal(t, "REPORT_001", resp.Error.Code)
}

func TestReportHandler_Catalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := service_mocks.NewMockReportServiceInterface(ctrl)
	handler := NewReportHandler(service, service_mocks.NewMockFleetLoggerInterface(ctrl))

	service.EXPECT().Catalog(gomock.Any()).Return([]models.ReportDefinition{
		{Title: "Monthly Fleet Summary", Status: models.ReportStatusReady},
		{Title: "Customer Revenue Report", Status: models.ReportStatusGenerating},
	}, nil)

	c, rec := newTestContext("/api/v1/reports")
	require.NoError(t, handler.Catalog(c))

	var resp dto.ReportCatalogResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Reports, 2)
	assert.True(t, resp.Reports[0].Downloadable)
	assert.False(t, resp.Reports[1].Downloadable)
}
