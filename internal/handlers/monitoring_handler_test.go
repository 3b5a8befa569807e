package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"fleettrack/internal/dto"
	"fleettrack/internal/models"
	"fleettrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonitoringHandler_ListAlerts(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := service_mocks.NewMockMonitoringServiceInterface(ctrl)
	logger := service_mocks.NewMockFleetLoggerInterface(ctrl)
	handler := NewMonitoringHandler(service, logger)

	c, rec := newTestContext("/api/v1/monitoring/alerts?q=fuel&severity=high")

	expected := models.FilterCriteria{SearchTerm: "fuel", StatusFilter: models.AlertSeverityHigh}
	service.EXPECT().Alerts(gomock.Any(), expected).Return([]models.Alert{
		{Number: 2, Type: "fuel", Message: "Low fuel level", VehicleCode: "VH-007", Severity: "high", MinutesAgo: 15},
	}, nil)

	require.NoError(t, handler.ListAlerts(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ListAlertsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, "15 min ago", resp.Alerts[0].Time)
	assert.Equal(t, "VH-007", resp.Alerts[0].VehicleID)
	assert.Equal(t, "high", resp.Filter.Status)
}

func TestMonitoringHandler_ListAlerts_RejectsUnknownSeverity(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := service_mocks.NewMockFleetLoggerInterface(ctrl)
	handler := NewMonitoringHandler(service_mocks.NewMockMonitoringServiceInterface(ctrl), logger)

	c, _ := newTestContext("/api/v1/monitoring/alerts?severity=critical")
	logger.EXPECT().LogValidationFailure(gomock.Any(), "list_alerts", gomock.Any())

	assert.Error(t, handler.ListAlerts(c))
}

func TestMonitoringHandler_StatusDistribution(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := service_mocks.NewMockMonitoringServiceInterface(ctrl)
	handler := NewMonitoringHandler(service, service_mocks.NewMockFleetLoggerInterface(ctrl))

	c, rec := newTestContext("/api/v1/monitoring/status-distribution")
	service.EXPECT().StatusDistribution(gomock.Any()).Return([]models.StatusBucket{
		{Status: "active", Label: "Active", Count: 3, Color: models.StatusColorActive},
		{Status: "maintenance", Label: "Maintenance", Count: 1, Color: models.StatusColorMaintenance},
		{Status: "inactive", Label: "Inactive", Count: 2, Color: models.StatusColorInactive},
	}, nil)

	require.NoError(t, handler.StatusDistribution(c))

	var resp dto.StatusDistributionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 6, resp.Total)
	assert.Equal(t, "Active", resp.Buckets[0].Label)
}

func TestMonitoringHandler_TelemetryViews(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := service_mocks.NewMockMonitoringServiceInterface(ctrl)
	handler := NewMonitoringHandler(service, service_mocks.NewMockFleetLoggerInterface(ctrl))

	service.EXPECT().Locations(gomock.Any()).Return([]models.VehicleLocation{{VehicleCode: "VH-001"}}, nil)
	service.EXPECT().Performance(gomock.Any()).Return([]models.PerformanceSample{{Slot: "08:00"}}, nil)
	service.EXPECT().FuelEfficiency(gomock.Any()).Return(nil, stderrors.New("store offline"))

	c, rec := newTestContext("/api/v1/monitoring/locations")
	require.NoError(t, handler.Locations(c))
	assert.Contains(t, rec.Body.String(), "VH-001")

	c, rec = newTestContext("/api/v1/monitoring/performance")
	require.NoError(t, handler.Performance(c))
	assert.Contains(t, rec.Body.String(), "08:00")

	c, rec = newTestContext("/api/v1/monitoring/fuel-efficiency")
	require.NoError(t, handler.FuelEfficiency(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
