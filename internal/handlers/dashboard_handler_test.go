package handlers

import (
	"context"
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

func TestDashboardHandler_Overview(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := service_mocks.NewMockDashboardServiceInterface(ctrl)
	handler := NewDashboardHandler(service, service_mocks.NewMockFleetLoggerInterface(ctrl))

	service.EXPECT().Overview(gomock.Any()).Return(&models.DashboardOverview{
		TotalVehicles:         6,
		ActiveCustomers:       3,
		VehiclesOnline:        4,
		VehiclesOnlinePercent: 66.7,
		OpenAlerts:            4,
		HighSeverityAlerts:    2,
	}, nil)

	c, rec := newTestContext("/api/v1/dashboard/overview")
	require.NoError(t, handler.Overview(c))

	var overview models.DashboardOverview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &overview))
	assert.Equal(t, 66.7, overview.VehiclesOnlinePercent)
	assert.Equal(t, 2, overview.HighSeverityAlerts)
}

func TestDashboardHandler_RecentActivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := service_mocks.NewMockDashboardServiceInterface(ctrl)
	handler := NewDashboardHandler(service, service_mocks.NewMockFleetLoggerInterface(ctrl))

	service.EXPECT().RecentActivity(gomock.Any(), 2).Return([]models.ActivityEvent{
		{Type: "Vehicle Check-in", Description: "VH-001 returned to depot", MinutesAgo: 2, Status: "success"},
		{Type: "Maintenance Alert", Description: "VH-003 due for service", MinutesAgo: 90, Status: "warning"},
	}, nil)

	c, rec := newTestContext("/api/v1/dashboard/activity?limit=2")
	require.NoError(t, handler.RecentActivity(c))

	var resp dto.ActivityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 2)
	assert.Equal(t, "2 min ago", resp.Events[0].Time)
	assert.Equal(t, "1 hour ago", resp.Events[1].Time)
}

func TestDashboardHandler_RecentActivity_LimitTooLarge(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := service_mocks.NewMockFleetLoggerInterface(ctrl)
	handler := NewDashboardHandler(service_mocks.NewMockDashboardServiceInterface(ctrl), logger)

	logger.EXPECT().LogValidationFailure(gomock.Any(), "recent_activity", gomock.Any())

	c, _ := newTestContext("/api/v1/dashboard/activity?limit=500")
	assert.Error(t, handler.RecentActivity(c))
}

type stubPinger struct {
	err error
}

func (p stubPinger) HealthCheck(ctx context.Context) error {
	return p.err
}

func TestHealthCheckHandler(t *testing.T) {
	c, rec := newTestContext("/health")
	require.NoError(t, NewHealthCheckHandler(stubPinger{}).HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"healthy"`)

	c, rec = newTestContext("/health")
	require.NoError(t, NewHealthCheckHandler(stubPinger{err: stderrors.New("dial tcp: refused")}).HealthCheck(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	resp, err := decodeError(rec)
	require.NoError(t, err)
	assert.Equal(t, "SYSTEM_003", resp.Error.Code)
	assert.Equal(t, []string{"Database connection failed"}, resp.Error.Details)
}
