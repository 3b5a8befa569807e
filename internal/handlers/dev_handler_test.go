package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"fleettrack/internal/dto"
	"fleettrack/internal/services"
	"fleettrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDevHandler_GenerateFleetData(t *testing.T) {
	tests := []struct {
		name      string
		target    string
		wantCount int
	}{
		{name: "default count", target: "/api/v1/dev/generate", wantCount: 10},
		{name: "explicit count", target: "/api/v1/dev/generate?count=25", wantCount: 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			seeder := service_mocks.NewMockFleetSeederInterface(ctrl)
			handler := NewDevHandler(seeder, service_mocks.NewMockFleetLoggerInterface(ctrl))

			seeder.EXPECT().AppendSynthetic(gomock.Any(), tt.wantCount).Return(tt.wantCount, nil)

			c, rec := newTestContext(tt.target)
			require.NoError(t, handler.GenerateFleetData(c))

			assert.Equal(t, http.StatusCreated, rec.Code)
			var resp dto.GenerateFleetDataResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantCount, resp.CustomersCreated)
			assert.Equal(t, tt.wantCount, resp.VehiclesCreated)
		})
	}
}

func TestDevHandler_GenerateFleetData_RejectsBadCount(t *testing.T) {
	ctrl := gomock.NewController(t)
	seeder := service_mocks.NewMockFleetSeederInterface(ctrl)
	logger := service_mocks.NewMockFleetLoggerInterface(ctrl)
	handler := NewDevHandler(seeder, logger)

	logger.EXPECT().LogValidationFailure(gomock.Any(), "generate_fleet_data", gomock.Any()).Times(2)

	c, _ := newTestContext("/api/v1/dev/generate?count=5000")
	assert.Error(t, handler.GenerateFleetData(c))

	c, rec := newTestContext("/api/v1/dev/generate?count=many")
	require.NoError(t, handler.GenerateFleetData(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp, err := decodeError(rec)
	require.NoError(t, err)
	assert.Equal(t, "VALIDATION_001", resp.Error.Code)
}

func TestDevHandler_GenerateFleetData_SeederErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	seeder := service_mocks.NewMockFleetSeederInterface(ctrl)
	handler := NewDevHandler(seeder, service_mocks.NewMockFleetLoggerInterface(ctrl))

	seeder.EXPECT().AppendSynthetic(gomock.Any(), 10).Return(0, services.ErrInvalidSyntheticCount)
	c, rec := newTestContext("/api/v1/dev/generate")
	require.NoError(t, handler.GenerateFleetData(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	seeder.EXPECT().AppendSynthetic(gomock.Any(), 10).Return(0, stderrors.New("disk full"))
	c, rec = newTestContext("/api/v1/dev/generate")
	require.NoError(t, handler.GenerateFleetData(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
