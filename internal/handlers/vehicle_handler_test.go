package handlers

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"fleettrack/internal/dto"
	"fleettrack/internal/export"
	"fleettrack/internal/models"
	"fleettrack/internal/services"
	"fleettrack/internal/services/service_mocks"

	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type VehicleHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockVehicleFleetServiceInterface
	mockLogger  *service_mocks.MockFleetLoggerInterface
	handler     *VehicleHandler
}

func (s *VehicleHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockVehicleFleetServiceInterface(s.ctrl)
	s.mockLogger = service_mocks.NewMockFleetLoggerInterface(s.ctrl)
	s.handler = NewVehicleHandler(s.mockService, s.mockLogger)
}

func (s *VehicleHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestVehicleHandlerSuite(t *testing.T) {
	suite.Run(t, new(VehicleHandlerTestSuite))
}

func transitVehicle() models.Vehicle {
	return models.Vehicle{
		Code:         "VH-2023-012",
		Make:         "Volkswagen",
		Model:        "Crafter",
		Year:         2023,
		LicensePlate: "GHI-012",
		Status:       models.VehicleStatusInactive,
		Driver:       models.UnassignedDriver,
		FuelLevel:    15,
	}
}

func (s *VehicleHandlerTestSuite) TestListVehicles_ResolvesDisplayHelpers() {
	c, rec := newTestContext("/api/v1/vehicles?q=crafter&status=inactive")

	expected := models.FilterCriteria{SearchTerm: "crafter", StatusFilter: models.VehicleStatusInactive}
	s.mockService.EXPECT().
		ListVehicles(gomock.Any(), expected, 0, 0).
		Return(&models.VehiclePage{
			Items:    []models.Vehicle{transitVehicle()},
			Total:    6,
			Matched:  1,
			Limit:    10,
			Criteria: expected,
		}, nil)

	s.Require().NoError(s.handler.ListVehicles(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ListVehiclesResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1, resp.TotalPages)
	s.Require().Len(resp.Vehicles, 1)

	vehicle := resp.Vehicles[0]
	s.Equal("Volkswagen Crafter", vehicle.DisplayName)
	s.Equal(models.FuelBandLow, vehicle.FuelBand)
	s.False(vehicle.HasDriver)
}

func (s *VehicleHandlerTestSuite) TestListVehicles_CustomerStatusIsNotAVehicleStatus() {
	c, _ := newTestContext("/api/v1/vehicles?status=pending")

	s.mockLogger.EXPECT().LogValidationFailure(gomock.Any(), "list_vehicles", gomock.Any())

	err := s.handler.ListVehicles(c)

	var validationErrs validator.ValidationErrors
	s.Require().True(stderrors.As(err, &validationErrs))
	s.Equal("vehicle_status_filter", validationErrs[0].Tag())
}

func (s *VehicleHandlerTestSuite) TestListVehicles_LimitAboveMaximum() {
	c, _ := newTestContext("/api/v1/vehicles?limit=5000")

	s.mockLogger.EXPECT().LogValidationFailure(gomock.Any(), "list_vehicles", gomock.Any())

	err := s.handler.ListVehicles(c)
	s.Error(err)
}

func (s *VehicleHandlerTestSuite) TestGetVehicle() {
	tests := []struct {
		name       string
		id         string
		setup      func()
		wantStatus int
		wantCode   string
	}{
		{
			name: "found",
			id:   "VH-2023-012",
			setup: func() {
				v := transitVehicle()
				s.mockService.EXPECT().GetVehicle(gomock.Any(), "VH-2023-012").Return(&v, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "not found",
			id:   "VH-2099-001",
			setup: func() {
				s.mockService.EXPECT().GetVehicle(gomock.Any(), "VH-2099-001").Return(nil, services.ErrVehicleNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "VEHICLE_001",
		},
		{
			name: "malformed id",
			id:   "truck-7",
			setup: func() {
				s.mockLogger.EXPECT().LogValidationFailure(gomock.Any(), "get_vehicle", gomock.Any())
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "VEHICLE_002",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			c, rec := newTestContext("/api/v1/vehicles/" + tt.id)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)
			tt.setup()

			s.Require().NoError(s.handler.GetVehicle(c))
			s.Equal(tt.wantStatus, rec.Code)

			if tt.wantCode != "" {
				resp, err := decodeError(rec)
				s.Require().NoError(err)
				s.Equal(tt.wantCode, resp.Error.Code)
			}
		})
	}
}

func (s *VehicleHandlerTestSuite) TestVehicleStats() {
	c, rec := newTestContext("/api/v1/vehicles/stats")

	s.mockService.EXPECT().VehicleStats(gomock.Any()).Return(&models.VehicleStats{
		Total:            6,
		Active:           3,
		Maintenance:      1,
		Inactive:         1,
		AverageFuelLevel: 63,
	}, nil)

	s.Require().NoError(s.handler.VehicleStats(c))

	var stats models.VehicleStats
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &stats))
	s.Equal(63, stats.AverageFuelLevel)
}

func (s *VehicleHandlerTestSuite) TestExportVehicles_XLSX() {
	c, rec := newTestContext("/api/v1/vehicles/export?format=XLSX")

	s.mockService.EXPECT().
		ExportVehicles(gomock.Any(), models.NewFilterCriteria(), export.FormatXLSX, gomock.Any()).
		Return(6, nil)

	s.Require().NoError(s.handler.ExportVehicles(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(export.FormatXLSX.ContentType(), rec.Header().Get("Content-Type"))
	s.Equal(`attachment; filename="vehicles.xlsx"`, rec.Header().Get("Content-Disposition"))
}
