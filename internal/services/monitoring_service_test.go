package services

import (
	"context"
	"errors"
	"testing"

	"fleettrack/internal/models"
	"fleettrack/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type MonitoringServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	alertRepo     *repository_mocks.MockAlertRepositoryInterface
	telemetryRepo *repository_mocks.MockTelemetryRepositoryInterface
	vehicleRepo   *repository_mocks.MockVehicleRepositoryInterface
	service       MonitoringServiceInterface
}

func TestMonitoringServiceSuite(t *testing.T) {
	suite.Run(t, new(MonitoringServiceTestSuite))
}

func (s *MonitoringServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.alertRepo = repository_mocks.NewMockAlertRepositoryInterface(s.ctrl)
	s.telemetryRepo = repository_mocks.NewMockTelemetryRepositoryInterface(s.ctrl)
	s.vehicleRepo = repository_mocks.NewMockVehicleRepositoryInterface(s.ctrl)
	s.service = NewMonitoringService(
		s.alertRepo,
		s.telemetryRepo,
		s.vehicleRepo,
		NewFleetLogger(zap.NewNop()),
		NewPrometheusMetrics(prometheus.NewRegistry()),
	)
}

func (s *MonitoringServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *MonitoringServiceTestSuite) TestAlerts_FilterBySeverity() {
	ctx := context.Background()
	s.alertRepo.EXPECT().List(ctx).Return(loadFixture(s.T()).Alerts, nil)

	alerts, err := s.service.Alerts(ctx, models.NewFilterCriteria().WithStatus(models.AlertSeverityMedium))

	s.Require().NoError(err)
	s.Equal([]string{"1", "4"}, codesOf(alerts))
}

func (s *MonitoringServiceTestSuite) TestAlerts_SearchByVehicle() {
	ctx := context.Background()
	s.alertRepo.EXPECT().List(ctx).Return(loadFixture(s.T()).Alerts, nil)

	alerts, err := s.service.Alerts(ctx, models.NewFilterCriteria().WithSearchTerm("vh-012"))

	s.Require().NoError(err)
	s.Require().Len(alerts, 1)
	s.Equal(models.AlertTypeSpeed, alerts[0].Type)
}

func (s *MonitoringServiceTestSuite) TestLocations() {
	ctx := context.Background()
	locations := loadFixture(s.T()).Locations
	s.telemetryRepo.EXPECT().Locations(ctx).Return(locations, nil)

	got, err := s.service.Locations(ctx)

	s.Require().NoError(err)
	s.Equal(locations, got)
}

func (s *MonitoringServiceTestSuite) TestPerformance_Error() {
	ctx := context.Background()
	s.telemetryRepo.EXPECT().Performance(ctx).Return(nil, errors.New("boom"))

	got, err := s.service.Performance(ctx)

	s.Nil(got)
	s.ErrorContains(err, "failed to load performance samples")
}

func (s *MonitoringServiceTestSuite) TestFuelEfficiency() {
	ctx := context.Background()
	rows := loadFixture(s.T()).FuelEfficiency
	s.telemetryRepo.EXPECT().FuelEfficiency(ctx).Return(rows, nil)

	got, err := s.service.FuelEfficiency(ctx)

	s.Require().NoError(err)
	s.Len(got, len(rows))
}

func (s *MonitoringServiceTestSuite) TestStatusDistribution_IncludesEmptyStatuses() {
	ctx := context.Background()
	s.vehicleRepo.EXPECT().CountByStatus(ctx).Return(map[string]int{models.VehicleStatusActive: 4}, nil)

	buckets, err := s.service.StatusDistribution(ctx)

	s.Require().NoError(err)
	s.Equal([]models.StatusBucket{
		{Status: models.VehicleStatusActive, Label: "Active", Count: 4, Color: models.StatusColorActive},
		{Status: models.VehicleStatusMaintenance, Label: "Maintenance", Count: 0, Color: models.StatusColorMaintenance},
		{Status: models.VehicleStatusInactive, Label: "Inactive", Count: 0, Color: models.StatusColorInactive},
	}, buckets)
}

func (s *MonitoringServiceTestSuite) TestStatusDistribution_DoesNotShareBucketTemplate() {
	ctx := context.Background()
	s.vehicleRepo.EXPECT().CountByStatus(ctx).Return(map[string]int{models.VehicleStatusInactive: 2}, nil)

	buckets, err := s.service.StatusDistribution(ctx)
	s.Require().NoError(err)
	buckets[2].Count = 99

	s.Equal(0, statusBuckets[2].Count)
}
