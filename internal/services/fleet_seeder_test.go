package services

import (
	"context"
	"errors"
	"testing"

	"fleettrack/internal/models"
	"fleettrack/internal/repositories/repository_mocks"
	"fleettrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"
)

type FleetSeederTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	customerRepo *repository_mocks.MockCustomerRepositoryInterface
	vehicleRepo  *repository_mocks.MockVehicleRepositoryInterface
	appender     *service_mocks.MockRecordAppender
	seeder       FleetSeederInterface
}

func TestFleetSeederSuite(t *testing.T) {
	suite.Run(t, new(FleetSeederTestSuite))
}

func (s *FleetSeederTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.customerRepo = repository_mocks.NewMockCustomerRepositoryInterface(s.ctrl)
	s.vehicleRepo = repository_mocks.NewMockVehicleRepositoryInterface(s.ctrl)
	s.appender = service_mocks.NewMockRecordAppender(s.ctrl)
	s.seeder = NewFleetSeeder(
		NewFleetGenerator(7),
		s.customerRepo,
		s.vehicleRepo,
		s.appender,
		NewFleetLogger(zap.NewNop()),
	)
}

func (s *FleetSeederTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *FleetSeederTestSuite) TestAppendSynthetic_NumbersAfterExistingRecords() {
	s.customerRepo.EXPECT().Count(gomock.Any()).Return(int64(6), nil)
	s.vehicleRepo.EXPECT().CountByStatus(gomock.Any()).Return(map[string]int{
		models.VehicleStatusActive:      3,
		models.VehicleStatusMaintenance: 1,
		models.VehicleStatusInactive:    1,
	}, nil)
	s.appender.EXPECT().
		AppendRecords(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, customers []models.Customer, vehicles []models.Vehicle) error {
			s.Require().Len(customers, 2)
			s.Require().Len(vehicles, 2)
			s.Equal("CUST-007", customers[0].Code)
			s.Equal("CUST-008", customers[1].Code)
			s.Equal("VH-0006", vehicles[0].Code)
			return nil
		})

	appended, err := s.seeder.AppendSynthetic(context.Background(), 2)

	s.Require().NoError(err)
	s.Equal(2, appended)
}

func (s *FleetSeederTestSuite) TestAppendSynthetic_RejectsCountOutOfRange() {
	for _, count := range []int{0, -3, MaxSyntheticRecords + 1} {
		appended, err := s.seeder.AppendSynthetic(context.Background(), count)

		s.ErrorIs(err, ErrInvalidSyntheticCount)
		s.True(IsInvalidSyntheticCount(err))
		s.Zero(appended)
	}
}

func (s *FleetSeederTestSuite) TestAppendSynthetic_CountFailure() {
	s.customerRepo.EXPECT().Count(gomock.Any()).Return(int64(0), errors.New("database down"))

	_, err := s.seeder.AppendSynthetic(context.Background(), 1)

	s.Require().Error(err)
	s.Contains(err.Error(), "failed to count customers")
}

func (s *FleetSeederTestSuite) TestAppendSynthetic_AppendFailure() {
	s.customerRepo.EXPECT().Count(gomock.Any()).Return(int64(0), nil)
	s.vehicleRepo.EXPECT().CountByStatus(gomock.Any()).Return(map[string]int{}, nil)
	s.appender.EXPECT().AppendRecords(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("constraint"))

	_, err := s.seeder.AppendSynthetic(context.Background(), 1)

	s.Require().Error(err)
	s.Contains(err.Error(), "failed to append synthetic records")
}
