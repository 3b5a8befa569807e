package repositories

import (
	"context"
	"testing"

	"fleettrack/internal/database"
	"fleettrack/internal/models"

	"github.com/stretchr/testify/suite"
)

type VehicleRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo VehicleRepositoryInterface
	ctx  context.Context
}

func (s *VehicleRepositorySuite) SetupTest() {
	s.db = database.SetupSeededTestDB(s.T())
	s.repo = NewVehicleRepository(s.db.DB)
	s.ctx = context.Background()
}

func TestVehicleRepositorySuite(t *testing.T) {
	suite.Run(t, new(VehicleRepositorySuite))
}

func (s *VehicleRepositorySuite) TestList_KeepsFixtureOrder() {
	vehicles, err := s.repo.List(s.ctx)
	s.Require().NoError(err)

	codes := make([]string, 0, len(vehicles))
	for _, v := range vehicles {
		codes = append(codes, v.Code)
	}
	// fixture order is not sorted by code
	s.Equal([]string{"VH-2024-001", "VH-2024-002", "VH-2023-045", "VH-2023-012", "VH-2024-003"}, codes)
}

func (s *VehicleRepositorySuite) TestGetByCode() {
	vehicle, err := s.repo.GetByCode(s.ctx, "VH-2023-012")
	s.Require().NoError(err)
	s.Equal("Volkswagen", vehicle.Make)
	s.False(vehicle.HasDriver())
}

func (s *VehicleRepositorySuite) TestGetByCode_NotFound() {
	_, err := s.repo.GetByCode(s.ctx, "VH-0000")
	s.ErrorIs(err, ErrVehicleNotFound)
}

func (s *VehicleRepositorySuite) TestCountByStatus() {
	counts, err := s.repo.CountByStatus(s.ctx)
	s.Require().NoError(err)
	s.Equal(map[string]int{
		models.VehicleStatusActive:      3,
		models.VehicleStatusMaintenance: 1,
		models.VehicleStatusInactive:    1,
	}, counts)
}
