package dto

import "fleettrack/internal/models"

// ListVehiclesRequest represents the query of the vehicle list
type ListVehiclesRequest struct {
	Query  string `query:"q" validate:"max=200"`
	Status string `query:"status" validate:"omitempty,vehicle_status_filter"`
	Limit  int    `query:"limit" validate:"omitempty,min=1,max=1000"`
	Offset int    `query:"offset" validate:"omitempty,min=0"`
}

type ExportVehiclesRequest struct {
	Query  string `query:"q" validate:"max=200"`
	Status string `query:"status" validate:"omitempty,vehicle_status_filter"`
	Format string `query:"format" validate:"omitempty,export_format"`
}

type GetVehicleRequest struct {
	ID string `param:"id" validate:"required,vehicle_code"`
}

// VehicleResponse is a vehicle row with its display helpers resolved
type VehicleResponse struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	LicensePlate string `json:"license_plate"`
	Status       string `json:"status"`
	Location     string `json:"location"`
	Driver       string `json:"driver"`
	HasDriver    bool   `json:"has_driver"`
	FuelLevel    int    `json:"fuel_level"`
	FuelBand     string `json:"fuel_band"`
	Mileage      int    `json:"mileage"`
	LastService  string `json:"last_service"`
	NextService  string `json:"next_service"`
}

type ListVehiclesResponse struct {
	Vehicles   []VehicleResponse `json:"vehicles"`
	Total      int               `json:"total"`
	Matched    int               `json:"matched"`
	Limit      int               `json:"limit"`
	Offset     int               `json:"offset"`
	TotalPages int               `json:"total_pages"`
	Filter     FilterResponse    `json:"filter"`
}

func NewVehicleResponse(v models.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:           v.Code,
		DisplayName:  v.DisplayName(),
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		LicensePlate: v.LicensePlate,
		Status:       v.Status,
		Location:     v.Location,
		Driver:       v.Driver,
		HasDriver:    v.HasDriver(),
		FuelLevel:    v.FuelLevel,
		FuelBand:     models.FuelLevelBand(v.FuelLevel),
		Mileage:      v.Mileage,
		LastService:  v.LastService,
		NextService:  v.NextService,
	}
}

func NewListVehiclesResponse(page *models.VehiclePage) ListVehiclesResponse {
	vehicles := make([]VehicleResponse, len(page.Items))
	for i, v := range page.Items {
		vehicles[i] = NewVehicleResponse(v)
	}

	return ListVehiclesResponse{
		Vehicles:   vehicles,
		Total:      page.Total,
		Matched:    page.Matched,
		Limit:      page.Limit,
		Offset:     page.Offset,
		TotalPages: totalPages(page.Matched, page.Limit),
		Filter:     FilterResponse{Search: page.Criteria.SearchTerm, Status: page.Criteria.StatusFilter},
	}
}
