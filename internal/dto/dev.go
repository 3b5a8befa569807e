package dto

// GenerateFleetDataRequest asks for count generated customers and vehicles
type GenerateFleetDataRequest struct {
	Count int `query:"count" validate:"omitempty,min=1,max=1000"`
}

// GenerateFleetDataResponse reports what the generator appended
type GenerateFleetDataResponse struct {
	Message          string `json:"message"`
	CustomersCreated int    `json:"customers_created"`
	VehiclesCreated  int    `json:"vehicles_created"`
}
