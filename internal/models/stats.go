package models

import "github.com/shopspring/decimal"

// CustomerStats summarises the full customer dataset
type CustomerStats struct {
	Total            int             `json:"total"`
	Active           int             `json:"active"`
	Pending          int             `json:"pending"`
	Inactive         int             `json:"inactive"`
	VehiclesAssigned int             `json:"vehicles_assigned"`
	TotalRevenue     decimal.Decimal `json:"total_revenue"`
	RevenueThousands int64           `json:"revenue_thousands"`
}

// VehicleStats summarises the full vehicle dataset
type VehicleStats struct {
	Total            int `json:"total"`
	Active           int `json:"active"`
	Maintenance      int `json:"maintenance"`
	Inactive         int `json:"inactive"`
	AverageFuelLevel int `json:"average_fuel_level"`
}

// DashboardOverview is the headline stat row of the dashboard
type DashboardOverview struct {
	TotalVehicles         int     `json:"total_vehicles"`
	ActiveCustomers       int     `json:"active_customers"`
	VehiclesOnline        int     `json:"vehicles_online"`
	VehiclesOnlinePercent float64 `json:"vehicles_online_percent"`
	OpenAlerts            int     `json:"open_alerts"`
	HighSeverityAlerts    int     `json:"high_severity_alerts"`
}
