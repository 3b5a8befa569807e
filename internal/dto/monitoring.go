package dto

import "fleettrack/internal/models"

// ListAlertsRequest filters the alert feed; severity plays the status role
type ListAlertsRequest struct {
	Query    string `query:"q" validate:"max=200"`
	Severity string `query:"severity" validate:"omitempty,alert_severity_filter"`
}

type AlertResponse struct {
	ID         int    `json:"id"`
	Type       string `json:"type"`
	Message    string `json:"message"`
	VehicleID  string `json:"vehicle_id"`
	Severity   string `json:"severity"`
	MinutesAgo int    `json:"minutes_ago"`
	Time       string `json:"time"`
}

type ListAlertsResponse struct {
	Alerts  []AlertResponse `json:"alerts"`
	Matched int             `json:"matched"`
	Filter  FilterResponse  `json:"filter"`
}

type LocationsResponse struct {
	Locations []models.VehicleLocation `json:"locations"`
}

type PerformanceResponse struct {
	Samples []models.PerformanceSample `json:"samples"`
}

type FuelEfficiencyResponse struct {
	Vehicles []models.FuelEfficiency `json:"vehicles"`
}

type StatusDistributionResponse struct {
	Buckets []models.StatusBucket `json:"buckets"`
	Total   int                   `json:"total"`
}

func NewListAlertsResponse(alerts []models.Alert, criteria models.FilterCriteria) ListAlertsResponse {
	out := make([]AlertResponse, len(alerts))
	for i, a := range alerts {
		out[i] = AlertResponse{
			ID:         a.Number,
			Type:       a.Type,
			Message:    a.Message,
			VehicleID:  a.VehicleCode,
			Severity:   a.Severity,
			MinutesAgo: a.MinutesAgo,
			Time:       a.AgeLabel(),
		}
	}

	return ListAlertsResponse{
		Alerts:  out,
		Matched: len(out),
		Filter:  FilterResponse{Search: criteria.SearchTerm, Status: criteria.StatusFilter},
	}
}

func NewStatusDistributionResponse(buckets []models.StatusBucket) StatusDistributionResponse {
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	return StatusDistributionResponse{Buckets: buckets, Total: total}
}
