package dto

import "fleettrack/internal/models"

type ActivityRequest struct {
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

type ActivityEventResponse struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Time        string `json:"time"`
	Status      string `json:"status"`
}

type ActivityResponse struct {
	Events []ActivityEventResponse `json:"events"`
}

func NewActivityResponse(events []models.ActivityEvent) ActivityResponse {
	out := make([]ActivityEventResponse, len(events))
	for i, e := range events {
		out[i] = ActivityEventResponse{
			Type:        e.Type,
			Description: e.Description,
			Time:        models.RelativeMinutes(e.MinutesAgo),
			Status:      e.Status,
		}
	}
	return ActivityResponse{Events: out}
}
