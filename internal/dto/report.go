package dto

import (
	"fleettrack/internal/models"

	"github.com/shopspring/decimal"
)

// ReportPeriodRequest selects the trailing window of a report series
type ReportPeriodRequest struct {
	Period string `query:"period" validate:"omitempty,report_period"`
}

type MonthlyMetricResponse struct {
	Month    string          `json:"month"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
	Profit   decimal.Decimal `json:"profit"`
	Vehicles int             `json:"vehicles"`
	Distance int             `json:"distance"`
}

type MonthlyMetricsResponse struct {
	Period  string                  `json:"period"`
	Metrics []MonthlyMetricResponse `json:"metrics"`
}

type FuelTrendsResponse struct {
	Period string             `json:"period"`
	Trends []models.FuelTrend `json:"trends"`
}

type ReportDefinitionResponse struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	LastGenerated string `json:"last_generated"`
	Status        string `json:"status"`
	Downloadable  bool   `json:"downloadable"`
}

type ReportCatalogResponse struct {
	Reports []ReportDefinitionResponse `json:"reports"`
}

func NewMonthlyMetricsResponse(period models.ReportPeriod, metrics []models.MonthlyMetric) MonthlyMetricsResponse {
	out := make([]MonthlyMetricResponse, len(metrics))
	for i, m := range metrics {
		out[i] = MonthlyMetricResponse{
			Month:    m.Month,
			Revenue:  m.Revenue,
			Expenses: m.Expenses,
			Profit:   m.Profit(),
			Vehicles: m.Vehicles,
			Distance: m.Distance,
		}
	}
	return MonthlyMetricsResponse{Period: string(period), Metrics: out}
}

func NewReportCatalogResponse(catalog []models.ReportDefinition) ReportCatalogResponse {
	out := make([]ReportDefinitionResponse, len(catalog))
	for i, r := range catalog {
		out[i] = ReportDefinitionResponse{
			Title:         r.Title,
			Description:   r.Description,
			LastGenerated: r.LastGenerated,
			Status:        r.Status,
			Downloadable:  r.IsDownloadable(),
		}
	}
	return ReportCatalogResponse{Reports: out}
}
