package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReportPeriod selects how many trailing months a report series covers
type ReportPeriod string

const (
	ReportPeriodOneMonth    ReportPeriod = "1month"
	ReportPeriodThreeMonths ReportPeriod = "3months"
	ReportPeriodSixMonths   ReportPeriod = "6months"
	ReportPeriodOneYear     ReportPeriod = "1year"

	DefaultReportPeriod = ReportPeriodSixMonths

	ReportStatusReady      = "ready"
	ReportStatusGenerating = "generating"
)

// Months returns the number of months covered by the period, or 0 if unknown
func (p ReportPeriod) Months() int {
	switch p {
	case ReportPeriodOneMonth:
		return 1
	case ReportPeriodThreeMonths:
		return 3
	case ReportPeriodSixMonths:
		return 6
	case ReportPeriodOneYear:
		return 12
	default:
		return 0
	}
}

// IsValid checks the period against the supported values
func (p ReportPeriod) IsValid() bool {
	return p.Months() > 0
}

// MonthlyMetric is one month of fleet revenue and utilisation
type MonthlyMetric struct {
	ID       uuid.UUID       `gorm:"type:uuid;primary_key" json:"-" yaml:"-"`
	Position int             `gorm:"not null;index" json:"-" yaml:"-"`
	Month    string          `gorm:"type:varchar(10);not null" json:"month" yaml:"month"`
	Revenue  decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"revenue" yaml:"revenue"`
	Expenses decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"expenses" yaml:"expenses"`
	Vehicles int             `gorm:"not null" json:"vehicles" yaml:"vehicles"`
	Distance int             `gorm:"not null" json:"distance" yaml:"distance"`
}

// BeforeCreate hook for MonthlyMetric
func (m *MonthlyMetric) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// Profit is revenue minus expenses
func (m *MonthlyMetric) Profit() decimal.Decimal {
	return m.Revenue.Sub(m.Expenses)
}

// TableName returns the table name for MonthlyMetric
func (m *MonthlyMetric) TableName() string {
	return "monthly_metrics"
}

// FuelTrend is one month of average consumption and fuel spend
type FuelTrend struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"-" yaml:"-"`
	Position    int             `gorm:"not null;index" json:"-" yaml:"-"`
	Month       string          `gorm:"type:varchar(10);not null" json:"month" yaml:"month"`
	Consumption float64         `gorm:"not null" json:"consumption" yaml:"consumption"`
	Cost        decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"cost" yaml:"cost"`
}

// BeforeCreate hook for FuelTrend
func (f *FuelTrend) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for FuelTrend
func (f *FuelTrend) TableName() string {
	return "fuel_trends"
}

// ReportDefinition is an entry of the report catalog
type ReportDefinition struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"-" yaml:"-"`
	Position      int       `gorm:"not null;index" json:"-" yaml:"-"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title" yaml:"title"`
	Description   string    `gorm:"type:varchar(500)" json:"description" yaml:"description"`
	LastGenerated string    `gorm:"type:varchar(10)" json:"last_generated" yaml:"last_generated"`
	Status        string    `gorm:"type:varchar(20);not null" json:"status" yaml:"status"`
	CreatedAt     time.Time `gorm:"not null" json:"-" yaml:"-"`
}

// BeforeCreate hook for ReportDefinition
func (r *ReportDefinition) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	return nil
}

// IsDownloadable reports whether the last generated copy can be fetched
func (r *ReportDefinition) IsDownloadable() bool {
	return r.Status == ReportStatusReady
}

// TableName returns the table name for ReportDefinition
func (r *ReportDefinition) TableName() string {
	return "report_definitions"
}
