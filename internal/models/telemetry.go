package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status colours used by the fleet status distribution chart
const (
	StatusColorActive      = "#22c55e"
	StatusColorMaintenance = "#f59e0b"
	StatusColorInactive    = "#6b7280"
)

// VehicleLocation is the last known map position of a vehicle
type VehicleLocation struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"-" yaml:"-"`
	VehicleCode string    `gorm:"type:varchar(20);not null;index" json:"id" yaml:"id"`
	Position    int       `gorm:"not null;index" json:"-" yaml:"-"`
	Name        string    `gorm:"type:varchar(255)" json:"name" yaml:"name"`
	Latitude    float64   `gorm:"not null" json:"lat" yaml:"lat"`
	Longitude   float64   `gorm:"not null" json:"lng" yaml:"lng"`
	Status      string    `gorm:"type:varchar(20);not null" json:"status" yaml:"status"`
	Speed       int       `gorm:"not null;default:0" json:"speed" yaml:"speed"`
	Fuel        int       `gorm:"not null;default:0" json:"fuel" yaml:"fuel"`
	CreatedAt   time.Time `gorm:"not null" json:"-" yaml:"-"`
}

// BeforeCreate hook for VehicleLocation
func (l *VehicleLocation) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	return nil
}

// IsMoving reports whether the vehicle is active and has a positive speed
func (l *VehicleLocation) IsMoving() bool {
	return l.Status == VehicleStatusActive && l.Speed > 0
}

// TableName returns the table name for VehicleLocation
func (l *VehicleLocation) TableName() string {
	return "vehicle_locations"
}

// PerformanceSample is one point of the intraday fleet performance series
type PerformanceSample struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key" json:"-" yaml:"-"`
	Position        int       `gorm:"not null;index" json:"-" yaml:"-"`
	Slot            string    `gorm:"type:varchar(5);not null" json:"time" yaml:"time"`
	ActiveVehicles  int       `gorm:"not null" json:"active_vehicles" yaml:"active_vehicles"`
	FuelConsumption int       `gorm:"not null" json:"fuel_consumption" yaml:"fuel_consumption"`
	Distance        int       `gorm:"not null" json:"distance" yaml:"distance"`
}

// BeforeCreate hook for PerformanceSample
func (p *PerformanceSample) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for PerformanceSample
func (p *PerformanceSample) TableName() string {
	return "performance_samples"
}

// FuelEfficiency is the per-vehicle consumption figure shown by monitoring
type FuelEfficiency struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"-" yaml:"-"`
	Position    int       `gorm:"not null;index" json:"-" yaml:"-"`
	VehicleName string    `gorm:"type:varchar(255);not null" json:"vehicle" yaml:"vehicle"`
	Consumption float64   `gorm:"not null" json:"consumption" yaml:"consumption"`
	Efficiency  int       `gorm:"not null" json:"efficiency" yaml:"efficiency"`
}

// BeforeCreate hook for FuelEfficiency
func (f *FuelEfficiency) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for FuelEfficiency
func (f *FuelEfficiency) TableName() string {
	return "fuel_efficiency"
}

// StatusBucket is one slice of a status distribution
type StatusBucket struct {
	Status string `json:"status"`
	Label  string `json:"name"`
	Count  int    `json:"value"`
	Color  string `json:"color"`
}
