package models

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	VehicleStatusActive      = "active"
	VehicleStatusMaintenance = "maintenance"
	VehicleStatusInactive    = "inactive"

	FuelBandHigh   = "high"
	FuelBandMedium = "medium"
	FuelBandLow    = "low"

	// UnassignedDriver marks a vehicle with nobody behind the wheel
	UnassignedDriver = "Unassigned"
)

var (
	ErrInvalidVehicleStatus = errors.New("invalid vehicle status")
	ErrInvalidFuelLevel     = errors.New("fuel level must be between 0 and 100")

	vehicleCodeRegex = regexp.MustCompile(`^VH-\d{3,4}(-\d{3})?$`)
)

// Vehicle is a fleet vehicle
type Vehicle struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"-" yaml:"-"`
	Code         string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"id" yaml:"id"`
	Position     int       `gorm:"not null;index" json:"-" yaml:"-"`
	Make         string    `gorm:"type:varchar(100);not null" json:"make" yaml:"make"`
	Model        string    `gorm:"type:varchar(100);not null" json:"model" yaml:"model"`
	Year         int       `gorm:"not null" json:"year" yaml:"year"`
	LicensePlate string    `gorm:"type:varchar(20);not null" json:"license_plate" yaml:"license_plate"`
	Status       string    `gorm:"type:varchar(20);not null;default:'active'" json:"status" yaml:"status"`
	Location     string    `gorm:"type:varchar(255)" json:"location" yaml:"location"`
	Driver       string    `gorm:"type:varchar(255)" json:"driver" yaml:"driver"`
	FuelLevel    int       `gorm:"not null;default:0" json:"fuel_level" yaml:"fuel_level"`
	Mileage      int       `gorm:"not null;default:0" json:"mileage" yaml:"mileage"`
	LastService  string    `gorm:"type:varchar(10)" json:"last_service" yaml:"last_service"`
	NextService  string    `gorm:"type:varchar(10)" json:"next_service" yaml:"next_service"`
	CreatedAt    time.Time `gorm:"not null" json:"-" yaml:"-"`
	UpdatedAt    time.Time `gorm:"not null" json:"-" yaml:"-"`
}

// BeforeCreate hook for Vehicle
func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}

	if v.Status == "" {
		v.Status = VehicleStatusActive
	}

	if v.Driver == "" {
		v.Driver = UnassignedDriver
	}

	now := time.Now()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	if v.UpdatedAt.IsZero() {
		v.UpdatedAt = now
	}

	return v.Validate()
}

// Validate validates the vehicle fields
func (v *Vehicle) Validate() error {
	if !vehicleCodeRegex.MatchString(v.Code) {
		return fmt.Errorf("invalid vehicle id: %q", v.Code)
	}

	if strings.TrimSpace(v.Make) == "" || strings.TrimSpace(v.Model) == "" {
		return errors.New("vehicle make and model are required")
	}

	if strings.TrimSpace(v.LicensePlate) == "" {
		return errors.New("license plate is required")
	}

	if !IsValidVehicleStatus(v.Status) {
		return ErrInvalidVehicleStatus
	}

	if v.FuelLevel < 0 || v.FuelLevel > 100 {
		return ErrInvalidFuelLevel
	}

	if v.Mileage < 0 {
		return errors.New("mileage cannot be negative")
	}

	if err := validateDate(v.LastService); err != nil {
		return fmt.Errorf("last service: %w", err)
	}

	if err := validateDate(v.NextService); err != nil {
		return fmt.Errorf("next service: %w", err)
	}

	return nil
}

// FieldValue implements Record
func (v Vehicle) FieldValue(name string) (string, bool) {
	switch name {
	case FieldID:
		return v.Code, true
	case FieldMake:
		return v.Make, true
	case FieldModel:
		return v.Model, true
	case FieldYear:
		return strconv.Itoa(v.Year), true
	case FieldLicensePlate:
		return v.LicensePlate, true
	case FieldStatus:
		return v.Status, true
	case FieldLocation:
		return v.Location, true
	case FieldDriver:
		return v.Driver, true
	case FieldLastService:
		return v.LastService, true
	case FieldNextService:
		return v.NextService, true
	default:
		return "", false
	}
}

// DisplayName returns "Make Model"
func (v *Vehicle) DisplayName() string {
	return fmt.Sprintf("%s %s", v.Make, v.Model)
}

// IsActive returns true if the vehicle is operational
func (v *Vehicle) IsActive() bool {
	return v.Status == VehicleStatusActive
}

// HasDriver reports whether a driver is assigned
func (v *Vehicle) HasDriver() bool {
	return v.Driver != "" && v.Driver != UnassignedDriver
}

// TableName returns the table name for Vehicle
func (v *Vehicle) TableName() string {
	return "vehicles"
}

// IsValidVehicleStatus checks if the vehicle status is valid
func IsValidVehicleStatus(status string) bool {
	switch status {
	case VehicleStatusActive, VehicleStatusMaintenance, VehicleStatusInactive:
		return true
	default:
		return false
	}
}

// FuelLevelBand buckets a fuel percentage: above 70 is high, above 30 medium, else low
func FuelLevelBand(level int) string {
	if level > 70 {
		return FuelBandHigh
	}
	if level > 30 {
		return FuelBandMedium
	}
	return FuelBandLow
}
