package models

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AlertTypeMaintenance = "maintenance"
	AlertTypeFuel        = "fuel"
	AlertTypeSpeed       = "speed"
	AlertTypeLocation    = "location"

	AlertSeverityLow    = "low"
	AlertSeverityMedium = "medium"
	AlertSeverityHigh   = "high"
)

var ErrInvalidAlertSeverity = errors.New("invalid alert severity")

// Alert is a monitoring alert raised against a vehicle
type Alert struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"-" yaml:"-"`
	Number      int       `gorm:"uniqueIndex;not null" json:"id" yaml:"id"`
	Position    int       `gorm:"not null;index" json:"-" yaml:"-"`
	Type        string    `gorm:"type:varchar(50);not null" json:"type" yaml:"type"`
	Message     string    `gorm:"type:varchar(500);not null" json:"message" yaml:"message"`
	VehicleCode string    `gorm:"type:varchar(20)" json:"vehicle_id" yaml:"vehicle_id"`
	Severity    string    `gorm:"type:varchar(20);not null" json:"severity" yaml:"severity"`
	MinutesAgo  int       `gorm:"not null;default:0" json:"minutes_ago" yaml:"minutes_ago"`
	CreatedAt   time.Time `gorm:"not null" json:"-" yaml:"-"`
}

// BeforeCreate hook for Alert
func (a *Alert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return a.Validate()
}

// Validate validates the alert fields
func (a *Alert) Validate() error {
	if a.Number <= 0 {
		return errors.New("alert id must be positive")
	}
	if a.Message == "" {
		return errors.New("alert message is required")
	}
	switch a.Severity {
	case AlertSeverityLow, AlertSeverityMedium, AlertSeverityHigh:
	default:
		return ErrInvalidAlertSeverity
	}
	if a.MinutesAgo < 0 {
		return errors.New("alert age cannot be negative")
	}
	return nil
}

// FieldValue implements Record
func (a Alert) FieldValue(name string) (string, bool) {
	switch name {
	case FieldID:
		return strconv.Itoa(a.Number), true
	case FieldType:
		return a.Type, true
	case FieldMessage:
		return a.Message, true
	case FieldVehicleID:
		return a.VehicleCode, true
	case FieldSeverity:
		return a.Severity, true
	default:
		return "", false
	}
}

// AgeLabel renders the alert age the way the monitoring feed shows it
func (a *Alert) AgeLabel() string {
	return RelativeMinutes(a.MinutesAgo)
}

// TableName returns the table name for Alert
func (a *Alert) TableName() string {
	return "alerts"
}

// RelativeMinutes formats a minute count as "just now", "5 min ago", "2 hours ago" or "3 days ago"
func RelativeMinutes(minutes int) string {
	switch {
	case minutes <= 0:
		return "just now"
	case minutes < 60:
		return fmt.Sprintf("%d min ago", minutes)
	case minutes < 120:
		return "1 hour ago"
	case minutes < 24*60:
		return fmt.Sprintf("%d hours ago", minutes/60)
	case minutes < 48*60:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", minutes/(24*60))
	}
}
