package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ActivityStatusSuccess = "success"
	ActivityStatusWarning = "warning"
	ActivityStatusNeutral = "neutral"
)

// ActivityEvent is an entry of the dashboard recent activity feed
type ActivityEvent struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"-" yaml:"-"`
	Position    int       `gorm:"not null;index" json:"-" yaml:"-"`
	Type        string    `gorm:"type:varchar(100);not null" json:"type" yaml:"type"`
	Description string    `gorm:"type:varchar(500);not null" json:"description" yaml:"description"`
	MinutesAgo  int       `gorm:"not null;default:0" json:"minutes_ago" yaml:"minutes_ago"`
	Status      string    `gorm:"type:varchar(20);not null" json:"status" yaml:"status"`
	CreatedAt   time.Time `gorm:"not null" json:"-" yaml:"-"`
}

// BeforeCreate hook for ActivityEvent
func (a *ActivityEvent) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = ActivityStatusNeutral
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}
	return nil
}

// TableName returns the table name for ActivityEvent
func (a *ActivityEvent) TableName() string {
	return "activity_events"
}
