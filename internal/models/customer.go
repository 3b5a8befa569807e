package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	CustomerStatusActive   = "active"
	CustomerStatusPending  = "pending"
	CustomerStatusInactive = "inactive"

	// DateLayout is the calendar date format used by the fleet datasets
	DateLayout = "2006-01-02"
)

var (
	ErrInvalidCustomerStatus = errors.New("invalid customer status")

	customerCodeRegex = regexp.MustCompile(`^CUST-\d{3,}$`)
	emailRegex        = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// Customer is a fleet customer account
type Customer struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"-" yaml:"-"`
	Code             string          `gorm:"type:varchar(20);uniqueIndex;not null" json:"id" yaml:"id"`
	Position         int             `gorm:"not null;index" json:"-" yaml:"-"`
	Name             string          `gorm:"type:varchar(255);not null" json:"name" yaml:"name"`
	ContactPerson    string          `gorm:"type:varchar(255)" json:"contact_person" yaml:"contact_person"`
	Email            string          `gorm:"type:varchar(255)" json:"email" yaml:"email"`
	Phone            string          `gorm:"type:varchar(50)" json:"phone" yaml:"phone"`
	Status           string          `gorm:"type:varchar(20);not null;default:'active'" json:"status" yaml:"status"`
	VehiclesAssigned int             `gorm:"not null;default:0" json:"vehicles_assigned" yaml:"vehicles_assigned"`
	JoinDate         string          `gorm:"type:varchar(10)" json:"join_date" yaml:"join_date"`
	LastActivity     string          `gorm:"type:varchar(10)" json:"last_activity" yaml:"last_activity"`
	TotalRevenue     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"total_revenue" yaml:"total_revenue"`
	Address          string          `gorm:"type:varchar(500)" json:"address" yaml:"address"`
	CreatedAt        time.Time       `gorm:"not null" json:"-" yaml:"-"`
	UpdatedAt        time.Time       `gorm:"not null" json:"-" yaml:"-"`
}

// BeforeCreate hook for Customer
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	if c.Status == "" {
		c.Status = CustomerStatusActive
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// Validate validates the customer fields
func (c *Customer) Validate() error {
	if !customerCodeRegex.MatchString(c.Code) {
		return fmt.Errorf("invalid customer id: %q", c.Code)
	}

	if strings.TrimSpace(c.Name) == "" {
		return errors.New("customer name is required")
	}

	if c.Email != "" && !emailRegex.MatchString(c.Email) {
		return errors.New("invalid email format")
	}

	if !IsValidCustomerStatus(c.Status) {
		return ErrInvalidCustomerStatus
	}

	if c.VehiclesAssigned < 0 {
		return errors.New("vehicles assigned cannot be negative")
	}

	if c.TotalRevenue.IsNegative() {
		return errors.New("total revenue cannot be negative")
	}

	if err := validateDate(c.JoinDate); err != nil {
		return fmt.Errorf("join date: %w", err)
	}

	if err := validateDate(c.LastActivity); err != nil {
		return fmt.Errorf("last activity: %w", err)
	}

	return nil
}

// FieldValue implements Record
func (c Customer) FieldValue(name string) (string, bool) {
	switch name {
	case FieldID:
		return c.Code, true
	case FieldName:
		return c.Name, true
	case FieldContactPerson:
		return c.ContactPerson, true
	case FieldEmail:
		return c.Email, true
	case FieldPhone:
		return c.Phone, true
	case FieldAddress:
		return c.Address, true
	case FieldStatus:
		return c.Status, true
	case FieldJoinDate:
		return c.JoinDate, true
	case FieldLastActivity:
		return c.LastActivity, true
	default:
		return "", false
	}
}

// IsActive returns true if the customer is active
func (c *Customer) IsActive() bool {
	return c.Status == CustomerStatusActive
}

// Initials returns up to two upper-case initials of the customer name
func (c *Customer) Initials() string {
	return Initials(c.Name)
}

// TableName returns the table name for Customer
func (c *Customer) TableName() string {
	return "customers"
}

// IsValidCustomerStatus checks if the customer status is valid
func IsValidCustomerStatus(status string) bool {
	switch status {
	case CustomerStatusActive, CustomerStatusPending, CustomerStatusInactive:
		return true
	default:
		return false
	}
}

// Initials takes the first letter of each word and keeps the first two
func Initials(name string) string {
	var initials []rune
	for _, word := range strings.Fields(name) {
		if len(initials) == 2 {
			break
		}
		initials = append(initials, []rune(strings.ToUpper(word))[0])
	}
	return string(initials)
}

func validateDate(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(DateLayout, value); err != nil {
		return fmt.Errorf("invalid date %q", value)
	}
	return nil
}
