package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer() Customer {
	return Customer{
		Code:             "CUST-001",
		Name:             "Acme Corporation",
		ContactPerson:    "John Smith",
		Email:            "john.smith@acme.com",
		Phone:            "+1 (555) 123-4567",
		Status:           CustomerStatusActive,
		VehiclesAssigned: 5,
		JoinDate:         "2023-01-15",
		LastActivity:     "2024-01-20",
		TotalRevenue:     decimal.NewFromInt(45000),
		Address:          "123 Business Ave, New York, NY",
	}
}

func TestCustomer_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Customer)
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid customer",
			mutate:  func(c *Customer) {},
			wantErr: false,
		},
		{
			name:    "malformed code",
			mutate:  func(c *Customer) { c.Code = "C-1" },
			wantErr: true,
			errMsg:  "invalid customer id",
		},
		{
			name:    "blank name",
			mutate:  func(c *Customer) { c.Name = "   " },
			wantErr: true,
			errMsg:  "customer name is required",
		},
		{
			name:    "bad email",
			mutate:  func(c *Customer) { c.Email = "not-an-email" },
			wantErr: true,
			errMsg:  "invalid email format",
		},
		{
			name:    "empty email is allowed",
			mutate:  func(c *Customer) { c.Email = "" },
			wantErr: false,
		},
		{
			name:    "unknown status",
			mutate:  func(c *Customer) { c.Status = "archived" },
			wantErr: true,
			errMsg:  "invalid customer status",
		},
		{
			name:    "negative revenue",
			mutate:  func(c *Customer) { c.TotalRevenue = decimal.NewFromInt(-1) },
			wantErr: true,
			errMsg:  "total revenue cannot be negative",
		},
		{
			name:    "bad join date",
			mutate:  func(c *Customer) { c.JoinDate = "15/01/2023" },
			wantErr: true,
			errMsg:  "join date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := validCustomer()
			tt.mutate(&c)

			err := c.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCustomer_FieldValue(t *testing.T) {
	c := validCustomer()

	tests := []struct {
		field    string
		expected string
		ok       bool
	}{
		{FieldID, "CUST-001", true},
		{FieldName, "Acme Corporation", true},
		{FieldContactPerson, "John Smith", true},
		{FieldEmail, "john.smith@acme.com", true},
		{FieldStatus, CustomerStatusActive, true},
		{FieldJoinDate, "2023-01-15", true},
		{FieldLicensePlate, "", false},
		{"unknown", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			value, ok := c.FieldValue(tt.field)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, value)
		})
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "AC", Initials("Acme Corporation"))
	assert.Equal(t, "GL", Initials("Global Logistics Ltd"))
	assert.Equal(t, "C", Initials("city"))
	assert.Equal(t, "", Initials("   "))
	assert.Equal(t, "ÉS", Initials("école supérieure"))
}

func TestIsValidCustomerStatus(t *testing.T) {
	assert.True(t, IsValidCustomerStatus(CustomerStatusActive))
	assert.True(t, IsValidCustomerStatus(CustomerStatusPending))
	assert.True(t, IsValidCustomerStatus(CustomerStatusInactive))
	assert.False(t, IsValidCustomerStatus("Active"))
	assert.False(t, IsValidCustomerStatus(StatusFilterAll))
}
