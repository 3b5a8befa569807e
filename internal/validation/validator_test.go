package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listQuery struct {
	Query    string `query:"q" validate:"max=10"`
	Status   string `query:"status" validate:"omitempty,customer_status_filter"`
	Vehicles string `query:"vehicle_status" validate:"omitempty,vehicle_status_filter"`
	Severity string `query:"severity" validate:"omitempty,alert_severity_filter"`
	Limit    int    `query:"limit" validate:"omitempty,min=1,max=1000"`
}

type lookup struct {
	Customer string `param:"id" validate:"required,customer_code"`
	Vehicle  string `json:"vehicle" validate:"omitempty,vehicle_code"`
	Period   string `query:"period" validate:"omitempty,report_period"`
	Format   string `query:"format" validate:"omitempty,export_format"`
}

func TestValidator_StatusFilters(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Struct(listQuery{Status: "all", Vehicles: "maintenance", Severity: "high"}))
	assert.NoError(t, v.Struct(listQuery{}))

	err := v.Struct(listQuery{Status: "maintenance", Vehicles: "pending", Severity: "critical"})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "must be one of: all active pending inactive", fields["status"])
	assert.Equal(t, "must be one of: all active maintenance inactive", fields["vehicle_status"])
	assert.Equal(t, "must be one of: all low medium high", fields["severity"])
}

func TestValidator_StatusFilterIsCaseSensitive(t *testing.T) {
	err := NewValidator().Struct(listQuery{Status: "Active"})
	require.Error(t, err)
	assert.Contains(t, FieldErrors(err), "status")
}

func TestValidator_Limits(t *testing.T) {
	err := NewValidator().Struct(listQuery{Query: "a very long search", Limit: 5000})
	require.Error(t, err)

	fields := FieldErrors(err)
	assert.Equal(t, "must be at most 10 characters long", fields["q"])
	assert.Equal(t, "must be at most 1000", fields["limit"])
}

func TestValidator_Codes(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		input   lookup
		invalid string
	}{
		{"valid", lookup{Customer: "CUST-001", Vehicle: "VH-2024-001", Period: "3months", Format: "XLSX"}, ""},
		{"short vehicle code", lookup{Customer: "CUST-1234", Vehicle: "VH-0042"}, ""},
		{"bad customer", lookup{Customer: "cust-001"}, "id"},
		{"missing customer", lookup{}, "id"},
		{"bad vehicle", lookup{Customer: "CUST-001", Vehicle: "VH-1"}, "vehicle"},
		{"bad period", lookup{Customer: "CUST-001", Period: "2weeks"}, "period"},
		{"bad format", lookup{Customer: "CUST-001", Format: "pdf"}, "format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			if tt.invalid == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, FieldErrors(err), tt.invalid)
		})
	}
}

func TestFieldErrors_NonValidationError(t *testing.T) {
	assert.Nil(t, FieldErrors(assert.AnError))
}

func TestGetValidator_Singleton(t *testing.T) {
	assert.Same(t, GetValidator(), GetValidator())
}
