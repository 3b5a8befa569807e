package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"fleettrack/internal/export"
	"fleettrack/internal/models"

	"github.com/go-playground/validator/v10"
)

var (
	customerCodeRegex = regexp.MustCompile(`^CUST-\d{3,}$`)
	vehicleCodeRegex  = regexp.MustCompile(`^VH-\d{3,4}(-\d{3})?$`)
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("customer_code", validateCustomerCode)
	_ = v.RegisterValidation("vehicle_code", validateVehicleCode)
	_ = v.RegisterValidation("customer_status_filter", statusFilterRule(models.CustomerSchema))
	_ = v.RegisterValidation("vehicle_status_filter", statusFilterRule(models.VehicleSchema))
	_ = v.RegisterValidation("alert_severity_filter", statusFilterRule(models.AlertSchema))
	_ = v.RegisterValidation("report_period", validateReportPeriod)
	_ = v.RegisterValidation("export_format", validateExportFormat)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		for _, tag := range []string{"json", "query", "param"} {
			name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name != "" {
				return name
			}
		}
		return fld.Name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// FieldErrors flattens validation errors into field name -> message pairs.
// It returns nil when err is not a validator.ValidationErrors.
func FieldErrors(err error) map[string]string {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields[fieldErr.Field()] = FormatFieldError(fieldErr)
	}
	return fields
}

// FormatFieldError converts a validator.FieldError to a human-readable message
func FormatFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "customer_code":
		return "must be a customer id like CUST-001"
	case "vehicle_code":
		return "must be a vehicle id like VH-2024-001"
	case "customer_status_filter":
		return "must be one of: " + strings.Join(models.CustomerSchema.StatusFilterOptions(), " ")
	case "vehicle_status_filter":
		return "must be one of: " + strings.Join(models.VehicleSchema.StatusFilterOptions(), " ")
	case "alert_severity_filter":
		return "must be one of: " + strings.Join(models.AlertSchema.StatusFilterOptions(), " ")
	case "report_period":
		return "must be one of: 1month 3months 6months 1year"
	case "export_format":
		return "must be one of: xlsx csv"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}

// Custom validation functions

func validateCustomerCode(fl validator.FieldLevel) bool {
	return customerCodeRegex.MatchString(fl.Field().String())
}

func validateVehicleCode(fl validator.FieldLevel) bool {
	return vehicleCodeRegex.MatchString(fl.Field().String())
}

// statusFilterRule accepts "all" or one of the schema's statuses, exactly as written
func statusFilterRule(schema models.EntitySchema) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == models.StatusFilterAll || schema.HasStatus(value)
	}
}

func validateReportPeriod(fl validator.FieldLevel) bool {
	return models.ReportPeriod(fl.Field().String()).IsValid()
}

func validateExportFormat(fl validator.FieldLevel) bool {
	_, err := export.ParseFormat(fl.Field().String())
	return err == nil
}
