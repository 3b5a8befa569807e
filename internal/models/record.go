package models

// StatusFilterAll is the status filter sentinel that matches every record
const StatusFilterAll = "all"

// Record is a single entity row whose fields can be read by name
// FieldValue returns false when the record has no such field
type Record interface {
	FieldValue(name string) (string, bool)
}

// EntitySchema describes which fields of an entity type take part in list filtering
type EntitySchema struct {
	Entity       string
	IDField      string
	SearchFields []string
	StatusField  string
	Statuses     []string
}

// HasStatus reports whether status is one of the schema's known status values
func (s EntitySchema) HasStatus(status string) bool {
	for _, known := range s.Statuses {
		if known == status {
			return true
		}
	}
	return false
}

// StatusFilterOptions returns the accepted status filter values, "all" first
func (s EntitySchema) StatusFilterOptions() []string {
	options := make([]string, 0, len(s.Statuses)+1)
	options = append(options, StatusFilterAll)
	return append(options, s.Statuses...)
}

var (
	// CustomerSchema drives search and status filtering of the customer list
	CustomerSchema = EntitySchema{
		Entity:       "customer",
		IDField:      FieldID,
		SearchFields: []string{FieldName, FieldContactPerson, FieldEmail, FieldID},
		StatusField:  FieldStatus,
		Statuses:     []string{CustomerStatusActive, CustomerStatusPending, CustomerStatusInactive},
	}

	// VehicleSchema drives search and status filtering of the vehicle list
	VehicleSchema = EntitySchema{
		Entity:       "vehicle",
		IDField:      FieldID,
		SearchFields: []string{FieldID, FieldMake, FieldModel, FieldLicensePlate, FieldDriver},
		StatusField:  FieldStatus,
		Statuses:     []string{VehicleStatusActive, VehicleStatusMaintenance, VehicleStatusInactive},
	}

	// AlertSchema filters monitoring alerts; severity plays the status role
	AlertSchema = EntitySchema{
		Entity:       "alert",
		IDField:      FieldID,
		SearchFields: []string{FieldType, FieldMessage, FieldVehicleID},
		StatusField:  FieldSeverity,
		Statuses:     []string{AlertSeverityLow, AlertSeverityMedium, AlertSeverityHigh},
	}
)

// Field names shared by the record shapes
const (
	FieldID            = "id"
	FieldName          = "name"
	FieldContactPerson = "contact_person"
	FieldEmail         = "email"
	FieldPhone         = "phone"
	FieldAddress       = "address"
	FieldStatus        = "status"
	FieldJoinDate      = "join_date"
	FieldLastActivity  = "last_activity"
	FieldMake          = "make"
	FieldModel         = "model"
	FieldYear          = "year"
	FieldLicensePlate  = "license_plate"
	FieldLocation      = "location"
	FieldDriver        = "driver"
	FieldLastService   = "last_service"
	FieldNextService   = "next_service"
	FieldType          = "type"
	FieldMessage       = "message"
	FieldVehicleID     = "vehicle_id"
	FieldSeverity      = "severity"
)
