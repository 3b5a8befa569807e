package services

import (
	"strings"

	"fleettrack/internal/models"
)

// MatchesSearch reports whether term occurs, ignoring case, in any of the
// schema's search fields. An empty term matches every record. Fields the
// record does not have never match.
func MatchesSearch(record models.Record, schema models.EntitySchema, term string) bool {
	if term == "" {
		return true
	}

	needle := strings.ToLower(term)
	for _, field := range schema.SearchFields {
		value, ok := record.FieldValue(field)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(value), needle) {
			return true
		}
	}
	return false
}

// MatchesStatus reports whether the record's status equals statusFilter exactly,
// or statusFilter is "all".
func MatchesStatus(record models.Record, schema models.EntitySchema, statusFilter string) bool {
	if statusFilter == models.StatusFilterAll {
		return true
	}

	status, ok := record.FieldValue(schema.StatusField)
	if !ok {
		return false
	}
	return status == statusFilter
}

// Matches combines the search and status rules
func Matches(record models.Record, schema models.EntitySchema, criteria models.FilterCriteria) bool {
	return MatchesSearch(record, schema, criteria.SearchTerm) &&
		MatchesStatus(record, schema, criteria.StatusFilter)
}

// FilterRecords returns, in input order, the records matching criteria.
// The input is left untouched and the result never shares its backing array.
func FilterRecords[T models.Record](records []T, schema models.EntitySchema, criteria models.FilterCriteria) []T {
	filtered := make([]T, 0, len(records))
	for _, record := range records {
		if Matches(record, schema, criteria) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
