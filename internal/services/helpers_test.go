package services

import (
	"testing"

	"fleettrack/internal/database"
	"fleettrack/internal/models"

	"github.com/stretchr/testify/require"
)

// mapRecord is a loosely shaped record used to exercise missing fields
type mapRecord map[string]string

func (r mapRecord) FieldValue(name string) (string, bool) {
	value, ok := r[name]
	return value, ok
}

func loadFixture(t *testing.T) *database.Fixture {
	t.Helper()
	fixture, err := database.DefaultFixture()
	require.NoError(t, err)
	return fixture
}

func codesOf[T models.Record](records []T) []string {
	codes := make([]string, 0, len(records))
	for _, record := range records {
		code, _ := record.FieldValue(models.FieldID)
		codes = append(codes, code)
	}
	return codes
}
