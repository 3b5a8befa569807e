package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"fleettrack/internal/config"
	"fleettrack/internal/database"
	"fleettrack/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("APP_ENV", "testing")

	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCustomersCommand_Table(t *testing.T) {
	out, err := runCLI(t, "customers", "--status", "pending")
	require.NoError(t, err)

	assert.Contains(t, out, "CUST-003")
	assert.NotContains(t, out, "CUST-001")
	assert.Contains(t, out, "1 record(s)")
}

func TestCustomersCommand_SearchIsCaseInsensitive(t *testing.T) {
	out, err := runCLI(t, "customers", "-s", "SARAH", "--json")
	require.NoError(t, err)

	var customers []models.Customer
	require.NoError(t, json.Unmarshal([]byte(out), &customers))
	require.Len(t, customers, 1)
	assert.Equal(t, "CUST-002", customers[0].Code)
}

func TestVehiclesCommand_JSON(t *testing.T) {
	out, err := runCLI(t, "vehicles", "--search", "ford", "--json")
	require.NoError(t, err)

	var vehicles []models.Vehicle
	require.NoError(t, json.Unmarshal([]byte(out), &vehicles))
	require.Len(t, vehicles, 1)
	assert.Equal(t, "VH-2024-001", vehicles[0].Code)
}

func TestVehiclesCommand_NoMatchesPrintsEmptyArray(t *testing.T) {
	out, err := runCLI(t, "vehicles", "--search", "ford", "--status", "inactive", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestAlertsCommand_SeverityFlag(t *testing.T) {
	out, err := runCLI(t, "alerts", "--severity", "high")
	require.NoError(t, err)
	assert.Contains(t, out, "2 record(s)")

	_, err = runCLI(t, "alerts", "--severity", "critical")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid severity "critical"`)
}

func TestMigrateCommand_RequiresPostgres(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")

	_, err := runCLI(t, "migrate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER=postgres")
}

func TestSeedCommand_AppendsSyntheticRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fleet.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_SQLITE_PATH", path)

	out, err := runCLI(t, "seed", "--synthetic", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "appended 3 customers and 3 vehicles")

	db, err := database.New(&config.DatabaseConfig{
		Driver:         config.DriverSQLite,
		SQLitePath:     path,
		MaxConnections: 1,
		MaxIdleConns:   1,
	}, zap.NewNop())
	require.NoError(t, err)
	defer db.Close()

	var customers []models.Customer
	require.NoError(t, db.DB.Order("position").Find(&customers).Error)
	require.Len(t, customers, 8)
	assert.Equal(t, "CUST-001", customers[0].Code)
	assert.Equal(t, "CUST-006", customers[5].Code)

	var vehicleCount int64
	require.NoError(t, db.DB.Model(&models.Vehicle{}).Count(&vehicleCount).Error)
	assert.Equal(t, int64(9), vehicleCount)
}

func TestSeedCommand_RejectsNegativeCount(t *testing.T) {
	_, err := runCLI(t, "seed", "--synthetic", "-1")
	assert.Error(t, err)
}
