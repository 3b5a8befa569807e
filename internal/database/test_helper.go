package database

import (
	"context"
	"testing"

	"fleettrack/internal/config"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// every pooled connection to ":memory:" would otherwise get its own database
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.DatabaseConfig{
			Driver:         config.DriverSQLite,
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
		log: zap.NewNop(),
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		_ = testDB.Close()
	})

	return testDB
}

// SetupSeededTestDB returns a test database holding the embedded fleet dataset
func SetupSeededTestDB(t *testing.T) *DB {
	t.Helper()

	db := SetupTestDB(t)

	fixture, err := DefaultFixture()
	if err != nil {
		t.Fatalf("failed to load fixture: %v", err)
	}

	if _, err := Seed(context.Background(), db.DB, fixture); err != nil {
		t.Fatalf("failed to seed test database: %v", err)
	}

	return db
}
