package database

import (
	"context"
	"fmt"
	"time"

	"fleettrack/internal/config"
	"fleettrack/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
	config *config.DatabaseConfig
	log    *zap.Logger
}

// fleetModels lists every table of the record store in creation order
var fleetModels = []interface{}{
	&models.Customer{},
	&models.Vehicle{},
	&models.Alert{},
	&models.VehicleLocation{},
	&models.PerformanceSample{},
	&models.FuelEfficiency{},
	&models.MonthlyMetric{},
	&models.FuelTrend{},
	&models.ReportDefinition{},
	&models.ActivityEvent{},
}

func New(cfg *config.DatabaseConfig, log *zap.Logger) (*DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN())
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("database connected", zap.String("driver", cfg.Driver))

	return &DB{
		DB:     db,
		config: cfg,
		log:    log,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(fleetModels...)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// AppendRecords stores generated records after the existing ones
func (db *DB) AppendRecords(ctx context.Context, customers []models.Customer, vehicles []models.Vehicle) error {
	return AppendRecords(ctx, db.DB, customers, vehicles)
}

func (db *DB) CreateIndexes() error {
	queries := []string{
		"CREATE INDEX IF NOT EXISTS idx_customers_status ON customers(status)",
		"CREATE INDEX IF NOT EXISTS idx_customers_name_lower ON customers(LOWER(name))",
		"CREATE INDEX IF NOT EXISTS idx_vehicles_status ON vehicles(status)",
		"CREATE INDEX IF NOT EXISTS idx_vehicles_license_plate ON vehicles(license_plate)",
		"CREATE INDEX IF NOT EXISTS idx_alerts_severity ON alerts(severity)",
		"CREATE INDEX IF NOT EXISTS idx_alerts_vehicle_code ON alerts(vehicle_code)",
	}

	for _, query := range queries {
		if err := db.DB.Exec(query).Error; err != nil {
			db.log.Warn("failed to create index", zap.String("query", query), zap.Error(err))
		}
	}

	return nil
}

// Initialize migrates the schema and seeds the fixture when the store is empty
func (db *DB) Initialize(ctx context.Context, fixture *Fixture) error {
	if err := db.AutoMigrate(); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	if err := db.CreateIndexes(); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	if fixture == nil {
		return nil
	}

	seeded, err := Seed(ctx, db.DB, fixture)
	if err != nil {
		return err
	}

	if seeded {
		db.log.Info("record store seeded",
			zap.Int("customers", len(fixture.Customers)),
			zap.Int("vehicles", len(fixture.Vehicles)),
			zap.Int("alerts", len(fixture.Alerts)),
		)
	} else {
		db.log.Info("record store already populated, skipping seed")
	}

	return nil
}
