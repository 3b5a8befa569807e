package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"fleettrack/internal/config"
	"fleettrack/internal/database"
	"fleettrack/internal/server"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the dashboard HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			db, err := a.openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			if err := a.prepareStore(ctx, db); err != nil {
				return err
			}

			srv := server.New(a.cfg, db, a.logger, prometheus.NewRegistry())
			a.logger.Info("starting fleettrack",
				zap.String("address", a.cfg.Address()),
				zap.String("environment", a.cfg.Server.Environment),
			)
			return srv.Run(ctx)
		},
	}
}

// prepareStore applies SQL migrations when enabled, then creates the schema
// and seeds the fixture into an empty store
func (a *app) prepareStore(ctx context.Context, db *database.DB) error {
	if a.cfg.Database.AutoMigrate && a.cfg.Database.Driver == config.DriverPostgres {
		sqlDB, err := db.DB.DB()
		if err != nil {
			return fmt.Errorf("failed to get sql.DB: %w", err)
		}
		if err := database.RunMigrations(ctx, sqlDB, a.logger); err != nil {
			return err
		}
	}

	var fixture *database.Fixture
	if a.cfg.Database.SeedOnStart {
		f, err := a.fixture()
		if err != nil {
			return err
		}
		fixture = f
	}

	return db.Initialize(ctx, fixture)
}
