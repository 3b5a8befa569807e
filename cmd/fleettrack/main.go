package main

import (
	"fmt"
	"io"
	"os"

	"fleettrack/internal/config"
	"fleettrack/internal/database"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what every subcommand needs once the root command has run
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	logLevel string
	out      io.Writer
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	rootCmd := &cobra.Command{
		Use:   "fleettrack",
		Short: "Fleet dashboard API and record tools",
		Long: `fleettrack serves the fleet dashboard API (customers, vehicles,
monitoring, reports) and offers commands to filter the fleet dataset,
seed the record store and run SQL migrations.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a.cfg = config.Load()
			if a.logLevel != "" {
				a.cfg.Log.Level = a.logLevel
			}

			logger, err := config.NewLogger(a.cfg.Log.Level, a.cfg.Server.Environment)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.SetOut(out)
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")

	rootCmd.AddCommand(
		newServeCmd(a),
		newListCmd(a, customersList),
		newListCmd(a, vehiclesList),
		newListCmd(a, alertsList),
		newSeedCmd(a),
		newMigrateCmd(a),
	)

	return rootCmd
}

// fixture returns the configured fixture file, or the embedded dataset
func (a *app) fixture() (*database.Fixture, error) {
	if a.cfg.Fleet.FixturePath != "" {
		return database.LoadFixtureFile(a.cfg.Fleet.FixturePath)
	}
	return database.DefaultFixture()
}

func (a *app) openDatabase() (*database.DB, error) {
	db, err := database.New(&a.cfg.Database, a.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open record store: %w", err)
	}
	return db, nil
}
