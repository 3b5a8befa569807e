package main

import (
	"errors"
	"fmt"

	"fleettrack/internal/config"
	"fleettrack/internal/database"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func newMigrateCmd(a *app) *cobra.Command {
	var statusOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply the SQL migrations in db/migrations to a postgres record store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Database.Driver != config.DriverPostgres {
				return fmt.Errorf("migrate requires DB_DRIVER=postgres, got %q", a.cfg.Database.Driver)
			}

			db, err := a.openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			sqlDB, err := db.DB.DB()
			if err != nil {
				return fmt.Errorf("failed to get sql.DB: %w", err)
			}

			if !statusOnly {
				if err := database.RunMigrations(cmd.Context(), sqlDB, a.logger); err != nil {
					return err
				}
			}

			version, dirty, err := database.NewMigrationRunner(sqlDB, a.logger).GetMigrationStatus()
			switch {
			case errors.Is(err, migrate.ErrNilVersion):
				fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
				return nil
			case err != nil:
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "schema version %d (dirty: %t)\n", version, dirty)
			return nil
		},
	}

	cmd.Flags().BoolVar(&statusOnly, "status", false, "Print the applied schema version without migrating")

	return cmd
}
