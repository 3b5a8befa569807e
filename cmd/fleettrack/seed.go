package main

import (
	"fmt"

	"fleettrack/internal/repositories"
	"fleettrack/internal/services"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSeedCmd(a *app) *cobra.Command {
	var (
		synthetic int
		seed      uint64
	)

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the record store from the fleet fixture",
		Long: `Creates the schema and loads the fleet fixture into an empty record store.
With --synthetic N, N generated customers and N generated vehicles are appended
after the existing records.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if synthetic < 0 || synthetic > services.MaxSyntheticRecords {
				return fmt.Errorf("--synthetic must be between 0 and %d", services.MaxSyntheticRecords)
			}

			ctx := cmd.Context()

			db, err := a.openDatabase()
			if err != nil {
				return err
			}
			defer db.Close()

			fixture, err := a.fixture()
			if err != nil {
				return err
			}
			if err := db.Initialize(ctx, fixture); err != nil {
				return err
			}

			if synthetic == 0 {
				return nil
			}

			seeder := services.NewFleetSeeder(
				services.NewFleetGenerator(seed),
				repositories.NewCustomerRepository(db.DB),
				repositories.NewVehicleRepository(db.DB),
				db,
				services.NewFleetLogger(a.logger),
			)
			appended, err := seeder.AppendSynthetic(ctx, synthetic)
			if err != nil {
				return err
			}

			a.logger.Info("synthetic records appended",
				zap.Int("customers", appended),
				zap.Int("vehicles", appended),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "appended %d customers and %d vehicles\n", appended, appended)
			return nil
		},
	}

	cmd.Flags().IntVar(&synthetic, "synthetic", 0, "Number of generated customers and vehicles to append")
	cmd.Flags().Uint64Var(&seed, "rand-seed", 1, "Seed for the record generator")

	return cmd
}
