package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"pbadmin/internal/config"
	"pbadmin/internal/infrastructure/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the game log schema to DATABASE_URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.RequireDatabase(); err != nil {
				return err
			}
			if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			return nil
		},
	}
}
