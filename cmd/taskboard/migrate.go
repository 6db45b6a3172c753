package main

import (
	"fmt"

	"github.com/rpggio/taskboard/internal/app"
	"github.com/rpggio/taskboard/internal/sqlite"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and list the applied ones",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if err := app.EnsureDBDir(cfg.DB.Path); err != nil {
				return err
			}
			db, err := sqlite.New(cfg.DB.Path)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.RunMigrations(); err != nil {
				return err
			}
			applied, err := db.AppliedMigrations(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range applied {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
