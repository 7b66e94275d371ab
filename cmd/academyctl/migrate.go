package main

import (
	"fmt"

	"academy/internal/infra/persistence/postgres"

	"github.com/spf13/cobra"
)

func newMigrateCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := app.openStore()
			if err != nil {
				return err
			}
			defer closeStore(db)

			if err := postgres.Migrate(cmd.Context(), db, app.logger); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Schema is up to date.")

			return nil
		},
	}
}
