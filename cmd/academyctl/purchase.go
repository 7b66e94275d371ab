package main

import (
	"encoding/json"

	"academy/internal/infra/persistence/postgres"
	"academy/internal/usecase/impl"

	"github.com/spf13/cobra"
)

func newPurchaseCmd(app *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purchase",
		Short: "Manage course purchases",
	}

	cmd.AddCommand(newPurchaseCreateCmd(app))

	return cmd
}

func newPurchaseCreateCmd(app *cli) *cobra.Command {
	var (
		email    string
		courseID string
		locked   bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Seed a purchase outside the payment path",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := app.openStore()
			if err != nil {
				return err
			}
			defer closeStore(db)

			adminUC := impl.NewDeviceAdminService(
				postgres.NewPurchaseRepository(db),
				postgres.NewDeviceAccessRepository(db),
				postgres.NewTransactionManager(db),
				app.logger,
			)

			purchase, err := adminUC.CreatePurchase(cmd.Context(), email, courseID, locked)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")

			return encoder.Encode(purchase)
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Purchaser email (required)")
	cmd.Flags().StringVar(&courseID, "course", "", "Course ID (required)")
	cmd.Flags().BoolVar(&locked, "locked", true, "Restrict streaming to registered devices")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("course")

	return cmd
}
