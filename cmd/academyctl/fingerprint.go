package main

import (
	"encoding/json"
	"os"

	"academy/internal/domain/fingerprint"
	"academy/internal/usecase/impl"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newFingerprintCmd(app *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint <env.json>",
		Short: "Compute the device fingerprint of a captured browser environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrapf(err, "read environment %s", args[0])
			}

			var env fingerprint.Environment
			if err := json.Unmarshal(raw, &env); err != nil {
				return errors.Wrapf(err, "decode environment %s", args[0])
			}

			fingerprintUC, err := impl.NewFingerprintService(app.cfg)
			if err != nil {
				return err
			}

			result, err := fingerprintUC.Generate(&env)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")

			return encoder.Encode(result)
		},
	}
}
