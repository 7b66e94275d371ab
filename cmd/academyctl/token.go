package main

import (
	"fmt"
	"time"

	"academy/internal/domain/entity"
	"academy/internal/infra/auth"

	"github.com/spf13/cobra"
)

func newTokenCmd(app *cli) *cobra.Command {
	var (
		email   string
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token signed with the configured identity secret",
		Long: `Mint a bearer token signed with the configured identity secret.

Intended for local development; production tokens come from the hosted auth provider.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			verifier, err := auth.NewJWTVerifier(app.cfg)
			if err != nil {
				return err
			}

			if ttl <= 0 {
				ttl = app.cfg.Identity.TokenTTL
			}

			token, err := verifier.Issue(&entity.Identity{
				Subject: subject,
				Email:   email,
			}, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)

			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Email claim (required)")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "Token lifetime, defaults to identity.tokenTTL")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}
