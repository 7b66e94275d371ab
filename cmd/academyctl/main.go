// Package main is the operator CLI for the academy device access service.
package main

import (
	"io"
	"log/slog"
	"os"

	"academy/config"
	logs "academy/internal/infra/log"
	"academy/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCmd(config.New).Execute(); err != nil {
		os.Exit(1)
	}
}

// cli carries the lazily loaded configuration shared by every subcommand.
type cli struct {
	loadConfig func() (*config.Config, error)

	cfg    *config.Config
	logger *slog.Logger
}

func (c *cli) init(stderr io.Writer) error {
	if c.cfg != nil {
		return nil
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	logger, err := logs.NewWithWriter(cfg, stderr)
	if err != nil {
		return errors.Wrap(err, "create logger")
	}

	c.cfg = cfg
	c.logger = logger

	return nil
}

// openStore connects to the purchase store; the caller closes it with closeStore.
func (c *cli) openStore() (*gorm.DB, error) {
	db, err := postgres.Open(c.cfg, c.logger)
	if err != nil {
		return nil, err
	}

	return db, nil
}

func closeStore(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newRootCmd(loadConfig func() (*config.Config, error)) *cobra.Command {
	app := &cli{loadConfig: loadConfig}

	rootCmd := &cobra.Command{
		Use:   "academyctl",
		Short: "Operator tooling for the course device access service",
		Long: `academyctl manages the purchase store behind the device access service.

It reads the same config.yaml and environment overrides as the server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd.ErrOrStderr())
		},
	}

	rootCmd.AddCommand(
		newMigrateCmd(app),
		newRolesCmd(app),
		newPurchaseCmd(app),
		newFingerprintCmd(app),
		newTokenCmd(app),
	)

	return rootCmd
}
