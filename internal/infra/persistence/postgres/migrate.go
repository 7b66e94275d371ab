package postgres

import (
	"context"
	"log/slog"

	"academy/internal/errors"
	"academy/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the purchases, device_access_entries and role_assignments tables.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(model.Models()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	logger.InfoContext(ctx, "Schema migrated", slog.Int("tables", len(model.Models())))

	return nil
}
