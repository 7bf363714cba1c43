package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/expnse/expnse-server/internal/logger"
	"github.com/expnse/expnse-server/models"
)

// settingsRepository is the SQL-backed implementation of
// [SettingsRepository]. The "user_settings" table holds at most one row
// per user, keyed by user_id.
type settingsRepository struct {
	*DB
	logger *logger.Logger
}

// NewSettingsRepository constructs a [SettingsRepository] backed by the
// provided database connection and logger.
func NewSettingsRepository(db *DB, logger *logger.Logger) SettingsRepository {
	return &settingsRepository{
		DB:     db,
		logger: logger,
	}
}

// GetSettings retrieves the user's currency settings row.
// An absent row maps to [ErrSettingsNotFound].
func (r *settingsRepository) GetSettings(ctx context.Context, userID int64) (models.UserSettings, error) {
	log := logger.FromContext(ctx)

	var settings models.UserSettings
	row := r.DB.QueryRowContext(ctx, getSettings, userID)

	if err := row.Scan(&settings.UserID, &settings.CurrencyCode, &settings.CurrencySymbol, &settings.CurrencyName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserSettings{}, ErrSettingsNotFound
		}

		log.Err(err).
			Str("func", "settingsRepository.GetSettings").
			Int64("user_id", userID).
			Msg("failed to scan settings row")
		return models.UserSettings{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return settings, nil
}

// UpsertSettings inserts or atomically replaces the user's settings row.
// The upsert is keyed by user_id alone, so a user can never accumulate a
// second row.
func (r *settingsRepository) UpsertSettings(ctx context.Context, settings models.UserSettings) error {
	log := logger.FromContext(ctx)

	log.Debug().
		Int64("user_id", settings.UserID).
		Str("currency_code", settings.CurrencyCode).
		Msg("upserting user settings")

	_, err := r.DB.ExecContext(ctx, upsertSettings,
		settings.UserID,
		settings.CurrencyCode,
		settings.CurrencySymbol,
		settings.CurrencyName,
	)
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.UpsertSettings").
			Int64("user_id", settings.UserID).
			Msg("failed to upsert settings")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// UpsertDefaultSettings provisions the default currency without touching
// an existing row. ON CONFLICT DO NOTHING rides on the primary key, so
// concurrent first reads cannot produce duplicates or overwrite a choice
// the user made in between.
func (r *settingsRepository) UpsertDefaultSettings(ctx context.Context, settings models.UserSettings) error {
	log := logger.FromContext(ctx)

	_, err := r.DB.ExecContext(ctx, upsertDefaultSettings,
		settings.UserID,
		settings.CurrencyCode,
		settings.CurrencySymbol,
		settings.CurrencyName,
	)
	if err != nil {
		log.Err(err).
			Str("func", "settingsRepository.UpsertDefaultSettings").
			Int64("user_id", settings.UserID).
			Msg("failed to provision default settings")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
