package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/expnse/expnse-server/internal/logger"
	"github.com/expnse/expnse-server/internal/store"
	"github.com/expnse/expnse-server/models"
)

// settingsService is the concrete implementation of [SettingsService].
// It owns the currency half of the default-provisioning policy.
type settingsService struct {
	settingsRepository store.SettingsRepository
	logger             *logger.Logger
}

// NewSettingsService constructs a [SettingsService] wired to the given
// repository.
func NewSettingsService(settingsRepository store.SettingsRepository, logger *logger.Logger) SettingsService {
	return &settingsService{
		settingsRepository: settingsRepository,
		logger:             logger,
	}
}

// GetSettings returns the user's currency settings, provisioning the
// default (US Dollar) when no row exists yet. The provisioning insert is
// conflict-guarded by the primary key, so it can never clobber a value a
// concurrent request stored in between.
func (s *settingsService) GetSettings(ctx context.Context, userID int64) (models.UserSettings, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return models.UserSettings{}, ErrInvalidDataProvided
	}

	settings, err := s.settingsRepository.GetSettings(ctx, userID)
	if err == nil {
		return settings, nil
	}

	if !errors.Is(err, store.ErrSettingsNotFound) {
		return models.UserSettings{}, fmt.Errorf("getting settings failed: %w", err)
	}

	log.Info().Int64("user_id", userID).Msg("no settings found, provisioning default currency")

	defaultCurrency := models.DefaultCurrency()
	if err := s.settingsRepository.UpsertDefaultSettings(ctx, models.UserSettings{
		UserID:         userID,
		CurrencyCode:   defaultCurrency.Code,
		CurrencySymbol: defaultCurrency.Symbol,
		CurrencyName:   defaultCurrency.Name,
	}); err != nil {
		return models.UserSettings{}, fmt.Errorf("provisioning default settings failed: %w", err)
	}

	settings, err = s.settingsRepository.GetSettings(ctx, userID)
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("getting settings failed: %w", err)
	}

	return settings, nil
}

// SetCurrency replaces the user's display currency. At most one settings
// row ever exists per user; repeated calls overwrite rather than append.
func (s *settingsService) SetCurrency(ctx context.Context, userID int64, currency models.Currency) error {
	log := logger.FromContext(ctx)

	if userID <= 0 || currency.Code == "" || currency.Symbol == "" || currency.Name == "" {
		log.Error().Int64("user_id", userID).Str("code", currency.Code).Msg("invalid currency data provided")
		return ErrInvalidDataProvided
	}

	if err := s.settingsRepository.UpsertSettings(ctx, models.UserSettings{
		UserID:         userID,
		CurrencyCode:   currency.Code,
		CurrencySymbol: currency.Symbol,
		CurrencyName:   currency.Name,
	}); err != nil {
		return fmt.Errorf("setting currency failed: %w", err)
	}

	return nil
}
