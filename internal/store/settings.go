package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/justvibes99/enumerate/internal/domain"
)

// GetSettings returns the persisted settings, or the defaults if none
// have been saved yet.
func (s *Store) GetSettings(ctx context.Context) (domain.AppSettings, error) {
	var settings domain.AppSettings
	err := s.conn.QueryRowContext(ctx, `
		SELECT new_cards_per_day FROM settings WHERE id = ?
	`, settingsKey).Scan(&settings.NewCardsPerDay)
	if err == sql.ErrNoRows {
		return domain.DefaultSettings(), nil
	}
	if err != nil {
		return domain.AppSettings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

// EnsureSettings writes the settings record only if none exists yet.
// It lets a configured default take effect without clobbering a value
// the user saved earlier.
func (s *Store) EnsureSettings(ctx context.Context, settings domain.AppSettings) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO settings (id, new_cards_per_day)
		VALUES (?, ?)
		ON CONFLICT(id) DO NOTHING
	`, settingsKey, settings.NewCardsPerDay)
	if err != nil {
		return fmt.Errorf("failed to ensure settings: %w", err)
	}
	return nil
}

// SaveSettings writes the singleton settings record.
func (s *Store) SaveSettings(ctx context.Context, settings domain.AppSettings) error {
	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO settings (id, new_cards_per_day)
		VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET new_cards_per_day = excluded.new_cards_per_day
	`, settingsKey, settings.NewCardsPerDay)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
