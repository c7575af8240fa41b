// Package settings implements the per-user preferences upsert.
package settings

import (
	"context"
	"errors"

	"campusevents/internal/model"
)

// Store is the persistence surface the upsert needs.
type Store interface {
	SettingsByUser(ctx context.Context, userID string) (*model.Settings, error)
	InsertSettings(ctx context.Context, st *model.Settings) error
	UpdateSettingsPreferences(ctx context.Context, userID string, prefs model.Preferences) (bool, error)
}

// Service reads and writes one settings row per user.
type Service struct {
	store Store
}

// NewService creates a settings service backed by a store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Get returns the user's settings, or (nil, nil) when none exist yet.
func (s *Service) Get(ctx context.Context, userID string) (*model.Settings, error) {
	if userID == "" {
		return nil, errors.New("user required")
	}
	return s.store.SettingsByUser(ctx, userID)
}

// Set replaces the user's preferences wholesale: update when a row exists,
// insert otherwise. The check and the act are two separate round trips;
// the store's unique constraint on user_id turns the concurrent
// duplicate-insert race into a conflict error rather than a second row.
func (s *Service) Set(ctx context.Context, userID string, prefs model.Preferences) (*model.Settings, error) {
	if userID == "" {
		return nil, errors.New("user required")
	}
	if prefs == nil {
		prefs = model.Preferences{}
	}

	current, err := s.store.SettingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if current != nil {
		if _, err := s.store.UpdateSettingsPreferences(ctx, userID, prefs); err != nil {
			return nil, err
		}
		current.Preferences = prefs
		return current, nil
	}

	st := &model.Settings{UserID: userID, Preferences: prefs}
	if err := s.store.InsertSettings(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}
