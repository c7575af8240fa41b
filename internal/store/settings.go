package store

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"campusevents/internal/model"
)

const settingsColumns = "id, user_id, preferences, created_at, updated_at"

func scanSettings(r rowScanner) (model.Settings, error) {
	var st model.Settings
	var prefs []byte
	if err := r.Scan(&st.ID, &st.UserID, &prefs, &st.CreatedAt, &st.UpdatedAt); err != nil {
		return model.Settings{}, err
	}
	if len(prefs) > 0 {
		if err := json.Unmarshal(prefs, &st.Preferences); err != nil {
			return model.Settings{}, err
		}
	}
	if st.Preferences == nil {
		st.Preferences = model.Preferences{}
	}
	return st, nil
}

// SettingsByUser returns the settings row for a user or nil when absent.
// Absence is the normal "no settings yet" outcome, not a failure.
func (s *Store) SettingsByUser(ctx context.Context, userID string) (*model.Settings, error) {
	return fetchOne(ctx, s.db, tableSettings, settingsColumns, Filter{"user_id", userID}, scanSettings)
}

// InsertSettings creates the settings row for a user. The user_id unique
// constraint turns a concurrent duplicate insert into a conflict error
// instead of a second row.
func (s *Store) InsertSettings(ctx context.Context, st *model.Settings) error {
	if st.ID == "" {
		st.ID = uuid.NewString()
	}
	if st.Preferences == nil {
		st.Preferences = model.Preferences{}
	}
	prefs, err := json.Marshal(st.Preferences)
	if err != nil {
		return &Error{Code: CodeExecFailed, Message: err.Error()}
	}
	now := time.Now().UTC()
	st.CreatedAt = now
	st.UpdatedAt = now
	return insertRow(ctx, s.db, tableSettings,
		[]string{"id", "user_id", "preferences", "created_at", "updated_at"},
		[]any{st.ID, st.UserID, prefs, st.CreatedAt, st.UpdatedAt})
}

// UpdateSettingsPreferences replaces the preferences map wholesale (no
// key-by-key merge) and reports whether the row existed.
func (s *Store) UpdateSettingsPreferences(ctx context.Context, userID string, prefs model.Preferences) (bool, error) {
	if prefs == nil {
		prefs = model.Preferences{}
	}
	raw, err := json.Marshal(prefs)
	if err != nil {
		return false, &Error{Code: CodeExecFailed, Message: err.Error()}
	}
	n, err := updateRows(ctx, s.db, tableSettings, Filter{"user_id", userID}, map[string]any{
		"preferences": raw,
		"updated_at":  time.Now().UTC(),
	})
	return n > 0, err
}
