package store_test

import (
	"context"
	"errors"
	"testing"

	"campusevents/internal/model"
	"campusevents/internal/store"
)

func TestMemoryUserEmailConflict(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	u := &model.User{Email: "a@campus.edu", Role: model.RoleStudent}
	if err := mem.InsertUser(ctx, u); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if u.ID == "" {
		t.Fatal("insert should assign an id")
	}

	err := mem.InsertUser(ctx, &model.User{Email: "a@campus.edu", Role: model.RoleTeacher})
	if !errors.Is(err, model.ErrEmailTaken) {
		t.Fatalf("duplicate email err = %v, want ErrEmailTaken", err)
	}
}

func TestMemoryUserLookups(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	u := &model.User{Email: "a@campus.edu", Role: model.RoleStudent}
	if err := mem.InsertUser(ctx, u); err != nil {
		t.Fatalf("insert: %v", err)
	}

	byID, err := mem.UserByID(ctx, u.ID)
	if err != nil || byID == nil || byID.Email != u.Email {
		t.Fatalf("UserByID = (%+v, %v)", byID, err)
	}

	missing, err := mem.UserByID(ctx, "nope")
	if err != nil {
		t.Fatalf("UserByID missing: %v", err)
	}
	if missing != nil {
		t.Fatal("absent user must be nil, not an error")
	}
}

func TestMemoryUpdateUserReportsRow(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	u := &model.User{Email: "a@campus.edu", Role: model.RoleStudent}
	if err := mem.InsertUser(ctx, u); err != nil {
		t.Fatalf("insert: %v", err)
	}

	name := "Asha"
	ok, err := mem.UpdateUser(ctx, u.ID, model.UserUpdate{Name: &name})
	if err != nil || !ok {
		t.Fatalf("update = (%v, %v)", ok, err)
	}

	got, _ := mem.UserByID(ctx, u.ID)
	if got.Name != "Asha" {
		t.Errorf("name = %q", got.Name)
	}
	// Untouched fields survive a partial update.
	if got.Email != "a@campus.edu" {
		t.Errorf("email clobbered: %q", got.Email)
	}

	ok, err = mem.UpdateUser(ctx, "nope", model.UserUpdate{Name: &name})
	if err != nil {
		t.Fatalf("update missing: %v", err)
	}
	if ok {
		t.Fatal("update with no row must report false")
	}
}

func TestMemorySettingsUniquePerUser(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	if err := mem.InsertSettings(ctx, &model.Settings{UserID: "u1"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	err := mem.InsertSettings(ctx, &model.Settings{UserID: "u1"})
	if !store.IsConflict(err) {
		t.Fatalf("second insert err = %v, want conflict", err)
	}
}

func TestMemorySettingsCopiesPreferences(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	prefs := model.Preferences{"theme": "dark"}
	if err := mem.InsertSettings(ctx, &model.Settings{UserID: "u1", Preferences: prefs}); err != nil {
		t.Fatalf("insert: %v", err)
	}

	// Mutating the caller's map must not reach the stored row.
	prefs["theme"] = "light"

	got, err := mem.SettingsByUser(ctx, "u1")
	if err != nil || got == nil {
		t.Fatalf("settings = (%+v, %v)", got, err)
	}
	if got.Preferences["theme"] != "dark" {
		t.Errorf("stored preferences aliased caller map: %+v", got.Preferences)
	}
}

func TestMemoryRegistrationPairConflict(t *testing.T) {
	ctx := context.Background()
	mem := store.NewMemory()

	if err := mem.InsertRegistration(ctx, &model.Registration{UserID: "u1", EventID: "e1"}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	err := mem.InsertRegistration(ctx, &model.Registration{UserID: "u1", EventID: "e1"})
	if !errors.Is(err, model.ErrDuplicateRegistration) {
		t.Fatalf("duplicate pair err = %v, want ErrDuplicateRegistration", err)
	}
}
