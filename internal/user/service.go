// Package user exposes account lookups and profile edits on the users
// table itself (role-specific profile rows live in package profile).
package user

import (
	"context"
	"errors"

	"campusevents/internal/model"
)

// Store is the persistence surface for accounts.
type Store interface {
	UserByID(ctx context.Context, id string) (*model.User, error)
	UserByEmail(ctx context.Context, email string) (*model.User, error)
	AllUsers(ctx context.Context) ([]model.User, error)
	InsertUser(ctx context.Context, u *model.User) error
	UpdateUser(ctx context.Context, id string, changes model.UserUpdate) (bool, error)
}

// Service wraps account persistence with light validation.
type Service struct {
	store Store
}

// NewService creates a user service backed by a store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ByID returns a user or nil when absent.
func (s *Service) ByID(ctx context.Context, id string) (*model.User, error) {
	return s.store.UserByID(ctx, id)
}

// ByEmail returns a user or nil when absent.
func (s *Service) ByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.store.UserByEmail(ctx, email)
}

// All returns every account.
func (s *Service) All(ctx context.Context) ([]model.User, error) {
	return s.store.AllUsers(ctx)
}

// Create registers an account. The role is validated once here and never
// changes afterwards; no update path touches it.
func (s *Service) Create(ctx context.Context, u *model.User) error {
	if u.Email == "" {
		return errors.New("email required")
	}
	if !u.Role.Valid() {
		return errors.New("role must be student, teacher, or committee")
	}
	return s.store.InsertUser(ctx, u)
}

// UpdateProfile applies a partial update to the users row and reports
// whether the row existed.
func (s *Service) UpdateProfile(ctx context.Context, id string, changes model.UserUpdate) (bool, error) {
	if id == "" {
		return false, errors.New("user required")
	}
	return s.store.UpdateUser(ctx, id, changes)
}
