package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campusevents/internal/model"
)

const userColumns = "id, email, role, name, bio, branch, phone, roll_number, year, password_hash, created_at, updated_at"

func scanUser(r rowScanner) (model.User, error) {
	var u model.User
	err := r.Scan(&u.ID, &u.Email, &u.Role, &u.Name, &u.Bio, &u.Branch, &u.Phone,
		&u.RollNumber, &u.Year, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// UserByID returns a user or nil when absent.
func (s *Store) UserByID(ctx context.Context, id string) (*model.User, error) {
	return fetchOne(ctx, s.db, tableUsers, userColumns, Filter{"id", id}, scanUser)
}

// UserByEmail returns a user or nil when absent.
func (s *Store) UserByEmail(ctx context.Context, email string) (*model.User, error) {
	return fetchOne(ctx, s.db, tableUsers, userColumns, Filter{"email", email}, scanUser)
}

// AllUsers returns every user row.
func (s *Store) AllUsers(ctx context.Context) ([]model.User, error) {
	return fetchAll(ctx, s.db, tableUsers, userColumns, scanUser)
}

// InsertUser creates a user, assigning id and timestamps. A conflict on the
// email unique constraint comes back as model.ErrEmailTaken.
func (s *Store) InsertUser(ctx context.Context, u *model.User) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now
	err := insertRow(ctx, s.db, tableUsers,
		[]string{"id", "email", "role", "name", "bio", "branch", "phone", "roll_number", "year", "password_hash", "created_at", "updated_at"},
		[]any{u.ID, u.Email, string(u.Role), u.Name, u.Bio, u.Branch, u.Phone, u.RollNumber, u.Year, u.PasswordHash, u.CreatedAt, u.UpdatedAt})
	if IsConflict(err) {
		return model.ErrEmailTaken
	}
	return err
}

// UpdateUser applies a partial update and reports whether the row existed.
// Role and email never appear in the change set.
func (s *Store) UpdateUser(ctx context.Context, id string, changes model.UserUpdate) (bool, error) {
	m := map[string]any{}
	put(m, "name", changes.Name)
	put(m, "bio", changes.Bio)
	put(m, "branch", changes.Branch)
	put(m, "phone", changes.Phone)
	put(m, "roll_number", changes.RollNumber)
	put(m, "year", changes.Year)
	m["updated_at"] = time.Now().UTC()
	n, err := updateRows(ctx, s.db, tableUsers, Filter{"id", id}, m)
	return n > 0, err
}
