package store

import (
	"context"
	"database/sql"
	"fmt"
)

// Logical table names at the store boundary.
const (
	tableUsers             = "users"
	tableStudentProfiles   = "student_profiles"
	tableTeacherProfiles   = "teacher_profiles"
	tableCommitteeProfiles = "committee_profiles"
	tableEvents            = "events"
	tableRegistrations     = "registrations"
	tableAttendance        = "attendance"
	tablePayments          = "payments"
	tableNotifications     = "notifications"
	tableSettings          = "settings"
)

// Store is the Postgres-backed entity store. It is passed explicitly into
// every service; connection lifecycle is owned by the process entry point.
type Store struct {
	db *sql.DB
}

// New creates a store over an open connection.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Migrate applies the schema. Uniqueness of (user_id, event_id) on
// registrations and of user_id on settings is enforced here; the services
// additionally pre-check so the common case fails before the insert.
func (s *Store) Migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT UNIQUE NOT NULL,
		role          TEXT NOT NULL,
		name          TEXT NOT NULL DEFAULT '',
		bio           TEXT NOT NULL DEFAULT '',
		branch        TEXT NOT NULL DEFAULT '',
		phone         TEXT NOT NULL DEFAULT '',
		roll_number   TEXT NOT NULL DEFAULT '',
		year          TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL DEFAULT '',
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS student_profiles (
		id            TEXT PRIMARY KEY REFERENCES users(id),
		roll_number   TEXT NOT NULL DEFAULT '',
		semester      INT,
		year_of_study INT,
		department    TEXT NOT NULL DEFAULT '',
		cgpa          DOUBLE PRECISION,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS teacher_profiles (
		id             TEXT PRIMARY KEY REFERENCES users(id),
		department     TEXT NOT NULL DEFAULT '',
		designation    TEXT NOT NULL DEFAULT '',
		employee_id    TEXT NOT NULL DEFAULT '',
		specialization TEXT NOT NULL DEFAULT '',
		joining_date   TIMESTAMPTZ,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS committee_profiles (
		id               TEXT PRIMARY KEY REFERENCES users(id),
		committee_name   TEXT NOT NULL DEFAULT '',
		position         TEXT NOT NULL DEFAULT '',
		term_start       TIMESTAMPTZ,
		term_end         TIMESTAMPTZ,
		responsibilities TEXT NOT NULL DEFAULT '',
		created_at       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at       TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS events (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		description  TEXT NOT NULL DEFAULT '',
		date         TEXT NOT NULL,
		time         TEXT NOT NULL DEFAULT '',
		location     TEXT NOT NULL DEFAULT '',
		organizer_id TEXT NOT NULL REFERENCES users(id),
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS registrations (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id),
		event_id   TEXT NOT NULL REFERENCES events(id),
		status     TEXT NOT NULL DEFAULT 'pending',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, event_id)
	);

	CREATE TABLE IF NOT EXISTS attendance (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id),
		event_id   TEXT NOT NULL REFERENCES events(id),
		status     TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS payments (
		id             TEXT PRIMARY KEY,
		user_id        TEXT NOT NULL REFERENCES users(id),
		event_id       TEXT NOT NULL REFERENCES events(id),
		payment_status TEXT NOT NULL DEFAULT 'pending',
		amount         DOUBLE PRECISION NOT NULL DEFAULT 0,
		transaction_id TEXT NOT NULL DEFAULT '',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS notifications (
		id         TEXT PRIMARY KEY,
		user_id    TEXT NOT NULL REFERENCES users(id),
		title      TEXT NOT NULL,
		message    TEXT NOT NULL DEFAULT '',
		is_read    BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS settings (
		id          TEXT PRIMARY KEY,
		user_id     TEXT UNIQUE NOT NULL REFERENCES users(id),
		preferences JSONB NOT NULL DEFAULT '{}',
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_registrations_user ON registrations(user_id);
	CREATE INDEX IF NOT EXISTS idx_attendance_event   ON attendance(event_id);
	CREATE INDEX IF NOT EXISTS idx_payments_user      ON payments(user_id);
	CREATE INDEX IF NOT EXISTS idx_notifications_user ON notifications(user_id);
	`
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}
