package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"campusevents/internal/model"
)

const registrationColumns = "id, user_id, event_id, status, created_at, updated_at"

func scanRegistration(r rowScanner) (model.Registration, error) {
	var reg model.Registration
	err := r.Scan(&reg.ID, &reg.UserID, &reg.EventID, &reg.Status,
		&reg.CreatedAt, &reg.UpdatedAt)
	return reg, err
}

// RegistrationByID returns a registration or nil when absent.
func (s *Store) RegistrationByID(ctx context.Context, id string) (*model.Registration, error) {
	return fetchOne(ctx, s.db, tableRegistrations, registrationColumns, Filter{"id", id}, scanRegistration)
}

// RegistrationByUserAndEvent returns the registration for a (user, event)
// pair or nil when absent. This is the pre-check behind duplicate detection.
func (s *Store) RegistrationByUserAndEvent(ctx context.Context, userID, eventID string) (*model.Registration, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+registrationColumns+`
		FROM registrations
		WHERE user_id = $1 AND event_id = $2
	`, userID, eventID)
	reg, err := scanRegistration(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, classify(CodeQueryFailed, err)
	}
	return &reg, nil
}

// InsertRegistration creates a registration row. The UNIQUE(user_id,
// event_id) constraint backstops the service-level pre-check; a conflict
// maps to model.ErrDuplicateRegistration.
func (s *Store) InsertRegistration(ctx context.Context, reg *model.Registration) error {
	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	if reg.Status == "" {
		reg.Status = model.RegistrationPending
	}
	now := time.Now().UTC()
	reg.CreatedAt = now
	reg.UpdatedAt = now
	err := insertRow(ctx, s.db, tableRegistrations,
		[]string{"id", "user_id", "event_id", "status", "created_at", "updated_at"},
		[]any{reg.ID, reg.UserID, reg.EventID, string(reg.Status), reg.CreatedAt, reg.UpdatedAt})
	if IsConflict(err) {
		return model.ErrDuplicateRegistration
	}
	return err
}

// UpdateRegistrationStatus sets the status and reports whether the row
// existed.
func (s *Store) UpdateRegistrationStatus(ctx context.Context, id string, status model.RegistrationStatus) (bool, error) {
	n, err := updateRows(ctx, s.db, tableRegistrations, Filter{"id", id}, map[string]any{
		"status":     string(status),
		"updated_at": time.Now().UTC(),
	})
	return n > 0, err
}

// RegistrationsWithEvents returns a user's registrations joined with their
// events, newest first.
func (s *Store) RegistrationsWithEvents(ctx context.Context, userID string) ([]model.RegistrationWithEvent, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.user_id, r.event_id, r.status, r.created_at, r.updated_at,
		       e.id, e.name, e.description, e.date, e.time, e.location, e.organizer_id, e.created_at
		FROM registrations r
		JOIN events e ON e.id = r.event_id
		WHERE r.user_id = $1
		ORDER BY r.created_at DESC
	`, userID)
	if err != nil {
		return nil, classify(CodeQueryFailed, err)
	}
	defer rows.Close()

	var res []model.RegistrationWithEvent
	for rows.Next() {
		var rw model.RegistrationWithEvent
		if err := rows.Scan(
			&rw.ID, &rw.UserID, &rw.EventID, &rw.Status, &rw.CreatedAt, &rw.UpdatedAt,
			&rw.Event.ID, &rw.Event.Name, &rw.Event.Description, &rw.Event.Date, &rw.Event.Time,
			&rw.Event.Location, &rw.Event.OrganizerID, &rw.Event.CreatedAt,
		); err != nil {
			return nil, classify(CodeQueryFailed, err)
		}
		res = append(res, rw)
	}
	if err := rows.Err(); err != nil {
		return nil, classify(CodeQueryFailed, err)
	}
	return res, nil
}

// InsertAttendance records presence for a (user, event) pair. No
// cross-validation against registration state happens here.
func (s *Store) InsertAttendance(ctx context.Context, a *model.Attendance) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	a.CreatedAt = time.Now().UTC()
	return insertRow(ctx, s.db, tableAttendance,
		[]string{"id", "user_id", "event_id", "status", "created_at"},
		[]any{a.ID, a.UserID, a.EventID, string(a.Status), a.CreatedAt})
}

const attendanceColumns = "id, user_id, event_id, status, created_at"

func scanAttendance(r rowScanner) (model.Attendance, error) {
	var a model.Attendance
	err := r.Scan(&a.ID, &a.UserID, &a.EventID, &a.Status, &a.CreatedAt)
	return a, err
}

// AttendanceForEvent lists attendance rows for one event, newest first.
func (s *Store) AttendanceForEvent(ctx context.Context, eventID string) ([]model.Attendance, error) {
	return fetchAllWhere(ctx, s.db, tableAttendance, attendanceColumns,
		Filter{"event_id", eventID}, "created_at DESC", scanAttendance)
}

const paymentColumns = "id, user_id, event_id, payment_status, amount, transaction_id, created_at"

func scanPayment(r rowScanner) (model.Payment, error) {
	var p model.Payment
	err := r.Scan(&p.ID, &p.UserID, &p.EventID, &p.PaymentStatus, &p.Amount,
		&p.TransactionID, &p.CreatedAt)
	return p, err
}

// InsertPayment records a payment row.
func (s *Store) InsertPayment(ctx context.Context, p *model.Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = model.PaymentPending
	}
	p.CreatedAt = time.Now().UTC()
	return insertRow(ctx, s.db, tablePayments,
		[]string{"id", "user_id", "event_id", "payment_status", "amount", "transaction_id", "created_at"},
		[]any{p.ID, p.UserID, p.EventID, string(p.PaymentStatus), p.Amount, p.TransactionID, p.CreatedAt})
}

// PaymentByID returns a payment or nil when absent.
func (s *Store) PaymentByID(ctx context.Context, id string) (*model.Payment, error) {
	return fetchOne(ctx, s.db, tablePayments, paymentColumns, Filter{"id", id}, scanPayment)
}

// PaymentsForUser lists a user's payments, newest first.
func (s *Store) PaymentsForUser(ctx context.Context, userID string) ([]model.Payment, error) {
	return fetchAllWhere(ctx, s.db, tablePayments, paymentColumns,
		Filter{"user_id", userID}, "created_at DESC", scanPayment)
}

// UpdatePaymentStatus settles a payment and reports whether the row existed.
func (s *Store) UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus, transactionID string) (bool, error) {
	changes := map[string]any{"payment_status": string(status)}
	if transactionID != "" {
		changes["transaction_id"] = transactionID
	}
	n, err := updateRows(ctx, s.db, tablePayments, Filter{"id", id}, changes)
	return n > 0, err
}
