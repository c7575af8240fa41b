// Package registration implements the event registration workflow: the
// pending/approved/rejected state machine plus the attendance and payment
// records that hang off a (user, event) pair.
package registration

import (
	"context"
	"errors"

	"campusevents/internal/model"
)

// Store is the persistence surface the workflow needs.
type Store interface {
	RegistrationByID(ctx context.Context, id string) (*model.Registration, error)
	RegistrationByUserAndEvent(ctx context.Context, userID, eventID string) (*model.Registration, error)
	InsertRegistration(ctx context.Context, reg *model.Registration) error
	UpdateRegistrationStatus(ctx context.Context, id string, status model.RegistrationStatus) (bool, error)
	RegistrationsWithEvents(ctx context.Context, userID string) ([]model.RegistrationWithEvent, error)

	InsertAttendance(ctx context.Context, a *model.Attendance) error
	AttendanceForEvent(ctx context.Context, eventID string) ([]model.Attendance, error)

	InsertPayment(ctx context.Context, p *model.Payment) error
	PaymentByID(ctx context.Context, id string) (*model.Payment, error)
	PaymentsForUser(ctx context.Context, userID string) ([]model.Payment, error)
	UpdatePaymentStatus(ctx context.Context, id string, status model.PaymentStatus, transactionID string) (bool, error)
}

// Service coordinates registration state and related records. It does not
// enforce role-based authorization; that lives at the HTTP layer.
type Service struct {
	store Store
}

// NewService creates a workflow service backed by a store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Register creates a pending registration for a (user, event) pair. The
// duplicate check is explicit: a pre-check query first, with the store's
// unique constraint as the backstop for a racing insert.
func (s *Service) Register(ctx context.Context, userID, eventID string) (*model.Registration, error) {
	if userID == "" || eventID == "" {
		return nil, errors.New("user and event required")
	}
	existing, err := s.store.RegistrationByUserAndEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrDuplicateRegistration
	}
	reg := &model.Registration{
		UserID:  userID,
		EventID: eventID,
		Status:  model.RegistrationPending,
	}
	if err := s.store.InsertRegistration(ctx, reg); err != nil {
		return nil, err
	}
	return reg, nil
}

// Approve moves a pending registration to approved.
func (s *Service) Approve(ctx context.Context, id string) (*model.Registration, error) {
	return s.decide(ctx, id, model.RegistrationApproved)
}

// Reject moves a pending registration to rejected.
func (s *Service) Reject(ctx context.Context, id string) (*model.Registration, error) {
	return s.decide(ctx, id, model.RegistrationRejected)
}

// decide enforces the only legal transitions: pending to approved and
// pending to rejected. The load and the update are two round trips; a
// concurrent decision can slip between them.
func (s *Service) decide(ctx context.Context, id string, status model.RegistrationStatus) (*model.Registration, error) {
	reg, err := s.store.RegistrationByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if reg == nil {
		return nil, model.ErrRegistrationNotFound
	}
	if reg.Status != model.RegistrationPending {
		return nil, model.ErrInvalidTransition
	}
	if _, err := s.store.UpdateRegistrationStatus(ctx, id, status); err != nil {
		return nil, err
	}
	reg.Status = status
	return reg, nil
}

// ListForUser returns a user's registrations with their events embedded.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]model.RegistrationWithEvent, error) {
	return s.store.RegistrationsWithEvents(ctx, userID)
}

// MarkAttendance records presence for a (user, event) pair. This is
// independent of registration state; nothing checks whether the user was
// approved, or registered at all.
func (s *Service) MarkAttendance(ctx context.Context, userID, eventID string, status model.AttendanceStatus) (*model.Attendance, error) {
	if userID == "" || eventID == "" {
		return nil, errors.New("user and event required")
	}
	if !status.Valid() {
		return nil, errors.New("attendance status must be present or absent")
	}
	a := &model.Attendance{UserID: userID, EventID: eventID, Status: status}
	if err := s.store.InsertAttendance(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

// AttendanceForEvent lists attendance records for an event.
func (s *Service) AttendanceForEvent(ctx context.Context, eventID string) ([]model.Attendance, error) {
	return s.store.AttendanceForEvent(ctx, eventID)
}

// RecordPayment creates a pending payment for a (user, event) pair.
func (s *Service) RecordPayment(ctx context.Context, userID, eventID string, amount float64) (*model.Payment, error) {
	if userID == "" || eventID == "" {
		return nil, errors.New("user and event required")
	}
	if amount < 0 {
		return nil, errors.New("amount must not be negative")
	}
	p := &model.Payment{
		UserID:        userID,
		EventID:       eventID,
		PaymentStatus: model.PaymentPending,
		Amount:        amount,
	}
	if err := s.store.InsertPayment(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// SettlePayment marks a payment completed or failed, recording the gateway
// transaction id when provided.
func (s *Service) SettlePayment(ctx context.Context, id string, status model.PaymentStatus, transactionID string) (*model.Payment, error) {
	if status != model.PaymentCompleted && status != model.PaymentFailed {
		return nil, errors.New("settlement status must be completed or failed")
	}
	ok, err := s.store.UpdatePaymentStatus(ctx, id, status, transactionID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return s.store.PaymentByID(ctx, id)
}

// PaymentsForUser lists a user's payments.
func (s *Service) PaymentsForUser(ctx context.Context, userID string) ([]model.Payment, error) {
	return s.store.PaymentsForUser(ctx, userID)
}
