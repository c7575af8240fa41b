// Package notification stores per-user messages and defines the queue job
// the worker turns into notification rows.
package notification

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"campusevents/internal/model"
)

// Store is the persistence surface for notifications.
type Store interface {
	NotificationsForUser(ctx context.Context, userID string) ([]model.Notification, error)
	InsertNotification(ctx context.Context, n *model.Notification) error
	MarkNotificationRead(ctx context.Context, id string) (bool, error)
}

// Service wraps notification persistence.
type Service struct {
	store Store
}

// NewService creates a notification service backed by a store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListForUser returns a user's notifications, newest first.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]model.Notification, error) {
	return s.store.NotificationsForUser(ctx, userID)
}

// Create inserts an unread notification.
func (s *Service) Create(ctx context.Context, userID, title, message string) (*model.Notification, error) {
	if userID == "" || title == "" {
		return nil, errors.New("user and title required")
	}
	n := &model.Notification{UserID: userID, Title: title, Message: message}
	if err := s.store.InsertNotification(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

// MarkRead flags a notification read and reports whether it existed.
func (s *Service) MarkRead(ctx context.Context, id string) (bool, error) {
	return s.store.MarkNotificationRead(ctx, id)
}

// DecisionJob is the queue payload published by the API when a
// registration is approved or rejected; the worker turns it into a
// notification row for the registrant.
type DecisionJob struct {
	UserID    string `json:"user_id"`
	EventName string `json:"event_name"`
	Status    string `json:"status"`
}

// Encode serializes the job for the queue body.
func (j DecisionJob) Encode() []byte {
	b, _ := json.Marshal(j)
	return b
}

// DecodeDecisionJob parses a queue body.
func DecodeDecisionJob(b []byte) (DecisionJob, error) {
	var j DecisionJob
	if err := json.Unmarshal(b, &j); err != nil {
		return DecisionJob{}, err
	}
	if j.UserID == "" {
		return DecisionJob{}, errors.New("decision job missing user id")
	}
	return j, nil
}

// NotifyDecision writes the notification for a registration decision.
func (s *Service) NotifyDecision(ctx context.Context, job DecisionJob) (*model.Notification, error) {
	title := "Registration " + job.Status
	message := fmt.Sprintf("Your registration for %s was %s.", job.EventName, job.Status)
	return s.Create(ctx, job.UserID, title, message)
}
