// Package event exposes the event catalogue. Events are immutable once
// created; there is no update or delete at this layer.
package event

import (
	"context"
	"errors"

	"campusevents/internal/model"
)

// Store is the persistence surface for events.
type Store interface {
	AllEvents(ctx context.Context) ([]model.Event, error)
	EventByID(ctx context.Context, id string) (*model.Event, error)
	InsertEvent(ctx context.Context, e *model.Event) error
}

// Service wraps event persistence with light validation.
type Service struct {
	store Store
}

// NewService creates an event service backed by a store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// List returns every event.
func (s *Service) List(ctx context.Context) ([]model.Event, error) {
	return s.store.AllEvents(ctx)
}

// ByID returns an event or nil when absent.
func (s *Service) ByID(ctx context.Context, id string) (*model.Event, error) {
	return s.store.EventByID(ctx, id)
}

// Create adds an event to the catalogue.
func (s *Service) Create(ctx context.Context, e *model.Event) error {
	if e.Name == "" || e.Date == "" {
		return errors.New("name and date required")
	}
	if e.OrganizerID == "" {
		return errors.New("organizer required")
	}
	return s.store.InsertEvent(ctx, e)
}
