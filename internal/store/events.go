package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campusevents/internal/model"
)

const eventColumns = "id, name, description, date, time, location, organizer_id, created_at"

func scanEvent(r rowScanner) (model.Event, error) {
	var e model.Event
	err := r.Scan(&e.ID, &e.Name, &e.Description, &e.Date, &e.Time,
		&e.Location, &e.OrganizerID, &e.CreatedAt)
	return e, err
}

// AllEvents returns every event row.
func (s *Store) AllEvents(ctx context.Context) ([]model.Event, error) {
	return fetchAll(ctx, s.db, tableEvents, eventColumns, scanEvent)
}

// EventByID returns an event or nil when absent.
func (s *Store) EventByID(ctx context.Context, id string) (*model.Event, error) {
	return fetchOne(ctx, s.db, tableEvents, eventColumns, Filter{"id", id}, scanEvent)
}

// InsertEvent creates an event, assigning id and timestamp. Events are
// immutable at this layer; there is no update.
func (s *Store) InsertEvent(ctx context.Context, e *model.Event) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	e.CreatedAt = time.Now().UTC()
	return insertRow(ctx, s.db, tableEvents,
		[]string{"id", "name", "description", "date", "time", "location", "organizer_id", "created_at"},
		[]any{e.ID, e.Name, e.Description, e.Date, e.Time, e.Location, e.OrganizerID, e.CreatedAt})
}
