package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"campusevents/internal/model"
)

const notificationColumns = "id, user_id, title, message, is_read, created_at"

func scanNotification(r rowScanner) (model.Notification, error) {
	var n model.Notification
	err := r.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.IsRead, &n.CreatedAt)
	return n, err
}

// NotificationsForUser lists a user's notifications, newest first.
func (s *Store) NotificationsForUser(ctx context.Context, userID string) ([]model.Notification, error) {
	return fetchAllWhere(ctx, s.db, tableNotifications, notificationColumns,
		Filter{"user_id", userID}, "created_at DESC", scanNotification)
}

// InsertNotification creates an unread notification.
func (s *Store) InsertNotification(ctx context.Context, n *model.Notification) error {
	if n.ID == "" {
		n.ID = uuid.NewString()
	}
	n.CreatedAt = time.Now().UTC()
	return insertRow(ctx, s.db, tableNotifications,
		[]string{"id", "user_id", "title", "message", "is_read", "created_at"},
		[]any{n.ID, n.UserID, n.Title, n.Message, n.IsRead, n.CreatedAt})
}

// MarkNotificationRead flags a notification read and reports whether the
// row existed.
func (s *Store) MarkNotificationRead(ctx context.Context, id string) (bool, error) {
	n, err := updateRows(ctx, s.db, tableNotifications, Filter{"id", id}, map[string]any{
		"is_read": true,
	})
	return n > 0, err
}
