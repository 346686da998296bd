// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"tangoshop/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for in-app notification persistence.
type NotificationRepository interface {
	// Create persists a single notification.
	Create(ctx context.Context, notification *entity.Notification) error

	// BatchCreate persists multiple notifications in one statement.
	// Used by fan-out flows that notify many resellers at once.
	BatchCreate(ctx context.Context, notifications []*entity.Notification) error

	// FindByUser retrieves a page of a user's notifications, newest first.
	// When onlyUnread is set, read notifications are excluded.
	FindByUser(ctx context.Context, userID uuid.UUID, onlyUnread bool, limit, offset int) ([]*entity.Notification, error)

	// CountByUser returns the number of a user's notifications, optionally unread only.
	CountByUser(ctx context.Context, userID uuid.UUID, onlyUnread bool) (int64, error)

	// MarkRead flags a single notification as read. The userID guards ownership.
	MarkRead(ctx context.Context, id, userID uuid.UUID) error

	// MarkAllRead flags every unread notification of a user as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// Delete removes a notification. The userID guards ownership.
	Delete(ctx context.Context, id, userID uuid.UUID) error
}
