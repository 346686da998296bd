package usecase

import (
	"context"

	"tangoshop/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationListOutput returns a page of a user's notifications together
// with their unread count.
type NotificationListOutput struct {
	Notifications []*entity.Notification
	UnreadCount   int64
	Pagination    Pagination
}

// NotificationUsecase defines the interface for in-app notification operations.
type NotificationUsecase interface {
	// List retrieves a page of the user's notifications, newest first.
	List(ctx context.Context, userID uuid.UUID, onlyUnread bool, page, limit int) (*NotificationListOutput, error)

	// MarkRead flags a single notification of the user as read.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllRead flags every unread notification of the user as read.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error

	// Delete removes a notification of the user.
	Delete(ctx context.Context, userID, notificationID uuid.UUID) error
}
