package impl

import (
	"context"
	"log/slog"

	domainerrors "tangoshop/internal/domain/errors"
	"tangoshop/internal/domain/repository"
	"tangoshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// List retrieves a page of the user's notifications, newest first.
func (srv *notificationService) List(ctx context.Context, userID uuid.UUID, onlyUnread bool, page, limit int) (*usecase.NotificationListOutput, error) {
	page, limit, offset := usecase.NormalizePage(page, limit)

	notifications, err := srv.notificationRepo.FindByUser(ctx, userID, onlyUnread, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	total, err := srv.notificationRepo.CountByUser(ctx, userID, onlyUnread)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count notifications")
	}

	unread, err := srv.notificationRepo.CountByUser(ctx, userID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count unread notifications")
	}

	return &usecase.NotificationListOutput{
		Notifications: notifications,
		UnreadCount:   unread,
		Pagination:    usecase.NewPagination(page, limit, total),
	}, nil
}

// MarkRead flags a single notification of the user as read.
func (srv *notificationService) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := srv.notificationRepo.MarkRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// MarkAllRead flags every unread notification of the user as read.
func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	if err := srv.notificationRepo.MarkAllRead(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to mark all notifications read")
	}

	return nil
}

// Delete removes a notification of the user.
func (srv *notificationService) Delete(ctx context.Context, userID, notificationID uuid.UUID) error {
	if err := srv.notificationRepo.Delete(ctx, notificationID, userID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to delete notification")
	}

	return nil
}
