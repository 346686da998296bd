package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"tangoshop/internal/domain/entity"
	domainerrors "tangoshop/internal/domain/errors"
	"tangoshop/internal/domain/repository"
	mockrepo "tangoshop/internal/mocks/repository"
	"tangoshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	notificationRepo *mockrepo.MockNotificationRepository
}

func createTestNotificationService(t *testing.T) (usecase.NotificationUsecase, notificationServiceFixtures) {
	t.Helper()

	fx := notificationServiceFixtures{
		notificationRepo: mockrepo.NewMockNotificationRepository(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	srv := NewNotificationService(fx.notificationRepo, logger)

	return srv, fx
}

func TestNotificationService_List_ReturnsUnreadCount(t *testing.T) {
	srv, fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	stored := []*entity.Notification{
		{ID: uuid.New(), UserID: userID, Type: entity.NotificationNewFavorite, IsRead: true},
		{ID: uuid.New(), UserID: userID, Type: entity.NotificationNewReview},
	}

	fx.notificationRepo.EXPECT().FindByUser(ctx, userID, false, 20, 0).Return(stored, nil)
	fx.notificationRepo.EXPECT().CountByUser(ctx, userID, false).Return(int64(2), nil)
	fx.notificationRepo.EXPECT().CountByUser(ctx, userID, true).Return(int64(1), nil)

	output, err := srv.List(ctx, userID, false, 1, 20)

	require.NoError(t, err)
	assert.Len(t, output.Notifications, 2)
	assert.Equal(t, int64(1), output.UnreadCount)
	assert.Equal(t, int64(2), output.Pagination.TotalItems)
	assert.False(t, output.Pagination.HasNextPage)
}

func TestNotificationService_List_OnlyUnread(t *testing.T) {
	srv, fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	unread := []*entity.Notification{
		{ID: uuid.New(), UserID: userID, Type: entity.NotificationProductUpdated},
	}

	fx.notificationRepo.EXPECT().FindByUser(ctx, userID, true, 20, 0).Return(unread, nil)
	// Both the total and the unread counter hit the same query when
	// filtering for unread entries.
	fx.notificationRepo.EXPECT().CountByUser(ctx, userID, true).Return(int64(1), nil).Twice()

	output, err := srv.List(ctx, userID, true, 1, 20)

	require.NoError(t, err)
	assert.Len(t, output.Notifications, 1)
	assert.Equal(t, int64(1), output.UnreadCount)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	srv, fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	fx.notificationRepo.EXPECT().MarkRead(ctx, notificationID, userID).Return(repository.ErrNotificationNotFound)

	err := srv.MarkRead(ctx, userID, notificationID)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_MarkAllRead_Success(t *testing.T) {
	srv, fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.notificationRepo.EXPECT().MarkAllRead(ctx, userID).Return(nil)

	require.NoError(t, srv.MarkAllRead(ctx, userID))
}

func TestNotificationService_Delete_GuardsOwnership(t *testing.T) {
	srv, fx := createTestNotificationService(t)
	ctx := context.Background()
	userID := uuid.New()
	notificationID := uuid.New()

	// The repository scopes the delete by user, a foreign notification
	// surfaces as not found.
	fx.notificationRepo.EXPECT().Delete(ctx, notificationID, userID).Return(repository.ErrNotificationNotFound)

	err := srv.Delete(ctx, userID, notificationID)

	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}
