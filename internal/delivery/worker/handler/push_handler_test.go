package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tangoshop/config"
	"tangoshop/internal/domain/entity"
	"tangoshop/internal/domain/service"
	mockrepo "tangoshop/internal/mocks/repository"
	mocksvc "tangoshop/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushHandlerFixtures struct {
	notificationSvc  *mocksvc.MockNotificationService
	notificationRepo *mockrepo.MockNotificationRepository
	userRepo         *mockrepo.MockUserRepository
}

func createTestPushHandler(t *testing.T) (*PushHandler, pushHandlerFixtures) {
	t.Helper()

	fx := pushHandlerFixtures{
		notificationSvc:  mocksvc.NewMockNotificationService(t),
		notificationRepo: mockrepo.NewMockNotificationRepository(t),
		userRepo:         mockrepo.NewMockUserRepository(t),
	}

	handler := NewPushHandler(PushHandlerParams{
		Config:           &config.Config{},
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc:  fx.notificationSvc,
		NotificationRepo: fx.notificationRepo,
		UserRepo:         fx.userRepo,
	})

	return handler, fx
}

func pushRequest(t *testing.T, event *service.Event) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	var pushMsg PubSubMessage
	pushMsg.Message.Data = base64.StdEncoding.EncodeToString(payload)
	pushMsg.Message.MessageID = "msg-1"
	pushMsg.Subscription = "projects/test/subscriptions/events"

	body, err := json.Marshal(pushMsg)
	require.NoError(t, err)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(string(body)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestPushHandler_FavoriteCreated_StoresAndPushes(t *testing.T) {
	handler, fx := createTestPushHandler(t)

	supplierID := uuid.New()
	event := &service.Event{
		Type:        service.EventFavoriteCreated,
		ActorID:     uuid.New().String(),
		ActorName:   "Marta Paz",
		RecipientID: supplierID.String(),
		ProductID:   uuid.New().String(),
		ProductName: "Mate Imperial",
	}

	var stored []*entity.Notification
	fx.notificationRepo.EXPECT().
		BatchCreate(mock.Anything, mock.AnythingOfType("[]*entity.Notification")).
		RunAndReturn(func(_ context.Context, notifications []*entity.Notification) error {
			stored = notifications

			return nil
		})
	fx.userRepo.EXPECT().FindByID(mock.Anything, supplierID).
		Return(&entity.User{ID: supplierID, IsActive: true, FCMToken: "token-1"}, nil)
	fx.notificationSvc.EXPECT().
		SendBatchNotification(mock.Anything, []string{"token-1"}, "¡Nuevo favorito!", "Marta Paz agregó Mate Imperial a sus favoritos.", mock.Anything).
		Return(1, 0, nil, nil)

	c, rec := pushRequest(t, event)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, stored, 1)
	assert.Equal(t, supplierID, stored[0].UserID)
	assert.Equal(t, entity.NotificationNewFavorite, stored[0].Type)
}

func TestPushHandler_UnknownEventType_Acked(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	event := &service.Event{Type: service.EventType("something.else")}
	c, rec := pushRequest(t, event)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPushHandler_StoreFailure_RequestsRetry(t *testing.T) {
	handler, fx := createTestPushHandler(t)

	event := &service.Event{
		Type:         service.EventReviewCreated,
		ActorName:    "Marta Paz",
		RecipientID:  uuid.New().String(),
		ProductName:  "Mate Imperial",
		ReviewRating: 4,
	}

	fx.notificationRepo.EXPECT().
		BatchCreate(mock.Anything, mock.AnythingOfType("[]*entity.Notification")).
		Return(assert.AnError)

	c, rec := pushRequest(t, event)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPushHandler_MalformedPayload_Rejected(t *testing.T) {
	handler, _ := createTestPushHandler(t)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(`{"message":{"data":"not-base64!!"}}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, handler.HandlePush(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComposeNotification_ProductUpdated(t *testing.T) {
	event := &service.Event{
		Type:          service.EventProductUpdated,
		ProductID:     uuid.New().String(),
		ProductName:   "Mate Imperial",
		ChangedFields: []string{"precio", "foto"},
	}

	content, ok := composeNotification(event)

	require.True(t, ok)
	assert.Equal(t, entity.NotificationProductUpdated, content.notificationType)
	assert.Equal(t, "Mate Imperial cambió: precio, foto.", content.body)
	assert.Equal(t, event.ProductID, content.data["product_id"])
}
