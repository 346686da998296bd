package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tangoshop/config"
	deliverycontext "tangoshop/internal/delivery/context"
	"tangoshop/internal/domain/constants"
	"tangoshop/internal/domain/entity"
	"tangoshop/internal/domain/repository"
	"tangoshop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError wraps an error to indicate it should trigger a Pub/Sub retry
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

// newRetryableError wraps an error as retryable
func newRetryableError(err error) error {
	return &retryableError{err: err}
}

// isRetryableError checks if an error is retryable
func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// PushHandler consumes marketplace events pushed by Pub/Sub and fans them out
// as in-app notifications, with best-effort FCM delivery on top.
type PushHandler struct {
	verifyPushAuth   bool
	logger           *slog.Logger
	notificationSvc  service.NotificationService
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config           *config.Config
	Logger           *slog.Logger
	NotificationSvc  service.NotificationService
	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth:   verifyPushAuth,
		logger:           params.Logger,
		notificationSvc:  params.NotificationSvc,
		notificationRepo: params.NotificationRepo,
		userRepo:         params.UserRepo,
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse marketplace event
	var event service.Event
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing event",
		slog.String("type", string(event.Type)),
		slog.String("actor_id", event.ActorID),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to process event",
			slog.String("type", string(event.Type)),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		// Return 503 for retryable errors to trigger Pub/Sub retry
		// Return 200 for non-retryable errors to prevent infinite retries
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Event processed successfully",
		slog.String("type", string(event.Type)),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.Event) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processEvent turns a marketplace event into stored notifications plus
// best-effort push delivery. Unknown event types are dropped without retry.
func (h *PushHandler) processEvent(ctx context.Context, event *service.Event) error {
	content, ok := composeNotification(event)
	if !ok {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Warn("[Worker] Unknown event type dropped",
			slog.String("type", string(event.Type)),
		)

		return nil
	}

	recipientIDs, err := h.resolveRecipients(event)
	if err != nil {
		return err
	}
	if len(recipientIDs) == 0 {
		return nil
	}

	notifications := make([]*entity.Notification, 0, len(recipientIDs))
	for _, recipientID := range recipientIDs {
		notifications = append(notifications, &entity.Notification{
			ID:        uuid.New(),
			UserID:    recipientID,
			Type:      content.notificationType,
			Title:     content.title,
			Message:   content.body,
			Data:      content.data,
			CreatedAt: time.Now(),
		})
	}

	if err := h.notificationRepo.BatchCreate(ctx, notifications); err != nil {
		return newRetryableError(errors.Wrap(err, "failed to store notifications"))
	}

	// Push delivery never blocks the event; a lost push is acceptable,
	// the in-app notification is already stored.
	h.sendPushes(ctx, recipientIDs, content)

	return nil
}

// resolveRecipients parses the recipient IDs carried by the event. The welcome
// and catalog events address the actor, the rest address the recipient fields.
func (h *PushHandler) resolveRecipients(event *service.Event) ([]uuid.UUID, error) {
	var rawIDs []string

	switch event.Type {
	case service.EventUserRegistered, service.EventCatalogGenerated:
		rawIDs = []string{event.ActorID}
	case service.EventProductUpdated:
		rawIDs = event.RecipientIDs
	default:
		rawIDs = []string{event.RecipientID}
	}

	recipientIDs := make([]uuid.UUID, 0, len(rawIDs))
	for _, idStr := range rawIDs {
		if idStr == "" {
			continue
		}
		id, err := uuid.Parse(idStr)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid recipient id %q", idStr)
		}
		recipientIDs = append(recipientIDs, id)
	}

	return recipientIDs, nil
}

// notificationContent is the rendered copy of one event.
type notificationContent struct {
	notificationType entity.NotificationType
	title            string
	body             string
	data             map[string]string
}

// composeNotification renders the Spanish notification copy for an event.
func composeNotification(event *service.Event) (notificationContent, bool) {
	data := map[string]string{}
	if event.ProductID != "" {
		data["product_id"] = event.ProductID
	}
	if event.ActorID != "" {
		data["actor_id"] = event.ActorID
	}

	switch event.Type {
	case service.EventUserRegistered:
		return notificationContent{
			notificationType: entity.NotificationWelcome,
			title:            "¡Bienvenido a TangoShop!",
			body:             fmt.Sprintf("Hola %s, tu cuenta fue creada con éxito.", event.ActorName),
			data:             data,
		}, true
	case service.EventFavoriteCreated:
		return notificationContent{
			notificationType: entity.NotificationNewFavorite,
			title:            "¡Nuevo favorito!",
			body:             fmt.Sprintf("%s agregó %s a sus favoritos.", event.ActorName, event.ProductName),
			data:             data,
		}, true
	case service.EventReviewCreated:
		data["rating"] = fmt.Sprintf("%d", event.ReviewRating)

		return notificationContent{
			notificationType: entity.NotificationNewReview,
			title:            "Nueva reseña recibida",
			body:             fmt.Sprintf("%s calificó %s con %d estrellas.", event.ActorName, event.ProductName, event.ReviewRating),
			data:             data,
		}, true
	case service.EventProductUpdated:
		return notificationContent{
			notificationType: entity.NotificationProductUpdated,
			title:            "Producto actualizado",
			body:             fmt.Sprintf("%s cambió: %s.", event.ProductName, strings.Join(event.ChangedFields, ", ")),
			data:             data,
		}, true
	case service.EventCatalogGenerated:
		data["catalog_url"] = event.CatalogURL

		return notificationContent{
			notificationType: entity.NotificationCatalogGenerated,
			title:            "Catálogo generado",
			body:             "Tu catálogo está listo para compartir.",
			data:             data,
		}, true
	default:
		return notificationContent{}, false
	}
}

// sendPushes delivers the notification to the recipients' registered devices.
func (h *PushHandler) sendPushes(ctx context.Context, recipientIDs []uuid.UUID, content notificationContent) {
	// Firebase is optional; without it the in-app notifications stand alone.
	if h.notificationSvc == nil {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	tokens := make([]string, 0, len(recipientIDs))
	for _, recipientID := range recipientIDs {
		user, err := h.userRepo.FindByID(ctx, recipientID)
		if err != nil {
			logger.Warn("[Worker] Failed to load push recipient",
				slog.String("user_id", recipientID.String()),
				slog.Any("error", err),
			)

			continue
		}
		if user.FCMToken != "" && user.IsActive {
			tokens = append(tokens, user.FCMToken)
		}
	}

	if len(tokens) == 0 {
		return
	}

	successCount, failureCount, invalidTokens, err := h.notificationSvc.SendBatchNotification(
		ctx, tokens, content.title, content.body, content.data,
	)
	if err != nil {
		logger.Error("[Worker] Failed to send push batch", slog.Any("error", err))

		return
	}

	logger.Info("[Worker] Push batch sent",
		slog.Int("success", successCount),
		slog.Int("failed", failureCount),
		slog.Int("invalid_tokens", len(invalidTokens)),
	)
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
