package service

import (
	"context"
)

// NotificationService defines the interface for push delivery. The worker
// uses it on top of the stored in-app notifications; delivery is best effort.
type NotificationService interface {
	// SendBatchNotification pushes to multiple registration tokens.
	// Returns success count, failure count and the tokens the provider
	// reported as invalid or unregistered.
	SendBatchNotification(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSingleNotification pushes to one registration token.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
