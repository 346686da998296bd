// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType identifies the business event a notification describes.
type NotificationType string

const (
	// NotificationWelcome greets a newly registered user.
	NotificationWelcome NotificationType = "welcome"
	// NotificationNewFavorite tells a supplier one of their products was favorited.
	NotificationNewFavorite NotificationType = "new_favorite"
	// NotificationNewReview tells a supplier one of their products was reviewed.
	NotificationNewReview NotificationType = "new_review"
	// NotificationProductUpdated tells a reseller a favorited product changed.
	NotificationProductUpdated NotificationType = "product_updated"
	// NotificationCatalogGenerated tells a reseller their catalog is ready.
	NotificationCatalogGenerated NotificationType = "catalog_generated"
)

// IsValid checks if the NotificationType is a valid value.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotificationWelcome, NotificationNewFavorite, NotificationNewReview,
		NotificationProductUpdated, NotificationCatalogGenerated:
		return true
	default:
		return false
	}
}

// Notification is an in-app message delivered to a single user.
type Notification struct {
	ID        uuid.UUID         `json:"id"`         // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID         `json:"user_id"`    // The ID of the user who receives this notification.
	Type      NotificationType  `json:"type"`       // The business event this notification describes.
	Title     string            `json:"title"`      // Short headline shown in the notification list.
	Message   string            `json:"message"`    // Full notification body.
	Data      map[string]string `json:"data"`       // Event payload, e.g. the product or catalog involved.
	IsRead    bool              `json:"is_read"`    // Whether the user has opened this notification.
	CreatedAt time.Time         `json:"created_at"` // Timestamp of when the notification was created.
}
