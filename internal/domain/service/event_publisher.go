package service

import (
	"context"
)

// EventType identifies the marketplace event carried by an Event.
type EventType string

const (
	// EventUserRegistered fires after a successful registration, for the welcome notification.
	EventUserRegistered EventType = "user.registered"
	// EventFavoriteCreated fires when a reseller favorites a product.
	EventFavoriteCreated EventType = "favorite.created"
	// EventReviewCreated fires when a reseller reviews a product.
	EventReviewCreated EventType = "review.created"
	// EventProductUpdated fires when a supplier changes a catalog-relevant product field.
	EventProductUpdated EventType = "product.updated"
	// EventCatalogGenerated fires when a reseller's catalog finishes rendering.
	EventCatalogGenerated EventType = "catalog.generated"
)

// Event represents a marketplace event to be processed by the notification worker.
// Fields are populated according to Type; unused fields stay empty.
type Event struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	Type          EventType `json:"type"`
	ActorID       string    `json:"actor_id,omitempty"`      // The user who triggered the event
	ActorName     string    `json:"actor_name,omitempty"`    // Display name of the actor
	RecipientID   string    `json:"recipient_id,omitempty"`  // Direct recipient (supplier for favorites and reviews)
	RecipientIDs  []string  `json:"recipient_ids,omitempty"` // Fan-out recipients (favoriting resellers for product updates)
	ProductID     string    `json:"product_id,omitempty"`
	ProductName   string    `json:"product_name,omitempty"`
	ReviewRating  int       `json:"review_rating,omitempty"`
	ChangedFields []string  `json:"changed_fields,omitempty"` // Watched product fields that changed
	CatalogURL    string    `json:"catalog_url,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// Publish publishes a marketplace event for async processing
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
