// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Favorite links a reseller to a product they intend to resell, together with the
// markup override that determines the final catalog price. The pair
// (ResellerID, ProductID) is unique.
type Favorite struct {
	ID          uuid.UUID  // The Global Unique Identifier (GUID) for the favorite.
	ResellerID  uuid.UUID  // The ID of the reseller who favorited the product.
	ProductID   uuid.UUID  // The ID of the favorited product.
	MarkupType  MarkupType // Per-favorite markup override. MarkupDefault defers to the reseller profile.
	MarkupValue float64    // The value paired with MarkupType. Ignored when MarkupType is MarkupDefault.
	AddedAt     time.Time  // Timestamp of when the product was favorited. Orders catalog entries.
	UpdatedAt   time.Time  // Timestamp of the last markup change.
}

// CatalogEntry is a favorite joined with its product, priced for a reseller's catalog.
type CatalogEntry struct {
	Favorite   Favorite // The favorite carrying the markup configuration.
	Product    Product  // The favorited product with its base price.
	FinalPrice float64  // The resolved price after applying the markup, rounded to two decimals.
}
