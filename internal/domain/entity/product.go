// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product represents an item listed by a supplier.
// Prices are always the supplier's base price; reseller margins are applied on top when
// a favorite or catalog resolves the final price.
type Product struct {
	ID             uuid.UUID  // The Global Unique Identifier (GUID) for the product.
	SupplierID     uuid.UUID  // The ID of the supplier who listed this product.
	CategoryID     *uuid.UUID // Optional reference to a category. Nil means "Sin categoría".
	Name           string     // Display name of the product.
	Description    string     // Marketing description shown in listings and catalogs.
	Price          float64    // The supplier's base price, before any reseller markup.
	PhotoURL       string     // Main product image URL.
	SKU            string     // Supplier-assigned stock keeping unit.
	Stock          int        // Units available, informational only.
	IsActive       bool       // Soft-delete flag. Inactive products are excluded from reads.
	FavoritesCount int        // Denormalized count of resellers currently favoriting this product.
	AvgRating      float64    // Average rating over all reviews, rounded to two decimals.
	ReviewCount    int        // Number of reviews this product has received.
	CreatedAt      time.Time  // Timestamp of when this product was listed.
	UpdatedAt      time.Time  // Timestamp of the last modification.
}

// WatchedFieldsChanged reports which catalog-relevant fields differ between the
// previous and current version of a product. Favoriting resellers are notified
// only when at least one of these changes.
func (p *Product) WatchedFieldsChanged(prev *Product) []string {
	var changed []string
	if p.Name != prev.Name {
		changed = append(changed, "nombre")
	}
	if p.Price != prev.Price {
		changed = append(changed, "precio")
	}
	if p.Description != prev.Description {
		changed = append(changed, "descripción")
	}
	if p.PhotoURL != prev.PhotoURL {
		changed = append(changed, "foto")
	}

	return changed
}
