// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UncategorizedLabel is the bucket name used for products without a category.
const UncategorizedLabel = "Sin categoría"

// Category groups products for browsing and for catalog sections.
type Category struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the category.
	Name         string    // Display name of the category.
	Description  string    // Optional description shown in category listings.
	PhotoURL     string    // Optional cover image URL.
	ProductCount int       // Denormalized count of active products in this category.
	CreatedAt    time.Time // Timestamp of when this category was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}
