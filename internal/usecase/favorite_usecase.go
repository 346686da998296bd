package usecase

import (
	"context"

	"tangoshop/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// AddFavoriteInput defines the data required to favorite a product.
// MarkupType defaults to the reseller's profile configuration when empty.
type AddFavoriteInput struct {
	ProductID   uuid.UUID
	MarkupType  entity.MarkupType
	MarkupValue float64
}

// UpdateMarkupInput replaces the markup override of a favorite.
type UpdateMarkupInput struct {
	MarkupType  entity.MarkupType
	MarkupValue float64
}

// --- Output DTOs ---

// FavoriteSection groups a reseller's priced favorites under one category.
// CategoryID is nil for products that carry no category; CategoryName is the
// display label, falling back to the uncategorized label when the category
// row is missing.
type FavoriteSection struct {
	CategoryID   *uuid.UUID
	CategoryName string
	Entries      []entity.CatalogEntry
}

// FavoriteUsecase defines the interface for reseller favorite operations.
type FavoriteUsecase interface {
	// Add favorites a product for the reseller. The product, supplier and
	// reseller counters move within the same transaction. Returns a Conflict
	// error when the product is already favorited.
	Add(ctx context.Context, resellerID uuid.UUID, input *AddFavoriteInput) (*entity.Favorite, error)

	// Remove unfavorites a product and rolls the counters back. A product
	// that no longer exists skips the product counter but still releases
	// the reseller and supplier counters.
	Remove(ctx context.Context, resellerID, productID uuid.UUID) error

	// List retrieves the reseller's favorites as priced catalog entries,
	// most recently added first. Missing and inactive products are dropped.
	List(ctx context.Context, resellerID uuid.UUID) ([]entity.CatalogEntry, error)

	// ListByCategory buckets the reseller's priced favorites by category,
	// largest bucket first, unknown categories under the fallback label.
	ListByCategory(ctx context.Context, resellerID uuid.UUID) ([]FavoriteSection, error)

	// GetMarkup retrieves the favorite with its currently resolved price.
	GetMarkup(ctx context.Context, resellerID, productID uuid.UUID) (*entity.CatalogEntry, error)

	// UpdateMarkup replaces the markup override of a favorite.
	UpdateMarkup(ctx context.Context, resellerID, productID uuid.UUID, input *UpdateMarkupInput) (*entity.CatalogEntry, error)
}
