// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"tangoshop/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found or is inactive.
var ErrProductNotFound = errors.New("product not found")

// ProductSort identifies the ordering of a product listing.
type ProductSort string

const (
	// ProductSortRecent orders by creation time, newest first.
	ProductSortRecent ProductSort = "recent"
	// ProductSortPriceAsc orders by base price, cheapest first.
	ProductSortPriceAsc ProductSort = "price_asc"
	// ProductSortPriceDesc orders by base price, most expensive first.
	ProductSortPriceDesc ProductSort = "price_desc"
	// ProductSortRating orders by average rating, best first.
	ProductSortRating ProductSort = "rating"
	// ProductSortPopular orders by favorites count, most favorited first.
	ProductSortPopular ProductSort = "popular"
)

// ProductFilter narrows an active-product listing. Zero values mean "no constraint".
type ProductFilter struct {
	CategoryID *uuid.UUID  // Only products in this category.
	SupplierID *uuid.UUID  // Only products of this supplier.
	Search     string      // Case-insensitive match against name and description.
	MinPrice   *float64    // Lower bound on the base price.
	MaxPrice   *float64    // Upper bound on the base price.
	MinRating  *float64    // Lower bound on the average rating.
	Sort       ProductSort // Result ordering. Defaults to ProductSortRecent.
	Limit      int
	Offset     int
}

// ProductRepository defines the interface for product persistence.
// All read operations exclude soft-deleted (inactive) products.
type ProductRepository interface {
	// Create persists a new product.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a single active product by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindByIDs retrieves the active products matching the given IDs.
	// Missing or inactive IDs are silently omitted from the result.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// FindActive retrieves active products matching the filter.
	FindActive(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)

	// CountActive returns the number of active products matching the filter.
	CountActive(ctx context.Context, filter ProductFilter) (int64, error)

	// FindBySupplier retrieves a supplier's active products, newest first.
	FindBySupplier(ctx context.Context, supplierID uuid.UUID, limit, offset int) ([]*entity.Product, error)

	// FindAllBySupplier retrieves every product of a supplier with no paging.
	// Rating aggregation needs the complete set.
	FindAllBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*entity.Product, error)

	// CountBySupplier returns the number of active products of a supplier.
	CountBySupplier(ctx context.Context, supplierID uuid.UUID) (int64, error)

	// FindTopRated retrieves the best rated active products that have at least one review.
	FindTopRated(ctx context.Context, limit int) ([]*entity.Product, error)

	// FindRecent retrieves the most recently listed active products.
	FindRecent(ctx context.Context, limit int) ([]*entity.Product, error)

	// FindRelated retrieves active products sharing a category, excluding the product itself.
	FindRelated(ctx context.Context, productID uuid.UUID, categoryID *uuid.UUID, limit int) ([]*entity.Product, error)

	// Update modifies an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// SoftDelete marks a product inactive without removing the row.
	SoftDelete(ctx context.Context, id uuid.UUID) error

	// IncrementFavoritesCount adjusts the denormalized favorites counter by delta.
	IncrementFavoritesCount(ctx context.Context, id uuid.UUID, delta int) error

	// UpdateRatingStats replaces the product's aggregated rating figures.
	UpdateRatingStats(ctx context.Context, id uuid.UUID, avgRating float64, reviewCount int) error
}
