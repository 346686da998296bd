package usecase

import (
	"context"

	"tangoshop/internal/domain/entity"

	"github.com/google/uuid"
)

// SearchFiltersOutput describes the facets available to the advanced search UI.
type SearchFiltersOutput struct {
	MinPrice   float64
	MaxPrice   float64
	Categories []*entity.Category
	SortFields []string
}

// SearchUsecase defines the interface for discovery operations.
type SearchUsecase interface {
	// Advanced retrieves a page of active products matching combined
	// name/category/price/rating filters.
	Advanced(ctx context.Context, input *ListProductsInput) (*ProductListOutput, error)

	// Filters describes the facets available for the advanced search.
	Filters(ctx context.Context) (*SearchFiltersOutput, error)

	// Related retrieves active products sharing the given product's category.
	Related(ctx context.Context, productID uuid.UUID, limit int) ([]*entity.Product, error)

	// FavoriteSuppliers retrieves the suppliers whose products the reseller favorited.
	FavoriteSuppliers(ctx context.Context, resellerID uuid.UUID) ([]*entity.User, error)
}
