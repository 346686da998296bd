package usecase

import (
	"context"

	"tangoshop/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateProductInput defines the data required to list a new product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	CategoryID  *uuid.UUID
	SKU         string
	Stock       int
}

// UpdateProductInput defines the editable fields of a product.
// Nil pointers leave the corresponding field untouched.
type UpdateProductInput struct {
	Name        *string
	Description *string
	Price       *float64
	CategoryID  *uuid.UUID
	SKU         *string
	Stock       *int
}

// ListProductsInput defines the filter and page window for product listings.
type ListProductsInput struct {
	CategoryID *uuid.UUID
	SupplierID *uuid.UUID
	Search     string
	MinPrice   *float64
	MaxPrice   *float64
	MinRating  *float64
	Sort       string
	Page       int
	Limit      int
}

// --- Output DTOs ---

// ProductListOutput returns a page of products.
type ProductListOutput struct {
	Products   []*entity.Product
	Pagination Pagination
}

// ProductUsecase defines the interface for product operations.
type ProductUsecase interface {
	// Create lists a new product owned by the supplier, maintaining the
	// supplier and category counters in the same transaction.
	Create(ctx context.Context, supplierID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// Update modifies a product owned by the supplier. Changes to watched
	// fields notify the resellers who favorited it.
	Update(ctx context.Context, supplierID, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// Delete soft-deletes a product owned by the supplier and rolls back
	// the supplier and category counters.
	Delete(ctx context.Context, supplierID, productID uuid.UUID) error

	// UploadImage stores a product photo and stamps its URL on the product.
	UploadImage(ctx context.Context, supplierID, productID uuid.UUID, contentType string, data []byte) (string, error)

	// GetByID retrieves a single active product.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// List retrieves a filtered page of active products.
	List(ctx context.Context, input *ListProductsInput) (*ProductListOutput, error)

	// ListBySupplier retrieves a page of the supplier's own products,
	// deactivated ones included.
	ListBySupplier(ctx context.Context, supplierID uuid.UUID, page, limit int) (*ProductListOutput, error)

	// TopRated retrieves the highest-rated active products.
	TopRated(ctx context.Context, limit int) ([]*entity.Product, error)

	// Recent retrieves the most recently listed active products.
	Recent(ctx context.Context, limit int) ([]*entity.Product, error)
}
