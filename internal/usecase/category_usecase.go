package usecase

import (
	"context"

	"tangoshop/internal/domain/entity"

	"github.com/google/uuid"
)

// CategoryUsecase defines the interface for category browsing operations.
type CategoryUsecase interface {
	// List retrieves every category ordered by name.
	List(ctx context.Context) ([]*entity.Category, error)

	// Popular retrieves the categories with the most active products.
	Popular(ctx context.Context, limit int) ([]*entity.Category, error)

	// GetByID retrieves a single category.
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// Products retrieves a page of the category's active products.
	Products(ctx context.Context, categoryID uuid.UUID, page, limit int) (*ProductListOutput, error)
}
