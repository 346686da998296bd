// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"tangoshop/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a single category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindAll retrieves every category ordered by name.
	FindAll(ctx context.Context) ([]*entity.Category, error)

	// FindPopular retrieves categories ordered by product count, most populated first.
	FindPopular(ctx context.Context, limit int) ([]*entity.Category, error)

	// Update modifies an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// IncrementProductCount adjusts the denormalized product counter by delta.
	IncrementProductCount(ctx context.Context, id uuid.UUID, delta int) error
}
