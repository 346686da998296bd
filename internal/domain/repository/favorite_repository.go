// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"tangoshop/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for favorite persistence.
var (
	// ErrFavoriteNotFound is returned when a favorite is not found.
	ErrFavoriteNotFound = errors.New("favorite not found")
	// ErrFavoriteExists is returned when the reseller already favorited the product.
	// Uniqueness is enforced by the storage, not by a read-then-write check.
	ErrFavoriteExists = errors.New("favorite already exists")
)

// FavoriteRepository defines the interface for favorite persistence.
type FavoriteRepository interface {
	// Create persists a new favorite. Returns ErrFavoriteExists when the
	// (reseller, product) pair is already present.
	Create(ctx context.Context, favorite *entity.Favorite) error

	// FindByResellerAndProduct retrieves the favorite linking a reseller to a product.
	FindByResellerAndProduct(ctx context.Context, resellerID, productID uuid.UUID) (*entity.Favorite, error)

	// FindByReseller retrieves all favorites of a reseller, most recently added first.
	FindByReseller(ctx context.Context, resellerID uuid.UUID) ([]*entity.Favorite, error)

	// FindByProduct retrieves all favorites referencing a product.
	// Used to fan out product-update notifications to favoriting resellers.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Favorite, error)

	// UpdateMarkup replaces the markup override of a favorite.
	UpdateMarkup(ctx context.Context, id uuid.UUID, markupType entity.MarkupType, markupValue float64) error

	// Delete removes the favorite linking a reseller to a product.
	// Returns ErrFavoriteNotFound when no such favorite exists.
	Delete(ctx context.Context, resellerID, productID uuid.UUID) error
}
