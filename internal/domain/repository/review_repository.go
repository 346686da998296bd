// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"tangoshop/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for review persistence.
var (
	// ErrReviewNotFound is returned when a review is not found.
	ErrReviewNotFound = errors.New("review not found")
	// ErrReviewExists is returned when the reseller already reviewed the product.
	ErrReviewExists = errors.New("review already exists")
)

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// Create persists a new review. Returns ErrReviewExists when the
	// (product, reseller) pair is already present.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByProduct retrieves every review of a product.
	// The rating aggregates are recomputed from this full set.
	FindByProduct(ctx context.Context, productID uuid.UUID) ([]*entity.Review, error)

	// FindPageByProduct retrieves a page of reviews of a product, newest first.
	FindPageByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*entity.Review, error)

	// CountByProduct returns the number of reviews of a product.
	CountByProduct(ctx context.Context, productID uuid.UUID) (int64, error)

	// FindByReseller retrieves all reviews written by a reseller, newest first.
	FindByReseller(ctx context.Context, resellerID uuid.UUID) ([]*entity.Review, error)

	// Update modifies an existing review's rating and comment.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// IncrementLikes adjusts the like counter of a review by delta.
	IncrementLikes(ctx context.Context, id uuid.UUID, delta int) error
}
