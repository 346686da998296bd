package usecase

import (
	"context"

	"tangoshop/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateReviewInput defines the data required to review a product.
type CreateReviewInput struct {
	ProductID uuid.UUID
	Rating    int
	Comment   string
}

// UpdateReviewInput defines the editable fields of a review.
type UpdateReviewInput struct {
	Rating  int
	Comment string
}

// --- Output DTOs ---

// ReviewListOutput returns a page of reviews.
type ReviewListOutput struct {
	Reviews    []*entity.Review
	Pagination Pagination
}

// ReviewUsecase defines the interface for product review operations.
type ReviewUsecase interface {
	// Create stores a reseller's review and recomputes the product and
	// supplier rating aggregates in the same transaction. Returns a
	// Conflict error when the reseller already reviewed the product.
	Create(ctx context.Context, resellerID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)

	// ListByProduct retrieves a page of a product's reviews, newest first.
	ListByProduct(ctx context.Context, productID uuid.UUID, page, limit int) (*ReviewListOutput, error)

	// ListMine retrieves every review written by the reseller.
	ListMine(ctx context.Context, resellerID uuid.UUID) ([]*entity.Review, error)

	// Update edits the reseller's own review and recomputes the aggregates.
	Update(ctx context.Context, resellerID, reviewID uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)

	// Delete removes the reseller's own review and recomputes the aggregates.
	Delete(ctx context.Context, resellerID, reviewID uuid.UUID) error

	// Like increments the like counter of a review.
	Like(ctx context.Context, reviewID uuid.UUID) error
}
