// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"tangoshop/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for user persistence.
var (
	// ErrUserNotFound is returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrResellerProfileNotFound is returned when a user has no reseller profile.
	ErrResellerProfileNotFound = errors.New("reseller profile not found")
	// ErrSupplierProfileNotFound is returned when a user has no supplier profile.
	ErrSupplierProfileNotFound = errors.New("supplier profile not found")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, with role profiles preloaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address, with role profiles preloaded.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create persists a new user entity together with its role profiles.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user's base fields.
	Update(ctx context.Context, user *entity.User) error

	// UpdateFCMToken stores the push registration token for a user.
	UpdateFCMToken(ctx context.Context, userID uuid.UUID, token string) error

	// UpdatePassword replaces the user's password hash.
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// SetActive toggles the soft-activation flag of a user account.
	SetActive(ctx context.Context, userID uuid.UUID, active bool) error

	// UpdateResellerProfile modifies the reseller profile of a user.
	UpdateResellerProfile(ctx context.Context, profile *entity.ResellerProfile) error

	// UpdateSupplierProfile modifies the supplier profile of a user.
	UpdateSupplierProfile(ctx context.Context, profile *entity.SupplierProfile) error

	// UpdateCatalogSettings stamps the catalog publication state of a reseller.
	UpdateCatalogSettings(ctx context.Context, resellerID uuid.UUID, settings entity.CatalogSettings) error

	// IncrementResellerTotalFavorites adjusts the reseller's favorite counter by delta.
	IncrementResellerTotalFavorites(ctx context.Context, resellerID uuid.UUID, delta int) error

	// IncrementSupplierTotalFavorites adjusts the supplier's received-favorites counter by delta.
	IncrementSupplierTotalFavorites(ctx context.Context, supplierID uuid.UUID, delta int) error

	// IncrementSupplierTotalProducts adjusts the supplier's active product counter by delta.
	IncrementSupplierTotalProducts(ctx context.Context, supplierID uuid.UUID, delta int) error

	// UpdateSupplierRatingStats replaces the supplier's aggregated rating figures.
	UpdateSupplierRatingStats(ctx context.Context, supplierID uuid.UUID, avgRating float64, totalReviews int) error

	// FindSuppliers retrieves active users that have a supplier profile.
	FindSuppliers(ctx context.Context, limit, offset int) ([]*entity.User, error)

	// CountSuppliers returns the number of active users with a supplier profile.
	CountSuppliers(ctx context.Context) (int64, error)

	// FindResellers retrieves active users that have a reseller profile.
	FindResellers(ctx context.Context, limit, offset int) ([]*entity.User, error)

	// CountResellers returns the number of active users with a reseller profile.
	CountResellers(ctx context.Context) (int64, error)
}
