package usecase

import (
	"context"

	"tangoshop/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// UpdateResellerProfileInput defines the editable fields of a reseller account.
// Nil pointers leave the corresponding field untouched.
type UpdateResellerProfileInput struct {
	FirstName          *string
	LastName           *string
	Phone              *string
	Website            *string
	PhotoURL           *string
	MarkupType         *entity.MarkupType
	DefaultMarkupValue *float64
	CatalogIsPublic    *bool
}

// UpdateSupplierProfileInput defines the editable fields of a supplier account.
type UpdateSupplierProfileInput struct {
	FirstName   *string
	LastName    *string
	Phone       *string
	Website     *string
	PhotoURL    *string
	CompanyName *string
	Description *string
	Address     *string
}

// --- Output DTOs ---

// SupplierListOutput returns a page of suppliers.
type SupplierListOutput struct {
	Suppliers  []*entity.User
	Pagination Pagination
}

// ResellerListOutput returns a page of resellers.
type ResellerListOutput struct {
	Resellers  []*entity.User
	Pagination Pagination
}

// SupplierStatsOutput returns a supplier's denormalized dashboard figures.
type SupplierStatsOutput struct {
	TotalProducts  int
	AvgRating      float64
	TotalReviews   int
	TotalFavorites int
}

// ResellerUsecase defines the interface for reseller account operations.
type ResellerUsecase interface {
	// GetProfile retrieves the authenticated reseller's account with its profile.
	GetProfile(ctx context.Context, resellerID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies partial updates to the reseller's account and markup settings.
	UpdateProfile(ctx context.Context, resellerID uuid.UUID, input *UpdateResellerProfileInput) (*entity.User, error)

	// ListResellers retrieves a page of active resellers.
	ListResellers(ctx context.Context, page, limit int) (*ResellerListOutput, error)

	// GetReseller retrieves a reseller's public view by ID.
	GetReseller(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// Deactivate soft-disables the account and revokes all its sessions.
	Deactivate(ctx context.Context, resellerID uuid.UUID) error
}

// SupplierUsecase defines the interface for supplier account operations.
type SupplierUsecase interface {
	// GetProfile retrieves the authenticated supplier's account with its profile.
	GetProfile(ctx context.Context, supplierID uuid.UUID) (*entity.User, error)

	// UpdateProfile applies partial updates to the supplier's account and company data.
	UpdateProfile(ctx context.Context, supplierID uuid.UUID, input *UpdateSupplierProfileInput) (*entity.User, error)

	// ListSuppliers retrieves a page of active suppliers.
	ListSuppliers(ctx context.Context, page, limit int) (*SupplierListOutput, error)

	// GetSupplier retrieves a supplier's public view by ID.
	GetSupplier(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// GetStats retrieves a supplier's denormalized dashboard figures.
	GetStats(ctx context.Context, supplierID uuid.UUID) (*SupplierStatsOutput, error)

	// GetReviews retrieves the reviews written across all of the supplier's products.
	GetReviews(ctx context.Context, supplierID uuid.UUID) ([]*entity.Review, error)

	// GetResellers retrieves the resellers who favorited at least one of the supplier's products.
	GetResellers(ctx context.Context, supplierID uuid.UUID) ([]*entity.User, error)
}
