package usecase

import (
	"context"

	"github.com/google/uuid"
)

// GenerateCatalogOutput summarizes a freshly published catalog.
type GenerateCatalogOutput struct {
	CatalogURL      string
	QRCodeURL       string
	ProductsCount   int
	CategoriesCount int
}

// CatalogUsecase defines the interface for catalog generation.
type CatalogUsecase interface {
	// Generate compiles the reseller's favorites into a priced HTML catalog,
	// publishes it with a QR code to the blob store and stamps the
	// reseller's catalog settings. Requires at least one usable favorite.
	Generate(ctx context.Context, resellerID uuid.UUID) (*GenerateCatalogOutput, error)
}
