package service

import (
	"context"
	"time"

	"tangoshop/internal/domain/entity"
)

// CatalogSection groups the priced entries of one category inside a rendered catalog.
type CatalogSection struct {
	Name    string                // Category display name, or the uncategorized bucket label.
	Entries []entity.CatalogEntry // Entries ordered by when they were favorited, newest first.
}

// CatalogData is everything the renderer needs to produce a reseller's catalog page.
type CatalogData struct {
	ResellerName  string
	ResellerPhone string
	ResellerEmail string
	Website       string
	PhotoURL      string
	Sections      []CatalogSection // Ordered by section size, largest first.
	GeneratedAt   time.Time
}

// CatalogRenderer defines the interface for producing the catalog HTML document.
type CatalogRenderer interface {
	// Render produces a self-contained HTML page for the given catalog data.
	Render(ctx context.Context, data *CatalogData) ([]byte, error)
}
