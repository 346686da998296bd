// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a reseller's rating of a product. Each reseller can review a product
// at most once; the pair (ProductID, ResellerID) is unique.
type Review struct {
	ID         uuid.UUID // The Global Unique Identifier (GUID) for the review.
	ProductID  uuid.UUID // The ID of the reviewed product.
	ResellerID uuid.UUID // The ID of the reseller who wrote the review.
	Rating     int       // Star rating from 1 to 5.
	Comment    string    // Free-form review text.
	Likes      int       // Number of likes other resellers gave this review.
	CreatedAt  time.Time // Timestamp of when the review was created.
	UpdatedAt  time.Time // Timestamp of the last edit.
}
