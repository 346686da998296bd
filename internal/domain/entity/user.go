// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It contains only the most fundamental identity information shared across all roles.
type User struct {
	ID              uuid.UUID        // The Global Unique Identifier (GUID) for the user.
	Email           string           // The user's primary contact email, used as the login identifier.
	PasswordHash    string           // Stores the bcrypt-hashed password.
	FirstName       string           // The user's first name.
	LastName        string           // The user's last name.
	Phone           string           // Contact phone number, shown in generated catalogs.
	Website         string           // Optional website URL.
	PhotoURL        string           // Optional avatar or logo URL.
	FCMToken        string           // Firebase Cloud Messaging registration token for push delivery.
	IsActive        bool             // Whether the account can log in and appear in listings.
	ResellerProfile *ResellerProfile // A pointer to the reseller-specific profile. Nil if this person is not a reseller.
	SupplierProfile *SupplierProfile // A pointer to the supplier-specific profile. Nil if this person is not a supplier.
	CreatedAt       time.Time        // Timestamp of when this user account was created.
	UpdatedAt       time.Time        // Timestamp of the last modification to this user's data.
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}

	return u.FirstName + " " + u.LastName
}

// IsReseller reports whether the user carries a reseller profile.
func (u *User) IsReseller() bool {
	return u.ResellerProfile != nil
}

// IsSupplier reports whether the user carries a supplier profile.
func (u *User) IsSupplier() bool {
	return u.SupplierProfile != nil
}

// Roles derives the user's roles from the profiles attached to the account.
func (u *User) Roles() Roles {
	roles := make(Roles, 0, 2)
	if u.IsReseller() {
		roles = append(roles, RoleReseller)
	}
	if u.IsSupplier() {
		roles = append(roles, RoleSupplier)
	}

	return roles
}

// ResellerProfile holds data specific to the "reseller" role.
type ResellerProfile struct {
	UserID             uuid.UUID       // Foreign Key that links this profile to a core User entity.
	MarkupType         MarkupType      // The reseller's default markup scheme, applied to favorites without an override.
	DefaultMarkupValue float64         // The value paired with MarkupType (amount for fixed, rate for percentage).
	CatalogSettings    CatalogSettings // The reseller's catalog publication state.
	Stats              ResellerStats   // Denormalized counters maintained by the favorite workflows.
	UpdatedAt          time.Time       // Timestamp of the last modification to this profile.
}

// CatalogSettings tracks the published catalog of a reseller.
type CatalogSettings struct {
	IsPublic      bool       // Whether the generated catalog is publicly reachable.
	LastGenerated *time.Time // When the catalog was last generated. Nil if never generated.
	CatalogURL    string     // Public URL of the last generated catalog HTML.
}

// ResellerStats holds denormalized counters for a reseller.
type ResellerStats struct {
	TotalFavorites int // Number of products the reseller currently has favorited.
}

// SupplierProfile holds data specific to the "supplier" role.
type SupplierProfile struct {
	UserID      uuid.UUID     // Foreign Key that links this profile to a core User entity.
	CompanyName string        // The supplier's official company name.
	Description string        // A description of the company and its products.
	Address     string        // The physical address of the supplier.
	Stats       SupplierStats // Denormalized counters maintained by product, review and favorite workflows.
	UpdatedAt   time.Time     // Timestamp of the last modification to this profile.
}

// SupplierStats holds denormalized counters for a supplier, aggregated over its products.
type SupplierStats struct {
	TotalProducts  int     // Number of active products the supplier has listed.
	AvgRating      float64 // Average rating weighted by review count across all the supplier's products.
	TotalReviews   int     // Total reviews received across all the supplier's products.
	TotalFavorites int     // Total times the supplier's products were favorited.
}
