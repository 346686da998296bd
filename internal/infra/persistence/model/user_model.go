package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	FirstName    string    `gorm:"type:varchar(100)"`
	LastName     string    `gorm:"type:varchar(100)"`
	Phone        string    `gorm:"type:varchar(50)"`
	Website      string    `gorm:"type:varchar(255)"`
	PhotoURL     string    `gorm:"type:text"`
	FCMToken     string    `gorm:"type:text"`
	IsActive     bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	ResellerProfile *ResellerProfileModel `gorm:"foreignKey:UserID"`
	SupplierProfile *SupplierProfileModel `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// ResellerProfileModel mirrors the 'reseller_profiles' table. UserID references users.id (UUID).
type ResellerProfileModel struct {
	UserID             uuid.UUID `gorm:"primaryKey"`
	MarkupType         string    `gorm:"type:varchar(20);not null;default:'percentage'"`
	DefaultMarkupValue float64   `gorm:"type:decimal(12,2);not null;default:0"`
	CatalogIsPublic    bool      `gorm:"not null;default:true"`
	CatalogGeneratedAt *time.Time
	CatalogURL         string `gorm:"type:text"`
	TotalFavorites     int    `gorm:"not null;default:0"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResellerProfileModel) TableName() string {
	return "reseller_profiles"
}

// SupplierProfileModel mirrors the 'supplier_profiles' table. UserID references users.id (UUID).
type SupplierProfileModel struct {
	UserID         uuid.UUID `gorm:"primaryKey"`
	CompanyName    string    `gorm:"type:varchar(150);not null"`
	Description    string    `gorm:"type:text"`
	Address        string    `gorm:"type:text"`
	TotalProducts  int       `gorm:"not null;default:0"`
	AvgRating      float64   `gorm:"type:decimal(4,2);not null;default:0"`
	TotalReviews   int       `gorm:"not null;default:0"`
	TotalFavorites int       `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupplierProfileModel) TableName() string {
	return "supplier_profiles"
}
