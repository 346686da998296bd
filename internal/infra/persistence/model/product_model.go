package model

import (
	"time"

	"github.com/google/uuid"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(100);unique;not null"`
	Description  string    `gorm:"type:text"`
	PhotoURL     string    `gorm:"type:text"`
	ProductCount int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table. IsActive implements soft deletion so
// favorites and reviews keep their references after a product is withdrawn.
type ProductModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SupplierID     uuid.UUID  `gorm:"type:uuid;not null;index"`
	CategoryID     *uuid.UUID `gorm:"type:uuid;index"`
	Name           string     `gorm:"type:varchar(200);not null"`
	Description    string     `gorm:"type:text"`
	Price          float64    `gorm:"type:decimal(12,2);not null"`
	PhotoURL       string     `gorm:"type:text"`
	SKU            string     `gorm:"type:varchar(100)"`
	Stock          int        `gorm:"not null;default:0"`
	IsActive       bool       `gorm:"not null;default:true;index"`
	FavoritesCount int        `gorm:"not null;default:0"`
	AvgRating      float64    `gorm:"type:decimal(4,2);not null;default:0"`
	ReviewCount    int        `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
