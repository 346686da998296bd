package model

import (
	"time"

	"github.com/google/uuid"
)

// FavoriteModel mirrors the 'favorites' table. The composite unique index makes
// duplicate favorites impossible at the storage level, regardless of request races.
type FavoriteModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ResellerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_reseller_product"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_reseller_product;index"`
	MarkupType  string    `gorm:"type:varchar(20);not null;default:'default'"`
	MarkupValue float64   `gorm:"type:decimal(12,2);not null;default:0"`
	AddedAt     time.Time `gorm:"not null"`
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
