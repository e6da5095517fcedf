package models

import (
	"time"

	"github.com/google/uuid"
)

// Category groups products on the storefront. Key is the normalized
// identifier every lookup goes through; Name keeps the display casing.
type Category struct {
	ID        uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Key       string         `gorm:"column:key;not null;uniqueIndex"`
	Name      string         `gorm:"column:name;not null"`
	Position  int            `gorm:"column:position;not null;default:0"`
	Steps     []CategoryStep `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
