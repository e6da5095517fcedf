package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/money"
)

// Product represents one orderable menu item.
type Product struct {
	ID          uuid.UUID   `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID  uuid.UUID   `gorm:"column:category_id;type:uuid;not null;index"`
	Name        string      `gorm:"column:name;not null"`
	Description *string     `gorm:"column:description"`
	Image       *string     `gorm:"column:image"`
	PriceCents  money.Cents `gorm:"column:price_cents;not null"`
	IsAvailable bool        `gorm:"column:is_available;not null;default:true"`
	Category    *Category   `gorm:"foreignKey:CategoryID"`
	CreatedAt   time.Time   `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time   `gorm:"column:updated_at;autoUpdateTime"`
}
