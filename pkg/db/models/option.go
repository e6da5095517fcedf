package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/enums"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/money"
)

// Option is one selectable customization, owned by a group kind.
// Supplements carry a zero price; the other kinds are paid.
type Option struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	GroupKind   enums.GroupKind `gorm:"column:group_kind;not null;index"`
	Name        string          `gorm:"column:name;not null"`
	PriceCents  money.Cents     `gorm:"column:price_cents;not null;default:0"`
	Image       *string         `gorm:"column:image"`
	Position    int             `gorm:"column:position;not null;default:0"`
	IsAvailable bool            `gorm:"column:is_available;not null;default:true"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
