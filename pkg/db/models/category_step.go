package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/enums"
)

// CategoryStep attaches one option group kind to a category. A category
// carries at most one row per kind; Position orders the steps.
type CategoryStep struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CategoryID uuid.UUID       `gorm:"column:category_id;type:uuid;not null;uniqueIndex:idx_category_steps_kind,composite:category_id"`
	GroupKind  enums.GroupKind `gorm:"column:group_kind;not null;uniqueIndex:idx_category_steps_kind,composite:group_kind"`
	Position   int             `gorm:"column:position;not null;default:0"`
	CreatedAt  time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
