package catalog

import (
	"github.com/google/uuid"

	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/enums"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/money"
)

// CategoryDTO is the storefront projection of a category.
type CategoryDTO struct {
	ID    uuid.UUID         `json:"id"`
	Key   string            `json:"key"`
	Name  string            `json:"name"`
	Steps []enums.GroupKind `json:"steps"`
}

// ProductDTO is the storefront projection of a product.
type ProductDTO struct {
	ID          uuid.UUID   `json:"id"`
	CategoryKey string      `json:"category"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	Image       *string     `json:"image,omitempty"`
	PriceCents  money.Cents `json:"price_cents"`
	Price       string      `json:"price"`
	IsAvailable bool        `json:"is_available"`
}

// OptionDTO is one selectable option inside a step.
type OptionDTO struct {
	ID         uuid.UUID       `json:"id"`
	Kind       enums.GroupKind `json:"kind"`
	Name       string          `json:"name"`
	PriceCents money.Cents     `json:"price_cents"`
	Price      string          `json:"price"`
	Image      *string         `json:"image,omitempty"`
}

// StepDTO is one resolved configuration step: a group kind plus the
// options currently available for it. Steps with no options are never
// emitted; the resolver skips them.
type StepDTO struct {
	Kind        enums.GroupKind `json:"kind"`
	MultiSelect bool            `json:"multi_select"`
	Options     []OptionDTO     `json:"options"`
}
