package cart

import "github.com/google/uuid"

type addItemRequest struct {
	ProductID uuid.UUID   `json:"product_id" validate:"required"`
	Options   []uuid.UUID `json:"options"`
	Quantity  int         `json:"quantity" validate:"omitempty,min=1,max=50"`
}

// Quantity has no lower bound: zero and negative values are removal
// requests, handled by the service.
type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"max=50"`
}
