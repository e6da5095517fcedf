package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Walid-EM/restaurantsitev0-sub000/internal/catalog"
	"github.com/Walid-EM/restaurantsitev0-sub000/internal/configurator"
	pkgerrors "github.com/Walid-EM/restaurantsitev0-sub000/pkg/errors"
)

// Service orchestrates cart mutations for a session: it resolves the
// product and its steps from the catalog, runs the selection rules, and
// lands the result in the session's store.
type Service struct {
	catalog  catalog.Service
	registry *Registry
}

// NewService builds the cart service.
func NewService(catalogSvc catalog.Service, registry *Registry) (*Service, error) {
	if catalogSvc == nil {
		return nil, fmt.Errorf("catalog service required")
	}
	if registry == nil {
		return nil, fmt.Errorf("cart registry required")
	}
	return &Service{catalog: catalogSvc, registry: registry}, nil
}

// StoreFor returns the session's cart, creating it on first touch.
func (s *Service) StoreFor(token string) *Store {
	return s.registry.Get(token)
}

// AddItem resolves the product, applies the selection rules against its
// current steps, and merges the resulting line into the session cart.
func (s *Service) AddItem(ctx context.Context, token string, productID uuid.UUID, optionIDs []uuid.UUID, quantity int) (Line, error) {
	product, steps, err := s.catalog.ResolveProductSteps(ctx, productID)
	if err != nil {
		return Line{}, err
	}
	if !product.IsAvailable {
		return Line{}, pkgerrors.New(pkgerrors.CodeConflict, "product is currently unavailable")
	}

	selection, err := configurator.Compose(*product, steps, optionIDs)
	if err != nil {
		return Line{}, err
	}

	line := NewLine(*selection, len(steps) > 0)
	if quantity > 0 {
		line.Quantity = quantity
	}

	store := s.registry.Get(token)
	store.Add(line)

	merged, _ := store.Find(line.LineID)
	return merged, nil
}

// UpdateQuantity sets the line's quantity. Zero or less removes the
// line; an unknown line is a not-found error.
func (s *Service) UpdateQuantity(token, lineID string, quantity int) (Line, error) {
	store := s.registry.Get(token)
	if _, ok := store.Find(lineID); !ok {
		return Line{}, pkgerrors.New(pkgerrors.CodeNotFound, "cart line not found")
	}

	store.SetQuantity(lineID, quantity)
	if quantity <= 0 {
		return Line{}, nil
	}
	line, _ := store.Find(lineID)
	return line, nil
}

// RemoveItem deletes the line. Removing an absent line is a no-op so
// retried deletes stay safe.
func (s *Service) RemoveItem(token, lineID string) {
	s.registry.Get(token).Remove(lineID)
}

// ClearCart empties the session cart and releases its registry entry.
// A later access mints a fresh empty cart under the same token.
func (s *Service) ClearCart(token string) {
	s.registry.Dispose(token)
}
