package cart

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Walid-EM/restaurantsitev0-sub000/internal/catalog"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/enums"
	pkgerrors "github.com/Walid-EM/restaurantsitev0-sub000/pkg/errors"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/money"
)

type stubCatalog struct {
	product *catalog.ProductDTO
	steps   []catalog.StepDTO
	err     error
}

func (s *stubCatalog) ListCategories(context.Context) ([]catalog.CategoryDTO, error) {
	return nil, nil
}

func (s *stubCatalog) ListProducts(context.Context, string) ([]catalog.ProductDTO, error) {
	return nil, nil
}

func (s *stubCatalog) GetProduct(context.Context, uuid.UUID) (*catalog.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubCatalog) StepsFor(context.Context, string) ([]enums.GroupKind, error) {
	return nil, nil
}

func (s *stubCatalog) ResolveProductSteps(context.Context, uuid.UUID) (*catalog.ProductDTO, []catalog.StepDTO, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.product, s.steps, nil
}

func fixtureCatalog() (*stubCatalog, uuid.UUID, uuid.UUID) {
	productID := uuid.New()
	baconID := uuid.New()
	return &stubCatalog{
		product: &catalog.ProductDTO{
			ID:          productID,
			CategoryKey: "burgers",
			Name:        "Cheeseburger",
			PriceCents:  money.Cents(850),
			Price:       "8.50",
			IsAvailable: true,
		},
		steps: []catalog.StepDTO{
			{
				Kind:        enums.GroupKindSupplements,
				MultiSelect: true,
				Options: []catalog.OptionDTO{
					{ID: baconID, Kind: enums.GroupKindSupplements, Name: "Bacon", PriceCents: 120},
				},
			},
		},
	}, productID, baconID
}

func newTestService(t *testing.T, stub *stubCatalog) *Service {
	t.Helper()
	svc, err := NewService(stub, NewRegistry(time.Hour))
	require.NoError(t, err)
	return svc
}

func TestAddItemComposesAndMerges(t *testing.T) {
	stub, productID, baconID := fixtureCatalog()
	svc := newTestService(t, stub)

	line, err := svc.AddItem(context.Background(), "session-1", productID, []uuid.UUID{baconID}, 1)
	require.NoError(t, err)
	assert.Equal(t, money.Cents(970), line.UnitPrice())
	assert.True(t, line.HasSteps)
	assert.Equal(t, 1, line.Quantity)

	// Same product, same options: the line merges instead of duplicating.
	merged, err := svc.AddItem(context.Background(), "session-1", productID, []uuid.UUID{baconID}, 1)
	require.NoError(t, err)
	assert.Equal(t, line.LineID, merged.LineID)
	assert.Equal(t, 2, merged.Quantity)
	assert.Equal(t, 1, svc.StoreFor("session-1").Len())
}

func TestAddItemRejectsForeignOption(t *testing.T) {
	stub, productID, _ := fixtureCatalog()
	svc := newTestService(t, stub)

	_, err := svc.AddItem(context.Background(), "session-1", productID, []uuid.UUID{uuid.New()}, 1)
	require.Error(t, err)
	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeValidation, coded.Code())
	assert.Equal(t, 0, svc.StoreFor("session-1").Len())
}

func TestAddItemRejectsUnavailableProduct(t *testing.T) {
	stub, productID, _ := fixtureCatalog()
	stub.product.IsAvailable = false
	svc := newTestService(t, stub)

	_, err := svc.AddItem(context.Background(), "session-1", productID, nil, 1)
	require.Error(t, err)
	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeConflict, coded.Code())
}

func TestAddItemIsolatesSessions(t *testing.T) {
	stub, productID, _ := fixtureCatalog()
	svc := newTestService(t, stub)

	_, err := svc.AddItem(context.Background(), "session-a", productID, nil, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, svc.StoreFor("session-a").Len())
	assert.Equal(t, 0, svc.StoreFor("session-b").Len())
}

func TestUpdateQuantity(t *testing.T) {
	stub, productID, _ := fixtureCatalog()
	svc := newTestService(t, stub)

	added, err := svc.AddItem(context.Background(), "session-1", productID, nil, 1)
	require.NoError(t, err)

	line, err := svc.UpdateQuantity("session-1", added.LineID, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, line.Quantity)

	// Zero removes the line entirely.
	_, err = svc.UpdateQuantity("session-1", added.LineID, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, svc.StoreFor("session-1").Len())
}

func TestUpdateQuantityUnknownLine(t *testing.T) {
	stub, _, _ := fixtureCatalog()
	svc := newTestService(t, stub)

	_, err := svc.UpdateQuantity("session-1", "missing", 2)
	require.Error(t, err)
	coded := pkgerrors.As(err)
	require.NotNil(t, coded)
	assert.Equal(t, pkgerrors.CodeNotFound, coded.Code())
}

func TestRemoveAndClear(t *testing.T) {
	stub, productID, _ := fixtureCatalog()
	svc := newTestService(t, stub)

	added, err := svc.AddItem(context.Background(), "session-1", productID, nil, 2)
	require.NoError(t, err)

	svc.RemoveItem("session-1", added.LineID)
	assert.Equal(t, 0, svc.StoreFor("session-1").Len())

	// Removing again stays a no-op.
	svc.RemoveItem("session-1", added.LineID)

	_, err = svc.AddItem(context.Background(), "session-1", productID, nil, 1)
	require.NoError(t, err)
	svc.ClearCart("session-1")
	assert.Equal(t, 0, svc.StoreFor("session-1").Len())
}
