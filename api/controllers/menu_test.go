package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Walid-EM/restaurantsitev0-sub000/internal/catalog"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/enums"
	pkgerrors "github.com/Walid-EM/restaurantsitev0-sub000/pkg/errors"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/money"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/types"
)

type stubCatalogService struct {
	categories []catalog.CategoryDTO
	products   []catalog.ProductDTO
	product    *catalog.ProductDTO
	steps      []catalog.StepDTO
	err        error
}

func (s *stubCatalogService) ListCategories(context.Context) ([]catalog.CategoryDTO, error) {
	return s.categories, s.err
}

func (s *stubCatalogService) ListProducts(context.Context, string) ([]catalog.ProductDTO, error) {
	return s.products, s.err
}

func (s *stubCatalogService) GetProduct(context.Context, uuid.UUID) (*catalog.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubCatalogService) StepsFor(context.Context, string) ([]enums.GroupKind, error) {
	return nil, s.err
}

func (s *stubCatalogService) ResolveProductSteps(context.Context, uuid.UUID) (*catalog.ProductDTO, []catalog.StepDTO, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.product, s.steps, nil
}

func TestMenuCategories(t *testing.T) {
	svc := &stubCatalogService{
		categories: []catalog.CategoryDTO{
			{ID: uuid.New(), Key: "burgers", Name: "Burgers", Steps: []enums.GroupKind{enums.GroupKindSupplements, enums.GroupKindBoissons}},
			{ID: uuid.New(), Key: "desserts", Name: "Desserts", Steps: []enums.GroupKind{}},
		},
	}

	resp := httptest.NewRecorder()
	MenuCategories(svc, nil)(resp, httptest.NewRequest(http.MethodGet, "/api/v1/menu/categories", nil))

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	var envelope struct {
		Data struct {
			Categories []catalog.CategoryDTO `json:"categories"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data.Categories) != 2 {
		t.Fatalf("expected 2 categories got %d", len(envelope.Data.Categories))
	}
	if envelope.Data.Categories[0].Key != "burgers" {
		t.Fatalf("category order should be preserved, got %s first", envelope.Data.Categories[0].Key)
	}
}

func TestMenuProductsPropagatesServiceError(t *testing.T) {
	svc := &stubCatalogService{err: pkgerrors.New(pkgerrors.CodeDependency, "db down")}

	resp := httptest.NewRecorder()
	MenuProducts(svc, nil)(resp, httptest.NewRequest(http.MethodGet, "/api/v1/menu/products", nil))

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d", resp.Code)
	}
	var envelope types.ErrorEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeDependency) {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}
}

func TestMenuProductSteps(t *testing.T) {
	productID := uuid.New()
	svc := &stubCatalogService{
		product: &catalog.ProductDTO{ID: productID, CategoryKey: "burgers", Name: "Cheeseburger", PriceCents: money.Cents(850), Price: "8.50", IsAvailable: true},
		steps: []catalog.StepDTO{
			{Kind: enums.GroupKindSupplements, MultiSelect: true, Options: []catalog.OptionDTO{
				{ID: uuid.New(), Kind: enums.GroupKindSupplements, Name: "Bacon", PriceCents: 120, Price: "1.20"},
			}},
		},
	}

	rc := chi.NewRouteContext()
	rc.URLParams.Add("productId", productID.String())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu/products/"+productID.String()+"/steps", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))

	resp := httptest.NewRecorder()
	MenuProductSteps(svc, nil)(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d body=%s", resp.Code, resp.Body.String())
	}
	var envelope struct {
		Data struct {
			Product catalog.ProductDTO `json:"product"`
			Steps   []catalog.StepDTO  `json:"steps"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Product.ID != productID {
		t.Fatalf("unexpected product %s", envelope.Data.Product.ID)
	}
	if len(envelope.Data.Steps) != 1 || !envelope.Data.Steps[0].MultiSelect {
		t.Fatalf("unexpected steps %+v", envelope.Data.Steps)
	}
}

func TestMenuProductStepsRejectsMalformedID(t *testing.T) {
	rc := chi.NewRouteContext()
	rc.URLParams.Add("productId", "nope")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/menu/products/nope/steps", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))

	resp := httptest.NewRecorder()
	MenuProductSteps(&stubCatalogService{}, nil)(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
