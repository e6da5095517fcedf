package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Walid-EM/restaurantsitev0-sub000/api/middleware"
	cartsvc "github.com/Walid-EM/restaurantsitev0-sub000/internal/cart"
	"github.com/Walid-EM/restaurantsitev0-sub000/internal/catalog"
	checkoutsvc "github.com/Walid-EM/restaurantsitev0-sub000/internal/checkout"
	pkgerrors "github.com/Walid-EM/restaurantsitev0-sub000/pkg/errors"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/money"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/payment"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/types"
)

type failingProvider struct{}

func (failingProvider) Submit(context.Context, types.CheckoutPayload) (*payment.Result, error) {
	return nil, pkgerrors.New(pkgerrors.CodePayment, "card declined")
}

func checkoutFixture(t *testing.T, provider checkoutsvc.PaymentProvider) (http.Handler, *cartsvc.Service, string) {
	t.Helper()

	productID := uuid.New()
	stub := &stubCatalogService{
		product: &catalog.ProductDTO{ID: productID, Name: "Tacos", PriceCents: money.Cents(800), IsAvailable: true},
	}
	carts, err := cartsvc.NewService(stub, cartsvc.NewRegistry(time.Hour))
	if err != nil {
		t.Fatalf("cart service: %v", err)
	}
	checkout, err := checkoutsvc.NewService(provider, "Commande en ligne")
	if err != nil {
		t.Fatalf("checkout service: %v", err)
	}

	token := uuid.NewString()
	if _, err := carts.AddItem(context.Background(), token, productID, nil, 1); err != nil {
		t.Fatalf("seed cart: %v", err)
	}

	handler := middleware.CartSession(nil)(Checkout(checkout, carts, nil))
	return handler, carts, token
}

func TestCheckoutPaymentFailureKeepsCart(t *testing.T) {
	handler, carts, token := checkoutFixture(t, failingProvider{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{"payment_method":"card"}`))
	req.Header.Set(middleware.SessionHeader, token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 got %d body=%s", resp.Code, resp.Body.String())
	}
	if carts.StoreFor(token).Len() != 1 {
		t.Fatal("cart must survive a failed payment submission")
	}
}

func TestCheckoutRejectsUnknownPaymentMethod(t *testing.T) {
	handler, _, token := checkoutFixture(t, failingProvider{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", strings.NewReader(`{"payment_method":"crypto"}`))
	req.Header.Set(middleware.SessionHeader, token)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
