package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Walid-EM/restaurantsitev0-sub000/api/middleware"
	"github.com/Walid-EM/restaurantsitev0-sub000/api/responses"
	"github.com/Walid-EM/restaurantsitev0-sub000/api/validators"
	cartsvc "github.com/Walid-EM/restaurantsitev0-sub000/internal/cart"
	pkgerrors "github.com/Walid-EM/restaurantsitev0-sub000/pkg/errors"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/logger"
)

// CartFetch returns the session's cart with totals and the checkout
// grouping projection.
func CartFetch(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := sessionToken(r)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart session missing"))
			return
		}

		responses.WriteSuccess(w, newCartView(svc.StoreFor(token)))
	}
}

// CartAddItem validates the selection against the product's current
// steps and merges the line into the session cart.
func CartAddItem(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := sessionToken(r)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart session missing"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		line, err := svc.AddItem(r.Context(), token, payload.ProductID, payload.Options, payload.Quantity)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, map[string]any{
			"line": newLineView(line),
			"cart": newCartView(svc.StoreFor(token)),
		})
	}
}

// CartUpdateQuantity sets a line's quantity; zero removes the line.
func CartUpdateQuantity(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := sessionToken(r)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart session missing"))
			return
		}

		lineID := chi.URLParam(r, "lineId")
		if lineID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line id required"))
			return
		}

		var payload updateQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if _, err := svc.UpdateQuantity(token, lineID, payload.Quantity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(svc.StoreFor(token)))
	}
}

// CartRemoveItem deletes a line. Deleting an absent line still returns
// the current cart so retried deletes stay safe.
func CartRemoveItem(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := sessionToken(r)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart session missing"))
			return
		}

		lineID := chi.URLParam(r, "lineId")
		if lineID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "line id required"))
			return
		}

		svc.RemoveItem(token, lineID)
		responses.WriteSuccess(w, newCartView(svc.StoreFor(token)))
	}
}

// CartClear empties the session cart.
func CartClear(svc *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token, ok := sessionToken(r)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart session missing"))
			return
		}

		svc.ClearCart(token)
		responses.WriteSuccess(w, newCartView(svc.StoreFor(token)))
	}
}

func sessionToken(r *http.Request) (string, bool) {
	token := middleware.SessionFromContext(r.Context())
	return token, token != ""
}
