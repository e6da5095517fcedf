package controllers

import (
	"net/http"

	"github.com/Walid-EM/restaurantsitev0-sub000/api/middleware"
	"github.com/Walid-EM/restaurantsitev0-sub000/api/responses"
	"github.com/Walid-EM/restaurantsitev0-sub000/api/validators"
	cartsvc "github.com/Walid-EM/restaurantsitev0-sub000/internal/cart"
	checkoutsvc "github.com/Walid-EM/restaurantsitev0-sub000/internal/checkout"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/enums"
	pkgerrors "github.com/Walid-EM/restaurantsitev0-sub000/pkg/errors"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/logger"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/types"
)

type checkoutRequest struct {
	PaymentMethod string           `json:"payment_method" validate:"required,oneof=card counter"`
	Customer      *customerRequest `json:"customer,omitempty"`
}

type customerRequest struct {
	Name  string `json:"name" validate:"omitempty,max=120"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone" validate:"omitempty,max=32"`
}

type checkoutResponse struct {
	Reference    string                `json:"reference"`
	ClientSecret string                `json:"client_secret,omitempty"`
	Payload      types.CheckoutPayload `json:"payload"`
}

// Checkout submits the session's cart to the payment collaborator. The
// cart survives a failed submission so the shopper can retry.
func Checkout(svc *checkoutsvc.Service, carts *cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil || carts == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		token := middleware.SessionFromContext(r.Context())
		if token == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart session missing"))
			return
		}

		var payload checkoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		method, err := enums.ParsePaymentMethod(payload.PaymentMethod)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment method"))
			return
		}

		var customer *checkoutsvc.CustomerInfo
		if payload.Customer != nil {
			customer = &checkoutsvc.CustomerInfo{
				Name:  payload.Customer.Name,
				Email: payload.Customer.Email,
				Phone: payload.Customer.Phone,
			}
		}

		submission, err := svc.Submit(r.Context(), token, carts.StoreFor(token), customer, method)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, checkoutResponse{
			Reference:    submission.Reference,
			ClientSecret: submission.ClientSecret,
			Payload:      submission.Payload,
		})
	}
}
