package checkout

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/Walid-EM/restaurantsitev0-sub000/internal/cart"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/enums"
	pkgerrors "github.com/Walid-EM/restaurantsitev0-sub000/pkg/errors"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/payment"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/types"
)

// PaymentProvider is the external collaborator that turns a checkout
// payload into a payment. The core's responsibility ends at handing over
// a currency-exact payload; provider-specific statuses are opaque here
// beyond success or failure.
type PaymentProvider interface {
	Submit(ctx context.Context, payload types.CheckoutPayload) (*payment.Result, error)
}

// CustomerInfo carries the optional customer fields forwarded as metadata.
type CustomerInfo struct {
	Name  string
	Email string
	Phone string
}

// Submission is the outcome handed back to the HTTP layer.
type Submission struct {
	Payload   types.CheckoutPayload
	Reference string
	// ClientSecret lets the storefront finish the payment flow.
	ClientSecret string
}

// Service builds checkout payloads and submits them to the payment
// collaborator, guarding each session against duplicate in-flight
// submissions.
type Service struct {
	provider    PaymentProvider
	description string

	mu       sync.Mutex
	inFlight map[string]bool
}

// NewService builds the checkout service.
func NewService(provider PaymentProvider, description string) (*Service, error) {
	if provider == nil {
		return nil, fmt.Errorf("payment provider required")
	}
	if description == "" {
		description = "Commande en ligne"
	}
	return &Service{
		provider:    provider,
		description: description,
		inFlight:    map[string]bool{},
	}, nil
}

// BuildPayload assembles the serializable structure for the payment
// collaborator. The amount comes straight from the cart's exact-cents
// total; nothing is re-derived from display strings. A negative amount
// anywhere is a blocking error, never coerced.
func (s *Service) BuildPayload(lines []cart.Line, customer *CustomerInfo, method enums.PaymentMethod) (types.CheckoutPayload, error) {
	if len(lines) == 0 {
		return types.CheckoutPayload{}, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}
	if !method.IsValid() {
		return types.CheckoutPayload{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown payment method")
	}

	items := make([]types.PayloadLineItem, 0, len(lines))
	var total int64
	for _, line := range lines {
		if line.BaseUnitPrice < 0 {
			return types.CheckoutPayload{}, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("line %s has a negative base price", line.LineID))
		}
		if line.Quantity < 1 {
			return types.CheckoutPayload{}, pkgerrors.New(pkgerrors.CodeValidation,
				fmt.Sprintf("line %s has an invalid quantity", line.LineID))
		}
		optionNames := make([]string, 0, len(line.Options))
		for _, option := range line.Options {
			if option.PriceCents < 0 {
				return types.CheckoutPayload{}, pkgerrors.New(pkgerrors.CodeValidation,
					fmt.Sprintf("option %s has a negative price", option.Name))
			}
			optionNames = append(optionNames, option.Name)
		}

		items = append(items, types.PayloadLineItem{
			ProductID:       line.ProductID.String(),
			Name:            line.Name,
			Quantity:        line.Quantity,
			UnitAmountMinor: int64(line.UnitPrice()),
			Options:         optionNames,
		})
		total += int64(line.Subtotal())
	}

	metadata := map[string]string{
		"payment_method": method.String(),
		"line_count":     strconv.Itoa(len(lines)),
	}
	if customer != nil {
		if customer.Name != "" {
			metadata["customer_name"] = customer.Name
		}
		if customer.Email != "" {
			metadata["customer_email"] = customer.Email
		}
		if customer.Phone != "" {
			metadata["customer_phone"] = customer.Phone
		}
	}

	return types.CheckoutPayload{
		AmountMinorUnits: total,
		Currency:         enums.CurrencyEUR.Wire(),
		Description:      s.description,
		LineItems:        items,
		Metadata:         metadata,
	}, nil
}

// Submit builds the payload from the session cart and hands it to the
// payment collaborator. The session is guarded by an in-flight flag so a
// double-tap cannot produce two submissions. On success the cart is
// cleared; on failure it is left untouched so the shopper can retry.
func (s *Service) Submit(ctx context.Context, sessionToken string, store *cart.Store, customer *CustomerInfo, method enums.PaymentMethod) (*Submission, error) {
	if store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart session required")
	}

	if !s.acquire(sessionToken) {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "checkout already in progress")
	}
	defer s.release(sessionToken)

	payload, err := s.BuildPayload(store.Lines(), customer, method)
	if err != nil {
		return nil, err
	}
	// Sanity check against the store's own arithmetic.
	if payload.AmountMinorUnits != int64(store.Total()) {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "payload amount diverged from cart total")
	}

	result, err := s.provider.Submit(ctx, payload)
	if err != nil {
		// Cart stays intact; the failure is surfaced as retryable.
		return nil, err
	}

	store.Clear()
	return &Submission{
		Payload:      payload,
		Reference:    result.Reference,
		ClientSecret: result.ClientSecret,
	}, nil
}

func (s *Service) acquire(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[token] {
		return false
	}
	s.inFlight[token] = true
	return true
}

func (s *Service) release(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, token)
}
