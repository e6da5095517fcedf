package types

// PayloadLineItem is one serialized cart line inside a checkout payload.
type PayloadLineItem struct {
	ProductID       string   `json:"product_id"`
	Name            string   `json:"name"`
	Quantity        int      `json:"quantity"`
	UnitAmountMinor int64    `json:"unit_amount_minor"`
	Options         []string `json:"options,omitempty"`
}

// CheckoutPayload is the currency-exact structure handed to the payment
// collaborator. AmountMinorUnits is authoritative; it is never re-derived
// from display strings.
type CheckoutPayload struct {
	AmountMinorUnits int64             `json:"amount_minor_units"`
	Currency         string            `json:"currency"`
	Description      string            `json:"description"`
	LineItems        []PayloadLineItem `json:"line_items"`
	Metadata         map[string]string `json:"metadata,omitempty"`
}
