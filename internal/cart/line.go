package cart

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/Walid-EM/restaurantsitev0-sub000/internal/configurator"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/enums"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/money"
)

// SelectedOption is the snapshot of one chosen option inside a cart line.
// Snapshots keep carts stable when the admin edits the catalog mid-session.
type SelectedOption struct {
	ID         uuid.UUID       `json:"id"`
	Kind       enums.GroupKind `json:"kind"`
	Name       string          `json:"name"`
	PriceCents money.Cents     `json:"price_cents"`
}

// Line is one cart entry: a product plus its chosen options and quantity.
type Line struct {
	LineID        string           `json:"line_id"`
	ProductID     uuid.UUID        `json:"product_id"`
	Name          string           `json:"name"`
	Image         *string          `json:"image,omitempty"`
	BaseUnitPrice money.Cents      `json:"base_unit_price_cents"`
	Options       []SelectedOption `json:"options"`
	Quantity      int              `json:"quantity"`
	// HasSteps records whether the owning category exposed configuration
	// steps; the checkout summary groups lines on it.
	HasSteps bool `json:"has_steps"`
}

// UnitPrice is always derived from the base price and option snapshot,
// never stored, so it cannot go stale.
func (l Line) UnitPrice() money.Cents {
	total := l.BaseUnitPrice
	for _, option := range l.Options {
		total += option.PriceCents
	}
	return total
}

// Subtotal is the line contribution to the cart total.
func (l Line) Subtotal() money.Cents {
	return l.UnitPrice().Mul(l.Quantity)
}

// NewLine builds a cart line from a committed configurator selection.
func NewLine(selection configurator.Selection, hasSteps bool) Line {
	options := make([]SelectedOption, 0, len(selection.Options))
	for _, option := range selection.Options {
		options = append(options, SelectedOption{
			ID:         option.ID,
			Kind:       option.Kind,
			Name:       option.Name,
			PriceCents: option.PriceCents,
		})
	}
	line := Line{
		ProductID:     selection.Product.ID,
		Name:          selection.Product.Name,
		Image:         selection.Product.Image,
		BaseUnitPrice: selection.Product.PriceCents,
		Options:       options,
		Quantity:      1,
		HasSteps:      hasSteps,
	}
	line.LineID = LineIdentity(line.ProductID, options)
	return line
}

// LineIdentity derives the deterministic identity of a configured line
// from the product and the option set, ignoring selection order. Two adds
// with the same product and option set always land on the same line.
func LineIdentity(productID uuid.UUID, options []SelectedOption) string {
	ids := make([]string, 0, len(options))
	for _, option := range options {
		ids = append(ids, option.ID.String())
	}
	sort.Strings(ids)

	h := sha256.New()
	h.Write([]byte(productID.String()))
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(ids, ",")))
	return hex.EncodeToString(h.Sum(nil))[:16]
}
