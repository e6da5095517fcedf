package cart

import (
	cartsvc "github.com/Walid-EM/restaurantsitev0-sub000/internal/cart"
	"github.com/Walid-EM/restaurantsitev0-sub000/pkg/money"
)

type lineView struct {
	LineID        string       `json:"line_id"`
	ProductID     string       `json:"product_id"`
	Name          string       `json:"name"`
	Image         *string      `json:"image,omitempty"`
	BaseUnitPrice money.Cents  `json:"base_unit_price_cents"`
	Options       []optionView `json:"options"`
	Quantity      int          `json:"quantity"`
	UnitPrice     money.Cents  `json:"unit_price_cents"`
	Subtotal      money.Cents  `json:"subtotal_cents"`
	SubtotalLabel string       `json:"subtotal"`
}

type optionView struct {
	ID    string      `json:"id"`
	Kind  string      `json:"kind"`
	Name  string      `json:"name"`
	Price money.Cents `json:"price_cents"`
}

type cartView struct {
	Lines      []lineView  `json:"lines"`
	Configured []lineView  `json:"configured"`
	Simple     []lineView  `json:"simple"`
	Count      int         `json:"count"`
	TotalCents money.Cents `json:"total_cents"`
	Total      string      `json:"total"`
}

func newLineView(line cartsvc.Line) lineView {
	options := make([]optionView, 0, len(line.Options))
	for _, option := range line.Options {
		options = append(options, optionView{
			ID:    option.ID.String(),
			Kind:  option.Kind.String(),
			Name:  option.Name,
			Price: option.PriceCents,
		})
	}
	return lineView{
		LineID:        line.LineID,
		ProductID:     line.ProductID.String(),
		Name:          line.Name,
		Image:         line.Image,
		BaseUnitPrice: line.BaseUnitPrice,
		Options:       options,
		Quantity:      line.Quantity,
		UnitPrice:     line.UnitPrice(),
		Subtotal:      line.Subtotal(),
		SubtotalLabel: line.Subtotal().Display(),
	}
}

func newCartView(store *cartsvc.Store) cartView {
	lines := store.Lines()
	grouped := store.GroupBySteps()
	total := store.Total()

	view := cartView{
		Lines:      make([]lineView, 0, len(lines)),
		Configured: make([]lineView, 0, len(grouped.Configured)),
		Simple:     make([]lineView, 0, len(grouped.Simple)),
		Count:      len(lines),
		TotalCents: total,
		Total:      total.Display(),
	}
	for _, line := range lines {
		view.Lines = append(view.Lines, newLineView(line))
	}
	for _, line := range grouped.Configured {
		view.Configured = append(view.Configured, newLineView(line))
	}
	for _, line := range grouped.Simple {
		view.Simple = append(view.Simple, newLineView(line))
	}
	return view
}
