package money

import "github.com/shopspring/decimal"

// Cents is an amount of money in minor currency units. All cart and
// checkout arithmetic happens on this type; floats and display strings
// never enter a computation.
type Cents int64

// Decimal returns the exact euro amount.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Euros renders the amount as a plain decimal string, e.g. "8.50".
func (c Cents) Euros() string {
	return c.Decimal().StringFixed(2)
}

// Display renders the amount with the euro sign, e.g. "8.50€".
func (c Cents) Display() string {
	return c.Euros() + "€"
}

// Mul multiplies the amount by a quantity.
func (c Cents) Mul(qty int) Cents {
	return c * Cents(qty)
}
