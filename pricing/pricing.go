// Package pricing computes order totals. It is the single implementation
// shared by the cart summary and the checkout path, so the total a customer
// sees in the cart is always the total the order records.
package pricing

import "github.com/shopspring/decimal"

var (
	// Orders strictly above the threshold ship free; exactly 1000 still pays.
	freeShippingThreshold = decimal.NewFromInt(1000)
	flatShippingCost      = decimal.NewFromInt(15)
	taxRate               = decimal.RequireFromString("0.10")
)

// Line is one (unit price, quantity) pair from a cart or a checkout request.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Taxes    decimal.Decimal `json:"taxes"`
	Total    decimal.Decimal `json:"total"`
}

// Calculate sums the lines at full precision, rounds the subtotal to two
// decimal places, then applies flat-rate shipping and a 10% tax.
func Calculate(lines []Line) Totals {
	subtotal := decimal.Zero
	for _, line := range lines {
		subtotal = subtotal.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	subtotal = subtotal.Round(2)

	shipping := flatShippingCost
	if subtotal.GreaterThan(freeShippingThreshold) {
		shipping = decimal.Zero
	}

	taxes := subtotal.Mul(taxRate).Round(2)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Taxes:    taxes,
		Total:    subtotal.Add(shipping).Add(taxes),
	}
}
