package checkout

import "github.com/shopspring/decimal"

// TaxRate is applied to the subtotal of every order.
var TaxRate = decimal.NewFromFloat(0.08)

// CartItem is the read-only view of a cart line the checkout works from.
type CartItem struct {
	ID               uint    `json:"id"`
	Name             string  `json:"name"`
	Image            string  `json:"image"`
	Color            string  `json:"color"`
	Quantity         int     `json:"quantity"`
	TotalPrice       float64 `json:"totalPrice"`
	ExtendedWarranty bool    `json:"extendedWarranty"`
}

// Totals is the price breakdown derived from the cart.
type Totals struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// CalculateTotals prices the given items. Tax is rounded to cents.
func CalculateTotals(items []CartItem) Totals {
	subtotal := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.TotalPrice).Mul(decimal.NewFromInt(int64(item.Quantity)))
		subtotal = subtotal.Add(line)
	}

	shipping := decimal.Zero
	tax := subtotal.Mul(TaxRate).Round(2)

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}
