package checkout

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func assertMoney(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}

func TestCalculateTotals(t *testing.T) {
	t.Run("single item", func(t *testing.T) {
		totals := CalculateTotals([]CartItem{{TotalPrice: 1000, Quantity: 1}})
		assertMoney(t, "1000", totals.Subtotal)
		assertMoney(t, "0", totals.Shipping)
		assertMoney(t, "80", totals.Tax)
		assertMoney(t, "1080", totals.Total)
	})

	t.Run("quantities multiply", func(t *testing.T) {
		totals := CalculateTotals([]CartItem{
			{TotalPrice: 500, Quantity: 2},
			{TotalPrice: 300, Quantity: 1},
		})
		assertMoney(t, "1300", totals.Subtotal)
		assertMoney(t, "104", totals.Tax)
		assertMoney(t, "1404", totals.Total)
	})

	t.Run("tax rounds to cents", func(t *testing.T) {
		totals := CalculateTotals([]CartItem{{TotalPrice: 19.99, Quantity: 3}})
		assertMoney(t, "59.97", totals.Subtotal)
		assertMoney(t, "4.8", totals.Tax)
		assertMoney(t, "64.77", totals.Total)
	})

	t.Run("empty cart", func(t *testing.T) {
		totals := CalculateTotals(nil)
		assertMoney(t, "0", totals.Subtotal)
		assertMoney(t, "0", totals.Tax)
		assertMoney(t, "0", totals.Total)
	})
}
