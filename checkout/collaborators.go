package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Cart is the shopper's cart as seen by the checkout flow.
type Cart interface {
	Items(ctx context.Context) ([]CartItem, error)
	Clear(ctx context.Context) error
}

// Navigator moves the shopper between screens.
type Navigator interface {
	GoToHome()
	GoBack()
}

// Acknowledgement is what the shopper sees once the order went through.
type Acknowledgement struct {
	Reference string    `json:"reference"`
	Message   string    `json:"message"`
	PlacedAt  time.Time `json:"placedAt"`
}

// OrderPlacer submits a completed checkout.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, form FormState, totals Totals) (Acknowledgement, error)
}

// StubPlacer acknowledges every order immediately without contacting any backend.
type StubPlacer struct{}

func (StubPlacer) PlaceOrder(ctx context.Context, form FormState, totals Totals) (Acknowledgement, error) {
	return Acknowledgement{
		Reference: uuid.NewString(),
		Message:   "Order placed successfully!",
		PlacedAt:  time.Now(),
	}, nil
}
