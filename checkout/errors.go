package checkout

import "errors"

var (
	ErrUnknownField    = errors.New("unknown checkout field")
	ErrFieldType       = errors.New("wrong value type for checkout field")
	ErrStepInvalid     = errors.New("current step is incomplete")
	ErrCartEmpty       = errors.New("cart is empty")
	ErrSessionClosed   = errors.New("checkout session is closed")
	ErrSessionNotFound = errors.New("checkout session not found")
	ErrPlacementFailed = errors.New("order placement failed")
	ErrCartNotCleared  = errors.New("order placed but cart was not cleared")
)
