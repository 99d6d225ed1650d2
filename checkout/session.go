package checkout

import (
	"context"
	"fmt"
	"sync"
)

// Session is one shopper's pass through the checkout flow. Operations on a
// session run one at a time.
type Session struct {
	ID     string
	UserID uint

	mu      sync.Mutex
	form    FormState
	step    Step
	status  Status
	cart    Cart
	placer  OrderPlacer
	ack     *Acknowledgement
	onClose func(*Session)
}

// NewSession enters the checkout flow on step one with a fresh form.
func NewSession(id string, userID uint, cart Cart, placer OrderPlacer) *Session {
	if placer == nil {
		placer = StubPlacer{}
	}
	return &Session{
		ID:     id,
		UserID: userID,
		form:   NewFormState(),
		step:   StepShipping,
		status: StatusActive,
		cart:   cart,
		placer: placer,
	}
}

func (s *Session) Step() Step {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.step
}

func (s *Session) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Form returns a copy of the current form.
func (s *Session) Form() FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form
}

// Acknowledgement is set once the order has been placed.
func (s *Session) Acknowledgement() *Acknowledgement {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ack
}

// View renders the session against the current cart contents.
func (s *Session) View(ctx context.Context) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.cart.Items(ctx)
	if err != nil {
		return View{}, fmt.Errorf("load cart: %w", err)
	}
	return Render(s.form, s.step, items), nil
}

// UpdateField sets one form field.
func (s *Session) UpdateField(ctx context.Context, name string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.guard(ctx); err != nil {
		return err
	}
	return s.form.UpdateField(name, value)
}

// ToggleBillingSameAsShipping flips the billing toggle on the form.
func (s *Session) ToggleBillingSameAsShipping(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.guard(ctx); err != nil {
		return err
	}
	s.form.ToggleBillingSameAsShipping()
	return nil
}

// Advance moves to the next step once the current one is complete. On the
// payment step it places the order instead, clears the cart and sends the
// shopper home; the returned acknowledgement is non-nil only in that case.
// A cart that fails to clear is reported with ErrCartNotCleared next to the
// acknowledgement; the session is closed either way.
func (s *Session) Advance(ctx context.Context, nav Navigator) (*Acknowledgement, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.guard(ctx)
	if err != nil {
		return nil, err
	}
	if !s.form.IsStepValid(s.step) {
		return nil, fmt.Errorf("%w: %s", ErrStepInvalid, s.step)
	}

	if s.step < StepPayment {
		s.step++
		return nil, nil
	}

	ack, err := s.placer.PlaceOrder(ctx, s.form, CalculateTotals(items))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlacementFailed, err)
	}
	s.ack = &ack
	s.close(StatusCompleted)

	clearErr := s.cart.Clear(ctx)
	nav.GoToHome()
	if clearErr != nil {
		return s.ack, fmt.Errorf("%w: %v", ErrCartNotCleared, clearErr)
	}
	return s.ack, nil
}

// Retreat goes back one step. From the first step it leaves the flow.
func (s *Session) Retreat(ctx context.Context, nav Navigator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.guard(ctx); err != nil {
		return err
	}
	if s.step > StepShipping {
		s.step--
		return nil
	}
	s.close(StatusAbandoned)
	nav.GoBack()
	return nil
}

// Leave abandons the flow and returns the shopper to the store. It is the
// only action left once the cart is empty.
func (s *Session) Leave(nav Navigator) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status.IsTerminal() {
		return ErrSessionClosed
	}
	s.close(StatusAbandoned)
	nav.GoToHome()
	return nil
}

// guard rejects operations on closed sessions and on empty carts, and
// returns the cart contents otherwise.
func (s *Session) guard(ctx context.Context) ([]CartItem, error) {
	if s.status.IsTerminal() {
		return nil, ErrSessionClosed
	}

	items, err := s.cart.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}
	return items, nil
}

func (s *Session) close(status Status) {
	s.status = status
	if s.onClose != nil {
		s.onClose(s)
	}
}
