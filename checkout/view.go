package checkout

// ViewKind tags which part of the flow should be shown.
type ViewKind string

const (
	ViewEmptyCart ViewKind = "empty_cart"
	ViewShipping  ViewKind = "shipping"
	ViewBilling   ViewKind = "billing"
	ViewPayment   ViewKind = "payment"
)

var (
	shippingFields = []string{
		FieldFirstName, FieldLastName, FieldEmail, FieldPhone,
		FieldAddress, FieldCity, FieldState, FieldZipCode, FieldCountry,
	}
	billingFields = []string{
		FieldBillingSameAsShipping,
		FieldBillingFirstName, FieldBillingLastName, FieldBillingAddress,
		FieldBillingCity, FieldBillingState, FieldBillingZipCode, FieldBillingCountry,
	}
	paymentFields = []string{
		FieldCardNumber, FieldCardHolderName, FieldExpiryMonth, FieldExpiryYear, FieldCVV,
		FieldSavePaymentInfo, FieldSubscribeToNewsletter, FieldAcceptTerms,
	}
)

// Summary lists what is being bought.
type Summary struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"itemCount"`
	Totals    Totals     `json:"totals"`
}

// View describes what the storefront renders for the current state.
type View struct {
	Kind       ViewKind       `json:"kind"`
	Step       Step           `json:"step,omitempty"`
	Fields     map[string]any `json:"fields,omitempty"`
	Valid      bool           `json:"valid"`
	CanAdvance bool           `json:"canAdvance"`
	CanRetreat bool           `json:"canRetreat"`
	Summary    Summary        `json:"summary"`
}

// Render maps a form, step and cart contents to a View.
func Render(form FormState, step Step, items []CartItem) View {
	summary := Summary{
		Items:     items,
		ItemCount: len(items),
		Totals:    CalculateTotals(items),
	}
	if len(items) == 0 {
		return View{Kind: ViewEmptyCart, Summary: summary}
	}

	var kind ViewKind
	var names []string
	switch step {
	case StepShipping:
		kind, names = ViewShipping, shippingFields
	case StepBilling:
		kind, names = ViewBilling, billingFields
	default:
		kind, names = ViewPayment, paymentFields
	}

	fields := make(map[string]any, len(names))
	for _, name := range names {
		v, _ := form.Get(name)
		fields[name] = v
	}

	valid := form.IsStepValid(step)
	return View{
		Kind:       kind,
		Step:       step,
		Fields:     fields,
		Valid:      valid,
		CanAdvance: valid,
		CanRetreat: true,
		Summary:    summary,
	}
}
