package checkout

// Step is one of the three sequential checkout stages.
type Step int

const (
	StepShipping Step = 1
	StepBilling  Step = 2
	StepPayment  Step = 3
)

func (s Step) String() string {
	switch s {
	case StepShipping:
		return "shipping"
	case StepBilling:
		return "billing"
	case StepPayment:
		return "payment"
	}
	return "unknown"
}

// IsStepValid reports whether every field the step requires has been filled.
// Presence is all that is checked.
func (f FormState) IsStepValid(step Step) bool {
	switch step {
	case StepShipping:
		return allSet(f.FirstName, f.LastName, f.Email, f.Phone, f.Address, f.City, f.State, f.ZipCode)
	case StepBilling:
		if f.BillingSameAsShipping {
			return true
		}
		return allSet(f.BillingFirstName, f.BillingLastName, f.BillingAddress, f.BillingCity, f.BillingState, f.BillingZipCode)
	case StepPayment:
		return allSet(f.CardNumber, f.CardHolderName, f.ExpiryMonth, f.ExpiryYear, f.CVV) && f.AcceptTerms
	}
	return false
}

func allSet(values ...string) bool {
	for _, v := range values {
		if v == "" {
			return false
		}
	}
	return true
}

// Status is the lifecycle of a session.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusAbandoned Status = "abandoned"
)

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusAbandoned
}
