package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func filledPayment() FormState {
	f := filledShipping()
	f.CardNumber = "4111111111111111"
	f.CardHolderName = "Ada Lovelace"
	f.ExpiryMonth = "12"
	f.ExpiryYear = "2030"
	f.CVV = "123"
	f.AcceptTerms = true
	return f
}

func TestIsStepValidShipping(t *testing.T) {
	assert.True(t, filledShipping().IsStepValid(StepShipping))

	for _, field := range []string{
		FieldFirstName, FieldLastName, FieldEmail, FieldPhone,
		FieldAddress, FieldCity, FieldState, FieldZipCode,
	} {
		t.Run(field, func(t *testing.T) {
			f := filledShipping()
			assert.NoError(t, f.UpdateField(field, ""))
			assert.False(t, f.IsStepValid(StepShipping))
		})
	}

	t.Run("country is not required", func(t *testing.T) {
		f := filledShipping()
		f.Country = ""
		assert.True(t, f.IsStepValid(StepShipping))
	})

	t.Run("format is not checked", func(t *testing.T) {
		f := filledShipping()
		f.Email = "not-an-email"
		f.Phone = "x"
		assert.True(t, f.IsStepValid(StepShipping))
	})
}

func TestIsStepValidBilling(t *testing.T) {
	t.Run("same as shipping is enough", func(t *testing.T) {
		assert.True(t, NewFormState().IsStepValid(StepBilling))
	})

	t.Run("separate billing needs every field", func(t *testing.T) {
		f := NewFormState()
		f.BillingSameAsShipping = false
		assert.False(t, f.IsStepValid(StepBilling))

		f.BillingFirstName = "Ada"
		f.BillingLastName = "Lovelace"
		f.BillingAddress = "1 Somewhere"
		f.BillingCity = "London"
		f.BillingState = "LDN"
		assert.False(t, f.IsStepValid(StepBilling))

		f.BillingZipCode = "E1"
		assert.True(t, f.IsStepValid(StepBilling))

		f.BillingCountry = ""
		assert.True(t, f.IsStepValid(StepBilling))
	})
}

func TestIsStepValidPayment(t *testing.T) {
	assert.True(t, filledPayment().IsStepValid(StepPayment))

	for _, field := range []string{
		FieldCardNumber, FieldCardHolderName, FieldExpiryMonth, FieldExpiryYear, FieldCVV,
	} {
		t.Run(field, func(t *testing.T) {
			f := filledPayment()
			assert.NoError(t, f.UpdateField(field, ""))
			assert.False(t, f.IsStepValid(StepPayment))
		})
	}

	t.Run("terms must be accepted", func(t *testing.T) {
		f := filledPayment()
		f.AcceptTerms = false
		assert.False(t, f.IsStepValid(StepPayment))
	})

	t.Run("card number is not checked", func(t *testing.T) {
		f := filledPayment()
		f.CardNumber = "1234"
		f.ExpiryYear = "1999"
		assert.True(t, f.IsStepValid(StepPayment))
	})
}

func TestIsStepValidUnknownStep(t *testing.T) {
	assert.False(t, filledPayment().IsStepValid(Step(4)))
	assert.False(t, filledPayment().IsStepValid(Step(0)))
}

func TestStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusActive.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusAbandoned.IsTerminal())
}
