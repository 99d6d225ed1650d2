package checkout

import "fmt"

const defaultCountry = "United States"

// FormState holds every value the shopper has entered during one checkout session.
type FormState struct {
	// Shipping
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`

	// Billing
	BillingSameAsShipping bool   `json:"billingSameAsShipping"`
	BillingFirstName      string `json:"billingFirstName"`
	BillingLastName       string `json:"billingLastName"`
	BillingAddress        string `json:"billingAddress"`
	BillingCity           string `json:"billingCity"`
	BillingState          string `json:"billingState"`
	BillingZipCode        string `json:"billingZipCode"`
	BillingCountry        string `json:"billingCountry"`

	// Payment
	CardNumber     string `json:"cardNumber"`
	CardHolderName string `json:"cardHolderName"`
	ExpiryMonth    string `json:"expiryMonth"`
	ExpiryYear     string `json:"expiryYear"`
	CVV            string `json:"cvv"`

	SavePaymentInfo       bool `json:"savePaymentInfo"`
	SubscribeToNewsletter bool `json:"subscribeToNewsletter"`
	AcceptTerms           bool `json:"acceptTerms"`
}

// NewFormState returns the form as it looks when the flow is entered.
func NewFormState() FormState {
	return FormState{
		Country:               defaultCountry,
		BillingSameAsShipping: true,
		BillingCountry:        defaultCountry,
	}
}

// Field names as the storefront sends them.
const (
	FieldFirstName             = "firstName"
	FieldLastName              = "lastName"
	FieldEmail                 = "email"
	FieldPhone                 = "phone"
	FieldAddress               = "address"
	FieldCity                  = "city"
	FieldState                 = "state"
	FieldZipCode               = "zipCode"
	FieldCountry               = "country"
	FieldBillingSameAsShipping = "billingSameAsShipping"
	FieldBillingFirstName      = "billingFirstName"
	FieldBillingLastName       = "billingLastName"
	FieldBillingAddress        = "billingAddress"
	FieldBillingCity           = "billingCity"
	FieldBillingState          = "billingState"
	FieldBillingZipCode        = "billingZipCode"
	FieldBillingCountry        = "billingCountry"
	FieldCardNumber            = "cardNumber"
	FieldCardHolderName        = "cardHolderName"
	FieldExpiryMonth           = "expiryMonth"
	FieldExpiryYear            = "expiryYear"
	FieldCVV                   = "cvv"
	FieldSavePaymentInfo       = "savePaymentInfo"
	FieldSubscribeToNewsletter = "subscribeToNewsletter"
	FieldAcceptTerms           = "acceptTerms"
)

func (f *FormState) stringField(name string) *string {
	switch name {
	case FieldFirstName:
		return &f.FirstName
	case FieldLastName:
		return &f.LastName
	case FieldEmail:
		return &f.Email
	case FieldPhone:
		return &f.Phone
	case FieldAddress:
		return &f.Address
	case FieldCity:
		return &f.City
	case FieldState:
		return &f.State
	case FieldZipCode:
		return &f.ZipCode
	case FieldCountry:
		return &f.Country
	case FieldBillingFirstName:
		return &f.BillingFirstName
	case FieldBillingLastName:
		return &f.BillingLastName
	case FieldBillingAddress:
		return &f.BillingAddress
	case FieldBillingCity:
		return &f.BillingCity
	case FieldBillingState:
		return &f.BillingState
	case FieldBillingZipCode:
		return &f.BillingZipCode
	case FieldBillingCountry:
		return &f.BillingCountry
	case FieldCardNumber:
		return &f.CardNumber
	case FieldCardHolderName:
		return &f.CardHolderName
	case FieldExpiryMonth:
		return &f.ExpiryMonth
	case FieldExpiryYear:
		return &f.ExpiryYear
	case FieldCVV:
		return &f.CVV
	}
	return nil
}

func (f *FormState) boolField(name string) *bool {
	switch name {
	case FieldSavePaymentInfo:
		return &f.SavePaymentInfo
	case FieldSubscribeToNewsletter:
		return &f.SubscribeToNewsletter
	case FieldAcceptTerms:
		return &f.AcceptTerms
	}
	return nil
}

// UpdateField sets the named field. Strings only go into string fields and
// bools only into bool fields; the form is left untouched on error.
func (f *FormState) UpdateField(name string, value any) error {
	if name == FieldBillingSameAsShipping {
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s expects a boolean, got %T", ErrFieldType, name, value)
		}
		if v != f.BillingSameAsShipping {
			f.ToggleBillingSameAsShipping()
		}
		return nil
	}

	if p := f.stringField(name); p != nil {
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: %s expects a string, got %T", ErrFieldType, name, value)
		}
		*p = v
		return nil
	}

	if p := f.boolField(name); p != nil {
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: %s expects a boolean, got %T", ErrFieldType, name, value)
		}
		*p = v
		return nil
	}

	return fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// ToggleBillingSameAsShipping flips the flag. Turning it on snapshots the
// shipping address into billing; turning it off keeps billing as it was.
func (f *FormState) ToggleBillingSameAsShipping() {
	f.BillingSameAsShipping = !f.BillingSameAsShipping
	if !f.BillingSameAsShipping {
		return
	}
	f.BillingFirstName = f.FirstName
	f.BillingLastName = f.LastName
	f.BillingAddress = f.Address
	f.BillingCity = f.City
	f.BillingState = f.State
	f.BillingZipCode = f.ZipCode
	f.BillingCountry = f.Country
}

// Get returns the current value of a field by name.
func (f *FormState) Get(name string) (any, bool) {
	if name == FieldBillingSameAsShipping {
		return f.BillingSameAsShipping, true
	}
	if p := f.stringField(name); p != nil {
		return *p, true
	}
	if p := f.boolField(name); p != nil {
		return *p, true
	}
	return nil, false
}
