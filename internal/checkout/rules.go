// Package checkout holds the storefront checkout core: the per-step
// field validation rules and the step state machine driving
// Shipping -> Payment -> Review -> Submitting -> Completed.
package checkout

import (
	"regexp"

	"shopeasy/internal/domain"
)

// Field names double as error-map keys and wire field names.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldAddress = "address"
	FieldCity    = "city"
	FieldZipCode = "zipCode"

	FieldCardNumber = "cardNumber"
	FieldCardExpiry = "cardExpiry"
	FieldCardCvv    = "cardCvv"
)

var (
	emailPattern      = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipCodePattern    = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	cardNumberPattern = regexp.MustCompile(`^\d{16}$`)
	cardExpiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCvvPattern    = regexp.MustCompile(`^\d{3,4}$`)
)

// Form is the single mutable draft held for the duration of a checkout:
// the union of shipping and payment fields.
type Form struct {
	domain.ShippingAddress
	domain.PaymentInfo
}

// Errors maps field names to user-facing messages. An empty map means
// the validated field set is acceptable.
type Errors map[string]string

// ValidateShipping checks the shipping field set. All failing fields are
// reported at once, never just the first.
func ValidateShipping(a domain.ShippingAddress) Errors {
	errs := Errors{}
	if a.Name == "" {
		errs[FieldName] = "Name is required"
	}
	switch {
	case a.Email == "":
		errs[FieldEmail] = "Email is required"
	case !emailPattern.MatchString(a.Email):
		errs[FieldEmail] = "Enter a valid email"
	}
	if a.Address == "" {
		errs[FieldAddress] = "Address is required"
	}
	if a.City == "" {
		errs[FieldCity] = "City is required"
	}
	switch {
	case a.ZipCode == "":
		errs[FieldZipCode] = "ZIP code is required"
	case !zipCodePattern.MatchString(a.ZipCode):
		errs[FieldZipCode] = "Enter a valid ZIP code"
	}
	return errs
}

// ValidatePayment checks the payment field set.
func ValidatePayment(p domain.PaymentInfo) Errors {
	errs := Errors{}
	switch {
	case p.CardNumber == "":
		errs[FieldCardNumber] = "Card number is required"
	case !cardNumberPattern.MatchString(p.CardNumber):
		errs[FieldCardNumber] = "Card number must be 16 digits"
	}
	switch {
	case p.CardExpiry == "":
		errs[FieldCardExpiry] = "Expiration date is required"
	case !cardExpiryPattern.MatchString(p.CardExpiry):
		errs[FieldCardExpiry] = "Format must be MM/YY"
	}
	switch {
	case p.CardCvv == "":
		errs[FieldCardCvv] = "CVV is required"
	case !cardCvvPattern.MatchString(p.CardCvv):
		errs[FieldCardCvv] = "CVV must be 3 or 4 digits"
	}
	return errs
}

// Validate checks the combined schema, the authoritative gate before an
// order is submitted.
func Validate(f Form) Errors {
	errs := ValidateShipping(f.ShippingAddress)
	for field, msg := range ValidatePayment(f.PaymentInfo) {
		errs[field] = msg
	}
	return errs
}
