package checkout

import (
	"testing"

	"shopeasy/internal/domain"
)

func validShipping() domain.ShippingAddress {
	return domain.ShippingAddress{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Address: "1 Main St",
		City:    "Springfield",
		ZipCode: "12345",
	}
}

func validPayment() domain.PaymentInfo {
	return domain.PaymentInfo{
		CardNumber: "4242424242424242",
		CardExpiry: "01/26",
		CardCvv:    "123",
	}
}

func TestValidateShippingAccepts(t *testing.T) {
	if errs := ValidateShipping(validShipping()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}
}

func TestValidateShippingRequiredFields(t *testing.T) {
	errs := ValidateShipping(domain.ShippingAddress{})
	want := map[string]string{
		FieldName:    "Name is required",
		FieldEmail:   "Email is required",
		FieldAddress: "Address is required",
		FieldCity:    "City is required",
		FieldZipCode: "ZIP code is required",
	}
	if len(errs) != len(want) {
		t.Fatalf("expected %d errors, got %d: %v", len(want), len(errs), errs)
	}
	for field, msg := range want {
		if errs[field] != msg {
			t.Errorf("field %s: expected %q, got %q", field, msg, errs[field])
		}
	}
}

func TestValidateShippingZipCode(t *testing.T) {
	cases := []struct {
		zip string
		ok  bool
	}{
		{"12345", true},
		{"12345-6789", true},
		{"1234", false},
		{"123456", false},
		{"12345-678", false},
		{"abcde", false},
	}
	for _, tc := range cases {
		addr := validShipping()
		addr.ZipCode = tc.zip
		errs := ValidateShipping(addr)
		if tc.ok && len(errs) != 0 {
			t.Errorf("zip %q: expected valid, got %v", tc.zip, errs)
		}
		if !tc.ok {
			if errs[FieldZipCode] != "Enter a valid ZIP code" {
				t.Errorf("zip %q: expected zip error, got %v", tc.zip, errs)
			}
		}
	}
}

func TestValidateShippingEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"jane@example.com", true},
		{"a@b.co", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"spaces in@example.com", false},
	}
	for _, tc := range cases {
		addr := validShipping()
		addr.Email = tc.email
		errs := ValidateShipping(addr)
		if tc.ok && len(errs) != 0 {
			t.Errorf("email %q: expected valid, got %v", tc.email, errs)
		}
		if !tc.ok && errs[FieldEmail] != "Enter a valid email" {
			t.Errorf("email %q: expected email error, got %v", tc.email, errs)
		}
	}
}

func TestValidatePayment(t *testing.T) {
	if errs := ValidatePayment(validPayment()); len(errs) != 0 {
		t.Fatalf("expected no errors, got %v", errs)
	}

	cases := []struct {
		name    string
		mutate  func(*domain.PaymentInfo)
		field   string
		message string
	}{
		{"short card number", func(p *domain.PaymentInfo) { p.CardNumber = "123" }, FieldCardNumber, "Card number must be 16 digits"},
		{"card number with spaces", func(p *domain.PaymentInfo) { p.CardNumber = "4242 4242 4242 4242" }, FieldCardNumber, "Card number must be 16 digits"},
		{"missing card number", func(p *domain.PaymentInfo) { p.CardNumber = "" }, FieldCardNumber, "Card number is required"},
		{"month 13", func(p *domain.PaymentInfo) { p.CardExpiry = "13/25" }, FieldCardExpiry, "Format must be MM/YY"},
		{"month 00", func(p *domain.PaymentInfo) { p.CardExpiry = "00/25" }, FieldCardExpiry, "Format must be MM/YY"},
		{"missing expiry", func(p *domain.PaymentInfo) { p.CardExpiry = "" }, FieldCardExpiry, "Expiration date is required"},
		{"cvv too short", func(p *domain.PaymentInfo) { p.CardCvv = "12" }, FieldCardCvv, "CVV must be 3 or 4 digits"},
		{"cvv too long", func(p *domain.PaymentInfo) { p.CardCvv = "12345" }, FieldCardCvv, "CVV must be 3 or 4 digits"},
		{"missing cvv", func(p *domain.PaymentInfo) { p.CardCvv = "" }, FieldCardCvv, "CVV is required"},
	}
	for _, tc := range cases {
		p := validPayment()
		tc.mutate(&p)
		errs := ValidatePayment(p)
		if errs[tc.field] != tc.message {
			t.Errorf("%s: expected %q on %s, got %v", tc.name, tc.message, tc.field, errs)
		}
	}
}

func TestValidatePaymentAcceptsFourDigitCvv(t *testing.T) {
	p := validPayment()
	p.CardCvv = "1234"
	if errs := ValidatePayment(p); len(errs) != 0 {
		t.Fatalf("expected 4-digit cvv to pass, got %v", errs)
	}
	p.CardExpiry = "12/29"
	if errs := ValidatePayment(p); len(errs) != 0 {
		t.Fatalf("expected month 12 to pass, got %v", errs)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	errs := Validate(Form{})
	if len(errs) != 8 {
		t.Fatalf("expected all 8 fields reported, got %d: %v", len(errs), errs)
	}
}

func TestValidateCombinedSchema(t *testing.T) {
	form := Form{ShippingAddress: validShipping(), PaymentInfo: validPayment()}
	if errs := Validate(form); len(errs) != 0 {
		t.Fatalf("expected valid form, got %v", errs)
	}
	form.CardCvv = "1"
	form.ZipCode = "1234"
	errs := Validate(form)
	if len(errs) != 2 {
		t.Fatalf("expected shipping and payment errors together, got %v", errs)
	}
}
