package validator

import "testing"

type registerForm struct {
	Username string `validate:"required,min=3"`
	Email    string `validate:"required,email"`
	Quantity int    `validate:"gt=0"`
}

func TestValidate(t *testing.T) {
	v := NewValidator()

	if err := v.Validate(&registerForm{Username: "alice", Email: "alice@example.com", Quantity: 1}); err != nil {
		t.Errorf("valid form rejected: %v", err)
	}

	if err := v.Validate(&registerForm{}); err == nil {
		t.Error("empty form accepted")
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&registerForm{Username: "al", Email: "not-an-email"})
	if err == nil {
		t.Fatal("expected validation error")
	}

	formatted := v.FormatValidationErrors(err)
	if formatted["Username"] != "Username must be at least 3 characters" {
		t.Errorf("Username message = %q", formatted["Username"])
	}
	if formatted["Email"] != "Email must be a valid email address" {
		t.Errorf("Email message = %q", formatted["Email"])
	}
	if formatted["Quantity"] != "Quantity must be greater than 0" {
		t.Errorf("Quantity message = %q", formatted["Quantity"])
	}
}
